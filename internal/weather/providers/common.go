package providers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/i474232898/weather-cli/internal/weather"
)

// trimBaseURL strips exactly one trailing path separator so that a URL
// configured with or without it produces identical request URLs.
func trimBaseURL(u string) string {
	return strings.TrimSuffix(u, "/")
}

// parseDate runs the permissive date parser over the user-supplied string
// and returns its Unix timestamp. Dates without an explicit zone are read as
// UTC, so "2023-10-15" means UTC midnight. An unrecognized format yields a
// DateTimeParseError before any request is built.
func parseDate(date string) (int64, error) {
	ts, err := dateparse.ParseIn(date, time.UTC)
	if err != nil {
		return 0, &weather.DateTimeParseError{Input: date}
	}
	return ts.Unix(), nil
}

// doGet issues the single outbound GET for a provider call and materializes
// the response body. There is no retry loop: a transport failure surfaces
// immediately as a RequestError, a body read failure as a BodyTextError.
// Non-success status codes are not an error at this layer; the caller
// interprets them against the provider's error schema.
func doGet(ctx context.Context, client *http.Client, providerName, rawURL string, params url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, &weather.RequestError{Provider: providerName, Err: err}
	}
	req.URL.RawQuery = params.Encode()

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, &weather.RequestError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &weather.BodyTextError{Err: err}
	}

	return resp.StatusCode, body, nil
}
