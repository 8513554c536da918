package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrCreation is returned when a provider client is constructed with an
	// empty URL or API key.
	ErrCreation = errors.New("failed to create an API client: 'url' and 'api_key' must not be empty")

	// ErrProviderNotFound is returned when a provider name matches nothing
	// in the known set.
	ErrProviderNotFound = errors.New("weather provider not found; run 'weather-cli provider-list' to see all available providers")

	// ErrProviderNotImplemented is returned for providers that are
	// recognized but have no client implementation.
	ErrProviderNotImplemented = errors.New("weather provider is not implemented; run 'weather-cli provider-list' to see all available providers")
)

// RequestError wraps a transport-level failure reaching a provider
// (connection refused, DNS failure, timeout). It is reported as-is and never
// retried.
type RequestError struct {
	Provider string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("failed to send a request to the %s API: %v", e.Provider, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// BodyTextError wraps a failure to materialize the response body as text.
type BodyTextError struct {
	Err error
}

func (e *BodyTextError) Error() string {
	return fmt.Sprintf("can't process the body text from the response: %v", e.Err)
}

func (e *BodyTextError) Unwrap() error { return e.Err }

// ServerError carries the provider's own error message, extracted from the
// error payload of a non-success response. The HTTP status itself is not
// classified further.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("provider server response error '%s'", e.Message)
}

// JSONParseError wraps a malformed or schema-mismatched payload, for either
// the success or the error document. A body that cannot supply every
// canonical field lands here, never in a partial WeatherData.
type JSONParseError struct {
	Err error
}

func (e *JSONParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v", e.Err)
}

func (e *JSONParseError) Unwrap() error { return e.Err }

// DateTimeParseError records a date string that matched no recognized
// format. It is raised before any request is issued.
type DateTimeParseError struct {
	Input string
}

func (e *DateTimeParseError) Error() string {
	return fmt.Sprintf("invalid datetime %q; use a recognized format such as 'MM/DD/YYYY', 'YYYY-MM-DD' or 'YYYY-MM-DD hh:mm'", e.Input)
}
