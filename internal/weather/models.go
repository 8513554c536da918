package weather

// WeatherData is the canonical model every provider response is normalized
// into before anything else sees it. All fields are mandatory: a provider
// payload that cannot fill one of them is a parse failure upstream, never a
// partial record. The sole tolerated gap is Description, which may be empty
// when a provider reports no condition entries.
type WeatherData struct {
	Temperature float64 `json:"temp"`
	Humidity    uint8   `json:"humidity"`
	Pressure    uint16  `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Visibility  uint16  `json:"visibility"`
	Description string  `json:"description"`
}
