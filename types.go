package main

// Coordinates is a pair of decimal latitude/longitude strings, exactly as
// they travel through the widget's hidden form fields. Both must be
// non-empty before the forecast pipeline may run.
type Coordinates struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// CitySuggestion is a single geocoding match. Admin1 and Country may be empty.
type CitySuggestion struct {
	Name    string
	Admin1  string
	Country string
}

// Display renders the suggestion as "name, admin1, country" with empty
// segments omitted. This is the exact string shown in the dropdown and
// accepted back by SuggestionChosen.
func (s CitySuggestion) Display() string {
	out := s.Name
	if s.Admin1 != "" {
		out += ", " + s.Admin1
	}
	if s.Country != "" {
		out += ", " + s.Country
	}
	return out
}

// WeatherFacts is the normalized, unit-consistent weather snapshot a prompt
// is built from. It is derived once per request from a WeatherReading and
// never recomputed mid-pipeline; in particular ReportDate is fixed so the
// generated text cannot drift across dates.
type WeatherFacts struct {
	Condition     string
	TemperatureC  int
	WindSpeedMS   float64
	Humidity      int
	PressureMmHg  int
	Precipitation string
	CloudCover    *int
	ReportDate    string
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type ConfigResponse struct {
	DevMode        bool  `json:"dev_mode"`
	TypeIntervalMs int64 `json:"type_interval_ms"`
}
