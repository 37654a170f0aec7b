package main

import (
	"encoding/json"
	"errors"
	"io"
)

// This file decodes the OpenWeatherMap current-weather payload into an
// explicit WeatherReading. Required fields are validated once here, so the
// converters and the prompt builder never re-check for absence.

// ErrMissingCondition is returned when a weather payload carries no
// condition descriptor at all.
var ErrMissingCondition = errors.New("weather payload has no condition descriptor")

// WeatherReading is the provider-specific raw reading. Rain, Snow and
// Clouds are optional in the payload and stay nil when absent.
type WeatherReading struct {
	Weather []ConditionInfo `json:"weather"`
	Main    MainReadings    `json:"main"`
	Wind    WindReading     `json:"wind"`
	Clouds  *CloudsReading  `json:"clouds"`
	Rain    *PrecipVolumes  `json:"rain"`
	Snow    *PrecipVolumes  `json:"snow"`
}

type ConditionInfo struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type MainReadings struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
	Pressure float64 `json:"pressure"`
}

type WindReading struct {
	Speed float64 `json:"speed"`
}

type CloudsReading struct {
	All int `json:"all"`
}

// PrecipVolumes holds precipitation amounts keyed by duration window.
type PrecipVolumes struct {
	OneHour    float64 `json:"1h"`
	ThreeHours float64 `json:"3h"`
}

func ParseCurrentWeatherOWM(body io.Reader) (WeatherReading, error) {
	var reading WeatherReading
	if err := json.NewDecoder(body).Decode(&reading); err != nil {
		return WeatherReading{}, err
	}
	if len(reading.Weather) == 0 {
		return WeatherReading{}, ErrMissingCondition
	}
	return reading, nil
}
