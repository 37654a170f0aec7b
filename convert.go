package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// This file contains the pure unit converters and the precipitation
// summarizer that turn a raw OpenWeatherMap reading into WeatherFacts.

const noPrecipitationLine = "🌂 Без осадков"

// roundHalfUp rounds to the nearest integer with halves toward positive
// infinity, so -0.5 rounds to 0, not -1.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// kelvinToCelsius converts an absolute-scale temperature to the nearest
// integer Celsius. No clamping: out-of-domain input passes through the
// same formula.
func kelvinToCelsius(kelvin float64) int {
	return roundHalfUp(kelvin - 273.15)
}

// hPaToMmHg converts pressure from hectopascals to the nearest integer of
// millimeters of mercury.
func hPaToMmHg(hPa float64) int {
	return roundHalfUp(hPa * 0.750062)
}

// summarizePrecipitation derives a human-readable precipitation block from a
// raw reading. Explicit rain/snow volumes are checked first (1h before 3h,
// rain before snow), one line per non-zero value. Without explicit volumes
// the primary condition descriptor is inspected for rain, snow or drizzle.
// The result is never empty: a clear reading yields the fixed
// no-precipitation line.
func summarizePrecipitation(reading WeatherReading) string {
	var lines []string

	if reading.Rain != nil {
		if reading.Rain.OneHour > 0 {
			lines = append(lines, fmt.Sprintf("🌧️ Дождь: %s мм/час", formatVolume(reading.Rain.OneHour)))
		}
		if reading.Rain.ThreeHours > 0 {
			lines = append(lines, fmt.Sprintf("🌧️ Дождь: %s мм/3ч", formatVolume(reading.Rain.ThreeHours)))
		}
	}
	if reading.Snow != nil {
		if reading.Snow.OneHour > 0 {
			lines = append(lines, fmt.Sprintf("❄️ Снег: %s мм/час", formatVolume(reading.Snow.OneHour)))
		}
		if reading.Snow.ThreeHours > 0 {
			lines = append(lines, fmt.Sprintf("❄️ Снег: %s мм/3ч", formatVolume(reading.Snow.ThreeHours)))
		}
	}

	if len(lines) > 0 {
		return strings.Join(lines, "\n")
	}

	if len(reading.Weather) > 0 {
		main := reading.Weather[0].Main
		description := reading.Weather[0].Description
		switch {
		case strings.Contains(main, "Snow"):
			return "❄️ " + genericPrecipitationLine(description)
		case strings.Contains(main, "Rain"), strings.Contains(main, "Drizzle"):
			return "🌧️ " + genericPrecipitationLine(description)
		}
	}

	return noPrecipitationLine
}

func genericPrecipitationLine(description string) string {
	return "Осадки: " + description
}

func formatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// normalizeWeather builds the immutable WeatherFacts for one request.
// The report date is the UTC calendar date shifted by a fixed +3 hours,
// which pins the output to Moscow time without a tzdata dependency.
func normalizeWeather(reading WeatherReading, now time.Time) WeatherFacts {
	facts := WeatherFacts{
		TemperatureC:  kelvinToCelsius(reading.Main.Temp),
		WindSpeedMS:   reading.Wind.Speed,
		Humidity:      reading.Main.Humidity,
		PressureMmHg:  hPaToMmHg(reading.Main.Pressure),
		Precipitation: summarizePrecipitation(reading),
		ReportDate:    reportDate(now),
	}
	if len(reading.Weather) > 0 {
		facts.Condition = reading.Weather[0].Description
	}
	if reading.Clouds != nil {
		cover := reading.Clouds.All
		facts.CloudCover = &cover
	}
	return facts
}

// reportDate returns the calendar date at the fixed UTC+3 offset.
func reportDate(now time.Time) string {
	return now.UTC().Add(3 * time.Hour).Format("2006-01-02")
}
