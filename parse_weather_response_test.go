package main

import (
	"errors"
	"strings"
	"testing"
)

const sampleOWMPayload = `{
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
	"main": {"temp": 300.15, "feels_like": 299.87, "pressure": 1013, "humidity": 40},
	"wind": {"speed": 3, "deg": 220},
	"clouds": {"all": 10}
}`

func TestParseCurrentWeatherOWM(t *testing.T) {
	reading, err := ParseCurrentWeatherOWM(strings.NewReader(sampleOWMPayload))
	if err != nil {
		t.Fatalf("ParseCurrentWeatherOWM() returned an unexpected error: %v", err)
	}

	if reading.Weather[0].Main != "Clear" {
		t.Errorf("Weather[0].Main = %q, want %q", reading.Weather[0].Main, "Clear")
	}
	if reading.Weather[0].Description != "clear sky" {
		t.Errorf("Weather[0].Description = %q, want %q", reading.Weather[0].Description, "clear sky")
	}
	if reading.Main.Temp != 300.15 {
		t.Errorf("Main.Temp = %v, want 300.15", reading.Main.Temp)
	}
	if reading.Clouds == nil || reading.Clouds.All != 10 {
		t.Errorf("Clouds = %+v, want all=10", reading.Clouds)
	}
	if reading.Rain != nil || reading.Snow != nil {
		t.Errorf("expected absent rain/snow to stay nil, got rain=%+v snow=%+v", reading.Rain, reading.Snow)
	}
}

func TestParseCurrentWeatherOWM_PrecipitationWindows(t *testing.T) {
	payload := `{
		"weather": [{"main": "Rain", "description": "light rain"}],
		"main": {"temp": 283.15, "pressure": 1005, "humidity": 90},
		"wind": {"speed": 5},
		"rain": {"1h": 2.5, "3h": 6.1},
		"snow": {"3h": 0.4}
	}`

	reading, err := ParseCurrentWeatherOWM(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ParseCurrentWeatherOWM() returned an unexpected error: %v", err)
	}

	if reading.Rain == nil || reading.Rain.OneHour != 2.5 || reading.Rain.ThreeHours != 6.1 {
		t.Errorf("Rain = %+v, want 1h=2.5 3h=6.1", reading.Rain)
	}
	if reading.Snow == nil || reading.Snow.ThreeHours != 0.4 {
		t.Errorf("Snow = %+v, want 3h=0.4", reading.Snow)
	}
}

func TestParseCurrentWeatherOWM_MissingCondition(t *testing.T) {
	payload := `{"main": {"temp": 300}, "wind": {"speed": 1}}`

	_, err := ParseCurrentWeatherOWM(strings.NewReader(payload))
	if !errors.Is(err, ErrMissingCondition) {
		t.Errorf("expected ErrMissingCondition, got %v", err)
	}
}

func TestParseCurrentWeatherOWM_MalformedJSON(t *testing.T) {
	_, err := ParseCurrentWeatherOWM(strings.NewReader(`{"weather": [`))
	if err == nil {
		t.Fatal("expected an error for malformed JSON, but got nil")
	}
}
