package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// This file provides the weather-provider client. The provider is abstracted
// behind the WeatherService interface so the pipeline can be tested against
// a mock, and so the concrete provider could be swapped without touching the
// forecast logic.

// WeatherService fetches the current weather reading for a pair of
// coordinates. A non-success provider response is an error: the pipeline
// makes no retry and uses no fallback provider for weather data.
type WeatherService interface {
	CurrentWeather(ctx context.Context, lat, lon string) (WeatherReading, error)
}

// OWMWeatherService is a WeatherService backed by the OpenWeatherMap
// current-weather endpoint.
type OWMWeatherService struct {
	weatherURL string
	apiKey     string
	httpClient *http.Client
}

func NewOWMWeatherService(weatherURL, apiKey string, httpClient *http.Client) *OWMWeatherService {
	return &OWMWeatherService{
		weatherURL: weatherURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (s *OWMWeatherService) CurrentWeather(ctx context.Context, lat, lon string) (WeatherReading, error) {
	baseURL, err := url.Parse(s.weatherURL)
	if err != nil {
		return WeatherReading{}, fmt.Errorf("failed to parse weather URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("appid", s.apiKey)
	baseURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return WeatherReading{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return WeatherReading{}, fmt.Errorf("weather provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WeatherReading{}, fmt.Errorf("weather provider error: %s", resp.Status)
	}

	reading, err := ParseCurrentWeatherOWM(resp.Body)
	if err != nil {
		return WeatherReading{}, fmt.Errorf("failed to decode weather response: %w", err)
	}
	return reading, nil
}
