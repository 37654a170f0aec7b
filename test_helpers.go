package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// This file contains the shared mocks and constructors used across the test
// suite. It carries no production code.

// mockGeocodingService is a mock for the GeocodingService interface.
type mockGeocodingService struct {
	SuggestFunc func(ctx context.Context, partial string) ([]string, error)
	ResolveFunc func(ctx context.Context, cityName string) (Coordinates, error)

	suggestCalls []string
	resolveCalls []string
}

func (m *mockGeocodingService) Suggest(ctx context.Context, partial string) ([]string, error) {
	m.suggestCalls = append(m.suggestCalls, partial)
	if m.SuggestFunc != nil {
		return m.SuggestFunc(ctx, partial)
	}
	return nil, errors.New("SuggestFunc not implemented in mock")
}

func (m *mockGeocodingService) Resolve(ctx context.Context, cityName string) (Coordinates, error) {
	m.resolveCalls = append(m.resolveCalls, cityName)
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, cityName)
	}
	return Coordinates{}, errors.New("ResolveFunc not implemented in mock")
}

// mockWeatherService is a mock for the WeatherService interface.
type mockWeatherService struct {
	CurrentWeatherFunc func(ctx context.Context, lat, lon string) (WeatherReading, error)

	calls int
}

func (m *mockWeatherService) CurrentWeather(ctx context.Context, lat, lon string) (WeatherReading, error) {
	m.calls++
	if m.CurrentWeatherFunc != nil {
		return m.CurrentWeatherFunc(ctx, lat, lon)
	}
	return WeatherReading{}, errors.New("CurrentWeatherFunc not implemented in mock")
}

// mockChatService is a mock for the ChatService interface. It records the
// models it was called with, in order.
type mockChatService struct {
	CompleteFunc func(ctx context.Context, model string, messages []ChatMessage) (ChatCompletion, int, error)

	models []string
}

func (m *mockChatService) Complete(ctx context.Context, model string, messages []ChatMessage) (ChatCompletion, int, error) {
	m.models = append(m.models, model)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, model, messages)
	}
	return ChatCompletion{}, 0, errors.New("CompleteFunc not implemented in mock")
}

// completionWithText builds a minimal successful chat completion.
func completionWithText(text string) ChatCompletion {
	return ChatCompletion{Choices: []ChatChoice{{Message: ChatMessage{Role: "assistant", Content: text}}}}
}

// clearSkyReading is a valid reading matching the stubbed provider payloads
// used across the tests.
func clearSkyReading() WeatherReading {
	clouds := CloudsReading{All: 10}
	return WeatherReading{
		Weather: []ConditionInfo{{Main: "Clear", Description: "clear sky"}},
		Main:    MainReadings{Temp: 300.15, Humidity: 40, Pressure: 1013},
		Wind:    WindReading{Speed: 3},
		Clouds:  &clouds,
	}
}

// newTestConfig returns an apiConfig with quiet logging, a short typewriter
// interval and the given service mocks.
func newTestConfig(geocoder GeocodingService, weather WeatherService, chat ChatService) *apiConfig {
	return &apiConfig{
		geocoder:       geocoder,
		weather:        weather,
		chat:           chat,
		fallbackModels: []string{"model-a", "model-b", "model-c"},
		typeInterval:   time.Millisecond,
		httpClient:     &http.Client{Timeout: time.Second},
		port:           "8080",
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
