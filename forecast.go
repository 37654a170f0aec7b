package main

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// This file contains the forecast pipeline: coordinates in, generated text
// out. Per request the pipeline runs strictly in sequence — validate, fetch
// weather, normalize, build prompt, generate with model fallback, extract —
// and is all-or-nothing: any failure surfaces as a single error at the HTTP
// boundary.

// ErrNoCoordinates is returned when either coordinate is missing. It is the
// only user-correctable pipeline error and maps to HTTP 400.
var ErrNoCoordinates = errors.New("coordinates missing")

// fallbackText is substituted when the generation response carries no
// content. It is returned as regular forecast text, not as an error.
const fallbackText = "Сервер временно не доступен, попробуйте повторить позднее"

// requestForecast runs the whole pipeline for one request.
//
// The generation step walks the ordered fallback list: every attempt sends
// the identical prompt and system instruction, only the model identifier
// changes. A rate-limited attempt moves on to the next model immediately, no
// backoff. When the list is exhausted the final rate-limited response is
// used as-is, so its (empty) content degrades into fallbackText rather than
// into an error.
func (cfg *apiConfig) requestForecast(ctx context.Context, coords Coordinates) (string, error) {
	if coords.Lat == "" || coords.Lon == "" {
		return "", ErrNoCoordinates
	}

	reading, err := cfg.weather.CurrentWeather(ctx, coords.Lat, coords.Lon)
	if err != nil {
		providerErrorsTotal.WithLabelValues("openweathermap").Inc()
		return "", err
	}

	facts := normalizeWeather(reading, time.Now())
	prompt := buildForecastPrompt(facts)
	messages := []ChatMessage{
		{Role: "system", Content: systemPersona},
		{Role: "user", Content: prompt},
	}

	var completion ChatCompletion
	for _, model := range cfg.fallbackModels {
		result, status, err := cfg.chat.Complete(ctx, model, messages)
		if err != nil {
			providerErrorsTotal.WithLabelValues("openrouter").Inc()
			generationAttemptsTotal.WithLabelValues(model, "error").Inc()
			return "", err
		}
		completion = result
		if status != http.StatusTooManyRequests {
			generationAttemptsTotal.WithLabelValues(model, "ok").Inc()
			break
		}
		generationAttemptsTotal.WithLabelValues(model, "rate_limited").Inc()
		cfg.logger.Warn("model rate limited, trying next in fallback list", "model", model)
	}

	text := completion.FirstContent()
	if text == "" {
		cfg.logger.Warn("generation response carried no content, using fallback text")
		text = fallbackText
	}
	return text, nil
}
