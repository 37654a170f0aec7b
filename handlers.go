package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// This file contains the HTTP handlers of the widget API. User-facing error
// messages are deliberately generic: the underlying cause is logged by
// respondWithError, never exposed to the client.

const (
	msgNoCoordinates = "Не указаны координаты"
	msgServerError   = "Ошибка на сервере"
	msgCityNotFound  = "Город не найден"
)

type forecastRequest struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// handlerForecast runs the forecast pipeline for a POSTed pair of
// coordinates. On success the response body is the generated text as a bare
// JSON string.
func (cfg *apiConfig) handlerForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	var req forecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cfg.respondWithError(w, http.StatusInternalServerError, msgServerError, err)
		return
	}

	text, err := cfg.requestForecast(r.Context(), Coordinates{Lat: req.Lat, Lon: req.Lon})
	switch {
	case errors.Is(err, ErrNoCoordinates):
		cfg.respondWithError(w, http.StatusBadRequest, msgNoCoordinates, nil)
		return
	case err != nil:
		cfg.respondWithError(w, http.StatusInternalServerError, msgServerError, err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, text)
}

// handlerSuggest returns city suggestions for a partial name. A provider
// failure is logged and degrades to an empty list: the widget must tolerate
// a temporarily empty dropdown.
func (cfg *apiConfig) handlerSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	name := r.URL.Query().Get("name")
	suggestions, err := cfg.geocoder.Suggest(r.Context(), name)
	if err != nil {
		cfg.logger.Warn("suggestion fetch failed", "name", name, "error", err)
		suggestions = nil
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	cfg.respondWithJSON(w, http.StatusOK, SuggestResponse{Suggestions: suggestions})
}

// handlerResolve maps a chosen city name to coordinates.
func (cfg *apiConfig) handlerResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		cfg.respondWithError(w, http.StatusBadRequest, msgCityNotFound, nil)
		return
	}

	coords, err := cfg.geocoder.Resolve(r.Context(), name)
	if err != nil {
		cfg.respondWithError(w, http.StatusNotFound, msgCityNotFound, err)
		return
	}

	cfg.respondWithJSON(w, http.StatusOK, coords)
}

// handlerConfig provides the widget page with its runtime configuration.
func (cfg *apiConfig) handlerConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	response := ConfigResponse{
		DevMode:        cfg.devMode,
		TypeIntervalMs: cfg.typeInterval.Milliseconds(),
	}

	cfg.respondWithJSON(w, http.StatusOK, response)
}

// handlerForecastStream is the server-driven reveal surface. It accepts
// either ?city= (the widget flow: suggest, pick the first match, resolve) or
// ?lat=&lon= (hidden-field flow), runs the pipeline once, and then replays
// the finished text over SSE one rune per tick. The model call itself is
// never streamed; only the completed text is animated.
func (cfg *apiConfig) handlerForecastStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		cfg.respondWithError(w, http.StatusInternalServerError, msgServerError, errors.New("response writer does not support flushing"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Frames arrive as full snapshots, delivered one at a time by the
	// typewriter, so sent needs no lock. Only the newly revealed suffix
	// goes on the wire, JSON-encoded so newlines survive the SSE framing.
	sent := 0
	ctrl := cfg.newWidgetController(func(frame string) {
		if sent > len(frame) {
			sent = 0
		}
		chunk, err := json.Marshal(frame[sent:])
		if err != nil {
			return
		}
		sent = len(frame)
		fmt.Fprintf(w, "data: %s\n\n", chunk)
		flusher.Flush()
	})
	defer ctrl.Close()

	ctx := r.Context()
	q := r.URL.Query()
	if city := q.Get("city"); city != "" {
		ctrl.InputChanged(ctx, city)
		state := ctrl.State()
		if len(state.Suggestions) == 0 {
			writeSSEError(w, flusher, msgCityNotFound)
			return
		}
		ctrl.SuggestionChosen(ctx, state.Suggestions[0])
	} else {
		ctrl.UseCoordinates(Coordinates{Lat: q.Get("lat"), Lon: q.Get("lon")})
	}

	if _, err := ctrl.Submit(ctx); err != nil {
		if errors.Is(err, ErrNoCoordinates) {
			writeSSEError(w, flusher, msgNoCoordinates)
			return
		}
		cfg.logger.Error("forecast stream failed", "error", err)
		writeSSEError(w, flusher, msgServerError)
		return
	}

	select {
	case <-ctrl.RevealDone():
		fmt.Fprint(w, "event: done\ndata: {}\n\n")
		flusher.Flush()
	case <-ctx.Done():
		// The reveal goroutine writes to w; make sure it has exited
		// before the handler returns.
		ctrl.Close()
		<-ctrl.RevealDone()
	}
}

func writeSSEError(w http.ResponseWriter, flusher http.Flusher, msg string) {
	payload, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: error\ndata: %s\n\n", payload)
	flusher.Flush()
}
