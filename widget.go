package main

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// This file contains the widget controller: the server-side state machine
// behind one widget interaction. The original UI kept city input, suggestion
// visibility, coordinates and the typing buffer in separate mutable pieces;
// here they live in a single widgetState record so suggestion visibility and
// reveal cancellation cannot drift apart.

// widgetState is the consolidated view state of the widget.
type widgetState struct {
	City            string
	Suggestions     []string
	ShowSuggestions bool
	Coordinates     *Coordinates
	SelectedCity    string
}

// widgetController consumes UI events (input changed, suggestion chosen,
// outside click, submit) and drives the geocoder, the forecast pipeline and
// the typewriter. It expects a single event loop: one goroutine issues
// events, the typewriter serializes its own frame emission.
type widgetController struct {
	geocoder GeocodingService
	forecast func(ctx context.Context, coords Coordinates) (string, error)
	logger   *slog.Logger
	tw       *Typewriter

	state widgetState
}

// newWidgetController wires a controller against the configured providers.
// onFrame receives every typewriter frame of a successful submission.
func (cfg *apiConfig) newWidgetController(onFrame func(string)) *widgetController {
	return &widgetController{
		geocoder: cfg.geocoder,
		forecast: cfg.requestForecast,
		logger:   cfg.logger,
		tw:       NewTypewriter(cfg.typeInterval, onFrame),
	}
}

// InputChanged updates the city input and refreshes the suggestion list.
// Input shorter than two runes clears the list without a provider call.
// A failed suggestion fetch is logged and leaves an empty list; overlapping
// fetches are not sequenced, so a slow earlier response may overwrite a
// faster later one — an accepted race inherited from the original widget.
func (c *widgetController) InputChanged(ctx context.Context, value string) {
	c.state.City = value

	if utf8.RuneCountInString(value) < minSuggestLength {
		c.state.Suggestions = nil
		c.state.ShowSuggestions = false
		return
	}

	// Re-selecting the already-resolved city (e.g. the input value written
	// back after SuggestionChosen) does not reopen the dropdown.
	if c.state.SelectedCity != "" && equalCityNames(value, c.state.SelectedCity) {
		return
	}

	suggestions, err := c.geocoder.Suggest(ctx, value)
	if err != nil {
		c.logger.Warn("suggestion fetch failed", "input", value, "error", err)
		c.state.Suggestions = nil
		c.state.ShowSuggestions = false
		return
	}
	c.state.Suggestions = suggestions
	c.state.ShowSuggestions = len(suggestions) > 0
}

// SuggestionChosen resolves the chosen suggestion to coordinates. Only the
// city part (text before the first comma) goes to the geocoder. On failure
// the previous coordinates are kept and the dropdown stays open.
func (c *widgetController) SuggestionChosen(ctx context.Context, suggestion string) {
	cityPart := strings.SplitN(suggestion, ",", 2)[0]

	coords, err := c.geocoder.Resolve(ctx, cityPart)
	if err != nil {
		c.logger.Warn("could not resolve city", "city", cityPart, "error", err)
		return
	}

	c.state.Coordinates = &coords
	c.state.City = suggestion
	c.state.SelectedCity = suggestion
	c.state.ShowSuggestions = false
}

// UseCoordinates seeds the controller with externally supplied coordinates,
// the equivalent of the widget's hidden lat/lon form fields being filled in.
func (c *widgetController) UseCoordinates(coords Coordinates) {
	c.state.Coordinates = &coords
}

// OutsideClick closes the suggestion dropdown.
func (c *widgetController) OutsideClick() {
	c.state.ShowSuggestions = false
}

// Submit runs the forecast pipeline for the selected coordinates and, on
// success, starts the typewriter over the generated text. Submission without
// coordinates fails with ErrNoCoordinates, mirroring the disabled submit
// button.
func (c *widgetController) Submit(ctx context.Context) (string, error) {
	if c.state.Coordinates == nil {
		return "", ErrNoCoordinates
	}

	text, err := c.forecast(ctx, *c.state.Coordinates)
	if err != nil {
		return "", err
	}

	c.tw.Start(text)
	return text, nil
}

// RevealDone exposes the completion channel of the current reveal.
func (c *widgetController) RevealDone() <-chan struct{} {
	return c.tw.Done()
}

// Close stops the typewriter; it must be called when the hosting view is
// torn down so no ticks outlive the widget.
func (c *widgetController) Close() {
	c.tw.Stop()
}

// State returns a copy of the current view state.
func (c *widgetController) State() widgetState {
	state := c.state
	if state.Suggestions != nil {
		state.Suggestions = append([]string(nil), state.Suggestions...)
	}
	return state
}
