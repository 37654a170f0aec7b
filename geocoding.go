package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"
)

// This file provides the application's geocoding capabilities: partial-name
// city suggestions for the widget dropdown and name-to-coordinates
// resolution for the hidden form fields. The provider is abstracted behind
// the GeocodingService interface, which keeps the widget and the HTTP
// handlers independent of the concrete service (Open-Meteo here) and makes
// testing with mocks straightforward.

// ErrNoResultsFound is returned when a geocoding query yields no results.
var ErrNoResultsFound = errors.New("no results found for the given query")

// minSuggestLength is the minimum query length (in runes) before the
// provider is called; shorter input yields an empty list without a request.
const minSuggestLength = 2

const maxSuggestions = 5

type GeocodingService interface {
	// Suggest returns up to maxSuggestions display strings for a partial
	// city name, in provider order. The error is advisory: callers are
	// expected to log it and show an empty list.
	Suggest(ctx context.Context, partial string) ([]string, error)
	// Resolve maps a chosen city name to its coordinates, or
	// ErrNoResultsFound when the provider has no match.
	Resolve(ctx context.Context, cityName string) (Coordinates, error)
}

// OMeteoGeocodingService is a GeocodingService that uses the Open-Meteo
// geocoding API.
type OMeteoGeocodingService struct {
	searchURL  string
	language   string
	httpClient *http.Client
}

func NewOMeteoGeocodingService(searchURL, language string, httpClient *http.Client) *OMeteoGeocodingService {
	return &OMeteoGeocodingService{
		searchURL:  searchURL,
		language:   language,
		httpClient: httpClient,
	}
}

func (s *OMeteoGeocodingService) Suggest(ctx context.Context, partial string) ([]string, error) {
	if utf8.RuneCountInString(partial) < minSuggestLength {
		return nil, nil
	}

	results, err := s.search(ctx, partial, maxSuggestions)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, len(results))
	for _, r := range results {
		suggestion := CitySuggestion{
			Name:    r.Name,
			Admin1:  r.Admin1,
			Country: r.Country,
		}
		suggestions = append(suggestions, suggestion.Display())
	}
	return suggestions, nil
}

func (s *OMeteoGeocodingService) Resolve(ctx context.Context, cityName string) (Coordinates, error) {
	results, err := s.search(ctx, cityName, 1)
	if err != nil {
		return Coordinates{}, err
	}
	if len(results) == 0 {
		return Coordinates{}, ErrNoResultsFound
	}

	return Coordinates{
		Lat: strconv.FormatFloat(results[0].Latitude, 'f', -1, 64),
		Lon: strconv.FormatFloat(results[0].Longitude, 'f', -1, 64),
	}, nil
}

// search performs the actual HTTP request against the Open-Meteo search
// endpoint.
func (s *OMeteoGeocodingService) search(ctx context.Context, name string, count int) ([]geocodeResult, error) {
	baseURL, err := url.Parse(s.searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geocode URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", s.language)
	baseURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API request returned non-200 status: %s", resp.Status)
	}

	var response geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	return response.Results, nil
}

// The following structs represent the structure of the Open-Meteo geocoding
// API JSON response.
type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}
