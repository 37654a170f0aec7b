package main

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// This file contains helper functions for string manipulation.

// normalizeCityName returns a standardized form of a city name: diacritical
// marks removed ("Wrocław" becomes "Wroclaw") and lowercased. The widget
// uses it to compare user input against the resolved city without being
// tripped up by accents or case.
func normalizeCityName(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("input string is not valid UTF-8")
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return strings.ToLower(result), nil
}

// equalCityNames compares two city names after normalization. Invalid input
// falls back to an exact comparison.
func equalCityNames(a, b string) bool {
	na, errA := normalizeCityName(a)
	nb, errB := normalizeCityName(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return na == nb
}
