package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCityName(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Simple Lowercase", input: "moscow", want: "moscow"},
		{name: "Uppercase", input: "MOSCOW", want: "moscow"},
		{name: "Polish Diacritics", input: "Wrocław", want: "wroclaw"},
		{name: "French Diacritics", input: "Orléans", want: "orleans"},
		{name: "Cyrillic", input: "Москва", want: "москва"},
		{name: "Empty String", input: "", want: ""},
		{name: "Invalid UTF-8", input: string([]byte{0xff, 0xfe}), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeCityName(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEqualCityNames(t *testing.T) {
	assert.True(t, equalCityNames("Wrocław", "WROCLAW"))
	assert.True(t, equalCityNames("Москва", "москва"))
	assert.False(t, equalCityNames("Москва", "Казань"))

	invalid := string([]byte{0xff})
	assert.True(t, equalCityNames(invalid, invalid), "invalid input should fall back to exact comparison")
	assert.False(t, equalCityNames(invalid, "moscow"))
}
