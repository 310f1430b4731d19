package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Flood hits Leeds", "Flood hits Leeds"},
		{"whitespace runs", "Flood\thits\n\n  Leeds  ", "Flood hits Leeds"},
		{"nul bytes", "Flood\x00 hits Leeds", "Flood hits Leeds"},
		{"control chars", "Flood\x01\x02 hits\x7f Leeds", "Flood hits Leeds"},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Flood hits   Leeds",
		"  café by the river  ", // decomposed é, normalized to NFC
		"line\r\nbreaks\tand\ttabs",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestFingerprintDeterminism(t *testing.T) {
	a := Fingerprint(Normalize("Flood hits Leeds"))
	b := Fingerprint(Normalize("Flood   hits\nLeeds"))
	require.Equal(t, a, b, "identical normalized content must share a fingerprint")

	c := Fingerprint(Normalize("Flood hits York"))
	assert.NotEqual(t, a, c)

	assert.Len(t, a, 32)
}
