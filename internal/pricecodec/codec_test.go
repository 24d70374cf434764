package pricecodec

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	prices := []float64{0, 0.01, 1, 2.5, 12.5, 99.99, 1500, 123456.789}

	for _, p := range prices {
		token := Encode(p)
		require.True(t, strings.HasPrefix(token, "FHE-"), "token %q missing marker", token)
		assert.InDelta(t, p, Decode(token), 1e-9)
	}
}

func TestEncodeIsPure(t *testing.T) {
	assert.Equal(t, Encode(2.5), Encode(2.5))
}

func TestDecodePlainNumberFallback(t *testing.T) {
	// Records written before the marker existed hold bare decimal strings.
	assert.Equal(t, 12.5, Decode("12.5"))
	assert.Equal(t, 0.0, Decode("0"))
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		"garbage",
		"FHE-not!!base64",
		"FHE-", // empty payload
		"",
	}

	for _, c := range cases {
		got := Decode(c)
		assert.True(t, math.IsNaN(got), "Decode(%q) = %v, want NaN", c, got)
	}
}

func TestDecodeBase64OfNonNumber(t *testing.T) {
	// Valid base64, but the payload is not a number.
	got := Decode("FHE-aGVsbG8=")
	assert.True(t, math.IsNaN(got))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(2.5))
	assert.True(t, IsValid(0))
	assert.False(t, IsValid(math.NaN()))
	assert.False(t, IsValid(math.Inf(1)))
}
