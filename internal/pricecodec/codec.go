// Package pricecodec encodes blueprint prices into the opaque tokens persisted
// on chain and decodes them back. The token is reversible text encoding, not
// encryption: `FHE-` followed by base64 of the decimal string. Anyone holding
// a token can decode it; confidentiality comes from nothing in this scheme.
// The format is fixed by the deployed records and must not change.
package pricecodec

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
)

const tokenPrefix = "FHE-"

// Encode turns a non-negative price into its stored token. Pure: the same
// input always yields the same token.
func Encode(price float64) string {
	text := strconv.FormatFloat(price, 'f', -1, 64)
	return tokenPrefix + base64.StdEncoding.EncodeToString([]byte(text))
}

// Decode parses a stored token back into a price. Tokens without the FHE-
// marker are parsed as plain decimal strings for backward compatibility with
// records written before the marker existed. Malformed input decodes to NaN;
// callers treat a non-finite result as "no valid price" and fail soft.
func Decode(token string) float64 {
	if strings.HasPrefix(token, tokenPrefix) {
		raw, err := base64.StdEncoding.DecodeString(token[len(tokenPrefix):])
		if err != nil {
			return math.NaN()
		}
		return parsePrice(string(raw))
	}
	return parsePrice(token)
}

// IsValid reports whether a decoded price is usable for display.
func IsValid(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0)
}

func parsePrice(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
