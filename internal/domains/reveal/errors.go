package reveal

import (
	"errors"

	"blueprint-registry/internal/domains/blueprint"
	"blueprint-registry/internal/infrastructure/chainstore"
)

var (
	// ErrNotConnected - no wallet is connected; refused before any
	// challenge is built.
	ErrNotConnected = errors.New("wallet not connected")

	// ErrAuthDeclined - the user or wallet declined the signature request.
	// Non-fatal and re-triable on demand; distinct from transport errors.
	ErrAuthDeclined = errors.New("signature request declined")

	// ErrUndecodablePrice - the stored token does not decode to a finite
	// number.
	ErrUndecodablePrice = errors.New("stored price token does not decode")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotConnected):
		return "WALLET_NOT_CONNECTED"
	case errors.Is(err, ErrAuthDeclined):
		return "AUTH_DECLINED"
	case errors.Is(err, ErrUndecodablePrice):
		return "PRICE_UNDECODABLE"
	case errors.Is(err, blueprint.ErrBlueprintNotFound):
		return "BLUEPRINT_NOT_FOUND"
	case errors.Is(err, chainstore.ErrUnavailable):
		return "STORE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotConnected):
		return 401
	case errors.Is(err, ErrAuthDeclined):
		return 403
	case errors.Is(err, ErrUndecodablePrice):
		return 422
	case errors.Is(err, blueprint.ErrBlueprintNotFound):
		return 404
	case errors.Is(err, chainstore.ErrUnavailable):
		return 503
	default:
		return 500
	}
}
