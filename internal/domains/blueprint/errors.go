package blueprint

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blueprint-registry/internal/infrastructure/chainstore"
)

var (
	// Business Rule Errors
	ErrBlueprintNotFound = errors.New("blueprint not found")
	ErrNotAuthorized     = errors.New("caller is not the blueprint owner")
	ErrInvalidTransition = errors.New("invalid blueprint status transition")

	// Validation Errors
	ErrInvalidTitle  = errors.New("blueprint title is invalid")
	ErrInvalidPrice  = errors.New("blueprint price must be non-negative")
	ErrInvalidStatus = errors.New("unknown blueprint status")

	// Per-record soft failures: the offending record is skipped, never the batch
	ErrRecordCorrupted = errors.New("stored blueprint record is corrupted")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return "VALIDATION_FAILED"
	case errors.Is(err, ErrBlueprintNotFound):
		return "BLUEPRINT_NOT_FOUND"
	case errors.Is(err, ErrNotAuthorized):
		return "NOT_AUTHORIZED"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrInvalidStatus):
		return "VALIDATION_FAILED"
	case errors.Is(err, ErrRecordCorrupted):
		return "RECORD_CORRUPTED"
	case errors.Is(err, chainstore.ErrUnavailable):
		return "STORE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return 400
	case errors.Is(err, ErrBlueprintNotFound):
		return 404
	case errors.Is(err, ErrNotAuthorized):
		return 403
	case errors.Is(err, ErrInvalidTransition):
		return 409
	case errors.Is(err, ErrInvalidTitle), errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrInvalidStatus):
		return 400
	case errors.Is(err, ErrRecordCorrupted):
		return 422
	case errors.Is(err, chainstore.ErrUnavailable):
		return 503
	default:
		return 500
	}
}
