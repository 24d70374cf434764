package auth

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrUnknownNonce     = errors.New("unknown or expired login nonce")
	ErrSignatureMissing = errors.New("login signature is missing")
	ErrInvalidSignature = errors.New("login signature verification failed")
	ErrAddressMismatch  = errors.New("public key does not belong to the claimed address")
	ErrInvalidPublicKey = errors.New("malformed login public key")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return "VALIDATION_FAILED"
	case errors.Is(err, ErrUnknownNonce):
		return "UNKNOWN_NONCE"
	case errors.Is(err, ErrSignatureMissing):
		return "SIGNATURE_MISSING"
	case errors.Is(err, ErrInvalidSignature):
		return "INVALID_SIGNATURE"
	case errors.Is(err, ErrAddressMismatch):
		return "ADDRESS_MISMATCH"
	case errors.Is(err, ErrInvalidPublicKey):
		return "INVALID_PUBLIC_KEY"
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
	case errors.Is(err, ErrUnknownNonce), errors.Is(err, ErrSignatureMissing),
		errors.Is(err, ErrInvalidSignature), errors.Is(err, ErrAddressMismatch),
		errors.Is(err, ErrInvalidPublicKey):
		return 401
	default:
		return 500
	}
}
