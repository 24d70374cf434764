package auth

import "context"

// Service opens wallet sessions. A client first requests a nonce for its
// address, signs the returned message with its session key, then exchanges
// address + nonce + signature + public key for a session token.
//
// Unlike the reveal flow, login signatures ARE verified here: the public
// key must derive to the claimed address and the signature must verify
// over the nonce message, so a session token is only ever issued to the
// holder of the key behind the address. The nonce is single-use and
// expires.
type Service interface {
	// Nonce issues a fresh single-use login nonce for address.
	Nonce(ctx context.Context, req *NonceRequest) (*NonceResponse, error)

	// Login verifies the signature, consumes the nonce and issues a
	// session token.
	// Errors: ErrUnknownNonce, ErrSignatureMissing, ErrInvalidPublicKey,
	// ErrAddressMismatch, ErrInvalidSignature, validation errors
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}
