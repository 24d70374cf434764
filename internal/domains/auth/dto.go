package auth

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// NonceRequest - POST /v1/auth/nonce
type NonceRequest struct {
	Address string `json:"address" binding:"required"`
}

func (r NonceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address,
			validation.Required.Error("address is required"),
			validation.Match(addressPattern).Error("address must be a 0x-prefixed hex address"),
		),
	)
}

// NonceResponse - the message the wallet must sign to log in
type NonceResponse struct {
	Nonce   string `json:"nonce"`
	Message string `json:"message"`
}

// LoginRequest - POST /v1/auth/login
// Signature is the session key's signature over the nonce message and
// PublicKey the uncompressed session public key, both hex-encoded. The
// address the session is opened for must be the one the public key
// derives to.
type LoginRequest struct {
	Address   string `json:"address" binding:"required"`
	Nonce     string `json:"nonce" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	PublicKey string `json:"public_key" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address,
			validation.Required.Error("address is required"),
			validation.Match(addressPattern).Error("address must be a 0x-prefixed hex address"),
		),
		validation.Field(&r.Nonce, validation.Required.Error("nonce is required")),
		validation.Field(&r.Signature, validation.Required.Error("signature is required")),
		validation.Field(&r.PublicKey, validation.Required.Error("public key is required")),
	)
}

// LoginResponse - session token for the wallet
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Address     string `json:"address"`
}
