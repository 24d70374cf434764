// Package reveal gates disclosure of a blueprint's decoded price behind
// proof of wallet control. No cryptographic decryption happens here: the
// price token is reversible encoding, and successful production of a
// signature over the session challenge is treated as sufficient proof
// (verification authority is external to this service).
package reveal

import (
	"context"
	"errors"
	"fmt"

	"blueprint-registry/internal/domains/blueprint"
	"blueprint-registry/internal/pricecodec"
	"blueprint-registry/pkg/wallet"
)

// Authenticator runs the signed-challenge reveal flow for one session.
type Authenticator struct {
	repo    blueprint.Repository
	session SessionParams
}

func NewAuthenticator(repo blueprint.Repository, session SessionParams) *Authenticator {
	return &Authenticator{repo: repo, session: session}
}

// Session exposes the challenge parameters so clients can sign out-of-band.
func (a *Authenticator) Session() SessionParams {
	return a.session
}

// RevealPrice asks signer for a signature over the session challenge and,
// on success, returns the decoded price of the blueprint. The decoded value
// is returned to the caller and retained nowhere; hiding it again is purely
// the caller dropping it.
//
// Errors: ErrNotConnected (nil signer, refused before any challenge is
// built), ErrAuthDeclined (user rejected), ErrUndecodablePrice,
// blueprint.ErrBlueprintNotFound.
func (a *Authenticator) RevealPrice(ctx context.Context, id string, signer wallet.Signer) (float64, error) {
	if signer == nil {
		return 0, ErrNotConnected
	}

	sig, err := signer.SignMessage(ctx, a.session.ChallengeMessage())
	if err != nil {
		if errors.Is(err, wallet.ErrRejected) {
			return 0, ErrAuthDeclined
		}
		return 0, fmt.Errorf("sign reveal challenge: %w", err)
	}
	if len(sig) == 0 {
		return 0, ErrAuthDeclined
	}

	return a.decodePrice(ctx, id)
}

// RevealWithSignature is the transport-level variant: the caller signed the
// challenge out-of-band and submits the signature bytes. An empty signature
// is a declined request.
func (a *Authenticator) RevealWithSignature(ctx context.Context, id string, signature []byte) (float64, error) {
	if len(signature) == 0 {
		return 0, ErrAuthDeclined
	}
	return a.decodePrice(ctx, id)
}

func (a *Authenticator) decodePrice(ctx context.Context, id string) (float64, error) {
	bp, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	price := pricecodec.Decode(bp.EncodedPrice)
	if !pricecodec.IsValid(price) {
		return 0, fmt.Errorf("%w: blueprint %s", ErrUndecodablePrice, id)
	}
	return price, nil
}
