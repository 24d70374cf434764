package service

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint-registry/internal/domains/auth"
	"blueprint-registry/pkg/jwt"
	"blueprint-registry/pkg/wallet"
)

func newTestAuth() (auth.Service, *jwt.Manager) {
	manager := jwt.NewManager("test-secret", 1)
	return NewAuthService(manager), manager
}

// signedLogin runs the full nonce handshake for kp and returns a login
// request carrying a valid signature over the nonce message.
func signedLogin(t *testing.T, svc auth.Service, kp *wallet.KeyPair) *auth.LoginRequest {
	t.Helper()

	nonce, err := svc.Nonce(context.Background(), &auth.NonceRequest{Address: kp.Address()})
	require.NoError(t, err)

	sig, err := kp.SignMessage(context.Background(), nonce.Message)
	require.NoError(t, err)

	return &auth.LoginRequest{
		Address:   kp.Address(),
		PublicKey: kp.PublicKeyHex(),
		Nonce:     nonce.Nonce,
		Signature: "0x" + hex.EncodeToString(sig),
	}
}

func TestNonceThenLogin(t *testing.T) {
	svc, manager := newTestAuth()
	ctx := context.Background()

	kp, err := wallet.NewKeyPair()
	require.NoError(t, err)

	nonce, err := svc.Nonce(ctx, &auth.NonceRequest{Address: kp.Address()})
	require.NoError(t, err)
	assert.NotEmpty(t, nonce.Nonce)
	assert.Contains(t, nonce.Message, kp.Address())
	assert.Contains(t, nonce.Message, nonce.Nonce)

	sig, err := kp.SignMessage(ctx, nonce.Message)
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &auth.LoginRequest{
		Address:   kp.Address(),
		PublicKey: kp.PublicKeyHex(),
		Nonce:     nonce.Nonce,
		Signature: "0x" + hex.EncodeToString(sig),
	})
	require.NoError(t, err)

	claims, err := manager.ValidateSessionToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, kp.Address(), claims.Address)
}

func TestLoginRejectsForgedSignature(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	kp, err := wallet.NewKeyPair()
	require.NoError(t, err)

	req := signedLogin(t, svc, kp)
	req.Signature = "0xdeadbeef"

	_, err = svc.Login(ctx, req)
	assert.ErrorIs(t, err, auth.ErrInvalidSignature)
}

func TestLoginRejectsWrongMessageSignature(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	kp, err := wallet.NewKeyPair()
	require.NoError(t, err)

	req := signedLogin(t, svc, kp)

	// A valid signature from the right key over the wrong text is not
	// proof of this handshake.
	sig, err := kp.SignMessage(ctx, "some other message")
	require.NoError(t, err)
	req.Signature = "0x" + hex.EncodeToString(sig)

	_, err = svc.Login(ctx, req)
	assert.ErrorIs(t, err, auth.ErrInvalidSignature)
}

func TestLoginRejectsStolenAddress(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	victim, err := wallet.NewKeyPair()
	require.NoError(t, err)
	attacker, err := wallet.NewKeyPair()
	require.NoError(t, err)

	nonce, err := svc.Nonce(ctx, &auth.NonceRequest{Address: victim.Address()})
	require.NoError(t, err)

	// The attacker signs with their own key but claims the victim's
	// address. The key does not derive to the claimed address.
	sig, err := attacker.SignMessage(ctx, nonce.Message)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &auth.LoginRequest{
		Address:   victim.Address(),
		PublicKey: attacker.PublicKeyHex(),
		Nonce:     nonce.Nonce,
		Signature: "0x" + hex.EncodeToString(sig),
	})
	assert.ErrorIs(t, err, auth.ErrAddressMismatch)
}

func TestLoginRejectsMalformedPublicKey(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	kp, err := wallet.NewKeyPair()
	require.NoError(t, err)

	req := signedLogin(t, svc, kp)
	req.PublicKey = "0x0102not-a-point"

	_, err = svc.Login(ctx, req)
	assert.ErrorIs(t, err, auth.ErrInvalidPublicKey)
}

func TestNonceIsSingleUse(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	kp, err := wallet.NewKeyPair()
	require.NoError(t, err)

	req := signedLogin(t, svc, kp)
	_, err = svc.Login(ctx, req)
	require.NoError(t, err)

	_, err = svc.Login(ctx, req)
	assert.ErrorIs(t, err, auth.ErrUnknownNonce)
}

func TestFailedSignatureDoesNotBurnNonce(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	kp, err := wallet.NewKeyPair()
	require.NoError(t, err)

	req := signedLogin(t, svc, kp)
	good := req.Signature

	req.Signature = "0xdeadbeef"
	_, err = svc.Login(ctx, req)
	require.ErrorIs(t, err, auth.ErrInvalidSignature)

	req.Signature = good
	_, err = svc.Login(ctx, req)
	assert.NoError(t, err)
}

func TestLoginRejectsForeignNonce(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	victim, err := wallet.NewKeyPair()
	require.NoError(t, err)
	other, err := wallet.NewKeyPair()
	require.NoError(t, err)

	nonce, err := svc.Nonce(ctx, &auth.NonceRequest{Address: victim.Address()})
	require.NoError(t, err)

	// Another wallet cannot spend the nonce even with its own valid key.
	sig, err := other.SignMessage(ctx, nonce.Message)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &auth.LoginRequest{
		Address:   other.Address(),
		PublicKey: other.PublicKeyHex(),
		Nonce:     nonce.Nonce,
		Signature: "0x" + hex.EncodeToString(sig),
	})
	assert.ErrorIs(t, err, auth.ErrUnknownNonce)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newTestAuth()
	ctx := context.Background()

	_, err := svc.Nonce(ctx, &auth.NonceRequest{Address: "not-an-address"})
	require.Error(t, err)

	// Missing signature fails validation before any nonce lookup.
	_, err = svc.Login(ctx, &auth.LoginRequest{
		Address: "0xAbCdEf0123456789abcdef0123456789ABCDEF01",
		Nonce:   "n",
	})
	require.Error(t, err)
}
