// Package wallet abstracts the signing capability a connected wallet exposes
// to the registry. The service itself never holds private keys for users; the
// Signer interface is what the reveal and login flows program against, and
// KeyPair is a local implementation used by tests and development tooling.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ErrRejected is returned by a Signer when the user declines the signature
// request in their wallet. Callers must treat it as a user decision, not a
// transport failure.
var ErrRejected = errors.New("signature request rejected by user")

// ErrInvalidPublicKey is returned when public key material does not parse
// as an uncompressed point on the session curve.
var ErrInvalidPublicKey = errors.New("malformed session public key")

// Signer is the wallet-side signing capability.
type Signer interface {
	// Address returns the 0x-prefixed hex address controlled by this signer.
	Address() string

	// SignMessage signs a human-readable message (EIP-191 style prefix is
	// applied before hashing). May return ErrRejected.
	SignMessage(ctx context.Context, message string) ([]byte, error)
}

// HashMessage hashes a message the way personal_sign does: keccak-256 over
// the "\x19Ethereum Signed Message:\n<len>" prefix plus the message bytes.
func HashMessage(message string) []byte {
	h := sha3.NewLegacyKeccak256()
	fmt.Fprintf(h, "\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return h.Sum(nil)
}

// KeyPair is a local ECDSA signer. It derives its address the Ethereum way
// (keccak of the public key, last 20 bytes) but runs on the P-256 curve, so
// its signatures are only meaningful to components of this service that hold
// the same public key; signature verification against external wallets is
// out of scope by design.
type KeyPair struct {
	priv *ecdsa.PrivateKey
}

// NewKeyPair generates a fresh keypair.
func NewKeyPair() (*KeyPair, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate wallet keypair: %w", err)
	}
	return &KeyPair{priv: priv}, nil
}

// Address returns the 0x-prefixed hex address for this keypair.
func (k *KeyPair) Address() string {
	return addressOf(&k.priv.PublicKey)
}

// PublicKeyHex returns the uncompressed public point, 0x-prefixed hex.
// Clients send this alongside a login signature so the service can verify
// it and derive the address the session is bound to.
func (k *KeyPair) PublicKeyHex() string {
	pub := k.priv.PublicKey
	return "0x" + hex.EncodeToString(elliptic.Marshal(pub.Curve, pub.X, pub.Y))
}

// SignMessage signs the prefixed keccak hash of message.
func (k *KeyPair) SignMessage(_ context.Context, message string) ([]byte, error) {
	sig, err := ecdsa.SignASN1(rand.Reader, k.priv, HashMessage(message))
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature over message by this
// keypair.
func (k *KeyPair) Verify(message string, sig []byte) bool {
	return ecdsa.VerifyASN1(&k.priv.PublicKey, HashMessage(message), sig)
}

// PublicKey is the verification half of a session keypair, parsed from the
// hex form a client submits.
type PublicKey struct {
	key *ecdsa.PublicKey
}

// ParsePublicKey parses 0x-prefixed hex of an uncompressed P-256 point.
func ParsePublicKey(hexKey string) (*PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	x, y := elliptic.Unmarshal(elliptic.P256(), raw)
	if x == nil {
		return nil, ErrInvalidPublicKey
	}

	return &PublicKey{key: &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}}, nil
}

// Address returns the 0x-prefixed hex address derived from this key. It is
// the same derivation KeyPair uses, so the address a login claims can be
// checked against the key that signed it.
func (p *PublicKey) Address() string {
	return addressOf(p.key)
}

// Verify reports whether sig is a valid signature over message by the
// holder of this key.
func (p *PublicKey) Verify(message string, sig []byte) bool {
	return ecdsa.VerifyASN1(p.key, HashMessage(message), sig)
}

// addressOf derives the wallet address: keccak of the public point, last
// 20 bytes, hex with 0x prefix.
func addressOf(pub *ecdsa.PublicKey) string {
	raw := elliptic.Marshal(pub.Curve, pub.X, pub.Y) // 0x04 || X || Y

	h := sha3.NewLegacyKeccak256()
	h.Write(raw[1:])
	sum := h.Sum(nil)

	return "0x" + hex.EncodeToString(sum[12:])
}
