package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"blueprint-registry/internal/domains/auth"
	"blueprint-registry/pkg/jwt"
	"blueprint-registry/pkg/logger"
	"blueprint-registry/pkg/wallet"
)

const nonceTTL = 5 * time.Minute

type issuedNonce struct {
	address   string
	message   string // the exact text the session key must sign
	expiresAt time.Time
}

type authService struct {
	jwtManager *jwt.Manager

	mu     sync.Mutex
	nonces map[string]issuedNonce
}

func NewAuthService(jwtManager *jwt.Manager) auth.Service {
	return &authService{
		jwtManager: jwtManager,
		nonces:     make(map[string]issuedNonce),
	}
}

func (s *authService) Nonce(_ context.Context, req *auth.NonceRequest) (*auth.NonceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	nonce := uuid.NewString()

	message := loginMessage(req.Address, nonce)

	s.mu.Lock()
	s.pruneLocked()
	s.nonces[nonce] = issuedNonce{
		address:   strings.ToLower(req.Address),
		message:   message,
		expiresAt: time.Now().Add(nonceTTL),
	}
	s.mu.Unlock()

	return &auth.NonceResponse{
		Nonce:   nonce,
		Message: message,
	}, nil
}

func (s *authService) Login(_ context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Signature) == "" {
		return nil, auth.ErrSignatureMissing
	}

	// The session key must belong to the claimed address: the address is
	// derived from the submitted public key, never taken on faith.
	pub, err := wallet.ParsePublicKey(req.PublicKey)
	if err != nil {
		return nil, auth.ErrInvalidPublicKey
	}
	if !strings.EqualFold(pub.Address(), req.Address) {
		return nil, auth.ErrAddressMismatch
	}

	s.mu.Lock()
	issued, ok := s.nonces[req.Nonce]
	s.mu.Unlock()

	if !ok || time.Now().After(issued.expiresAt) || issued.address != strings.ToLower(req.Address) {
		return nil, auth.ErrUnknownNonce
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(req.Signature, "0x"))
	if err != nil || !pub.Verify(issued.message, sig) {
		return nil, auth.ErrInvalidSignature
	}

	// Consume the nonce only after a verified signature; a concurrent
	// duplicate that lost the race gets ErrUnknownNonce.
	s.mu.Lock()
	_, still := s.nonces[req.Nonce]
	delete(s.nonces, req.Nonce)
	s.mu.Unlock()
	if !still {
		return nil, auth.ErrUnknownNonce
	}

	token, err := s.jwtManager.GenerateSessionToken(req.Address)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	logger.Info("wallet session opened", map[string]interface{}{
		"address": strings.ToLower(req.Address),
	})

	return &auth.LoginResponse{
		AccessToken: token,
		Address:     req.Address,
	}, nil
}

// pruneLocked drops expired nonces. Caller holds mu.
func (s *authService) pruneLocked() {
	now := time.Now()
	for nonce, issued := range s.nonces {
		if now.After(issued.expiresAt) {
			delete(s.nonces, nonce)
		}
	}
}

func loginMessage(address, nonce string) string {
	return fmt.Sprintf("Sign in to Blueprint Registry\nAddress: %s\nNonce: %s", address, nonce)
}
