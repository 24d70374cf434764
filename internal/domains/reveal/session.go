package reveal

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// SessionParams are the five values every reveal challenge is bound to.
// They are fixed when the session starts so the challenge message stays
// deterministic for the whole session.
type SessionParams struct {
	PublicKey       string `json:"public_key"`
	ContractAddress string `json:"contract_address"`
	ChainID         int64  `json:"chain_id"`
	StartTimestamp  int64  `json:"start_timestamp"`
	DurationDays    int    `json:"duration_days"`
}

// NewSessionParams starts a reveal session against the given contract.
// The public key material is throwaway per-session randomness; it carries
// no key-management meaning in this scheme.
func NewSessionParams(contractAddress string, chainID int64, durationDays int) (SessionParams, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return SessionParams{}, fmt.Errorf("generate session public key: %w", err)
	}

	return SessionParams{
		PublicKey:       "0x" + hex.EncodeToString(buf),
		ContractAddress: contractAddress,
		ChainID:         chainID,
		StartTimestamp:  time.Now().Unix(),
		DurationDays:    durationDays,
	}, nil
}

// ChallengeMessage renders the fixed five-line challenge the wallet signs.
// Every parameter is embedded verbatim so a signature is bound to exactly
// this session, contract and chain. Line order and labels are part of the
// wire format.
func (p SessionParams) ChallengeMessage() string {
	return fmt.Sprintf(
		"publickey:%s\ncontractAddresses:%s\ncontractsChainId:%d\nstartTimestamp:%d\ndurationDays:%d",
		p.PublicKey, p.ContractAddress, p.ChainID, p.StartTimestamp, p.DurationDays,
	)
}
