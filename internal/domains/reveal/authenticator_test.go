package reveal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint-registry/internal/domains/blueprint"
	bpRepo "blueprint-registry/internal/domains/blueprint/repository"
	"blueprint-registry/internal/infrastructure/chainstore"
	"blueprint-registry/internal/pricecodec"
	"blueprint-registry/pkg/wallet"
)

// rejectingSigner simulates the user declining the request in their wallet.
type rejectingSigner struct{}

func (rejectingSigner) Address() string { return "0xdead" }
func (rejectingSigner) SignMessage(context.Context, string) ([]byte, error) {
	return nil, wallet.ErrRejected
}

func testSession() SessionParams {
	return SessionParams{
		PublicKey:       "0xfeed",
		ContractAddress: "0xC0FFEE0000000000000000000000000000000000",
		ChainID:         11155111,
		StartTimestamp:  1700000000,
		DurationDays:    30,
	}
}

func newAuthWithRecord(t *testing.T, price float64) (*Authenticator, string) {
	t.Helper()

	repo := bpRepo.NewKVRepository(chainstore.NewMemoryStore())
	created, err := repo.Create(context.Background(), &blueprint.Blueprint{
		EncodedPrice: pricecodec.Encode(price),
		Owner:        "0xAbC0000000000000000000000000000000000001",
		Title:        "Riverside Library",
		Architect:    "Tadao Ando",
		Status:       blueprint.StatusDraft,
	})
	require.NoError(t, err)

	return NewAuthenticator(repo, testSession()), created.ID
}

func TestChallengeMessageFormat(t *testing.T) {
	msg := testSession().ChallengeMessage()

	want := "publickey:0xfeed\n" +
		"contractAddresses:0xC0FFEE0000000000000000000000000000000000\n" +
		"contractsChainId:11155111\n" +
		"startTimestamp:1700000000\n" +
		"durationDays:30"
	assert.Equal(t, want, msg)
}

func TestNewSessionParamsDeterministicChallenge(t *testing.T) {
	params, err := NewSessionParams("0xC0FFEE", 1, 30)
	require.NoError(t, err)

	// Parameters are fixed at session start; the message never varies
	// within a session.
	assert.Equal(t, params.ChallengeMessage(), params.ChallengeMessage())
	assert.Len(t, params.PublicKey, 2+64)
}

func TestRevealPriceMatchesDirectDecode(t *testing.T) {
	auth, id := newAuthWithRecord(t, 2.5)

	signer, err := wallet.NewKeyPair()
	require.NoError(t, err)

	price, err := auth.RevealPrice(context.Background(), id, signer)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, price, 1e-9)
}

func TestRevealPriceNotConnected(t *testing.T) {
	auth, id := newAuthWithRecord(t, 2.5)

	_, err := auth.RevealPrice(context.Background(), id, nil)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestRevealPriceDeclined(t *testing.T) {
	auth, id := newAuthWithRecord(t, 2.5)

	_, err := auth.RevealPrice(context.Background(), id, rejectingSigner{})
	assert.ErrorIs(t, err, ErrAuthDeclined)
}

func TestRevealWithSignature(t *testing.T) {
	auth, id := newAuthWithRecord(t, 99.99)

	price, err := auth.RevealWithSignature(context.Background(), id, []byte{0x01, 0x02})
	require.NoError(t, err)
	assert.InDelta(t, 99.99, price, 1e-9)

	_, err = auth.RevealWithSignature(context.Background(), id, nil)
	assert.ErrorIs(t, err, ErrAuthDeclined)
}

func TestRevealUnknownBlueprint(t *testing.T) {
	auth, _ := newAuthWithRecord(t, 2.5)

	_, err := auth.RevealWithSignature(context.Background(), "bp-missing", []byte{0x01})
	assert.ErrorIs(t, err, blueprint.ErrBlueprintNotFound)
}

func TestRevealUndecodablePrice(t *testing.T) {
	repo := bpRepo.NewKVRepository(chainstore.NewMemoryStore())
	created, err := repo.Create(context.Background(), &blueprint.Blueprint{
		EncodedPrice: "FHE-not!!base64",
		Owner:        "0xAbC0000000000000000000000000000000000001",
		Title:        "Broken",
		Architect:    "X",
		Status:       blueprint.StatusDraft,
	})
	require.NoError(t, err)

	auth := NewAuthenticator(repo, testSession())
	_, err = auth.RevealWithSignature(context.Background(), created.ID, []byte{0x01})
	assert.ErrorIs(t, err, ErrUndecodablePrice)
}
