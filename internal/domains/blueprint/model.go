package blueprint

import "strings"

// Status is the lifecycle state of a blueprint listing.
// Transitions are monotonic: draft -> published -> sold. No skips, no
// reversals, and records are never deleted.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusSold      Status = "sold"
)

// IsValid reports whether s is one of the known states.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusSold:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is the single legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusPublished
	case StatusPublished:
		return next == StatusSold
	}
	return false
}

// Blueprint represents one registry entry: an architectural design listing
// whose price is persisted only as the codec token in EncodedPrice.
type Blueprint struct {
	// Identity - assigned at creation, immutable
	ID string `json:"id"`

	// EncodedPrice is the codec token; the only persisted form of the price
	EncodedPrice string `json:"encoded_price"`

	// CreatedAt is a Unix timestamp, set at creation, immutable
	CreatedAt int64 `json:"created_at"`

	// Owner is the creator's wallet address, immutable
	Owner string `json:"owner"`

	// Listing attributes, mutable only by full-record rewrite
	Title           string `json:"title"`
	Architect       string `json:"architect"`
	PreviewImageURL string `json:"preview_image_url"`

	Status Status `json:"status"`
}

// OwnedBy reports whether addr controls this blueprint. Wallet addresses
// compare case-insensitively (mixed-case checksum forms are equivalent).
func (b *Blueprint) OwnedBy(addr string) bool {
	return addr != "" && strings.EqualFold(b.Owner, addr)
}
