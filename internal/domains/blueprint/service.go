package blueprint

import "context"

// Service defines business logic for the blueprint registry.
type Service interface {
	// List retrieves listings newest-first, optionally filtered by a
	// case-insensitive search over title/architect and an exact status.
	List(ctx context.Context, filter ListFilter) ([]BlueprintResponse, error)

	// GetByID retrieves one listing.
	// Errors: ErrBlueprintNotFound
	GetByID(ctx context.Context, id string) (*BlueprintResponse, error)

	// Create registers a new draft blueprint owned by owner.
	// Business rules:
	// - request must validate (title, architect, non-negative price)
	// - price is encoded to the codec token before persisting
	// Errors: validation errors, chainstore.ErrUnavailable
	Create(ctx context.Context, owner string, req *CreateBlueprintRequest) (*BlueprintResponse, error)

	// Publish transitions draft -> published.
	// Business rules:
	// - caller must equal the record owner (case-insensitive)
	// - only valid from draft; anything else fails without mutating
	// Errors: ErrBlueprintNotFound, ErrNotAuthorized, ErrInvalidTransition
	Publish(ctx context.Context, id, caller string) (*BlueprintResponse, error)

	// MarkSold transitions published -> sold. Same authorization rules as
	// Publish; only valid from published.
	// Errors: ErrBlueprintNotFound, ErrNotAuthorized, ErrInvalidTransition
	MarkSold(ctx context.Context, id, caller string) (*BlueprintResponse, error)

	// Stats aggregates per-status counts and the total decoded value of all
	// listings. Records whose token does not decode contribute nothing to
	// the total.
	Stats(ctx context.Context) (*MarketStats, error)
}
