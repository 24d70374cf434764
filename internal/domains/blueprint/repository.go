package blueprint

import "context"

// ListFailure is a per-record read or parse failure produced while listing.
// These are soft: the batch still succeeds, and the caller decides how to
// surface them (typically a logged diagnostic).
type ListFailure struct {
	ID  string
	Err error
}

// Repository defines data access for blueprint records over the flat
// key/value store. It exclusively owns the translation between Blueprint
// and the stored JSON representation.
type Repository interface {
	// List retrieves every record the index knows about, newest-first by
	// CreatedAt. An absent or empty index yields an empty slice, not an
	// error. A record that fails to read or parse becomes a ListFailure
	// and is skipped; one bad record never aborts the batch.
	// Errors: chainstore.ErrUnavailable
	List(ctx context.Context) ([]Blueprint, []ListFailure, error)

	// GetByID retrieves a single record.
	// Errors: ErrBlueprintNotFound, ErrRecordCorrupted, chainstore.ErrUnavailable
	GetByID(ctx context.Context, id string) (*Blueprint, error)

	// Create assigns a fresh id and CreatedAt, writes the record, then
	// appends the id to the index. The record write strictly precedes the
	// index write: a crash in between leaves an orphan record (harmless),
	// never a dangling index entry.
	// Returns: the stored blueprint with ID and CreatedAt populated
	// Errors: chainstore.ErrUnavailable
	Create(ctx context.Context, bp *Blueprint) (*Blueprint, error)

	// Update applies mutate to the current record and rewrites it at the
	// same key. If mutate returns an error nothing is written and the error
	// is returned unchanged.
	// Errors: ErrBlueprintNotFound, ErrRecordCorrupted, chainstore.ErrUnavailable
	Update(ctx context.Context, id string, mutate func(*Blueprint) error) (*Blueprint, error)
}
