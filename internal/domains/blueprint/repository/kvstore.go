package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"blueprint-registry/internal/domains/blueprint"
	"blueprint-registry/internal/infrastructure/chainstore"
)

// Store keys. The index is a JSON array of ids under one well-known key;
// each record is a JSON object under its own key. These names are shared
// with already-deployed data and must not change.
const (
	indexKey        = "blueprint_keys"
	recordKeyPrefix = "blueprint_"
)

// storedRecord is the persisted JSON shape of a blueprint. The id is not
// part of the payload; it lives in the key and in the index.
type storedRecord struct {
	Data         string           `json:"data"` // codec token
	Timestamp    int64            `json:"timestamp"`
	Owner        string           `json:"owner"`
	Title        string           `json:"title"`
	Architect    string           `json:"architect"`
	Status       blueprint.Status `json:"status"`
	PreviewImage string           `json:"previewImage"`
}

// KVRepository implements blueprint.Repository on the flat key/value store.
//
// All mutations of the index and of individual records are serialized
// through mu: two concurrent creates would otherwise race on the index
// read-modify-write and one append could silently overwrite the other.
type KVRepository struct {
	store chainstore.Store
	mu    sync.Mutex
}

func NewKVRepository(store chainstore.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) ([]blueprint.Blueprint, []blueprint.ListFailure, error) {
	if err := r.ensureAvailable(ctx); err != nil {
		return nil, nil, err
	}

	ids, err := r.readIndex(ctx)
	if err != nil {
		return nil, nil, err
	}

	list := make([]blueprint.Blueprint, 0, len(ids))
	var failures []blueprint.ListFailure
	for _, id := range ids {
		bp, err := r.readRecord(ctx, id)
		if err != nil {
			// Per-record failures are isolated; the caller aggregates them.
			failures = append(failures, blueprint.ListFailure{ID: id, Err: err})
			continue
		}
		list = append(list, *bp)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})

	return list, failures, nil
}

func (r *KVRepository) GetByID(ctx context.Context, id string) (*blueprint.Blueprint, error) {
	if err := r.ensureAvailable(ctx); err != nil {
		return nil, err
	}
	return r.readRecord(ctx, id)
}

func (r *KVRepository) Create(ctx context.Context, bp *blueprint.Blueprint) (*blueprint.Blueprint, error) {
	if err := r.ensureAvailable(ctx); err != nil {
		return nil, err
	}

	stored := *bp
	if stored.ID == "" {
		stored.ID = newID()
	}
	if stored.CreatedAt == 0 {
		stored.CreatedAt = time.Now().Unix()
	}
	if stored.Status == "" {
		stored.Status = blueprint.StatusDraft
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Record first, index second: a crash between the two leaves an orphan
	// record, never an index entry pointing at nothing.
	if err := r.writeRecord(ctx, &stored); err != nil {
		return nil, err
	}

	ids, err := r.readIndex(ctx)
	if err != nil {
		return nil, err
	}
	ids = append(ids, stored.ID)

	payload, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("marshal blueprint index: %w", err)
	}
	if err := r.store.SetData(ctx, indexKey, payload); err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *KVRepository) Update(ctx context.Context, id string, mutate func(*blueprint.Blueprint) error) (*blueprint.Blueprint, error) {
	if err := r.ensureAvailable(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bp, err := r.readRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mutate(bp); err != nil {
		return nil, err
	}

	if err := r.writeRecord(ctx, bp); err != nil {
		return nil, err
	}
	return bp, nil
}

func (r *KVRepository) ensureAvailable(ctx context.Context) error {
	ok, err := r.store.IsAvailable(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", chainstore.ErrUnavailable, err)
	}
	if !ok {
		return chainstore.ErrUnavailable
	}
	return nil
}

func (r *KVRepository) readIndex(ctx context.Context) ([]string, error) {
	raw, err := r.store.GetData(ctx, indexKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("%w: index %q: %v", blueprint.ErrRecordCorrupted, indexKey, err)
	}
	return ids, nil
}

func (r *KVRepository) readRecord(ctx context.Context, id string) (*blueprint.Blueprint, error) {
	raw, err := r.store.GetData(ctx, recordKey(id))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s", blueprint.ErrBlueprintNotFound, id)
	}

	var rec storedRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", blueprint.ErrRecordCorrupted, id, err)
	}

	status := rec.Status
	if status == "" {
		status = blueprint.StatusDraft // records predating the status field
	}

	return &blueprint.Blueprint{
		ID:              id,
		EncodedPrice:    rec.Data,
		CreatedAt:       rec.Timestamp,
		Owner:           rec.Owner,
		Title:           rec.Title,
		Architect:       rec.Architect,
		PreviewImageURL: rec.PreviewImage,
		Status:          status,
	}, nil
}

func (r *KVRepository) writeRecord(ctx context.Context, bp *blueprint.Blueprint) error {
	rec := storedRecord{
		Data:         bp.EncodedPrice,
		Timestamp:    bp.CreatedAt,
		Owner:        bp.Owner,
		Title:        bp.Title,
		Architect:    bp.Architect,
		Status:       bp.Status,
		PreviewImage: bp.PreviewImageURL,
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal blueprint %s: %w", bp.ID, err)
	}
	return r.store.SetData(ctx, recordKey(bp.ID), payload)
}

func recordKey(id string) string {
	return recordKeyPrefix + id
}

// newID builds a collision-resistant id without any coordination point:
// creation time in milliseconds plus a random suffix.
func newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return fmt.Sprintf("bp-%d-%s", time.Now().UnixMilli(), suffix)
}
