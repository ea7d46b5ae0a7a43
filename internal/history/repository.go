package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brogergvhs/watchgrid/internal/storage"
)

const DefaultKey = "crunchyrollHistory"

var ErrStorage = errors.New("history storage failure")

// Repository keeps the Store as a JSON document under a single key.
type Repository struct {
	kv  storage.KV
	key string
}

func NewRepository(kv storage.KV, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{kv: kv, key: key}
}

func (r *Repository) Key() string {
	return r.key
}

// Load returns the stored history, or an empty Store if nothing was saved yet.
func (r *Repository) Load(ctx context.Context) (*Store, error) {
	raw, err := r.kv.Get(ctx, r.key)
	if errors.Is(err, storage.ErrNotFound) {
		return &Store{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrStorage, r.key, err)
	}

	var s Store
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrStorage, r.key, err)
	}

	return &s, nil
}

func (r *Repository) Save(ctx context.Context, s *Store) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, r.key, err)
	}

	if err := r.kv.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("%w: set %s: %w", ErrStorage, r.key, err)
	}

	return nil
}

// Reset wipes the whole history.
func (r *Repository) Reset(ctx context.Context) error {
	if err := r.kv.Remove(ctx, r.key); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: remove %s: %w", ErrStorage, r.key, err)
	}
	return nil
}
