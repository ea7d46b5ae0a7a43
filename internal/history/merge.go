package history

import (
	"context"
	"sync"
	"time"
)

// Merge appends the records of batch whose EpisodeURL is not stored yet and
// returns the new store plus the number of records added. Existing records
// are never touched or reordered; the first version of an episode wins.
func Merge(existing Store, batch []EpisodeRecord, now time.Time, scanning bool) (Store, int) {
	seen := make(map[string]struct{}, len(existing.Records)+len(batch))
	for _, r := range existing.Records {
		seen[r.EpisodeURL] = struct{}{}
	}

	records := make([]EpisodeRecord, len(existing.Records), len(existing.Records)+len(batch))
	copy(records, existing.Records)

	added := 0
	for _, r := range batch {
		if _, dup := seen[r.EpisodeURL]; dup {
			continue
		}
		seen[r.EpisodeURL] = struct{}{}
		records = append(records, r)
		added++
	}

	return Store{
		Records:     records,
		LastUpdated: now,
		IsScanning:  scanning,
	}, added
}

type MergeResult struct {
	Total int
	Added int
}

// Merger applies Merge against a Repository. The load-merge-save sequence is
// a critical section, so concurrent callers cannot break URL uniqueness.
type Merger struct {
	mu   sync.Mutex
	repo *Repository
	now  func() time.Time
}

func NewMerger(repo *Repository) *Merger {
	return &Merger{repo: repo, now: time.Now}
}

func (m *Merger) Merge(ctx context.Context, batch []EpisodeRecord, scanning bool) (MergeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, err := m.repo.Load(ctx)
	if err != nil {
		return MergeResult{}, err
	}

	updated, added := Merge(*existing, batch, m.now().UTC(), scanning)

	if err := m.repo.Save(ctx, &updated); err != nil {
		return MergeResult{}, err
	}

	return MergeResult{Total: len(updated.Records), Added: added}, nil
}
