package history

import (
	"encoding/json"
	"fmt"
	"time"
)

type WatchStatus string

const (
	StatusWatched   WatchStatus = "watched"
	StatusPartial   WatchStatus = "partial"
	StatusUnwatched WatchStatus = "unwatched"
	StatusUnknown   WatchStatus = "unknown"
)

func (s WatchStatus) Valid() bool {
	switch s {
	case StatusWatched, StatusPartial, StatusUnwatched, StatusUnknown:
		return true
	}
	return false
}

// UnmarshalJSON maps anything unrecognised to StatusUnknown so a stored
// history written by a newer build still loads.
func (s *WatchStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("watch status: %w", err)
	}

	st := WatchStatus(raw)
	if !st.Valid() {
		st = StatusUnknown
	}
	*s = st

	return nil
}

// EpisodeRecord is one extracted history entry. EpisodeURL is the identity.
type EpisodeRecord struct {
	SeriesTitle string `json:"seriesTitle"`
	SeriesURL   string `json:"seriesUrl"`

	EpisodeURL string  `json:"episodeUrl"`
	FullTitle  string  `json:"fullTitle"`
	Season     *int    `json:"season"`
	Number     *int    `json:"number"`
	Name       *string `json:"name"`

	WatchStatus WatchStatus `json:"watchStatus"`
	Date        *string     `json:"date"`
	SourceIndex int         `json:"sourceIndex"`
}

// Parsed reports whether the title yielded a season and episode number.
func (r EpisodeRecord) Parsed() bool {
	return r.Season != nil && r.Number != nil
}

func (r EpisodeRecord) Label() string {
	if !r.Parsed() {
		return r.FullTitle
	}

	name := ""
	if r.Name != nil {
		name = *r.Name
	}

	return fmt.Sprintf("S%d E%d - %s", *r.Season, *r.Number, name)
}

// Store is the persisted accumulation of every record seen so far.
type Store struct {
	Records     []EpisodeRecord `json:"data"`
	LastUpdated time.Time       `json:"lastUpdated"`
	IsScanning  bool            `json:"isScanning"`
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
