package history

import (
	"sort"
)

// MaxEpisodeNumber bounds the gap-filled range of a season. Records numbered
// outside 1..MaxEpisodeNumber are listed as unparsed instead of in a grid.
const MaxEpisodeNumber = 5000

// Slot is one cell of a season grid. Absent slots stand for episode numbers
// that were never seen; they are rendered as unwatched placeholders.
type Slot struct {
	Number  int            `json:"number"`
	Present bool           `json:"present"`
	Status  WatchStatus    `json:"watchStatus"`
	Episode *EpisodeRecord `json:"episode,omitempty"`
}

type SeasonGrid struct {
	Season int    `json:"season"`
	Slots  []Slot `json:"slots"`
}

// SeriesView is the per-series projection used for display. It is rebuilt
// from the records on every call and never persisted.
type SeriesView struct {
	Title    string          `json:"title"`
	URL      string          `json:"url"`
	Seasons  []int           `json:"seasons"`
	Episodes []EpisodeRecord `json:"episodes"`
	Unparsed []EpisodeRecord `json:"unparsed,omitempty"`
	Grids    []SeasonGrid    `json:"grids"`

	order int
}

// Aggregate groups records by series title. When one title shows up with
// different series URLs, the first one seen is kept.
func Aggregate(records []EpisodeRecord) map[string]*SeriesView {
	out := make(map[string]*SeriesView)

	for _, r := range records {
		v, ok := out[r.SeriesTitle]
		if !ok {
			v = &SeriesView{Title: r.SeriesTitle, URL: r.SeriesURL, order: len(out)}
			out[r.SeriesTitle] = v
		}

		if r.Parsed() && inGridRange(r) {
			v.Episodes = append(v.Episodes, r)
		} else {
			v.Unparsed = append(v.Unparsed, r)
		}
	}

	for _, v := range out {
		v.finish()
	}

	return out
}

func inGridRange(r EpisodeRecord) bool {
	return *r.Number >= 1 && *r.Number <= MaxEpisodeNumber
}

// Ordered is Aggregate in first-seen series order.
func Ordered(records []EpisodeRecord) []*SeriesView {
	byTitle := Aggregate(records)

	out := make([]*SeriesView, 0, len(byTitle))
	for _, v := range byTitle {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })

	return out
}

func (v *SeriesView) finish() {
	sort.SliceStable(v.Episodes, func(i, j int) bool {
		a, b := v.Episodes[i], v.Episodes[j]
		if *a.Season != *b.Season {
			return *a.Season < *b.Season
		}
		return *a.Number < *b.Number
	})

	v.Seasons = v.Seasons[:0]
	for _, ep := range v.Episodes {
		if n := len(v.Seasons); n == 0 || v.Seasons[n-1] != *ep.Season {
			v.Seasons = append(v.Seasons, *ep.Season)
		}
	}

	v.Grids = make([]SeasonGrid, 0, len(v.Seasons))
	for _, season := range v.Seasons {
		v.Grids = append(v.Grids, v.grid(season))
	}
}

func (v *SeriesView) grid(season int) SeasonGrid {
	bySlot := map[int]*EpisodeRecord{}
	maxNum := 0

	for i := range v.Episodes {
		ep := &v.Episodes[i]
		if *ep.Season != season {
			continue
		}
		if _, taken := bySlot[*ep.Number]; !taken {
			bySlot[*ep.Number] = ep
		}
		if *ep.Number > maxNum {
			maxNum = *ep.Number
		}
	}

	g := SeasonGrid{Season: season, Slots: make([]Slot, 0, maxNum)}
	for n := 1; n <= maxNum; n++ {
		ep, ok := bySlot[n]
		if !ok {
			g.Slots = append(g.Slots, Slot{Number: n, Status: StatusUnwatched})
			continue
		}
		g.Slots = append(g.Slots, Slot{Number: n, Present: true, Status: ep.WatchStatus, Episode: ep})
	}

	return g
}

// Grid returns the slots of one season, or nil when the series has none.
func (v *SeriesView) Grid(season int) []Slot {
	for _, g := range v.Grids {
		if g.Season == season {
			return g.Slots
		}
	}
	return nil
}

// Counts tallies present slots by status.
func (g SeasonGrid) Counts() map[WatchStatus]int {
	out := map[WatchStatus]int{}
	for _, s := range g.Slots {
		if s.Present {
			out[s.Status]++
		}
	}
	return out
}
