package history

import "strings"

type Link struct {
	Text string
	URL  string
}

// Card is one history entry on the page. The series and episode links are
// mandatory, meta and status are optional.
type Card interface {
	SeriesLink() (Link, bool)
	EpisodeLink() (Link, bool)
	Meta() (string, bool)
	Status() (string, bool)
}

// Extract turns a card into a record. ok is false when a mandatory link is
// missing (ads, placeholders), which callers treat as a skip, not an error.
func Extract(card Card, index int) (rec EpisodeRecord, ok bool) {
	series, ok := card.SeriesLink()
	if !ok {
		return EpisodeRecord{}, false
	}
	episode, ok := card.EpisodeLink()
	if !ok {
		return EpisodeRecord{}, false
	}

	parsed := ParseTitle(episode.Text)

	rec = EpisodeRecord{
		SeriesTitle: strings.TrimSpace(series.Text),
		SeriesURL:   series.URL,
		EpisodeURL:  episode.URL,
		FullTitle:   episode.Text,
		Season:      parsed.Season,
		Number:      parsed.Number,
		Name:        parsed.Name,
		WatchStatus: StatusUnknown,
		SourceIndex: index,
	}

	if status, ok := card.Status(); ok {
		rec.WatchStatus = Classify(status)
	}

	if meta, ok := card.Meta(); ok {
		date := strings.TrimSpace(meta)
		rec.Date = &date
	}

	return rec, true
}

// ExtractAll runs Extract over a batch. A card that is skipped or panics is
// logged and left out; the rest of the batch is kept.
func ExtractAll(cards []Card, log interface{ Warnf(string, ...any) }) []EpisodeRecord {
	out := make([]EpisodeRecord, 0, len(cards))

	for i, card := range cards {
		rec, ok := extractSafe(card, i, log)
		if !ok {
			continue
		}
		out = append(out, rec)
	}

	return out
}

func extractSafe(card Card, index int, log interface{ Warnf(string, ...any) }) (rec EpisodeRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if log != nil {
				log.Warnf("Error processing card %d: %v\n", index, r)
			}
			ok = false
		}
	}()

	rec, ok = Extract(card, index)
	if !ok && log != nil {
		log.Warnf("Skipping card %d - missing required elements\n", index)
	}

	return rec, ok
}
