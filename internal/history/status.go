package history

import (
	"regexp"
	"strconv"
	"strings"
)

// Remaining-minutes cut-offs. These are heuristics on the "Nm left" label,
// independent of the episode's length.
const (
	NearlyDoneMinutes = 5
	PartialMinutes    = 20
)

var reMinutesLeft = regexp.MustCompile(`(?i)(\d+)\s*(?:m|mins?|minutes?)\s+left`)

// Classify maps the thumbnail duration label of a card to a WatchStatus.
func Classify(text string) WatchStatus {
	text = strings.TrimSpace(text)
	if text == "" {
		return StatusUnknown
	}

	if text == "Watched" || strings.EqualFold(text, "fully watched") {
		return StatusWatched
	}

	m := reMinutesLeft.FindStringSubmatch(text)
	if m == nil {
		return StatusUnknown
	}

	left, err := strconv.Atoi(m[1])
	if err != nil {
		return StatusUnknown
	}

	switch {
	case left <= NearlyDoneMinutes:
		return StatusWatched
	case left <= PartialMinutes:
		return StatusPartial
	default:
		return StatusUnwatched
	}
}
