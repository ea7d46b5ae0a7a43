package history

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSeasonEpisode = regexp.MustCompile(`S(\d+)\s*E(\d+)\s*-\s*(.*)`)
	reEpisodeOnly   = regexp.MustCompile(`E(\d+)\s*-\s*(.*)`)
)

// ParsedTitle holds what could be read out of an episode title. All fields
// are nil when neither pattern matched.
type ParsedTitle struct {
	Season *int
	Number *int
	Name   *string
}

// ParseTitle reads "S<season> E<number> - <name>" and falls back to
// "E<number> - <name>" with season 1.
func ParseTitle(title string) ParsedTitle {
	if m := reSeasonEpisode.FindStringSubmatch(title); m != nil {
		season, err1 := strconv.Atoi(m[1])
		number, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			return newParsedTitle(season, number, m[3])
		}
	}

	if m := reEpisodeOnly.FindStringSubmatch(title); m != nil {
		if number, err := strconv.Atoi(m[1]); err == nil {
			return newParsedTitle(1, number, m[2])
		}
	}

	return ParsedTitle{}
}

func newParsedTitle(season, number int, name string) ParsedTitle {
	name = strings.TrimSpace(name)
	return ParsedTitle{
		Season: &season,
		Number: &number,
		Name:   &name,
	}
}
