package history

type fakeCard struct {
	series  *Link
	episode *Link
	meta    *string
	status  *string
	panics  bool
}

func (c fakeCard) SeriesLink() (Link, bool) {
	if c.panics {
		panic("broken card")
	}
	if c.series == nil {
		return Link{}, false
	}
	return *c.series, true
}

func (c fakeCard) EpisodeLink() (Link, bool) {
	if c.episode == nil {
		return Link{}, false
	}
	return *c.episode, true
}

func (c fakeCard) Meta() (string, bool) {
	if c.meta == nil {
		return "", false
	}
	return *c.meta, true
}

func (c fakeCard) Status() (string, bool) {
	if c.status == nil {
		return "", false
	}
	return *c.status, true
}

func strPtr(s string) *string { return &s }

func newCard(series, seriesURL, title, episodeURL, status string) fakeCard {
	c := fakeCard{
		series:  &Link{Text: series, URL: seriesURL},
		episode: &Link{Text: title, URL: episodeURL},
	}
	if status != "" {
		c.status = strPtr(status)
	}
	return c
}

// rec builds a record the way Extract would for the given title.
func rec(series, seriesURL, title, episodeURL string, status WatchStatus) EpisodeRecord {
	p := ParseTitle(title)
	return EpisodeRecord{
		SeriesTitle: series,
		SeriesURL:   seriesURL,
		EpisodeURL:  episodeURL,
		FullTitle:   title,
		Season:      p.Season,
		Number:      p.Number,
		Name:        p.Name,
		WatchStatus: status,
	}
}

type warnRecorder struct {
	lines []string
}

func (w *warnRecorder) Warnf(format string, _ ...any) {
	w.lines = append(w.lines, format)
}
