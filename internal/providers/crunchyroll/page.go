package crunchyroll

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/watchgrid/internal/history"
)

// Selectors locate the parts of a history card. The class names carry build
// hashes, so they are configurable.
type Selectors struct {
	Card        string `yaml:"card"`
	SeriesLink  string `yaml:"series_link"`
	EpisodeLink string `yaml:"episode_link"`
	Meta        string `yaml:"meta"`
	Status      string `yaml:"status"`
}

func DefaultSelectors() Selectors {
	return Selectors{
		Card:        ".history-playable-card--qVdzv",
		SeriesLink:  "a.history-playable-card__show-link--fe0Xz",
		EpisodeLink: "a.history-playable-card__title-link--vSAJy",
		Meta:        ".history-playable-card__footer-meta--mE2XC",
		Status:      ".history-playable-card__thumbnail-wrapper--xOHuX .playable-thumbnail__duration--p-Ldq",
	}
}

// WithDefaults fills empty fields from DefaultSelectors.
func (s Selectors) WithDefaults() Selectors {
	def := DefaultSelectors()
	if s.Card == "" {
		s.Card = def.Card
	}
	if s.SeriesLink == "" {
		s.SeriesLink = def.SeriesLink
	}
	if s.EpisodeLink == "" {
		s.EpisodeLink = def.EpisodeLink
	}
	if s.Meta == "" {
		s.Meta = def.Meta
	}
	if s.Status == "" {
		s.Status = def.Status
	}
	return s
}

type card struct {
	sel     *goquery.Selection
	base    string
	selects Selectors
}

// ParseCards returns the history cards of doc in page order. Hrefs are
// resolved against pageURL.
func ParseCards(doc *goquery.Document, pageURL string, sel Selectors) []history.Card {
	sel = sel.WithDefaults()

	var out []history.Card
	doc.Find(sel.Card).Each(func(_ int, s *goquery.Selection) {
		out = append(out, card{sel: s, base: pageURL, selects: sel})
	})

	return out
}

func (c card) link(selector string) (history.Link, bool) {
	a := c.sel.Find(selector).First()
	if a.Length() == 0 {
		return history.Link{}, false
	}

	href, _ := a.Attr("href")
	return history.Link{
		Text: a.Text(),
		URL:  resolveURL(c.base, strings.TrimSpace(href)),
	}, true
}

func (c card) text(selector string) (string, bool) {
	el := c.sel.Find(selector).First()
	if el.Length() == 0 {
		return "", false
	}
	return el.Text(), true
}

func (c card) SeriesLink() (history.Link, bool)  { return c.link(c.selects.SeriesLink) }
func (c card) EpisodeLink() (history.Link, bool) { return c.link(c.selects.EpisodeLink) }
func (c card) Meta() (string, bool)              { return c.text(c.selects.Meta) }
func (c card) Status() (string, bool)            { return c.text(c.selects.Status) }

func resolveURL(baseURL, href string) string {
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err == nil && u.IsAbs() {
		return u.String()
	}
	if err != nil {
		return href
	}

	b, err := url.Parse(baseURL)
	if err != nil || baseURL == "" {
		return href
	}

	return b.ResolveReference(u).String()
}
