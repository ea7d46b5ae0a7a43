package crunchyroll

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/util"
)

const HistoryURL = "https://www.crunchyroll.com/history"

// HTTPSource fetches the history page on every pass.
type HTTPSource struct {
	client    *http.Client
	pageURL   string
	selectors Selectors
}

func NewHTTPSource(c *http.Client, pageURL string, sel Selectors) *HTTPSource {
	if pageURL == "" {
		pageURL = HistoryURL
	}
	return &HTTPSource{client: c, pageURL: pageURL, selectors: sel.WithDefaults()}
}

func (s *HTTPSource) fetchDOM(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := util.DoWithRetry(ctx, s.client, req, 3, 500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", s.pageURL, resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

func (s *HTTPSource) Cards(ctx context.Context) ([]history.Card, error) {
	doc, err := s.fetchDOM(ctx)
	if err != nil {
		return nil, err
	}
	return ParseCards(doc, s.pageURL, s.selectors), nil
}

// SnapshotSource reads a saved copy of the page. When Path is a directory
// the most recently modified .html file in it is used; an empty directory
// yields no cards.
type SnapshotSource struct {
	Path      string
	PageURL   string
	Selectors Selectors
}

func (s *SnapshotSource) resolve() (string, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return s.Path, nil
	}
	path, err := util.LatestFile(s.Path, ".html", ".htm")
	if errors.Is(err, util.ErrNoMatchingFile) {
		return "", nil
	}
	return path, err
}

func (s *SnapshotSource) Cards(ctx context.Context) ([]history.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.resolve()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}

	pageURL := s.PageURL
	if pageURL == "" {
		pageURL = HistoryURL
	}

	return ParseCards(doc, pageURL, s.Selectors), nil
}
