package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/scanner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Out: &buf}

	l.Debugf("hidden %d\n", 1)
	l.Infof("saved %d\n", 2)
	l.Warnf("skipping card %d\n", 3)
	l.Errorf("failed\n")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] saved 2\n")
	assert.Contains(t, out, "[WARN] skipping card 3\n")
	assert.Contains(t, out, "[ERROR] failed\n")

	buf.Reset()
	l.Debug = true
	l.Debugf("shown\n")
	assert.Equal(t, "[DEBUG] shown\n", buf.String())

	var nilLogger *Logger
	assert.NotPanics(t, func() { nilLogger.Infof("nothing\n") })
}

func TestStatusStyling(t *testing.T) {
	assert.Equal(t, "#4CAF50", StatusColor(history.StatusWatched))
	assert.Equal(t, "#FFC107", StatusColor(history.StatusPartial))
	assert.Equal(t, "#424242", StatusColor(history.StatusUnwatched))
	assert.Equal(t, "#424242", StatusColor(history.StatusUnknown))

	assert.Equal(t, "(Watched)", StatusTooltip(history.StatusWatched))
	assert.Equal(t, "(Partially watched)", StatusTooltip(history.StatusPartial))
	assert.Equal(t, "(Not watched)", StatusTooltip(history.StatusUnwatched))
}

func TestLastUpdated(t *testing.T) {
	assert.Equal(t, "Last updated: Never", LastUpdated(time.Time{}))

	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	assert.Equal(t, "Last updated: 2024-03-01 12:30:00", LastUpdated(ts))
}

func seriesRecord(title, episodeURL string, status history.WatchStatus) history.EpisodeRecord {
	p := history.ParseTitle(title)
	return history.EpisodeRecord{
		SeriesTitle: "Show A",
		SeriesURL:   "https://x/series/A",
		EpisodeURL:  episodeURL,
		FullTitle:   title,
		Season:      p.Season,
		Number:      p.Number,
		Name:        p.Name,
		WatchStatus: status,
	}
}

func TestGridRender(t *testing.T) {
	views := history.Ordered([]history.EpisodeRecord{
		seriesRecord("S1 E1 - One", "u1", history.StatusWatched),
		seriesRecord("S1 E3 - Three", "u3", history.StatusPartial),
		seriesRecord("Special", "us", history.StatusUnknown),
	})

	var buf bytes.Buffer
	require.NoError(t, GridRenderer{Verbose: true}.Render(&buf, views, time.Time{}))

	out := buf.String()
	assert.Contains(t, out, "Show A")
	assert.Contains(t, out, "https://x/series/A")
	assert.Contains(t, out, "Season 1")
	for _, n := range []string{"1", "2", "3"} {
		assert.Contains(t, out, n)
	}
	assert.Contains(t, out, "S1 E3 - Three (Partially watched)")
	assert.Contains(t, out, "? Special (Unknown)")
	assert.Contains(t, out, "not watched / missing")
	assert.Contains(t, out, "Last updated: Never")
	assert.NotContains(t, out, "No history data available")
}

func TestGridRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GridRenderer{}.Render(&buf, nil, time.Time{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "No history data available. Visit the history page to collect data."))
	assert.Contains(t, out, "Last updated: Never")
}

func TestStatusLineCountsNotifications(t *testing.T) {
	var buf bytes.Buffer
	stats := &Stats{}
	s := NewStatusLine(&buf, stats)

	s.Notify(scanner.Status{TotalItems: 4, NewItems: 4, IsScanning: true})
	s.Notify(scanner.Status{TotalItems: 4, NewItems: 4, IsScanning: true, Err: errors.New("disk full")})
	s.Notify(scanner.Status{TotalItems: 4, Err: errors.New("page gone")})
	s.Close()

	assert.Equal(t, int64(3), stats.Passes.Load())
	assert.Equal(t, int64(2), stats.Failures.Load())
	assert.Equal(t, int64(4), stats.Total.Load())
	assert.Equal(t, int64(0), stats.Added.Load())
}
