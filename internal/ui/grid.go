package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/brogergvhs/watchgrid/internal/history"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorWatched   = "#4CAF50"
	colorPartial   = "#FFC107"
	colorUnwatched = "#424242"
)

var (
	seriesStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	urlStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	seasonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(1)
	cellStyle   = lipgloss.NewStyle().Width(4).Align(lipgloss.Center).MarginRight(1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// StatusColor is the cell background used for a watch status.
func StatusColor(s history.WatchStatus) string {
	switch s {
	case history.StatusWatched:
		return colorWatched
	case history.StatusPartial:
		return colorPartial
	default:
		return colorUnwatched
	}
}

func StatusTooltip(s history.WatchStatus) string {
	switch s {
	case history.StatusWatched:
		return "(Watched)"
	case history.StatusPartial:
		return "(Partially watched)"
	case history.StatusUnknown:
		return "(Unknown)"
	default:
		return "(Not watched)"
	}
}

type GridRenderer struct {
	// CellsPerRow wraps long seasons; 0 means 12.
	CellsPerRow int
	Verbose     bool
}

func (r GridRenderer) perRow() int {
	if r.CellsPerRow <= 0 {
		return 12
	}
	return r.CellsPerRow
}

func (r GridRenderer) Render(w io.Writer, views []*history.SeriesView, lastUpdated time.Time) error {
	var b strings.Builder

	if len(views) == 0 {
		b.WriteString("No history data available. Visit the history page to collect data.\n")
	}

	for i, v := range views {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.series(v))
	}

	b.WriteString("\n")
	b.WriteString(Legend())
	b.WriteString("\n")
	b.WriteString(LastUpdated(lastUpdated))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r GridRenderer) series(v *history.SeriesView) string {
	var b strings.Builder

	b.WriteString(seriesStyle.Render(v.Title))
	if v.URL != "" {
		b.WriteString("  " + urlStyle.Render(v.URL))
	}
	b.WriteString("\n")

	for _, g := range v.Grids {
		b.WriteString(seasonStyle.Render(fmt.Sprintf("Season %d", g.Season)))
		b.WriteString("\n")
		b.WriteString(r.rows(g.Slots))

		if r.Verbose {
			for _, s := range g.Slots {
				if !s.Present {
					continue
				}
				b.WriteString(mutedStyle.Render(fmt.Sprintf("  E%d %s %s", s.Number, s.Episode.Label(), StatusTooltip(s.Status))))
				b.WriteString("\n")
			}
		}
	}

	for _, u := range v.Unparsed {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  ? %s %s", strings.TrimSpace(u.FullTitle), StatusTooltip(u.WatchStatus))))
		b.WriteString("\n")
	}

	return b.String()
}

func (r GridRenderer) rows(slots []history.Slot) string {
	var b strings.Builder

	for start := 0; start < len(slots); start += r.perRow() {
		end := min(start+r.perRow(), len(slots))

		cells := make([]string, 0, end-start)
		for _, s := range slots[start:end] {
			cells = append(cells, Cell(s))
		}
		b.WriteString(" ")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	return b.String()
}

func Cell(s history.Slot) string {
	style := cellStyle.Background(lipgloss.Color(StatusColor(s.Status))).Foreground(lipgloss.Color("#FFFFFF"))
	if !s.Present {
		style = style.Faint(true)
	}
	return style.Render(fmt.Sprintf("%d", s.Number))
}

func Legend() string {
	items := []struct {
		status history.WatchStatus
		label  string
	}{
		{history.StatusWatched, "watched"},
		{history.StatusPartial, "partial"},
		{history.StatusUnwatched, "not watched / missing"},
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		sw := lipgloss.NewStyle().Background(lipgloss.Color(StatusColor(it.status))).Render("  ")
		parts = append(parts, sw+" "+it.label)
	}

	return strings.Join(parts, "   ")
}

func LastUpdated(t time.Time) string {
	if t.IsZero() {
		return "Last updated: Never"
	}
	return "Last updated: " + t.Local().Format("2006-01-02 15:04:05")
}
