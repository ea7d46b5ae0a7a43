package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brogergvhs/watchgrid/internal/scanner"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// StatusLine renders scan status updates as a single live spinner line and
// implements scanner.Notifier.
type StatusLine struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	stats *Stats

	start time.Time
	msg   atomic.Value

	closeOnce sync.Once
}

func NewStatusLine(out io.Writer, stats *Stats) *StatusLine {
	if out == nil {
		out = os.Stdout
	}
	if stats == nil {
		stats = &Stats{}
	}

	p := mpb.New(
		mpb.WithWidth(1),
		mpb.WithOutput(out),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	s := &StatusLine{p: p, stats: stats, start: time.Now()}
	s.msg.Store("Waiting for first pass...")

	s.bar = p.New(
		0,
		mpb.SpinnerStyle(),
		mpb.BarFillerOnComplete(""),
		mpb.AppendDecorators(
			decor.Any(func(_ decor.Statistics) string {
				return " " + s.msg.Load().(string)
			}),
			decor.Any(func(_ decor.Statistics) string {
				return fmt.Sprintf(" | passes %d | %ds", s.stats.Passes.Load(), int(time.Since(s.start).Seconds()))
			}),
		),
	)

	return s
}

func (s *StatusLine) Notify(st scanner.Status) {
	s.stats.Passes.Add(1)
	if st.Err != nil {
		s.stats.Failures.Add(1)
	}
	s.stats.Total.Store(int64(st.TotalItems))
	s.stats.Added.Store(int64(st.NewItems))

	s.msg.Store(st.Message())

	if !st.IsScanning && st.Err != nil {
		s.Close()
	}
}

// Close completes the spinner and waits for the final render.
func (s *StatusLine) Close() {
	s.closeOnce.Do(func() {
		s.bar.SetTotal(-1, true)
		s.p.Wait()
	})
}
