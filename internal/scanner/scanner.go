// Package scanner drives collection passes over the history page. A Scanner
// is Idle or Scanning; while Scanning, scroll events are debounced into a
// single trailing pass.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/brogergvhs/watchgrid/internal/history"
	"github.com/brogergvhs/watchgrid/internal/providers"

	"github.com/google/uuid"
)

const (
	DefaultDebounce    = 500 * time.Millisecond
	DefaultPassTimeout = 30 * time.Second

	AckStarted = "Scanning started"
	AckStopped = "Scanning stopped"
)

var ErrScanFailed = errors.New("scan failed")

type Logger interface {
	Debugf(string, ...any)
	Infof(string, ...any)
	Warnf(string, ...any)
	Errorf(string, ...any)
}

type Options struct {
	Debounce    time.Duration
	PassTimeout time.Duration
	Scroll      ScrollEvents
	Notifier    Notifier
	Log         Logger
}

type Scanner struct {
	source providers.Source
	merger *history.Merger
	opts   Options

	// passMu serialises passes: debounce timers fire on their own goroutines.
	passMu sync.Mutex

	mu         sync.Mutex
	state      State
	ctx        context.Context
	session    string
	sessionNew int
	lastTotal  int
	timer      *time.Timer
	unlisten   func()
}

func New(source providers.Source, merger *history.Merger, opts Options) *Scanner {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.PassTimeout <= 0 {
		opts.PassTimeout = DefaultPassTimeout
	}
	if opts.Log == nil {
		opts.Log = nopLogger{}
	}
	if opts.Notifier == nil {
		opts.Notifier = NotifierFunc(func(Status) {})
	}

	return &Scanner{
		source: source,
		merger: merger,
		opts:   opts,
		state:  Idle,
	}
}

func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scanner) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// NewItems is the number of records added during the current session.
func (s *Scanner) NewItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionNew
}

// Start begins a session and runs one pass right away. ctx bounds every pass
// of the session.
func (s *Scanner) Start(ctx context.Context) string {
	s.mu.Lock()
	register := s.state == Idle
	s.state = Scanning
	s.ctx = ctx
	s.sessionNew = 0
	s.session = uuid.NewString()
	session := s.session
	s.mu.Unlock()

	if register && s.opts.Scroll != nil {
		cancel := s.opts.Scroll.Listen(s.handleScroll)

		s.mu.Lock()
		if s.state == Scanning && s.session == session {
			s.unlisten = cancel
			cancel = nil
		}
		s.mu.Unlock()

		if cancel != nil {
			cancel()
		}
	}

	s.opts.Log.Infof("Scanning started (session %s)\n", session)
	_ = s.Collect()

	return AckStarted
}

// Stop ends the session. It is a no-op when already Idle and does not abort a
// pass that is already running.
func (s *Scanner) Stop() string {
	if s.halt() {
		s.opts.Log.Infof("Scanning stopped\n")
	}
	return AckStopped
}

func (s *Scanner) halt() bool {
	s.mu.Lock()
	if s.state == Idle {
		s.mu.Unlock()
		return false
	}

	s.state = Idle
	s.sessionNew = 0
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	unlisten := s.unlisten
	s.unlisten = nil
	s.mu.Unlock()

	if unlisten != nil {
		unlisten()
	}

	return true
}

func (s *Scanner) handleScroll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Scanning {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.opts.Debounce, func() { _ = s.Collect() })
}

// Collect runs one pass: read cards, extract, merge, notify. It returns nil
// without doing anything while Idle.
func (s *Scanner) Collect() error {
	s.passMu.Lock()
	defer s.passMu.Unlock()

	s.mu.Lock()
	if s.state != Scanning {
		s.mu.Unlock()
		return nil
	}
	base := s.ctx
	session := s.session
	s.mu.Unlock()

	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithTimeout(base, s.opts.PassTimeout)
	defer cancel()

	s.opts.Log.Debugf("Scanning...\n")

	cards, err := s.source.Cards(ctx)
	if err != nil {
		return s.fail(session, fmt.Errorf("%w: read page: %w", ErrScanFailed, err))
	}
	s.opts.Log.Debugf("Found cards: %d\n", len(cards))

	batch := history.ExtractAll(cards, s.opts.Log)

	res, err := s.merger.Merge(ctx, batch, s.State() == Scanning)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return s.fail(session, fmt.Errorf("%w: pass aborted: %w", ErrScanFailed, ctxErr))
		}

		s.opts.Log.Errorf("Merge failed: %v\n", err)
		s.mu.Lock()
		st := Status{
			SessionID:  session,
			TotalItems: s.lastTotal,
			NewItems:   s.sessionNew,
			IsScanning: s.state == Scanning,
			Err:        err,
		}
		s.mu.Unlock()
		s.opts.Notifier.Notify(st)

		return err
	}

	s.mu.Lock()
	if s.session == session && s.state == Scanning {
		s.sessionNew += res.Added
	}
	s.lastTotal = res.Total
	st := Status{
		SessionID:  session,
		TotalItems: res.Total,
		NewItems:   s.sessionNew,
		IsScanning: s.state == Scanning,
	}
	s.mu.Unlock()

	s.opts.Log.Debugf("History saved: %d total items (%d new items in this session)\n", st.TotalItems, st.NewItems)
	s.opts.Notifier.Notify(st)

	return nil
}

func (s *Scanner) fail(session string, err error) error {
	s.opts.Log.Errorf("Error collecting history: %v\n", err)
	s.halt()

	s.mu.Lock()
	st := Status{SessionID: session, TotalItems: s.lastTotal, Err: err}
	s.mu.Unlock()

	s.opts.Notifier.Notify(st)

	return err
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
