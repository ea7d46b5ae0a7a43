package scanner

import "fmt"

type State int

const (
	Idle State = iota
	Scanning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scanning:
		return "scanning"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Status is emitted after every merge and when a session is force-stopped.
// NewItems counts records added since the session started.
type Status struct {
	SessionID  string `json:"sessionId"`
	TotalItems int    `json:"totalItems"`
	NewItems   int    `json:"newItems"`
	IsScanning bool   `json:"isScanning"`
	Err        error  `json:"-"`
}

func (s Status) Message() string {
	switch {
	case s.Err != nil && !s.IsScanning:
		return fmt.Sprintf("Scanning stopped: %v", s.Err)
	case s.Err != nil:
		return fmt.Sprintf("Scan pass failed, will retry on next scroll: %v", s.Err)
	case s.IsScanning:
		return fmt.Sprintf("Scanning... Found %d episodes total (%d new)", s.TotalItems, s.NewItems)
	default:
		return fmt.Sprintf("Scan complete. Total: %d episodes", s.TotalItems)
	}
}

type Notifier interface {
	Notify(Status)
}

type NotifierFunc func(Status)

func (f NotifierFunc) Notify(s Status) { f(s) }
