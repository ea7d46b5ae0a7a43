package ui

import "sync/atomic"

type Stats struct {
	Passes   atomic.Int64
	Failures atomic.Int64
	Added    atomic.Int64
	Total    atomic.Int64
}
