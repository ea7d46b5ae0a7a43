package scanner

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ScrollEvents is anything that can tell the scanner new cards may be on
// the page.
type ScrollEvents interface {
	Listen(handler func()) (cancel func())
}

// Trigger is a ScrollEvents fired by hand.
type Trigger struct {
	mu       sync.Mutex
	next     int
	handlers map[int]func()
}

func (t *Trigger) Listen(handler func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.handlers == nil {
		t.handlers = map[int]func(){}
	}
	id := t.next
	t.next++
	t.handlers[id] = handler

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.handlers, id)
	}
}

func (t *Trigger) Fire() {
	t.mu.Lock()
	hs := make([]func(), 0, len(t.handlers))
	for _, h := range t.handlers {
		hs = append(hs, h)
	}
	t.mu.Unlock()

	for _, h := range hs {
		h()
	}
}

func (t *Trigger) Listeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.handlers)
}

// DirEvents fires whenever an HTML snapshot in a directory is created or
// rewritten, which is what a page dump does each time the feed grows.
type DirEvents struct {
	Trigger

	watcher *fsnotify.Watcher
	done    chan struct{}
	log     Logger
}

func WatchDir(dir string, log Logger) (*DirEvents, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	if log == nil {
		log = nopLogger{}
	}

	d := &DirEvents{watcher: w, done: make(chan struct{}), log: log}
	go d.loop()

	return d, nil
}

func (d *DirEvents) loop() {
	defer close(d.done)

	for {
		select {
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !IsSnapshot(ev.Name) {
				continue
			}
			d.log.Debugf("Snapshot changed: %s\n", ev.Name)
			d.Fire()

		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			d.log.Warnf("Watcher error: %v\n", err)
		}
	}
}

func (d *DirEvents) Close() error {
	err := d.watcher.Close()
	<-d.done
	return err
}

func IsSnapshot(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}
