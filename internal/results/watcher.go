// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// WATCHER
// =============================================================================

// DefaultDebounce is how long the watcher waits after the last change event
// before reloading. The harness rewrites results.json in several bursts at
// the end of a run.
const DefaultDebounce = 500 * time.Millisecond

// pollInterval is the fallback polling cadence when inotify is unavailable.
const pollInterval = 2 * time.Second

// Watcher reloads a file-based results document whenever it changes and
// delivers the fresh Collection on a channel. Reloads that produce the same
// fingerprint as the last delivery are suppressed.
//
// fsnotify drives the watcher where the platform supports it; otherwise it
// falls back to polling the file's modification time.
type Watcher struct {
	path      string
	debounce  time.Duration
	pollEvery time.Duration

	collections chan *Collection
	errs        chan error

	mu          sync.Mutex
	lastPrint   string // fingerprint of the last delivered collection
	pendingAt   time.Time
	havePending bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher creates a watcher for a file source. A directory source
// resolves to <dir>/results.json, matching LoadFile. URL sources cannot be
// watched; callers poll those themselves.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	resolved := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		resolved = filepath.Join(path, DefaultFileName)
	}
	return &Watcher{
		path:        resolved,
		debounce:    debounce,
		pollEvery:   pollInterval,
		collections: make(chan *Collection, 1),
		errs:        make(chan error, 4),
		done:        make(chan struct{}),
	}, nil
}

// Collections returns the channel on which reloaded documents arrive.
func (w *Watcher) Collections() <-chan *Collection {
	return w.collections
}

// Errors returns the channel on which reload failures arrive. A failed
// reload does not stop the watcher; the next change triggers another
// attempt.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Start begins watching. It tries fsnotify first and falls back to polling
// when the platform watcher cannot be created. Stop or context cancellation
// ends the watch and closes the collection channel.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		// Watch the parent directory: editors and the harness replace the
		// file by rename, which drops a watch on the file itself.
		if werr := fsw.Add(filepath.Dir(w.path)); werr != nil {
			fsw.Close()
			err = werr
		}
	}

	if err != nil {
		log.Printf("WATCH | fsnotify unavailable (%v), polling %s every %s", err, w.path, w.pollEvery)
		go w.runPolling(ctx)
		return
	}

	go w.runFsnotify(ctx, fsw)
}

// Stop ends the watch and waits for the run loop to exit. Stopping a
// watcher that was never started is a no-op.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// runFsnotify consumes fsnotify events for the watched file, debouncing
// bursts before reloading.
func (w *Watcher) runFsnotify(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.done)
	defer close(w.collections)
	defer fsw.Close()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.markPending()
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.reportError(err)

		case <-ticker.C:
			if w.takePendingIfQuiet() {
				w.reload()
			}
		}
	}
}

// runPolling stats the watched file on an interval and treats a modification
// time change as a change event.
func (w *Watcher) runPolling(ctx context.Context) {
	defer close(w.done)
	defer close(w.collections)

	var lastMod time.Time
	if info, err := os.Stat(w.path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(w.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue // file may be mid-replace
			}
			if !info.ModTime().Equal(lastMod) {
				lastMod = info.ModTime()
				w.reload()
			}
		}
	}
}

// markPending records a change event, restarting the debounce window.
func (w *Watcher) markPending() {
	w.mu.Lock()
	w.pendingAt = time.Now()
	w.havePending = true
	w.mu.Unlock()
}

// takePendingIfQuiet consumes the pending change once the debounce window
// has passed without further events.
func (w *Watcher) takePendingIfQuiet() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.havePending || time.Since(w.pendingAt) < w.debounce {
		return false
	}
	w.havePending = false
	return true
}

// reload reads the document and delivers it unless its fingerprint matches
// the previous delivery.
func (w *Watcher) reload() {
	coll, err := LoadFile(w.path)
	if err != nil {
		w.reportError(err)
		return
	}

	w.mu.Lock()
	same := coll.Fingerprint == w.lastPrint
	if !same {
		w.lastPrint = coll.Fingerprint
	}
	w.mu.Unlock()
	if same {
		return
	}

	// Replace a stale undelivered collection rather than blocking the
	// event loop on a slow consumer.
	for {
		select {
		case w.collections <- coll:
			return
		default:
			select {
			case <-w.collections:
			default:
			}
		}
	}
}

// reportError delivers a reload failure without blocking; when the error
// channel is full the failure is logged and dropped.
func (w *Watcher) reportError(err error) {
	select {
	case w.errs <- err:
	default:
		log.Printf("WATCH | dropped error: %v", err)
	}
}
