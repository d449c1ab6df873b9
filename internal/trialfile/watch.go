package trialfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/payprobe/pkg/log"
	"github.com/bft-labs/payprobe/pkg/probe"
)

// DefaultDebounce is how long a burst of file events has to settle before
// the file is reloaded.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a trial file whenever it is written or re-created.
type Watcher struct {
	path       string
	credential string
	debounce   time.Duration
	logger     log.Logger
	fs         *fsnotify.Watcher
}

// NewWatcher starts watching the directory holding path. Events that happen
// after NewWatcher returns are not lost, even if Run starts later.
func NewWatcher(path, credential string, debounce time.Duration, logger log.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:       path,
		credential: credential,
		debounce:   debounce,
		logger:     logger.With(log.String("trials_file", path)),
		fs:         fs,
	}, nil
}

// Close stops watching. It is safe to call after Run has returned.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run calls fn with the reloaded trials after each settled change, on the
// calling goroutine, so calls never overlap. A file that fails to load is
// logged and skipped. Run returns nil when ctx is done and closes the
// watcher.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context, []probe.Trial)) error {
	defer w.fs.Close()

	name := filepath.Base(w.path)
	var fire <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			trials, err := Load(w.path, w.credential)
			if err != nil {
				w.logger.Warn("trial file not reloaded", log.Err(err))
				continue
			}
			w.logger.Info("trial file changed", log.Int("trials", len(trials)))
			fn(ctx, trials)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", log.Err(err))
		}
	}
}
