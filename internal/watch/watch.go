// Package watch regenerates the site whenever the data directory changes,
// with an optional fixed interval as a safety net.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/taxsitegen/internal/logfields"
)

const debounceTime = 500 * time.Millisecond

// Watcher runs a regeneration callback on data directory changes.
type Watcher struct {
	dataDir    string
	regenerate func(ctx context.Context) error
	watcher    *fsnotify.Watcher
	scheduler  gocron.Scheduler
	runChan    chan struct{}
}

// New creates a watcher over the data directory. regenerate is invoked for
// the initial build and after every debounced change.
func New(dataDir string, regenerate func(ctx context.Context) error) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	absDir, err := filepath.Abs(dataDir)
	if err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}

	return &Watcher{
		dataDir:    absDir,
		regenerate: regenerate,
		watcher:    fsWatcher,
		runChan:    make(chan struct{}, 1),
	}, nil
}

// Run generates once, then blocks regenerating on changes until the context
// is cancelled. A non-zero interval adds a scheduled regeneration alongside
// the file watch.
func (w *Watcher) Run(ctx context.Context, interval time.Duration) error {
	defer w.watcher.Close()

	if err := w.regenerate(ctx); err != nil {
		return fmt.Errorf("initial generation: %w", err)
	}

	if err := w.watcher.Add(w.dataDir); err != nil {
		return fmt.Errorf("watch data directory %s: %w", w.dataDir, err)
	}
	slog.Info("Watching data directory", logfields.File(w.dataDir))

	if interval > 0 {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		w.scheduler = scheduler
		_, err = scheduler.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(w.trigger),
			gocron.WithName("interval-regeneration"),
		)
		if err != nil {
			return fmt.Errorf("schedule interval regeneration: %w", err)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				slog.Warn("Scheduler shutdown failed", logfields.Error(err))
			}
		}()
		slog.Info("Scheduled interval regeneration", slog.Duration("interval", interval))
	}

	go w.watchLoop(ctx)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil
		case <-w.runChan:
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceTime, func() {
				if err := w.regenerate(ctx); err != nil {
					slog.Error("Regeneration failed", logfields.Error(err))
				}
			})
		}
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Data change detected", logfields.File(event.Name))
			w.trigger()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

// trigger requests a regeneration; a pending request absorbs duplicates.
func (w *Watcher) trigger() {
	select {
	case w.runChan <- struct{}{}:
	default:
	}
}
