package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the bursts of events editors produce on save.
const defaultDebounce = 200 * time.Millisecond

// ReportFunc receives the outcome of each run in watch mode.
type ReportFunc func(report *Report, err error)

// Watch runs Lint once and then again after every change to an analyzed
// file, until ctx is cancelled. Runs never overlap.
func (e *Engine) Watch(ctx context.Context, onReport ReportFunc) error {
	return e.watch(ctx, defaultDebounce, onReport)
}

func (e *Engine) watch(ctx context.Context, debounce time.Duration, onReport ReportFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, source := range e.sources {
		if err := e.watchSource(watcher, source); err != nil {
			return fmt.Errorf("failed to watch %s: %w", source, err)
		}
	}

	var runMu sync.Mutex
	run := func() {
		runMu.Lock()
		defer runMu.Unlock()
		if ctx.Err() != nil {
			return
		}
		onReport(e.Lint(ctx))
	}
	run()

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				e.maybeWatchDir(watcher, event.Name)
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !e.matchesSuffix(event.Name) {
				continue
			}
			e.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			timerMu.Lock()
			if timer == nil {
				timer = time.AfterFunc(debounce, run)
			} else {
				timer.Reset(debounce)
			}
			timerMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watcher error", "error", err)
		}
	}
}

// watchSource adds a source directory and its subdirectories to the
// watcher. A file source is watched through its parent directory.
func (e *Engine) watchSource(watcher *fsnotify.Watcher, source string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(source))
	}
	return filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != source && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func (e *Engine) maybeWatchDir(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || isHidden(info.Name()) {
		return
	}
	if err := e.watchSource(watcher, path); err != nil {
		e.logger.Warn("failed to watch new directory", "path", path, "error", err)
	}
}
