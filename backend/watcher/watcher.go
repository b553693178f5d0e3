package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"vincit.fi/image-transformer/backend/catalog"
	"vincit.fi/image-transformer/common/logger"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher calls onChange once the supported pictures of a directory have
// stopped changing for the debounce period.
type Watcher struct {
	directory string
	debounce  time.Duration
	onChange  func()
	watcher   *fsnotify.Watcher
}

func NewWatcher(directory string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(directory); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch folder %s: %w", directory, err)
	}
	logger.Info.Printf("Watching folder: %s", directory)

	return &Watcher{
		directory: directory,
		debounce:  debounce,
		onChange:  onChange,
		watcher:   fsWatcher,
	}, nil
}

// Run blocks until ctx is done or the watcher is closed.
func (s *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !isRelevant(event) {
				continue
			}
			logger.Debug.Printf("Change in %s: %s", s.directory, event)

			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Stop()
				timer.Reset(s.debounce)
			}
			fire = timer.C
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn.Printf("Watcher error: %v", err)
		case <-fire:
			fire = nil
			s.onChange()
		}
	}
}

func (s *Watcher) Close() error {
	return s.watcher.Close()
}

func isRelevant(event fsnotify.Event) bool {
	if !catalog.IsSupported(event.Name) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
