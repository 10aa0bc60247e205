package audio

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/countdown/constants"
)

// AssetWatcher reports rewrites of a cue asset file
type AssetWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	delay   time.Duration
}

// NewAssetWatcher watches the directory holding path, so editors that
// replace the file by rename are still seen
func NewAssetWatcher(path string) (*AssetWatcher, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	return &AssetWatcher{
		watcher: watcher,
		target:  target,
		delay:   constants.AssetReloadDelay,
	}, nil
}

// Run calls onChange after each write or create of the asset until ctx is
// done. It closes the watcher on return.
func (w *AssetWatcher) Run(ctx context.Context, onChange func()) {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			log.Printf("audio: close watcher: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				// Small delay to let the writer finish
				time.Sleep(w.delay)
				onChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("audio: watcher error: %v", err)
		}
	}
}
