// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch triggers the pipeline from filesystem create events:
// new JPEG files appearing under a watched directory subtree are handed
// to a process callback after a settle delay, each in its own goroutine.
package watch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pdiddy/photo-sidecar/internal/pipeline"
	"github.com/pdiddy/photo-sidecar/pkg/types"
)

// DefaultSettleDelay is how long to wait after a create event before
// reading the file, so a partially-written image is not processed.
const DefaultSettleDelay = 500 * time.Millisecond

// ProcessFunc handles one newly-created image.
type ProcessFunc func(ctx context.Context, imagePath string)

// Run watches cfg.Dir (and its subdirectories) until ctx is cancelled,
// invoking process for every JPEG created under it. Runs for distinct
// images proceed concurrently and independently; a started run is not
// cancelled when ctx ends.
func Run(ctx context.Context, cfg types.WatchConfig, process ProcessFunc, w io.Writer) error {
	if cfg.Dir == "" {
		return fmt.Errorf("no watch directory configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, cfg.Dir); err != nil {
		return err
	}

	settle := cfg.SettleDelay
	if settle <= 0 {
		settle = DefaultSettleDelay
	}

	fmt.Fprintf(w, "watching %s for new JPEG images\n", cfg.Dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "warning: watcher error: %v\n", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				// fsnotify watches are not recursive; pick up new
				// subdirectories as they appear.
				if err := watcher.Add(ev.Name); err != nil {
					fmt.Fprintf(w, "warning: cannot watch %s: %v\n", ev.Name, err)
				}
				continue
			}
			if !pipeline.IsJPEG(ev.Name) {
				continue
			}
			go func(path string) {
				select {
				case <-ctx.Done():
					return
				case <-time.After(settle):
				}
				process(ctx, path)
			}(ev.Name)
		}
	}
}

// addTree registers the directory and all existing subdirectories.
func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}
