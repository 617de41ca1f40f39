package build

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce groups bursts of file events into one rebuild.
const DefaultDebounce = 200 * time.Millisecond

// WatchConfig selects what Watch observes.
type WatchConfig struct {
	// Dirs are watched recursively for palette files.
	Dirs []string
	// Files are watched individually, e.g. the manifest.
	Files    []string
	Debounce time.Duration
	Logger   zerolog.Logger
}

// Watch calls rebuild after relevant changes until ctx is cancelled.
// Rebuild errors are logged and watching continues.
func Watch(ctx context.Context, cfg WatchConfig, rebuild func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := make(map[string]bool, len(cfg.Files))
	for _, f := range cfg.Files {
		abs := absPath(f)
		files[abs] = true
		// Editors replace files on save; watch the parent directory.
		if err := w.Add(filepath.Dir(abs)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	for _, dir := range cfg.Dirs {
		if err := addTree(w, dir); err != nil {
			return err
		}
	}

	relevant := func(name string) bool {
		name = absPath(name)
		if files[name] {
			return true
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			return false
		}
		for _, dir := range cfg.Dirs {
			if strings.HasPrefix(name, absPath(dir)+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addTree(w, ev.Name)
				}
			}
			if !relevant(ev.Name) {
				continue
			}
			cfg.Logger.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("change detected")
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			cfg.Logger.Warn().Err(err).Msg("watch error")

		case <-timer.C:
			if err := rebuild(ctx); err != nil {
				cfg.Logger.Error().Err(err).Msg("rebuild failed")
			}
		}
	}
}

func addTree(w *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
