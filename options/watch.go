package options

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reload reads the options file at path and applies it to o through Update,
// clearing o's caches.
func Reload(path string, o *Options) error {
	f, err := LoadFile(path)
	if err != nil {
		return err
	}

	return o.Update(f.Apply)
}

// Watch applies the options file at path to o, then keeps applying it
// every time the file is written until ctx is done. Reload failures are
// logged and leave o unchanged.
func Watch(ctx context.Context, path string, o *Options) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve options file %s: %w", path, err)
	}

	if err := Reload(path, o); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	// Watch the directory: editors replace files by rename, which drops a
	// watch placed on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := Reload(path, o); err != nil {
				o.log().Warn("options reload failed", slog.String("path", path), slog.String("err", err.Error()))
				continue
			}
			o.log().Info("options reloaded", slog.String("path", path))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			o.log().Warn("options watcher error", slog.String("err", err.Error()))
		}
	}
}
