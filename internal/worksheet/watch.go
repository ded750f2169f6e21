package worksheet

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"calc/internal/calc"
)

// Watch evaluates the worksheet at path, then again every time the file is
// written or replaced, calling fn with each result. Read failures are passed
// to fn rather than ending the watch. Watch returns when ctx is done.
func Watch(ctx context.Context, path string, evaluator *calc.Evaluator, fn func(*Sheet, error)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often save by renaming a new file over the old one.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	fn(Load(absPath, evaluator))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log().Infof("worksheet changed: %s", absPath)
			fn(Load(absPath, evaluator))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log().Errorf("worksheet watcher error: %v", err)
		}
	}
}
