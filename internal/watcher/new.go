package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/summarize-flow/internal/logger"
)

// New creates a Watcher over inputDir. Only create events whose extension is
// in extensions reach the handler; files are handled one at a time, in the
// order their events arrive.
func New(inputDir string, extensions []string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[e] = true
	}

	return &implWatcher{
		inputDir:   inputDir,
		extensions: exts,
		handler:    handler,
		logger:     log,
		watcher:    watcher,
	}, nil
}
