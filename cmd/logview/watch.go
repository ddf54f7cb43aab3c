package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// watchDir forwards create, write and remove events in dir to send until
// the returned watcher is closed.
func watchDir(dir string, send func(tea.Msg)) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()

		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}

				if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Remove) {
					send(LogDirChangedMsg{Name: filepath.Base(ev.Name)})
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}

				send(LoadErrorMsg{Err: fmt.Errorf("failed to watch log directory: %w", err)})
			}
		}
	}()

	return w, nil
}
