// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layoutxml

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single layout file and calls a function
// whenever the file is written, created, or renamed into place.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filename string
	changed  func()
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching the named file. The given function is called on
// the watcher goroutine, so callers that mutate single-threaded state
// must hand the work over to their own thread. The directory of the file
// is watched so that editors which replace the file are still seen.
func Watch(filename string, changed func()) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{watcher: fw, filename: abs, changed: changed, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.changed()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logWatchError(err)
		}
	}
}

func logWatchError(err error) {
	slog.Error("layout file watcher", "err", err)
}

// Close stops watching and waits for the watcher goroutine to finish.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.watcher.Close()
		<-w.done
	})
	return err
}
