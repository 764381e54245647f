package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/marcus/peek/internal/note"
)

// WatchFile watches the backend's notes.json for rewrites by other processes
// and emits each reloaded collection. Our own saves are recognized by hash
// and suppressed. The returned stop function tears the watcher down.
func WatchFile(fb *FileBackend, onError func(error)) (<-chan []note.Note, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Watch the directory, not the file: atomic rename replaces the inode.
	if err := watcher.Add(filepath.Dir(fb.Path())); err != nil {
		watcher.Close()
		return nil, nil, err
	}

	events := make(chan []note.Note, 4)
	done := make(chan struct{})

	go func() {
		defer watcher.Close()
		defer close(events)

		// The debounce timer fires into this loop, never into a detached
		// callback: all sends on events happen here, before the close.
		const debounceDelay = 100 * time.Millisecond
		debounce := time.NewTimer(debounceDelay)
		if !debounce.Stop() {
			<-debounce.C
		}
		defer debounce.Stop()
		pending := false

		for {
			select {
			case <-done:
				return

			case <-debounce.C:
				pending = false
				notes, changed, err := reloadIfForeign(fb)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				if !changed {
					continue
				}
				select {
				case events <- notes:
				default:
					// Channel full, drop; the next event reloads again.
				}

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != NotesFileName {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				// Debounce rapid events
				if pending && !debounce.Stop() {
					<-debounce.C
				}
				debounce.Reset(debounceDelay)
				pending = true

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()

	stop := func() { close(done) }
	return events, stop, nil
}

// reloadIfForeign reads notes.json and reports whether the content differs
// from our last self-write.
func reloadIfForeign(fb *FileBackend) ([]note.Note, bool, error) {
	data, err := os.ReadFile(fb.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if xxhash.Sum64(data) == fb.LastWriteSum() {
		return nil, false, nil
	}
	var notes []note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, false, err
	}
	return notes, true, nil
}
