package catalog

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/litescript/ls-marstime/internal/logging"
)

// Reload is a catalog re-read after the file changed on disk.
type Reload struct {
	Catalog *Catalog
	Err     error
}

// Watcher monitors the catalog file and re-reads it after edits settle.
type Watcher struct {
	Path    string
	Reloads <-chan Reload // Read-only external channel

	reloads  chan Reload // Internal write channel
	done     chan struct{}
	watcher  *fsnotify.Watcher
	log      *logging.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher for the catalog at path. The file itself may
// not exist yet; its directory must.
func NewWatcher(path string, log *logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}

	ch := make(chan Reload, 4)
	return &Watcher{
		Path:     path,
		Reloads:  ch,
		reloads:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		log:      log.With("catalog"),
		debounce: 100 * time.Millisecond,
	}, nil
}

// Start begins watching. The directory is watched rather than the file so
// editors that replace the file by rename are still seen.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Reloads channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.reloads)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.Path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < w.debounce {
				continue
			}
			pending = time.Time{}
			w.emit()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) emit() {
	c, err := Load(w.Path)
	if err != nil {
		w.log.Error("reload %s: %v", w.Path, err)
	} else {
		w.log.Info("reloaded %s (%d missions)", w.Path, len(c.Missions))
	}

	// Drop the reload rather than block the loop if nobody is reading.
	select {
	case w.reloads <- Reload{Catalog: c, Err: err}:
	default:
		w.log.Warn("reload of %s dropped, consumer not keeping up", w.Path)
	}
}
