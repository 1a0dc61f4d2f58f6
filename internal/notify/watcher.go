package notify

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/logging"
)

// EventWatcher watches the events directory and dispatches callbacks.
type EventWatcher struct {
	dir      string
	callback func(Event)
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// NewEventWatcher creates a watcher for {dataPath}/events/. A nil logger
// discards watcher diagnostics.
func NewEventWatcher(dataPath string, callback func(Event), logger *zap.Logger) *EventWatcher {
	return &EventWatcher{
		dir:      filepath.Join(dataPath, "events"),
		callback: callback,
		logger:   logging.OrNop(logger),
		done:     make(chan struct{}),
	}
}

// Start begins watching. It drains any existing event files first, in the
// order they were written, then watches for new ones. Call Stop() to clean up.
func (ew *EventWatcher) Start() error {
	if err := os.MkdirAll(ew.dir, 0o700); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(ew.dir); err != nil {
		_ = w.Close()
		return err
	}
	ew.watcher = w

	ew.drainExisting()

	go ew.loop()
	ew.logger.Debug("notify: watching for events", zap.String("dir", ew.dir))
	return nil
}

// Stop shuts down the watcher.
func (ew *EventWatcher) Stop() {
	if ew.watcher == nil {
		return
	}
	_ = ew.watcher.Close()
	<-ew.done
}

func (ew *EventWatcher) loop() {
	defer close(ew.done)
	for {
		select {
		case evt, ok := <-ew.watcher.Events:
			if !ok {
				return
			}
			// Files are published by rename, which fsnotify reports as Create.
			if evt.Op&fsnotify.Create != 0 && isEventFile(filepath.Base(evt.Name)) {
				ew.processFile(evt.Name)
			}
		case err, ok := <-ew.watcher.Errors:
			if !ok {
				return
			}
			ew.logger.Warn("notify: watcher error", zap.Error(err))
		}
	}
}

func (ew *EventWatcher) drainExisting() {
	entries, err := os.ReadDir(ew.dir)
	if err != nil {
		return
	}
	// ReadDir sorts by name and names start with the timestamp.
	for _, entry := range entries {
		if !entry.IsDir() && isEventFile(entry.Name()) {
			ew.processFile(filepath.Join(ew.dir, entry.Name()))
		}
	}
}

func (ew *EventWatcher) processFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return // already consumed, possibly by the drain
	}
	if err := os.Remove(path); err != nil {
		return // another reader got there first
	}

	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		ew.logger.Warn("notify: invalid event file", zap.String("file", filepath.Base(path)), zap.Error(err))
		return
	}

	if event.Type != "" && ew.callback != nil {
		ew.callback(event)
	}
}

func isEventFile(name string) bool {
	return strings.HasSuffix(name, ".event") && !strings.HasPrefix(name, ".")
}
