// Package notify delivers session events to other processes through small
// JSON files in a shared events directory. The session writes one file per
// event; a watcher (for example the CLI "watch" command) picks them up with
// fsnotify and removes them once read.
package notify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/scrypster/bemestar/pkg/types"
)

// EventType names what happened.
type EventType string

// Event types
const (
	EventCrisisHigh    EventType = "crisis_high"    // a journal entry was classified high risk
	EventResponseReady EventType = "response_ready" // a deferred AI or NPC reply was delivered
)

// Event is the payload written to an event file.
type Event struct {
	Type     EventType  `json:"type"`
	RecordID string     `json:"record_id"`
	Tier     types.Tier `json:"tier,omitempty"`
	Time     int64      `json:"time"`
}

// EventWriter writes notification event files to a shared directory.
type EventWriter struct {
	dir string
	seq atomic.Uint64
}

// NewEventWriter creates a writer that emits events to {dataPath}/events/.
func NewEventWriter(dataPath string) *EventWriter {
	return &EventWriter{dir: filepath.Join(dataPath, "events")}
}

// Dir returns the events directory.
func (w *EventWriter) Dir() string {
	return w.dir
}

// Notify writes one event file. A zero Time is stamped with the current
// time. Safe to call concurrently.
func (w *EventWriter) Notify(evt Event) error {
	if err := os.MkdirAll(w.dir, 0o700); err != nil {
		return fmt.Errorf("notify: mkdir %s: %w", w.dir, err)
	}
	if evt.Time == 0 {
		evt.Time = time.Now().UnixNano()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("notify: encode event: %w", err)
	}

	// The sequence number keeps names unique when two events share a timestamp.
	filename := fmt.Sprintf("%020d-%06d-%s.event", evt.Time, w.seq.Add(1), sanitizeID(evt.RecordID))
	tmp := filepath.Join(w.dir, "."+filename+".tmp")
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("notify: write %s: %w", filename, err)
	}
	// Rename so the watcher never sees a half-written file.
	if err := os.Rename(tmp, filepath.Join(w.dir, filename)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("notify: publish %s: %w", filename, err)
	}
	return nil
}

// sanitizeID replaces characters unsafe for filenames.
func sanitizeID(id string) string {
	out := make([]byte, len(id))
	for i := 0; i < len(id); i++ {
		switch id[i] {
		case '/', ':', '\\', '.':
			out[i] = '_'
		default:
			out[i] = id[i]
		}
	}
	return string(out)
}
