// Package potatolog keeps log output in memory, so that the editor can show
// it while owning the terminal.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It expects each write to be a single JSON-encoded entry, as written by
// zerolog.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Last returns the most recent entry at or above the given level (as named by
// zerolog, e.g. "info"), false if there is none.
func (w *MemoryLogReaderWriter) Last(minLevel string) (LogEntry, bool) {
	threshold := levelRank(minLevel)

	w.mtx.Lock()
	defer w.mtx.Unlock()
	for i := len(w.log) - 1; i >= 0; i-- {
		level, _ := w.log[i]["level"].(string)
		if levelRank(level) >= threshold {
			return w.log[i], true
		}
	}
	return nil, false
}

// Clear drops all entries.
func (w *MemoryLogReaderWriter) Clear() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = nil
}

func levelRank(level string) int {
	switch level {
	case "trace":
		return 0
	case "debug":
		return 1
	case "info":
		return 2
	case "warn":
		return 3
	case "error":
		return 4
	case "fatal":
		return 5
	case "panic":
		return 6
	default:
		return 2
	}
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Last(minLevel string) (LogEntry, bool)
}
