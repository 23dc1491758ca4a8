package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	auditFileMode = 0644
	auditDirMode  = 0755

	// EventApproved records items moving to APPROVED.
	EventApproved = "approved"
	// EventReset records the item list being restored to seed data.
	EventReset = "reset"
)

// Event is one audit record written as a single JSON line.
type Event struct {
	Time      time.Time `json:"time"`
	Type      string    `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	Source    string    `json:"source,omitempty"`
	ItemIDs   []int     `json:"item_ids,omitempty"`
}

// Writer appends audit events to <dataDir>/audit.jsonl.
type Writer struct {
	path      string
	sessionID string
	now       func() time.Time
	mu        sync.Mutex
}

// NewWriter creates an append-only audit writer rooted at dataDir. Every
// writer gets its own session id.
func NewWriter(dataDir string) *Writer {
	return &Writer{
		path:      filepath.Join(dataDir, "audit.jsonl"),
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// Path returns the audit file location.
func (w *Writer) Path() string {
	return w.path
}

// SessionID returns the id stamped on events that carry none.
func (w *Writer) SessionID() string {
	return w.sessionID
}

// Append writes one event as one JSONL line.
func (w *Writer) Append(event Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if event.Time.IsZero() {
		event.Time = w.now().UTC()
	}
	if event.SessionID == "" {
		event.SessionID = w.sessionID
	}

	if err := os.MkdirAll(filepath.Dir(w.path), auditDirMode); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}

	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, auditFileMode)
	if err != nil {
		return fmt.Errorf("open audit file: %w", err)
	}
	defer file.Close()

	encoded, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	encoded = append(encoded, '\n')

	if _, err := file.Write(encoded); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync audit file: %w", err)
	}
	return nil
}

// ApprovalHook returns a callback suitable for approval.Store.OnApproved.
// Write failures are logged, never returned.
func (w *Writer) ApprovalHook(source string, logger *slog.Logger) func(ids []int) {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ids []int) {
		err := w.Append(Event{Type: EventApproved, Source: source, ItemIDs: ids})
		if err != nil {
			logger.Warn("failed to write audit event", "path", w.path, "error", err)
		}
	}
}

// Recent returns up to limit of the latest events, oldest first. Lines that
// fail to parse are skipped. A missing file yields no events.
func (w *Writer) Recent(limit int) ([]Event, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	file, err := os.Open(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open audit file: %w", err)
	}
	defer file.Close()

	events := make([]Event, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var event Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan audit file: %w", err)
	}

	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	return events, nil
}
