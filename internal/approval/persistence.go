package approval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MEKXH/approvalcenter/internal/storage"
)

// StorageKey is the slot holding the serialized item list.
const StorageKey = "approval-center-items"

// ErrSaveFailed marks a write to durable storage that did not succeed.
// The in-memory change it accompanies is kept.
var ErrSaveFailed = errors.New("changes could not be saved")

type storedItem struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Status json.RawMessage `json:"status"`
}

// Persistence reads and writes the item list to a storage slot.
type Persistence struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewPersistence wraps s. A nil s behaves as storage.Nop and a nil logger
// falls back to slog.Default().
func NewPersistence(s storage.Storage, logger *slog.Logger) *Persistence {
	if s == nil {
		s = storage.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Persistence{storage: s, logger: logger}
}

// Persist overwrites the slot with the full item list.
func (p *Persistence) Persist(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: marshal items: %v", ErrSaveFailed, err)
	}
	if err := p.storage.Set(StorageKey, string(encoded)); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	p.logger.Debug("approval items persisted", "count", len(items))
	return nil
}

// Load returns the persisted items. It reports false when the slot is
// empty, unreadable, not JSON, or not a JSON array.
func (p *Persistence) Load() ([]Item, bool) {
	raw, ok, err := p.storage.Get(StorageKey)
	if err != nil {
		p.logger.Warn("failed to read persisted approvals", "key", StorageKey, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	data := bytes.TrimSpace([]byte(raw))
	if !json.Valid(data) {
		p.logger.Warn("failed to parse persisted approvals", "key", StorageKey, "error", "invalid JSON")
		return nil, false
	}
	if data[0] != '[' {
		return nil, false
	}

	var parsed []*storedItem
	if err := json.Unmarshal(data, &parsed); err != nil {
		p.logger.Warn("failed to parse persisted approvals", "key", StorageKey, "error", err)
		return nil, false
	}
	for i, rec := range parsed {
		if rec == nil {
			p.logger.Warn("failed to parse persisted approvals", "key", StorageKey, "error", fmt.Sprintf("element %d is null", i))
			return nil, false
		}
	}

	items := make([]Item, 0, len(parsed))
	for _, rec := range parsed {
		var status string
		_ = json.Unmarshal(rec.Status, &status)
		items = append(items, Item{
			ID:     rec.ID,
			Name:   rec.Name,
			Type:   rec.Type,
			Status: sanitizeStatus(status),
		})
	}
	return items, true
}
