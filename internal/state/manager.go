package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MEKXH/approvalcenter/internal/approval"
)

const (
	viewStateFileMode = 0600
	// matches the search input limit in the TUI
	maxSearchTermRunes = 120
)

// ViewState stores the last search term and status filter used in the
// terminal UI. StatusFilter is empty or one of ALL, PENDING, APPROVED.
type ViewState struct {
	SearchTerm   string    `json:"search_term,omitempty"`
	StatusFilter string    `json:"status_filter,omitempty"`
	SavedAt      time.Time `json:"saved_at,omitempty"`
}

// IsZero reports whether nothing was remembered.
func (v ViewState) IsZero() bool {
	return v.SearchTerm == "" && v.StatusFilter == ""
}

// Filter returns the remembered status filter, ALL when none was stored.
func (v ViewState) Filter() approval.StatusFilter {
	filter, err := approval.ParseStatusFilter(v.StatusFilter)
	if err != nil {
		return approval.FilterAll
	}
	return filter
}

// normalize trims the search term, caps its length and canonicalizes the
// filter. An unknown filter is an error.
func (v ViewState) normalize() (ViewState, error) {
	term := []rune(strings.TrimSpace(v.SearchTerm))
	if len(term) > maxSearchTermRunes {
		term = term[:maxSearchTermRunes]
	}
	v.SearchTerm = string(term)

	if strings.TrimSpace(v.StatusFilter) == "" {
		v.StatusFilter = ""
		return v, nil
	}
	filter, err := approval.ParseStatusFilter(v.StatusFilter)
	if err != nil {
		return ViewState{}, err
	}
	v.StatusFilter = string(filter)
	return v, nil
}

// Manager persists lightweight UI state.
type Manager struct {
	viewPath string
	mu       sync.Mutex
}

// NewManager creates a state manager under <baseDir>/state.
func NewManager(baseDir string) *Manager {
	return &Manager{
		viewPath: filepath.Join(baseDir, "state", "view.json"),
	}
}

// Path returns the view state file.
func (m *Manager) Path() string {
	return m.viewPath
}

// LoadViewState reads the view state from disk. Missing or malformed files
// are treated as empty state; an unknown filter is dropped and the search
// term kept.
func (m *Manager) LoadViewState() (ViewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.viewPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ViewState{}, nil
		}
		return ViewState{}, fmt.Errorf("read view state: %w", err)
	}

	var raw ViewState
	if err := json.Unmarshal(data, &raw); err != nil {
		return ViewState{}, nil
	}
	st, err := raw.normalize()
	if err != nil {
		raw.StatusFilter = ""
		st, _ = raw.normalize()
	}
	return st, nil
}

// SaveViewState validates st and writes it atomically.
func (m *Manager) SaveViewState(st ViewState) error {
	st, err := st.normalize()
	if err != nil {
		return fmt.Errorf("invalid view state: %w", err)
	}
	if st.SavedAt.IsZero() {
		st.SavedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode view state: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(m.viewPath), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tempPath := m.viewPath + ".tmp"
	if err := os.WriteFile(tempPath, data, viewStateFileMode); err != nil {
		return fmt.Errorf("write view state temp file: %w", err)
	}
	if err := os.Rename(tempPath, m.viewPath); err != nil {
		return fmt.Errorf("rename view state file: %w", err)
	}
	return nil
}
