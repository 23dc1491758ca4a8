package approval

import (
	"log/slog"
	"slices"

	"github.com/MEKXH/approvalcenter/internal/storage"
)

// Options configures a Store.
type Options struct {
	// Storage backs the persisted item list. Nil means no durable storage.
	Storage storage.Storage
	Logger  *slog.Logger
	// Seed replaces the built-in dataset when non-nil.
	Seed []Item
}

// Store owns the canonical item list together with the search term, the
// status filter and the selection. It is not safe for concurrent use.
type Store struct {
	persistence *Persistence
	logger      *slog.Logger

	items        []Item
	selected     []int
	searchTerm   string
	statusFilter StatusFilter
	initialized  bool

	// version increments on every change to items.
	version  uint64
	filtered filterCache
	counts   countCache

	observers []func(ids []int)
}

// NewStore creates a store seeded with opts.Seed or DefaultItems.
func NewStore(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seed := DefaultItems()
	if opts.Seed != nil {
		seed = slices.Clone(opts.Seed)
	}
	return &Store{
		persistence:  NewPersistence(opts.Storage, logger),
		logger:       logger,
		items:        seed,
		selected:     []int{},
		statusFilter: FilterAll,
		version:      1,
	}
}

// Initialize loads persisted items on the first call only. Later calls do
// nothing.
func (s *Store) Initialize() {
	if s.initialized {
		return
	}
	if stored, ok := s.persistence.Load(); ok {
		if dup, found := firstDuplicateID(stored); found {
			s.logger.Warn("persisted approvals contain duplicate ids", "id", dup)
		}
		s.items = stored
		s.touch()
		s.logger.Debug("approval items loaded from storage", "count", len(stored))
	}
	s.initialized = true
}

// Initialized reports whether Initialize has run.
func (s *Store) Initialized() bool {
	return s.initialized
}

// Items returns a copy of the canonical item list.
func (s *Store) Items() []Item {
	return slices.Clone(s.items)
}

// Item looks up the first item with id.
func (s *Store) Item(id int) (Item, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// SelectedIDs returns the selection in insertion order.
func (s *Store) SelectedIDs() []int {
	return slices.Clone(s.selected)
}

func (s *Store) SearchTerm() string {
	return s.searchTerm
}

func (s *Store) StatusFilter() StatusFilter {
	return s.statusFilter
}

func (s *Store) SetSearchTerm(term string) {
	s.searchTerm = term
}

func (s *Store) SetStatusFilter(filter StatusFilter) {
	if filter == "" {
		filter = FilterAll
	}
	s.statusFilter = filter
}

func (s *Store) touch() {
	s.version++
}

func firstDuplicateID(items []Item) (int, bool) {
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			return item.ID, true
		}
		seen[item.ID] = struct{}{}
	}
	return 0, false
}
