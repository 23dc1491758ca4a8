package approval

import (
	"slices"
	"strings"
)

type filterCache struct {
	valid   bool
	version uint64
	term    string
	filter  StatusFilter
	items   []Item
}

type countCache struct {
	valid    bool
	version  uint64
	pending  int
	approved int
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func matchesTerm(item Item, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.Type), term)
}

// FilteredItems returns the items passing the search term and status
// filter, in canonical order.
func (s *Store) FilteredItems() []Item {
	term := normalizeTerm(s.searchTerm)
	c := &s.filtered
	if !c.valid || c.version != s.version || c.term != term || c.filter != s.statusFilter {
		result := make([]Item, 0, len(s.items))
		for _, item := range s.items {
			if matchesTerm(item, term) && s.statusFilter.Matches(item.Status) {
				result = append(result, item)
			}
		}
		*c = filterCache{
			valid:   true,
			version: s.version,
			term:    term,
			filter:  s.statusFilter,
			items:   result,
		}
	}
	return slices.Clone(c.items)
}

// PendingCount counts pending items over the whole list, ignoring filters.
func (s *Store) PendingCount() int {
	s.refreshCounts()
	return s.counts.pending
}

// ApprovedCount counts approved items over the whole list, ignoring filters.
func (s *Store) ApprovedCount() int {
	s.refreshCounts()
	return s.counts.approved
}

func (s *Store) refreshCounts() {
	if s.counts.valid && s.counts.version == s.version {
		return
	}
	pending, approved := 0, 0
	for _, item := range s.items {
		switch item.Status {
		case StatusPending:
			pending++
		case StatusApproved:
			approved++
		}
	}
	s.counts = countCache{valid: true, version: s.version, pending: pending, approved: approved}
}
