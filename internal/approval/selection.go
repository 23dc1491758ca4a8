package approval

import "slices"

// IsSelected reports whether id is in the selection.
func (s *Store) IsSelected(id int) bool {
	return slices.Contains(s.selected, id)
}

// ToggleSelection removes id from the selection when present and appends it
// otherwise. Ids with no matching item are ignored.
func (s *Store) ToggleSelection(id int) {
	if s.IsSelected(id) {
		s.selected = slices.DeleteFunc(slices.Clone(s.selected), func(selected int) bool {
			return selected == id
		})
		return
	}
	if _, ok := s.Item(id); !ok {
		return
	}
	s.selected = append(slices.Clone(s.selected), id)
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.selected = []int{}
}

// SelectMany adds ids to the selection, keeping the existing selection and
// skipping duplicates and ids with no matching item.
func (s *Store) SelectMany(ids []int) {
	known := s.idSet()
	next := slices.Clone(s.selected)
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			continue
		}
		if slices.Contains(next, id) {
			continue
		}
		next = append(next, id)
	}
	s.selected = next
}

func (s *Store) deselect(targets map[int]struct{}) {
	if len(targets) == 0 {
		return
	}
	s.selected = slices.DeleteFunc(slices.Clone(s.selected), func(id int) bool {
		_, ok := targets[id]
		return ok
	})
}

func (s *Store) idSet() map[int]struct{} {
	ids := make(map[int]struct{}, len(s.items))
	for _, item := range s.items {
		ids[item.ID] = struct{}{}
	}
	return ids
}
