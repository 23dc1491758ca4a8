package approval

// OnApproved registers fn to run after an approval action saved at least
// one transition. fn receives the ids that moved to APPROVED.
func (s *Store) OnApproved(fn func(ids []int)) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

// ApproveItem approves every item carrying id. It does nothing when no
// pending item has that id. A failed save is returned as ErrSaveFailed and
// the approval stays applied in memory.
func (s *Store) ApproveItem(id int) error {
	changed := false
	for i := range s.items {
		if s.items[i].ID != id || s.items[i].Approved() {
			continue
		}
		s.items[i].Status = StatusApproved
		changed = true
	}
	if !changed {
		return nil
	}
	s.touch()

	err := s.persistence.Persist(s.items)
	s.deselect(map[int]struct{}{id: {}})
	if err != nil {
		s.logger.Error("failed to save approval", "id", id, "error", err)
		return err
	}
	s.logger.Info("approval item approved", "id", id)
	s.notify([]int{id})
	return nil
}

// ApproveMany approves every item whose id is in ids with a single save,
// then drops all of ids from the selection. Already approved ids are
// harmless.
func (s *Store) ApproveMany(ids []int) error {
	targets := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		targets[id] = struct{}{}
	}

	next := make([]Item, len(s.items))
	transitioned := make([]int, 0, len(targets))
	seen := make(map[int]struct{}, len(targets))
	for i, item := range s.items {
		if _, ok := targets[item.ID]; ok && !item.Approved() {
			item.Status = StatusApproved
			if _, dup := seen[item.ID]; !dup {
				seen[item.ID] = struct{}{}
				transitioned = append(transitioned, item.ID)
			}
		}
		next[i] = item
	}
	s.items = next
	if len(transitioned) > 0 {
		s.touch()
	}

	err := s.persistence.Persist(s.items)
	s.deselect(targets)
	if err != nil {
		s.logger.Error("failed to save bulk approval", "count", len(transitioned), "error", err)
		return err
	}
	if len(transitioned) > 0 {
		s.logger.Info("approval items approved", "ids", transitioned)
		s.notify(transitioned)
	}
	return nil
}

func (s *Store) notify(ids []int) {
	for _, fn := range s.observers {
		fn(append([]int(nil), ids...))
	}
}
