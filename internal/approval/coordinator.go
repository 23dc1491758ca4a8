package approval

// CheckState is the tri-state value of a select-all header checkbox.
type CheckState int

const (
	CheckOff CheckState = iota
	CheckOn
	CheckIndeterminate
)

func (c CheckState) String() string {
	switch c {
	case CheckOn:
		return "on"
	case CheckIndeterminate:
		return "indeterminate"
	default:
		return "off"
	}
}

// Coordinator drives the selection interactions of a list view on top of
// a Store: select-all, guarded row toggles and confirm-before-approve.
type Coordinator struct {
	store       *Store
	confirmOpen bool
}

// NewCoordinator binds a coordinator to store.
func NewCoordinator(store *Store) *Coordinator {
	return &Coordinator{store: store}
}

// Store returns the underlying store.
func (c *Coordinator) Store() *Store {
	return c.store
}

// SelectableIDs returns ids of visible items that are not approved yet.
func (c *Coordinator) SelectableIDs() []int {
	visible := c.store.FilteredItems()
	ids := make([]int, 0, len(visible))
	for _, item := range visible {
		if item.Approved() {
			continue
		}
		ids = append(ids, item.ID)
	}
	return ids
}

// HeaderState summarizes how much of the visible selectable set is selected.
func (c *Coordinator) HeaderState() CheckState {
	selectable := c.SelectableIDs()
	if len(selectable) == 0 {
		return CheckOff
	}
	selectedInView := 0
	for _, id := range selectable {
		if c.store.IsSelected(id) {
			selectedInView++
		}
	}
	switch selectedInView {
	case 0:
		return CheckOff
	case len(selectable):
		return CheckOn
	default:
		return CheckIndeterminate
	}
}

// ToggleSelectAll deselects the visible selectable ids when all of them are
// selected and selects them otherwise. Selections outside the view are kept.
func (c *Coordinator) ToggleSelectAll() {
	selectable := c.SelectableIDs()
	if len(selectable) == 0 {
		return
	}
	if c.HeaderState() == CheckOn {
		targets := make(map[int]struct{}, len(selectable))
		for _, id := range selectable {
			targets[id] = struct{}{}
		}
		c.store.deselect(targets)
		return
	}
	c.store.SelectMany(selectable)
}

// ToggleRowSelection toggles id unless the row is disabled.
func (c *Coordinator) ToggleRowSelection(id int, disabled bool) {
	if disabled {
		return
	}
	c.store.ToggleSelection(id)
}

// HandleApproveSelected opens the confirmation prompt when something is
// selected.
func (c *Coordinator) HandleApproveSelected() {
	if len(c.store.selected) == 0 {
		return
	}
	c.confirmOpen = true
}

// ConfirmOpen reports whether the confirmation prompt is showing.
func (c *Coordinator) ConfirmOpen() bool {
	return c.confirmOpen
}

func (c *Coordinator) CloseConfirmModal() {
	c.confirmOpen = false
}

// ConfirmApproveSelected approves every selected id, visible or not, and
// closes the prompt. The prompt closes even when the save fails.
func (c *Coordinator) ConfirmApproveSelected() error {
	if len(c.store.selected) == 0 {
		return nil
	}
	err := c.store.ApproveMany(c.store.SelectedIDs())
	c.CloseConfirmModal()
	return err
}
