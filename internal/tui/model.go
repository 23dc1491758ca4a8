// Package tui renders the approval queue as an interactive terminal list.
package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 90
	defaultHeight = 24
	// rows taken by title, search, filter, status, help and borders
	chromeHeight = 10
)

// Options tunes the list behaviour.
type Options struct {
	// ConfirmBulk asks before approving the selection.
	ConfirmBulk bool
}

// Model is the root Bubble Tea model of the approval list.
type Model struct {
	coord *approval.Coordinator
	store *approval.Store
	opts  Options

	keys   KeyMap
	help   help.Model
	table  table.Model
	search textinput.Model

	// rows mirrors the table rows
	rows []approval.Item

	searching bool
	status    string
	statusErr bool

	width  int
	height int
}

// New creates the list model on top of coord. The store behind coord is
// expected to be initialized.
func New(coord *approval.Coordinator, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search name or type..."
	ti.Prompt = "/ "
	ti.PromptStyle = InputPromptStyle
	ti.CharLimit = 120
	ti.Width = 40
	ti.SetValue(coord.Store().SearchTerm())

	t := table.New(
		table.WithColumns(columns(approval.CheckOff, defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-chromeHeight),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Foreground(ColorFgPrimary).Background(ColorBorder).Bold(true)
	t.SetStyles(styles)

	m := Model{
		coord:  coord,
		store:  coord.Store(),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		table:  t,
		search: ti,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refresh()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles terminal events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.coord.ConfirmOpen() {
			return m.updateConfirm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.approveSelection()
	case key.Matches(msg, m.keys.Cancel):
		m.coord.CloseConfirmModal()
		m.setStatus("Approval cancelled.", false)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SearchDone):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.SearchAbort):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.store.SetSearchTerm("")
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearchTerm(m.search.Value())
	m.refresh()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.Top):
		m.table.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.table.GotoBottom()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Filter):
		m.store.SetStatusFilter(m.store.StatusFilter().Next())
		m.refresh()
	case key.Matches(msg, m.keys.ToggleRow):
		if item, ok := m.currentItem(); ok {
			m.coord.ToggleRowSelection(item.ID, item.Approved())
			m.refresh()
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m.coord.ToggleSelectAll()
		m.refresh()
	case key.Matches(msg, m.keys.Clear):
		m.store.ClearSelection()
		m.refresh()
	case key.Matches(msg, m.keys.ApproveRow):
		m.approveCurrent()
	case key.Matches(msg, m.keys.Approve):
		if len(m.store.SelectedIDs()) == 0 {
			m.setStatus("Nothing selected.", false)
			break
		}
		m.coord.HandleApproveSelected()
		if !m.opts.ConfirmBulk {
			m.approveSelection()
		}
	}
	return m, nil
}

func (m *Model) approveSelection() {
	count := len(m.store.SelectedIDs())
	err := m.coord.ConfirmApproveSelected()
	m.reportApproval(count, err)
	m.refresh()
}

func (m *Model) approveCurrent() {
	item, ok := m.currentItem()
	if !ok {
		return
	}
	if item.Approved() {
		m.setStatus(fmt.Sprintf("%s is already approved.", item.Name), false)
		return
	}
	err := m.store.ApproveItem(item.ID)
	m.reportApproval(1, err)
	m.refresh()
}

func (m *Model) reportApproval(count int, err error) {
	if err != nil {
		msg := err.Error()
		if errors.Is(err, approval.ErrSaveFailed) {
			msg = "Approved, but " + msg
		}
		m.setStatus(msg, true)
		return
	}
	m.setStatus(fmt.Sprintf("Approved %d item(s).", count), false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) currentItem() (approval.Item, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return approval.Item{}, false
	}
	return m.rows[idx], true
}

// refresh rebuilds the table from the store.
func (m *Model) refresh() {
	m.rows = m.store.FilteredItems()
	tableRows := make([]table.Row, len(m.rows))
	for i, item := range m.rows {
		tableRows[i] = table.Row{
			checkbox(m.store.IsSelected(item.ID), item.Approved()),
			strconv.Itoa(item.ID),
			item.Name,
			item.Type,
			string(item.Status),
		}
	}
	m.table.SetColumns(columns(m.coord.HeaderState(), m.width))
	m.table.SetRows(tableRows)
	if cursor := m.table.Cursor(); cursor >= len(tableRows) {
		m.table.SetCursor(max(len(tableRows)-1, 0))
	}
}

func (m *Model) resize() {
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 4
	}
	m.table.SetHeight(max(m.height-chromeHeight-helpHeight, 3))
	m.table.SetWidth(max(m.width-2, 40))
	m.search.Width = max(m.width/2, 20)
	m.table.SetColumns(columns(m.coord.HeaderState(), m.width))
}

func columns(state approval.CheckState, width int) []table.Column {
	nameWidth := max((width-30)/2, 12)
	typeWidth := max(width-30-nameWidth, 12)
	return []table.Column{
		{Title: headerBox(state), Width: 3},
		{Title: "ID", Width: 4},
		{Title: "Name", Width: nameWidth},
		{Title: "Type", Width: typeWidth},
		{Title: "Status", Width: 9},
	}
}

func headerBox(state approval.CheckState) string {
	switch state {
	case approval.CheckOn:
		return "[x]"
	case approval.CheckIndeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

func checkbox(selected, disabled bool) string {
	switch {
	case disabled:
		return " ✓ "
	case selected:
		return "[x]"
	default:
		return "[ ]"
	}
}
