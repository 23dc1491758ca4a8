package tui

import (
	"fmt"
	"strings"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/charmbracelet/lipgloss"
)

// View renders the list.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(" " + m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(TableStyle.Render(EmptyStyle.Render("No approvals match the current search and filter.")))
	} else {
		b.WriteString(TableStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if m.coord.ConfirmOpen() {
		b.WriteString(m.renderConfirm())
		b.WriteString("\n")
	}

	if m.status != "" {
		style := StatusOKStyle
		if m.statusErr {
			style = StatusErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(" " + m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	counts := fmt.Sprintf("%s  %s  %s",
		CountPendingStyle.Render(fmt.Sprintf("%d pending", m.store.PendingCount())),
		CountApprovedStyle.Render(fmt.Sprintf("%d approved", m.store.ApprovedCount())),
		CountSelectedStyle.Render(fmt.Sprintf("%d selected", len(m.store.SelectedIDs()))),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, TitleStyle.Render("Approval Center"), "   ", counts)
}

func (m Model) renderFilters() string {
	filters := []approval.StatusFilter{approval.FilterAll, approval.FilterPending, approval.FilterApproved}
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		label := strings.ToLower(string(f))
		if f == m.store.StatusFilter() {
			parts = append(parts, FilterActiveStyle.Render("["+label+"]"))
			continue
		}
		parts = append(parts, label)
	}
	return FilterLabelStyle.Render("status: ") + strings.Join(parts, " ")
}

func (m Model) renderConfirm() string {
	count := len(m.store.SelectedIDs())
	body := lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render("Approve selected items?"),
		"",
		fmt.Sprintf("%d item(s) will be approved. This cannot be undone.", count),
		"",
		"y confirm · n cancel",
	)
	return ModalStyle.Render(body)
}
