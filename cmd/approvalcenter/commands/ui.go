package commands

import (
	"fmt"
	"log/slog"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/MEKXH/approvalcenter/internal/state"
	"github.com/MEKXH/approvalcenter/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func NewUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Review approvals in the terminal UI",
		RunE:  runUI,
	}
	cmd.Flags().String("status", "all", "Initial status filter (all|pending|approved)")
	cmd.Flags().Bool("no-confirm", false, "Approve the selection without a confirmation prompt")
	cmd.Flags().Bool("fresh", false, "Ignore the search and filter remembered from the last session")
	return cmd
}

func runUI(cmd *cobra.Command, args []string) error {
	noConfirm, _ := cmd.Flags().GetBool("no-confirm")

	sess, err := openSession("tui")
	if err != nil {
		return err
	}
	defer sess.Close()

	views := state.NewManager(sess.dataDir)
	if err := restoreView(cmd, sess.store, views); err != nil {
		return err
	}

	model := tui.New(approval.NewCoordinator(sess.store), tui.Options{
		ConfirmBulk: sess.cfg.UI.ConfirmBulk && !noConfirm,
	})

	var opts []tea.ProgramOption
	if sess.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if err := views.SaveViewState(state.ViewState{
		SearchTerm:   sess.store.SearchTerm(),
		StatusFilter: string(sess.store.StatusFilter()),
	}); err != nil {
		slog.Warn("failed to save view state", "error", err)
	}
	return nil
}

// restoreView applies the remembered search and filter, then any explicit
// --status flag on top.
func restoreView(cmd *cobra.Command, store *approval.Store, views *state.Manager) error {
	fresh, _ := cmd.Flags().GetBool("fresh")
	if !fresh {
		remembered, err := views.LoadViewState()
		if err != nil {
			slog.Warn("failed to load view state", "error", err)
		}
		store.SetSearchTerm(remembered.SearchTerm)
		store.SetStatusFilter(remembered.Filter())
	}

	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		filter, err := approval.ParseStatusFilter(status)
		if err != nil {
			return err
		}
		store.SetStatusFilter(filter)
	}
	return nil
}
