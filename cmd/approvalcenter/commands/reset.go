package commands

import (
	"fmt"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/MEKXH/approvalcenter/internal/audit"
	"github.com/spf13/cobra"
)

func NewResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in approval items",
		RunE:  runReset,
	}
	cmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		return fmt.Errorf("reset overwrites every stored approval; rerun with --yes")
	}

	sess, err := openSession("cli")
	if err != nil {
		return err
	}
	defer sess.Close()

	items := approval.DefaultItems()
	if err := approval.NewPersistence(sess.slot, nil).Persist(items); err != nil {
		return err
	}

	if sess.audit != nil {
		if err := sess.audit.Append(audit.Event{Type: audit.EventReset, Source: "cli"}); err != nil {
			fmt.Printf("Warning: audit event not written: %v\n", err)
		}
	}

	if !sess.durable() {
		fmt.Printf("Restored %d built-in items for this run only (storage backend %q is not durable).\n", len(items), sess.cfg.Storage.Backend)
		return nil
	}
	fmt.Printf("Restored %d built-in items.\n", len(items))
	return nil
}
