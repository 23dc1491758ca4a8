package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/spf13/cobra"
)

func NewApproveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve [id...]",
		Short: "Approve one or more items",
		Long: `Approve items by id. With --all-pending every pending item matching
--search and --status is approved; --yes is required in that case.`,
		RunE: runApprove,
	}
	addViewFlags(cmd)
	cmd.Flags().Bool("all-pending", false, "Approve every pending item in the filtered view")
	cmd.Flags().BoolP("yes", "y", false, "Confirm a bulk approval")
	return cmd
}

func runApprove(cmd *cobra.Command, args []string) error {
	allPending, _ := cmd.Flags().GetBool("all-pending")
	yes, _ := cmd.Flags().GetBool("yes")

	if allPending && len(args) > 0 {
		return fmt.Errorf("pass ids or --all-pending, not both")
	}
	if !allPending && len(args) == 0 {
		return fmt.Errorf("at least one id is required (or use --all-pending)")
	}

	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	if !allPending && len(ids) == 0 {
		return fmt.Errorf("at least one id is required")
	}

	sess, err := openSession("cli")
	if err != nil {
		return err
	}
	defer sess.Close()

	store := sess.store
	if allPending {
		if err := applyViewFlags(cmd, store); err != nil {
			return err
		}
		ids = approval.NewCoordinator(store).SelectableIDs()
		if len(ids) == 0 {
			fmt.Println("No pending items match.")
			return nil
		}
		if !yes {
			return fmt.Errorf("refusing to approve %d item(s) without --yes", len(ids))
		}
	}

	var approved []int
	store.OnApproved(func(changed []int) {
		approved = append(approved, changed...)
	})

	if len(ids) == 1 {
		err = store.ApproveItem(ids[0])
	} else {
		err = store.ApproveMany(ids)
	}
	if err != nil {
		return saveError(err)
	}

	if len(approved) == 0 {
		fmt.Println("Nothing to approve: ids are unknown or already approved.")
		return nil
	}
	fmt.Printf("Approved %d item(s): %s\n", len(approved), joinIDs(approved))
	fmt.Printf("%d pending · %d approved\n", store.PendingCount(), store.ApprovedCount())
	return nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid id %q: %w", part, err)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
