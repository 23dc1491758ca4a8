package commands

import (
	"fmt"
	"runtime"

	"github.com/MEKXH/approvalcenter/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of Approval Center",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("approvalcenter %s %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
