package commands

import (
	"github.com/MEKXH/approvalcenter/internal/config"
	"github.com/spf13/cobra"
)

var logLevelOverride string

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approvalcenter",
		Short: "Approval Center - review and approve pending requests",
		Long:  `Approval Center lists approval requests, filters them and approves them one by one or in bulk.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" || cmd.Name() == "version" {
				return configureLogger(config.DefaultConfig(), logLevelOverride, false)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return configureLogger(cfg, logLevelOverride, cmd.Name() == "ui")
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "Override log level (debug|info|warn|error)")

	cmd.AddCommand(
		NewInitCmd(),
		NewListCmd(),
		NewApproveCmd(),
		NewStatusCmd(),
		NewSummaryCmd(),
		NewResetCmd(),
		NewUICmd(),
		NewVersionCmd(),
	)

	return cmd
}
