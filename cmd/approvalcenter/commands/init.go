package commands

import (
	"fmt"
	"os"

	"github.com/MEKXH/approvalcenter/internal/config"
	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize Approval Center configuration",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := config.ConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists: %s\n", configPath)
		return nil
	}

	cfg := config.DefaultConfig()

	for _, dir := range []string{config.ConfigDir(), cfg.DataPath()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Approval Center initialized!\n")
	fmt.Printf("Config: %s\n", configPath)
	fmt.Printf("Data:   %s\n", cfg.DataPath())
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("1. Run 'approvalcenter list' to see the queue\n")
	fmt.Printf("2. Run 'approvalcenter ui' to review it interactively\n")

	return nil
}
