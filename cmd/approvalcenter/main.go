package main

import (
	"os"

	"github.com/MEKXH/approvalcenter/cmd/approvalcenter/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
