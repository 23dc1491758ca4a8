package commands

import (
	"fmt"
	"os"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/MEKXH/approvalcenter/internal/config"
	"github.com/MEKXH/approvalcenter/internal/metrics"
	"github.com/MEKXH/approvalcenter/internal/storage"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, storage and queue status",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	sess, err := openSession("cli")
	if err != nil {
		return err
	}
	defer sess.Close()

	var (
		headerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#8E4EC6")).
				Padding(0, 1)
		sectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8E4EC6")).
				Bold(true)
		okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E8B57"))
		warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
	)
	exists := func(path string) string {
		if _, err := os.Stat(path); err == nil {
			return okStyle.Render("OK")
		}
		return warnStyle.Render("Not found")
	}

	cfg := sess.cfg
	store := sess.store

	fmt.Println(headerStyle.Render("Approval Center Status"))
	fmt.Println()

	fmt.Println(sectionStyle.Render("Config"))
	fmt.Printf("  Path:   %s\n", config.ConfigPath())
	fmt.Printf("  Status: %s\n", exists(config.ConfigPath()))
	fmt.Printf("  Log:    level=%s", cfg.Log.Level)
	if cfg.Log.File != "" {
		fmt.Printf(" file=%s", cfg.Log.File)
	}
	fmt.Println()

	fmt.Println()
	fmt.Println(sectionStyle.Render("Storage"))
	fmt.Printf("  Backend: %s\n", cfg.Storage.Backend)
	fmt.Printf("  Data:    %s (%s)\n", sess.dataDir, exists(sess.dataDir))
	switch b := sess.backend.(type) {
	case *storage.File:
		fmt.Printf("  Slot:    %s\n", b.Path(approval.StorageKey))
	case storage.Nop:
		fmt.Println("  Slot:    " + warnStyle.Render("not durable (changes are lost on exit)"))
	case *storage.Memory:
		fmt.Println("  Slot:    " + warnStyle.Render("in memory (changes are lost on exit)"))
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Saves"))
	snap, err := metrics.ReadSaveSnapshot(sess.dataDir)
	switch {
	case err != nil:
		fmt.Printf("  Status: unavailable (%v)\n", err)
	case !snap.HasData():
		fmt.Println("  Status: no saves recorded yet")
	default:
		fmt.Printf("  Total:    %d (failures %d, %.0f%%)\n", snap.Total, snap.Failures, snap.FailureRatio()*100)
		fmt.Printf("  Latency:  avg %.1fms, p95~%dms, max %dms\n", snap.AvgLatencyMs(), snap.P95ProxyLatencyMs, snap.MaxLatencyMs)
		if snap.LastError != "" {
			fmt.Println("  Last error: " + warnStyle.Render(snap.LastError))
		}
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Queue"))
	fmt.Printf("  Items:    %d\n", len(store.Items()))
	fmt.Printf("  Pending:  %d\n", store.PendingCount())
	fmt.Printf("  Approved: %d\n", store.ApprovedCount())

	fmt.Println()
	fmt.Println(sectionStyle.Render("Audit"))
	if sess.audit == nil {
		fmt.Println("  Status: disabled")
		return nil
	}
	fmt.Printf("  Path:   %s\n", sess.audit.Path())
	events, err := sess.audit.Recent(0)
	if err != nil {
		fmt.Printf("  Events: unavailable (%v)\n", err)
		return nil
	}
	if len(events) == 0 {
		fmt.Println("  Events: none yet")
		return nil
	}
	last := events[len(events)-1]
	fmt.Printf("  Events: %d (last: %s %s)\n", len(events), last.Type, last.Time.Local().Format("2006-01-02 15:04:05"))
	return nil
}
