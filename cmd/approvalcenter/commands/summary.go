package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/MEKXH/approvalcenter/internal/audit"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const recentAuditEvents = 5

// markdownRenderer is satisfied by *glamour.TermRenderer.
type markdownRenderer interface {
	Render(string) (string, error)
}

func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a markdown report of the approval queue",
		RunE:  runSummary,
	}
	cmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
	cmd.Flags().String("style", "auto", "Glamour style (auto|dark|light|notty)")
	cmd.Flags().Int("width", 80, "Word wrap width")
	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")
	style, _ := cmd.Flags().GetString("style")
	width, _ := cmd.Flags().GetInt("width")

	sess, err := openSession("cli")
	if err != nil {
		return err
	}
	defer sess.Close()

	var events []audit.Event
	if sess.audit != nil {
		events, err = sess.audit.Recent(recentAuditEvents)
		if err != nil {
			return fmt.Errorf("read audit trail: %w", err)
		}
	}

	md := buildSummaryMarkdown(sess.store, events)
	if raw {
		fmt.Print(md)
		return nil
	}

	renderer, err := newMarkdownRenderer(style, width)
	if err != nil {
		return err
	}
	out, err := renderMarkdown(md, renderer)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func newMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return r, nil
}

func renderMarkdown(md string, r markdownRenderer) (string, error) {
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return out, nil
}

type typeCount struct {
	pending  int
	approved int
}

func buildSummaryMarkdown(store *approval.Store, events []audit.Event) string {
	items := store.Items()

	byType := make(map[string]*typeCount)
	for _, item := range items {
		c, ok := byType[item.Type]
		if !ok {
			c = &typeCount{}
			byType[item.Type] = c
		}
		if item.Approved() {
			c.approved++
		} else {
			c.pending++
		}
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	var b strings.Builder
	b.WriteString("# Approval Center\n\n")
	fmt.Fprintf(&b, "**%d** items · **%d** pending · **%d** approved\n\n",
		len(items), store.PendingCount(), store.ApprovedCount())

	b.WriteString("## By type\n\n")
	b.WriteString("| Type | Pending | Approved |\n")
	b.WriteString("| --- | ---: | ---: |\n")
	for _, t := range types {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", t, byType[t].pending, byType[t].approved)
	}
	b.WriteString("\n")

	b.WriteString("## Pending\n\n")
	pending := 0
	for _, item := range items {
		if item.Approved() {
			continue
		}
		pending++
		fmt.Fprintf(&b, "- `#%d` %s (%s)\n", item.ID, item.Name, item.Type)
	}
	if pending == 0 {
		b.WriteString("_Nothing left to approve._\n")
	}

	if len(events) > 0 {
		b.WriteString("\n## Recent activity\n\n")
		for i := len(events) - 1; i >= 0; i-- {
			e := events[i]
			fmt.Fprintf(&b, "- %s %s", e.Time.Local().Format("2006-01-02 15:04"), e.Type)
			if len(e.ItemIDs) > 0 {
				fmt.Fprintf(&b, " %s", joinIDs(e.ItemIDs))
			}
			if e.Source != "" {
				fmt.Fprintf(&b, " via %s", e.Source)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
