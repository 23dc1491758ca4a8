package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// listResult is the json/yaml shape of the list command.
type listResult struct {
	Search   string          `json:"search,omitempty" yaml:"search,omitempty"`
	Status   string          `json:"status" yaml:"status"`
	Pending  int             `json:"pending" yaml:"pending"`
	Approved int             `json:"approved" yaml:"approved"`
	Items    []approval.Item `json:"items" yaml:"items"`
}

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List approval items",
		RunE:  runList,
	}
	addViewFlags(cmd)
	cmd.Flags().StringP("output", "o", outputTable, "Output format (table|json|yaml)")
	return cmd
}

// addViewFlags registers --search and --status.
func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("search", "s", "", "Filter by name or type (case-insensitive)")
	cmd.Flags().String("status", "all", "Filter by status (all|pending|approved)")
}

// applyViewFlags copies --search and --status onto store.
func applyViewFlags(cmd *cobra.Command, store *approval.Store) error {
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")

	filter, err := approval.ParseStatusFilter(status)
	if err != nil {
		return err
	}
	store.SetSearchTerm(search)
	store.SetStatusFilter(filter)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	output = strings.ToLower(strings.TrimSpace(output))
	if output != outputTable && output != outputJSON && output != outputYAML {
		return fmt.Errorf("invalid --output %q (expected table, json or yaml)", output)
	}

	sess, err := openSession("cli")
	if err != nil {
		return err
	}
	defer sess.Close()

	store := sess.store
	if err := applyViewFlags(cmd, store); err != nil {
		return err
	}

	result := listResult{
		Search:   store.SearchTerm(),
		Status:   string(store.StatusFilter()),
		Pending:  store.PendingCount(),
		Approved: store.ApprovedCount(),
		Items:    store.FilteredItems(),
	}

	switch output {
	case outputJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal items: %w", err)
		}
		fmt.Println(string(data))
	case outputYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal items: %w", err)
		}
		fmt.Print(string(data))
	default:
		printItemTable(result)
	}
	return nil
}

func printItemTable(result listResult) {
	var (
		headerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#8E4EC6")).
				Padding(0, 1).
				MarginBottom(1)

		wID     = 4
		wName   = 22
		wType   = 28
		wStatus = 10

		colHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8E4EC6")).
				Bold(true).
				MarginRight(1)

		idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(wID).
			MarginRight(1)
		nameStyle   = lipgloss.NewStyle().Width(wName).MarginRight(1)
		typeStyle   = lipgloss.NewStyle().Width(wType).MarginRight(1)
		statusStyle = lipgloss.NewStyle().Width(wStatus).MarginRight(1)

		pendingColor  = lipgloss.Color("#E5C07B")
		approvedColor = lipgloss.Color("#2E8B57")
	)

	fmt.Println(headerStyle.Render("Approval Items"))

	if len(result.Items) == 0 {
		fmt.Println("  No items match.")
	} else {
		headers := lipgloss.JoinHorizontal(lipgloss.Top,
			colHeaderStyle.Width(wID).Render("ID"),
			colHeaderStyle.Width(wName).Render("NAME"),
			colHeaderStyle.Width(wType).Render("TYPE"),
			colHeaderStyle.Width(wStatus).Render("STATUS"),
		)
		fmt.Printf("  %s\n", headers)

		sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginRight(1)
		separator := lipgloss.JoinHorizontal(lipgloss.Top,
			sepStyle.Render(strings.Repeat("─", wID)),
			sepStyle.Render(strings.Repeat("─", wName)),
			sepStyle.Render(strings.Repeat("─", wType)),
			sepStyle.Render(strings.Repeat("─", wStatus)),
		)
		fmt.Printf("  %s\n", separator)

		for _, item := range result.Items {
			color := pendingColor
			if item.Approved() {
				color = approvedColor
			}
			row := lipgloss.JoinHorizontal(lipgloss.Top,
				idStyle.Render(strconv.Itoa(item.ID)),
				nameStyle.Render(truncate(item.Name, wName)),
				typeStyle.Render(truncate(item.Type, wType)),
				statusStyle.Foreground(color).Render(string(item.Status)),
			)
			fmt.Printf("  %s\n", row)
		}
	}

	fmt.Printf("\n  %d shown · %d pending · %d approved\n\n", len(result.Items), result.Pending, result.Approved)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
