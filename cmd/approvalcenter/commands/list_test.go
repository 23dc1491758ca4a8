package commands

import (
	"encoding/json"
	"strings"
	"testing"
)

func runListOutput(t *testing.T, flags map[string]string) string {
	t.Helper()
	cmd := NewListCmd()
	setFlags(t, cmd, flags)
	return captureOutput(t, func() {
		if err := runList(cmd, nil); err != nil {
			t.Fatalf("runList error: %v", err)
		}
	})
}

func TestListCommand_JSON(t *testing.T) {
	setupHome(t)

	output := runListOutput(t, map[string]string{"output": "json"})

	var result listResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("unmarshal output: %v\n%s", err, output)
	}
	if len(result.Items) != 16 {
		t.Fatalf("expected 16 items, got %d", len(result.Items))
	}
	if result.Pending != 8 || result.Approved != 8 {
		t.Fatalf("expected 8/8 counts, got %d/%d", result.Pending, result.Approved)
	}
	if result.Status != "ALL" {
		t.Fatalf("expected ALL status, got %s", result.Status)
	}
}

func TestListCommand_SearchAndStatus(t *testing.T) {
	setupHome(t)

	output := runListOutput(t, map[string]string{
		"output": "json",
		"search": "aurora",
		"status": "pending",
	})

	var result listResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != 1 {
		t.Fatalf("expected only item 1, got %+v", result.Items)
	}
	// counts stay global
	if result.Pending != 8 {
		t.Fatalf("expected global pending count 8, got %d", result.Pending)
	}
}

func TestListCommand_YAML(t *testing.T) {
	setupHome(t)

	output := runListOutput(t, map[string]string{"output": "yaml", "search": "technova"})
	for _, want := range []string{"name: TechNova", "status: PENDING", "pending: 8"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestListCommand_Table(t *testing.T) {
	setupHome(t)

	output := stripANSI(runListOutput(t, nil))
	for _, want := range []string{"Approval Items", "NAME", "Banco Aurora", "16 shown"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestListCommand_InvalidFlags(t *testing.T) {
	setupHome(t)

	cmd := NewListCmd()
	setFlags(t, cmd, map[string]string{"output": "xml"})
	if err := runList(cmd, nil); err == nil {
		t.Fatal("expected error for invalid output")
	}

	cmd = NewListCmd()
	setFlags(t, cmd, map[string]string{"status": "rejected"})
	if err := runList(cmd, nil); err == nil {
		t.Fatal("expected error for invalid status")
	}
}
