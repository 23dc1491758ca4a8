package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/MEKXH/approvalcenter/internal/audit"
)

type fakeRenderer struct {
	inputs []string
	err    error
}

func (f *fakeRenderer) Render(s string) (string, error) {
	f.inputs = append(f.inputs, s)
	if f.err != nil {
		return "", f.err
	}
	return "R:" + s, nil
}

func newSummaryStore(t *testing.T) *approval.Store {
	t.Helper()
	store := approval.NewStore(approval.Options{})
	store.Initialize()
	return store
}

func TestBuildSummaryMarkdown(t *testing.T) {
	store := newSummaryStore(t)
	if err := store.ApproveMany([]int{1, 2, 5, 6, 9, 10, 13, 14}); err != nil {
		t.Fatalf("ApproveMany: %v", err)
	}

	events := []audit.Event{
		{Time: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC), Type: audit.EventApproved, Source: "cli", ItemIDs: []int{1, 2}},
	}
	md := buildSummaryMarkdown(store, events)

	for _, want := range []string{
		"# Approval Center",
		"**16** items · **0** pending · **16** approved",
		"| Conta digital PJ | 0 | 4 |",
		"_Nothing left to approve._",
		"## Recent activity",
		"approved 1, 2 via cli",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, md)
		}
	}
}

func TestBuildSummaryMarkdown_ListsPending(t *testing.T) {
	md := buildSummaryMarkdown(newSummaryStore(t), nil)

	if !strings.Contains(md, "- `#1` Banco Aurora (Conta digital PJ)") {
		t.Fatalf("expected pending line, got:\n%s", md)
	}
	if strings.Contains(md, "Recent activity") {
		t.Fatalf("unexpected activity section:\n%s", md)
	}
}

func TestRenderMarkdown_UsesRenderer(t *testing.T) {
	r := &fakeRenderer{}
	out, err := renderMarkdown("**m**", r)
	if err != nil {
		t.Fatalf("renderMarkdown error: %v", err)
	}
	if out != "R:**m**" {
		t.Fatalf("unexpected output: %s", out)
	}
	if len(r.inputs) != 1 {
		t.Fatalf("expected 1 render, got %d", len(r.inputs))
	}
}

func TestRenderMarkdown_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	_, err := renderMarkdown("x", &fakeRenderer{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestSummaryCommand_Raw(t *testing.T) {
	setupHome(t)

	cmd := NewSummaryCmd()
	setFlags(t, cmd, map[string]string{"raw": "true"})
	output := captureOutput(t, func() {
		if err := runSummary(cmd, nil); err != nil {
			t.Fatalf("runSummary error: %v", err)
		}
	})
	if !strings.HasPrefix(output, "# Approval Center") {
		t.Fatalf("unexpected output:\n%s", output)
	}
}

func TestSummaryCommand_RendersWithGlamour(t *testing.T) {
	setupHome(t)

	cmd := NewSummaryCmd()
	setFlags(t, cmd, map[string]string{"style": "notty"})
	output := captureOutput(t, func() {
		if err := runSummary(cmd, nil); err != nil {
			t.Fatalf("runSummary error: %v", err)
		}
	})
	if !strings.Contains(output, "Banco Aurora") {
		t.Fatalf("unexpected output:\n%s", output)
	}
}
