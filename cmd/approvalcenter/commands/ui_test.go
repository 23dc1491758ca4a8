package commands

import (
	"testing"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/MEKXH/approvalcenter/internal/state"
)

func TestRestoreView_UsesRememberedState(t *testing.T) {
	views := state.NewManager(t.TempDir())
	if err := views.SaveViewState(state.ViewState{SearchTerm: "vega", StatusFilter: "PENDING"}); err != nil {
		t.Fatalf("SaveViewState: %v", err)
	}

	store := approval.NewStore(approval.Options{})
	store.Initialize()
	if err := restoreView(NewUICmd(), store, views); err != nil {
		t.Fatalf("restoreView error: %v", err)
	}
	if store.SearchTerm() != "vega" || store.StatusFilter() != approval.FilterPending {
		t.Fatalf("unexpected view: %q %s", store.SearchTerm(), store.StatusFilter())
	}
	if got := len(store.FilteredItems()); got != 2 {
		t.Fatalf("expected 2 visible items, got %d", got)
	}
}

func TestRestoreView_StatusFlagWins(t *testing.T) {
	views := state.NewManager(t.TempDir())
	if err := views.SaveViewState(state.ViewState{StatusFilter: "PENDING"}); err != nil {
		t.Fatalf("SaveViewState: %v", err)
	}

	cmd := NewUICmd()
	setFlags(t, cmd, map[string]string{"status": "approved"})
	store := approval.NewStore(approval.Options{})
	store.Initialize()
	if err := restoreView(cmd, store, views); err != nil {
		t.Fatalf("restoreView error: %v", err)
	}
	if store.StatusFilter() != approval.FilterApproved {
		t.Fatalf("expected APPROVED filter, got %s", store.StatusFilter())
	}
}

func TestRestoreView_Fresh(t *testing.T) {
	views := state.NewManager(t.TempDir())
	if err := views.SaveViewState(state.ViewState{SearchTerm: "vega"}); err != nil {
		t.Fatalf("SaveViewState: %v", err)
	}

	cmd := NewUICmd()
	setFlags(t, cmd, map[string]string{"fresh": "true"})
	store := approval.NewStore(approval.Options{})
	store.Initialize()
	if err := restoreView(cmd, store, views); err != nil {
		t.Fatalf("restoreView error: %v", err)
	}
	if store.SearchTerm() != "" {
		t.Fatalf("expected empty search, got %q", store.SearchTerm())
	}
}

func TestRestoreView_InvalidStatus(t *testing.T) {
	cmd := NewUICmd()
	setFlags(t, cmd, map[string]string{"status": "nope"})
	store := approval.NewStore(approval.Options{})
	if err := restoreView(cmd, store, state.NewManager(t.TempDir())); err == nil {
		t.Fatal("expected error for invalid status")
	}
}
