package approval

import (
	"strings"
	"testing"
)

func TestFilteredItems_MatchesPredicate(t *testing.T) {
	terms := []string{"", "  ", "prisma", "PRISMA", " conta digital ", "cartão", "sol", "ção", "zzz", "a"}
	filters := []StatusFilter{FilterAll, FilterPending, FilterApproved}

	for _, term := range terms {
		for _, filter := range filters {
			store, _ := newTestStore(t)
			store.SetSearchTerm(term)
			store.SetStatusFilter(filter)

			want := make([]int, 0)
			needle := strings.ToLower(strings.TrimSpace(term))
			for _, item := range store.Items() {
				termOK := needle == "" ||
					strings.Contains(strings.ToLower(item.Name), needle) ||
					strings.Contains(strings.ToLower(item.Type), needle)
				statusOK := filter == FilterAll || StatusFilter(item.Status) == filter
				if termOK && statusOK {
					want = append(want, item.ID)
				}
			}

			got := store.FilteredItems()
			if len(got) != len(want) {
				t.Fatalf("term=%q filter=%s: expected %v, got %d items", term, filter, want, len(got))
			}
			for i := range want {
				if got[i].ID != want[i] {
					t.Fatalf("term=%q filter=%s: expected %v, got id %d at %d", term, filter, want, got[i].ID, i)
				}
			}
		}
	}
}

func TestFilteredItems_SearchSpansNameAndType(t *testing.T) {
	store, _ := newTestStore(t)

	store.SetSearchTerm("Prisma")
	if got := idsOf(store.FilteredItems()); !equalIDs(got, []int{3, 7, 11}) {
		t.Fatalf("unexpected name matches: %v", got)
	}

	store.SetSearchTerm("financiamento")
	if got := idsOf(store.FilteredItems()); !equalIDs(got, []int{4, 8, 12, 16}) {
		t.Fatalf("unexpected type matches: %v", got)
	}

	store.SetStatusFilter(FilterPending)
	if got := store.FilteredItems(); len(got) != 0 {
		t.Fatalf("expected no pending financing items, got %v", idsOf(got))
	}
}

func TestFilteredItems_RecomputesAfterApproval(t *testing.T) {
	store, _ := newTestStore(t)
	store.SetStatusFilter(FilterPending)

	before := store.FilteredItems()
	if len(before) != 8 {
		t.Fatalf("expected 8 pending items, got %d", len(before))
	}
	if err := store.ApproveItem(1); err != nil {
		t.Fatalf("ApproveItem error: %v", err)
	}
	after := store.FilteredItems()
	if len(after) != 7 {
		t.Fatalf("expected 7 pending items after approval, got %d", len(after))
	}
	if after[0].ID != 2 {
		t.Fatalf("expected item 2 first, got %d", after[0].ID)
	}
}

func TestFilteredItems_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	got := store.FilteredItems()
	got[0].Name = "mutated"
	if store.FilteredItems()[0].Name == "mutated" {
		t.Fatal("FilteredItems must not expose the cached slice")
	}
}

func TestCounts_IgnoreFilters(t *testing.T) {
	store, _ := newTestStore(t)
	store.SetSearchTerm("TechNova")
	store.SetStatusFilter(FilterApproved)

	if store.PendingCount() != 8 || store.ApprovedCount() != 8 {
		t.Fatalf("expected 8/8, got %d/%d", store.PendingCount(), store.ApprovedCount())
	}
	if err := store.ApproveMany([]int{1, 2}); err != nil {
		t.Fatalf("ApproveMany error: %v", err)
	}
	if store.PendingCount() != 6 || store.ApprovedCount() != 10 {
		t.Fatalf("expected 6/10, got %d/%d", store.PendingCount(), store.ApprovedCount())
	}
}

func idsOf(items []Item) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
