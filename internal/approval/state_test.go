package approval

import (
	"strings"
	"testing"

	"github.com/MEKXH/approvalcenter/internal/storage"
)

func TestDefaultItems_SeedShape(t *testing.T) {
	items := DefaultItems()
	if len(items) != 16 {
		t.Fatalf("expected 16 seed items, got %d", len(items))
	}
	if got := len(pendingIDs(items)); got != 8 {
		t.Fatalf("expected 8 pending seed items, got %d", got)
	}
	for i, item := range items {
		if item.ID != i+1 {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, item.ID)
		}
	}

	items[0].Status = StatusApproved
	if DefaultItems()[0].Status != StatusPending {
		t.Fatal("DefaultItems must return an independent copy")
	}
}

func TestStore_InitializeLoadsOnce(t *testing.T) {
	mem := storage.NewMemory()
	persisted := []Item{{ID: 99, Name: "Persisted", Type: "Conta", Status: StatusApproved}}
	if err := NewPersistence(mem, nil).Persist(persisted); err != nil {
		t.Fatalf("Persist error: %v", err)
	}

	store := NewStore(Options{Storage: mem})
	if store.Initialized() {
		t.Fatal("expected store to start uninitialized")
	}
	if len(store.Items()) != 16 {
		t.Fatalf("expected seed before Initialize, got %d items", len(store.Items()))
	}

	store.Initialize()
	if !store.Initialized() {
		t.Fatal("expected initialized flag")
	}
	items := store.Items()
	if len(items) != 1 || items[0].ID != 99 {
		t.Fatalf("expected persisted items, got %+v", items)
	}

	if err := NewPersistence(mem, nil).Persist(DefaultItems()); err != nil {
		t.Fatalf("Persist error: %v", err)
	}
	store.Initialize()
	if len(store.Items()) != 1 {
		t.Fatal("second Initialize must not reload")
	}
}

func TestStore_InitializeKeepsSeedOnMalformedStorage(t *testing.T) {
	mem := storage.NewMemory()
	if err := mem.Set(StorageKey, "not json"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	logger, buf := newTestLogger()

	store := NewStore(Options{Storage: mem, Logger: logger})
	store.Initialize()

	if !store.Initialized() {
		t.Fatal("expected initialized flag even when load fails")
	}
	items := store.Items()
	seed := DefaultItems()
	if len(items) != len(seed) {
		t.Fatalf("expected seed items, got %d", len(items))
	}
	for i := range seed {
		if items[i] != seed[i] {
			t.Fatalf("seed changed at %d: %+v", i, items[i])
		}
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("expected warning, got: %s", buf.String())
	}
}

func TestStore_InitializeWarnsOnDuplicateIDs(t *testing.T) {
	mem := storage.NewMemory()
	if err := mem.Set(StorageKey, `[{"id":1,"name":"A","type":"T","status":"PENDING"},{"id":1,"name":"B","type":"T","status":"PENDING"}]`); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	logger, buf := newTestLogger()

	store := NewStore(Options{Storage: mem, Logger: logger})
	store.Initialize()

	if len(store.Items()) != 2 {
		t.Fatalf("expected duplicates to be kept, got %d items", len(store.Items()))
	}
	if !strings.Contains(buf.String(), "duplicate ids") {
		t.Fatalf("expected duplicate warning, got: %s", buf.String())
	}
}

func TestStore_CustomSeedIsCopied(t *testing.T) {
	seed := []Item{{ID: 1, Name: "A", Type: "T", Status: StatusPending}}
	store := NewStore(Options{Seed: seed})
	seed[0].Name = "changed"

	if got := store.Items()[0].Name; got != "A" {
		t.Fatalf("expected store to own its seed, got %q", got)
	}
}

func TestStore_SettersAndAccessors(t *testing.T) {
	store, _ := newTestStore(t)

	if store.StatusFilter() != FilterAll {
		t.Fatalf("expected default filter ALL, got %s", store.StatusFilter())
	}
	store.SetSearchTerm("  Prisma ")
	store.SetStatusFilter(FilterApproved)
	if store.SearchTerm() != "  Prisma " {
		t.Fatalf("search term must be stored verbatim, got %q", store.SearchTerm())
	}
	if store.StatusFilter() != FilterApproved {
		t.Fatalf("expected APPROVED filter, got %s", store.StatusFilter())
	}
	store.SetStatusFilter("")
	if store.StatusFilter() != FilterAll {
		t.Fatalf("empty filter should reset to ALL, got %s", store.StatusFilter())
	}

	items := store.Items()
	items[0].Status = StatusApproved
	if statusOf(t, store, 1) != StatusPending {
		t.Fatal("Items must return a copy")
	}
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    StatusFilter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{" Pending ", FilterPending, false},
		{"APPROVED", FilterApproved, false},
		{"rejected", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatusFilter(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatusFilter(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatusFilter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if FilterAll.Next() != FilterPending || FilterPending.Next() != FilterApproved || FilterApproved.Next() != FilterAll {
		t.Fatal("unexpected filter cycle")
	}
}
