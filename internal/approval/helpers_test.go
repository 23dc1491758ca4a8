package approval

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/MEKXH/approvalcenter/internal/storage"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()

	mem := storage.NewMemory()
	logger, _ := newTestLogger()
	store := NewStore(Options{Storage: mem, Logger: logger})
	store.Initialize()
	return store, mem
}

func pendingIDs(items []Item) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		if item.Status == StatusPending {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

func statusOf(t *testing.T, s *Store, id int) Status {
	t.Helper()
	item, ok := s.Item(id)
	if !ok {
		t.Fatalf("item %d not found", id)
	}
	return item.Status
}
