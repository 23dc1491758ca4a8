package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/MEKXH/approvalcenter/internal/storage"
)

func TestSaveMetrics_AggregatesSaves(t *testing.T) {
	dataDir := t.TempDir()
	recorder := NewSaveMetrics(dataDir)

	snap, err := recorder.RecordSave(3*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("RecordSave error: %v", err)
	}
	if snap.Total != 1 || snap.Failures != 0 {
		t.Fatalf("unexpected first snapshot: %+v", snap)
	}

	_, _ = recorder.RecordSave(40*time.Millisecond, errors.New("disk full"))
	snap, _ = recorder.RecordSave(2*time.Second, nil)

	if snap.Total != 3 {
		t.Fatalf("expected 3 saves, got %d", snap.Total)
	}
	if snap.Failures != 1 || snap.LastError != "disk full" {
		t.Fatalf("unexpected failure stats: %+v", snap)
	}
	if got := snap.FailureRatio(); got < 0.33 || got > 0.34 {
		t.Fatalf("expected failure ratio about 0.33, got %.4f", got)
	}
	if snap.MaxLatencyMs != 2000 || snap.LastLatencyMs != 2000 {
		t.Fatalf("unexpected latency stats: %+v", snap)
	}
	if snap.P95ProxyLatencyMs != 50 {
		t.Fatalf("expected p95 proxy 50, got %d", snap.P95ProxyLatencyMs)
	}
}

func TestSaveMetrics_PersistsAndResumes(t *testing.T) {
	dataDir := t.TempDir()

	first := NewSaveMetrics(dataDir)
	if _, err := first.RecordSave(time.Millisecond, nil); err != nil {
		t.Fatalf("RecordSave error: %v", err)
	}

	persisted, err := ReadSaveSnapshot(dataDir)
	if err != nil {
		t.Fatalf("ReadSaveSnapshot error: %v", err)
	}
	if persisted.Total != 1 {
		t.Fatalf("expected persisted total 1, got %d", persisted.Total)
	}

	second := NewSaveMetrics(dataDir)
	snap, err := second.RecordSave(time.Millisecond, nil)
	if err != nil {
		t.Fatalf("RecordSave error: %v", err)
	}
	if snap.Total != 2 {
		t.Fatalf("expected totals to accumulate, got %d", snap.Total)
	}
}

func TestReadSaveSnapshot_Missing(t *testing.T) {
	snap, err := ReadSaveSnapshot(t.TempDir())
	if err != nil {
		t.Fatalf("ReadSaveSnapshot error: %v", err)
	}
	if snap.HasData() {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestMeasure_RecordsWrites(t *testing.T) {
	mem := storage.NewMemory()
	recorder := NewSaveMetrics(t.TempDir())
	s := Measure(mem, recorder, nil)

	if err := s.Set("slot", "v1"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, _, err := s.Get("slot"); err != nil {
		t.Fatalf("Get error: %v", err)
	}

	boom := errors.New("boom")
	mem.FailWrites(boom)
	if err := s.Set("slot", "v2"); !errors.Is(err, boom) {
		t.Fatalf("expected write error to pass through, got %v", err)
	}

	snap := recorder.Snapshot()
	if snap.Total != 2 || snap.Failures != 1 {
		t.Fatalf("expected 2 saves with 1 failure, got %+v", snap)
	}
}

func TestMeasure_NilRecorder(t *testing.T) {
	mem := storage.NewMemory()
	if got := Measure(mem, nil, nil); got != storage.Storage(mem) {
		t.Fatal("expected storage to be returned unchanged")
	}
}
