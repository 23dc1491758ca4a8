package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const saveMetricsFileName = "save_metrics.json"

var latencyBucketUpperBoundsMs = []int64{
	1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000,
}

// SaveSnapshot contains aggregated metrics for writes to durable storage.
type SaveSnapshot struct {
	UpdatedAt         time.Time `json:"updated_at"`
	Total             int64     `json:"total"`
	Failures          int64     `json:"failures"`
	TotalLatencyMs    int64     `json:"total_latency_ms"`
	MaxLatencyMs      int64     `json:"max_latency_ms"`
	LastLatencyMs     int64     `json:"last_latency_ms"`
	P95ProxyLatencyMs int64     `json:"p95_proxy_latency_ms"`
	LastError         string    `json:"last_error,omitempty"`
	Buckets           []int64   `json:"buckets,omitempty"`
}

// FailureRatio returns failures/total in [0,1].
func (s SaveSnapshot) FailureRatio() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Failures) / float64(s.Total)
}

// AvgLatencyMs returns average latency in milliseconds.
func (s SaveSnapshot) AvgLatencyMs() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.TotalLatencyMs) / float64(s.Total)
}

// HasData reports whether any save was recorded.
func (s SaveSnapshot) HasData() bool {
	return s.Total > 0
}

// SaveMetrics records and persists save metrics. Counters accumulate across
// runs through the snapshot file.
type SaveMetrics struct {
	path string

	mu   sync.Mutex
	snap SaveSnapshot
}

// NewSaveMetrics creates a recorder rooted at <dataDir>/state/save_metrics.json,
// continuing from the snapshot already on disk.
func NewSaveMetrics(dataDir string) *SaveMetrics {
	m := &SaveMetrics{path: saveMetricsPath(dataDir)}
	if snap, err := ReadSaveSnapshot(dataDir); err == nil {
		m.snap = snap
	}
	if len(m.snap.Buckets) != len(latencyBucketUpperBoundsMs)+1 {
		m.snap.Buckets = make([]int64, len(latencyBucketUpperBoundsMs)+1)
	}
	return m
}

// Snapshot returns the latest in-memory snapshot.
func (m *SaveMetrics) Snapshot() SaveSnapshot {
	if m == nil {
		return SaveSnapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.clone()
}

// RecordSave updates the counters with one save and persists the snapshot.
func (m *SaveMetrics) RecordSave(duration time.Duration, saveErr error) (SaveSnapshot, error) {
	if m == nil {
		return SaveSnapshot{}, nil
	}

	latencyMs := duration.Milliseconds()
	if latencyMs < 0 {
		latencyMs = 0
	}

	m.mu.Lock()
	m.snap.UpdatedAt = time.Now().UTC()
	m.snap.Total++
	m.snap.TotalLatencyMs += latencyMs
	m.snap.LastLatencyMs = latencyMs
	if latencyMs > m.snap.MaxLatencyMs {
		m.snap.MaxLatencyMs = latencyMs
	}
	if saveErr != nil {
		m.snap.Failures++
		m.snap.LastError = saveErr.Error()
	}
	m.snap.Buckets[latencyBucketIndex(latencyMs)]++
	m.snap.P95ProxyLatencyMs = p95ProxyFromBuckets(m.snap.Buckets, m.snap.Total)

	snapshot := m.snap.clone()
	m.mu.Unlock()

	return snapshot, persistSaveSnapshot(m.path, snapshot)
}

// ReadSaveSnapshot reads the persisted snapshot under dataDir.
// If no file exists yet, it returns a zero-value snapshot and nil error.
func ReadSaveSnapshot(dataDir string) (SaveSnapshot, error) {
	raw, err := os.ReadFile(saveMetricsPath(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return SaveSnapshot{}, nil
		}
		return SaveSnapshot{}, fmt.Errorf("read save metrics: %w", err)
	}

	var snap SaveSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return SaveSnapshot{}, fmt.Errorf("decode save metrics: %w", err)
	}
	return snap, nil
}

func (s SaveSnapshot) clone() SaveSnapshot {
	s.Buckets = append([]int64(nil), s.Buckets...)
	return s
}

func saveMetricsPath(dataDir string) string {
	return filepath.Join(dataDir, "state", saveMetricsFileName)
}

func persistSaveSnapshot(path string, snapshot SaveSnapshot) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create save metrics dir: %w", err)
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode save metrics: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, payload, 0o644); err != nil {
		return fmt.Errorf("write save metrics temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename save metrics file: %w", err)
	}
	return nil
}

func latencyBucketIndex(latencyMs int64) int {
	for i, upper := range latencyBucketUpperBoundsMs {
		if latencyMs <= upper {
			return i
		}
	}
	return len(latencyBucketUpperBoundsMs)
}

func p95ProxyFromBuckets(buckets []int64, total int64) int64 {
	if total <= 0 {
		return 0
	}
	target := int64(float64(total) * 0.95)
	if target <= 0 {
		target = 1
	}

	var cumulative int64
	for i, count := range buckets {
		cumulative += count
		if cumulative < target {
			continue
		}
		if i >= len(latencyBucketUpperBoundsMs) {
			return latencyBucketUpperBoundsMs[len(latencyBucketUpperBoundsMs)-1]
		}
		return latencyBucketUpperBoundsMs[i]
	}
	return latencyBucketUpperBoundsMs[len(latencyBucketUpperBoundsMs)-1]
}
