package metrics

import (
	"log/slog"
	"time"

	"github.com/MEKXH/approvalcenter/internal/storage"
)

// measuredStorage times every Set on the wrapped backend.
type measuredStorage struct {
	storage.Storage
	recorder *SaveMetrics
	logger   *slog.Logger
}

// Measure wraps s so that every write is recorded by m. Reads pass through.
// A nil recorder returns s unchanged.
func Measure(s storage.Storage, m *SaveMetrics, logger *slog.Logger) storage.Storage {
	if m == nil || s == nil {
		return s
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &measuredStorage{Storage: s, recorder: m, logger: logger}
}

func (s *measuredStorage) Set(key, value string) error {
	start := time.Now()
	err := s.Storage.Set(key, value)
	if _, recErr := s.recorder.RecordSave(time.Since(start), err); recErr != nil {
		s.logger.Warn("failed to persist save metrics", "error", recErr)
	}
	return err
}
