package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/MEKXH/approvalcenter/internal/approval"
	"github.com/MEKXH/approvalcenter/internal/audit"
	"github.com/MEKXH/approvalcenter/internal/config"
	"github.com/MEKXH/approvalcenter/internal/metrics"
	"github.com/MEKXH/approvalcenter/internal/storage"
)

// session bundles the store opened for one command invocation.
type session struct {
	cfg     *config.Config
	dataDir string
	// backend is the configured storage; slot is what the store writes
	// through, measured for durable backends.
	backend storage.Storage
	slot    storage.Storage
	store   *approval.Store
	audit   *audit.Writer
	closer  io.Closer
}

// openSession loads config, opens the configured backend and initializes the
// approval store. source tags audit events written by this session.
func openSession(source string) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	dataDir, err := cfg.DataPathChecked()
	if err != nil {
		return nil, fmt.Errorf("invalid data dir: %w", err)
	}

	backend, closer, err := storage.Open(cfg.Storage.Backend, dataDir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	logger := slog.Default()
	slot := backend
	switch cfg.Storage.Backend {
	case storage.BackendFile, storage.BackendSQLite:
		slot = metrics.Measure(backend, metrics.NewSaveMetrics(dataDir), logger)
	}

	store := approval.NewStore(approval.Options{Storage: slot, Logger: logger})
	store.Initialize()

	s := &session{
		cfg:     cfg,
		dataDir: dataDir,
		backend: backend,
		slot:    slot,
		store:   store,
		closer:  closer,
	}
	if cfg.Audit.Enabled {
		s.audit = audit.NewWriter(dataDir)
		store.OnApproved(s.audit.ApprovalHook(source, logger))
	}
	return s, nil
}

func (s *session) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// saveError turns a failed save into the message shown to the user.
func saveError(err error) error {
	if errors.Is(err, approval.ErrSaveFailed) {
		return fmt.Errorf("approval applied for this run only: %w", err)
	}
	return err
}

// durable reports whether writes outlive this process.
func (s *session) durable() bool {
	switch s.backend.(type) {
	case storage.Nop, *storage.Memory:
		return false
	}
	return true
}
