package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/jpapex/internal/database"
	"github.com/jask/jpapex/internal/dataset"
)

// MaintenanceService houses destructive ops surfaced through the CLI.
type MaintenanceService struct {
	DB  *sql.DB
	Log *zap.Logger
}

// Reseed replaces the stored reference data with entries. The running
// process keeps whatever catalog it already loaded.
func (s *MaintenanceService) Reseed(ctx context.Context, entries []dataset.Entry) (int, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	n, err := database.ReseedCatalog(ctx, s.DB, entries)
	if err != nil {
		return 0, fmt.Errorf("reseed: %w", err)
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	if s.Log != nil {
		s.Log.Info("catalog reseeded", zap.Int("records", n))
	}
	return n, nil
}
