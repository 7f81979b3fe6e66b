package service

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jask/jpapex/internal/config"
	"github.com/jask/jpapex/internal/database"
	"github.com/jask/jpapex/internal/dataset"
)

// Stack is the opened store plus the services built over it.
type Stack struct {
	DB          *sql.DB
	Catalog     *CatalogService
	Maintenance *MaintenanceService
	// Schema is the applied migration version.
	Schema uint
}

// Open prepares the database at cfg.Database.Path: creates its directory,
// applies migrations and seeds the catalog from cfg.Catalog.SeedFile or the
// bundled dataset.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (*Stack, error) {
	if log == nil {
		log = zap.NewNop()
	}
	path := cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	schema, dirty, err := database.SchemaVersion(path)
	if err != nil {
		return nil, fmt.Errorf("schema version: %w", err)
	}
	if dirty {
		return nil, fmt.Errorf("schema version %d is dirty", schema)
	}
	log.Debug("migrations applied", zap.String("db", path), zap.Uint("schema", schema))

	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Stack{
		DB:          db,
		Catalog:     NewCatalogService(db, log),
		Maintenance: &MaintenanceService{DB: db, Log: log},
		Schema:      schema,
	}

	entries, err := dataset.Load(cfg.Catalog.SeedFile)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := st.Catalog.Seed(ctx, entries); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

// Close releases the database.
func (s *Stack) Close() error {
	return s.DB.Close()
}
