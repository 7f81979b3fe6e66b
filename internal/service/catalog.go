package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/jpapex/internal/database"
	"github.com/jask/jpapex/internal/database/repository"
	"github.com/jask/jpapex/internal/dataset"
	"github.com/jask/jpapex/internal/predator"
)

// CatalogService seeds the reference store and loads the in-memory catalog.
type CatalogService struct {
	DB        *sql.DB
	Predators *repository.PredatorRepo
	Log       *zap.Logger
}

// NewCatalogService wires a service over db.
func NewCatalogService(db *sql.DB, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{DB: db, Predators: repository.NewPredatorRepo(db), Log: log}
}

// Seed writes entries when the store is empty.
func (s *CatalogService) Seed(ctx context.Context, entries []dataset.Entry) error {
	n, err := database.SeedCatalog(ctx, s.DB, entries)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if n > 0 {
		s.Log.Info("catalog seeded", zap.Int("records", n))
	}
	return nil
}

// Predator reads one record straight from the store. Unknown ids return
// an error wrapping repository.ErrNotFound.
func (s *CatalogService) Predator(ctx context.Context, id string) (predator.ApexPredator, error) {
	return s.Predators.Get(ctx, id)
}

// Load reads every stored predator into an immutable catalog.
func (s *CatalogService) Load(ctx context.Context) (*predator.Catalog, error) {
	records, err := s.Predators.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list predators: %w", err)
	}
	cat, err := predator.NewCatalog(records)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	for _, r := range records {
		if _, err := r.LinkURL(); err != nil {
			s.Log.Warn("predator link unusable", zap.String("predator", r.Name), zap.Error(err))
		}
	}
	s.Log.Info("catalog loaded", zap.Int("records", cat.Len()))
	return cat, nil
}
