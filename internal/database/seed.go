package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/jpapex/internal/database/repository"
	"github.com/jask/jpapex/internal/dataset"
)

// SeedCatalog loads dataset entries into an empty database.
// It is idempotent and safe to run on every startup: a database that
// already holds predators is left untouched. It returns the number of
// records written.
func SeedCatalog(ctx context.Context, db *sql.DB, entries []dataset.Entry) (int, error) {
	n, err := repository.NewPredatorRepo(db).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count predators: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	return writeEntries(ctx, db, entries, false)
}

// ReseedCatalog replaces the stored catalog with entries.
func ReseedCatalog(ctx context.Context, db *sql.DB, entries []dataset.Entry) (int, error) {
	return writeEntries(ctx, db, entries, true)
}

func writeEntries(ctx context.Context, db *sql.DB, entries []dataset.Entry, replace bool) (int, error) {
	written := 0
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewPredatorRepo(tx)
		if replace {
			if err := repo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("clear predators: %w", err)
			}
		}
		for idx, e := range entries {
			p, err := e.Record()
			if err != nil {
				return err
			}
			if err := repo.Upsert(ctx, p, idx); err != nil {
				return err
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}
