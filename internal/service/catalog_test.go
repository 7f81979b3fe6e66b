package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/jpapex/internal/config"
	"github.com/jask/jpapex/internal/database/repository"
	"github.com/jask/jpapex/internal/dataset"
	"github.com/jask/jpapex/internal/predator"
)

func openTestStack(t *testing.T) (*Stack, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	t.Setenv("HOME", t.TempDir())
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, ctx
}

func TestOpenSeedsBundledCatalog(t *testing.T) {
	st, ctx := openTestStack(t)

	entries, err := dataset.Bundled()
	require.NoError(t, err)

	cat, err := st.Catalog.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, len(entries), cat.Len())

	all := cat.All()
	for i, e := range entries {
		require.Equal(t, e.Name, all[i].Name, "insertion order must follow the dataset")
		require.Equal(t, dataset.RecordID(e.ID), all[i].ID)
		require.Equal(t, e.Movies, all[i].Movies)
		require.Len(t, all[i].MovieScenes, len(e.MovieScenes))
	}
}

func TestOpenReportsSchemaAndReadsByID(t *testing.T) {
	st, ctx := openTestStack(t)
	require.Equal(t, uint(1), st.Schema)

	p, err := st.Catalog.Predator(ctx, dataset.RecordID(1))
	require.NoError(t, err)
	require.Equal(t, "Tyrannosaurus Rex", p.Name)

	_, err = st.Catalog.Predator(ctx, "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	st, ctx := openTestStack(t)

	entries, err := dataset.Bundled()
	require.NoError(t, err)
	require.NoError(t, st.Catalog.Seed(ctx, entries))
	require.NoError(t, st.Catalog.Seed(ctx, entries[:1]))

	n, err := st.Catalog.Predators.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(entries), n)
}

func TestReseedReplacesCatalog(t *testing.T) {
	st, ctx := openTestStack(t)

	entries := []dataset.Entry{
		{ID: 100, Name: "Bronto", Type: "land", Latitude: 1, Longitude: 2, Link: "https://example.com/bronto"},
		{ID: 101, Name: "Rex", Type: "land", Latitude: 3, Longitude: 4, Link: "https://example.com/rex",
			MovieScenes: []predator.MovieScene{{ID: 1, Movie: "JP", SceneDescription: "roars"}}},
	}
	n, err := st.Maintenance.Reseed(ctx, entries)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	cat, err := st.Catalog.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	rex, ok := cat.Lookup("rex")
	require.True(t, ok)
	require.Equal(t, "roars", rex.MovieScenes[0].SceneDescription)

	var scenes int
	require.NoError(t, st.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM movie_scenes").Scan(&scenes))
	require.Equal(t, 1, scenes, "old scenes must cascade away")
}

func TestReseedRejectsUnknownType(t *testing.T) {
	st, ctx := openTestStack(t)

	_, err := st.Maintenance.Reseed(ctx, []dataset.Entry{{ID: 1, Name: "Nessie", Type: "lake"}})
	require.ErrorIs(t, err, predator.ErrUnknownType)

	cat, err := st.Catalog.Load(ctx)
	require.NoError(t, err)
	require.Greater(t, cat.Len(), 1, "failed reseed must roll back")
}
