package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jask/jpapex/internal/config"
	"github.com/jask/jpapex/internal/dataset"
	"github.com/jask/jpapex/internal/predator"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("JPAPEX_CONFIG", filepath.Join(home, "config.toml"))
	return home
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListJSONFiltersAndSorts(t *testing.T) {
	setupHome(t)
	out, err := run(t, "list", "--type", "sea", "--alpha", "--format", "json")
	require.NoError(t, err)

	var got []predator.ApexPredator
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	for i, p := range got {
		require.Equal(t, predator.TypeSea, p.Type)
		if i > 0 {
			require.LessOrEqual(t, got[i-1].Name, p.Name)
		}
	}
}

func TestListYAMLSearch(t *testing.T) {
	setupHome(t)
	out, err := run(t, "list", "--search", "REX", "--format", "yaml")
	require.NoError(t, err)

	var got []predator.ApexPredator
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	for _, p := range got {
		require.Contains(t, p.Name, "Rex")
	}
}

func TestListTableSuggestsOnMiss(t *testing.T) {
	setupHome(t)
	out, err := run(t, "list", "--type", "land", "--search", "Velociraptr")
	require.NoError(t, err)
	require.Contains(t, out, "No predators match. Did you mean Velociraptor?")
}

func TestListRejectsUnknownType(t *testing.T) {
	setupHome(t)
	_, err := run(t, "list", "--type", "lake")
	require.ErrorIs(t, err, predator.ErrUnknownType)
}

func TestListRejectsUnknownFormat(t *testing.T) {
	setupHome(t)
	_, err := run(t, "list", "--format", "xml")
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestShowByName(t *testing.T) {
	setupHome(t)
	out, err := run(t, "show", "tyrannosaurus", "rex")
	require.NoError(t, err)
	require.Contains(t, out, "Tyrannosaurus Rex")
	require.Contains(t, out, "Appears In:")
	require.Contains(t, out, "• Jurassic Park")
	require.Contains(t, out, "Movie Moments:")
	require.Contains(t, out, "https://jurassicpark.fandom.com/wiki/Tyrannosaurus_rex")
}

func TestShowByID(t *testing.T) {
	setupHome(t)
	out, err := run(t, "show", dataset.RecordID(9), "--format", "json")
	require.NoError(t, err)

	var got predator.ApexPredator
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "Quetzalcoatlus", got.Name)
	require.Equal(t, predator.TypeAir, got.Type)
}

func TestShowMissing(t *testing.T) {
	setupHome(t)
	_, err := run(t, "show", "Spinosaurs")
	require.ErrorIs(t, err, errNotFound)
	require.ErrorContains(t, err, "did you mean Spinosaurus?")
}

func TestTypes(t *testing.T) {
	setupHome(t)
	out, err := run(t, "types")
	require.NoError(t, err)
	for _, label := range []string{"All", "Land", "Air", "Sea"} {
		require.Contains(t, out, label)
	}
}

func TestSeedFromFile(t *testing.T) {
	home := setupHome(t)
	path := filepath.Join(home, "tiny.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"name":"Rex","type":"land","movies":["JP"],"link":"https://example.com"}]`), 0o644))

	out, err := run(t, "seed", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, "Seeded 1 predators (schema v1).")

	out, err = run(t, "list", "--format", "json")
	require.NoError(t, err)
	var got []predator.ApexPredator
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Rex", got[0].Name)
}

func TestConfigInit(t *testing.T) {
	home := setupHome(t)
	out, err := run(t, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote")
	require.FileExists(t, filepath.Join(home, "config.toml"))

	_, err = run(t, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = run(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = run(t, "config", "path")
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(home, "config.toml"))
}

func TestFlagsDoNotLeakIntoEnvironment(t *testing.T) {
	home := setupHome(t)
	t.Setenv("JPAPEX_LOG_LEVEL", "")
	explicit := filepath.Join(home, "explicit.toml")

	out, err := run(t, "--config", explicit, "--log-level", "debug", "config", "path")
	require.NoError(t, err)
	require.Contains(t, out, explicit)
	require.Equal(t, filepath.Join(home, "config.toml"), os.Getenv("JPAPEX_CONFIG"))
	require.Empty(t, os.Getenv("JPAPEX_LOG_LEVEL"))

	out, err = run(t, "config", "path")
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(home, "config.toml"))
	require.NotContains(t, out, explicit)
}

func TestRejectsUnknownLogLevelFlag(t *testing.T) {
	setupHome(t)
	_, err := run(t, "--log-level", "chatty", "types")
	require.ErrorIs(t, err, config.ErrInvalid)
}
