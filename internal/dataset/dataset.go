// Package dataset decodes the bundled predator reference data.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/jpapex/internal/predator"
)

//go:embed apexpredators.json
var bundled []byte

// Entry is one predator as stored in the dataset file.
type Entry struct {
	ID          int                   `json:"id"`
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Latitude    float64               `json:"latitude"`
	Longitude   float64               `json:"longitude"`
	Movies      []string              `json:"movies"`
	MovieScenes []predator.MovieScene `json:"movieScenes"`
	Link        string                `json:"link"`
}

// Decode reads a JSON array of entries.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return entries, nil
}

// Bundled returns the entries compiled into the binary.
func Bundled() ([]Entry, error) {
	return Decode(bytes.NewReader(bundled))
}

// Load returns the entries in path, or the bundled set when path is empty.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Bundled()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// RecordID derives the stable catalog id for a dataset entry.
func RecordID(datasetID int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("predator:%d", datasetID))).String()
}

// ImageName is the asset name for a predator: its name lowercased with
// spaces removed.
func ImageName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// Record converts an entry into a catalog record.
func (e Entry) Record() (predator.ApexPredator, error) {
	t, err := predator.ParseType(e.Type)
	if err != nil {
		return predator.ApexPredator{}, fmt.Errorf("entry %d: %w", e.ID, err)
	}
	return predator.ApexPredator{
		ID:          RecordID(e.ID),
		Name:        e.Name,
		Type:        t,
		Image:       ImageName(e.Name),
		Location:    predator.Coordinate{Latitude: e.Latitude, Longitude: e.Longitude},
		Movies:      e.Movies,
		MovieScenes: e.MovieScenes,
		Link:        e.Link,
	}, nil
}
