// Package predator holds the apex predator catalog and the pure
// filter, sort and search operations over it.
package predator

import (
	"fmt"
	"net/url"
	"strings"
)

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// MovieScene is one notable moment of a predator in a film.
type MovieScene struct {
	ID               int    `json:"id" yaml:"id"`
	Movie            string `json:"movie" yaml:"movie"`
	SceneDescription string `json:"sceneDescription" yaml:"sceneDescription"`
}

// ApexPredator is a catalog record. Values are treated as immutable once
// the catalog is built.
type ApexPredator struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Type        Type         `json:"type" yaml:"type"`
	Image       string       `json:"image" yaml:"image"`
	Location    Coordinate   `json:"location" yaml:"location"`
	Movies      []string     `json:"movies" yaml:"movies"`
	MovieScenes []MovieScene `json:"movieScenes" yaml:"movieScenes"`
	Link        string       `json:"link" yaml:"link"`
}

// TypeImage is the asset name of the background image for the record's type.
func (p ApexPredator) TypeImage() string {
	return string(p.Type)
}

// LinkURL parses Link. Anything other than an absolute http or https URL
// with a host yields ErrInvalidLink.
func (p ApexPredator) LinkURL() (*url.URL, error) {
	return ParseLink(p.Link)
}

// ParseLink validates a link string.
func ParseLink(raw string) (*url.URL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLink)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLink, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidLink)
	}
	return u, nil
}

// SceneGroup is the scenes of one movie in first-appearance order.
type SceneGroup struct {
	Movie  string
	Scenes []MovieScene
}

// ScenesByMovie groups MovieScenes by movie, keeping the order in which
// each movie first appears and the order of scenes within it.
func (p ApexPredator) ScenesByMovie() []SceneGroup {
	var groups []SceneGroup
	index := map[string]int{}
	for _, s := range p.MovieScenes {
		i, ok := index[s.Movie]
		if !ok {
			i = len(groups)
			index[s.Movie] = i
			groups = append(groups, SceneGroup{Movie: s.Movie})
		}
		groups[i].Scenes = append(groups[i].Scenes, s)
	}
	return groups
}
