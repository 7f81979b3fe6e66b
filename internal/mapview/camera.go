// Package mapview draws a terminal stand-in for a map: a viewport around a
// camera with annotated pins.
package mapview

import (
	"fmt"
	"math"

	"github.com/jask/jpapex/internal/predator"
)

const (
	MinDistance = 100.0
	MaxDistance = 5_000_000.0
	MaxPitch    = 85.0
)

// Camera is a map viewpoint. Distance is meters from the center, Heading
// is the compass bearing the top of the viewport faces, Pitch is the tilt
// away from straight down in degrees.
type Camera struct {
	Center   predator.Coordinate
	Distance float64
	Heading  float64
	Pitch    float64
}

// Preset is the distance, heading and pitch applied around a center.
type Preset struct {
	Distance float64
	Heading  float64
	Pitch    float64
}

var (
	// OverviewPreset frames a record on the list-to-detail hand-off.
	OverviewPreset = Preset{Distance: 30000}

	// CloseUpPreset is the angled view of the full-screen map.
	CloseUpPreset = Preset{Distance: 1000, Heading: 250, Pitch: 80}
)

// At returns a camera centered on c.
func (p Preset) At(c predator.Coordinate) Camera {
	return Camera{Center: c, Distance: p.Distance, Heading: p.Heading, Pitch: p.Pitch}.normalized()
}

// ZoomIn halves the distance.
func (c Camera) ZoomIn() Camera {
	c.Distance /= 2
	return c.normalized()
}

// ZoomOut doubles the distance.
func (c Camera) ZoomOut() Camera {
	c.Distance *= 2
	return c.normalized()
}

// Rotate turns the heading by delta degrees.
func (c Camera) Rotate(delta float64) Camera {
	c.Heading += delta
	return c.normalized()
}

// Tilt changes the pitch by delta degrees.
func (c Camera) Tilt(delta float64) Camera {
	c.Pitch += delta
	return c.normalized()
}

func (c Camera) normalized() Camera {
	c.Distance = math.Min(math.Max(c.Distance, MinDistance), MaxDistance)
	c.Heading = math.Mod(c.Heading, 360)
	if c.Heading < 0 {
		c.Heading += 360
	}
	c.Pitch = math.Min(math.Max(c.Pitch, 0), MaxPitch)
	return c
}

func (c Camera) String() string {
	dist := fmt.Sprintf("%.0f m", c.Distance)
	if c.Distance >= 1000 {
		dist = fmt.Sprintf("%.1f km", c.Distance/1000)
	}
	return fmt.Sprintf("%s · heading %.0f° · pitch %.0f°", dist, c.Heading, c.Pitch)
}
