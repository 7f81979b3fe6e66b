package mapview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jpapex/internal/predator"
)

var rexSite = predator.Coordinate{Latitude: 45.7, Longitude: -107.5}

func TestPresets(t *testing.T) {
	overview := OverviewPreset.At(rexSite)
	require.Equal(t, rexSite, overview.Center)
	require.Equal(t, 30000.0, overview.Distance)

	closeUp := CloseUpPreset.At(rexSite)
	require.Equal(t, 1000.0, closeUp.Distance)
	require.Equal(t, 250.0, closeUp.Heading)
	require.Equal(t, 80.0, closeUp.Pitch)
}

func TestCameraAdjustmentsClamp(t *testing.T) {
	cam := Camera{Center: rexSite, Distance: 150}
	require.Equal(t, MinDistance, cam.ZoomIn().Distance)
	require.Equal(t, 300.0, cam.ZoomOut().Distance)
	require.Equal(t, MaxDistance, Camera{Distance: MaxDistance}.ZoomOut().Distance)

	require.Equal(t, 350.0, cam.Rotate(-10).Heading)
	require.Equal(t, 10.0, cam.Rotate(370).Heading)
	require.Equal(t, MaxPitch, cam.Tilt(120).Pitch)
	require.Equal(t, 0.0, cam.Tilt(-5).Pitch)
}

func TestCameraIsAValue(t *testing.T) {
	cam := OverviewPreset.At(rexSite)
	_ = cam.ZoomIn().Rotate(90)
	require.Equal(t, 30000.0, cam.Distance)
	require.Equal(t, 0.0, cam.Heading)
}

func TestProjectCenterAndNorth(t *testing.T) {
	cam := OverviewPreset.At(rexSite)
	col, row, ok := Project(cam, rexSite, 40, 10)
	require.True(t, ok)
	require.Equal(t, 20, col)
	require.Equal(t, 5, row)

	north := predator.Coordinate{Latitude: rexSite.Latitude + 0.02, Longitude: rexSite.Longitude}
	_, nrow, ok := Project(cam, north, 40, 10)
	require.True(t, ok)
	require.Less(t, nrow, row)

	// facing east, a point to the east sits above the center
	east := predator.Coordinate{Latitude: rexSite.Latitude, Longitude: rexSite.Longitude + 0.02}
	ecol, erow, ok := Project(cam.Rotate(90), east, 40, 10)
	require.True(t, ok)
	require.Equal(t, 20, ecol)
	require.Less(t, erow, 5)
}

func TestProjectOutsideViewport(t *testing.T) {
	cam := CloseUpPreset.At(rexSite)
	far := predator.Coordinate{Latitude: 0, Longitude: 0}
	_, _, ok := Project(cam, far, 40, 10)
	require.False(t, ok)
}

func TestRenderDrawsPinAndLabel(t *testing.T) {
	cam := OverviewPreset.At(rexSite)
	out := Render(cam, []Pin{{Coordinate: rexSite, Label: "Rex"}}, 30, 7)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	for _, l := range lines {
		require.Equal(t, 30, len([]rune(l)))
	}
	require.Contains(t, lines[3], "▼ Rex")
}

func TestRenderEmptyViewport(t *testing.T) {
	require.Equal(t, "", Render(Camera{}, nil, 0, 5))
}
