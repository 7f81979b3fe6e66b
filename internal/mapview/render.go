package mapview

import (
	"math"
	"strings"

	"github.com/jask/jpapex/internal/predator"
)

const (
	metersPerDegLat = 110_540.0
	metersPerDegLon = 111_320.0

	// ground width visible at a given distance, as a multiple of it
	fieldOfView = 1.2
	// terminal cells are roughly twice as tall as wide
	cellAspect = 2.0
)

// Pin is an annotation drawn on the map.
type Pin struct {
	Coordinate predator.Coordinate
	Label      string
	Glyph      rune
}

// Project maps a coordinate to a cell of a width x height viewport.
// ok is false when the cell falls outside it.
func Project(cam Camera, c predator.Coordinate, width, height int) (col, row int, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	cam = cam.normalized()
	dx := (c.Longitude - cam.Center.Longitude) * metersPerDegLon * math.Cos(cam.Center.Latitude*math.Pi/180)
	dy := (c.Latitude - cam.Center.Latitude) * metersPerDegLat

	h := cam.Heading * math.Pi / 180
	x := dx*math.Cos(h) - dy*math.Sin(h)
	y := dx*math.Sin(h) + dy*math.Cos(h)

	perCol := cam.Distance * fieldOfView / float64(width)
	perRow := perCol * cellAspect / math.Max(math.Cos(cam.Pitch*math.Pi/180), 0.2)

	col = width/2 + int(math.Round(x/perCol))
	row = height/2 - int(math.Round(y/perRow))
	ok = col >= 0 && col < width && row >= 0 && row < height
	return col, row, ok
}

// Render draws the viewport as height lines of width cells.
func Render(cam Camera, pins []Pin, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = terrain(c, r)
		}
	}
	grid[height/2][width/2] = '+'

	for _, p := range pins {
		col, row, ok := Project(cam, p.Coordinate, width, height)
		if !ok {
			continue
		}
		glyph := p.Glyph
		if glyph == 0 {
			glyph = '▼'
		}
		grid[row][col] = glyph
		label := []rune(" " + p.Label)
		for i, r := range label {
			if col+1+i >= width {
				break
			}
			grid[row][col+1+i] = r
		}
	}

	lines := make([]string, height)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return strings.Join(lines, "\n")
}

func terrain(col, row int) rune {
	switch {
	case row%4 == 0 && col%8 == 0:
		return '┼'
	case (col*7+row*13)%11 == 0:
		return '·'
	default:
		return ' '
	}
}
