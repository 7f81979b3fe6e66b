package predator

import (
	"fmt"
	"strings"
)

// Type is the closed set of predator categories. TypeAll is the
// "no filter" sentinel and is never stored on a record.
type Type string

const (
	TypeAll  Type = "all"
	TypeLand Type = "land"
	TypeAir  Type = "air"
	TypeSea  Type = "sea"
)

// Display holds the presentation attributes tied to a Type.
type Display struct {
	Label      string
	Color      string // foreground hex
	Background string // badge background hex
	Icon       string // symbol identifier
	Glyph      string // terminal stand-in for Icon
}

var typeDisplay = map[Type]Display{
	TypeAll:  {Label: "All", Color: "#cdd6f4", Background: "#585b70", Icon: "square.stack.3d.up.fill", Glyph: "≡"},
	TypeLand: {Label: "Land", Color: "#1e1e2e", Background: "#b5835a", Icon: "leaf.fill", Glyph: "♣"},
	TypeAir:  {Label: "Air", Color: "#1e1e2e", Background: "#94e2d5", Icon: "wind", Glyph: "≈"},
	TypeSea:  {Label: "Sea", Color: "#1e1e2e", Background: "#89b4fa", Icon: "drop.fill", Glyph: "◊"},
}

// Types returns every Type in picker order, TypeAll first.
func Types() []Type {
	return []Type{TypeAll, TypeLand, TypeAir, TypeSea}
}

// ParseType maps a case-insensitive name onto a Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := typeDisplay[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

// Valid reports whether t is a member of the enumeration.
func (t Type) Valid() bool {
	_, ok := typeDisplay[t]
	return ok
}

// Display returns the attributes for t. Unknown values fall back to TypeAll.
func (t Type) Display() Display {
	if d, ok := typeDisplay[t]; ok {
		return d
	}
	return typeDisplay[TypeAll]
}

func (t Type) String() string { return string(t) }

// Matches reports whether a record of type other passes a filter on t.
func (t Type) Matches(other Type) bool {
	return t == TypeAll || t == other
}
