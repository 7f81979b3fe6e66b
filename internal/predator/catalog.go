package predator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog is the read-only collection of predators loaded at startup.
// All query methods return fresh slices; the backing records are never
// reordered or modified, so a *Catalog is safe to share.
type Catalog struct {
	records []ApexPredator
	order   map[string]int // id -> insertion index
}

// NewCatalog builds a catalog preserving the given insertion order.
func NewCatalog(records []ApexPredator) (*Catalog, error) {
	c := &Catalog{
		records: make([]ApexPredator, 0, len(records)),
		order:   make(map[string]int, len(records)),
	}
	for _, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("predator %q: empty id", r.Name)
		}
		if !r.Type.Valid() || r.Type == TypeAll {
			return nil, fmt.Errorf("predator %q: %w: %q", r.Name, ErrUnknownType, r.Type)
		}
		if _, dup := c.order[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		c.order[r.ID] = len(c.records)
		c.records = append(c.records, r.clone())
	}
	return c, nil
}

// clone copies the movie and scene slices so the copy shares no backing
// arrays with r.
func (r ApexPredator) clone() ApexPredator {
	r.Movies = slices.Clone(r.Movies)
	r.MovieScenes = slices.Clone(r.MovieScenes)
	return r
}

func cloneAll(records []ApexPredator) []ApexPredator {
	out := make([]ApexPredator, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}

// Len is the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// All returns every record in insertion order.
func (c *Catalog) All() []ApexPredator {
	return cloneAll(c.records)
}

// Get returns the record with the given id.
func (c *Catalog) Get(id string) (ApexPredator, bool) {
	i, ok := c.order[id]
	if !ok {
		return ApexPredator{}, false
	}
	return c.records[i].clone(), true
}

// Lookup resolves an id or a case-insensitive exact name.
func (c *Catalog) Lookup(key string) (ApexPredator, bool) {
	if p, ok := c.Get(key); ok {
		return p, true
	}
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(key))
	for _, r := range c.records {
		if fold.String(r.Name) == want {
			return r.clone(), true
		}
	}
	return ApexPredator{}, false
}

// Filter returns the records of the selected type, or all records for TypeAll.
func (c *Catalog) Filter(selection Type) []ApexPredator {
	out := make([]ApexPredator, 0, len(c.records))
	for _, r := range c.records {
		if selection.Matches(r.Type) {
			out = append(out, r.clone())
		}
	}
	return out
}

// Sort orders records by name when alphabetical is set, otherwise by
// catalog insertion order. Names compare with English collation; ties keep
// their input order.
func (c *Catalog) Sort(records []ApexPredator, alphabetical bool) []ApexPredator {
	out := cloneAll(records)
	if alphabetical {
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b ApexPredator) int {
			return col.CompareString(a.Name, b.Name)
		})
		return out
	}
	slices.SortStableFunc(out, func(a, b ApexPredator) int {
		return c.position(a.ID) - c.position(b.ID)
	})
	return out
}

func (c *Catalog) position(id string) int {
	if i, ok := c.order[id]; ok {
		return i
	}
	return len(c.records)
}

// Search is the package-level Search, kept on Catalog so the three
// pipeline stages share a receiver.
func (c *Catalog) Search(records []ApexPredator, text string) []ApexPredator {
	return Search(records, text)
}

// Search keeps the records whose name contains text, ignoring case.
// Empty text returns the input unchanged.
func Search(records []ApexPredator, text string) []ApexPredator {
	if text == "" {
		return cloneAll(records)
	}
	fold := cases.Fold()
	needle := fold.String(text)
	out := make([]ApexPredator, 0, len(records))
	for _, r := range records {
		if strings.Contains(fold.String(r.Name), needle) {
			out = append(out, r.clone())
		}
	}
	return out
}

// Query is the list screen's input state.
type Query struct {
	Selection    Type
	Alphabetical bool
	SearchText   string
}

// DefaultQuery is the state a fresh list screen starts in.
func DefaultQuery() Query {
	return Query{Selection: TypeAll}
}

// View runs filter, then sort, then search.
func (c *Catalog) View(q Query) []ApexPredator {
	sel := q.Selection
	if sel == "" {
		sel = TypeAll
	}
	return Search(c.Sort(c.Filter(sel), q.Alphabetical), q.SearchText)
}

// Suggest returns the name in records closest to text by edit distance,
// if one is close enough to be a plausible typo.
func Suggest(records []ApexPredator, text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	fold := cases.Fold()
	needle := fold.String(text)
	best, bestDist := "", -1
	for _, r := range records {
		d := levenshtein.ComputeDistance(needle, fold.String(r.Name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = r.Name, d
		}
	}
	if bestDist < 0 {
		return "", false
	}
	limit := max(2, len([]rune(best))/3)
	if bestDist > limit {
		return "", false
	}
	return best, true
}
