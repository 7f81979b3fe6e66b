package predator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sample() []ApexPredator {
	return []ApexPredator{
		{ID: "1", Name: "Rex", Type: TypeLand, Movies: []string{"Jurassic Park"}},
		{ID: "2", Name: "Spino", Type: TypeLand},
		{ID: "3", Name: "Bronto", Type: TypeSea},
		{ID: "4", Name: "Pteranodon", Type: TypeAir},
		{ID: "5", Name: "Mosasaurus", Type: TypeSea},
	}
}

func mustCatalog(t *testing.T, records []ApexPredator) *Catalog {
	t.Helper()
	c, err := NewCatalog(records)
	require.NoError(t, err)
	return c
}

func ids(ps []ApexPredator) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func namesOf(ps []ApexPredator) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := NewCatalog([]ApexPredator{{ID: "1", Name: "A", Type: TypeLand}, {ID: "1", Name: "B", Type: TypeAir}})
	require.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewCatalog([]ApexPredator{{ID: "1", Name: "A", Type: TypeAll}})
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = NewCatalog([]ApexPredator{{ID: "1", Name: "A", Type: "swamp"}})
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = NewCatalog([]ApexPredator{{Name: "A", Type: TypeLand}})
	require.Error(t, err)
}

func TestFilter(t *testing.T) {
	c := mustCatalog(t, sample())
	for _, sel := range []Type{TypeLand, TypeAir, TypeSea} {
		got := c.Filter(sel)
		require.LessOrEqual(t, len(got), c.Len())
		for _, p := range got {
			require.Equal(t, sel, p.Type)
		}
	}
	require.Equal(t, []string{"3", "5"}, ids(c.Filter(TypeSea)))

	all := c.Filter(TypeAll)
	if diff := cmp.Diff(ids(sample()), ids(all)); diff != "" {
		t.Fatalf("filter(all) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterReturnsFreshSlice(t *testing.T) {
	c := mustCatalog(t, sample())
	got := c.Filter(TypeAll)
	got[0].Name = "Mutated"
	got[1] = ApexPredator{}

	p, ok := c.Get("1")
	require.True(t, ok)
	require.Equal(t, "Rex", p.Name)
	require.Equal(t, namesOf(sample()), namesOf(c.All()))
}

func TestDerivedRecordsShareNoBackingArrays(t *testing.T) {
	input := []ApexPredator{{
		ID: "rex", Name: "Rex", Type: TypeLand,
		Movies:      []string{"Jurassic Park"},
		MovieScenes: []MovieScene{{ID: 1, Movie: "Jurassic Park", SceneDescription: "escapes"}},
	}}
	c := mustCatalog(t, input)

	input[0].Movies[0] = "caller"
	input[0].MovieScenes[0].SceneDescription = "caller"

	v := c.View(DefaultQuery())
	v[0].Movies[0] = "view"
	v[0].MovieScenes[0].SceneDescription = "view"

	got, ok := c.Get("rex")
	require.True(t, ok)
	got.Movies[0] = "get"

	found, ok := c.Lookup("Rex")
	require.True(t, ok)
	found.MovieScenes[0].SceneDescription = "lookup"

	c.All()[0].Movies[0] = "all"
	c.Filter(TypeLand)[0].MovieScenes[0].SceneDescription = "filter"

	fresh, ok := c.Get("rex")
	require.True(t, ok)
	require.Equal(t, []string{"Jurassic Park"}, fresh.Movies)
	require.Equal(t, "escapes", fresh.MovieScenes[0].SceneDescription)

	sorted := c.Sort(v, true)
	sorted[0].Movies[0] = "sorted"
	require.Equal(t, "view", v[0].Movies[0], "sort must not alias its input")
}

func TestSort(t *testing.T) {
	c := mustCatalog(t, sample())
	alpha := c.Sort(c.Filter(TypeAll), true)
	require.Equal(t, []string{"Bronto", "Mosasaurus", "Pteranodon", "Rex", "Spino"}, namesOf(alpha))

	// alphabetical = false restores insertion order from any permutation
	restored := c.Sort(alpha, false)
	require.Equal(t, ids(sample()), ids(restored))

	if diff := cmp.Diff(ids(alpha), ids(c.Sort(alpha, true))); diff != "" {
		t.Fatalf("sort not idempotent (-want +got):\n%s", diff)
	}
	require.ElementsMatch(t, ids(sample()), ids(alpha))
}

func TestSortIsLocaleAware(t *testing.T) {
	c := mustCatalog(t, []ApexPredator{
		{ID: "1", Name: "velociraptor", Type: TypeLand},
		{ID: "2", Name: "Allosaurus", Type: TypeLand},
		{ID: "3", Name: "Éoraptor", Type: TypeLand},
		{ID: "4", Name: "Dilophosaurus", Type: TypeLand},
	})
	got := c.Sort(c.All(), true)
	require.Equal(t, []string{"Allosaurus", "Dilophosaurus", "Éoraptor", "velociraptor"}, namesOf(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	c := mustCatalog(t, sample())
	in := c.All()
	_ = c.Sort(in, true)
	require.Equal(t, ids(sample()), ids(in))
}

func TestSearch(t *testing.T) {
	c := mustCatalog(t, sample())
	all := c.All()

	require.Equal(t, ids(all), ids(Search(all, "")), "empty search is identity")

	got := Search(all, "SAUR")
	require.Equal(t, []string{"Mosasaurus"}, namesOf(got))

	got = Search(all, "o")
	require.Equal(t, []string{"Spino", "Bronto", "Pteranodon", "Mosasaurus"}, namesOf(got))
	require.Equal(t, ids(got), ids(Search(got, "o")), "search is idempotent")
	require.Empty(t, Search(all, "zzz"))
}

func TestPipelineOrderMatters(t *testing.T) {
	c := mustCatalog(t, sample())
	require.NotEmpty(t, Search(c.All(), "Bronto"))
	require.Empty(t, c.View(Query{Selection: TypeLand, SearchText: "Bronto"}))
}

func TestViewScenarios(t *testing.T) {
	c := mustCatalog(t, []ApexPredator{
		{ID: "rex", Name: "Rex", Type: TypeLand},
		{ID: "spino", Name: "Spino", Type: TypeLand},
		{ID: "bronto", Name: "Bronto", Type: TypeSea},
	})

	got := c.View(Query{Selection: TypeLand, Alphabetical: true, SearchText: "ex"})
	require.Equal(t, []string{"Rex"}, namesOf(got))

	got = c.View(DefaultQuery())
	require.Equal(t, []string{"Rex", "Spino", "Bronto"}, namesOf(got))

	got = c.View(Query{})
	require.Equal(t, []string{"Rex", "Spino", "Bronto"}, namesOf(got), "zero selection means all")
}

func TestLookup(t *testing.T) {
	c := mustCatalog(t, sample())
	p, ok := c.Lookup("3")
	require.True(t, ok)
	require.Equal(t, "Bronto", p.Name)

	p, ok = c.Lookup("  pteranodon ")
	require.True(t, ok)
	require.Equal(t, "4", p.ID)

	_, ok = c.Lookup("nessie")
	require.False(t, ok)
}

func TestSuggest(t *testing.T) {
	all := sample()
	got, ok := Suggest(all, "Mosasuarus")
	require.True(t, ok)
	require.Equal(t, "Mosasaurus", got)

	_, ok = Suggest(all, "completely different")
	require.False(t, ok)

	_, ok = Suggest(all, "")
	require.False(t, ok)

	_, ok = Suggest(nil, "rex")
	require.False(t, ok)
}
