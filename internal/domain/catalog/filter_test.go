package catalog

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoProductSource() *Source {
	return NewSource([]Product{
		{ID: 1, Name: "Alpha", Category: "A", Price: decimal.NewFromInt(50), Rating: 4},
		{ID: 2, Name: "Beta", Category: "B", Price: decimal.NewFromInt(150), Rating: 5},
	})
}

func visibleIDs(products []Product) []uint {
	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestVisiblePriceDescFixture(t *testing.T) {
	src := twoProductSource()

	state := FilterState{
		Category: CategoryAll,
		PriceMin: decimal.Zero,
		PriceMax: decimal.NewFromInt(3000),
		SortKey:  SortPriceDesc,
	}

	assert.Equal(t, []uint{2, 1}, visibleIDs(Visible(src, state)))
}

func TestVisibleCategoryFilter(t *testing.T) {
	src := twoProductSource()

	state := DefaultFilterState()
	state.Category = "A"
	assert.Equal(t, []uint{1}, visibleIDs(Visible(src, state)))

	state.Category = CategoryAll
	assert.Len(t, Visible(src, state), 2)
}

func TestVisiblePriceBandInclusive(t *testing.T) {
	src := twoProductSource()

	state := DefaultFilterState()
	state.PriceMin = decimal.NewFromInt(50)
	state.PriceMax = decimal.NewFromInt(150)

	// Both bounds are inclusive.
	assert.Len(t, Visible(src, state), 2)

	state.PriceMax = decimal.RequireFromString("149.99")
	assert.Equal(t, []uint{1}, visibleIDs(Visible(src, state)))
}

func TestVisibleSearchIsCaseInsensitiveSubstring(t *testing.T) {
	src := twoProductSource()

	state := DefaultFilterState()
	state.Search = "ALPH"
	assert.Equal(t, []uint{1}, visibleIDs(Visible(src, state)))

	state.Search = "et"
	assert.Equal(t, []uint{2}, visibleIDs(Visible(src, state)))

	state.Search = "missing"
	assert.Empty(t, Visible(src, state))
}

func TestVisiblePopularitySortStableOnTies(t *testing.T) {
	src := NewSource([]Product{
		{ID: 1, Name: "First", Category: "A", Price: decimal.NewFromInt(10), Rating: 4},
		{ID: 2, Name: "Second", Category: "A", Price: decimal.NewFromInt(20), Rating: 5},
		{ID: 3, Name: "Third", Category: "A", Price: decimal.NewFromInt(30), Rating: 4},
	})

	state := DefaultFilterState()
	state.SortKey = SortPopularity

	// Highest rating first; the two 4.0 products keep feed order.
	assert.Equal(t, []uint{2, 1, 3}, visibleIDs(Visible(src, state)))
}

func TestVisiblePriceAscSort(t *testing.T) {
	src := twoProductSource()

	state := DefaultFilterState()
	state.SortKey = SortPriceAsc

	assert.Equal(t, []uint{1, 2}, visibleIDs(Visible(src, state)))
}

func TestVisibleDoesNotMutateSource(t *testing.T) {
	src := twoProductSource()

	state := DefaultFilterState()
	state.SortKey = SortPriceDesc
	Visible(src, state)

	assert.Equal(t, []uint{1, 2}, visibleIDs(src.Products()))
}

func TestFilterStateQueryRoundTrip(t *testing.T) {
	state := DefaultFilterState()
	state.Category = "Electronics"
	state.Search = "head"

	restored := FilterStateFromQuery(state.Query())
	assert.Equal(t, "Electronics", restored.Category)
	assert.Equal(t, "head", restored.Search)
}

func TestFilterStateAbsentCategoryMeansAll(t *testing.T) {
	state := FilterStateFromQuery(url.Values{})
	assert.Equal(t, CategoryAll, state.Category)

	// "All" reflects back into no category key at all.
	require.Empty(t, state.Query().Get("category"))
}

func TestFilterStateQueryOmitsDefaults(t *testing.T) {
	values := DefaultFilterState().Query()
	assert.Empty(t, values.Encode())
}

func TestVisibleNormalizesZeroState(t *testing.T) {
	src := twoProductSource()

	// A zero FilterState behaves like the default one.
	assert.Len(t, Visible(src, FilterState{}), 2)
}
