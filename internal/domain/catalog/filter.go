// internal/domain/catalog/filter.go
package catalog

import (
	"net/url"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Default price band when the caller supplies none.
var (
	defaultPriceMin = decimal.Zero
	defaultPriceMax = decimal.NewFromInt(3000)
)

// FilterState is the user-controlled selection driving catalog
// visibility. It is held by the caller and passed in; the engine keeps no
// state of its own.
type FilterState struct {
	Category string
	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
	Search   string
	SortKey  string
}

// DefaultFilterState returns the unconstrained state: all categories, the
// full default price band, no search text, popularity sort.
func DefaultFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		PriceMin: defaultPriceMin,
		PriceMax: defaultPriceMax,
		SortKey:  SortPopularity,
	}
}

// FilterStateFromQuery restores a FilterState from its shareable query
// parameter form. An absent category key means "All".
func FilterStateFromQuery(values url.Values) FilterState {
	state := DefaultFilterState()
	if cat := values.Get("category"); cat != "" {
		state.Category = cat
	}
	state.Search = values.Get("search")
	return state
}

// Query reflects the state back into its shareable representation. Only the
// category and search keys participate; category is omitted when "All".
func (f FilterState) Query() url.Values {
	values := url.Values{}
	if f.Category != "" && f.Category != CategoryAll {
		values.Set("category", f.Category)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	return values
}

// normalized fills zero values with defaults so partially-bound states
// behave like DefaultFilterState.
func (f FilterState) normalized() FilterState {
	if f.Category == "" {
		f.Category = CategoryAll
	}
	if f.PriceMax.IsZero() {
		f.PriceMax = defaultPriceMax
	}
	if f.SortKey == "" {
		f.SortKey = SortPopularity
	}
	return f
}

// Visible produces the browsing view of the catalog: category filter, then
// inclusive price band, then case-folded substring search on the name, then
// sort. The result is a fresh slice; the source is never mutated.
func Visible(src *Source, state FilterState) []Product {
	state = state.normalized()

	visible := make([]Product, 0, src.Len())
	search := strings.ToLower(state.Search)

	for _, p := range src.products {
		if state.Category != CategoryAll && p.Category != state.Category {
			continue
		}
		if p.Price.LessThan(state.PriceMin) || p.Price.GreaterThan(state.PriceMax) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		visible = append(visible, p)
	}

	switch state.SortKey {
	case SortPriceAsc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Price.LessThan(visible[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Price.GreaterThan(visible[j].Price)
		})
	default:
		// Popularity uses rating as a proxy; ties keep feed order.
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Rating > visible[j].Rating
		})
	}

	return visible
}
