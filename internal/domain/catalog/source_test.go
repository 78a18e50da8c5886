package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{ID: 1, Name: "Desk Lamp", Category: "Home", Price: decimal.NewFromInt(30), Rating: 4.0, Stock: 10},
		{ID: 2, Name: "Laptop Stand", Category: "Office", Price: decimal.NewFromInt(55), Rating: 4.5, Stock: 5},
		{ID: 3, Name: "Bookshelf", Category: "Home", Price: decimal.NewFromInt(120), Rating: 3.8, Stock: 2},
	}
}

func TestSourcePreservesFeedOrder(t *testing.T) {
	src := NewSource(testProducts())

	products := src.Products()
	require.Len(t, products, 3)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, uint(2), products[1].ID)
	assert.Equal(t, uint(3), products[2].ID)
}

func TestSourceGet(t *testing.T) {
	src := NewSource(testProducts())

	p, ok := src.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Laptop Stand", p.Name)

	_, ok = src.Get(99)
	assert.False(t, ok)
}

func TestSourceDropsDuplicateIDs(t *testing.T) {
	products := testProducts()
	products = append(products, Product{ID: 1, Name: "Impostor"})

	src := NewSource(products)
	assert.Equal(t, 3, src.Len())

	p, _ := src.Get(1)
	assert.Equal(t, "Desk Lamp", p.Name)
}

func TestSourceCategoriesOrder(t *testing.T) {
	src := NewSource(testProducts())

	assert.Equal(t, []string{"All", "Home", "Office"}, src.Categories())
}

func TestSourceEmptyFeedIsValid(t *testing.T) {
	src := NewSource(nil)

	assert.Equal(t, 0, src.Len())
	assert.Equal(t, []string{"All"}, src.Categories())
	assert.Empty(t, Visible(src, DefaultFilterState()))
}

func TestSourceProductsReturnsCopy(t *testing.T) {
	src := NewSource(testProducts())

	products := src.Products()
	products[0].Name = "Mutated"

	fresh := src.Products()
	assert.Equal(t, "Desk Lamp", fresh[0].Name)
}
