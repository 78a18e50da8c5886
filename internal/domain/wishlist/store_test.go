package wishlist

import (
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testCatalog() *catalog.Source {
	return catalog.NewSource([]catalog.Product{
		{ID: 1, Name: "Alpha", Category: "A", Price: decimal.NewFromInt(50), Rating: 4, Stock: 3},
		{ID: 2, Name: "Beta", Category: "B", Price: decimal.NewFromInt(150), Rating: 5, Stock: 10},
	})
}

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	return NewStore(testCatalog(), mem, testLogger()), mem
}

func TestAddSnapshotsProduct(t *testing.T) {
	store, _ := newTestStore(t)

	added, err := store.Add(1)
	require.NoError(t, err)
	assert.True(t, added)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Alpha", items[0].Product.Name)
	assert.True(t, items[0].Product.Price.Equal(decimal.NewFromInt(50)))
}

func TestAddIsIdempotentPerProduct(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(1)
	added, err := store.Add(1)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, store.Count())
}

func TestAddUnknownProductIsSilentNoOp(t *testing.T) {
	store, _ := newTestStore(t)

	added, err := store.Add(99)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 0, store.Count())
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	store, _ := newTestStore(t)

	store.Toggle(1)
	assert.True(t, store.Contains(1))

	store.Toggle(1)
	assert.False(t, store.Contains(1))

	// Starting from membership, two toggles restore it as well.
	store.Add(2)
	store.Toggle(2)
	store.Toggle(2)
	assert.True(t, store.Contains(2))
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)

	removed, err := store.Remove(1)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(2)
	store.Add(1)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(2), items[0].Product.ID)
	assert.Equal(t, uint(1), items[1].Product.ID)
}

func TestWishlistRoundTripsThroughStorage(t *testing.T) {
	mem := storage.NewMemory()
	src := testCatalog()

	store := NewStore(src, mem, testLogger())
	store.Add(2)
	store.Add(1)

	reloaded := NewStore(src, mem, testLogger())
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(2), items[0].Product.ID)
	assert.Equal(t, uint(1), items[1].Product.ID)
	assert.Equal(t, "Beta", items[0].Product.Name)
}

func TestReloadKeepsSnapshotsOfVanishedProducts(t *testing.T) {
	mem := storage.NewMemory()

	store := NewStore(testCatalog(), mem, testLogger())
	store.Add(2)

	// Snapshots are not live pointers: the entry survives even when the
	// product is gone from the next session's catalog.
	empty := catalog.NewSource(nil)
	reloaded := NewStore(empty, mem, testLogger())

	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Beta", items[0].Product.Name)
}

func TestClearEmptiesWishlist(t *testing.T) {
	store, _ := newTestStore(t)

	store.Add(1)
	store.Add(2)
	changed, err := store.Clear()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, store.Count())
}

func TestSubscribeNotifiesOnEffectiveMutations(t *testing.T) {
	store, _ := newTestStore(t)

	notified := 0
	cancel := store.Subscribe(func() { notified++ })

	store.Add(1)    // effective
	store.Add(1)    // duplicate, no-op
	store.Remove(2) // absent, no-op
	store.Toggle(1) // effective removal

	assert.Equal(t, 2, notified)

	cancel()
	store.Add(2)
	assert.Equal(t, 2, notified)
}

func TestCorruptPersistedWishlistStartsEmpty(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(context.Background(), StorageKey, []byte("[broken")))

	store := NewStore(testCatalog(), mem, testLogger())
	assert.Equal(t, 0, store.Count())
}
