// internal/domain/cart/store_test.go
package cart

import (
	"io"
	"testing"

	"github.com/Zevk4/levelup-store/internal/domain/catalog"
	"github.com/Zevk4/levelup-store/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func catan() catalog.Product {
	return catalog.Product{
		Code:        "JM001",
		Category:    "Juegos",
		Subcategory: "Juegos de Mesa",
		Name:        "Catan",
		Price:       29990,
	}
}

func mouse() catalog.Product {
	return catalog.Product{
		Code:        "MO001",
		Category:    "Perifericos",
		Subcategory: "Mouse Gamer",
		Name:        "Mouse Gamer Logitech G502 HERO",
		Price:       49990,
	}
}

func TestAddAggregatesQuantity(t *testing.T) {
	store := NewStore(storage.NewMemory(), testLogger())

	store.Add(catan())
	store.Add(catan())

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "JM001", lines[0].Product.Code)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(2*29990), store.Total())
	assert.Equal(t, 2, store.ItemCount())
}

func TestItemCountSumsQuantitiesNotLines(t *testing.T) {
	store := NewStore(storage.NewMemory(), testLogger())

	store.Add(catan())
	store.Add(catan())
	store.Add(mouse())

	assert.Len(t, store.Lines(), 2)
	assert.Equal(t, 3, store.ItemCount())
	assert.Equal(t, int64(2*29990+49990), store.Total())
}

func TestRemoveDeletesWholeLine(t *testing.T) {
	store := NewStore(storage.NewMemory(), testLogger())

	store.Add(catan())
	store.Add(catan())
	store.Add(catan())
	store.Remove("JM001")

	assert.Empty(t, store.Lines())
	assert.Equal(t, 0, store.ItemCount())

	// Re-adding starts back at quantity 1, not a decrement.
	store.Add(catan())
	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRemoveAbsentCodeIsNoOp(t *testing.T) {
	store := NewStore(storage.NewMemory(), testLogger())

	store.Add(catan())
	store.Remove("XX999")

	assert.Len(t, store.Lines(), 1)
}

func TestClear(t *testing.T) {
	backing := storage.NewMemory()
	store := NewStore(backing, testLogger())

	store.Add(catan())
	store.Add(mouse())
	store.Clear()

	assert.Empty(t, store.Lines())
	assert.Equal(t, int64(0), store.Total())

	// Durable storage round-trips to an empty array.
	raw, err := backing.Get(StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestEmptyCartZeros(t *testing.T) {
	store := NewStore(storage.NewMemory(), testLogger())

	assert.Equal(t, 0, store.ItemCount())
	assert.Equal(t, int64(0), store.Total())
	assert.Empty(t, store.Lines())
}

func TestPersistenceRoundTrip(t *testing.T) {
	backing := storage.NewMemory()

	first := NewStore(backing, testLogger())
	first.Add(catan())
	first.Add(mouse())
	first.Add(catan())

	second := NewStore(backing, testLogger())

	// Same codes, quantities and first-add order.
	lines := second.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "JM001", lines[0].Product.Code)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "MO001", lines[1].Product.Code)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, first.Total(), second.Total())
}

func TestCorruptPersistedCartStartsEmpty(t *testing.T) {
	backing := storage.NewMemory()
	require.NoError(t, backing.Set(StorageKey, "{corrupt"))

	store := NewStore(backing, testLogger())

	assert.Empty(t, store.Lines())
	assert.Equal(t, 0, store.ItemCount())
}

func TestDrawerFlagIsOrthogonalToContents(t *testing.T) {
	store := NewStore(storage.NewMemory(), testLogger())

	assert.False(t, store.IsOpen())
	store.Open()
	assert.True(t, store.IsOpen())

	store.Add(catan())
	store.Clear()
	assert.True(t, store.IsOpen())

	store.Close()
	assert.False(t, store.IsOpen())
}

func TestTotalsSnapshot(t *testing.T) {
	store := NewStore(storage.NewMemory(), testLogger())

	store.Add(catan())
	store.Add(catan())

	totals := store.Totals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, int64(2*29990), totals.Total)
}
