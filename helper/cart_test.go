package helper

import (
	"context"
	"testing"

	"leevienna_shop/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCartStorage struct {
	data map[string][]byte
}

func newMemoryCartStorage() *memoryCartStorage {
	return &memoryCartStorage{data: map[string][]byte{}}
}

func (s *memoryCartStorage) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := s.data[key]
	if !ok {
		return nil, ErrCartNotFound
	}
	return b, nil
}

func (s *memoryCartStorage) Set(_ context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *memoryCartStorage) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func flowerInput(qty int) model.AddCartItemInput {
	id := "8f14e45f-ceea-467f-a1d6-91b50e4103a5"
	return model.AddCartItemInput{
		ProductType:  "flower",
		ProductId:    &id,
		ProductTitle: "Sunflower Bouquet",
		Price:        100,
		Quantity:     qty,
	}
}

func TestAddItemMergesSameLine(t *testing.T) {
	store := NewCartStore(newMemoryCartStorage())
	ctx := context.Background()

	_, err := store.AddItem(ctx, 1, flowerInput(1))
	require.NoError(t, err)
	items, err := store.AddItem(ctx, 1, flowerInput(2))
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 300.0, CartTotal(items))
	assert.Equal(t, 3, CartCount(items))
}

func TestAddItemDifferentCustomizationIsNewLine(t *testing.T) {
	store := NewCartStore(newMemoryCartStorage())
	ctx := context.Background()

	_, err := store.AddItem(ctx, 1, flowerInput(1))
	require.NoError(t, err)

	ribbon := "red ribbon"
	custom := flowerInput(1)
	custom.Customization = &ribbon
	items, err := store.AddItem(ctx, 1, custom)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].Id, items[1].Id)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	store := NewCartStore(newMemoryCartStorage())
	ctx := context.Background()

	items, err := store.AddItem(ctx, 1, flowerInput(2))
	require.NoError(t, err)

	items, err = store.SetQuantity(ctx, 1, items[0].Id, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, store.Load(ctx, 1))
}

func TestRemoveAbsentItemIsNoop(t *testing.T) {
	store := NewCartStore(newMemoryCartStorage())
	ctx := context.Background()

	_, err := store.AddItem(ctx, 1, flowerInput(1))
	require.NoError(t, err)

	items, err := store.RemoveItem(ctx, 1, "missing-id")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestLoadCorruptSnapshotStartsEmpty(t *testing.T) {
	storage := newMemoryCartStorage()
	storage.data["cart:1"] = []byte("{not json")

	store := NewCartStore(storage)
	assert.Empty(t, store.Load(context.Background(), 1))
}

func TestLoadUnknownVersionStartsEmpty(t *testing.T) {
	storage := newMemoryCartStorage()
	storage.data["cart:1"] = []byte(`{"version":99,"items":[{"id":"x","quantity":5}]}`)

	store := NewCartStore(storage)
	assert.Empty(t, store.Load(context.Background(), 1))
}

func TestEmptyCartDeletesSnapshot(t *testing.T) {
	storage := newMemoryCartStorage()
	store := NewCartStore(storage)
	ctx := context.Background()

	items, err := store.AddItem(ctx, 1, flowerInput(1))
	require.NoError(t, err)
	_, err = store.RemoveItem(ctx, 1, items[0].Id)
	require.NoError(t, err)

	_, ok := storage.data["cart:1"]
	assert.False(t, ok)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	store := NewCartStore(newMemoryCartStorage())
	ctx := context.Background()

	_, err := store.AddItem(ctx, 1, flowerInput(1))
	require.NoError(t, err)

	assert.Empty(t, store.Load(ctx, 2))
}
