package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStorage struct {
	getErr error
	raw    string
}

func (b *brokenStorage) Get(context.Context, string) (string, error) {
	return b.raw, b.getErr
}

func (b *brokenStorage) Set(context.Context, string, string) error {
	return nil
}

func TestAddItemDedupesByVariant(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 1, Name: "A-ZEN 50g", PriceInr: 299}))
	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 2, Name: "A-ZEN 50g", PriceInr: 299}))
	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 3, Name: "A-ZEN 50g", PriceInr: 299}))

	items := store.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].VariantID)
	assert.Equal(t, 6, items[0].Qty)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 3, Qty: 1, Name: "Tulsi", PriceInr: 199}))
	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 1, Name: "A-ZEN", PriceInr: 299}))
	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 2, Qty: 1, Name: "Moringa", PriceInr: 249}))

	items := store.Items(ctx)
	require.Len(t, items, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{items[0].VariantID, items[1].VariantID, items[2].VariantID})
}

func TestUpdateQtySetsQuantity(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 1, Name: "A-ZEN", PriceInr: 299}))
	require.NoError(t, store.UpdateQty(ctx, 1, 5))

	items := store.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Qty)
}

func TestUpdateQtyRemovesAtZeroOrBelow(t *testing.T) {
	for _, qty := range []int{0, -1} {
		ctx := context.Background()
		store := NewStore(NewMemoryStorage())

		require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 2, Name: "A-ZEN", PriceInr: 299}))
		require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 2, Qty: 1, Name: "Moringa", PriceInr: 249}))
		require.NoError(t, store.UpdateQty(ctx, 1, qty))

		items := store.Items(ctx)
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].VariantID)
	}
}

func TestUpdateQtyUnknownVariantIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 2, Name: "A-ZEN", PriceInr: 299}))
	require.NoError(t, store.UpdateQty(ctx, 99, 7))

	items := store.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 1, Name: "A-ZEN", PriceInr: 299}))
	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 2, Qty: 1, Name: "Moringa", PriceInr: 249}))

	require.NoError(t, store.RemoveItem(ctx, 1))
	items := store.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].VariantID)

	// removing an absent variant is a no-op
	require.NoError(t, store.RemoveItem(ctx, 42))
	assert.Len(t, store.Items(ctx), 1)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddItem(ctx, CartItem{VariantID: 1, Qty: 1, Name: "A-ZEN", PriceInr: 299}))
	require.NoError(t, store.Clear(ctx))
	assert.Empty(t, store.Items(ctx))
}

func TestItemsDegradesToEmptyOnCorruptStorage(t *testing.T) {
	ctx := context.Background()

	store := NewStore(&brokenStorage{raw: "{not json"})
	assert.Empty(t, store.Items(ctx))

	store = NewStore(&brokenStorage{getErr: errors.New("storage down")})
	assert.Empty(t, store.Items(ctx))

	store = NewStore(&brokenStorage{raw: "null"})
	assert.NotNil(t, store.Items(ctx))
	assert.Empty(t, store.Items(ctx))
}

func TestRoundTripThroughStorage(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	store := NewStore(storage)
	want := []CartItem{
		{VariantID: 2, Qty: 3, Name: "Moringa Blend", PriceInr: 249, PackSizeG: 100, ProductSlug: "moringa-blend"},
		{VariantID: 1, Qty: 1, Name: "A-ZEN", PriceInr: 299, PackSizeG: 50, ProductSlug: "a-zen"},
	}
	for _, it := range want {
		require.NoError(t, store.AddItem(ctx, it))
	}

	// a fresh store over the same storage sees the identical sequence
	reloaded := NewStore(storage)
	assert.Equal(t, want, reloaded.Items(ctx))
}

func TestGetTotalsEmptyCartStillChargesShipping(t *testing.T) {
	got := GetTotals(nil)
	assert.Equal(t, Totals{Subtotal: 0, Shipping: 49, Tax: 0, Total: 49}, got)
}

func TestGetTotalsFreeShippingThreshold(t *testing.T) {
	below := GetTotals([]CartItem{{VariantID: 1, Qty: 1, PriceInr: 498}})
	assert.Equal(t, 49, below.Shipping)

	at := GetTotals([]CartItem{{VariantID: 1, Qty: 1, PriceInr: 499}})
	assert.Equal(t, 0, at.Shipping)
}

func TestGetTotalsTaxRounding(t *testing.T) {
	// 5% of 10 is 0.5, rounded half away from zero
	got := GetTotals([]CartItem{{VariantID: 1, Qty: 1, PriceInr: 10}})
	assert.Equal(t, 1, got.Tax)

	// 5% of 9 is 0.45, rounds down
	got = GetTotals([]CartItem{{VariantID: 1, Qty: 1, PriceInr: 9}})
	assert.Equal(t, 0, got.Tax)
}

func TestGetTotalsBreakdown(t *testing.T) {
	items := []CartItem{
		{VariantID: 1, Qty: 2, PriceInr: 299},
		{VariantID: 2, Qty: 1, PriceInr: 249},
	}
	got := GetTotals(items)
	assert.Equal(t, 847, got.Subtotal)
	assert.Equal(t, 0, got.Shipping)
	assert.Equal(t, 42, got.Tax) // round(42.35)
	assert.Equal(t, 889, got.Total)
}
