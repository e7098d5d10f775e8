package cart

import (
	"context"
	"encoding/json"
	"math"
)

// CartKey is the storage key the web client has always written its
// persisted cart under. Server-side carts namespace it per cart id.
const CartKey = "tea_cart_v1"

const (
	// FreeShippingMin is the subtotal (in Rupees) at which shipping
	// becomes free.
	FreeShippingMin = 499
	// FlatShippingFee is charged below the free-shipping threshold.
	FlatShippingFee = 49
	// TaxRate is applied to the subtotal.
	TaxRate = 0.05
)

// CartItem is one line in the cart, keyed by variant. The JSON field
// names match the browser client exactly so an exported cart
// round-trips through this package unchanged.
type CartItem struct {
	VariantID   int    `json:"variantId"`
	Qty         int    `json:"qty"`
	Name        string `json:"name"`
	PriceInr    int    `json:"priceInr"`
	PackSizeG   int    `json:"packSizeG,omitempty"`
	ProductSlug string `json:"productSlug,omitempty"`
}

type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

// Store keeps an ordered list of cart items in an injected key-value
// Storage, serialized as a JSON array.
type Store struct {
	storage Storage
	key     string
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage, key: CartKey}
}

// NewStoreForKey is used by the HTTP layer to keep one cart per client
// under its own key.
func NewStoreForKey(storage Storage, key string) *Store {
	return &Store{storage: storage, key: key}
}

// Items returns the persisted cart in insertion order. A missing or
// malformed entry is treated as an empty cart, never an error, so a
// corrupt store cannot break page rendering.
func (s *Store) Items(ctx context.Context) []CartItem {
	raw, err := s.storage.Get(ctx, s.key)
	if err != nil || raw == "" {
		return []CartItem{}
	}
	var items []CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []CartItem{}
	}
	if items == nil {
		items = []CartItem{}
	}
	return items
}

// AddItem appends the item, or increments the quantity of the existing
// line when the variant is already in the cart.
func (s *Store) AddItem(ctx context.Context, item CartItem) error {
	items := s.Items(ctx)
	for i := range items {
		if items[i].VariantID == item.VariantID {
			items[i].Qty += item.Qty
			return s.write(ctx, items)
		}
	}
	return s.write(ctx, append(items, item))
}

// UpdateQty sets the quantity for a variant. Any line left at or below
// zero is dropped from the persisted list.
func (s *Store) UpdateQty(ctx context.Context, variantID, qty int) error {
	items := s.Items(ctx)
	kept := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.VariantID == variantID {
			it.Qty = qty
		}
		if it.Qty > 0 {
			kept = append(kept, it)
		}
	}
	return s.write(ctx, kept)
}

// RemoveItem deletes the line for the variant, no-op when absent.
func (s *Store) RemoveItem(ctx context.Context, variantID int) error {
	items := s.Items(ctx)
	kept := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.VariantID != variantID {
			kept = append(kept, it)
		}
	}
	return s.write(ctx, kept)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.write(ctx, []CartItem{})
}

func (s *Store) write(ctx context.Context, items []CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, s.key, string(raw))
}

// GetTotals prices a cart in whole Rupees. Tax is 5% of the subtotal
// rounded half away from zero, matching the storefront's Math.round.
// Shipping stays at the flat fee below the free-shipping threshold,
// including for an empty cart.
func GetTotals(items []CartItem) Totals {
	subtotal := 0
	for _, it := range items {
		subtotal += it.PriceInr * it.Qty
	}

	shipping := FlatShippingFee
	if subtotal >= FreeShippingMin {
		shipping = 0
	}

	tax := int(math.Round(float64(subtotal) * TaxRate))

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
