package models

import "time"

type Product struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	Benefits         []string         `json:"benefits"`
	PriceInr         int              `json:"price"`
	OriginalPriceInr *int             `json:"original_price,omitempty"`
	InStock          bool             `json:"in_stock"`
	Rating           float64          `json:"rating"`
	Reviews          int              `json:"reviews"`
	Story            string           `json:"story,omitempty"`
	Ingredients      string           `json:"ingredients,omitempty"`
	BrewTempC        int              `json:"brew_temp_c,omitempty"`
	BrewTimeMin      int              `json:"brew_time_min,omitempty"`
	ImageURL         string           `json:"image"`
	HeroImageURL     string           `json:"hero_image,omitempty"`
	CloudinaryID     string           `json:"-"`
	Variants         []ProductVariant `json:"variants,omitempty"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductVariant is a purchasable pack size of a product. Its ID is
// what the cart keys line items by.
type ProductVariant struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	PackSizeG int    `json:"pack_size_g"`
	PriceInr  int    `json:"price_inr"`
	InStock   bool   `json:"in_stock"`
	SKU       string `json:"sku,omitempty"`
}
