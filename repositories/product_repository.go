package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tea-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetAllProducts(page, limit int, category string, inStock *bool) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	whereConditions := []string{"is_active = true"}
	args := []interface{}{}
	argIndex := 1

	if category != "" && category != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, category)
		argIndex++
	}
	if inStock != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("in_stock = $%d", argIndex))
		args = append(args, *inStock)
		argIndex++
	}

	where := " WHERE " + strings.Join(whereConditions, " AND ")

	var total int
	err := models.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM products"+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, slug, description, category, benefits, price_inr, original_price_inr,
	          in_stock, rating, reviews, story, ingredients, brew_temp_c, brew_time_min,
	          image_url, hero_image_url, is_active, created_at, updated_at
	          FROM products` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Category, &p.Benefits,
			&p.PriceInr, &p.OriginalPriceInr, &p.InStock, &p.Rating, &p.Reviews,
			&p.Story, &p.Ingredients, &p.BrewTempC, &p.BrewTimeMin,
			&p.ImageURL, &p.HeroImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

func (r *ProductRepository) GetProductBySlug(slug string) (*models.Product, error) {
	query := `SELECT id, name, slug, description, category, benefits, price_inr, original_price_inr,
	          in_stock, rating, reviews, story, ingredients, brew_temp_c, brew_time_min,
	          image_url, hero_image_url, is_active, created_at, updated_at
	          FROM products WHERE slug = $1 AND is_active = true`

	var p models.Product
	err := models.DB.QueryRow(context.Background(), query, slug).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Category, &p.Benefits,
		&p.PriceInr, &p.OriginalPriceInr, &p.InStock, &p.Rating, &p.Reviews,
		&p.Story, &p.Ingredients, &p.BrewTempC, &p.BrewTimeMin,
		&p.ImageURL, &p.HeroImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	variants, err := r.getVariants(p.ID)
	if err != nil {
		return nil, err
	}
	p.Variants = variants

	return &p, nil
}

func (r *ProductRepository) getVariants(productID int) ([]models.ProductVariant, error) {
	rows, err := models.DB.Query(context.Background(),
		`SELECT id, product_id, pack_size_g, price_inr, in_stock, COALESCE(sku, '')
		 FROM product_variants WHERE product_id = $1 ORDER BY pack_size_g`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variants := []models.ProductVariant{}
	for rows.Next() {
		var v models.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.PackSizeG, &v.PriceInr, &v.InStock, &v.SKU); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// GetVariant resolves a purchasable variant with its product name and
// slug, used by checkout to price line items server-side.
func (r *ProductRepository) GetVariant(variantID int) (*models.ProductVariant, string, string, error) {
	var v models.ProductVariant
	var name, slug string
	err := models.DB.QueryRow(context.Background(),
		`SELECT v.id, v.product_id, v.pack_size_g, v.price_inr, v.in_stock, p.name, p.slug
		 FROM product_variants v JOIN products p ON v.product_id = p.id
		 WHERE v.id = $1 AND p.is_active = true`, variantID).Scan(
		&v.ID, &v.ProductID, &v.PackSizeG, &v.PriceInr, &v.InStock, &name, &slug)
	if err != nil {
		return nil, "", "", err
	}
	return &v, name, slug, nil
}

func (r *ProductRepository) CreateProduct(product *models.Product) error {
	query := `
		INSERT INTO products (name, slug, description, category, benefits, price_inr, in_stock,
		                      rating, reviews, story, ingredients, brew_temp_c, brew_time_min,
		                      image_url, cloudinary_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, $8, $9, $10, $11, $12, $13, true, $14, $15)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return models.DB.QueryRow(context.Background(), query,
		product.Name, product.Slug, product.Description, product.Category, product.Benefits,
		product.PriceInr, product.InStock, product.Story, product.Ingredients,
		product.BrewTempC, product.BrewTimeMin, product.ImageURL, product.CloudinaryID, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) UpdateProduct(product *models.Product) error {
	query := `UPDATE products SET name = $1, description = $2, category = $3, benefits = $4,
	          price_inr = $5, in_stock = $6, story = $7, ingredients = $8, brew_temp_c = $9,
	          brew_time_min = $10, image_url = $11, cloudinary_id = $12, updated_at = $13
	          WHERE id = $14`
	_, err := models.DB.Exec(context.Background(), query,
		product.Name, product.Description, product.Category, product.Benefits,
		product.PriceInr, product.InStock, product.Story, product.Ingredients,
		product.BrewTempC, product.BrewTimeMin, product.ImageURL, product.CloudinaryID,
		time.Now(), product.ID,
	)
	return err
}

func (r *ProductRepository) DeleteProduct(id int) error {
	query := `UPDATE products SET is_active = false WHERE id = $1`
	_, err := models.DB.Exec(context.Background(), query, id)
	return err
}
