package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"tea-shop/libs"
	"tea-shop/models"
	"tea-shop/repositories"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	repo *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{repo: repositories.NewProductRepository()}
}

const productCacheTTL = 5 * time.Minute

// GetAllProducts godoc
// @Summary Get all products
// @Description Get the tea catalog with pagination and filters
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Filter by category"
// @Param in_stock query bool false "Filter by stock status"
// @Success 200 {object} models.HATEOASResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, limit, _ := getPaginationParams(c, 10)

	category := c.Query("category")

	var inStock *bool
	if v := c.Query("in_stock"); v != "" {
		b := v == "true" || v == "1"
		inStock = &b
	}

	// cache the unfiltered first page, the storefront's hot path
	cacheable := page == 1 && category == "" && inStock == nil && models.RedisClient != nil
	cacheKey := fmt.Sprintf("products:page1:limit%d", limit)

	if cacheable {
		if cached, err := models.RedisClient.Get(context.Background(), cacheKey).Result(); err == nil {
			var response models.HATEOASResponse
			if json.Unmarshal([]byte(cached), &response) == nil {
				c.JSON(200, response)
				return
			}
		}
	}

	products, total, err := ctrl.repo.GetAllProducts(page, limit, category, inStock)
	if err != nil {
		log.Println("Failed to fetch products:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	response := buildPaginatedResponse(c, "Products retrieved successfully", products, page, limit, total)

	if cacheable {
		if payload, err := json.Marshal(response); err == nil {
			models.RedisClient.Set(context.Background(), cacheKey, payload, productCacheTTL)
		}
	}

	c.JSON(200, response)
}

// GetProductBySlug godoc
// @Summary Get product by slug
// @Description Get a single product with its variants
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [get]
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	product, err := ctrl.repo.GetProductBySlug(slug)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved successfully", "data": product})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product with optional image upload (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param slug formData string true "Product slug"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name, slug, description, category and price are required"})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Category:    req.Category,
		Benefits:    splitBenefits(req.Benefits),
		PriceInr:    req.Price,
		InStock:     req.InStock,
		Story:       req.Story,
		Ingredients: req.Ingredients,
		BrewTempC:   req.BrewTempC,
		BrewTimeMin: req.BrewTimeMin,
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Failed to read image"})
			return
		}
		defer src.Close()

		url, publicID, err := libs.UploadImage(context.Background(), src, req.Slug)
		if err != nil {
			log.Println("Image upload failed:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}
		product.ImageURL = url
		product.CloudinaryID = publicID
	}

	if err := ctrl.repo.CreateProduct(&product); err != nil {
		log.Println("Failed to create product:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	ctrl.invalidateCache()

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Update an existing product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, valid := pathInt(c, "id")
	if !valid {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var slug, cloudinaryID string
	err := models.DB.QueryRow(context.Background(),
		"SELECT slug, cloudinary_id FROM products WHERE id=$1 AND is_active=true", id).Scan(&slug, &cloudinaryID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	product, err := ctrl.repo.GetProductBySlug(slug)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	product.CloudinaryID = cloudinaryID

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Benefits != "" {
		product.Benefits = splitBenefits(req.Benefits)
	}
	if req.Price > 0 {
		product.PriceInr = req.Price
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Story != "" {
		product.Story = req.Story
	}
	if req.Ingredients != "" {
		product.Ingredients = req.Ingredients
	}
	if req.BrewTempC > 0 {
		product.BrewTempC = req.BrewTempC
	}
	if req.BrewTimeMin > 0 {
		product.BrewTimeMin = req.BrewTimeMin
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Failed to read image"})
			return
		}
		defer src.Close()

		url, publicID, err := libs.UploadImage(context.Background(), src, product.Slug)
		if err != nil {
			log.Println("Image upload failed:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}
		if product.CloudinaryID != "" {
			if err := libs.DeleteImage(context.Background(), product.CloudinaryID); err != nil {
				log.Println("Failed to delete old image:", err)
			}
		}
		product.ImageURL = url
		product.CloudinaryID = publicID
	}

	if err := ctrl.repo.UpdateProduct(product); err != nil {
		log.Println("Failed to update product:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	ctrl.invalidateCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Soft-delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, valid := pathInt(c, "id")
	if !valid {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var exists int
	err := models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM products WHERE id=$1 AND is_active=true", id).Scan(&exists)
	if err != nil || exists == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if err := ctrl.repo.DeleteProduct(id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	ctrl.invalidateCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted successfully"})
}

func (ctrl *ProductController) invalidateCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products:*", 100).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

func splitBenefits(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	benefits := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			benefits = append(benefits, trimmed)
		}
	}
	return benefits
}
