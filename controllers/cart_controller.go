package controllers

import (
	"time"

	"tea-shop/cart"
	"tea-shop/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartController serves one cart per client, identified by the
// X-Cart-ID header the client receives from POST /cart.
type CartController struct {
	storage cart.Storage
}

func NewCartController() *CartController {
	if models.RedisClient != nil {
		return &CartController{storage: cart.NewRedisStorage(models.RedisClient, 30*24*time.Hour)}
	}
	return &CartController{storage: cart.NewMemoryStorage()}
}

func NewCartControllerWithStorage(storage cart.Storage) *CartController {
	return &CartController{storage: storage}
}

func (ctrl *CartController) storeFor(cartID string) *cart.Store {
	return cart.NewStoreForKey(ctrl.storage, cart.CartKey+":"+cartID)
}

func (ctrl *CartController) cartID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Cart-ID")
	if id == "" {
		c.JSON(400, gin.H{"success": false, "message": "X-Cart-ID header required"})
		return "", false
	}
	return id, true
}

// CreateCart godoc
// @Summary Create cart
// @Description Issue a new cart id for a guest session
// @Tags Cart
// @Produce json
// @Success 201 {object} models.Response
// @Router /cart [post]
func (ctrl *CartController) CreateCart(c *gin.Context) {
	c.JSON(201, gin.H{
		"success": true,
		"message": "Cart created",
		"data":    gin.H{"cart_id": uuid.NewString()},
	})
}

// GetCart godoc
// @Summary Get cart
// @Description Get cart items and totals
// @Tags Cart
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cartID, ok := ctrl.cartID(c)
	if !ok {
		return
	}

	items := ctrl.storeFor(cartID).Items(c.Request.Context())
	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": gin.H{
			"items":  items,
			"totals": cart.GetTotals(items),
		},
	})
}

// AddItem godoc
// @Summary Add cart item
// @Description Add a variant to the cart, merging with an existing line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param item body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	cartID, ok := ctrl.cartID(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart item"})
		return
	}

	store := ctrl.storeFor(cartID)
	err := store.AddItem(c.Request.Context(), cart.CartItem{
		VariantID:   req.VariantID,
		Qty:         req.Qty,
		Name:        req.Name,
		PriceInr:    req.PriceInr,
		PackSizeG:   req.PackSizeG,
		ProductSlug: req.ProductSlug,
	})
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	items := store.Items(c.Request.Context())
	c.JSON(200, gin.H{
		"success": true,
		"message": "Item added",
		"data": gin.H{
			"items":  items,
			"totals": cart.GetTotals(items),
		},
	})
}

// UpdateQty godoc
// @Summary Update item quantity
// @Description Set a line's quantity; zero or below removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param variantId path int true "Variant ID"
// @Param body body models.UpdateCartQtyRequest true "Quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{variantId} [patch]
func (ctrl *CartController) UpdateQty(c *gin.Context) {
	cartID, ok := ctrl.cartID(c)
	if !ok {
		return
	}

	variantID, valid := pathInt(c, "variantId")
	if !valid {
		c.JSON(400, gin.H{"success": false, "message": "Invalid variant ID"})
		return
	}

	var req models.UpdateCartQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	store := ctrl.storeFor(cartID)
	if err := store.UpdateQty(c.Request.Context(), variantID, req.Qty); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	items := store.Items(c.Request.Context())
	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart updated",
		"data": gin.H{
			"items":  items,
			"totals": cart.GetTotals(items),
		},
	})
}

// RemoveItem godoc
// @Summary Remove cart item
// @Tags Cart
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param variantId path int true "Variant ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{variantId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cartID, ok := ctrl.cartID(c)
	if !ok {
		return
	}

	variantID, valid := pathInt(c, "variantId")
	if !valid {
		c.JSON(400, gin.H{"success": false, "message": "Invalid variant ID"})
		return
	}

	store := ctrl.storeFor(cartID)
	if err := store.RemoveItem(c.Request.Context(), variantID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	items := store.Items(c.Request.Context())
	c.JSON(200, gin.H{
		"success": true,
		"message": "Item removed",
		"data": gin.H{
			"items":  items,
			"totals": cart.GetTotals(items),
		},
	})
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cartID, ok := ctrl.cartID(c)
	if !ok {
		return
	}

	if err := ctrl.storeFor(cartID).Clear(c.Request.Context()); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared"})
}

// GetTotals godoc
// @Summary Get cart totals
// @Description Subtotal, shipping, tax and total for the cart
// @Tags Cart
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /cart/totals [get]
func (ctrl *CartController) GetTotals(c *gin.Context) {
	cartID, ok := ctrl.cartID(c)
	if !ok {
		return
	}

	items := ctrl.storeFor(cartID).Items(c.Request.Context())
	c.JSON(200, gin.H{
		"success": true,
		"message": "Totals computed",
		"data":    cart.GetTotals(items),
	})
}
