package controllers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tea-shop/cart"
	"tea-shop/models"
	"tea-shop/repositories"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	productRepo *repositories.ProductRepository
	email       *models.EmailService
}

func NewOrderController() *OrderController {
	email, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
	}
	return &OrderController{
		productRepo: repositories.NewProductRepository(),
		email:       email,
	}
}

// Checkout godoc
// @Summary Create order
// @Description Place an order; line items are re-priced from the catalog
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CheckoutRequest true "Checkout data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	ctx := context.Background()

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Email, full name, address and at least one item are required"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	req.Address = strings.TrimSpace(req.Address)

	if !emailRegex.MatchString(req.Email) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid email format"})
		return
	}

	// re-price every line from the catalog; client prices are not trusted
	items := make([]cart.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		variant, name, slug, err := ctrl.productRepo.GetVariant(it.VariantID)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("Unknown variant %d", it.VariantID)})
			return
		}
		if !variant.InStock {
			c.JSON(400, gin.H{"success": false, "message": fmt.Sprintf("%s is out of stock", name)})
			return
		}
		items = append(items, cart.CartItem{
			VariantID:   variant.ID,
			Qty:         it.Qty,
			Name:        name,
			PriceInr:    variant.PriceInr,
			PackSizeG:   variant.PackSizeG,
			ProductSlug: slug,
		})
	}

	totals := cart.GetTotals(items)
	orderNum := fmt.Sprintf("ORD-%d", time.Now().Unix())
	now := time.Now()

	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	var razorpayOrderID *string
	if req.RazorpayOrderID != "" {
		razorpayOrderID = &req.RazorpayOrderID
	}

	var orderID int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, email, full_name, phone, address, status, subtotal, shipping, tax, total, razorpay_order_id, notes, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,'pending',$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id`,
		orderNum, req.Email, req.FullName, req.Phone, req.Address,
		totals.Subtotal, totals.Shipping, totals.Tax, totals.Total,
		razorpayOrderID, req.Notes, now, now).Scan(&orderID)
	if err != nil {
		log.Println("Failed to create order:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	for _, it := range items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, variant_id, name, price_inr, qty, pack_size_g, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			orderID, it.VariantID, it.Name, it.PriceInr, it.Qty, it.PackSizeG, now)
		if err != nil {
			log.Println("Failed to create order items:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
			return
		}
	}

	if err = tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to commit"})
		return
	}

	if ctrl.email != nil {
		if err := ctrl.email.SendOrderConfirmationEmail(req.Email, orderNum, totals.Total); err != nil {
			log.Println("Order confirmation email failed:", err)
		}
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order created successfully",
		"data": gin.H{
			"id":           orderID,
			"order_number": orderNum,
			"status":       "pending",
			"subtotal":     totals.Subtotal,
			"shipping":     totals.Shipping,
			"tax":          totals.Tax,
			"total":        totals.Total,
			"email":        req.Email,
			"full_name":    req.FullName,
			"address":      req.Address,
		},
	})
}

// GetOrderByNumber godoc
// @Summary Get order
// @Description Look up an order by its order number (order-success page)
// @Tags Orders
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{orderNumber} [get]
func (ctrl *OrderController) GetOrderByNumber(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var o models.Order
	err := models.DB.QueryRow(context.Background(),
		`SELECT id, order_number, email, full_name, COALESCE(phone,''), address, status,
		        subtotal, shipping, tax, total, razorpay_order_id, razorpay_payment_id,
		        COALESCE(notes,''), created_at, updated_at
		 FROM orders WHERE order_number = $1`, orderNumber).Scan(
		&o.ID, &o.OrderNumber, &o.Email, &o.FullName, &o.Phone, &o.Address, &o.Status,
		&o.Subtotal, &o.Shipping, &o.Tax, &o.Total, &o.RazorpayOrderID, &o.RazorpayPaymentID,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	rows, err := models.DB.Query(context.Background(),
		`SELECT id, order_id, variant_id, name, price_inr, qty, COALESCE(pack_size_g, 0)
		 FROM order_items WHERE order_id = $1 ORDER BY id`, o.ID)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var it models.OrderItem
			if err := rows.Scan(&it.ID, &it.OrderID, &it.VariantID, &it.Name, &it.PriceInr, &it.Qty, &it.PackSizeG); err == nil {
				o.Items = append(o.Items, it)
			}
		}
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved successfully", "data": o})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order number"
// @Success 200 {object} models.HATEOASResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	status := c.Query("status")
	search := c.Query("search")

	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if status != "" && status != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}
	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("order_number LIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	where := ""
	if len(whereConditions) > 0 {
		where = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := models.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count orders"})
		return
	}

	query := `SELECT id, order_number, email, full_name, status, subtotal, shipping, tax, total, created_at
	          FROM orders` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch orders"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.Email, &o.FullName, &o.Status,
			&o.Subtotal, &o.Shipping, &o.Tax, &o.Total, &o.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, o)
	}

	response := buildPaginatedResponse(c, "Orders retrieved successfully", orders, page, limit, total)
	c.JSON(200, response)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Update order status (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, valid := pathInt(c, "id")
	if !valid {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	var exists int
	err := models.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders WHERE id=$1", id).Scan(&exists)
	if err != nil || exists == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	_, err = models.DB.Exec(context.Background(),
		"UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3",
		req.Status, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data": gin.H{
			"id":     id,
			"status": req.Status,
		},
	})
}
