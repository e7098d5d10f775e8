package controllers

import (
	"context"
	"log"
	"time"

	"tea-shop/config"
	"tea-shop/models"
	"tea-shop/utils"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

type PaymentController struct{}

// CreateOrder godoc
// @Summary Create payment order
// @Description Create a Razorpay order for the given amount in Rupees
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body models.CreatePaymentOrderRequest true "Order request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /payments/create-order [post]
func (ctrl *PaymentController) CreateOrder(c *gin.Context) {
	var req models.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: amount is required"})
		return
	}

	keyID := config.AppConfig.RazorpayKeyID
	keySecret := config.AppConfig.RazorpayKeySecret
	if keyID == "" || keySecret == "" {
		c.JSON(500, gin.H{
			"success": false,
			"message": "Razorpay credentials not configured. Please add RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET to your environment variables.",
		})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	client := razorpay.NewClient(keyID, keySecret)
	// the gateway expects the amount in paise
	data := map[string]interface{}{
		"amount":          req.Amount * 100,
		"currency":        currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
	}

	order, err := client.Order.Create(data, nil)
	if err != nil {
		log.Println("Razorpay order creation failed:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	c.JSON(200, gin.H{
		"success":  true,
		"order_id": order["id"],
		"amount":   order["amount"],
		"currency": order["currency"],
		"key_id":   keyID,
	})
}

// VerifyPayment godoc
// @Summary Verify payment signature
// @Description Verify the gateway callback signature for a captured payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body models.VerifyPaymentRequest true "Verification request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /payments/verify [post]
func (ctrl *PaymentController) VerifyPayment(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: order id, payment id and signature are required"})
		return
	}

	keySecret := config.AppConfig.RazorpayKeySecret
	if keySecret == "" {
		c.JSON(500, gin.H{
			"success": false,
			"message": "Razorpay secret key not configured. Please add RAZORPAY_KEY_SECRET to your environment variables.",
		})
		return
	}

	if !utils.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, keySecret, req.RazorpaySignature) {
		// never echo the computed signature back
		c.JSON(400, gin.H{"success": false, "message": "Payment verification failed"})
		return
	}

	// best effort: mark the matching local order paid
	if models.DB != nil {
		_, err := models.DB.Exec(context.Background(),
			"UPDATE orders SET status='paid', razorpay_payment_id=$1, updated_at=$2 WHERE razorpay_order_id=$3",
			req.RazorpayPaymentID, time.Now(), req.RazorpayOrderID)
		if err != nil {
			log.Println("Failed to mark order paid:", err)
		}
	}

	c.JSON(200, gin.H{
		"success":    true,
		"message":    "Payment verified successfully",
		"payment_id": req.RazorpayPaymentID,
		"order_id":   req.RazorpayOrderID,
	})
}
