package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tea-shop/config"
	"tea-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &PaymentController{}

	router := gin.New()
	router.POST("/payments/create-order", ctrl.CreateOrder)
	router.POST("/payments/verify", ctrl.VerifyPayment)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderRequiresCredentials(t *testing.T) {
	config.AppConfig = &config.Config{}
	router := newPaymentRouter()

	w := postJSON(router, "/payments/create-order", `{"amount":499}`)
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "Razorpay credentials not configured")
}

func TestCreateOrderValidatesAmount(t *testing.T) {
	config.AppConfig = &config.Config{RazorpayKeyID: "rzp_test_key", RazorpayKeySecret: "test_secret_key"}
	router := newPaymentRouter()

	w := postJSON(router, "/payments/create-order", `{}`)
	assert.Equal(t, 400, w.Code)

	w = postJSON(router, "/payments/create-order", `{"amount":0}`)
	assert.Equal(t, 400, w.Code)

	w = postJSON(router, "/payments/create-order", `{"amount":-5}`)
	assert.Equal(t, 400, w.Code)
}

func TestVerifyPaymentValidSignature(t *testing.T) {
	config.AppConfig = &config.Config{RazorpayKeySecret: "test_secret_key"}
	router := newPaymentRouter()

	orderID := "order_MknGLV4A1Z8nW6"
	paymentID := "pay_MknH7C2c8jqQ0A"
	sig := utils.ComputeSignature(orderID, paymentID, "test_secret_key")

	body := fmt.Sprintf(`{"razorpay_order_id":%q,"razorpay_payment_id":%q,"razorpay_signature":%q}`,
		orderID, paymentID, sig)
	w := postJSON(router, "/payments/verify", body)
	require.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, paymentID, resp["payment_id"])
	assert.Equal(t, orderID, resp["order_id"])
}

func TestVerifyPaymentRejectsTamperedSignature(t *testing.T) {
	config.AppConfig = &config.Config{RazorpayKeySecret: "test_secret_key"}
	router := newPaymentRouter()

	orderID := "order_MknGLV4A1Z8nW6"
	paymentID := "pay_MknH7C2c8jqQ0A"
	sig := utils.ComputeSignature(orderID, paymentID, "test_secret_key")

	// flip one hex digit
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	body := fmt.Sprintf(`{"razorpay_order_id":%q,"razorpay_payment_id":%q,"razorpay_signature":%q}`,
		orderID, paymentID, string(tampered))
	w := postJSON(router, "/payments/verify", body)
	require.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Payment verification failed")

	// the correct signature must never appear in the response
	assert.NotContains(t, w.Body.String(), sig)
}

func TestVerifyPaymentRejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{RazorpayKeySecret: "test_secret_key"}
	router := newPaymentRouter()

	sig := utils.ComputeSignature("order_abc", "pay_xyz", "another_secret")
	body := fmt.Sprintf(`{"razorpay_order_id":"order_abc","razorpay_payment_id":"pay_xyz","razorpay_signature":%q}`, sig)

	w := postJSON(router, "/payments/verify", body)
	assert.Equal(t, 400, w.Code)
}

func TestVerifyPaymentRequiresAllFields(t *testing.T) {
	config.AppConfig = &config.Config{RazorpayKeySecret: "test_secret_key"}
	router := newPaymentRouter()

	w := postJSON(router, "/payments/verify", `{"razorpay_order_id":"order_abc"}`)
	assert.Equal(t, 400, w.Code)
}

func TestVerifyPaymentRequiresSecret(t *testing.T) {
	config.AppConfig = &config.Config{}
	router := newPaymentRouter()

	w := postJSON(router, "/payments/verify",
		`{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"s"}`)
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}
