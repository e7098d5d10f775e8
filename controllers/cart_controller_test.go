package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tea-shop/cart"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewCartControllerWithStorage(cart.NewMemoryStorage())

	router := gin.New()
	router.POST("/cart", ctrl.CreateCart)
	router.GET("/cart", ctrl.GetCart)
	router.POST("/cart/items", ctrl.AddItem)
	router.PATCH("/cart/items/:variantId", ctrl.UpdateQty)
	router.DELETE("/cart/items/:variantId", ctrl.RemoveItem)
	router.DELETE("/cart", ctrl.ClearCart)
	router.GET("/cart/totals", ctrl.GetTotals)
	return router
}

func doCartRequest(router *gin.Engine, method, path, cartID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if cartID != "" {
		req.Header.Set("X-Cart-ID", cartID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateCartIssuesID(t *testing.T) {
	router := newCartRouter()

	w := doCartRequest(router, http.MethodPost, "/cart", "", "")
	require.Equal(t, 201, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["cart_id"])
}

func TestCartRequiresHeader(t *testing.T) {
	router := newCartRouter()

	w := doCartRequest(router, http.MethodGet, "/cart", "", "")
	assert.Equal(t, 400, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "X-Cart-ID header required", body["message"])
}

func TestAddItemMergesDuplicateVariant(t *testing.T) {
	router := newCartRouter()

	item := `{"variantId":1,"qty":1,"name":"A-ZEN 50g","priceInr":299,"packSizeG":50,"productSlug":"a-zen"}`
	w := doCartRequest(router, http.MethodPost, "/cart/items", "c1", item)
	require.Equal(t, 200, w.Code)

	item2 := `{"variantId":1,"qty":2,"name":"A-ZEN 50g","priceInr":299}`
	w = doCartRequest(router, http.MethodPost, "/cart/items", "c1", item2)
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]interface{})["qty"])
}

func TestAddItemValidation(t *testing.T) {
	router := newCartRouter()

	w := doCartRequest(router, http.MethodPost, "/cart/items", "c1", `{"variantId":1,"qty":0,"name":"x","priceInr":10}`)
	assert.Equal(t, 400, w.Code)

	w = doCartRequest(router, http.MethodPost, "/cart/items", "c1", `{"variantId":1,"qty":1,"priceInr":10}`)
	assert.Equal(t, 400, w.Code)
}

func TestUpdateQtyZeroRemovesLine(t *testing.T) {
	router := newCartRouter()

	item := `{"variantId":7,"qty":2,"name":"Earl Grey 100g","priceInr":549}`
	require.Equal(t, 200, doCartRequest(router, http.MethodPost, "/cart/items", "c2", item).Code)

	w := doCartRequest(router, http.MethodPatch, "/cart/items/7", "c2", `{"qty":0}`)
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	assert.Empty(t, items)
}

func TestRemoveItem(t *testing.T) {
	router := newCartRouter()

	require.Equal(t, 200, doCartRequest(router, http.MethodPost, "/cart/items", "c3",
		`{"variantId":1,"qty":1,"name":"A-ZEN 50g","priceInr":299}`).Code)
	require.Equal(t, 200, doCartRequest(router, http.MethodPost, "/cart/items", "c3",
		`{"variantId":2,"qty":1,"name":"A-ZEN 100g","priceInr":499}`).Code)

	w := doCartRequest(router, http.MethodDelete, "/cart/items/1", "c3", "")
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]interface{})["variantId"])
}

func TestClearCart(t *testing.T) {
	router := newCartRouter()

	require.Equal(t, 200, doCartRequest(router, http.MethodPost, "/cart/items", "c4",
		`{"variantId":1,"qty":3,"name":"A-ZEN 50g","priceInr":299}`).Code)
	require.Equal(t, 200, doCartRequest(router, http.MethodDelete, "/cart", "c4", "").Code)

	w := doCartRequest(router, http.MethodGet, "/cart", "c4", "")
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	assert.Empty(t, items)
}

func TestCartTotalsEndpoint(t *testing.T) {
	router := newCartRouter()

	require.Equal(t, 200, doCartRequest(router, http.MethodPost, "/cart/items", "c5",
		`{"variantId":1,"qty":1,"name":"A-ZEN 50g","priceInr":299}`).Code)

	w := doCartRequest(router, http.MethodGet, "/cart/totals", "c5", "")
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	totals := body["data"].(map[string]interface{})
	assert.Equal(t, float64(299), totals["subtotal"])
	assert.Equal(t, float64(49), totals["shipping"])
	assert.Equal(t, float64(15), totals["tax"])
	assert.Equal(t, float64(363), totals["total"])
}

func TestCartsAreIsolatedByID(t *testing.T) {
	router := newCartRouter()

	require.Equal(t, 200, doCartRequest(router, http.MethodPost, "/cart/items", "alice",
		`{"variantId":1,"qty":1,"name":"A-ZEN 50g","priceInr":299}`).Code)

	w := doCartRequest(router, http.MethodGet, "/cart", "bob", "")
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	assert.Empty(t, items)
}
