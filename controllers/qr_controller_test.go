package controllers

import (
	"bytes"
	"encoding/json"
	"testing"

	"tea-shop/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQRRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{SiteURL: "https://innerveda.in"}
	ctrl := &QRController{}

	router := gin.New()
	router.POST("/qr", ctrl.Generate)
	return router
}

func TestVCardPayloadFormat(t *testing.T) {
	got := vCardPayload("Inner Veda", "Inner Veda Wellness", "9113920980", "innervedacare@gmail.com", "https://innerveda.in")
	want := "BEGIN:VCARD\nVERSION:3.0\nFN:Inner Veda\nORG:Inner Veda Wellness\nTEL:9113920980\nEMAIL:innervedacare@gmail.com\nURL:https://innerveda.in\nEND:VCARD"
	assert.Equal(t, want, got)
}

func TestWifiPayloadFormat(t *testing.T) {
	assert.Equal(t, "WIFI:T:WPA;S:TeaHouse;P:chai1234;;", wifiPayload("WPA", "TeaHouse", "chai1234"))
}

func TestProductPayloadFormat(t *testing.T) {
	assert.Equal(t, "https://innerveda.in/product/a-zen", productPayload("https://innerveda.in", "a-zen"))
}

func TestGeneratePNG(t *testing.T) {
	router := newQRRouter()

	w := postJSON(router, "/qr", `{"type":"url","url":"https://innerveda.in"}`)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	pngMagic := []byte{0x89, 0x50, 0x4E, 0x47}
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), pngMagic))
}

func TestGeneratePayloadFormat(t *testing.T) {
	router := newQRRouter()

	w := postJSON(router, "/qr", `{"type":"product","slug":"a-zen","format":"payload"}`)
	require.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "https://innerveda.in/product/a-zen", data["payload"])
}

func TestGenerateWifiDefaultsSecurity(t *testing.T) {
	router := newQRRouter()

	w := postJSON(router, "/qr", `{"type":"wifi","ssid":"TeaHouse","password":"chai1234","format":"payload"}`)
	require.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "WIFI:T:WPA;S:TeaHouse;P:chai1234;;", data["payload"])
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	router := newQRRouter()

	w := postJSON(router, "/qr", `{"type":"barcode"}`)
	assert.Equal(t, 400, w.Code)
}

func TestGenerateRejectsMissingData(t *testing.T) {
	router := newQRRouter()

	cases := []string{
		`{"type":"url"}`,
		`{"type":"product"}`,
		`{"type":"contact"}`,
		`{"type":"wifi"}`,
	}
	for _, body := range cases {
		w := postJSON(router, "/qr", body)
		assert.Equal(t, 400, w.Code, "body %s", body)
		assert.Contains(t, w.Body.String(), "Missing data")
	}
}

func TestGenerateClampsSize(t *testing.T) {
	router := newQRRouter()

	// out-of-range sizes fall back to the default and still render
	for _, body := range []string{
		`{"type":"url","url":"https://innerveda.in","size":16}`,
		`{"type":"url","url":"https://innerveda.in","size":4096}`,
	} {
		w := postJSON(router, "/qr", body)
		require.Equal(t, 200, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	}
}
