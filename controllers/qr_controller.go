package controllers

import (
	"fmt"

	"tea-shop/config"
	"tea-shop/models"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

type QRController struct{}

// vCard 3.0, same field order the storefront's generator produces
func vCardPayload(name, org, phone, email, website string) string {
	return fmt.Sprintf("BEGIN:VCARD\nVERSION:3.0\nFN:%s\nORG:%s\nTEL:%s\nEMAIL:%s\nURL:%s\nEND:VCARD",
		name, org, phone, email, website)
}

func wifiPayload(security, ssid, password string) string {
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", security, ssid, password)
}

func productPayload(siteURL, slug string) string {
	return fmt.Sprintf("%s/product/%s", siteURL, slug)
}

// Generate godoc
// @Summary Generate QR code
// @Description Build a QR payload (URL, product link, vCard or WiFi) and render it as PNG
// @Tags QR
// @Accept json
// @Produce png
// @Param request body models.QRRequest true "QR request"
// @Success 200 {string} binary "PNG image"
// @Failure 400 {object} models.ErrorResponse
// @Router /qr [post]
func (ctrl *QRController) Generate(c *gin.Context) {
	var req models.QRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: type must be one of url, product, contact, wifi"})
		return
	}

	var payload string
	switch req.Type {
	case "url":
		payload = req.URL
	case "product":
		if req.Slug != "" {
			payload = productPayload(config.AppConfig.SiteURL, req.Slug)
		}
	case "contact":
		if req.Name != "" {
			payload = vCardPayload(req.Name, req.Organization, req.Phone, req.Email, req.Website)
		}
	case "wifi":
		if req.SSID != "" {
			security := req.Security
			if security == "" {
				security = "WPA"
			}
			payload = wifiPayload(security, req.SSID, req.Password)
		}
	}

	if payload == "" {
		c.JSON(400, gin.H{"success": false, "message": "Missing data for QR payload"})
		return
	}

	if req.Format == "payload" {
		c.JSON(200, gin.H{"success": true, "data": gin.H{"payload": payload}})
		return
	}

	size := req.Size
	if size < 64 || size > 1024 {
		size = 256
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to generate QR code"})
		return
	}

	c.Data(200, "image/png", png)
}
