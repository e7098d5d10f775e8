package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	// app passwords are often pasted with spaces
	smtpPass = strings.ReplaceAll(smtpPass, " ", "")

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

var contactCategoryEmojis = map[string]string{
	"general":   "💬",
	"product":   "🍃",
	"order":     "📦",
	"health":    "⚕️",
	"wholesale": "💼",
	"media":     "📰",
}

func (s *EmailService) SendContactAdminNotification(adminEmail string, sub ContactSubmission) error {
	emoji := contactCategoryEmojis[sub.Category]
	if emoji == "" {
		emoji = "💬"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", adminEmail)
	m.SetHeader("Subject", fmt.Sprintf("%s New Contact Form - %s - %s", emoji, strings.ToUpper(sub.Category), sub.Subject))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Segoe UI', Tahoma, sans-serif; background-color: #f8f9fa; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 12px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2d5a45, #3b7057); padding: 30px; text-align: center; border-radius: 12px 12px 0 0; }
        .logo { font-size: 24px; font-weight: bold; color: white; }
        .field { margin: 12px 0; }
        .label { color: #2d5a45; font-weight: bold; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">🍃 Inner Veda</div>
            <p style="color: #e8f5e8; margin: 10px 0 0 0;">New Customer Inquiry Received</p>
        </div>
        <div class="field"><span class="label">Reference:</span> %s</div>
        <div class="field"><span class="label">Name:</span> %s</div>
        <div class="field"><span class="label">Email:</span> %s</div>
        <div class="field"><span class="label">Phone:</span> %s</div>
        <div class="field"><span class="label">Category:</span> %s</div>
        <div class="field"><span class="label">Subject:</span> %s</div>
        <div class="field"><span class="label">Message:</span><br>%s</div>
        <div class="footer">
            <p>This is an automated notification from the storefront contact form.</p>
        </div>
    </div>
</body>
</html>
	`, sub.ID, sub.Name, sub.Email, sub.Phone, sub.Category, sub.Subject, sub.Message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendContactConfirmation(sub ContactSubmission) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", sub.Email)
	m.SetHeader("Subject", "We received your message - Inner Veda")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Segoe UI', Tahoma, sans-serif; background-color: #f8f9fa; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 12px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #2d5a45; }
        .ref-box { background-color: #e8f5e8; border: 2px dashed #2d5a45; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">🍃 Inner Veda</div>
        </div>
        <h2 style="color: #333;">Thank you, %s!</h2>
        <p>We've received your message about <strong>%s</strong> and our team will respond with helpful information soon.</p>

        <div class="ref-box">
            <div style="color: #666; font-size: 14px; margin-bottom: 10px;">Your Reference ID</div>
            <div style="font-size: 18px; font-weight: bold; color: #2d5a45;">%s</div>
        </div>

        <p>For urgent matters, reach us directly at innervedacare@gmail.com or 9113920980 (Mon-Sat, 9 AM - 7 PM IST).</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
            <p>&copy; Inner Veda Wellness. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
	`, sub.Name, sub.Subject, sub.ID)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail, orderNumber string, total int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - Inner Veda", orderNumber))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Segoe UI', Tahoma, sans-serif; background-color: #f8f9fa; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 12px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #2d5a45; }
        .order-box { background-color: #e8f5e8; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">🍃 Inner Veda</div>
        </div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your order!</p>

        <div class="order-box">
            <p><strong>Order Number:</strong> %s</p>
            <p><strong>Total Amount:</strong> ₹%s</p>
        </div>

        <p>Your order has been received and is being processed. We'll notify you when it ships.</p>

        <div class="footer">
            <p>&copy; Inner Veda Wellness. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
	`, orderNumber, formatRupees(total))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func formatRupees(amount int) string {
	str := fmt.Sprintf("%d", amount)
	n := len(str)
	if n <= 3 {
		return str
	}

	result := ""
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result += ","
		}
		result += string(digit)
	}
	return result
}
