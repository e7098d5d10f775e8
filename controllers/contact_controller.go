package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"tea-shop/config"
	"tea-shop/models"
	"tea-shop/repositories"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	email        *models.EmailService
	feedbackRepo *repositories.FeedbackRepository
}

func NewContactController() *ContactController {
	email, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
	}
	return &ContactController{
		email:        email,
		feedbackRepo: repositories.NewFeedbackRepository(),
	}
}

type contactAutoReply struct {
	message      string
	responseTime string
}

var contactAutoReplies = map[string]contactAutoReply{
	"product": {
		message:      "Thank you for your product inquiry! Our wellness expert will provide detailed information about A-ZEN and help you choose the best options for your health journey.",
		responseTime: "12 hours",
	},
	"order": {
		message:      "We've received your order support request. Our customer care team will review your order details and provide assistance promptly.",
		responseTime: "6 hours",
	},
	"health": {
		message:      "Thank you for reaching out about health and wellness. Our certified wellness consultant will provide personalized guidance based on your needs.",
		responseTime: "12 hours",
	},
	"wholesale": {
		message:      "Thank you for your wholesale inquiry! Our business development team will contact you with pricing, minimum orders, and partnership details.",
		responseTime: "48 hours",
	},
	"media": {
		message:      "Thank you for your media inquiry. Our PR team will get back to you with press materials and interview availability.",
		responseTime: "24 hours",
	},
}

var defaultContactReply = contactAutoReply{
	message:      "Thank you for contacting Inner Veda! We've received your message and our team will respond with helpful information soon.",
	responseTime: "24 hours",
}

// Submit godoc
// @Summary Submit contact form
// @Description Validate and record a contact form submission
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact form"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		c.JSON(400, gin.H{
			"success": false,
			"message": "Missing required fields: name, email, subject, and message are required",
		})
		return
	}

	if !emailRegex.MatchString(req.Email) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid email format"})
		return
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	submission := models.ContactSubmission{
		ID:        fmt.Sprintf("contact_%d_%s", time.Now().UnixMilli(), randomRef(9)),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Category:  category,
		Message:   strings.TrimSpace(req.Message),
		Status:    "new",
		Source:    "website_contact_form",
		CreatedAt: time.Now(),
	}

	log.Printf("New contact form submission: id=%s email=%s category=%s subject=%s",
		submission.ID, submission.Email, submission.Category, submission.Subject)

	if models.DB != nil {
		if err := ctrl.feedbackRepo.CreateContactSubmission(&submission); err != nil {
			log.Println("Failed to persist contact submission:", err)
		}
	}

	// email delivery is best effort; the submission itself succeeded
	if ctrl.email != nil {
		if err := ctrl.email.SendContactAdminNotification(config.AppConfig.AdminEmail, submission); err != nil {
			log.Println("Admin notification email failed:", err)
		}
		if err := ctrl.email.SendContactConfirmation(submission); err != nil {
			log.Println("Customer confirmation email failed:", err)
		}
	}

	reply, ok := contactAutoReplies[category]
	if !ok {
		reply = defaultContactReply
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Your message has been sent successfully!",
		"data": gin.H{
			"submission_id":           submission.ID,
			"auto_reply":              reply.message,
			"estimated_response_time": reply.responseTime,
			"next_steps": []string{
				"Check your email for an auto-reply confirmation",
				fmt.Sprintf("Expect a personal response within %s", reply.responseTime),
				"Follow up at innervedacare@gmail.com if urgent",
				"Join @innerveda.in on social media for wellness tips",
			},
			"contact_info": gin.H{
				"email":        "innervedacare@gmail.com",
				"phone":        "9113920980",
				"hours":        "Mon-Sat, 9 AM - 7 PM IST",
				"social_media": "@innerveda.in",
			},
		},
	})
}
