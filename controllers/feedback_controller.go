package controllers

import (
	"log"
	"strconv"
	"strings"

	"tea-shop/models"
	"tea-shop/repositories"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	repo *repositories.FeedbackRepository
}

func NewFeedbackController() *FeedbackController {
	return &FeedbackController{repo: repositories.NewFeedbackRepository()}
}

// Submit godoc
// @Summary Submit feedback
// @Description Record customer feedback, optionally with a rating and product reference
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body models.FeedbackRequest true "Feedback"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /feedback [post]
func (ctrl *FeedbackController) Submit(c *gin.Context) {
	var req models.FeedbackRequest
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

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		c.JSON(400, gin.H{"success": false, "message": "Rating must be between 1 and 5"})
		return
	}

	feedback := models.Feedback{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Rating:    req.Rating,
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		Status:    "new",
	}

	if err := ctrl.repo.Create(&feedback); err != nil {
		log.Println("Failed to persist feedback:", err)
		c.JSON(500, gin.H{
			"success": false,
			"message": "Failed to submit feedback. Please try again or contact us directly at innervedacare@gmail.com",
		})
		return
	}

	log.Printf("New feedback submission: id=%d email=%s subject=%s", feedback.ID, feedback.Email, feedback.Subject)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Your feedback has been submitted successfully!",
		"data": gin.H{
			"submission_id": feedback.ID,
			"created_at":    feedback.CreatedAt,
			"auto_reply":    "Thank you for your valuable feedback! We truly appreciate you taking the time to share your thoughts with us.",
			"next_steps": []string{
				"Your feedback has been recorded and will be reviewed by our team",
				"If you've provided a rating, it will help us improve our products and services",
				"For urgent matters, please contact us directly at innervedacare@gmail.com",
			},
			"contact_info": gin.H{
				"email": "innervedacare@gmail.com",
				"phone": "9113920980",
				"hours": "Mon-Sat, 9 AM - 7 PM IST",
			},
		},
	})
}

// List godoc
// @Summary List feedback
// @Description List feedback with optional status and product filters
// @Tags Feedback
// @Produce json
// @Param status query string false "Filter by status"
// @Param product_id query int false "Filter by product"
// @Param limit query int false "Page size"
// @Param skip query int false "Offset"
// @Success 200 {object} models.Response
// @Router /feedback [get]
func (ctrl *FeedbackController) List(c *gin.Context) {
	status := c.Query("status")
	productID, _ := strconv.Atoi(c.Query("product_id"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	if limit < 1 || limit > 100 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}

	feedback, err := ctrl.repo.List(status, productID, limit, skip)
	if err != nil {
		log.Println("Failed to fetch feedback:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch feedback"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": feedback})
}
