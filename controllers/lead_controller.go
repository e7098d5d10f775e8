package controllers

import (
	"log"
	"strings"

	"tea-shop/models"
	"tea-shop/repositories"

	"github.com/gin-gonic/gin"
)

type LeadController struct {
	repo *repositories.FeedbackRepository
}

func NewLeadController() *LeadController {
	return &LeadController{repo: repositories.NewFeedbackRepository()}
}

// Create godoc
// @Summary Capture lead
// @Description Store a marketing lead and return its id
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body models.LeadRequest true "Lead"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /leads [post]
func (ctrl *LeadController) Create(c *gin.Context) {
	var req models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Email is required"})
		return
	}

	if !emailRegex.MatchString(req.Email) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid email format"})
		return
	}

	lead := models.Lead{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:  strings.TrimSpace(req.Phone),
		Source: req.Source,
	}

	if err := ctrl.repo.CreateLead(&lead); err != nil {
		log.Println("Failed to persist lead:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to save lead"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Lead captured",
		"data":    gin.H{"id": lead.ID},
	})
}
