package controllers

import (
	"log"
	"strings"
	"time"

	"tea-shop/models"
	"tea-shop/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chat *services.ChatService
}

func NewChatController() *ChatController {
	return &ChatController{chat: services.NewChatService()}
}

func NewChatControllerWithService(chat *services.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

func setNoCache(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

// Status godoc
// @Summary Chat status
// @Description Probe whether the chat route and its AI backend are available
// @Tags Chat
// @Produce json
// @Success 200 {object} models.Response
// @Router /ai/chat [get]
func (ctrl *ChatController) Status(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":            "Chat API route is working!",
		"timestamp":         time.Now().Format(time.RFC3339),
		"openai_configured": ctrl.chat.Configured(),
	})
}

// Send godoc
// @Summary Send chat message
// @Description Forward one user message to the tea expert assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Message"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /ai/chat [post]
func (ctrl *ChatController) Send(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(400, gin.H{"error": "Invalid message"})
		return
	}

	reply, err := ctrl.chat.Reply(c.Request.Context(), strings.TrimSpace(req.Message))
	if err != nil {
		log.Println("Chat completion failed:", err)
		setNoCache(c)
		c.JSON(500, gin.H{"reply": services.FallbackReply})
		return
	}

	setNoCache(c)
	c.JSON(200, gin.H{"reply": reply})
}
