package handlers

import (
	"dan_assistant/internal/i18n"
	"dan_assistant/internal/services"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService services.ChatService
	logger      *slog.Logger
}

func NewChatHandler(chatService services.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, logger: logger}
}

type ChatRequest struct {
	Messages []services.ChatMessage `json:"messages"`
	Message  string                 `json:"message" binding:"required"`
	Lang     string                 `json:"lang"`
}

// HandleTurn runs one conversational exchange with the assistant. Transport
// or model failures degrade to a localized notice, never a crash.
func (h *ChatHandler) HandleTurn(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(req.Lang, "invalidRequest")})
		return
	}

	reply, order, err := h.chatService.Converse(c.Request.Context(), req.Messages, req.Message)
	if err != nil {
		h.logger.Error("chat turn failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": i18n.T(req.Lang, "chatError")})
		return
	}

	response := gin.H{"reply": reply}
	if order != nil {
		response["order"] = order
	}
	c.JSON(http.StatusOK, response)
}
