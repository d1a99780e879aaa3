package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"proximity-ai/internal/domain"
	"proximity-ai/internal/service"
)

// ChatHandler responde mensajes del chat con el selector de respuestas.
type ChatHandler struct {
	logger    *zap.Logger
	responses *service.ResponseService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, responses *service.ResponseService) *ChatHandler {
	return &ChatHandler{
		logger:    logger,
		responses: responses,
	}
}

// Chat maneja POST /api/chat. Un mensaje vacio no es un error.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req domain.ChatMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusOK, domain.ChatReply{Response: service.ListeningReply})
		return
	}

	category, reply := h.responses.Match(req.Message)
	h.logger.Debug("chat reply selected", zap.String("category", category))

	c.JSON(http.StatusOK, domain.ChatReply{Response: reply})
}
