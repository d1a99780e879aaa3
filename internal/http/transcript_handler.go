package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"proximity-ai/internal/domain"
	"proximity-ai/internal/service"
)

// TranscriptHandler recibe transcripciones de leads desde el front end.
type TranscriptHandler struct {
	logger      *zap.Logger
	transcripts *service.TranscriptService
}

func NewTranscriptHandler(logger *zap.Logger, transcripts *service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{
		logger:      logger,
		transcripts: transcripts,
	}
}

// SendTranscript maneja POST /api/send-transcript.
func (h *TranscriptHandler) SendTranscript(c *gin.Context) {
	var req domain.TranscriptSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid send transcript request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if _, err := h.transcripts.Submit(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrTranscriptRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
			return
		}
		h.logger.Error("send transcript failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal logging error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transcript received"})
}
