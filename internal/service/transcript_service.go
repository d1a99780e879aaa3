package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"proximity-ai/internal/domain"
	"proximity-ai/internal/repository"
)

var (
	ErrTranscriptServiceNotConfigured = errors.New("transcript service not configured")
	ErrTranscriptRequired             = errors.New("transcript is required")
	ErrTranscriptWriteFailed          = errors.New("transcript write failed")
)

// TranscriptService registra transcripciones de leads en el log de texto.
type TranscriptService struct {
	logger *zap.Logger
	repo   repository.TranscriptRepository
	now    func() time.Time
}

func NewTranscriptService(logger *zap.Logger, repo repository.TranscriptRepository) *TranscriptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptService{
		logger: logger,
		repo:   repo,
		now:    time.Now,
	}
}

// Submit valida y agrega la transcripcion. Solo transcript es obligatorio:
// name y email ausentes se reemplazan por los valores por defecto al formatear.
// No hay reintentos ante fallos de escritura.
func (s *TranscriptService) Submit(ctx context.Context, sub domain.TranscriptSubmission) (domain.LogEntry, error) {
	if s == nil || s.repo == nil {
		return domain.LogEntry{}, ErrTranscriptServiceNotConfigured
	}
	if sub.Transcript == "" {
		return domain.LogEntry{}, ErrTranscriptRequired
	}

	entry := domain.NewLogEntry(uuid.NewString(), sub, s.now())
	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Error("error logging transcript to file",
			zap.String("entry_id", entry.ID),
			zap.Error(err),
		)
		return domain.LogEntry{}, fmt.Errorf("%w: %v", ErrTranscriptWriteFailed, err)
	}

	s.logger.Info("logged transcript",
		zap.String("entry_id", entry.ID),
		zap.Bool("has_name", sub.Name != ""),
		zap.Bool("has_email", sub.Email != ""),
		zap.Int("transcript_bytes", len(sub.Transcript)),
	)
	return entry, nil
}
