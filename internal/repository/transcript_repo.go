package repository

import (
	"context"
	"os"
	"sync"

	"proximity-ai/internal/domain"
)

type TranscriptRepository interface {
	Append(ctx context.Context, entry domain.LogEntry) error
}

// FileTranscriptRepository agrega bloques a un archivo de texto que solo crece.
// Cada bloque se escribe con una sola llamada a Write sobre un descriptor O_APPEND;
// el mutex evita intercalados en plataformas sin append atomico.
type FileTranscriptRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileTranscriptRepository(path string) *FileTranscriptRepository {
	return &FileTranscriptRepository{path: path}
}

func (r *FileTranscriptRepository) Path() string {
	return r.path
}

func (r *FileTranscriptRepository) Append(ctx context.Context, entry domain.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	block := []byte(entry.Format())

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(block); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
