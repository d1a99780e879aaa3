package domain

import (
	"strings"
	"time"
)

const (
	// TimestampLayout es el formato YYYY-MM-DD HH:MM:SS en hora local.
	TimestampLayout = "2006-01-02 15:04:05"

	DefaultLeadName  = "Anonymous"
	DefaultLeadEmail = "Not Provided"
)

// LogDelimiter abre y cierra cada bloque del log de transcripciones.
var LogDelimiter = strings.Repeat("=", 50)

// TranscriptSubmission es el cuerpo de POST /api/send-transcript.
// Solo Transcript es obligatorio; name y email son opcionales a proposito.
type TranscriptSubmission struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Transcript string `json:"transcript"`
}

// LogEntry es un bloque persistido en el archivo de transcripciones.
type LogEntry struct {
	ID         string
	Timestamp  time.Time
	Name       string
	Email      string
	Transcript string
}

// NewLogEntry arma la entrada aplicando los valores por defecto de name/email.
func NewLogEntry(id string, sub TranscriptSubmission, at time.Time) LogEntry {
	name := sub.Name
	if name == "" {
		name = DefaultLeadName
	}
	email := sub.Email
	if email == "" {
		email = DefaultLeadEmail
	}
	return LogEntry{
		ID:         id,
		Timestamp:  at,
		Name:       name,
		Email:      email,
		Transcript: sub.Transcript,
	}
}

// Format devuelve el bloque completo, delimitadores incluidos, listo para un unico write.
func (e LogEntry) Format() string {
	var b strings.Builder
	b.WriteString(LogDelimiter)
	b.WriteString("\n")
	b.WriteString("Timestamp: ")
	b.WriteString(e.Timestamp.Format(TimestampLayout))
	b.WriteString("\nName: ")
	b.WriteString(e.Name)
	b.WriteString("\nEmail: ")
	b.WriteString(e.Email)
	b.WriteString("\n\n--- Transcript ---\n")
	b.WriteString(e.Transcript)
	b.WriteString("\n")
	b.WriteString(LogDelimiter)
	b.WriteString("\n")
	return b.String()
}
