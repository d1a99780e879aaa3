package service

import (
	"strings"

	"proximity-ai/internal/domain"
)

// ResponseService elige una respuesta fija segun palabras clave.
// Las reglas se evaluan en orden; gana la primera que coincide.
type ResponseService struct {
	rules    []domain.Rule
	fallback string
}

// NewResponseService copia las reglas para que el llamador no pueda mutarlas despues.
func NewResponseService(rules []domain.Rule, fallback string) *ResponseService {
	copied := make([]domain.Rule, len(rules))
	for i, r := range rules {
		keywords := make([]string, len(r.Keywords))
		for j, k := range r.Keywords {
			keywords[j] = strings.ToLower(k)
		}
		copied[i] = domain.Rule{Category: r.Category, Keywords: keywords, Reply: r.Reply}
	}
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &ResponseService{rules: copied, fallback: fallback}
}

// NewDefaultResponseService usa las reglas integradas.
func NewDefaultResponseService() *ResponseService {
	return NewResponseService(DefaultRules(), DefaultFallback)
}

// Match devuelve la categoria elegida y su respuesta.
func (s *ResponseService) Match(message string) (string, string) {
	msg := strings.ToLower(message)
	for _, r := range s.rules {
		for _, k := range r.Keywords {
			if k != "" && strings.Contains(msg, k) {
				return r.Category, r.Reply
			}
		}
	}
	return CategoryFallback, s.fallback
}

// Reply devuelve solo el texto de la respuesta.
func (s *ResponseService) Reply(message string) string {
	_, reply := s.Match(message)
	return reply
}
