package service

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"proximity-ai/internal/domain"
)

const (
	CategoryGreeting   = "greeting"
	CategoryServices   = "services"
	CategoryPricing    = "pricing"
	CategoryScheduling = "scheduling"
	CategoryGratitude  = "gratitude"
	CategoryFallback   = "fallback"
)

// ListeningReply se devuelve cuando el mensaje llega vacio.
const ListeningReply = "I'm listening..."

// DefaultFallback se devuelve cuando ninguna categoria coincide.
const DefaultFallback = "That is a very interesting point. To ensure I give you the most accurate technical information, " +
	"I would suggest connecting with one of our human experts. Shall I take your contact details?"

var ErrInvalidRules = errors.New("invalid response rules")

// DefaultRules devuelve las reglas integradas en orden de prioridad.
func DefaultRules() []domain.Rule {
	return []domain.Rule{
		{
			Category: CategoryGreeting,
			Keywords: []string{"hello", "hi", "hey", "start"},
			Reply:    "Hello! I am the Proximity AI Senior Consultant. How can I assist you in transforming your business today?",
		},
		{
			Category: CategoryServices,
			Keywords: []string{"service", "offer", "do", "help", "feature"},
			Reply: "We specialize in three core areas: \n" +
				"1. Process Automation (reducing manual work by 40%)\n" +
				"2. Customer Insights (predictive analytics)\n" +
				"3. 24/7 AI Agents (like me!)\n" +
				"Which of these interests you most?",
		},
		{
			Category: CategoryPricing,
			Keywords: []string{"price", "cost", "fee", "expensive", "money"},
			Reply: "Our solutions are bespoke to your business needs, typically yielding a 3-5x ROI within the first 6 months. " +
				"To give you an accurate quote, I'd recommend a quick strategy call. Would you like to schedule one?",
		},
		{
			Category: CategoryScheduling,
			Keywords: []string{"book", "call", "schedule", "contact", "email", "talk"},
			Reply: "Excellent choice. You can reach our senior strategy team directly at contact@proximityai.com, " +
				"or simply leave your email here and I will have them prioritize your file.",
		},
		{
			Category: CategoryGratitude,
			Keywords: []string{"thanks", "thank", "cool", "good"},
			Reply:    "You are most welcome. Is there anything else I can clarify for you?",
		},
	}
}

type rulesFile struct {
	Fallback string        `yaml:"fallback"`
	Rules    []domain.Rule `yaml:"rules"`
}

// LoadRules lee un archivo YAML con reglas ordenadas. El orden del archivo es la prioridad.
func LoadRules(path string) ([]domain.Rule, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(raw)
}

// ParseRules valida y normaliza reglas en YAML.
func ParseRules(raw []byte) ([]domain.Rule, string, error) {
	var file rulesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	if len(file.Rules) == 0 {
		return nil, "", fmt.Errorf("%w: no rules defined", ErrInvalidRules)
	}

	rules := make([]domain.Rule, 0, len(file.Rules))
	for i, r := range file.Rules {
		category := strings.TrimSpace(r.Category)
		if category == "" {
			return nil, "", fmt.Errorf("%w: rule %d has no category", ErrInvalidRules, i)
		}
		if strings.TrimSpace(r.Reply) == "" {
			return nil, "", fmt.Errorf("%w: rule %q has no reply", ErrInvalidRules, category)
		}
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) == 0 {
			return nil, "", fmt.Errorf("%w: rule %q has no keywords", ErrInvalidRules, category)
		}
		rules = append(rules, domain.Rule{Category: category, Keywords: keywords, Reply: r.Reply})
	}

	fallback := file.Fallback
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultFallback
	}
	return rules, fallback, nil
}
