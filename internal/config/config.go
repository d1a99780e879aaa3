package config

import (
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string     `env:"HTTP_PORT" envDefault:"5000"`
	GinMode            string     `env:"GIN_MODE" envDefault:"release"`
	StaticDir          string     `env:"STATIC_DIR" envDefault:"web"`
	StaticIndex        string     `env:"STATIC_INDEX" envDefault:"index.html"`
	TranscriptLogPath  string     `env:"TRANSCRIPT_LOG_PATH" envDefault:"email_log.txt"`
	ResponseRulesFile  string     `env:"RESPONSE_RULES_FILE"`
	CORSAllowedOrigins []string   `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SMTP               SMTPConfig `envPrefix:"SMTP_"`
}

// SMTPConfig agrupa los datos de envio de correo. Hoy es configuracion inerte:
// se carga y se reporta al arrancar, pero ningun componente envia correos.
type SMTPConfig struct {
	Host           string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port           int    `env:"PORT" envDefault:"587"`
	SenderEmail    string `env:"SENDER_EMAIL"`
	SenderPassword string `env:"SENDER_PASSWORD"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`
}

// Enabled indica si hay credenciales suficientes para un futuro remitente.
func (s SMTPConfig) Enabled() bool {
	return strings.TrimSpace(s.Host) != "" &&
		strings.TrimSpace(s.SenderEmail) != "" &&
		strings.TrimSpace(s.RecipientEmail) != ""
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
