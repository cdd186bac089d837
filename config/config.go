package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	FrontendURL string
	// Extra comma separated origins allowed by CORS
	AllowedOrigins []string
	// Optional YAML file that replaces the embedded portfolio content
	ContentFile string
	Mail        MailConfig
}

// MailConfig is handed explicitly to the contact usecase. Relay is only
// attempted when both User and Password are set.
type MailConfig struct {
	Provider    string // "smtp" or "resend"
	User        string // SMTP login / verified sender address
	Password    string // SMTP app password / Resend API key
	SMTPHost    string
	SMTPPort    string
	To          string // Recipient of contact form messages
	SendTimeout time.Duration
}

const (
	ProviderSMTP   = "smtp"
	ProviderResend = "resend"
)

// Configured reports whether both mail secrets are present.
func (m MailConfig) Configured() bool {
	return m.User != "" && m.Password != ""
}

func LoadConfig() (*Config, error) {
	// .env is optional, missing file is fine outside local dev
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),
		ContentFile:    getEnv("CONTENT_FILE", ""),
		Mail: MailConfig{
			Provider:    strings.ToLower(getEnv("MAIL_PROVIDER", ProviderSMTP)),
			User:        getEnv("EMAIL_USER", ""),
			Password:    getEnv("EMAIL_PASS", ""),
			SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:    getEnv("SMTP_PORT", "587"),
			To:          getEnv("CONTACT_EMAIL_TO", "aliabdullah656561@gmail.com"),
			SendTimeout: time.Duration(getEnvInt("MAIL_SEND_TIMEOUT_SECONDS", 0)) * time.Second,
		},
	}

	if cfg.Mail.Provider != ProviderSMTP && cfg.Mail.Provider != ProviderResend {
		log.Printf("WARNING: unknown MAIL_PROVIDER %q, falling back to smtp", cfg.Mail.Provider)
		cfg.Mail.Provider = ProviderSMTP
	}

	if !cfg.Mail.Configured() {
		log.Println("WARNING: EMAIL_USER or EMAIL_PASS missing. Contact messages will be accepted but not relayed.")
	}

	return cfg, nil
}

// IsProduction mirrors gin's release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
