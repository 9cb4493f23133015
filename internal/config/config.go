package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	Port         string
	DBConn       string
	LogLevel     string
	JWTSecret    string
	TemplatesDir string
	StaticDir    string
	BaseURL      string

	// SMTP settings for signup notifications. Notifications are disabled
	// when SMTPHost or AdminEmail is empty.
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	SenderEmail string
	AdminEmail  string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=memes password=memes dbname=memedb sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TemplatesDir: getEnv("TEMPLATES_DIR", "web/templates"),
		StaticDir:    getEnv("STATIC_DIR", "web/static"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", ""),
		AdminEmail:   getEnv("ADMIN_EMAIL", ""),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
