package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/Sreejan-22/Memes4u/internal/auth"
	"github.com/Sreejan-22/Memes4u/internal/config"
	"github.com/Sreejan-22/Memes4u/internal/handler"
	"github.com/Sreejan-22/Memes4u/internal/httpmetrics"
	"github.com/Sreejan-22/Memes4u/internal/render"
	"github.com/Sreejan-22/Memes4u/internal/repository"
	"github.com/Sreejan-22/Memes4u/internal/service"
	"github.com/Sreejan-22/Memes4u/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatalf("Failed to ensure schema: %v", err)
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, tokens, sender, logger)

	renderer, err := render.New(cfg.TemplatesDir)
	if err != nil {
		logger.Fatalf("Failed to load templates: %v", err)
	}
	h := handler.NewHandler(svc, renderer, cfg.StaticDir, cfg.BaseURL, logger)

	// Setup router with request metrics
	router := h.Router()
	router.Use(httpmetrics.New().Wrap)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
