package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shazzad098/career-ai-os/internal/ai"
	"github.com/shazzad098/career-ai-os/internal/config"
	"github.com/shazzad098/career-ai-os/internal/handlers"
	"github.com/shazzad098/career-ai-os/internal/storage"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}

	store, err := storage.New(db)
	if err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	gen := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	h := handlers.New(cfg, store, gen, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h.Router("web/templates/*.tmpl"),
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
