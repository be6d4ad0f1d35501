package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/config"
	"github.com/stemsi/heritage-admin/internal/database"
	"github.com/stemsi/heritage-admin/internal/handler"
	"github.com/stemsi/heritage-admin/internal/logger"
	"github.com/stemsi/heritage-admin/internal/repository"
	"github.com/stemsi/heritage-admin/internal/router"
	"github.com/stemsi/heritage-admin/internal/service"
	"github.com/stemsi/heritage-admin/internal/validator"
	"github.com/stemsi/heritage-admin/internal/view"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("locale", cfg.Locale).
		Msg("Starting heritage admin")

	// ─── Initialize Validator and Views ────────────────────────────────
	validator.Setup(cfg.Locale)

	lang := view.NewLang(cfg.Locale)
	renderer, err := view.NewRenderer(lang)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	subDistrictRepo := repository.NewSubDistrictRepository(pool)
	heritageRepo := repository.NewCulturalHeritageRepository(pool)
	studioRepo := repository.NewArtStudioRepository(pool)
	sessionRepo := repository.NewSessionRepository(rdb)
	flashRepo := repository.NewFlashRepository(rdb, cfg.FlashTTL)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, userRepo, sessionRepo)
	flashService := service.NewFlashService(flashRepo, log)
	subDistrictService := service.NewSubDistrictService(subDistrictRepo, log)
	heritageService := service.NewCulturalHeritageService(heritageRepo, subDistrictRepo, cfg.PerPage, log)
	studioService := service.NewArtStudioService(studioRepo, cfg.PerPage, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	pages := handler.NewPages(lang, flashService, log)
	handlers := &router.Handlers{
		Pages:             pages,
		Auth:              handler.NewAuthHandler(cfg, pages, authService),
		CulturalHeritages: handler.NewCulturalHeritageHandler(pages, heritageService, subDistrictService),
		ArtStudios:        handler.NewArtStudioHandler(pages, studioService),
		SubDistricts:      handler.NewSubDistrictHandler(pages, subDistrictService),
		API:               handler.NewAPIHandler(heritageService, subDistrictService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(ctx, authService, renderer, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
