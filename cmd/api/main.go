package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/futsal-booking/api/internal/auth"
	"github.com/octobees/futsal-booking/api/internal/config"
	"github.com/octobees/futsal-booking/api/internal/database"
	"github.com/octobees/futsal-booking/api/internal/handler"
	middlewarepkg "github.com/octobees/futsal-booking/api/internal/middleware"
	"github.com/octobees/futsal-booking/api/internal/repository"
	"github.com/octobees/futsal-booking/api/internal/router"
	"github.com/octobees/futsal-booking/api/internal/service"
	"github.com/octobees/futsal-booking/api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	store, err := storage.NewS3Store(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to init object storage: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	usersRepo := repository.NewPGXUsersRepository(pool)
	listingsRepo := repository.NewPGXListingsRepository(pool)
	searchRepo := repository.NewPGXSearchRepository(pool)

	authService := service.NewAuthService(usersRepo, jwtManager)
	mediaService := service.NewMediaService(store)
	listingService := service.NewListingService(listingsRepo, mediaService, cfg.FutsalCategoryID, cfg.PhoneRegion)
	searchService := service.NewSearchService(searchRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
	}))

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Listings: handler.NewListingsHandler(listingService),
		Search:   handler.NewSearchHandler(searchService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
