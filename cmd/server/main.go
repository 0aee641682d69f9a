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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bewise-id/admin-web/internal/api"
	"github.com/bewise-id/admin-web/internal/cache"
	"github.com/bewise-id/admin-web/internal/config"
	"github.com/bewise-id/admin-web/internal/handlers"
	"github.com/bewise-id/admin-web/internal/logging"
	authmw "github.com/bewise-id/admin-web/internal/middleware/auth"
	"github.com/bewise-id/admin-web/internal/middleware/csrf"
	"github.com/bewise-id/admin-web/internal/session"
	httpserver "github.com/bewise-id/admin-web/internal/transport/http"
	loggingmw "github.com/bewise-id/admin-web/pkg/middleware/logging"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	renderer, err := handlers.NewRenderer("web/templates")
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	apiClient := api.NewClient(configuration.API_BASE_URL, logger)
	sessions := session.Store{}
	pages := cache.NewPages()

	e := echo.New()
	e.Renderer = renderer
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger), csrf.Middleware(csrf.DefaultConfig()))

	deps := httpserver.Deps{
		Pages:     &handlers.PageHandler{},
		Login:     &handlers.LoginHandler{API: apiClient, Sessions: sessions, Logger: logger},
		Dashboard: &handlers.DashboardHandler{API: apiClient, Sessions: sessions, Cache: pages, Logger: logger},
		Database:  &handlers.DatabaseHandler{API: apiClient, Sessions: sessions, Cache: pages, Logger: logger, Limit: 20},
		Guard:     &authmw.Guard{Sessions: sessions, LoginPath: "/loginadmin"},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.LISTEN_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}

	logger.Info("shutdown complete")
}
