package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/artevia/venue-gateway/auth"
	"github.com/artevia/venue-gateway/backend"
	"github.com/artevia/venue-gateway/internal/config"
	"github.com/artevia/venue-gateway/server"
	"github.com/artevia/venue-gateway/session"
	"github.com/artevia/venue-gateway/tenant"
	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running gateway")
	}
	log.Info().Msg("gateway stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "config.New")
	}

	logger := newLogger(cfg)
	displayAppName(cfg.GetAppName())

	store := session.NewStore(cfg.GetDataFolder(), logger)

	// The token source closes over authService, which is constructed after
	// the client; requests made before construction carry no token.
	var authService *auth.Service
	client, err := backend.NewClient(cfg.GetAPIBaseURL(), logger, backend.WithTokenSource(func() string {
		if authService == nil {
			return ""
		}
		return authService.Snapshot().Token
	}))
	if err != nil {
		return errors.Wrap(err, "backend.NewClient")
	}

	tenantService, err := tenant.NewService(client, logger)
	if err != nil {
		return errors.Wrap(err, "tenant.NewService")
	}

	authService, err = auth.NewService(store, client, logger,
		auth.WithDemoMode(cfg.GetDemoMode()),
		auth.WithTenantListener(func(tenantID string) {
			tenantService.SetTenantID(context.Background(), tenantID)
		}),
	)
	if err != nil {
		return errors.Wrap(err, "auth.NewService")
	}

	// A rehydrated session already names a tenant; resolve it before serving.
	if tenantID := authService.Snapshot().TenantID; tenantID != "" {
		tenantService.SetTenantID(context.Background(), tenantID)
	}

	srv, err := server.New(cfg, authService, tenantService, logger)
	if err != nil {
		return errors.Wrap(err, "server.New")
	}

	httpServer := &http.Server{Addr: cfg.GetPort(), Handler: srv}
	go listenAndServe(httpServer, logger)
	waitForStopSignal()
	return shutdown(httpServer)
}

func listenAndServe(httpServer *http.Server, logger zerolog.Logger) {
	logger.Info().Str("addr", httpServer.Addr).Msg("gateway listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}

func newLogger(cfg config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.GetEnv() == "DEV" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}

func displayAppName(appName string) {
	myFigure := figure.NewFigure(appName, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
