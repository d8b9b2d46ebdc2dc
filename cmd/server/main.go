package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/caredirectory/go-admin-auth/internal/config"
	"github.com/caredirectory/go-admin-auth/internal/metrics"
	"github.com/caredirectory/go-admin-auth/ratelimit"
	"github.com/caredirectory/go-admin-auth/server"
	"github.com/caredirectory/go-admin-auth/sessions"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()
	c := config.New()
	configureLogging(c.GetEnv())
	displayAppname(c.GetAppName())

	if c.GetAdminKey() == "" && c.GetAdminKeyHash() == "" {
		log.Error().Msg("no ADMIN_KEY or ADMIN_KEY_HASH configured; key authentication will fail closed")
	}

	m := metrics.New()
	store := sessions.NewStore(
		sessions.WithTTL(c.GetSessionTTL()),
		sessions.WithSweepInterval(c.GetSweepInterval()),
		sessions.WithSweepHook(func(removed int) {
			m.SessionsSwept.Add(float64(removed))
			if removed > 0 {
				log.Info().Int("removed", removed).Msg("swept expired sessions")
			}
		}),
	)
	defer store.Close()

	limiter := ratelimit.NewLimiter(
		ratelimit.WithMaxAttempts(c.GetMaxFailedAttempts()),
		ratelimit.WithLockoutWindow(c.GetLockoutWindow()),
	)

	srv, err := server.New(c, store, limiter, m)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

func configureLogging(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
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
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
