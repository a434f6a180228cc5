package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coradesk/corabot/internal/config"
	"github.com/coradesk/corabot/internal/logging"
	"github.com/coradesk/corabot/internal/server"
	"github.com/coradesk/corabot/internal/session"
	"github.com/coradesk/corabot/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		mainLog := logging.WithComponent("main")
		mainLog.Fatal().Err(err).Msg("config")
	}

	logging.Configure(logging.Config{Level: cfg.LogLevel})
	log := logging.WithComponent("main")

	db, err := store.NewBoltStore(cfg.DataDir + "/corabot.db")
	if err != nil {
		log.Fatal().Err(err).Msg("store")
	}
	defer db.Close()

	sessionMgr := session.NewManager(db)

	// Periodic expiry of idle sessions; their stored state goes with them.
	go func() {
		cleanupLog := logging.WithComponent("cleanup")
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := sessionMgr.Cleanup(cfg.SessionTTL); n > 0 {
				cleanupLog.Info().Int("expired", n).Msg("expired idle sessions")
			}
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(cfg, sessionMgr).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("shutdown")
	}
	log.Info().Msg("stopped")
}
