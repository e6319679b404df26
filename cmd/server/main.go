package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/drunkirk/drunkirk-go/internal/api"
	"github.com/drunkirk/drunkirk-go/internal/engine"
	"github.com/drunkirk/drunkirk-go/internal/session"
	"github.com/drunkirk/drunkirk-go/internal/store"
)

type config struct {
	Addr     string `env:"DRUNKIRK_ADDR" envDefault:":8080"`
	DBPath   string `env:"DRUNKIRK_DB" envDefault:"drunkirk.db"`
	LogLevel string `env:"DRUNKIRK_LOG_LEVEL" envDefault:"info"`
}

func main() {
	log := logrus.New()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.WithError(err).Fatal("parsing config")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	st, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("opening store")
	}

	sess := session.New(st, engine.NewRand(), log)
	sess.Hydrate()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewServer(sess, log).Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", cfg.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("shutdown incomplete")
	}
	if err := sess.Close(); err != nil {
		log.WithError(err).Warn("closing session")
	}
}
