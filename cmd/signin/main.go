package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tinywasm/signin"
	_ "modernc.org/sqlite"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	log.SetPrefix("[SIGNIN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func run(ctx context.Context, cfg Config) error {
	db, err := sql.Open("sqlite", cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	states, err := signin.NewStateStore(signin.DBExecutor{DB: db}, cfg.StateTTL)
	if err != nil {
		return err
	}
	if err := states.PurgeExpired(); err != nil {
		log.Printf("purge expired states: %v", err)
	}

	var google signin.OAuthProvider
	if cfg.GoogleClientID != "" {
		google = &signin.GoogleProvider{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.RedirectURL(),
		}
	} else {
		log.Printf("SIGNIN_GOOGLE_CLIENT_ID not set, provider sign-in disabled")
	}

	app := newApp(cfg, states, google)
	srv := &http.Server{Addr: cfg.Addr, Handler: app.routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on http://%s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
