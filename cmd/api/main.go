package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"printcart-api/internal/config"
	"printcart-api/internal/db"
	"printcart-api/internal/httpserver"
	"printcart-api/internal/logging"
	"printcart-api/internal/mailer"
	cartrepo "printcart-api/internal/repository/cart"
	quoterepo "printcart-api/internal/repository/quote"
	cartsvc "printcart-api/internal/service/cart"
	quotesvc "printcart-api/internal/service/quote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("api", "info")
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logging.New("api", cfg.LogLevel)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	cartRepo := cartrepo.NewPostgres(dbpool)
	cartService := cartsvc.New(cartRepo)

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	quoteRepo := quoterepo.NewPostgres(dbpool)
	quoteService := quotesvc.New(quoteRepo, mail, cfg.SMTP.QuoteRecipient, log)

	srv := httpserver.New(cfg.HTTPAddr, log, dbpool, httpserver.Deps{
		CartSvc:  cartService,
		QuoteSvc: quoteService,
	}, cfg.CORSOrigins)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		log.Info().Msg("server stopped")
	}
}
