package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashendes/storefront-demo/internal/api"
	"github.com/ashendes/storefront-demo/internal/catalog"
	"github.com/ashendes/storefront-demo/internal/config"
	"github.com/ashendes/storefront-demo/internal/patterns"
	"github.com/ashendes/storefront-demo/internal/session"
	"github.com/ashendes/storefront-demo/internal/support"
	"github.com/ashendes/storefront-demo/internal/validation"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const serviceName = "storefront-service"

func init() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	config.LoadDotEnv(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	log.SetLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	table, err := cfg.PricingTable()
	if err != nil {
		log.Fatal("Failed to load pricing table: ", err)
	}

	v := validation.New()
	sessions := session.NewStore(session.Options{
		TTL:             cfg.SessionTTL,
		SeedCart:        cfg.SeedCart,
		Table:           table,
		Validator:       v,
		ProcessingDelay: cfg.PaymentDelay,
		SearchDebounce:  cfg.SearchDebounce,
		Bulkhead:        patterns.NewBulkhead(cfg.SubmitConcurrency, "payment", serviceName),
	})

	h := api.New(api.Options{
		Catalog:   catalog.NewSeeded(),
		Sessions:  sessions,
		Table:     table,
		Desk:      support.NewDesk(v, cfg.ContactDelay),
		Validator: v,
		BasePath:  cfg.BasePath,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(h, serviceName),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	janitorDone := make(chan struct{})
	go func() {
		sessions.Run(ctx, cfg.SweepInterval)
		close(janitorDone)
	}()

	go func() {
		log.WithFields(log.Fields{
			"port":      cfg.Port,
			"env":       cfg.Env,
			"base_path": cfg.BasePath,
			"seed_cart": cfg.SeedCart,
		}).Info("Storefront Service starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := patterns.WithTimeout(context.Background(), patterns.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	<-janitorDone

	log.Info("Storefront Service stopped")
}
