package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storehub/internal/config"
	"storehub/internal/infra"
	"storehub/internal/memstore"
	"storehub/internal/repository"
	"storehub/internal/router"
	"storehub/internal/session"
	"storehub/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := router.Deps{Cfg: cfg}

	switch cfg.StoreDriver {
	case "memory":
		// Self-contained demo mode: seeded in-process store, in-process
		// sessions, no Redis, no Postgres, no worker pool.
		store := memstore.New()
		if err := memstore.Seed(store); err != nil {
			log.Fatal().Err(err).Msg("failed to seed in-memory store")
		}
		deps.Sessions = session.NewMemory()
		deps.Branches = store.Branches()
		deps.Users = store.Users()
		deps.Products = store.Products()
		deps.Inventories = store.Inventories()
		deps.Customers = store.Customers()
		deps.Sales = store.Sales()
		log.Info().Msg("store driver: memory (seeded demo data)")

	case "postgres":
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		if err := infra.RunMigrations(db); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}

		deps.DB = db
		deps.RDB = rdb
		deps.Sessions = session.NewRedis(rdb)
		deps.Branches = repository.NewBranchRepository(db)
		deps.Users = repository.NewUserRepository(db)
		deps.Products = repository.NewProductRepository(db)
		deps.Inventories = repository.NewInventoryRepository(db)
		deps.Customers = repository.NewCustomerRepository(db)
		deps.Sales = repository.NewSaleRepository(db)
		deps.Dispatcher = worker.NewDispatcher(rdb)

		// Worker pool for async low-stock alert mail. Handlers are wired
		// here (composition root) with the SMTP mailer behind a circuit
		// breaker so a downed relay fails fast.
		mailer := infra.NewMailer(cfg)
		breaker := infra.NewCircuitBreaker(infra.DefaultCBConfig())
		handlers := map[string]worker.Handler{
			"low_stock_alert": worker.NewLowStockWorker(rdb, mailer, breaker, cfg.AlertEmail),
		}
		worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, handlers)
		log.Info().Msg("store driver: postgres")

	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("unknown STORE_DRIVER (want memory or postgres)")
	}

	r := router.New(deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("storehub backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
