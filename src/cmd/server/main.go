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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/api-sage/mini-ledger/src/internal/adapter/http/controller"
	"github.com/api-sage/mini-ledger/src/internal/adapter/http/router"
	"github.com/api-sage/mini-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/mini-ledger/src/internal/config"
	"github.com/api-sage/mini-ledger/src/internal/logger"
	"github.com/api-sage/mini-ledger/src/internal/metrics"
	"github.com/api-sage/mini-ledger/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("server stopped with error", err, nil)
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	// The one account store of this process; every handler shares it.
	accountRepo := memory.NewAccountRepository()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ledgerMetrics := metrics.New(reg, accountRepo.Count)

	accountService := services.NewAccountService(accountRepo, cfg.MaxAmount, ledgerMetrics)
	accountController := controller.NewAccountController(accountService)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.New(accountController, router.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Metrics:        ledgerMetrics,
			Gatherer:       reg,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("ledger server starting", logger.Fields{
			"addr":      srv.Addr,
			"maxAmount": cfg.MaxAmount.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("ledger server shutting down", logger.Fields{
			"timeout": cfg.ShutdownTimeout.String(),
		})

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("ledger server stopped", logger.Fields{
		"accounts": accountRepo.Count(),
	})
	return nil
}
