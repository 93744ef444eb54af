package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BuyerMerchant_Go/internal/bootstrap"
	"github.com/osse101/BuyerMerchant_Go/internal/catalog"
	"github.com/osse101/BuyerMerchant_Go/internal/config"
	"github.com/osse101/BuyerMerchant_Go/internal/currency"
	"github.com/osse101/BuyerMerchant_Go/internal/pricelist"
	"github.com/osse101/BuyerMerchant_Go/internal/pricing"
	"github.com/osse101/BuyerMerchant_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

// @title Buyer Merchant API
// @version 1.0
// @description Buyers purchase items on behalf of their owners at prices set in a paged price list.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	catCfg, err := bootstrap.SyncCatalog(ctx, cfg.CatalogPath, repos.Templates)
	if err != nil {
		repos.Close()
		return err
	}
	cat := catalog.NewStored(repos.Templates, catCfg.Materials, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	coins, err := currency.NewConverter(currency.Ratios{
		IronPerCopper:   int64(cfg.IronPerCopper),
		CopperPerSilver: int64(cfg.CopperPerSilver),
		SilverPerGold:   int64(cfg.SilverPerGold),
	})
	if err != nil {
		repos.Close()
		return err
	}

	pricingService := pricing.NewService(repos.Buyers, repos.PriceLists, cat, coins, pricelist.Options{
		EntriesPerPage: cfg.EntriesPerPage,
		MaxPages:       cfg.MaxPages,
		QualityOrder:   pricelist.ParseQualityOrder(cfg.SortQuality),
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		JWTSecret:      cfg.JWTSecret,
		TrustedProxies: cfg.TrustedProxies,
		Stores:         repos.Readiness,
	}, pricingService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:       srv,
		Repositories: repos,
	})
	return startErr
}
