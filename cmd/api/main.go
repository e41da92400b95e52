package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/memory"
	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/funding"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/infra/sso"
	mw "server/internal/middleware"
	"server/internal/money"
	"server/internal/payment"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	var (
		campaigns  domain.CampaignRepository
		ledger     domain.DonationLedger
		categories domain.CategoryRepository
		users      domain.UserRepository
		analytics  domain.AnalyticsRepository
	)

	if cfg.DemoMode {
		store := memory.NewStore()
		if err := memory.SeedDemo(ctx, store); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo store")
		}
		campaigns = store.Campaigns
		ledger = store.Ledger
		categories = store.Categories
		users = store.Users
		analytics = store.Analytics
		logger.Info().Msg("demo mode: serving from in-memory store")
	} else {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		runner := infra.NewSQLRunner(pool, logger)
		campaigns = repo.NewCampaignRepository(runner)
		ledger = repo.NewDonationLedger(runner)
		categories = repo.NewCategoryRepository(runner)
		users = repo.NewUserRepository(runner)
		analytics = repo.NewAnalyticsRepository(runner)
	}

	aggregator := funding.NewAggregator(ledger)
	validator := funding.NewValidator(categories, campaigns, funding.Limits{
		MinGoal:     money.Amount(cfg.MinGoalMinor),
		MinDonation: money.Amount(cfg.MinDonationMinor),
	})

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var lookup mw.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
	}

	app := &handlers.App{
		Logger:             logger,
		Campaigns:          campaigns,
		Ledger:             ledger,
		Categories:         categories,
		Users:              users,
		Analytics:          analytics,
		Engine:             funding.NewEngine(campaigns, aggregator),
		Aggregator:         aggregator,
		Validator:          validator,
		Gateway:            payment.StubGateway{},
		Verifier:           sso.NewVerifier(cfg.SSOIssuer, cfg.SSOClientID, cfg.SSOJWKSURL),
		JWTSecret:          cfg.JWTSecret,
		AllowedEmailDomain: cfg.AllowedEmailDomain,
	}

	router := httpapi.NewRouter(app, cfg, logger, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
