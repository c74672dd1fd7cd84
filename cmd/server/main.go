package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"agroadvisor/config"
	"agroadvisor/database"
	"agroadvisor/pkg/logging"
	"agroadvisor/pkg/market"
	"agroadvisor/pkg/model"
	"agroadvisor/router"

	// Crops
	cropCtrlImp "agroadvisor/pkg/crop/controllerImp"

	// Farmer advisor
	advCtrlImp "agroadvisor/pkg/advisor/controllerImp"
	advSvcImp "agroadvisor/pkg/advisor/serviceImp"

	// Market researcher
	mktCtrlImp "agroadvisor/pkg/market/controllerImp"
	mktSvcImp "agroadvisor/pkg/market/serviceImp"

	// Training runs
	runCtrlImp "agroadvisor/pkg/training/controllerImp"
	runRepoImp "agroadvisor/pkg/training/repositoryImp"
	runSvcImp "agroadvisor/pkg/training/serviceImp"

	// Dashboard + Health
	dashCtrlImp "agroadvisor/pkg/dashboard/controllerImp"
	healthCtrlImp "agroadvisor/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logging
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log := logging.With("server")
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Info().Interface("config", cfg).Msg("[cfg] loaded")

	// 2) DB (sqlite) + automigrate
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	schema, err := market.LoadSchema(cfg.MarketSchema)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.MarketSchema).Msg("market schema")
	}

	// 3) Models, trained lazily per dataset version
	runSvc := runSvcImp.NewTrainingService(runRepoImp.New(db))
	reg := model.NewRegistry(
		model.Source{Path: cfg.FarmerDataset, Options: options(model.FarmOptions(), cfg, cfg.FarmTrees)},
		model.Source{Path: cfg.MarketDataset, Options: options(model.MarketOptions(), cfg, cfg.MarketTrees)},
		runSvc,
	)

	// 4) Services/Controllers
	advSvc := advSvcImp.NewAdvisorService(reg)
	mktSvc := mktSvcImp.NewMarketService(reg, schema)

	e := echo.New()
	e.HideBanner = true
	router.New(
		e,
		cropCtrlImp.New(),
		advCtrlImp.New(advSvc),
		mktCtrlImp.New(mktSvc),
		runCtrlImp.New(runSvc),
		dashCtrlImp.New(advSvc, mktSvc),
		healthCtrlImp.NewHealthCtrl(db, map[string]string{
			"farm":   cfg.FarmerDataset,
			"market": cfg.MarketDataset,
		}),
	)

	// warm both models so the first request does not pay for training
	go func() {
		ctx := context.Background()
		if _, err := reg.Farm(ctx); err != nil {
			log.Warn().Err(err).Msg("farm model not ready")
		}
		if _, err := reg.Market(ctx); err != nil {
			log.Warn().Err(err).Msg("market model not ready")
		}
	}()

	// 5) Start
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func options(o model.Options, cfg config.AppConfig, trees int) model.Options {
	o.Params.Trees = trees
	o.Seed = cfg.SplitSeed
	o.TestFraction = cfg.TestFraction
	return o
}
