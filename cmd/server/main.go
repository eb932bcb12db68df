package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/config"
	"github.com/krishimitra/server/internal/repository/kv"
	"github.com/krishimitra/server/internal/repository/sheets"
	"github.com/krishimitra/server/internal/scheduler"
	"github.com/krishimitra/server/internal/server/handlers"
	"github.com/krishimitra/server/internal/server/router"
	advisorysvc "github.com/krishimitra/server/internal/service/advisory"
	farmersvc "github.com/krishimitra/server/internal/service/farmer"
	financesvc "github.com/krishimitra/server/internal/service/finance"
	marketsvc "github.com/krishimitra/server/internal/service/market"
	profitsvc "github.com/krishimitra/server/internal/service/profit"
	weatherclient "github.com/krishimitra/server/pkg/clients/weather"
	"github.com/krishimitra/server/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := newStore(cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init key-value store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close store", zap.Error(err))
		}
	}()

	// Optional ledger spreadsheet export.
	var exporter sheets.Exporter
	if cfg.Sheets.SpreadsheetID != "" {
		sheetExporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		exporter = sheetExporter
		baseLogger.Info("ledger spreadsheet export enabled")
	}

	// Optional upstream weather provider.
	var weather weatherclient.Client
	if cfg.Weather.BaseURL != "" {
		weather = weatherclient.NewClient(cfg.Weather)
		baseLogger.Info("upstream weather provider enabled")
	}

	financeSvc := financesvc.NewService(store, exporter, baseLogger.Named("svc.finance"))
	profitSvc := profitsvc.NewService(store, baseLogger.Named("svc.profit"))
	advisorySvc := advisorysvc.NewService(store, weather, nil, baseLogger.Named("svc.advisory"))
	farmerSvc := farmersvc.NewService(store, baseLogger.Named("svc.farmer"))
	marketSvc := marketsvc.NewService(store, baseLogger.Named("svc.market"))

	engine := router.New(router.Handlers{
		Finance:  handlers.NewFinanceHandler(financeSvc, baseLogger.Named("handlers.finance")),
		Profit:   handlers.NewProfitHandler(profitSvc, baseLogger.Named("handlers.profit")),
		Advisory: handlers.NewAdvisoryHandler(advisorySvc, baseLogger.Named("handlers.advisory")),
		Farmer:   handlers.NewFarmerHandler(farmerSvc, baseLogger.Named("handlers.farmer")),
		Market:   handlers.NewMarketHandler(marketSvc, baseLogger.Named("handlers.market")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Retention, store, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newStore(cfg *config.Config, baseLogger *zap.Logger) (kv.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch cfg.KV.Backend {
	case config.BackendRedis:
		baseLogger.Info("using redis key-value store", zap.String("addr", cfg.KV.RedisAddr))
		return kv.NewRedisStore(ctx, cfg.KV.RedisAddr)
	case config.BackendMongo:
		baseLogger.Info("using mongodb key-value store", zap.String("db", cfg.KV.MongoDBName))
		return kv.NewMongoStore(ctx, cfg.KV.MongoURI, cfg.KV.MongoDBName)
	default:
		baseLogger.Warn("using in-memory key-value store, data will not survive restarts")
		return kv.NewMemoryStore(), nil
	}
}
