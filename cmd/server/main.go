package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/config"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/report"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/repository/feedtable"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/repository/mongodb"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/scheduler"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/server/handlers"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/server/router"
	evaluationsvc "github.com/Gokul-61/BIS-Nutrition-Advisor/internal/service/evaluation"
	weatherclient "github.com/Gokul-61/BIS-Nutrition-Advisor/pkg/clients/weather"
	"github.com/Gokul-61/BIS-Nutrition-Advisor/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	feedSource, err := newFeedSource(cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init feed table source", zap.Error(err))
	}

	feedTable, err := feedtable.New(context.Background(), feedSource, baseLogger.Named("repo.feedtable"))
	if err != nil {
		baseLogger.Fatal("failed to load feed table", zap.Error(err))
	}

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	renderer, err := report.NewRenderer()
	if err != nil {
		baseLogger.Fatal("failed to init report renderer", zap.Error(err))
	}

	// Ambient temperature lookup is optional; without farm coordinates the
	// request value (or the neutral default) is used instead.
	var weather weatherclient.Client
	if cfg.Weather.Enabled {
		weather = weatherclient.NewClient(cfg.Weather)
		baseLogger.Info("weather client enabled",
			zap.Float64("latitude", cfg.Weather.Latitude),
			zap.Float64("longitude", cfg.Weather.Longitude))
	} else {
		baseLogger.Warn("farm coordinates missing, ambient temperature lookup disabled")
	}

	evalSvc := evaluationsvc.NewService(feedTable, baseLogger.Named("svc.evaluation"))
	evalHandler := handlers.NewEvaluationHandler(evalSvc, feedTable, mongoRepo, renderer, weather, cfg.Weather, baseLogger.Named("handlers.evaluation"))
	engine := router.New(evalHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.FeedTable.RefreshCron, feedTable, baseLogger.Named("scheduler"))
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

func newFeedSource(cfg *config.Config, baseLogger *zap.Logger) (feedtable.Source, error) {
	switch cfg.FeedTable.Source {
	case config.FeedSourceCSV:
		return feedtable.NewCSVSource(cfg.FeedTable.CSVPath), nil
	default:
		return feedtable.NewGoogleSheetSource(context.Background(), cfg.FeedTable, baseLogger.Named("repo.sheets"))
	}
}
