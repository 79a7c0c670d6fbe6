package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yash-u-12/grouping-l1-l2/internal/config"
	"github.com/yash-u-12/grouping-l1-l2/internal/db"
	"github.com/yash-u-12/grouping-l1-l2/internal/handler"
	"github.com/yash-u-12/grouping-l1-l2/internal/handler/server"
	"github.com/yash-u-12/grouping-l1-l2/internal/repository/postgres"
	"github.com/yash-u-12/grouping-l1-l2/internal/roster"
	"github.com/yash-u-12/grouping-l1-l2/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	database := db.MustLoad(cfg)
	logger.Info("connected to database")
	defer database.Close()

	if cfg.Migrate {
		if err := db.RunMigrations(context.Background(), database, "migrations"); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		logger.Info("migrations completed")
	}

	assignmentRepo := postgres.NewAssignmentRepository(database)
	rosterRepo := postgres.NewRosterRepository(database)
	statusRepo := postgres.NewStatusRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	rosters := roster.NewSource(cfg.Roster.InternCSV, cfg.Roster.TechLeadCSV)

	assignmentService := service.NewAssignmentService(
		assignmentRepo, rosterRepo, statusRepo,
		rosters, cfg.Seed, cfg.Roster.ExportDir, logger,
	)
	statusService := service.NewStatusService(statusRepo, rosterRepo)
	statsService := service.NewStatsService(statsRepo)

	// First compute happens at startup so lookups are served immediately;
	// an existing snapshot makes this a no-op read.
	if _, err := assignmentService.GetOrCompute(context.Background()); err != nil {
		logger.Warn("initial assignment compute failed", zap.Error(err))
	}

	h := handler.NewHandler(assignmentService, statusService, statsService)
	srv := server.NewServer(h, cfg.HTTPAddr, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
}
