package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"stock_dashboard/internal/app/router"
	"stock_dashboard/internal/feature/stocks/adapters"
	stockhandler "stock_dashboard/internal/feature/stocks/transport/handler"
	"stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/platform/config"
	"stock_dashboard/internal/platform/db"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Repository
	// db.driver=static のときはDBなしで静的JSONドキュメントを読み取り専用で提供する
	var repo usecase.StockRepository
	if cfg.DB.Driver == "static" {
		repo = adapters.NewStaticStore(cfg.App.StaticDataPath)
		logger.Info("serving read-only static data", zap.String("path", cfg.App.StaticDataPath))
	} else {
		gdb, err := db.OpenDB(cfg.DB)
		if err != nil {
			logger.Fatal("failed to open database", zap.Error(err))
		}
		repo = adapters.NewStockRepository(gdb)
	}

	// Usecase
	stocksUC := usecase.NewStocksUsecase(repo)

	// Handler
	stocksH := stockhandler.NewStockHandler(stocksUC)

	// ルータ生成
	r := router.NewRouter(stocksH)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
