package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"stock_dashboard/internal/feature/stocks/adapters"
	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/platform/config"
	"stock_dashboard/internal/platform/db"
)

// 静的JSONドキュメントの中身をデータベースへ投入する。
// レコードはusecase経由で1件ずつ作成するため、必須フィールドの検証と
// 日付・数値の正規化がAPI経路と同じルールで適用される。
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	gdb, err := db.OpenDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	src := adapters.NewStaticStore(cfg.App.StaticDataPath)
	uc := usecase.NewStocksUsecase(adapters.NewStockRepository(gdb))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	records, err := src.FindAll(ctx)
	if err != nil {
		logger.Fatal("failed to read static data", zap.String("path", cfg.App.StaticDataPath), zap.Error(err))
	}

	var inserted, skipped int
	for _, rec := range records {
		rec.ID = 0
		if _, err := uc.Create(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				// 欠損行はスキップして続行
				skipped++
				continue
			}
			logger.Fatal("insert failed", zap.Error(err))
		}
		inserted++
	}

	logger.Info("seed ok", zap.Int("inserted", inserted), zap.Int("skipped", skipped))
}
