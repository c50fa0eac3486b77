package db

import (
	"fmt"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_dashboard/internal/feature/stocks/adapters"
	"stock_dashboard/internal/platform/config"
)

// BuildDSN は設定からドライバ用のDSN文字列を生成します。
// sqliteはDSNを持たないため、Nameをそのままファイルパスとして返します。
func BuildDSN(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case "mysql", "":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name), nil
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port), nil
	case "sqlite":
		return cfg.Name, nil
	default:
		return "", fmt.Errorf("unsupported db driver: %s", cfg.Driver)
	}
}

func dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	dsn, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}
	switch cfg.Driver {
	case "postgres":
		return gpostgres.Open(dsn), nil
	case "sqlite":
		return gsqlite.Open(dsn), nil
	default:
		return gmysql.Open(dsn), nil
	}
}

// Opener は1回の接続試行です。テストで差し替えられるように分離しています。
type Opener func(dial gorm.Dialector) (*gorm.DB, error)

func gormOpen(dial gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dial, &gorm.Config{})
}

// ConnectWithRetry はタイムアウトまで3秒間隔で接続を試行します。
// コンテナ起動直後はDBが追い付いていないことがあるためのリトライです。
func ConnectWithRetry(dial gorm.Dialector, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dial)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は設定に従ってデータベース接続を開きます。
// 接続のクローズは呼び出し側（プロセス終了時）の責務です。
func OpenDB(cfg config.DBConfig) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(dial, 60*time.Second, gormOpen)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		// マイグレーション（stocksテーブル）
		if err := db.AutoMigrate(&adapters.StockModel{}); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
