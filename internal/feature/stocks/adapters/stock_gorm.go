// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// stockGorm はStockRepositoryインターフェースのリレーショナルDB実装です。
// GORMを使用してデータベース操作を行います。
type stockGorm struct {
	db *gorm.DB
}

// stockGormがStockRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository は指定されたgorm.DB接続でstockGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。接続のライフサイクルは呼び出し側が管理します。
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// StockModel は stocks テーブルの1行です。
// Date はカノニカル形式 YYYY-MM-DD の文字列で保持するため、
// 辞書順ソートが時系列順ソートと一致します。
type StockModel struct {
	ID        uint   `gorm:"primaryKey"`
	Date      string `gorm:"size:10;not null;index:idx_stocks_date"`
	TradeCode string `gorm:"size:64;not null;index:idx_stocks_trade_code"`

	Open   *float64
	High   *float64
	Low    *float64
	Close  *float64
	Volume *int64
}

func (StockModel) TableName() string {
	return "stocks"
}

func toModel(e entity.StockRecord) StockModel {
	return StockModel{
		ID:        e.ID,
		Date:      e.Date,
		TradeCode: e.TradeCode,
		Open:      e.Open,
		High:      e.High,
		Low:       e.Low,
		Close:     e.Close,
		Volume:    e.Volume,
	}
}

func toEntity(m StockModel) entity.StockRecord {
	return entity.StockRecord{
		ID:        m.ID,
		Date:      m.Date,
		TradeCode: m.TradeCode,
		Open:      m.Open,
		High:      m.High,
		Low:       m.Low,
		Close:     m.Close,
		Volume:    m.Volume,
	}
}

// storageErr はストレージレイヤーの失敗をドメインエラーに写します。
// 生のgorm/ドライバエラーをこのパッケージの外に漏らしません。
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

// FindAll は全レコードをdate昇順・id昇順で取得します。
func (r *stockGorm) FindAll(ctx context.Context) ([]entity.StockRecord, error) {
	var rows []StockModel
	if err := r.db.WithContext(ctx).
		Order("date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, storageErr(err)
	}

	out := make([]entity.StockRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// Insert はレコードを追加し、採番されたidを含む保存結果を返します。
func (r *stockGorm) Insert(ctx context.Context, rec entity.StockRecord) (entity.StockRecord, error) {
	m := toModel(rec)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entity.StockRecord{}, storageErr(err)
	}
	return toEntity(m), nil
}

// Replace は指定idの行の全データフィールドを置き換えます。
// 行が存在しない場合は domain.ErrNotFound を返します。
// 1行書き込みの原子性はデータベース自体に委ねます。
func (r *stockGorm) Replace(ctx context.Context, id uint, rec entity.StockRecord) (entity.StockRecord, error) {
	var m StockModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.StockRecord{}, domain.ErrNotFound
		}
		return entity.StockRecord{}, storageErr(err)
	}

	m.Date = rec.Date
	m.TradeCode = rec.TradeCode
	m.Open = rec.Open
	m.High = rec.High
	m.Low = rec.Low
	m.Close = rec.Close
	m.Volume = rec.Volume

	// Save はポインタフィールドのnilも含めて全カラムを書き戻すため、
	// 「丸ごと置換・部分更新なし」の契約をそのまま満たします。
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return entity.StockRecord{}, storageErr(err)
	}
	return toEntity(m), nil
}

// DeleteByID は指定idの行を削除します。
// 無条件DELETEと同じ寛容な挙動: 該当行が無くても成功扱いです。
func (r *stockGorm) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&StockModel{}, id).Error; err != nil {
		return storageErr(err)
	}
	return nil
}
