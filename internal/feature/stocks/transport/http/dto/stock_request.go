// Package dto はstocksフィーチャーのHTTPリクエストボディを定義します。
package dto

import (
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/normalize"
)

// StockRequest はレコードの作成・更新リクエストのボディです（idは含みません）。
// 数値フィールドはフォーム由来の型の揺れ（数値・数値文字列・カンマ入り
// 出来高・空文字列・null）を柔軟な数値型で受け、境界で明示的に解釈します。
// 型付けされていない文字列がSQLパラメータへ到達することはありません。
type StockRequest struct {
	Date      string           `json:"date"`
	TradeCode string           `json:"trade_code"`
	Open      normalize.Price  `json:"open"`
	High      normalize.Price  `json:"high"`
	Low       normalize.Price  `json:"low"`
	Close     normalize.Price  `json:"close"`
	Volume    normalize.Volume `json:"volume"`
}

// ToEntity はリクエストボディをドメインエンティティに変換します。
// 必須フィールドの検証はusecase側で行います。
func (r StockRequest) ToEntity() entity.StockRecord {
	return entity.StockRecord{
		Date:      r.Date,
		TradeCode: r.TradeCode,
		Open:      r.Open.Value,
		High:      r.High.Value,
		Low:       r.Low.Value,
		Close:     r.Close.Value,
		Volume:    r.Volume.Value,
	}
}
