package normalize

import (
	"sort"

	"stock_dashboard/internal/feature/stocks/domain/entity"
)

// Point はチャート系列の1点です。日付・終値・出来高の並行トリプルを構成します。
type Point struct {
	Date   string   `json:"date"`
	Close  *float64 `json:"close"`
	Volume *int64   `json:"volume"`
}

// TradeCodes はコレクション中の相異なるtrade_codeを初出順で返します。
// チャートで選択可能な系列の集合になります。
func TradeCodes(records []entity.StockRecord) []string {
	seen := make(map[string]struct{}, len(records))
	codes := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.TradeCode]; ok {
			continue
		}
		seen[r.TradeCode] = struct{}{}
		codes = append(codes, r.TradeCode)
	}
	return codes
}

// DefaultTradeCode は明示的な選択が無い場合の初期系列を返します。
// 最初の非空コードを採用し、見つからなければ空文字列です。
func DefaultTradeCode(records []entity.StockRecord) string {
	for _, r := range records {
		if r.TradeCode != "" {
			return r.TradeCode
		}
	}
	return ""
}

// Series は1つのtrade_codeに絞ったレコードを日付昇順の系列に変換します。
//
// 日付が解釈できないレコード同士の相対順は未定義（挿入順を維持）です。
// これはドキュメント化された制限であり、安定ソートで挿入順を保つことで
// 再現可能にしています。
func Series(records []entity.StockRecord, code string) []Point {
	filtered := make([]entity.StockRecord, 0, len(records))
	for _, r := range records {
		if r.TradeCode == code {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ti, okI := ParseDate(filtered[i].Date)
		tj, okJ := ParseDate(filtered[j].Date)
		if !okI || !okJ {
			return false
		}
		return ti.Before(tj)
	})

	points := make([]Point, 0, len(filtered))
	for _, r := range filtered {
		points = append(points, Point{
			Date:   Date(r.Date),
			Close:  r.Close,
			Volume: r.Volume,
		})
	}
	return points
}
