package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/normalize"
)

// StaticStore は既知のパスに置かれたJSONドキュメントを読み取り専用の
// レコードストアとして公開します。JSONバックエンドのフロントエンド変種が
// APIの代わりに参照する静的データコラボレータに相当します。
// 書き込み系の操作はすべて失敗します。
type StaticStore struct {
	path string
}

var _ usecase.StockRepository = (*StaticStore)(nil)

// NewStaticStore は指定されたJSONドキュメントパスでStaticStoreを生成します。
// ファイルは呼び出しごとに読み直されます。
func NewStaticStore(path string) *StaticStore {
	return &StaticStore{path: path}
}

// staticRecord はJSONドキュメント上の1レコードです。
// CSVエクスポート由来のドキュメントでは数値が文字列（"10.5"、"1,200"）で
// 現れるため、柔軟な数値型で受けます。
type staticRecord struct {
	ID        uint             `json:"id"`
	Date      string           `json:"date"`
	TradeCode string           `json:"trade_code"`
	Open      normalize.Price  `json:"open"`
	High      normalize.Price  `json:"high"`
	Low       normalize.Price  `json:"low"`
	Close     normalize.Price  `json:"close"`
	Volume    normalize.Volume `json:"volume"`
}

// FindAll はドキュメントを読み込み、正規化済みレコードをdate昇順・id昇順で返します。
// idを持たないレコードには出現位置から採番します。
func (s *StaticStore) FindAll(ctx context.Context) ([]entity.StockRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	var raw []staticRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	out := make([]entity.StockRecord, 0, len(raw))
	for i, r := range raw {
		id := r.ID
		if id == 0 {
			id = uint(i + 1)
		}
		out = append(out, entity.StockRecord{
			ID:        id,
			Date:      normalize.Date(r.Date),
			TradeCode: r.TradeCode,
			Open:      r.Open.Value,
			High:      r.High.Value,
			Low:       r.Low.Value,
			Close:     r.Close.Value,
			Volume:    r.Volume.Value,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Insert は読み取り専用ストアでは常に失敗します。
func (s *StaticStore) Insert(ctx context.Context, rec entity.StockRecord) (entity.StockRecord, error) {
	return entity.StockRecord{}, fmt.Errorf("%w: static store is read-only", domain.ErrStorageUnavailable)
}

// Replace は読み取り専用ストアでは常に失敗します。
func (s *StaticStore) Replace(ctx context.Context, id uint, rec entity.StockRecord) (entity.StockRecord, error) {
	return entity.StockRecord{}, fmt.Errorf("%w: static store is read-only", domain.ErrStorageUnavailable)
}

// DeleteByID は読み取り専用ストアでは常に失敗します。
func (s *StaticStore) DeleteByID(ctx context.Context, id uint) error {
	return fmt.Errorf("%w: static store is read-only", domain.ErrStorageUnavailable)
}
