// Package usecase は株価レコード操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/normalize"
)

// StockRepository は株価レコードの永続化レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type StockRepository interface {
	// FindAll は全レコードをdate昇順・id昇順で返します。
	FindAll(ctx context.Context) ([]entity.StockRecord, error)
	// Insert はレコードを永続化し、採番されたidを含む保存結果を返します。
	Insert(ctx context.Context, rec entity.StockRecord) (entity.StockRecord, error)
	// Replace は指定idの行の全データフィールドを置き換えます。
	// 該当行が無い場合は domain.ErrNotFound を返します。
	Replace(ctx context.Context, id uint, rec entity.StockRecord) (entity.StockRecord, error)
	// DeleteByID は指定idの行を削除します。該当行が無くてもエラーにしません。
	DeleteByID(ctx context.Context, id uint) error
}

// requiredFields はCreate/Updateの必須入力です。
// date と trade_code 以外のフィールドはすべて任意（null可）です。
type requiredFields struct {
	Date      string `validate:"required"`
	TradeCode string `validate:"required"`
}

// StocksUsecase は株価レコードのCRUD操作のユースケースを定義します。
type StocksUsecase struct {
	repo     StockRepository
	validate *validator.Validate
}

// NewStocksUsecase はStocksUsecaseの新しいインスタンスを生成します。
func NewStocksUsecase(repo StockRepository) *StocksUsecase {
	return &StocksUsecase{
		repo:     repo,
		validate: validator.New(),
	}
}

// List は全レコードをdate昇順・id昇順で取得します。
// ページネーション・フィルタリングは行いません。クライアントの
// ソート/グルーピングがこの順序に暗黙に依存しているため契約の一部です。
func (u *StocksUsecase) List(ctx context.Context) ([]entity.StockRecord, error) {
	return u.repo.FindAll(ctx)
}

// Create はレコードを検証・正規化して永続化します。
// date と trade_code が空の場合は domain.ErrValidation を返します。
// 成功時は採番されたidを含む、実際に保存された内容を返します。
func (u *StocksUsecase) Create(ctx context.Context, rec entity.StockRecord) (entity.StockRecord, error) {
	if err := u.checkRequired(rec); err != nil {
		return entity.StockRecord{}, err
	}
	rec.ID = 0 // idはストアが採番する
	rec.Date = normalize.Date(rec.Date)
	return u.repo.Insert(ctx, rec)
}

// Update は指定idの行の全フィールドを丸ごと置き換えます。
// 部分更新はサポートしません。行が存在しない場合は domain.ErrNotFound です
// （ゼロ行更新を黙って成功扱いにはしません）。
func (u *StocksUsecase) Update(ctx context.Context, id uint, rec entity.StockRecord) (entity.StockRecord, error) {
	if err := u.checkRequired(rec); err != nil {
		return entity.StockRecord{}, err
	}
	rec.Date = normalize.Date(rec.Date)
	return u.repo.Replace(ctx, id, rec)
}

// Delete は指定idの行を削除します。冪等です: 存在しないidの削除も
// 無条件DELETE文の寛容な挙動に合わせて成功として扱います。
func (u *StocksUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.DeleteByID(ctx, id)
}

func (u *StocksUsecase) checkRequired(rec entity.StockRecord) error {
	in := requiredFields{Date: rec.Date, TradeCode: rec.TradeCode}
	if err := u.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: date and trade_code are required", domain.ErrValidation)
	}
	return nil
}
