// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/transport/http/dto"
)

// StocksUsecase は株価レコード操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StocksUsecase interface {
	List(ctx context.Context) ([]entity.StockRecord, error)
	Create(ctx context.Context, rec entity.StockRecord) (entity.StockRecord, error)
	Update(ctx context.Context, id uint, rec entity.StockRecord) (entity.StockRecord, error)
	Delete(ctx context.Context, id uint) error
}

// StockHandler は株価レコードのHTTPリクエストを処理します。
type StockHandler struct {
	uc StocksUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc StocksUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List は全レコードをdate昇順・id昇順のJSON配列で返します。
//
// GET /api/stocks
func (h *StockHandler) List(c *gin.Context) {
	records, err := h.uc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]api.StockResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// Create はレコードを追加し、採番されたidを含む保存結果を201で返します。
//
// POST /api/stocks
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	created, err := h.uc.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(created))
}

// Update は指定idの行の全フィールドを置き換え、更新後のレコードを返します。
//
// PUT /api/stocks/:id
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(updated))
}

// Delete は指定idの行を削除します。冪等であり、存在しないidでも成功します。
//
// DELETE /api/stocks/:id
func (h *StockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Row deleted"})
}

// parseID は:idパスパラメータを解釈します。数値でない場合は400を応答済みにします。
func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id: " + raw})
		return 0, false
	}
	return uint(id), true
}

// respondError はドメインエラーをHTTPステータスに写します。
// タクソノミー外のエラーはストレージ障害として500で応答します。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	}
}

func toResponse(r entity.StockRecord) api.StockResponse {
	return api.StockResponse{
		ID:        r.ID,
		Date:      r.Date,
		TradeCode: r.TradeCode,
		Open:      r.Open,
		High:      r.High,
		Low:       r.Low,
		Close:     r.Close,
		Volume:    r.Volume,
	}
}
