// Package api defines the JSON response shapes shared across handlers.
package api

// ErrorResponse is the uniform error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a confirmation body for operations that do not
// return a record, e.g. delete: {"message": "Row deleted"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// StockResponse is one stock record on the wire.
// Absent numeric fields encode as JSON null, never zero.
type StockResponse struct {
	ID        uint     `json:"id"`
	Date      string   `json:"date"`
	TradeCode string   `json:"trade_code"`
	Open      *float64 `json:"open"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	Close     *float64 `json:"close"`
	Volume    *int64   `json:"volume"`
}
