// Package entity defines the domain model for the stocks feature.
package entity

// StockRecord is one row of date-stamped price/volume data for a trade code.
// Price fields and Volume are pointers so that "no value" stays distinct from
// the literal zero, which is a valid recorded value.
type StockRecord struct {
	ID        uint     // Server-assigned identifier, immutable once created
	Date      string   // Canonical form is YYYY-MM-DD
	TradeCode string   // Opaque instrument identifier (e.g., "ACI", "GP")
	Open      *float64 // Opening price, nil when not recorded
	High      *float64 // Highest price, nil when not recorded
	Low       *float64 // Lowest price, nil when not recorded
	Close     *float64 // Closing price, nil when not recorded
	Volume    *int64   // Traded volume, nil when not recorded
}
