package client

import (
	"context"
	"errors"

	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/normalize"
)

// State is the display state of the dashboard. The view always resolves
// to exactly one of the four.
type State int

const (
	StateLoading State = iota
	StateError
	StateEmpty
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	default:
		return "populated"
	}
}

// ErrBusy is returned when a write is attempted while another round trip
// is still in flight. The dashboard issues requests strictly sequentially.
var ErrBusy = errors.New("operation already in progress")

// Dashboard holds a snapshot of the record collection and drives the
// list/chart views over it. The snapshot is the dashboard's own copy; it
// goes stale after a concurrent mutation by another client (last-write-wins,
// there is no versioning). Not safe for concurrent use.
type Dashboard struct {
	api *Client

	rows     []Stock
	state    State
	status   string
	selected string
	busy     bool
}

// NewDashboard creates a dashboard over the given API client, starting in
// the loading state.
func NewDashboard(api *Client) *Dashboard {
	return &Dashboard{api: api, state: StateLoading}
}

// Load fetches the full collection and normalizes every date best-effort.
// On failure the previous rows are left intact and the state becomes
// StateError with a status message; the view is never cleared by a failed
// fetch.
func (d *Dashboard) Load(ctx context.Context) error {
	d.state = StateLoading
	d.status = ""

	rows, err := d.api.ListStocks(ctx)
	if err != nil {
		d.state = StateError
		d.status = "Failed to load data"
		return err
	}

	for i := range rows {
		rows[i].Date = normalize.Date(rows[i].Date)
	}
	d.rows = rows
	d.resolveState()
	return nil
}

// Save creates the record when it has no id, otherwise replaces the record
// with that id wholesale. The stored result is merged into the local
// snapshot, so the view reflects exactly what the store persisted.
func (d *Dashboard) Save(ctx context.Context, s Stock) (Stock, error) {
	if d.busy {
		return Stock{}, ErrBusy
	}
	d.busy = true
	defer func() { d.busy = false }()

	var (
		stored Stock
		err    error
	)
	if s.ID == 0 {
		stored, err = d.api.CreateStock(ctx, s)
	} else {
		stored, err = d.api.UpdateStock(ctx, s.ID, s)
	}
	if err != nil {
		d.status = "Failed to save row"
		return Stock{}, err
	}

	stored.Date = normalize.Date(stored.Date)
	merged := false
	for i := range d.rows {
		if d.rows[i].ID == stored.ID {
			d.rows[i] = stored
			merged = true
			break
		}
	}
	if !merged {
		d.rows = append(d.rows, stored)
	}
	d.resolveState()
	return stored, nil
}

// Remove deletes the record and splices it out of the local snapshot.
// Deleting an id that is already gone still succeeds.
func (d *Dashboard) Remove(ctx context.Context, id uint) error {
	if d.busy {
		return ErrBusy
	}
	d.busy = true
	defer func() { d.busy = false }()

	if err := d.api.DeleteStock(ctx, id); err != nil {
		d.status = "Failed to delete row"
		return err
	}

	kept := d.rows[:0]
	for _, r := range d.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	d.rows = kept
	d.resolveState()
	return nil
}

// Rows returns the current snapshot in store order.
func (d *Dashboard) Rows() []Stock { return d.rows }

// State returns the current display state.
func (d *Dashboard) State() State { return d.state }

// StatusMessage returns the message to render alongside an error state.
func (d *Dashboard) StatusMessage() string { return d.status }

// TradeCodes returns the selectable chart series, distinct codes in
// first-appearance order.
func (d *Dashboard) TradeCodes() []string {
	return normalize.TradeCodes(d.entities())
}

// SelectCode pins the chart to one trade code.
func (d *Dashboard) SelectCode(code string) { d.selected = code }

// SelectedCode returns the pinned code, defaulting to the first non-empty
// code in the snapshot when nothing was selected yet.
func (d *Dashboard) SelectedCode() string {
	if d.selected != "" {
		return d.selected
	}
	return normalize.DefaultTradeCode(d.entities())
}

// Series builds the (date, close, volume) chart series for the selected
// trade code, sorted by date ascending.
func (d *Dashboard) Series() []normalize.Point {
	return normalize.Series(d.entities(), d.SelectedCode())
}

func (d *Dashboard) resolveState() {
	if len(d.rows) == 0 {
		d.state = StateEmpty
	} else {
		d.state = StatePopulated
	}
}

func (d *Dashboard) entities() []entity.StockRecord {
	out := make([]entity.StockRecord, 0, len(d.rows))
	for _, r := range d.rows {
		out = append(out, entity.StockRecord{
			ID:        r.ID,
			Date:      r.Date,
			TradeCode: r.TradeCode,
			Open:      r.Open,
			High:      r.High,
			Low:       r.Low,
			Close:     r.Close,
			Volume:    r.Volume,
		})
	}
	return out
}
