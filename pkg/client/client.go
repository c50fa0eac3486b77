// Package client is the Go data layer for the stock dashboard: an HTTP
// consumer of the record store API plus the view-model the dashboard
// renders from.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stock_dashboard/internal/feature/stocks/domain"
	platformhttp "stock_dashboard/internal/platform/http"
)

// ErrUnreachable wraps transport-level failures. It is retryable: the
// transport's own defaults govern timeouts, no extra policy is layered on.
var ErrUnreachable = errors.New("api unreachable")

// Stock is one record on the wire, as the API serves it.
// Absent numeric fields are JSON null.
type Stock struct {
	ID        uint     `json:"id,omitempty"`
	Date      string   `json:"date"`
	TradeCode string   `json:"trade_code"`
	Open      *float64 `json:"open"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	Close     *float64 `json:"close"`
	Volume    *int64   `json:"volume"`
}

// Client talks to the record store API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL. A nil httpClient
// falls back to a client with a conservative default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = platformhttp.NewHTTPClient(30 * time.Second)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ListStocks fetches the full record collection, sorted by date then id.
func (c *Client) ListStocks(ctx context.Context) ([]Stock, error) {
	var out []Stock
	if err := c.do(ctx, http.MethodGet, "/api/stocks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStock submits a new record and returns the stored record,
// including the server-assigned id.
func (c *Client) CreateStock(ctx context.Context, s Stock) (Stock, error) {
	var out Stock
	s.ID = 0
	if err := c.do(ctx, http.MethodPost, "/api/stocks", s, &out); err != nil {
		return Stock{}, err
	}
	return out, nil
}

// UpdateStock replaces the record with the given id wholesale and returns
// the post-update record.
func (c *Client) UpdateStock(ctx context.Context, id uint, s Stock) (Stock, error) {
	var out Stock
	s.ID = 0
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/stocks/%d", id), s, &out); err != nil {
		return Stock{}, err
	}
	return out, nil
}

// DeleteStock removes the record with the given id. Deleting an absent id
// succeeds; the operation is idempotent.
func (c *Client) DeleteStock(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/stocks/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnreachable, err)
	}
	return nil
}

// decodeError maps a non-2xx response onto the domain error taxonomy so
// callers can branch with errors.Is.
func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	default:
		return fmt.Errorf("%w: %s", domain.ErrStorageUnavailable, msg)
	}
}
