package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"backend/models"
)

// Client talks to the third-party commerce service the dashboard syncs
// from. Treated as unreliable: callers decide whether a failure is
// best-effort (resync) or hard (nothing else depends on it).
type Client struct {
	BaseURL string
	http    *http.Client
}

// NewClient reads REMOTE_API_URL; an empty value is allowed and simply
// makes every fetch fail, which the gateway already degrades around.
func NewClient() *Client {
	return &Client{
		BaseURL: os.Getenv("REMOTE_API_URL"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func NewClientWithBase(base string) *Client {
	return &Client{BaseURL: base, http: &http.Client{Timeout: 15 * time.Second}}
}

// FetchOrders pulls the authoritative customer-order list. The service
// answers either a bare array or a {data: [...]} wrapper.
func (c *Client) FetchOrders(ctx context.Context) ([]models.CustomerOrder, error) {
	var orders []models.CustomerOrder
	if err := c.getJSON(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	if c.BaseURL == "" {
		return fmt.Errorf("remote service URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote service request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read remote response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("remote service error %d: %s", resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err == nil {
		return nil
	}
	// Some deployments wrap the payload.
	wrapped := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return fmt.Errorf("failed to decode remote response: %w", err)
	}
	if err := json.Unmarshal(wrapped.Data, out); err != nil {
		return fmt.Errorf("failed to decode remote response: %w", err)
	}
	return nil
}
