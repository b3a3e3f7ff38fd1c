package oms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the order management service. Both endpoints are
// authenticated with a static API key header.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type orderEnvelope struct {
	Order *Order `json:"Order"`
}

// GetOrder fetches an order by number. A response without an Order block
// means the order does not exist; that is reported as a nil order, not an
// error.
func (c *Client) GetOrder(ctx context.Context, orderNumber string) (*Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+orderNumber, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderNumber, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get order %s: read body: %w", orderNumber, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get order %s: status %d: %s", orderNumber, resp.StatusCode, body)
	}

	var envelope orderEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("get order %s: decode response: %w", orderNumber, err)
	}
	return envelope.Order, nil
}

// CreateReorder submits a replacement-order payload. The caller decides what
// an empty OrderNumber in the response means.
func (c *Client) CreateReorder(ctx context.Context, payload *ReorderRequest) (*ReorderResponse, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("create reorder: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint+"reorder", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create reorder for %s: %w", payload.ParentOrderNumber, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("create reorder for %s: read body: %w", payload.ParentOrderNumber, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("create reorder for %s: status %d: %s", payload.ParentOrderNumber, resp.StatusCode, body)
	}

	var created ReorderResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("create reorder for %s: decode response: %w", payload.ParentOrderNumber, err)
	}
	return &created, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
}
