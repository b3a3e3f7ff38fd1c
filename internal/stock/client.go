package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Levels maps the "total" key plus warehouse codes to quantities for one SKU.
type Levels map[string]int

// Total is the aggregate quantity across warehouses.
func (l Levels) Total() int {
	return l["total"]
}

// Response is the raw stock-service payload: one single-key object per SKU.
type Response struct {
	Skus []map[string]Levels `json:"skus"`
}

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

// GetStock fetches current levels for the SKU list. The service expects the
// list as a bracketed, comma-joined query value.
func (c *Client) GetStock(ctx context.Context, skus []string) (*Response, error) {
	endpoint := fmt.Sprintf("%sstock?skus=[%s]", c.endpoint, url.QueryEscape(strings.Join(skus, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get stock: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get stock: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get stock: status %d: %s", resp.StatusCode, body)
	}

	var stocks Response
	if err := json.Unmarshal(body, &stocks); err != nil {
		return nil, fmt.Errorf("get stock: decode response: %w", err)
	}
	return &stocks, nil
}
