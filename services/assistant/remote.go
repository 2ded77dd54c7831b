package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"brewvoice/models"
)

// OrderPlacer is the remote order service as the reducer sees it: place a
// finalized order, cancel a placed one. Any transport or non-2xx failure
// comes back as an error.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) error
	CancelOrder(ctx context.Context, sessionID string) error
}

// HTTPOrderClient talks to the order service over JSON/HTTP.
type HTTPOrderClient struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPOrderClient(baseURL string) *HTTPOrderClient {
	return &HTTPOrderClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPOrderClient) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.Client.Do(req)
}

func (c *HTTPOrderClient) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) error {
	resp, err := c.post(ctx, "/place_order", req)
	if err != nil {
		return fmt.Errorf("place order request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("place order returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *HTTPOrderClient) CancelOrder(ctx context.Context, sessionID string) error {
	resp, err := c.post(ctx, "/cancel_order", models.CancelOrderRequest{SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("cancel order request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse cancel response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !result.Success {
		if result.Error != "" {
			return fmt.Errorf("cancel order rejected: %s", result.Error)
		}
		return fmt.Errorf("cancel order returned status %d", resp.StatusCode)
	}
	return nil
}
