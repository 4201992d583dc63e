package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"furniture-shop/models"
)

// OrderStore submits orders to the external order-store collaborator over
// its documented contract: {order, grand_total} in, 201 with the stored
// order out, any non-2xx status is a failure.
type OrderStore struct {
	baseURL string
	client  *http.Client
}

func NewOrderStore(baseURL string) *OrderStore {
	return &OrderStore{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (s *OrderStore) CreateOrder(ctx context.Context, order models.Order, grandTotal float64) (*models.Order, error) {
	payload, err := json.Marshal(models.CreateOrderRequest{
		Order:      order,
		GrandTotal: grandTotal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("order store responded with status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Order models.Order `json:"order"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode order store response: %w", err)
	}
	return &body.Data.Order, nil
}
