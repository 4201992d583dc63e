package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"furniture-shop/models"
)

// MailRelay submits invoice emails to the external mail collaborator:
// {email, order_id, products, total_amount} in, 200 out, any non-2xx status
// is a failure.
type MailRelay struct {
	baseURL string
	client  *http.Client
}

func NewMailRelay(baseURL string) *MailRelay {
	return &MailRelay{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (r *MailRelay) SendInvoice(ctx context.Context, invoice models.SendInvoiceRequest) error {
	payload, err := json.Marshal(invoice)
	if err != nil {
		return fmt.Errorf("failed to encode invoice: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/send-email", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mail relay responded with status %d", resp.StatusCode)
	}
	return nil
}
