package services

import (
	"context"
	"sync/atomic"
	"time"

	"furniture-shop/models"
)

type mockOrderStore struct {
	calls atomic.Int32
	err   error
	delay time.Duration
	block chan struct{}
}

func (m *mockOrderStore) CreateOrder(ctx context.Context, order models.Order, grandTotal float64) (*models.Order, error) {
	m.calls.Add(1)
	if m.block != nil {
		<-m.block
	}
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &order, nil
}

type mockMailRelay struct {
	calls atomic.Int32
	err   error
}

func (m *mockMailRelay) SendInvoice(ctx context.Context, invoice models.SendInvoiceRequest) error {
	m.calls.Add(1)
	return m.err
}
