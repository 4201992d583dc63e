package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"furniture-shop/models"
)

type CheckoutState string

const (
	CheckoutStateIdle       CheckoutState = "idle"
	CheckoutStateSubmitting CheckoutState = "submitting"
	CheckoutStateSucceeded  CheckoutState = "succeeded"
	CheckoutStateFailed     CheckoutState = "failed"
)

// Failure reasons surfaced to the user. Each remote step gets its own reason
// so "order created but email failed" is distinguishable from "order never
// created"; a naive retry is only safe in the latter case.
const (
	ReasonCartEmpty    = "cart empty"
	ReasonOrderCreate  = "failed to create order"
	ReasonInvoiceEmail = "failed to send invoice email"
)

// ErrSubmitInProgress rejects a re-entrant submission; the in-flight attempt
// keeps exclusive ownership of the pipeline until it settles.
var ErrSubmitInProgress = errors.New("checkout already in progress")

type OrderStoreClient interface {
	CreateOrder(ctx context.Context, order models.Order, grandTotal float64) (*models.Order, error)
}

type MailRelayClient interface {
	SendInvoice(ctx context.Context, invoice models.SendInvoiceRequest) error
}

type CheckoutResult struct {
	State      CheckoutState `json:"state"`
	Reason     string        `json:"reason,omitempty"`
	Order      *models.Order `json:"order,omitempty"`
	RedirectTo string        `json:"redirect_to,omitempty"`
}

// CheckoutService turns a cart snapshot plus validated billing details into
// a durable order. The remote steps run strictly in sequence, each gating
// the next; any step failure settles the pipeline with the cart intact so
// the user can retry without re-entering billing details.
type CheckoutService struct {
	cart        *CartService
	history     *KeyedStore[[]models.Order]
	orders      OrderStoreClient
	mail        MailRelayClient
	stepTimeout time.Duration

	mu    sync.Mutex
	state CheckoutState
}

func NewCheckoutService(
	cart *CartService,
	history *KeyedStore[[]models.Order],
	orders OrderStoreClient,
	mail MailRelayClient,
	stepTimeout time.Duration,
) *CheckoutService {
	return &CheckoutService{
		cart:        cart,
		history:     history,
		orders:      orders,
		mail:        mail,
		stepTimeout: stepTimeout,
		state:       CheckoutStateIdle,
	}
}

func (s *CheckoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit runs one checkout attempt. Each settled attempt, succeeded or
// failed, returns the service to idle; a new submission is a fresh attempt.
func (s *CheckoutService) Submit(ctx context.Context, ownerID string, billing models.BillingDetails) (*CheckoutResult, error) {
	s.mu.Lock()
	if s.state == CheckoutStateSubmitting {
		s.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	s.state = CheckoutStateSubmitting
	s.mu.Unlock()

	result := s.run(ctx, ownerID, billing)

	s.mu.Lock()
	s.state = CheckoutStateIdle
	s.mu.Unlock()

	return result, nil
}

func (s *CheckoutService) run(ctx context.Context, ownerID string, billing models.BillingDetails) *CheckoutResult {
	snapshot := s.cart.Snapshot()
	if len(snapshot) == 0 {
		return &CheckoutResult{State: CheckoutStateFailed, Reason: ReasonCartEmpty}
	}

	var totalAmount float64
	for _, item := range snapshot {
		totalAmount += item.UnitPrice * float64(item.Quantity)
	}
	// Shipping is free under the current policy, the grand total equals the
	// line-item sum.
	grandTotal := totalAmount

	order := models.Order{
		ID:          time.Now().UnixMilli(),
		Status:      models.OrderStatusPending,
		Items:       snapshot,
		CreatedAt:   time.Now().UTC(),
		Billing:     billing,
		OwnerID:     ownerID,
		TotalAmount: totalAmount,
	}

	if err := s.createOrder(ctx, order, grandTotal); err != nil {
		log.Printf("Checkout order %d: create-order step failed, order was not created: %v", order.ID, err)
		return &CheckoutResult{State: CheckoutStateFailed, Reason: ReasonOrderCreate}
	}

	if err := s.sendInvoice(ctx, order); err != nil {
		// The order exists server-side at this point. Surfacing the failure
		// anyway lets the user retry or contact support instead of assuming
		// no order was placed; the cart stays intact.
		log.Printf("Checkout order %d: order created but invoice email failed: %v", order.ID, err)
		return &CheckoutResult{State: CheckoutStateFailed, Reason: ReasonInvoiceEmail}
	}

	s.appendHistory(order)
	s.cart.Clear()

	log.Printf("Checkout order %d completed for %s", order.ID, ownerID)
	return &CheckoutResult{
		State:      CheckoutStateSucceeded,
		Order:      &order,
		RedirectTo: fmt.Sprintf("/checkout/confirmation/%d", order.ID),
	}
}

func (s *CheckoutService) createOrder(ctx context.Context, order models.Order, grandTotal float64) error {
	stepCtx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()

	_, err := s.orders.CreateOrder(stepCtx, order, grandTotal)
	return err
}

func (s *CheckoutService) sendInvoice(ctx context.Context, order models.Order) error {
	stepCtx, cancel := context.WithTimeout(ctx, s.stepTimeout)
	defer cancel()

	return s.mail.SendInvoice(stepCtx, models.SendInvoiceRequest{
		Email:       order.Billing.Email,
		OrderID:     order.ID,
		Products:    order.Items,
		TotalAmount: order.TotalAmount,
	})
}

// appendHistory echoes the order into the local history slot. Best-effort:
// the slot write logs its own failures and the primary flow never depends on
// it.
func (s *CheckoutService) appendHistory(order models.Order) {
	s.history.Update(func(orders []models.Order) []models.Order {
		next := make([]models.Order, len(orders), len(orders)+1)
		copy(next, orders)
		return append(next, order)
	})
}
