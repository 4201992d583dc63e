package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture-shop/config"
	"furniture-shop/middleware"
	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/services"
	"furniture-shop/utils"
)

type stubOrderStore struct {
	calls atomic.Int32
	err   error
}

func (s *stubOrderStore) CreateOrder(ctx context.Context, order models.Order, grandTotal float64) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &order, nil
}

type stubMailRelay struct {
	err error
}

func (s *stubMailRelay) SendInvoice(ctx context.Context, invoice models.SendInvoiceRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.err
}

type testApp struct {
	router   *gin.Engine
	sessions *services.SessionManager
	orders   *stubOrderStore
	mail     *stubMailRelay
	token    string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	utils.RegisterValidators()

	app := &testApp{
		orders: &stubOrderStore{},
		mail:   &stubMailRelay{},
	}
	app.sessions = services.NewSessionManager(
		repositories.NewMemoryBackend().Open(), app.orders, app.mail, time.Second)

	router := gin.New()
	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		cartCtrl := NewCartController(app.sessions)
		checkoutCtrl := NewCheckoutController(app.sessions)
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:index/quantity", cartCtrl.ChangeQuantity)
		auth.DELETE("/cart/items/:index", cartCtrl.RemoveItem)
		auth.POST("/checkout", checkoutCtrl.Submit)
	}
	app.router = router

	app.token = mintOwnerToken(t, "owner-1", "amina@example.com")

	return app
}

// mintOwnerToken stands in for the external identity provider.
func mintOwnerToken(t *testing.T, ownerID, email string) string {
	t.Helper()
	claims := utils.Claims{
		OwnerID: ownerID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)
	return token
}

func (app *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+app.token)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func validCheckoutBody() models.CheckoutRequest {
	return models.CheckoutRequest{
		Billing: models.BillingDetails{
			FullName:      "Amina Rahman",
			AddressLine1:  "House 12, Road 5",
			City:          "Dhaka",
			Province:      "Dhaka",
			ZipCode:       "1207",
			Phone:         "01712345678",
			Email:         "amina@example.com",
			Courier:       models.CourierStandard,
			PaymentMethod: models.PaymentCashOnDelivery,
			AddressType:   models.AddressTypeHome,
		},
	}
}

func (app *testApp) fillCart(t *testing.T) {
	t.Helper()
	w := app.do(t, http.MethodPost, "/cart/items", models.AddCartItemRequest{
		ID: "p1", Title: "Syltherine", UnitPrice: 100, Quantity: 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCheckoutEndpoint_RequiresAuth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutEndpoint_Success(t *testing.T) {
	app := newTestApp(t)
	app.fillCart(t)

	w := app.do(t, http.MethodPost, "/checkout", validCheckoutBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	cart := app.sessions.Get("owner-1").Cart
	assert.Empty(t, cart.Items())
}

func TestCheckoutEndpoint_EmptyCart(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/checkout", validCheckoutBody())
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, services.ReasonCartEmpty, resp.Message)
	assert.Zero(t, app.orders.calls.Load())
}

func TestCheckoutEndpoint_ValidationFaults(t *testing.T) {
	app := newTestApp(t)
	app.fillCart(t)

	tests := []struct {
		name   string
		mutate func(*models.BillingDetails)
	}{
		{"missing name", func(b *models.BillingDetails) { b.FullName = "" }},
		{"unknown province", func(b *models.BillingDetails) { b.Province = "Atlantis" }},
		{"bad zip", func(b *models.BillingDetails) { b.ZipCode = "12" }},
		{"short phone", func(b *models.BillingDetails) { b.Phone = "0171234" }},
		{"bad email", func(b *models.BillingDetails) { b.Email = "not-an-email" }},
		{"unsupported payment", func(b *models.BillingDetails) { b.PaymentMethod = "card" }},
		{"bad address type", func(b *models.BillingDetails) { b.AddressType = "warehouse" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validCheckoutBody()
			tt.mutate(&body.Billing)

			w := app.do(t, http.MethodPost, "/checkout", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Zero(t, app.orders.calls.Load(), "validation faults never reach the order store")
}

func TestCheckoutEndpoint_ClientDisconnectDoesNotAbort(t *testing.T) {
	app := newTestApp(t)
	app.fillCart(t)

	payload, err := json.Marshal(validCheckoutBody())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+app.token)

	// A canceled request context models the client navigating away; the
	// pipeline must still run to completion.
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int32(1), app.orders.calls.Load())
	assert.Empty(t, app.sessions.Get("owner-1").Cart.Items())
}

func TestCheckoutEndpoint_RemoteFailure(t *testing.T) {
	app := newTestApp(t)
	app.fillCart(t)
	app.orders.err = errors.New("status 500")

	w := app.do(t, http.MethodPost, "/checkout", validCheckoutBody())
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, services.ReasonOrderCreate, resp.Message)

	cart := app.sessions.Get("owner-1").Cart
	assert.NotEmpty(t, cart.Items(), "cart preserved for retry")
}

func TestCartEndpoints_QuantityAndRemoval(t *testing.T) {
	app := newTestApp(t)
	app.fillCart(t)

	w := app.do(t, http.MethodPatch, "/cart/items/0/quantity", models.ChangeQuantityRequest{Direction: "increase"})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodPatch, "/cart/items/0/quantity", models.ChangeQuantityRequest{Direction: "sideways"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "direction is a closed enum")

	items := app.sessions.Get("owner-1").Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	w = app.do(t, http.MethodDelete, "/cart/items/0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, app.sessions.Get("owner-1").Cart.Items())
}
