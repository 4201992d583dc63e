package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture-shop/models"
	"furniture-shop/repositories"
)

func newTestCart(t *testing.T) *CartService {
	t.Helper()
	return NewCartService(repositories.NewMemoryBackend().Open(), "cart")
}

func TestCartService_AddItem(t *testing.T) {
	cart := newTestCart(t)

	cart.AddItem(models.CartItem{ID: "p1", Title: "Syltherine", UnitPrice: 2500, Quantity: 1})
	cart.AddItem(models.CartItem{ID: "p2", Title: "Leviosa", UnitPrice: 2500, Quantity: 2})

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestCartService_AddItem_MergesSameVariant(t *testing.T) {
	cart := newTestCart(t)
	size := "L"

	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1, SelectedSize: &size})
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 2, SelectedSize: &size})

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCartService_AddItem_DifferentVariantStaysSeparate(t *testing.T) {
	cart := newTestCart(t)
	sizeL, sizeXL := "L", "XL"

	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1, SelectedSize: &sizeL})
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1, SelectedSize: &sizeXL})

	assert.Len(t, cart.Items(), 2)
}

func TestCartService_ChangeQuantity_Increase(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1})

	cart.ChangeQuantity(0, QuantityIncrease)
	cart.ChangeQuantity(0, QuantityIncrease)

	assert.Equal(t, 3, cart.Items()[0].Quantity)
}

func TestCartService_ChangeQuantity_DecrementFloor(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 2})

	// Repeated decrements never push the quantity below 1.
	for i := 0; i < 5; i++ {
		cart.ChangeQuantity(0, QuantityDecrease)
	}

	require.Len(t, cart.Items(), 1, "decrement at quantity 1 must not remove the line")
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartService_ChangeQuantity_OutOfBounds(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1})

	cart.ChangeQuantity(5, QuantityIncrease)
	cart.ChangeQuantity(-1, QuantityIncrease)

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCartService_RemoveItem_ShiftsIndices(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1})
	cart.AddItem(models.CartItem{ID: "p2", UnitPrice: 100, Quantity: 1})
	cart.AddItem(models.CartItem{ID: "p3", UnitPrice: 100, Quantity: 1})

	cart.RemoveItem(1)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p3", items[1].ID)
}

func TestCartService_RemoveItem_OutOfBounds(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1})

	cart.RemoveItem(3)

	assert.Len(t, cart.Items(), 1)
}

func TestCartService_Subtotal(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 2})
	cart.AddItem(models.CartItem{ID: "p2", UnitPrice: 50, Quantity: 1})

	assert.Equal(t, 250.0, cart.Subtotal())
}

func TestCartService_Clear(t *testing.T) {
	backend := repositories.NewMemoryBackend()
	medium := backend.Open()
	cart := NewCartService(medium, "cart")
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1})

	cart.Clear()

	assert.Empty(t, cart.Items())
	raw, ok, err := medium.Get("cart")
	require.NoError(t, err)
	require.True(t, ok, "clear persists immediately")
	assert.JSONEq(t, `[]`, raw)
}

func TestCartService_SnapshotIsDetached(t *testing.T) {
	cart := newTestCart(t)
	cart.AddItem(models.CartItem{ID: "p1", UnitPrice: 100, Quantity: 1})

	snapshot := cart.Snapshot()
	cart.Clear()

	require.Len(t, snapshot, 1, "snapshot survives later mutations")
	assert.Equal(t, "p1", snapshot[0].ID)
}
