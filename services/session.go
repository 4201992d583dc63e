package services

import (
	"sync"
	"time"

	"furniture-shop/models"
	"furniture-shop/repositories"
)

// Session bundles one owner's stores. Within a process every request for the
// same owner shares one session, so its in-memory mirrors and the checkout
// re-entrancy guard are common to all of them; other processes sharing the
// medium hold their own mirrors, reconciled through change notifications.
type Session struct {
	Cart     *CartService
	Wishlist *WishlistService
	History  *KeyedStore[[]models.Order]
	Checkout *CheckoutService
}

// SessionManager creates sessions lazily, one per owner, on first access.
type SessionManager struct {
	medium      repositories.StorageMedium
	orders      OrderStoreClient
	mail        MailRelayClient
	stepTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(
	medium repositories.StorageMedium,
	orders OrderStoreClient,
	mail MailRelayClient,
	stepTimeout time.Duration,
) *SessionManager {
	return &SessionManager{
		medium:      medium,
		orders:      orders,
		mail:        mail,
		stepTimeout: stepTimeout,
		sessions:    make(map[string]*Session),
	}
}

func (m *SessionManager) Get(ownerID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[ownerID]; ok {
		return session
	}

	cart := NewCartService(m.medium, "cart:"+ownerID)
	history := NewKeyedStore(m.medium, "orders:"+ownerID, []models.Order{})

	session := &Session{
		Cart:     cart,
		Wishlist: NewWishlistService(m.medium, "wishlist:"+ownerID),
		History:  history,
		Checkout: NewCheckoutService(cart, history, m.orders, m.mail, m.stepTimeout),
	}
	m.sessions[ownerID] = session
	return session
}
