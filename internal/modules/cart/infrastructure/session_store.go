package infrastructure

import (
	"sync"
	"time"

	"github.com/lucsky/cuid"

	"addisKitchen/internal/modules/cart/domain"
)

const defaultIdleTTL = 24 * time.Hour

type entry struct {
	mu       sync.Mutex
	cart     *domain.Cart
	lastSeen time.Time
}

// SessionStore owns the carts for active browsing sessions, keyed by an opaque
// token handed to the client as a cookie. Each cart is single-writer behind its
// own lock, so a long-running callback for one session never stalls another.
// The store lock covers only entry lookup, creation, and eviction.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	idleTTL time.Duration
	now     func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[string]*entry),
		idleTTL: defaultIdleTTL,
		now:     time.Now,
	}
}

// WithCart runs fn against the cart for token, creating the cart when the
// token is unknown or empty. It returns the token that owns the cart so
// handlers can set the cookie on first use.
func (s *SessionStore) WithCart(token string, fn func(*domain.Cart)) string {
	s.mu.Lock()
	s.evictIdleLocked()

	e, ok := s.entries[token]
	if !ok {
		if token == "" {
			token = cuid.New()
		}
		e = &entry{cart: &domain.Cart{}}
		s.entries[token] = e
	}
	e.lastSeen = s.now()
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.cart)
	return token
}

// Peek runs fn against the existing cart for token without creating one.
// Returns false when the token has no cart.
func (s *SessionStore) Peek(token string, fn func(*domain.Cart)) bool {
	s.mu.Lock()
	e, ok := s.entries[token]
	if !ok {
		s.mu.Unlock()
		return false
	}
	e.lastSeen = s.now()
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.cart)
	return true
}

// Drop removes the cart for token, if any.
func (s *SessionStore) Drop(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

// evictIdleLocked requires s.mu. Entries are touched before their own lock is
// taken, so an entry with a callback in flight is never idle past the TTL.
func (s *SessionStore) evictIdleLocked() {
	cutoff := s.now().Add(-s.idleTTL)
	for token, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, token)
		}
	}
}
