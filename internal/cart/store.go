package cart

import "sync"

// Store maps session ids to carts. Carts are minted lazily on first
// access, so every session always has one.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewStore returns an empty session cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart owned by the session, creating it if needed.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.RLock()
	cart, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	cart = New()
	s.carts[sessionID] = cart
	return cart
}

// Drop forgets the session's cart entirely.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Len reports how many sessions currently hold a cart.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
