package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/franzhentze92/botanic-care-backend/models"
)

const (
	keyPrefix     = "botaniccare:cart:"
	schemaVersion = 1

	storageTimeout = 5 * time.Second
)

// persistedState is the durable cart document. The version field exists so a
// future shape change can migrate instead of discarding carts.
type persistedState struct {
	Version  int                   `json:"version"`
	Items    []models.CartItem     `json:"items"`
	Wishlist []models.WishlistItem `json:"wishlist"`
}

// Listener observes committed cart states.
type Listener func(models.CartState)

// Store holds one cart. Mutations go through Dispatch, which commits the
// reduced state under a lock and hands it to a single persister goroutine,
// so writes reach storage in commit order.
//
// Concurrent writers to the same storage key from another process are not
// coordinated: last writer wins.
type Store struct {
	key     string
	storage Storage
	logger  *zap.Logger

	mu        sync.Mutex
	state     models.CartState
	listeners []Listener

	persistCh chan models.CartState
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a Store for the given cart key and hydrates it from storage.
// Any load or parse failure is logged and the store starts empty; hydration
// never fails the caller.
func New(key string, storage Storage, logger *zap.Logger) *Store {
	s := &Store{
		key:       keyPrefix + key,
		storage:   storage,
		logger:    logger,
		persistCh: make(chan models.CartState, 64),
		done:      make(chan struct{}),
	}
	s.state = s.hydrate()
	go s.persistLoop()
	return s
}

func (s *Store) hydrate() models.CartState {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	data, err := s.storage.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("cart hydration failed, starting empty",
				zap.String("key", s.key), zap.Error(err))
		}
		return models.CartState{}
	}

	var doc persistedState
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("stored cart is unreadable, starting empty",
			zap.String("key", s.key), zap.Error(err))
		return models.CartState{}
	}
	return models.CartState{Items: doc.Items, Wishlist: doc.Wishlist}
}

func (s *Store) persistLoop() {
	defer close(s.done)
	for state := range s.persistCh {
		data, err := json.Marshal(persistedState{
			Version:  schemaVersion,
			Items:    state.Items,
			Wishlist: state.Wishlist,
		})
		if err != nil {
			s.logger.Warn("cart state marshal failed", zap.String("key", s.key), zap.Error(err))
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		if err := s.storage.Save(ctx, s.key, data); err != nil {
			s.logger.Warn("cart persistence failed", zap.String("key", s.key), zap.Error(err))
		}
		cancel()
	}
}

// Close stops the persister after draining queued writes.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.persistCh)
	})
	<-s.done
}

// Dispatch commits one action and schedules a persistence write. Listeners
// see the committed state after the lock is released.
func (s *Store) Dispatch(action Action) Outcome {
	s.mu.Lock()
	next, outcome := Reduce(s.state, action)
	s.state = next
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	// enqueue under the lock so the persister receives states in commit
	// order; a send after unlock can interleave with another dispatch
	s.persistCh <- next
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return outcome
}

// Subscribe registers a listener for committed states.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// AddToCart merges the product into the cart, accumulating quantity when the
// product id already has a line.
func (s *Store) AddToCart(product models.Product, quantity int) Outcome {
	return s.Dispatch(AddToCart{Product: product, Quantity: quantity})
}

// RemoveFromCart drops the line with the product id, if present.
func (s *Store) RemoveFromCart(productID int64) {
	s.Dispatch(RemoveFromCart{ProductID: productID})
}

// UpdateQuantity replaces the quantity on the matching line, if present.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	s.Dispatch(UpdateQuantity{ProductID: productID, Quantity: quantity})
}

// ClearCart empties the cart lines, keeping the wishlist.
func (s *Store) ClearCart() {
	s.Dispatch(ClearCart{})
}

// AddToWishlist saves the product unless it is already saved.
func (s *Store) AddToWishlist(product models.Product) Outcome {
	return s.Dispatch(AddToWishlist{Product: product})
}

// RemoveFromWishlist drops the wishlist entry with the product id.
func (s *Store) RemoveFromWishlist(productID int64) {
	s.Dispatch(RemoveFromWishlist{ProductID: productID})
}

// ClearWishlist empties the wishlist, keeping the cart lines.
func (s *Store) ClearWishlist() {
	s.Dispatch(ClearWishlist{})
}

// State returns a copy of the current cart state.
func (s *Store) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartState{
		Items:    cloneItems(s.state.Items),
		Wishlist: cloneWishlist(s.state.Wishlist),
	}
}

// CartTotal returns the current cart total in cents-rounded currency units.
func (s *Store) CartTotal() float64 { return s.State().CartTotal() }

// ItemCount returns the total quantity across cart lines.
func (s *Store) ItemCount() int { return s.State().ItemCount() }

// WishlistCount returns the number of wishlist entries.
func (s *Store) WishlistCount() int { return s.State().WishlistCount() }

// IsInWishlist reports whether the product id is saved.
func (s *Store) IsInWishlist(productID int64) bool { return s.State().IsInWishlist(productID) }
