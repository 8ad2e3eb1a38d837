package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
)

// DefaultTTL is how long a fetched cart is served from memory before the
// next FetchCart goes back to the database.
const DefaultTTL = 30 * time.Second

var ErrQuantityTooLow = errors.New("quantity cannot fall below 1")

type cartEntry struct {
	items     []models.CartItem
	fetchedAt time.Time
}

// CartStore keeps each signed-in user's cart in memory with a time-based
// staleness window. Mutations are applied to the cached copy first and
// rolled back if the persistent write fails; the rollback is per-item, so a
// concurrent mutation on another row survives a failed one.
type CartStore struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*cartEntry
}

// NewCartStore builds a store over src. The clock is injectable so tests
// control the staleness window.
func NewCartStore(src Source, ttl time.Duration, now func() time.Time) *CartStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &CartStore{
		source:  src,
		ttl:     ttl,
		now:     now,
		entries: make(map[string]*cartEntry),
	}
}

// FetchCart returns the user's cart. Within the staleness window it is
// served from memory; force always goes to the source. The fetch timestamp
// advances only on a successful load, so a failed refresh keeps retrying.
func (s *CartStore) FetchCart(ctx context.Context, userID string, force bool) ([]models.CartItem, error) {
	s.mu.Lock()
	entry, ok := s.entries[userID]
	if ok && !force && s.now().Sub(entry.fetchedAt) < s.ttl {
		items := cloneItems(entry.items)
		s.mu.Unlock()
		return items, nil
	}
	s.mu.Unlock()

	items, err := s.source.LoadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[userID] = &cartEntry{items: items, fetchedAt: s.now()}
	result := cloneItems(items)
	s.mu.Unlock()
	return result, nil
}

// PeekCart reads the user's cart straight from the source without touching
// the cached copy or its fetch stamp. Used for admin views of another
// user's cart, which must not warm that user's window.
func (s *CartStore) PeekCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.source.LoadCart(ctx, userID)
}

// AddItem puts a product in the cart, bumping the quantity when a row for
// the (user, product) pair already exists. This find-else-insert keeps the
// one-row-per-product invariant.
func (s *CartStore) AddItem(ctx context.Context, userID string, productID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrQuantityTooLow
	}

	existing, err := s.source.FindItem(ctx, userID, productID)
	if err == nil {
		newQty := existing.Quantity + quantity
		if err := s.source.SaveQuantity(ctx, userID, existing.ID, newQty); err != nil {
			return nil, err
		}
		existing.Quantity = newQty
		s.setCachedQuantity(userID, existing.ID, newQty)
		return existing, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: s.now(),
	}
	if err := s.source.InsertItem(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(userID) // new row: next fetch picks up the product join
	return item, nil
}

// UpdateQuantity applies currentQty+delta to a cart row. A result below 1 is
// a no-op; removal is a distinct operation. The cached item is updated
// optimistically and restored to currentQty if the persistent write fails.
func (s *CartStore) UpdateQuantity(ctx context.Context, userID string, cartItemID uint, currentQty, delta int) error {
	newQty := currentQty + delta
	if newQty < 1 {
		return ErrQuantityTooLow
	}

	s.setCachedQuantity(userID, cartItemID, newQty)

	if err := s.source.SaveQuantity(ctx, userID, cartItemID, newQty); err != nil {
		s.setCachedQuantity(userID, cartItemID, currentQty)
		log.Printf("cart: quantity update for item %d rolled back: %v", cartItemID, err)
		return err
	}
	return nil
}

// RemoveItem deletes a cart row, optimistically dropping it from the cached
// collection and restoring just that row if the delete fails.
func (s *CartStore) RemoveItem(ctx context.Context, userID string, cartItemID uint) error {
	removed := s.takeCachedItem(userID, cartItemID)

	if err := s.source.DeleteItem(ctx, userID, cartItemID); err != nil {
		if removed != nil {
			s.restoreCachedItem(userID, *removed)
		}
		log.Printf("cart: removal of item %d rolled back: %v", cartItemID, err)
		return err
	}
	return nil
}

// ClearCart drops the cached state and zeroes the fetch stamp so the next
// FetchCart hits the source. Called on sign-out and after a verified
// payment; it does not touch the database.
func (s *CartStore) ClearCart(userID string) {
	s.mu.Lock()
	delete(s.entries, userID)
	s.mu.Unlock()
}

// ClearPersistent deletes every cart row for the user and invalidates the
// cache. Used after payment verification.
func (s *CartStore) ClearPersistent(ctx context.Context, userID string) error {
	err := s.source.DeleteAll(ctx, userID)
	s.ClearCart(userID)
	return err
}

func (s *CartStore) invalidate(userID string) {
	s.mu.Lock()
	delete(s.entries, userID)
	s.mu.Unlock()
}

func (s *CartStore) setCachedQuantity(userID string, cartItemID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[userID]
	if !ok {
		return
	}
	for i := range entry.items {
		if entry.items[i].ID == cartItemID {
			entry.items[i].Quantity = quantity
			return
		}
	}
}

func (s *CartStore) takeCachedItem(userID string, cartItemID uint) *models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[userID]
	if !ok {
		return nil
	}
	for i := range entry.items {
		if entry.items[i].ID == cartItemID {
			removed := entry.items[i]
			entry.items = append(entry.items[:i], entry.items[i+1:]...)
			return &removed
		}
	}
	return nil
}

func (s *CartStore) restoreCachedItem(userID string, item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[userID]
	if !ok {
		return
	}
	entry.items = append(entry.items, item)
}

func cloneItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}
