package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"gorm.io/gorm"
)

type fakeSource struct {
	items     map[uint]*models.CartItem
	loadCalls int
	failSave  bool
	failDel   bool
	nextID    uint
}

func newFakeSource(items ...models.CartItem) *fakeSource {
	f := &fakeSource{items: make(map[uint]*models.CartItem), nextID: 100}
	for i := range items {
		it := items[i]
		f.items[it.ID] = &it
	}
	return f
}

func (f *fakeSource) LoadCart(_ context.Context, userID string) ([]models.CartItem, error) {
	f.loadCalls++
	var out []models.CartItem
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeSource) FindItem(_ context.Context, userID string, productID uint) (*models.CartItem, error) {
	for _, it := range f.items {
		if it.UserID == userID && it.ProductID == productID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSource) InsertItem(_ context.Context, item *models.CartItem) error {
	f.nextID++
	item.ID = f.nextID
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeSource) SaveQuantity(_ context.Context, userID string, id uint, qty int) error {
	if f.failSave {
		return errors.New("save failed")
	}
	it, ok := f.items[id]
	if !ok || it.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	it.Quantity = qty
	return nil
}

func (f *fakeSource) DeleteItem(_ context.Context, userID string, id uint) error {
	if f.failDel {
		return errors.New("delete failed")
	}
	it, ok := f.items[id]
	if !ok || it.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeSource) DeleteAll(_ context.Context, userID string) error {
	for id, it := range f.items {
		if it.UserID == userID {
			delete(f.items, id)
		}
	}
	return nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func item(id uint, user string, product uint, qty int) models.CartItem {
	return models.CartItem{ID: id, UserID: user, ProductID: product, Quantity: qty}
}

func TestFetchCartUsesCacheWithinWindow(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 2))
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	cs := NewCartStore(src, 30*time.Second, clock.now)

	if _, err := cs.FetchCart(context.Background(), "u1", false); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := cs.FetchCart(context.Background(), "u1", false); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if src.loadCalls != 1 {
		t.Fatalf("expected exactly 1 source query within window, got %d", src.loadCalls)
	}
}

func TestFetchCartForceBypassesWindow(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 2))
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	cs := NewCartStore(src, 30*time.Second, clock.now)

	cs.FetchCart(context.Background(), "u1", false)
	cs.FetchCart(context.Background(), "u1", true)
	if src.loadCalls != 2 {
		t.Fatalf("force should always query, got %d calls", src.loadCalls)
	}
}

func TestFetchCartRefreshesAfterWindow(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 2))
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	cs := NewCartStore(src, 30*time.Second, clock.now)

	cs.FetchCart(context.Background(), "u1", false)
	clock.advance(31 * time.Second)
	cs.FetchCart(context.Background(), "u1", false)
	if src.loadCalls != 2 {
		t.Fatalf("stale cache should requery, got %d calls", src.loadCalls)
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 1))
	cs := NewCartStore(src, 30*time.Second, nil)
	cs.FetchCart(context.Background(), "u1", false)

	err := cs.UpdateQuantity(context.Background(), "u1", 1, 1, -1)
	if !errors.Is(err, ErrQuantityTooLow) {
		t.Fatalf("expected ErrQuantityTooLow, got %v", err)
	}
	if src.items[1].Quantity != 1 {
		t.Fatalf("persistent quantity mutated on floor reject: %d", src.items[1].Quantity)
	}
	items, _ := cs.FetchCart(context.Background(), "u1", false)
	if items[0].Quantity != 1 {
		t.Fatalf("cached quantity mutated on floor reject: %d", items[0].Quantity)
	}
}

func TestUpdateQuantityRollsBackOnFailure(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 2))
	cs := NewCartStore(src, 30*time.Second, nil)
	cs.FetchCart(context.Background(), "u1", false)

	src.failSave = true
	if err := cs.UpdateQuantity(context.Background(), "u1", 1, 2, 1); err == nil {
		t.Fatal("expected error from failed save")
	}
	items, _ := cs.FetchCart(context.Background(), "u1", false)
	if items[0].Quantity != 2 {
		t.Fatalf("cached quantity not rolled back, got %d", items[0].Quantity)
	}
}

func TestRemoveItemRestoresOnlyAffectedItem(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 2), item(2, "u1", 11, 1))
	cs := NewCartStore(src, 30*time.Second, nil)
	cs.FetchCart(context.Background(), "u1", false)

	// A second mutation lands between the optimistic removal and the
	// failure; it must survive the rollback.
	src.failDel = true
	if err := cs.UpdateQuantity(context.Background(), "u1", 2, 1, 3); err != nil {
		t.Fatalf("concurrent update: %v", err)
	}
	if err := cs.RemoveItem(context.Background(), "u1", 1); err == nil {
		t.Fatal("expected error from failed delete")
	}

	items, _ := cs.FetchCart(context.Background(), "u1", false)
	if len(items) != 2 {
		t.Fatalf("expected removed item restored, got %d items", len(items))
	}
	for _, it := range items {
		if it.ID == 2 && it.Quantity != 4 {
			t.Fatalf("concurrent mutation reverted by rollback, qty=%d", it.Quantity)
		}
	}
}

func TestUpdateQuantityRejectsOtherUsersRow(t *testing.T) {
	src := newFakeSource(item(1, "owner", 10, 2))
	cs := NewCartStore(src, 30*time.Second, nil)

	err := cs.UpdateQuantity(context.Background(), "intruder", 1, 2, 3)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found for another user's row, got %v", err)
	}
	if src.items[1].Quantity != 2 {
		t.Fatalf("another user's row mutated, qty=%d", src.items[1].Quantity)
	}
}

func TestRemoveItemRejectsOtherUsersRow(t *testing.T) {
	src := newFakeSource(item(1, "owner", 10, 2))
	cs := NewCartStore(src, 30*time.Second, nil)

	err := cs.RemoveItem(context.Background(), "intruder", 1)
	if !IsNotFound(err) {
		t.Fatalf("expected not-found for another user's row, got %v", err)
	}
	if _, ok := src.items[1]; !ok {
		t.Fatal("another user's row deleted")
	}
}

func TestPeekCartDoesNotWarmCache(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 2))
	cs := NewCartStore(src, 30*time.Second, nil)

	if _, err := cs.PeekCart(context.Background(), "u1"); err != nil {
		t.Fatalf("peek: %v", err)
	}
	cs.FetchCart(context.Background(), "u1", false)
	if src.loadCalls != 2 {
		t.Fatalf("peek should not seed the window, got %d calls", src.loadCalls)
	}
}

func TestAddItemUpsertsExistingRow(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 2))
	cs := NewCartStore(src, 30*time.Second, nil)

	it, err := cs.AddItem(context.Background(), "u1", 10, 3)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.ID != 1 || it.Quantity != 5 {
		t.Fatalf("expected upsert onto row 1 with qty 5, got id=%d qty=%d", it.ID, it.Quantity)
	}
	count := 0
	for _, row := range src.items {
		if row.UserID == "u1" && row.ProductID == 10 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("duplicate cart row for (user, product): %d rows", count)
	}
}

func TestClearCartForcesNextFetch(t *testing.T) {
	src := newFakeSource(item(1, "u1", 10, 2))
	cs := NewCartStore(src, 30*time.Second, nil)

	cs.FetchCart(context.Background(), "u1", false)
	cs.ClearCart("u1")
	cs.FetchCart(context.Background(), "u1", false)
	if src.loadCalls != 2 {
		t.Fatalf("clear should invalidate the window, got %d calls", src.loadCalls)
	}
}
