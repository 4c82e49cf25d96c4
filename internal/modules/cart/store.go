package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theUncluded/430Frontend/internal/modules/catalog"
)

// Store is the cart collaborator the views talk to. Views read items and
// request mutations; they never hold cart state themselves.
type Store interface {
	Items(ctx context.Context, cartID string) ([]Item, error)
	Count(ctx context.Context, cartID string) (int, error)
	AddToCart(ctx context.Context, cartID string, p catalog.Product, qty int) error
	UpdateItemQuantity(ctx context.Context, cartID string, id catalog.ID, qty int) error
	RemoveFromCart(ctx context.Context, cartID string, id catalog.ID) error
	Checkout(ctx context.Context, cartID string) (Receipt, error)
}

// MemoryStore keeps carts in process memory, keyed by cart id. Line order
// is insertion order.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]Item
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]Item), now: time.Now}
}

func (s *MemoryStore) Items(ctx context.Context, cartID string) ([]Item, error) {
	cartID, err := normalizeID(cartID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context, cartID string) (int, error) {
	items, err := s.Items(ctx, cartID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, it := range items {
		if it.Quantity > 0 {
			n += it.Quantity
		}
	}
	return n, nil
}

// AddToCart merges into an existing line; the merged quantity is capped at MaxQty.
func (s *MemoryStore) AddToCart(ctx context.Context, cartID string, p catalog.Product, qty int) error {
	cartID, err := normalizeID(cartID)
	if err != nil {
		return err
	}
	if qty < MinQty {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	for i := range items {
		if items[i].ProductID == p.ProductID {
			items[i].Quantity = clamp(items[i].Quantity+qty, MinQty, MaxQty)
			return nil
		}
	}
	s.carts[cartID] = append(items, Item{
		ProductID: p.ProductID,
		Title:     p.Title,
		Price:     p.Price,
		Quantity:  clamp(qty, MinQty, MaxQty),
	})
	return nil
}

func (s *MemoryStore) UpdateItemQuantity(ctx context.Context, cartID string, id catalog.ID, qty int) error {
	cartID, err := normalizeID(cartID)
	if err != nil {
		return err
	}
	if qty < MinQty || qty > MaxQty {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	for i := range items {
		if items[i].ProductID == id {
			items[i].Quantity = qty
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *MemoryStore) RemoveFromCart(ctx context.Context, cartID string, id catalog.ID) error {
	cartID, err := normalizeID(cartID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	for i := range items {
		if items[i].ProductID == id {
			s.carts[cartID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Checkout closes the cart out into a receipt and empties it. Payment is
// not taken here.
func (s *MemoryStore) Checkout(ctx context.Context, cartID string) (Receipt, error) {
	cartID, err := normalizeID(cartID)
	if err != nil {
		return Receipt{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[cartID]
	if len(items) == 0 {
		return Receipt{}, ErrCartEmpty
	}
	delete(s.carts, cartID)

	return Receipt{
		OrderID:  uuid.NewString(),
		Items:    items,
		Subtotal: Subtotal(items),
		PlacedAt: s.now().UTC(),
	}, nil
}

func normalizeID(cartID string) (string, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return "", ErrMissingCartID
	}
	return cartID, nil
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
