package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theUncluded/430Frontend/internal/modules/catalog"
)

func product(id, title string, price int64) catalog.Product {
	return catalog.Product{ProductID: catalog.ID(id), Title: title, Price: decimal.NewFromInt(price)}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("add merges and caps at 10", func(t *testing.T) {
		s := NewMemoryStore()
		if err := s.AddToCart(ctx, "c1", product("1", "A", 10), 4); err != nil {
			t.Fatal(err)
		}
		if err := s.AddToCart(ctx, "c1", product("1", "A", 10), 9); err != nil {
			t.Fatal(err)
		}
		items, _ := s.Items(ctx, "c1")
		if len(items) != 1 || items[0].Quantity != 10 {
			t.Fatalf("got %+v", items)
		}
	})

	t.Run("insertion order kept", func(t *testing.T) {
		s := NewMemoryStore()
		_ = s.AddToCart(ctx, "c1", product("b", "B", 1), 1)
		_ = s.AddToCart(ctx, "c1", product("a", "A", 1), 1)
		items, _ := s.Items(ctx, "c1")
		if items[0].ProductID != "b" || items[1].ProductID != "a" {
			t.Fatalf("got %+v", items)
		}
	})

	t.Run("update bounds", func(t *testing.T) {
		s := NewMemoryStore()
		_ = s.AddToCart(ctx, "c1", product("1", "A", 10), 1)

		if err := s.UpdateItemQuantity(ctx, "c1", "1", 0); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("qty 0: got %v", err)
		}
		if err := s.UpdateItemQuantity(ctx, "c1", "1", 11); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("qty 11: got %v", err)
		}
		if err := s.UpdateItemQuantity(ctx, "c1", "nope", 2); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("unknown id: got %v", err)
		}
		if err := s.UpdateItemQuantity(ctx, "c1", "1", 7); err != nil {
			t.Fatalf("qty 7: got %v", err)
		}
		if n, _ := s.Count(ctx, "c1"); n != 7 {
			t.Fatalf("count: got %d", n)
		}
	})

	t.Run("remove", func(t *testing.T) {
		s := NewMemoryStore()
		_ = s.AddToCart(ctx, "c1", product("1", "A", 10), 1)
		_ = s.AddToCart(ctx, "c1", product("2", "B", 10), 1)
		if err := s.RemoveFromCart(ctx, "c1", "1"); err != nil {
			t.Fatal(err)
		}
		items, _ := s.Items(ctx, "c1")
		if len(items) != 1 || items[0].ProductID != "2" {
			t.Fatalf("got %+v", items)
		}
		if err := s.RemoveFromCart(ctx, "c1", "1"); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("second remove: got %v", err)
		}
	})

	t.Run("checkout empties cart", func(t *testing.T) {
		s := NewMemoryStore()
		if _, err := s.Checkout(ctx, "c1"); !errors.Is(err, ErrCartEmpty) {
			t.Fatalf("empty checkout: got %v", err)
		}
		_ = s.AddToCart(ctx, "c1", product("1", "A", 10), 2)
		r, err := s.Checkout(ctx, "c1")
		if err != nil {
			t.Fatal(err)
		}
		if r.OrderID == "" || r.Subtotal.String() != "20" || len(r.Items) != 1 {
			t.Fatalf("receipt: %+v", r)
		}
		if items, _ := s.Items(ctx, "c1"); len(items) != 0 {
			t.Fatalf("cart not emptied: %+v", items)
		}
	})

	t.Run("carts are isolated", func(t *testing.T) {
		s := NewMemoryStore()
		_ = s.AddToCart(ctx, "c1", product("1", "A", 10), 2)
		if n, _ := s.Count(ctx, "c2"); n != 0 {
			t.Fatalf("count c2: got %d", n)
		}
	})

	t.Run("blank cart id", func(t *testing.T) {
		s := NewMemoryStore()
		if _, err := s.Items(ctx, "  "); !errors.Is(err, ErrMissingCartID) {
			t.Fatalf("got %v", err)
		}
	})
}
