package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestClientFetchProducts(t *testing.T) {
	t.Run("parses array with numeric and string ids", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET, got %s", r.Method)
			}
			if got := r.Header.Get("Authorization"); got != "" {
				t.Errorf("expected no auth header, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"product_id": 1, "title": "Mug", "price": 12.5, "quantity": 3},
				{"product_id": "sku-2", "title": "Cap", "price": "7.00"}
			]`))
		}))
		defer srv.Close()

		got, err := NewClient(srv.URL, time.Second).FetchProducts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 products, got %d", len(got))
		}
		if got[0].ProductID != "1" || got[0].Title != "Mug" || got[0].Price.String() != "12.5" {
			t.Fatalf("unexpected first product: %+v", got[0])
		}
		if got[0].Quantity == nil || *got[0].Quantity != 3 {
			t.Fatalf("expected quantity 3, got %v", got[0].Quantity)
		}
		if got[1].ProductID != "sku-2" || got[1].Quantity != nil {
			t.Fatalf("unexpected second product: %+v", got[1])
		}
	})

	t.Run("records re-encode byte for byte", func(t *testing.T) {
		upstream := `[{"product_id":1,"title":"A","price":10.50,"image":"a.png","stock":3},{"product_id":2,"title":"B","price":2}]`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(upstream))
		}))
		defer srv.Close()

		got, err := NewClient(srv.URL, time.Second).FetchProducts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := json.Marshal(got)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != upstream {
			t.Fatalf("re-encoded products differ:\n got %s\nwant %s", b, upstream)
		}
		if got[0].Price.String() != "10.5" {
			t.Fatalf("typed price: %s", got[0].Price)
		}
	})

	t.Run("unusable record is kept with zero price", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"product_id":1,"title":"A","price":"n/a"},{"product_id":2,"title":"B","price":2}]`))
		}))
		defer srv.Close()

		got, err := NewClient(srv.URL, time.Second).FetchProducts(context.Background())
		if err != nil {
			t.Fatalf("one bad record failed the fetch: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 products, got %d", len(got))
		}
		if !got[0].Price.IsZero() || got[0].Title != "A" {
			t.Fatalf("unexpected first product: %+v", got[0])
		}
		if !got[1].Price.Equal(decimal.NewFromInt(2)) {
			t.Fatalf("unexpected second price: %s", got[1].Price)
		}
		b, _ := json.Marshal(got[0])
		if string(b) != `{"product_id":1,"title":"A","price":"n/a"}` {
			t.Fatalf("bad record not kept verbatim: %s", b)
		}
	})

	t.Run("non-2xx -> error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusBadGateway)
		}))
		defer srv.Close()

		if _, err := NewClient(srv.URL, time.Second).FetchProducts(context.Background()); err == nil {
			t.Fatal("expected error for 502")
		}
	})

	t.Run("object body -> ErrNotArray", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"products": []}`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second).FetchProducts(context.Background())
		if !errors.Is(err, ErrNotArray) {
			t.Fatalf("expected ErrNotArray, got %v", err)
		}
	})

	t.Run("null body -> ErrNotArray", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL, time.Second).FetchProducts(context.Background())
		if !errors.Is(err, ErrNotArray) {
			t.Fatalf("expected ErrNotArray, got %v", err)
		}
	})

	t.Run("garbage body -> error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer srv.Close()

		if _, err := NewClient(srv.URL, time.Second).FetchProducts(context.Background()); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("empty endpoint -> canonical default", func(t *testing.T) {
		if got := NewClient("", 0).Endpoint(); got != DefaultEndpoint {
			t.Fatalf("got %q", got)
		}
	})
}

func TestIDMarshalRoundTrip(t *testing.T) {
	b, err := ID("42").MarshalJSON()
	if err != nil || string(b) != "42" {
		t.Fatalf("numeric id: got %s, %v", b, err)
	}
	b, err = ID("sku-1").MarshalJSON()
	if err != nil || string(b) != `"sku-1"` {
		t.Fatalf("string id: got %s, %v", b, err)
	}
}

func TestProductMarshalWithoutSource(t *testing.T) {
	q := 2
	p := Product{ProductID: "7", Title: "Seven", Price: decimal.RequireFromString("7.50"), Quantity: &q}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"product_id":7,"title":"Seven","price":7.5,"quantity":2}` {
		t.Fatalf("got %s", b)
	}
}
