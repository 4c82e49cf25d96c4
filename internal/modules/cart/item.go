package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theUncluded/430Frontend/internal/modules/catalog"
)

const (
	MinQty = 1
	MaxQty = 10
)

type Item struct {
	ProductID catalog.ID      `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Renderable reports whether the item carries a usable price and quantity.
// Items failing it are neither shown nor summed.
func (it Item) Renderable() bool {
	return !it.Price.IsZero() && it.Quantity != 0
}

func (it Item) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Subtotal sums price*quantity over renderable items.
func Subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if !it.Renderable() {
			continue
		}
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

type Receipt struct {
	OrderID  string          `json:"order_id"`
	Items    []Item          `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	PlacedAt time.Time       `json:"placed_at"`
}
