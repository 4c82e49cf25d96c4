package cart

import (
	"context"
	"log/slog"

	"github.com/theUncluded/430Frontend/internal/assets"
	"github.com/theUncluded/430Frontend/internal/metrics"
	"github.com/theUncluded/430Frontend/pkg/view"
)

type Service struct {
	store   Store
	log     *slog.Logger
	metrics *metrics.Storefront
}

func NewService(store Store, log *slog.Logger, m *metrics.Storefront) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, log: log, metrics: m}
}

func (s *Service) Store() Store { return s.store }

func (s *Service) BuildSidebarForCart(ctx context.Context, cartID string) (view.CartSidebar, error) {
	items, err := s.store.Items(ctx, cartID)
	if err != nil {
		return view.CartSidebar{}, err
	}
	return s.BuildSidebar(ctx, items), nil
}

// BuildSidebar turns cart items into the sidebar render model. Items with
// a zero price or quantity are skipped with a warning each; the subtotal
// only covers what is rendered.
func (s *Service) BuildSidebar(ctx context.Context, items []Item) view.CartSidebar {
	vm := view.CartSidebar{
		Items: make([]view.CartLine, 0, len(items)),
		Empty: len(items) == 0,
	}

	for _, it := range items {
		if !it.Renderable() {
			vm.Skipped++
			s.metrics.CartItemSkipped()
			s.log.LogAttrs(ctx, slog.LevelWarn, "cart_item_skipped",
				slog.String("product_id", it.ProductID.String()),
				slog.String("title", it.Title),
				slog.String("price", it.Price.String()),
				slog.Int("quantity", it.Quantity),
			)
			continue
		}

		vm.Count += it.Quantity
		vm.Items = append(vm.Items, view.CartLine{
			ProductID:        it.ProductID.String(),
			Title:            it.Title,
			Qty:              it.Quantity,
			UnitPrice:        view.Money(it.Price, view.DefaultCurrency),
			LineTotal:        view.Money(it.LineTotal(), view.DefaultCurrency),
			ImageURL:         assets.ImageURL(it.ProductID.String()),
			FallbackImageURL: assets.FallbackImageURL,
			Options:          QuantityOptions(it.Quantity),
		})
	}

	sub := Subtotal(items)
	vm.Subtotal = view.Money(sub, view.DefaultCurrency)
	vm.SubtotalCents = sub.Shift(2).Round(0).IntPart()
	return vm
}

// QuantityOptions always yields MinQty..MaxQty. The current quantity is
// marked selected only when it falls inside that range.
func QuantityOptions(current int) []view.QuantityOption {
	opts := make([]view.QuantityOption, 0, MaxQty-MinQty+1)
	for v := MinQty; v <= MaxQty; v++ {
		opts = append(opts, view.QuantityOption{Value: v, Selected: v == current})
	}
	return opts
}

func ReceiptView(r Receipt) view.Receipt {
	out := view.Receipt{
		OrderID:  r.OrderID,
		Subtotal: view.Money(r.Subtotal, view.DefaultCurrency),
		Items:    make([]view.OrderItem, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		if !it.Renderable() {
			continue
		}
		out.Items = append(out.Items, view.OrderItem{
			ProductID: it.ProductID.String(),
			Title:     it.Title,
			Qty:       it.Quantity,
			PriceEach: view.Money(it.Price, view.DefaultCurrency),
			LineTotal: view.Money(it.LineTotal(), view.DefaultCurrency),
		})
	}
	return out
}
