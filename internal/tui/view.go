package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/theUncluded/430Frontend/internal/modules/catalog"
	"github.com/theUncluded/430Frontend/pkg/view"
)

func (m Model) View() string {
	left := m.catalogLines()
	if !m.side.open {
		return strings.Join(left, "\n")
	}

	right := m.sidebarLines()
	leftWidth := m.side.sidebarRect().X

	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	b := &strings.Builder{}
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		b.WriteString(fit(l, leftWidth))
		b.WriteString(r)
		if i < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) catalogLines() []string {
	st := m.loader.State()
	count := 0
	if items, err := m.cart.Store().Items(context.Background(), m.cartID); err == nil {
		count = m.cart.BuildSidebar(context.Background(), items).Count
	}

	lines := []string{fmt.Sprintf("Storefront                Cart (%d)", count), ""}
	switch {
	case st.Loading:
		lines = append(lines, "Loading products...")
	case len(st.Products) == 0:
		lines = append(lines, "No products available.")
	default:
		for i, p := range st.Products {
			lines = append(lines, productLine(p, i == m.cursor && !m.side.open))
		}
	}

	lines = append(lines, "")
	if m.status != "" {
		lines = append(lines, m.status)
	}
	lines = append(lines, "up/down select, enter add, c cart, q quit")
	return lines
}

func productLine(p catalog.Product, selected bool) string {
	marker := " "
	if selected {
		marker = ">"
	}
	return fmt.Sprintf(" %s %s  %s", marker, p.Title, view.Money(p.Price, view.DefaultCurrency))
}

func (m Model) sidebarLines() []string {
	ctx := context.Background()
	items, err := m.cart.Store().Items(ctx, m.cartID)
	if err != nil {
		return []string{"| Cart unavailable."}
	}
	vm := m.cart.BuildSidebar(ctx, items)

	lines := []string{"| Your Cart              [esc] Close", "|"}
	if vm.Empty {
		lines = append(lines, "| No items in your cart")
	}
	for i, it := range vm.Items {
		marker := " "
		if i == m.side.line {
			marker = ">"
		}
		lines = append(lines,
			"|"+marker+it.Title,
			"|  "+it.UnitPrice+" x "+fmt.Sprint(it.Qty)+" = "+it.LineTotal,
			"|  qty "+quantityRow(it.Options),
		)
	}
	lines = append(lines,
		"|",
		"| Subtotal: "+vm.Subtotal,
		"| [o] Checkout  [x] Remove  [1-0] Qty",
	)
	return lines
}

func quantityRow(opts []view.QuantityOption) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Selected {
			parts = append(parts, fmt.Sprintf("[%d]", o.Value))
			continue
		}
		parts = append(parts, fmt.Sprint(o.Value))
	}
	return strings.Join(parts, " ")
}

// fit pads or truncates s to exactly w runes.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
