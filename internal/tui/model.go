// Package tui is the terminal storefront: a product list with a cart
// sidebar docked on the right that closes on any click outside it.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theUncluded/430Frontend/internal/modules/cart"
	"github.com/theUncluded/430Frontend/internal/modules/catalog"
	"github.com/theUncluded/430Frontend/internal/ui/dismiss"
	"github.com/theUncluded/430Frontend/internal/ui/pointer"
	"github.com/theUncluded/430Frontend/pkg/view"
)

const (
	sidebarWidth = 36
	sidebarKey   = "cart-sidebar"
)

type Deps struct {
	Loader *catalog.Loader
	Cart   *cart.Service
	CartID string
	Bus    *pointer.Bus
	Log    *slog.Logger
}

type catalogLoadedMsg struct{}

// screen is shared by every copy of the model; the dismiss callback reads
// and writes it while the bus dispatches inside Update.
type screen struct {
	width, height int

	open    bool
	line    int
	watcher *dismiss.Watcher
}

// sidebarRect is the right column of the screen, full height.
func (s *screen) sidebarRect() pointer.Rect {
	w := sidebarWidth
	if w > s.width {
		w = s.width
	}
	return pointer.Rect{X: s.width - w, Y: 0, W: w, H: s.height}
}

func (s *screen) closeSidebar() {
	s.open = false
	if s.watcher != nil {
		s.watcher.Unmount()
		s.watcher = nil
	}
}

type Model struct {
	loader *catalog.Loader
	cart   *cart.Service
	cartID string
	bus    *pointer.Bus
	log    *slog.Logger

	cursor int
	status string

	side *screen
}

func New(d Deps) Model {
	if d.Bus == nil {
		d.Bus = pointer.NewBus()
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return Model{
		loader: d.Loader,
		cart:   d.Cart,
		cartID: d.CartID,
		bus:    d.Bus,
		log:    d.Log,
		side:   &screen{width: 80, height: 24},
	}
}

func (m Model) Init() tea.Cmd {
	return waitForCatalog(m.loader)
}

func waitForCatalog(l *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		<-l.Done()
		return catalogLoadedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.side.width, m.side.height = msg.Width, msg.Height

	case catalogLoadedMsg:
		n := len(m.loader.State().Products)
		if n == 0 {
			m.status = "No products available."
		} else {
			m.status = fmt.Sprintf("%d products loaded.", n)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.bus.Dispatch(pointer.Event{Point: pointer.Point{X: msg.X, Y: msg.Y}})
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		m.closeCart()
		m.loader.Stop()
		return m, tea.Quit
	case "c":
		if m.side.open {
			m.requestClose()
		} else {
			m.openCart()
		}
		return m, nil
	}

	if m.side.open {
		m.handleCartKey(key)
		return m, nil
	}

	products := m.loader.State().Products
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(products)-1 {
			m.cursor++
		}
	case "enter", "a":
		if m.cursor >= len(products) {
			return m, nil
		}
		p := products[m.cursor]
		if err := m.cart.Store().AddToCart(context.Background(), m.cartID, p, 1); err != nil {
			m.fail("cart_add_failed", err)
			return m, nil
		}
		m.status = "Added " + p.Title + " to cart."
	}
	return m, nil
}

func (m *Model) handleCartKey(key string) {
	ctx := context.Background()
	items, err := m.cart.Store().Items(ctx, m.cartID)
	if err != nil {
		m.fail("cart_read_failed", err)
		return
	}
	lines := m.cart.BuildSidebar(ctx, items).Items

	switch key {
	case "esc":
		m.requestClose()
		return
	case "up", "k":
		if m.side.line > 0 {
			m.side.line--
		}
		return
	case "down", "j":
		if m.side.line < len(lines)-1 {
			m.side.line++
		}
		return
	case "o":
		r, err := m.cart.Store().Checkout(ctx, m.cartID)
		if errors.Is(err, cart.ErrCartEmpty) {
			m.status = "Your cart is empty."
			return
		}
		if err != nil {
			m.fail("checkout_failed", err)
			return
		}
		m.log.Info("checkout_completed", slog.String("cart_id", m.cartID), slog.String("order_id", r.OrderID))
		m.status = "Order " + r.OrderID + " placed. Total " + view.Money(r.Subtotal, view.DefaultCurrency) + "."
		m.side.line = 0
		return
	}

	if m.side.line >= len(lines) {
		return
	}
	id := catalog.ID(lines[m.side.line].ProductID)

	switch {
	case key == "x":
		if err := m.cart.Store().RemoveFromCart(ctx, m.cartID, id); err != nil {
			m.fail("cart_remove_failed", err)
			return
		}
		if m.side.line > 0 && m.side.line >= len(lines)-1 {
			m.side.line--
		}
		m.status = "Removed from cart."
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		qty := int(key[0] - '0')
		if qty == 0 {
			qty = cart.MaxQty
		}
		if err := m.cart.Store().UpdateItemQuantity(ctx, m.cartID, id, qty); err != nil {
			m.fail("cart_update_failed", err)
		}
	}
}

func (m *Model) openCart() {
	if m.side.open {
		return
	}
	s := m.side
	s.open = true
	s.line = 0
	s.watcher = dismiss.Mount(m.bus, sidebarKey, s.sidebarRect, s.closeSidebar)
}

func (m *Model) requestClose() {
	if m.side.watcher != nil {
		m.side.watcher.RequestClose()
	}
}

func (m *Model) closeCart() { m.side.closeSidebar() }

func (m *Model) fail(msg string, err error) {
	m.log.Error(msg, slog.String("cart_id", m.cartID), slog.Any("err", err))
	m.status = "Something went wrong."
}

func (m Model) CartOpen() bool { return m.side.open }
