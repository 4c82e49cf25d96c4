package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/assets"
	"github.com/theUncluded/430Frontend/internal/http/middleware"
	"github.com/theUncluded/430Frontend/internal/http/render"
	"github.com/theUncluded/430Frontend/internal/modules/cart"
	"github.com/theUncluded/430Frontend/internal/modules/catalog"
	"github.com/theUncluded/430Frontend/pkg/view"
	"github.com/theUncluded/430Frontend/templates/pages"
)

const storeTitle = "Storefront"

// StorefrontHandler renders the product grid and, on /cart, the cart sidebar.
type StorefrontHandler struct {
	Catalog *catalog.Loader
	CartSvc *cart.Service
	Log     *slog.Logger
}

func NewStorefrontHandler(loader *catalog.Loader, svc *cart.Service, log *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{Catalog: loader, CartSvc: svc, Log: log}
}

// Index handles GET /
func (h *StorefrontHandler) Index(c *gin.Context) {
	h.render(c, false)
}

// Cart handles GET /cart - same page with the sidebar open
func (h *StorefrontHandler) Cart(c *gin.Context) {
	h.render(c, true)
}

// Products handles GET /api/products
func (h *StorefrontHandler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.State())
}

func (h *StorefrontHandler) render(c *gin.Context, open bool) {
	ctx := c.Request.Context()
	cartID := middleware.GetCartID(c)

	items, err := h.CartSvc.Store().Items(ctx, cartID)
	if err != nil {
		h.Log.LogAttrs(ctx, slog.LevelError, "cart_items_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
		items = nil
	}
	inCart := make(map[catalog.ID]int, len(items))
	for _, it := range items {
		inCart[it.ProductID] = it.Quantity
	}

	st := h.Catalog.State()
	vm := view.StorefrontPage{
		Title:     storeTitle,
		Loading:   st.Loading,
		Products:  make([]view.ProductCard, 0, len(st.Products)),
		CartCount: middleware.GetCartCount(c),
		CartOpen:  open,
		Flash:     middleware.GetFlash(c),
		CloseURL:  "/",
	}
	for _, p := range st.Products {
		vm.Products = append(vm.Products, view.ProductCard{
			ID:               p.ProductID.String(),
			Title:            p.Title,
			Price:            view.Money(p.Price, view.DefaultCurrency),
			ImageURL:         assets.ImageURL(p.ProductID.String()),
			FallbackImageURL: assets.FallbackImageURL,
			InCart:           inCart[p.ProductID],
		})
	}
	if open {
		vm.Cart = h.CartSvc.BuildSidebar(ctx, items)
	}

	render.Component(c, http.StatusOK, pages.Storefront(vm))
}
