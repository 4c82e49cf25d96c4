package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/http/flash"
	"github.com/theUncluded/430Frontend/internal/http/middleware"
	"github.com/theUncluded/430Frontend/internal/http/render"
	"github.com/theUncluded/430Frontend/internal/http/validation"
	"github.com/theUncluded/430Frontend/internal/modules/cart"
	"github.com/theUncluded/430Frontend/internal/modules/catalog"
	"github.com/theUncluded/430Frontend/internal/shared/apperr"
	"github.com/theUncluded/430Frontend/pkg/view"
)

// CartHandler handles cart mutations. The cart itself lives in the store;
// every action redirects back to the page that shows it.
type CartHandler struct {
	Flash   *flash.Codec
	Catalog *catalog.Loader
	CartSvc *cart.Service
	Log     *slog.Logger
}

func NewCartHandler(fl *flash.Codec, loader *catalog.Loader, svc *cart.Service, log *slog.Logger) *CartHandler {
	return &CartHandler{Flash: fl, Catalog: loader, CartSvc: svc, Log: log}
}

type updateQtyInput struct {
	ProductID string `form:"product_id" json:"product_id" binding:"required"`
	Quantity  int    `form:"quantity" json:"quantity" binding:"required,min=1,max=10"`
}

type apiQtyInput struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}

// Add handles POST /cart/add
func (h *CartHandler) Add(c *gin.Context) {
	id := productIDFrom(c)
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "No product selected.")
		return
	}

	p, ok := h.Catalog.Lookup(id)
	if !ok {
		msg := "That product is not available."
		if h.Catalog.State().Loading {
			msg = "Products are still loading, try again in a moment."
		}
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashWarning, msg)
		return
	}

	cartID := middleware.GetCartID(c)
	if err := h.CartSvc.Store().AddToCart(c.Request.Context(), cartID, p, 1); err != nil {
		h.logErr(c, "cart_add_failed", err, slog.String("product_id", id.String()))
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Could not add to cart.")
		return
	}
	h.Log.LogAttrs(c.Request.Context(), slog.LevelInfo, "cart_item_added",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("cart_id", cartID),
		slog.String("product_id", id.String()),
	)

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart.")
}

// Update handles POST /cart/items/update
func (h *CartHandler) Update(c *gin.Context) {
	var in updateQtyInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, errs.First("quantity", "product_id"))
		return
	}

	err := h.CartSvc.Store().UpdateItemQuantity(c.Request.Context(), middleware.GetCartID(c), catalog.ID(in.ProductID), in.Quantity)
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "That item is no longer in your cart.")
	case errors.Is(err, cart.ErrInvalidQuantity):
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Quantity must be between 1 and 10.")
	case err != nil:
		h.logErr(c, "cart_update_failed", err, slog.String("product_id", in.ProductID))
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not update quantity.")
	default:
		c.Redirect(http.StatusFound, "/cart")
	}
}

// Remove handles POST /cart/items/remove
func (h *CartHandler) Remove(c *gin.Context) {
	id := productIDFrom(c)
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "No product selected.")
		return
	}

	err := h.CartSvc.Store().RemoveFromCart(c.Request.Context(), middleware.GetCartID(c), id)
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "That item is no longer in your cart.")
	case err != nil:
		h.logErr(c, "cart_remove_failed", err, slog.String("product_id", id.String()))
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not remove the item.")
	default:
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Removed from cart.")
	}
}

// Checkout handles POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	cartID := middleware.GetCartID(c)
	r, err := h.CartSvc.Store().Checkout(c.Request.Context(), cartID)
	switch {
	case errors.Is(err, cart.ErrCartEmpty):
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Your cart is empty.")
		return
	case err != nil:
		h.logErr(c, "checkout_failed", err)
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Checkout failed.")
		return
	}

	h.Log.LogAttrs(c.Request.Context(), slog.LevelInfo, "checkout_completed",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("cart_id", cartID),
		slog.String("order_id", r.OrderID),
		slog.String("subtotal", r.Subtotal.StringFixed(2)),
	)
	msg := "Order " + r.OrderID + " placed. Total " + view.Money(r.Subtotal, view.DefaultCurrency) + "."
	render.RedirectWithFlash(c, h.Flash, "/", view.FlashSuccess, msg)
}

// Show handles GET /api/cart
func (h *CartHandler) Show(c *gin.Context) {
	vm, err := h.CartSvc.BuildSidebarForCart(c.Request.Context(), middleware.GetCartID(c))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, vm)
}

// SetQuantity handles PUT /api/cart/items/:id
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var in apiQtyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid quantity.", validation.FromBindError(err, &in)))
		return
	}

	err := h.CartSvc.Store().UpdateItemQuantity(c.Request.Context(), middleware.GetCartID(c), catalog.ID(c.Param("id")), in.Quantity)
	if err != nil {
		middleware.Fail(c, cartAPIError(err))
		return
	}
	h.Show(c)
}

// Delete handles DELETE /api/cart/items/:id
func (h *CartHandler) Delete(c *gin.Context) {
	err := h.CartSvc.Store().RemoveFromCart(c.Request.Context(), middleware.GetCartID(c), catalog.ID(c.Param("id")))
	if err != nil {
		middleware.Fail(c, cartAPIError(err))
		return
	}
	h.Show(c)
}

// CheckoutAPI handles POST /api/cart/checkout
func (h *CartHandler) CheckoutAPI(c *gin.Context) {
	cartID := middleware.GetCartID(c)
	r, err := h.CartSvc.Store().Checkout(c.Request.Context(), cartID)
	if err != nil {
		middleware.Fail(c, cartAPIError(err))
		return
	}
	h.Log.LogAttrs(c.Request.Context(), slog.LevelInfo, "checkout_completed",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("cart_id", cartID),
		slog.String("order_id", r.OrderID),
	)
	c.JSON(http.StatusCreated, cart.ReceiptView(r))
}

func cartAPIError(err error) error {
	switch {
	case errors.Is(err, cart.ErrItemNotFound):
		return apperr.NotFoundErr("Item not in cart.")
	case errors.Is(err, cart.ErrInvalidQuantity):
		return apperr.InvalidErr("Quantity must be between 1 and 10.", nil)
	case errors.Is(err, cart.ErrCartEmpty):
		return apperr.ConflictErr("Cart is empty.")
	default:
		return apperr.Wrap(err)
	}
}

func (h *CartHandler) logErr(c *gin.Context, msg string, err error, attrs ...slog.Attr) {
	attrs = append([]slog.Attr{
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("cart_id", middleware.GetCartID(c)),
		slog.Any("err", err),
	}, attrs...)
	h.Log.LogAttrs(c.Request.Context(), slog.LevelError, msg, attrs...)
}
