package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/theUncluded/430Frontend/internal/assets"
	"github.com/theUncluded/430Frontend/internal/http/cartcookie"
	"github.com/theUncluded/430Frontend/internal/http/flash"
	"github.com/theUncluded/430Frontend/internal/http/handlers"
	"github.com/theUncluded/430Frontend/internal/http/middleware"
	"github.com/theUncluded/430Frontend/internal/http/render"
	"github.com/theUncluded/430Frontend/internal/metrics"
	"github.com/theUncluded/430Frontend/internal/modules/cart"
	"github.com/theUncluded/430Frontend/internal/modules/catalog"
)

type Deps struct {
	Logger   *slog.Logger
	Catalog  *catalog.Loader
	CartSvc  *cart.Service
	Assets   assets.Store
	Metrics  *metrics.Storefront
	Gatherer prometheus.Gatherer

	CartCookie *cartcookie.Codec
	Flash      *flash.Codec
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	// ErrorHandler sits outside Recovery so a recovered panic still gets a response.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.ErrorHandler(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CartSession(d.CartCookie, d.CartSvc.Store(), d.Logger),
		middleware.FlashMiddleware(d.Flash),
	)

	shop := handlers.NewStorefrontHandler(d.Catalog, d.CartSvc, d.Logger)
	carts := handlers.NewCartHandler(d.Flash, d.Catalog, d.CartSvc, d.Logger)
	imgs := handlers.NewAssetsHandler(d.Assets, d.Logger)

	r.GET("/", shop.Index)
	r.GET("/cart", shop.Cart)
	r.POST("/cart/add", carts.Add)
	r.POST("/cart/items/update", carts.Update)
	r.POST("/cart/items/remove", carts.Remove)
	r.POST("/cart/checkout", carts.Checkout)

	r.GET("/Images/:file", imgs.ProductImage)
	r.GET("/images/default.jpg", imgs.Fallback)

	api := r.Group("/api")
	api.GET("/products", shop.Products)
	api.GET("/cart", carts.Show)
	api.PUT("/cart/items/:id", carts.SetQuantity)
	api.DELETE("/cart/items/:id", carts.Delete)
	api.POST("/cart/checkout", carts.CheckoutAPI)

	r.NoRoute(func(c *gin.Context) {
		if middleware.WantsJSON(c) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found.", "request_id": middleware.GetRequestID(c)})
			return
		}
		render.ErrorPage(c, http.StatusNotFound, "That page does not exist.")
	})

	r.GET("/healthz", handlers.Health(d.Catalog))
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(d.Gatherer)))
	}

	return r
}
