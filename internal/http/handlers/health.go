package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/modules/catalog"
)

// Health handles GET /healthz. The process is healthy while the catalog is
// still loading; a failed catalog load still serves an empty shop.
func Health(loader *catalog.Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := loader.State()
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"loading":  st.Loading,
			"products": len(st.Products),
		})
	}
}
