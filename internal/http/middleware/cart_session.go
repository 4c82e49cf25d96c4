package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/http/cartcookie"
	"github.com/theUncluded/430Frontend/internal/modules/cart"
)

const (
	ctxKeyCartID = "cart_id"
	cartCountKey = "cart_count"
)

// CartSession makes sure every request carries a signed cart id cookie and
// puts the id and the current item count into the context.
func CartSession(ck *cartcookie.Codec, store cart.Store, l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, issued := ck.Resolve(c)
		c.Set(ctxKeyCartID, id)
		if issued {
			l.LogAttrs(c.Request.Context(), slog.LevelDebug, "cart_issued",
				slog.String("request_id", GetRequestID(c)),
				slog.String("cart_id", id),
			)
		}

		n, err := store.Count(c.Request.Context(), id)
		if err != nil {
			l.LogAttrs(c.Request.Context(), slog.LevelWarn, "cart_count_failed",
				slog.String("request_id", GetRequestID(c)),
				slog.Any("err", err),
			)
		}
		c.Set(cartCountKey, n)

		c.Next()
	}
}

func GetCartID(c *gin.Context) string {
	return c.GetString(ctxKeyCartID)
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
