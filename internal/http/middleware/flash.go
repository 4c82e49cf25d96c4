package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/http/flash"
	"github.com/theUncluded/430Frontend/pkg/view"
)

const ctxKeyFlash = "flash"

// FlashMiddleware moves the pending notice, if any, from the cookie into
// the request context. The cookie is cleared either way.
func FlashMiddleware(codec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if f := codec.Take(c); f != nil {
			c.Set(ctxKeyFlash, f)
		}
		c.Next()
	}
}

func GetFlash(c *gin.Context) *view.Flash {
	v, ok := c.Get(ctxKeyFlash)
	if !ok {
		return nil
	}
	f, _ := v.(*view.Flash)
	return f
}
