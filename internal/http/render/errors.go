package render

import (
	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/http/middleware"
	"github.com/theUncluded/430Frontend/templates/pages"
)

// ErrorPage renders the error page directly, for handlers that own the
// status (NoRoute) rather than reporting through middleware.Fail.
func ErrorPage(c *gin.Context, status int, msg string) {
	Component(c, status, pages.Error(status, msg, middleware.GetRequestID(c), middleware.GetFlash(c)))
}
