package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/http/flash"
	"github.com/theUncluded/430Frontend/pkg/view"
)

// RedirectWithFlash is the tail of every form action: queue a notice and
// send the browser back with a 302 so a reload never resubmits.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	codec.Set(c, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
