package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/shared/apperr"
)

// Recovery turns a handler panic into a logged 500. The response itself is
// written by ErrorHandler, which must sit outside this middleware.
func Recovery(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if clientGone(rec) {
				c.Abort()
				return
			}

			l.LogAttrs(c.Request.Context(), slog.LevelError, "panic_recovered",
				slog.String("request_id", GetRequestID(c)),
				slog.String("route", c.FullPath()),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
			Fail(c, apperr.Wrap(fmt.Errorf("panic: %v", rec)))
		}()
		c.Next()
	}
}

// clientGone reports panics caused by writing to a closed connection.
func clientGone(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if errors.As(opErr, &sysErr) {
		return errors.Is(sysErr.Err, syscall.EPIPE) || errors.Is(sysErr.Err, syscall.ECONNRESET)
	}
	return false
}
