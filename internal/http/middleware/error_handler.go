package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/internal/shared/apperr"
	"github.com/theUncluded/430Frontend/templates/pages"
)

// WantsJSON is true for the /api surface and for clients that ask for JSON.
func WantsJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/") ||
		strings.Contains(c.GetHeader("Accept"), "application/json")
}

// Fail records err for ErrorHandler and stops the chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

type errorBody struct {
	Error     string            `json:"error"`
	RequestID string            `json:"request_id"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// ErrorHandler writes the response for the last error a handler reported,
// unless the handler already wrote one. Only apperr public messages reach
// the client.
func ErrorHandler(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		body := errorBody{
			Error:     apperr.PublicMessage(err),
			RequestID: GetRequestID(c),
		}
		if ae, ok := apperr.As(err); ok {
			body.Fields = ae.Fields
		}

		level := slog.LevelWarn
		if status >= 500 {
			level = slog.LevelError
		}
		l.LogAttrs(c.Request.Context(), level, "request_failed",
			slog.String("request_id", body.RequestID),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		if WantsJSON(c) {
			c.AbortWithStatusJSON(status, body)
			return
		}

		c.Abort()
		c.Status(status)
		c.Header("Content-Type", "text/html; charset=utf-8")
		page := pages.Error(status, body.Error, body.RequestID, GetFlash(c))
		if rerr := page.Render(c.Request.Context(), c.Writer); rerr != nil {
			l.LogAttrs(c.Request.Context(), slog.LevelError, "error_page_failed",
				slog.String("request_id", body.RequestID),
				slog.Any("err", rerr),
			)
		}
	}
}
