// Package cartcookie ties a browser to its cart through an HMAC-signed
// cart id cookie. The cart contents stay server side.
package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrInvalid = errors.New("invalid cart cookie")

const maxAge = 30 * 24 * time.Hour

type Codec struct {
	secret []byte
	name   string
	secure bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{secret: secret, name: name, secure: secure}
}

func (c *Codec) Name() string { return c.name }

// Encode produces cartID.base64(hmac(cartID)).
func (c *Codec) Encode(cartID string) string {
	return cartID + "." + c.sign(cartID)
}

// Decode only accepts a uuid id with a valid signature.
func (c *Codec) Decode(v string) (string, error) {
	id, sig, ok := strings.Cut(v, ".")
	if !ok || strings.Contains(sig, ".") {
		return "", ErrInvalid
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalid
	}
	if !hmac.Equal([]byte(c.sign(id)), []byte(sig)) {
		return "", ErrInvalid
	}
	return id, nil
}

// Resolve returns the request's cart id. Requests without a usable cookie
// get a fresh id, written back on the response; issued reports that case.
func (c *Codec) Resolve(ctx *gin.Context) (cartID string, issued bool) {
	if v, err := ctx.Cookie(c.name); err == nil && v != "" {
		if id, err := c.Decode(v); err == nil {
			return id, false
		}
	}
	id := uuid.NewString()
	c.write(ctx, c.Encode(id), int(maxAge.Seconds()))
	return id, true
}

func (c *Codec) Clear(ctx *gin.Context) {
	c.write(ctx, "", -1)
}

func (c *Codec) write(ctx *gin.Context, value string, age int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.name, value, age, "/", "", c.secure, true)
}

func (c *Codec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
