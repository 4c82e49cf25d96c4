// Package flash carries one-shot notices across a POST-redirect-GET in a
// signed cookie.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theUncluded/430Frontend/pkg/view"
)

var (
	ErrInvalid = errors.New("invalid flash cookie")
	ErrExpired = errors.New("flash expired")
)

// read once right after the redirect
const defaultTTL = 2 * time.Minute

type Codec struct {
	secret []byte
	name   string
	secure bool
	ttl    time.Duration
	now    func() time.Time
}

type envelope struct {
	Kind    view.FlashKind `json:"k"`
	Message string         `json:"m"`
	Exp     int64          `json:"e"`
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{
		secret: secret,
		name:   cookieName,
		secure: secure,
		ttl:    defaultTTL,
		now:    time.Now,
	}
}

func (c *Codec) Name() string { return c.name }

// Encode produces base64(json).base64(hmac). The payload carries its own
// expiry so a replayed cookie goes stale even if the browser keeps it.
func (c *Codec) Encode(f view.Flash) (string, error) {
	b, err := json.Marshal(envelope{
		Kind:    f.Kind,
		Message: f.Message,
		Exp:     c.now().Add(c.ttl).Unix(),
	})
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.secret, payload), nil
}

func (c *Codec) Decode(v string) (*view.Flash, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || strings.Contains(sig, ".") {
		return nil, ErrInvalid
	}
	if !hmac.Equal([]byte(sign(c.secret, payload)), []byte(sig)) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, ErrInvalid
	}
	if !env.Kind.Valid() || strings.TrimSpace(env.Message) == "" {
		return nil, ErrInvalid
	}
	if c.now().Unix() > env.Exp {
		return nil, ErrExpired
	}
	return &view.Flash{Kind: env.Kind, Message: env.Message}, nil
}

// Set writes f to the response. Encoding errors drop the notice silently;
// a missing banner is not worth failing the redirect.
func (c *Codec) Set(ctx *gin.Context, f view.Flash) {
	val, err := c.Encode(f)
	if err != nil {
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.name, val, int(c.ttl.Seconds()), "/", "", c.secure, true)
}

// Take reads the notice off the request and clears the cookie, valid or not.
func (c *Codec) Take(ctx *gin.Context) *view.Flash {
	v, err := ctx.Cookie(c.name)
	if err != nil || v == "" {
		return nil
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.name, "", -1, "/", "", c.secure, true)

	f, err := c.Decode(v)
	if err != nil {
		return nil
	}
	return f
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
