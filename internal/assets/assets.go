package assets

import (
	"context"
	"errors"
	"net/url"
	"path"
	"strings"
)

// FallbackImageURL is served when a product has no image of its own.
const FallbackImageURL = "/images/default.jpg"

const fallbackKey = "default.jpg"

var ErrNotFound = errors.New("asset not found")

// Location says how to deliver an asset: a local file path or a public URL.
type Location struct {
	Path string
	URL  string
}

type Store interface {
	Resolve(ctx context.Context, key string) (Location, error)
}

// ImageURL is the public path of a product image.
func ImageURL(productID string) string {
	return "/Images/" + url.PathEscape(productID) + ".jpg"
}

// FallbackKey is the storage key behind FallbackImageURL.
func FallbackKey() string { return fallbackKey }

// cleanKey strips any directory part and rejects extensions we do not serve.
func cleanKey(key string) (string, bool) {
	key = path.Base(strings.ReplaceAll(key, "\\", "/"))
	if key == "." || key == "/" || key == "" || strings.HasPrefix(key, ".") {
		return "", false
	}
	return key, safeExt(key) != ""
}

func safeExt(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	default:
		return ""
	}
}
