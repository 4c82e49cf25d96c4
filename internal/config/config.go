package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/theUncluded/430Frontend/internal/assets"
	"github.com/theUncluded/430Frontend/internal/modules/catalog"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPAddr string

	CatalogURL     string
	CatalogTimeout time.Duration

	CartCookieName  string
	FlashCookieName string
	CookieSecret    string
	CookieSecure    bool

	Assets assets.Config
}

// Load reads .env when present (prod uses real env vars) and then the
// environment, falling back to defaults.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		CatalogURL:     getEnv("CATALOG_URL", catalog.DefaultEndpoint),
		CatalogTimeout: getEnvDuration("CATALOG_TIMEOUT", 10*time.Second),

		CartCookieName:  getEnv("CART_COOKIE_NAME", "storefront_cart"),
		FlashCookieName: getEnv("FLASH_COOKIE_NAME", "storefront_flash"),
		CookieSecret:    getEnv("COOKIE_SECRET", ""),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),

		Assets: assets.Config{
			Driver:   getEnv("STORAGE_DRIVER", "local"),
			LocalDir: getEnv("LOCAL_ASSET_DIR", "./public/images"),
			S3: assets.S3Config{
				Region:        getEnv("S3_REGION", ""),
				Bucket:        getEnv("S3_BUCKET", ""),
				Prefix:        getEnv("S3_PREFIX", "images"),
				PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
			},
		},
	}
}

func (c Config) IsProd() bool {
	return strings.EqualFold(c.AppEnv, "prod") || strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
