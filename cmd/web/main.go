package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/theUncluded/430Frontend/internal/assets"
	"github.com/theUncluded/430Frontend/internal/config"
	apphttp "github.com/theUncluded/430Frontend/internal/http"
	"github.com/theUncluded/430Frontend/internal/http/cartcookie"
	"github.com/theUncluded/430Frontend/internal/http/flash"
	"github.com/theUncluded/430Frontend/internal/logger"
	"github.com/theUncluded/430Frontend/internal/metrics"
	"github.com/theUncluded/430Frontend/internal/modules/cart"
	"github.com/theUncluded/430Frontend/internal/modules/catalog"
	"github.com/theUncluded/430Frontend/internal/shutdown"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Service: "storefront-web",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server_exit", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, "web")

	loader := catalog.NewLoader(catalog.NewClient(cfg.CatalogURL, cfg.CatalogTimeout), log, m)
	loader.Start(ctx)
	defer loader.Stop()

	res, err := assets.New(ctx, cfg.Assets)
	if err != nil {
		return err
	}
	log.Info("assets_ready", slog.String("driver", res.Driver))

	secret := []byte(cfg.CookieSecret)
	if len(secret) == 0 {
		if cfg.IsProd() {
			return errors.New("COOKIE_SECRET is required in production")
		}
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return err
		}
		log.Warn("cookie_secret_generated", slog.String("hint", "set COOKIE_SECRET to keep carts across restarts"))
	}

	store := cart.NewMemoryStore()
	r := apphttp.NewRouter(apphttp.Deps{
		Logger:     log,
		Catalog:    loader,
		CartSvc:    cart.NewService(store, log, m),
		Assets:     res.Store,
		Metrics:    m,
		Gatherer:   reg,
		CartCookie: cartcookie.New(secret, cfg.CartCookieName, cfg.CookieSecure),
		Flash:      flash.NewCodec(secret, cfg.FlashCookieName, cfg.CookieSecure),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http_listen", slog.String("addr", cfg.HTTPAddr), slog.String("catalog", cfg.CatalogURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("http_shutdown")
		loader.Stop()

		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	return g.Wait()
}
