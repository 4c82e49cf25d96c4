package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/theUncluded/430Frontend/internal/metrics"
)

// State is what consuming views read: the product list and whether the
// initial fetch is still in flight.
type State struct {
	Products []Product `json:"products"`
	Loading  bool      `json:"loading"`
}

// Loader owns the catalog lifecycle of one mounted storefront. It fetches
// exactly once; a failed fetch is logged and leaves the list empty.
type Loader struct {
	fetcher Fetcher
	log     *slog.Logger
	metrics *metrics.Storefront

	mu       sync.RWMutex
	products []Product
	loading  bool
	alive    bool
	started  bool

	startOnce  sync.Once
	stopOnce   sync.Once
	settleOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewLoader(f Fetcher, log *slog.Logger, m *metrics.Storefront) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{
		fetcher:  f,
		log:      log,
		metrics:  m,
		products: []Product{},
		loading:  true,
		alive:    true,
		cancel:   func() {},
		done:     make(chan struct{}),
	}
}

// Start kicks off the single fetch. Calls after the first are no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		l.mu.Lock()
		if !l.alive {
			l.mu.Unlock()
			cancel()
			l.settle()
			return
		}
		l.started = true
		l.cancel = cancel
		l.mu.Unlock()

		go l.run(ctx)
	})
}

func (l *Loader) run(ctx context.Context) {
	defer l.settle()

	start := time.Now()
	products, err := l.fetcher.FetchProducts(ctx)
	elapsed := time.Since(start)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.alive {
		l.log.Debug("catalog_fetch_discarded", slog.Duration("latency", elapsed))
		return
	}

	if err != nil {
		l.metrics.ObserveCatalogFetch("error", elapsed)
		l.log.Error("catalog_fetch_failed",
			slog.Any("err", err),
			slog.Duration("latency", elapsed),
		)
	} else {
		l.metrics.ObserveCatalogFetch("ok", elapsed)
		l.log.Info("catalog_loaded",
			slog.Int("count", len(products)),
			slog.Duration("latency", elapsed),
		)
		if products == nil {
			products = []Product{}
		}
		l.products = products
	}
	l.loading = false
}

// Stop tears the loader down. A fetch still in flight is cancelled and its
// result, if any arrives, is not written.
func (l *Loader) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.alive = false
		started := l.started
		cancel := l.cancel
		l.mu.Unlock()
		cancel()
		// nothing in flight will close done for us
		if !started {
			l.settle()
		}
	})
}

func (l *Loader) settle() {
	l.settleOnce.Do(func() { close(l.done) })
}

// Done is closed once the fetch has settled, or as soon as the loader is
// stopped without a fetch in flight.
func (l *Loader) Done() <-chan struct{} { return l.done }

func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Product, len(l.products))
	copy(out, l.products)
	return State{Products: out, Loading: l.loading}
}

func (l *Loader) Lookup(id ID) (Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.products {
		if p.ProductID == id {
			return p, true
		}
	}
	return Product{}, false
}
