// Package dismiss turns pointer-downs outside a tracked region into a
// close request for the component that owns the region.
package dismiss

import (
	"sync"
	"sync/atomic"

	"github.com/theUncluded/430Frontend/internal/ui/pointer"
)

// Watcher is installed when a sidebar mounts and removed when it unmounts.
// It keeps no open/closed state; visibility belongs to the parent.
type Watcher struct {
	region  func() pointer.Rect
	onClose atomic.Pointer[func()]

	cancel     func()
	unmountOne sync.Once
	mounted    atomic.Bool
}

// Mount subscribes to bus under key. A second Mount with the same key
// displaces the first watcher, which then behaves as unmounted.
func Mount(bus *pointer.Bus, key string, region func() pointer.Rect, onClose func()) *Watcher {
	w := &Watcher{region: region}
	w.SetOnClose(onClose)
	w.mounted.Store(true)
	w.cancel = bus.Claim(key, w.handle, w.displaced)
	return w
}

// SetOnClose swaps the callback without touching the subscription.
func (w *Watcher) SetOnClose(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	w.onClose.Store(&fn)
}

// RequestClose is the explicit close control.
func (w *Watcher) RequestClose() {
	if !w.mounted.Load() {
		return
	}
	(*w.onClose.Load())()
}

func (w *Watcher) Unmount() {
	w.unmountOne.Do(func() {
		w.mounted.Store(false)
		w.cancel()
	})
}

// Mounted reports whether the watcher still owns its bus key.
func (w *Watcher) Mounted() bool { return w.mounted.Load() }

func (w *Watcher) displaced() { w.mounted.Store(false) }

func (w *Watcher) handle(ev pointer.Event) {
	if !w.mounted.Load() {
		return
	}
	if w.region().Contains(ev.Point) {
		return
	}
	(*w.onClose.Load())()
}
