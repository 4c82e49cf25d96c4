// Package pointer is a process-wide stream of pointer-down events with
// keyed, lifetime-scoped subscriptions.
package pointer

import (
	"sync"
)

type Point struct {
	X, Y int
}

// Rect is a half-open cell region: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

type Event struct {
	Point
}

type Handler func(Event)

type subscription struct {
	id        uint64
	h         Handler
	displaced func()
}

// Bus fans pointer-down events out to subscribers. Each key holds at most
// one subscription; subscribing under a taken key replaces the holder.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]subscription
	seq  uint64
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]subscription)}
}

// Subscribe registers h under key and returns its cancel func. Cancel is
// idempotent and never removes a later subscription under the same key.
func (b *Bus) Subscribe(key string, h Handler) (cancel func()) {
	return b.Claim(key, h, nil)
}

// Claim is Subscribe with a hook: displaced runs, outside the lock, when a
// later Claim or Subscribe takes key over.
func (b *Bus) Claim(key string, h Handler, displaced func()) (cancel func()) {
	b.mu.Lock()
	b.seq++
	id := b.seq
	prev, had := b.subs[key]
	b.subs[key] = subscription{id: id, h: h, displaced: displaced}
	b.mu.Unlock()

	if had && prev.displaced != nil {
		prev.displaced()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if cur, ok := b.subs[key]; ok && cur.id == id {
				delete(b.subs, key)
			}
		})
	}
}

// Dispatch delivers ev to every current subscriber. Handlers run outside
// the lock and may subscribe or cancel.
func (b *Bus) Dispatch(ev Event) {
	b.mu.RLock()
	hs := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		hs = append(hs, s.h)
	}
	b.mu.RUnlock()

	for _, h := range hs {
		h(ev)
	}
}

func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
