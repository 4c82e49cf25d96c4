package dismiss

import (
	"testing"

	"github.com/theUncluded/430Frontend/internal/ui/pointer"
)

func fixed(r pointer.Rect) func() pointer.Rect {
	return func() pointer.Rect { return r }
}

func click(x, y int) pointer.Event {
	return pointer.Event{Point: pointer.Point{X: x, Y: y}}
}

func TestWatcher(t *testing.T) {
	sidebar := pointer.Rect{X: 60, Y: 0, W: 20, H: 24}

	t.Run("outside click closes exactly once", func(t *testing.T) {
		bus := pointer.NewBus()
		calls := 0
		w := Mount(bus, "cart", fixed(sidebar), func() { calls++ })
		defer w.Unmount()

		bus.Dispatch(click(10, 5))
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})

	t.Run("inside click does nothing", func(t *testing.T) {
		bus := pointer.NewBus()
		calls := 0
		w := Mount(bus, "cart", fixed(sidebar), func() { calls++ })
		defer w.Unmount()

		bus.Dispatch(click(65, 5))
		bus.Dispatch(click(60, 0))
		bus.Dispatch(click(79, 23))
		if calls != 0 {
			t.Fatalf("expected 0 calls, got %d", calls)
		}
	})

	t.Run("unmount removes listener", func(t *testing.T) {
		bus := pointer.NewBus()
		calls := 0
		w := Mount(bus, "cart", fixed(sidebar), func() { calls++ })
		w.Unmount()
		w.Unmount()

		bus.Dispatch(click(0, 0))
		if calls != 0 || bus.Len() != 0 {
			t.Fatalf("listener survived unmount: calls=%d subs=%d", calls, bus.Len())
		}
		w.RequestClose()
		if calls != 0 {
			t.Fatal("RequestClose after unmount should be a no-op")
		}
	})

	t.Run("swapping callback keeps one subscription", func(t *testing.T) {
		bus := pointer.NewBus()
		first, second := 0, 0
		w := Mount(bus, "cart", fixed(sidebar), func() { first++ })
		defer w.Unmount()

		w.SetOnClose(func() { second++ })
		bus.Dispatch(click(0, 0))
		if first != 0 || second != 1 || bus.Len() != 1 {
			t.Fatalf("first=%d second=%d subs=%d", first, second, bus.Len())
		}
	})

	t.Run("second instance displaces first", func(t *testing.T) {
		bus := pointer.NewBus()
		a, b := 0, 0
		wa := Mount(bus, "cart", fixed(sidebar), func() { a++ })
		wb := Mount(bus, "cart", fixed(sidebar), func() { b++ })

		bus.Dispatch(click(0, 0))
		if a != 0 || b != 1 {
			t.Fatalf("a=%d b=%d", a, b)
		}
		if wa.Mounted() || !wb.Mounted() {
			t.Fatalf("mounted: wa=%v wb=%v", wa.Mounted(), wb.Mounted())
		}
		wa.RequestClose()
		if a != 0 {
			t.Fatal("displaced watcher still closes")
		}

		// tearing down the displaced one must not drop the live listener
		wa.Unmount()
		bus.Dispatch(click(0, 0))
		if b != 2 {
			t.Fatalf("live listener lost: b=%d", b)
		}
		wb.Unmount()
		if bus.Len() != 0 {
			t.Fatalf("subs left: %d", bus.Len())
		}
	})

	t.Run("explicit close", func(t *testing.T) {
		bus := pointer.NewBus()
		calls := 0
		w := Mount(bus, "cart", fixed(sidebar), func() { calls++ })
		defer w.Unmount()
		w.RequestClose()
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})
}

func TestRectContains(t *testing.T) {
	r := pointer.Rect{X: 2, Y: 2, W: 3, H: 3}
	cases := []struct {
		p    pointer.Point
		want bool
	}{
		{pointer.Point{X: 2, Y: 2}, true},
		{pointer.Point{X: 4, Y: 4}, true},
		{pointer.Point{X: 5, Y: 4}, false},
		{pointer.Point{X: 1, Y: 3}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Fatalf("%+v: got %v", tc.p, got)
		}
	}
}
