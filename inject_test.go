package dotfield

import "testing"

func TestInjectMove(t *testing.T) {
	w := NewWindow()
	var got []PointerEvent
	w.OnPointerMove(func(e PointerEvent) { got = append(got, e) })

	w.InjectMove(10, 20)
	w.InjectMove(30, 40)
	if w.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", w.Pending())
	}
	if len(got) != 0 {
		t.Fatal("injected events should not dispatch before Tick")
	}

	w.Tick(1.0 / 60)
	if w.Pending() != 1 || len(got) != 1 {
		t.Fatalf("after 1 tick: pending %d, dispatched %d; want 1, 1", w.Pending(), len(got))
	}
	if got[0].ClientX != 10 || got[0].ClientY != 20 {
		t.Errorf("first event = %v, want {10 20}", got[0])
	}

	w.Tick(1.0 / 60)
	w.Tick(1.0 / 60)
	if w.Pending() != 0 || len(got) != 2 {
		t.Errorf("after 3 ticks: pending %d, dispatched %d; want 0, 2", w.Pending(), len(got))
	}
}

func TestInjectSweep(t *testing.T) {
	w := NewWindow()
	w.InjectSweep(0, 0, 100, 50, 4)
	if w.Pending() != 4 {
		t.Fatalf("Pending() = %d, want 4", w.Pending())
	}
	last := w.injectQueue[len(w.injectQueue)-1]
	if last.ClientX != 100 || last.ClientY != 50 {
		t.Errorf("last = %v, want {100 50}", last)
	}
	first := w.injectQueue[0]
	if !approxEqual(first.ClientX, 25, epsilon) || !approxEqual(first.ClientY, 12.5, epsilon) {
		t.Errorf("first = %v, want {25 12.5}", first)
	}
}

func TestInjectSweepMinFrames(t *testing.T) {
	w := NewWindow()
	w.InjectSweep(0, 0, 10, 10, 0)
	if w.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", w.Pending())
	}
}
