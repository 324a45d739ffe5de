package dotfield

// InjectMove queues a synthetic pointer move at the given client coordinates.
// The event is consumed on the next Tick, identical to a real move.
func (w *Window) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, PointerEvent{ClientX: x, ClientY: y})
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY),
// linearly interpolated over frames moves. The final move lands exactly on
// (toX, toY). Minimum frames is 1.
func (w *Window) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		w.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending reports the number of injected events not yet consumed.
func (w *Window) Pending() int {
	return len(w.injectQueue)
}

// processInjected pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed.
func (w *Window) processInjected() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.DispatchPointerMove(evt.ClientX, evt.ClientY)
	return true
}
