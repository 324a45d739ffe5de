package dotfield

// --- Listener registry ---

type listener[T any] struct {
	id uint32
	fn func(T)
}

// listeners is an ordered callback list. Dispatch iterates a snapshot, so a
// callback may add or remove listeners (including itself) while running.
type listeners[T any] struct {
	entries []listener[T]
	scratch []listener[T]
	nextID  uint32
}

func (l *listeners[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: l.remove}
}

func (l *listeners[T]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = listener[T]{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

func (l *listeners[T]) emit(v T) {
	if len(l.entries) == 0 {
		return
	}
	// Nested emits on the same registry get their own snapshot.
	snap := append(l.scratch[:0], l.entries...)
	l.scratch = nil
	for _, e := range snap {
		if l.has(e.id) {
			e.fn(v)
		}
	}
	clear(snap)
	l.scratch = snap[:0]
}

func (l *listeners[T]) has(id uint32) bool {
	for i := range l.entries {
		if l.entries[i].id == id {
			return true
		}
	}
	return false
}

func (l *listeners[T]) len() int {
	return len(l.entries)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	remove func(uint32)
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

// --- Window ---

// PointerEvent carries a pointer position in client (window) pixels.
type PointerEvent struct {
	ClientX float64
	ClientY float64
}

// Window is the host's global event source: resize, pointer movement and
// frame ticks. The host loop feeds it; components subscribe to it.
type Window struct {
	resize      listeners[struct{}]
	pointerMove listeners[PointerEvent]
	frame       listeners[float64]

	pointerX, pointerY float64
	pointerKnown       bool

	injectQueue []PointerEvent
}

// NewWindow creates a window with no listeners.
func NewWindow() *Window {
	return &Window{}
}

// OnResize registers a callback for window resize events.
func (w *Window) OnResize(fn func()) CallbackHandle {
	return w.resize.add(func(struct{}) { fn() })
}

// OnPointerMove registers a callback for pointer movement.
func (w *Window) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	return w.pointerMove.add(fn)
}

// OnFrame registers a callback invoked on every Tick with the frame delta in seconds.
func (w *Window) OnFrame(fn func(dt float64)) CallbackHandle {
	return w.frame.add(fn)
}

// ListenerCount reports how many callbacks are registered for the event type.
func (w *Window) ListenerCount(event EventType) int {
	switch event {
	case EventResize:
		return w.resize.len()
	case EventPointerMove:
		return w.pointerMove.len()
	case EventFrame:
		return w.frame.len()
	}
	return 0
}

// DispatchResize notifies resize listeners. Hosts call this after updating
// the sizes of their elements.
func (w *Window) DispatchResize() {
	w.resize.emit(struct{}{})
}

// DispatchPointerMove records the pointer position and notifies listeners.
func (w *Window) DispatchPointerMove(x, y float64) {
	w.pointerX, w.pointerY = x, y
	w.pointerKnown = true
	w.pointerMove.emit(PointerEvent{ClientX: x, ClientY: y})
}

// SetPointer dispatches a pointer move only when the position differs from
// the last known one. Hosts that poll the cursor every tick call this.
func (w *Window) SetPointer(x, y float64) {
	if w.pointerKnown && x == w.pointerX && y == w.pointerY {
		return
	}
	w.DispatchPointerMove(x, y)
}

// Pointer returns the last dispatched pointer position and whether any
// position has been dispatched yet.
func (w *Window) Pointer() (x, y float64, ok bool) {
	return w.pointerX, w.pointerY, w.pointerKnown
}

// Tick consumes one injected pointer event, if any, then notifies frame
// listeners with dt seconds.
func (w *Window) Tick(dt float64) {
	w.processInjected()
	w.frame.emit(dt)
}
