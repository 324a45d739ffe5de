package dotfield

// MouseSetter receives smoothed pointer coordinates. *Animator implements it.
type MouseSetter interface {
	SetMouse(x, y float64)
}

// PointerBridge feeds pointer movement through two spring-smoothed axes into
// a MouseSetter. Each axis forwards on its own change, pairing its new value
// with the other axis's current (not target) value.
type PointerBridge struct {
	handles []CallbackHandle
}

// BindPointer installs one pointer-move listener on win and a change
// subscription on each axis. With a nil target nothing is installed and
// pointer movement is dropped.
func BindPointer(win *Window, target MouseSetter, mouseX, mouseY *MotionValue) *PointerBridge {
	b := &PointerBridge{}
	if target == nil {
		return b
	}
	b.handles = append(b.handles,
		win.OnPointerMove(func(e PointerEvent) {
			mouseX.Set(e.ClientX)
			mouseY.Set(e.ClientY)
		}),
		mouseX.OnChange(func(x float64) {
			target.SetMouse(x, mouseY.Get())
		}),
		mouseY.OnChange(func(y float64) {
			target.SetMouse(mouseX.Get(), y)
		}),
	)
	return b
}

// Active reports whether the bridge holds listeners.
func (b *PointerBridge) Active() bool {
	return len(b.handles) > 0
}

// Close removes every listener the bridge installed. Safe to call more than once.
func (b *PointerBridge) Close() {
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
}
