package dotfield

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func listenerCounts(win *Window) [3]int {
	return [3]int{
		win.ListenerCount(EventResize),
		win.ListenerCount(EventPointerMove),
		win.ListenerCount(EventFrame),
	}
}

func TestBackgroundMountNil(t *testing.T) {
	win := NewWindow()
	bg := NewBackground(win, DefaultConfig())
	bg.Mount(nil)
	if bg.Mounted() || bg.Scene() != nil || bg.Animator() != nil {
		t.Error("nil container should leave the background unmounted")
	}
	if listenerCounts(win) != [3]int{} {
		t.Errorf("listeners = %v, want none", listenerCounts(win))
	}
	win.DispatchPointerMove(10, 10)
	if bg.MouseX().Target() != 0 {
		t.Error("pointer moves should be dropped while unmounted")
	}
	bg.Unmount() // must not panic
}

func TestBackgroundMountAppliesSize(t *testing.T) {
	win := NewWindow()
	el := NewElement(800, 600)
	bg := NewBackground(win, DefaultConfig())
	bg.Mount(el)

	if !bg.Mounted() {
		t.Fatal("background should be mounted")
	}
	if !el.Contains(bg.Scene().Surface()) {
		t.Error("surface should be inside the container")
	}
	a := bg.Animator()
	if x, y, _ := a.Material().Vec2(UniformResolution); x != 800 || y != 600 {
		t.Errorf("UResolution = (%v, %v), want (800, 600)", x, y)
	}
	if a.Plane().Scale != (mgl64.Vec3{800, -600, 1}) {
		t.Errorf("plane scale = %v, want (800, -600, 1)", a.Plane().Scale)
	}
	l, r, top, b := bg.Scene().Camera().Bounds()
	if l != -400 || r != 400 || top != 300 || b != -300 {
		t.Errorf("camera bounds = (%v, %v, %v, %v)", l, r, top, b)
	}
	if w, h := bg.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = (%d, %d), want (800, 600)", w, h)
	}
	if listenerCounts(win) != [3]int{1, 1, 1} {
		t.Errorf("listeners = %v, want [1 1 1]", listenerCounts(win))
	}
}

func TestBackgroundResize(t *testing.T) {
	win := NewWindow()
	el := NewElement(800, 600)
	bg := NewBackground(win, DefaultConfig())
	bg.Mount(el)
	frames := bg.Scene().Renderer().Info().Frames

	win.DispatchResize() // unchanged size
	if got := bg.Scene().Renderer().Info().Frames; got != frames {
		t.Errorf("unchanged resize refreshed: frames %d -> %d", frames, got)
	}

	el.SetSize(1024, 768)
	win.DispatchResize()
	a := bg.Animator()
	if x, y, _ := a.Material().Vec2(UniformResolution); x != 1024 || y != 768 {
		t.Errorf("UResolution = (%v, %v), want (1024, 768)", x, y)
	}
	if w, h := bg.Scene().Surface().Size(); w != 1024 || h != 768 {
		t.Errorf("surface = (%d, %d), want (1024, 768)", w, h)
	}
}

func TestBackgroundPointerConverges(t *testing.T) {
	win := NewWindow()
	bg := NewBackground(win, DefaultConfig())
	bg.Mount(NewElement(800, 600))
	a := bg.Animator()

	win.DispatchPointerMove(120, 340)
	for range 300 {
		win.Tick(frameDt)
		m := a.Mouse()
		if m.X() > 120+1e-9 || m.Y() > 340+1e-9 {
			t.Fatalf("overshoot: %v", m)
		}
	}
	if a.Mouse() != (mgl64.Vec2{120, 340}) {
		t.Errorf("Mouse() = %v, want (120, 340)", a.Mouse())
	}
	if x, y, _ := a.Material().Vec2(UniformMouse); x != 120 || y != 340 {
		t.Errorf("UMouse = (%v, %v), want (120, 340)", x, y)
	}
	// Only the dot-size frame listener remains once the springs rest.
	if win.ListenerCount(EventFrame) != 1 {
		t.Errorf("frame listeners = %d, want 1", win.ListenerCount(EventFrame))
	}
}

func TestBackgroundFrameAdvancesTween(t *testing.T) {
	win := NewWindow()
	bg := NewBackground(win, DefaultConfig())
	bg.Mount(NewElement(10, 10))
	bg.Animator().TweenDotSize(2, 0.5, nil)
	for range 60 {
		win.Tick(frameDt)
	}
	if bg.Animator().Tweening() {
		t.Error("tween should complete on frame ticks")
	}
	if d := bg.Animator().DotSize(); !approxEqual(d, 2, 0.01) {
		t.Errorf("DotSize = %v, want ~2", d)
	}
}

func TestBackgroundUnmount(t *testing.T) {
	win := NewWindow()
	el := NewElement(800, 600)
	disposed := 0
	var disposedScene *Scene
	cfg := DefaultConfig()
	cfg.OnSceneDispose = func(s *Scene) {
		disposed++
		disposedScene = s
	}
	bg := NewBackground(win, cfg)
	bg.Mount(el)
	scene := bg.Scene()
	animator := bg.Animator()

	win.DispatchPointerMove(50, 50)
	win.Tick(frameDt)

	bg.Unmount()
	if bg.Mounted() || bg.Scene() != nil || bg.Animator() != nil {
		t.Error("background should be unmounted")
	}
	if disposed != 1 || disposedScene != scene {
		t.Errorf("scene disposed %d times, want exactly once", disposed)
	}
	if !scene.Disposed() || !animator.Disposed() {
		t.Error("scene and animator should be disposed")
	}
	if len(el.Children()) != 0 {
		t.Error("surface should be removed from the container")
	}
	if listenerCounts(win) != [3]int{} {
		t.Errorf("listeners = %v, want none", listenerCounts(win))
	}
	if bg.MouseX().IsAnimating() || bg.MouseY().IsAnimating() {
		t.Error("springs should stop on unmount")
	}

	bg.Unmount()
	if disposed != 1 {
		t.Errorf("second Unmount disposed again: %d", disposed)
	}

	// Later events reach nothing.
	win.DispatchPointerMove(200, 200)
	win.DispatchResize()
	win.Tick(frameDt)
	if animator.Mouse().X() > 50 {
		t.Error("disposed animator received a pointer update")
	}
}

func TestBackgroundRemount(t *testing.T) {
	win := NewWindow()
	el := NewElement(800, 600)

	var ready []*Animator
	var atReady [][3]float64 // mouse x, resolution x, size
	cfg := DefaultConfig()
	cfg.OnAnimatorReady = func(a *Animator) {
		ready = append(ready, a)
		mx, _, _ := a.Material().Vec2(UniformMouse)
		rx, _, _ := a.Material().Vec2(UniformResolution)
		sz, _ := a.Material().Float(UniformSize)
		atReady = append(atReady, [3]float64{mx, rx, sz})
	}
	bg := NewBackground(win, cfg)

	bg.Mount(el)
	win.DispatchPointerMove(120, 340)
	for range 300 {
		win.Tick(frameDt)
	}
	bg.Animator().SetDotSize(3)
	bg.Unmount()

	bg.Mount(el)
	if len(ready) != 2 {
		t.Fatalf("animators created = %d, want 2", len(ready))
	}
	if ready[0] == ready[1] {
		t.Error("remount should create a fresh animator")
	}
	want := [3]float64{0, 1, BaseDotSize}
	if got := atReady[1]; got[0] != want[0] || got[1] != want[1] || !approxEqual(got[2], want[2], 1e-6) {
		t.Errorf("fresh uniforms = %v, want %v", got, want)
	}
	if x, y, _ := bg.Animator().Material().Vec2(UniformResolution); x != 800 || y != 600 {
		t.Errorf("UResolution after remount = (%v, %v), want (800, 600)", x, y)
	}
	if len(el.Children()) != 1 {
		t.Errorf("container children = %d, want 1", len(el.Children()))
	}
	if listenerCounts(win) != [3]int{1, 1, 1} {
		t.Errorf("listeners = %v, want [1 1 1]", listenerCounts(win))
	}
}

func TestBackgroundMountTwiceRemounts(t *testing.T) {
	win := NewWindow()
	a, b := NewElement(10, 10), NewElement(20, 20)
	bg := NewBackground(win, DefaultConfig())
	bg.Mount(a)
	bg.Mount(b)
	if len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Error("mounting elsewhere should move the surface")
	}
	if w, h := bg.Size(); w != 20 || h != 20 {
		t.Errorf("Size() = (%d, %d), want (20, 20)", w, h)
	}
	if listenerCounts(win) != [3]int{1, 1, 1} {
		t.Errorf("listeners = %v, want [1 1 1]", listenerCounts(win))
	}
}

func TestBackgroundZeroSizeContainer(t *testing.T) {
	win := NewWindow()
	el := NewElement(0, 0)
	bg := NewBackground(win, DefaultConfig())
	bg.Mount(el)
	if x, y, _ := bg.Animator().Material().Vec2(UniformResolution); x != 0 || y != 0 {
		t.Errorf("UResolution = (%v, %v), want (0, 0)", x, y)
	}
	if bg.Scene().Surface().Image() != nil {
		t.Error("zero-size surface should hold no image")
	}
	el.SetSize(64, 32)
	win.DispatchResize()
	if bg.Scene().Surface().Image() == nil {
		t.Error("surface should allocate once sized")
	}
}
