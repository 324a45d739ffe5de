package dotfield

// Background composes a size observer, scene, animator and pointer bridge
// into a mountable component. Each stage exists only while the stage before
// it does: no scene without a container, no animator without a scene, no
// pointer listeners without an animator.
type Background struct {
	win *Window
	cfg Config

	mouseX *MotionValue
	mouseY *MotionValue

	container *Element
	size      *SizeObserver
	scene     *Scene
	animator  *Animator
	bridge    *PointerBridge
	frame     CallbackHandle

	width, height int
	measured      bool
}

// NewBackground creates an unmounted background. The pointer springs live as
// long as the background and keep their values across remounts.
func NewBackground(win *Window, cfg Config) *Background {
	return &Background{
		win:    win,
		cfg:    cfg,
		mouseX: NewSpringValue(win, 0, cfg.Spring),
		mouseY: NewSpringValue(win, 0, cfg.Spring),
	}
}

// Mount attaches the background to container. A nil container leaves the
// background unmounted. Mounting while mounted remounts onto container.
func (b *Background) Mount(container *Element) {
	if b.container != nil {
		b.Unmount()
	}
	if container == nil {
		return
	}
	b.container = container

	b.scene = NewScene(container, b.cfg.Renderer)
	b.scene.SetDebugMode(b.cfg.Debug)

	b.animator = NewAnimator(b.scene, b.cfg.Animator)
	if b.cfg.OnAnimatorReady != nil {
		b.cfg.OnAnimatorReady(b.animator)
	}

	b.bridge = BindPointer(b.win, b.animator, b.mouseX, b.mouseY)
	b.frame = b.win.OnFrame(func(dt float64) {
		b.animator.Update(float32(dt))
	})

	b.measured = false
	b.size = ObserveSize(b.win, container, b.resize)
}

// resize applies a size measurement to the animator when it differs from the
// last one, or when it is the first since mounting.
func (b *Background) resize(width, height int) {
	if b.measured && width == b.width && height == b.height {
		return
	}
	b.width, b.height = width, height
	b.measured = true
	if b.animator == nil {
		return
	}
	b.animator.SetResolution(width, height)
}

// Unmount tears the stages down in reverse order. Safe to call when not mounted.
func (b *Background) Unmount() {
	if b.container == nil {
		return
	}
	b.size.Detach()
	b.size = nil

	b.frame.Remove()
	b.frame = CallbackHandle{}

	b.bridge.Close()
	b.bridge = nil
	b.mouseX.Stop()
	b.mouseY.Stop()

	b.animator.Dispose()
	b.animator = nil

	scene := b.scene
	b.scene = nil
	scene.Dispose()
	if b.cfg.OnSceneDispose != nil {
		b.cfg.OnSceneDispose(scene)
	}

	b.container = nil
	b.width, b.height = 0, 0
	b.measured = false
}

// Mounted reports whether the background is attached to a container.
func (b *Background) Mounted() bool {
	return b.container != nil
}

// Scene returns the current scene, or nil when unmounted.
func (b *Background) Scene() *Scene {
	return b.scene
}

// Animator returns the current animator, or nil when unmounted.
func (b *Background) Animator() *Animator {
	return b.animator
}

// Size returns the last applied container size.
func (b *Background) Size() (width, height int) {
	return b.width, b.height
}

// MouseX returns the horizontal pointer spring.
func (b *Background) MouseX() *MotionValue {
	return b.mouseX
}

// MouseY returns the vertical pointer spring.
func (b *Background) MouseY() *MotionValue {
	return b.mouseY
}
