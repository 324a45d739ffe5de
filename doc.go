// Package dotfield renders a full-screen, pointer-reactive shader background
// for [Ebitengine].
//
// A [Background] is mounted into an [Element] and listens to a [Window]:
//
//	win := dotfield.NewWindow()
//	el := dotfield.NewElement(960, 600)
//	bg := dotfield.NewBackground(win, dotfield.DefaultConfig())
//	bg.Mount(el)
//	defer bg.Unmount()
//
// The host loop feeds the window and draws the element:
//
//	func (g *Game) Update() error {
//		x, y := ebiten.CursorPosition()
//		g.win.SetPointer(float64(x), float64(y))
//		g.win.Tick(1 / float64(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.el.Draw(screen) }
//
//	func (g *Game) Layout(w, h int) (int, int) {
//		g.el.SetSize(w, h)
//		g.win.DispatchResize()
//		return w, h
//	}
//
// # Pieces
//
// [SizeObserver] measures the element on mount and on every resize.
// [Scene] owns the renderer, its output [Surface] and an
// [OrthographicCamera] whose bounds track the element size. [Animator] owns
// a single unit-quad mesh scaled to (width, -height, 1) and drawn with a Kage
// fragment shader whose uniforms are UResolution, UMouse and USize.
// [PointerBridge] smooths pointer movement through two [MotionValue] springs
// (via [harmonica]) and forwards every change to the animator.
//
// Rendering is explicit: every uniform or geometry change ends in
// [Scene.Refresh]. There is no continuous render loop.
//
// # Shaders
//
// The default program is [DotsShader]. Any Kage program declaring
//
//	var UResolution vec2
//	var UMouse vec2
//	var USize float
//
// can replace it via [AnimatorConfig]. The plane's UV arrives in the
// fragment's src argument; UV times UResolution is in client pixels.
//
// [Ebitengine]: https://ebitengine.org
// [harmonica]: https://github.com/charmbracelet/harmonica
package dotfield
