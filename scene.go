package dotfield

import (
	"time"
)

// Scene owns the render target, scene graph and camera for exactly one
// container element. Rendering is explicit: nothing is drawn until Refresh.
type Scene struct {
	root      *Node
	renderer  *Renderer
	camera    *OrthographicCamera
	container *Element

	debug    bool
	disposed bool

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene builds a scene sized to container's current box, with an
// orthographic camera at depth 1, and appends the renderer's surface to
// container. Panics if container is nil.
func NewScene(container *Element, opts RendererOptions) *Scene {
	if container == nil {
		panic("dotfield: scene requires a container")
	}
	w, h := container.Size()
	s := &Scene{
		root:          NewGroup("scene"),
		renderer:      NewRenderer(w, h, opts),
		camera:        newViewportCamera(w, h),
		container:     container,
		ScreenshotDir: "screenshots",
	}
	s.root.AddChild(s.camera.Node())
	container.AppendChild(s.renderer.Surface())
	Logger().Info("scene created", "width", w, "height", h)
	return s
}

// Root returns the scene graph root.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *OrthographicCamera {
	return s.camera
}

// Renderer returns the scene's renderer.
func (s *Scene) Renderer() *Renderer {
	return s.renderer
}

// Surface returns the renderer's output surface.
func (s *Scene) Surface() *Surface {
	return s.renderer.Surface()
}

// Container returns the element the scene was created for.
func (s *Scene) Container() *Element {
	return s.container
}

// SetResolution resizes the surface and recomputes the camera bounds to
// (-w/2, w/2, h/2, -h/2). Call before Refresh for new dimensions to show.
func (s *Scene) SetResolution(width, height int) {
	if s.disposed {
		return
	}
	s.renderer.SetSize(width, height)
	s.camera.SetViewport(width, height)
}

// Refresh renders the scene graph through the camera once.
func (s *Scene) Refresh() {
	if s.disposed {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	drawn := s.renderer.Render(s.root, s.camera)

	if s.debug {
		s.debugLog(debugStats{
			renderTime: time.Since(t0),
			drawCalls:  drawn,
			nodeCount:  countNodes(s.root),
		})
	}
	s.flushScreenshots()
}

// Dispose clears the scene graph, detaches the surface if it is still
// attached to the container, and releases renderer resources. Safe to call
// more than once.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.root.RemoveChildren()
	surface := s.renderer.Surface()
	if surface.Parent() == s.container {
		s.container.RemoveChild(surface)
	}
	s.renderer.Dispose()
	s.screenshotQueue = s.screenshotQueue[:0]
	Logger().Info("scene disposed")
}

// Disposed reports whether Dispose has been called.
func (s *Scene) Disposed() bool {
	return s.disposed
}

// SetDebugMode enables or disables per-refresh timing logs at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
