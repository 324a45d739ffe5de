package dotfield

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultCameraNear = 1
	defaultCameraFar  = 2000
	defaultCameraZ    = 1
)

// OrthographicCamera projects world space onto the render surface without
// perspective. Bounds are in world units around the camera's position.
type OrthographicCamera struct {
	Left, Right float64
	Top, Bottom float64
	Near, Far   float64

	node *Node

	projection mgl64.Mat4
	dirty      bool
}

// NewOrthographicCamera creates a camera with the given frustum, positioned
// at z=1 looking down -Z.
func NewOrthographicCamera(left, right, top, bottom, near, far float64) *OrthographicCamera {
	c := &OrthographicCamera{
		Left: left, Right: right,
		Top: top, Bottom: bottom,
		Near: near, Far: far,
		dirty: true,
	}
	c.node = &Node{Name: "camera", Type: NodeTypeCamera, Camera: c}
	nodeDefaults(c.node)
	c.node.Position = mgl64.Vec3{0, 0, defaultCameraZ}
	return c
}

// newViewportCamera creates a camera whose bounds cover a width x height
// viewport centered on the origin.
func newViewportCamera(width, height int) *OrthographicCamera {
	c := NewOrthographicCamera(0, 0, 0, 0, defaultCameraNear, defaultCameraFar)
	c.SetViewport(width, height)
	return c
}

// Node returns the scene graph node carrying this camera.
func (c *OrthographicCamera) Node() *Node {
	return c.node
}

// SetViewport sets the bounds to (-w/2, w/2, h/2, -h/2) and updates the
// projection matrix.
func (c *OrthographicCamera) SetViewport(width, height int) {
	w, h := float64(width), float64(height)
	c.Left = w / -2
	c.Right = w / 2
	c.Top = h / 2
	c.Bottom = h / -2
	c.UpdateProjectionMatrix()
}

// UpdateProjectionMatrix recomputes the projection after the bounds fields
// are modified directly.
func (c *OrthographicCamera) UpdateProjectionMatrix() {
	c.dirty = true
	c.computeProjection()
}

// computeProjection recomputes the cached projection matrix if dirty.
// A degenerate frustum (zero width or height) yields the zero matrix, which
// collapses every vertex and draws nothing.
func (c *OrthographicCamera) computeProjection() mgl64.Mat4 {
	if !c.dirty {
		return c.projection
	}
	c.dirty = false
	if c.Right == c.Left || c.Top == c.Bottom || c.Far == c.Near {
		c.projection = mgl64.Mat4{}
		return c.projection
	}
	c.projection = mgl64.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
	return c.projection
}

// ProjectionMatrix returns the current projection matrix.
func (c *OrthographicCamera) ProjectionMatrix() mgl64.Mat4 {
	return c.computeProjection()
}

// ViewMatrix returns the inverse of the camera's world transform.
func (c *OrthographicCamera) ViewMatrix() mgl64.Mat4 {
	return c.node.WorldMatrix().Inv()
}

// Bounds returns the frustum bounds in world units.
func (c *OrthographicCamera) Bounds() (left, right, top, bottom float64) {
	return c.Left, c.Right, c.Top, c.Bottom
}

// VisibleRect returns the visible world area as a Rect (Y increasing upward
// from Bottom).
func (c *OrthographicCamera) VisibleRect() Rect {
	return Rect{X: c.Left, Y: c.Bottom, Width: c.Right - c.Left, Height: c.Top - c.Bottom}
}
