package dotfield

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestViewportCameraBounds(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{800, 600},
		{1, 1},
		{1920, 1080},
		{333, 777},
		{0, 0},
		{0, 480},
	}
	for _, tt := range tests {
		c := newViewportCamera(tt.w, tt.h)
		l, r, top, b := c.Bounds()
		w, h := float64(tt.w), float64(tt.h)
		if l != -w/2 || r != w/2 || top != h/2 || b != -h/2 {
			t.Errorf("%dx%d: bounds = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
				tt.w, tt.h, l, r, top, b, -w/2, w/2, h/2, -h/2)
		}
		if c.Near != 1 {
			t.Errorf("%dx%d: Near = %v, want 1", tt.w, tt.h, c.Near)
		}
	}
}

func TestCameraPositionedAtDepthOne(t *testing.T) {
	c := newViewportCamera(10, 10)
	if c.Node().Position.Z() != 1 {
		t.Errorf("camera z = %v, want 1", c.Node().Position.Z())
	}
	if c.Node().Type != NodeTypeCamera || c.Node().Camera != c {
		t.Error("camera node should carry the camera")
	}
}

func TestCameraProjectsCornersToNDC(t *testing.T) {
	c := newViewportCamera(800, 600)
	vp := c.ProjectionMatrix().Mul4(c.ViewMatrix())

	tests := []struct {
		world  mgl64.Vec3
		nx, ny float64
	}{
		{mgl64.Vec3{-400, 300, 0}, -1, 1},
		{mgl64.Vec3{400, -300, 0}, 1, -1},
		{mgl64.Vec3{0, 0, 0}, 0, 0},
	}
	for _, tt := range tests {
		p := vp.Mul4x1(tt.world.Vec4(1))
		if !approxEqual(p.X(), tt.nx, epsilon) || !approxEqual(p.Y(), tt.ny, epsilon) {
			t.Errorf("project %v = (%v, %v), want (%v, %v)", tt.world, p.X(), p.Y(), tt.nx, tt.ny)
		}
	}
}

func TestCameraSetViewportUpdatesProjection(t *testing.T) {
	c := newViewportCamera(100, 100)
	before := c.ProjectionMatrix()
	c.SetViewport(200, 100)
	after := c.ProjectionMatrix()
	if before == after {
		t.Error("projection should change with the viewport")
	}
	if !approxEqual(after.At(0, 0), 2.0/200, epsilon) {
		t.Errorf("x scale = %v, want %v", after.At(0, 0), 2.0/200)
	}
}

func TestCameraDegenerateProjectionIsZero(t *testing.T) {
	c := newViewportCamera(0, 0)
	if c.ProjectionMatrix() != (mgl64.Mat4{}) {
		t.Error("zero-size viewport should yield the zero projection")
	}
}

func TestCameraManualBoundsNeedUpdate(t *testing.T) {
	c := newViewportCamera(100, 100)
	c.Left, c.Right = -10, 10
	c.UpdateProjectionMatrix()
	if !approxEqual(c.ProjectionMatrix().At(0, 0), 2.0/20, epsilon) {
		t.Errorf("x scale = %v, want %v", c.ProjectionMatrix().At(0, 0), 2.0/20)
	}
	r := c.VisibleRect()
	if r.Width != 20 || r.Height != 100 {
		t.Errorf("VisibleRect = %v, want 20x100", r)
	}
}
