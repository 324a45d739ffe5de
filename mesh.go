package dotfield

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Geometry holds local-space vertex positions, texture coordinates and
// triangle indices.
type Geometry struct {
	Positions []mgl64.Vec3
	UVs       []mgl64.Vec2
	Indices   []uint16

	projected []ebiten.Vertex // preallocated projection buffer
	disposed  bool
}

// NewPlaneGeometry creates a width x height quad centered on the origin in
// the XY plane. UV (0,1) is the top-left corner, matching texture space.
func NewPlaneGeometry(width, height float64) *Geometry {
	hw, hh := width/2, height/2
	return &Geometry{
		Positions: []mgl64.Vec3{
			{-hw, hh, 0},
			{hw, hh, 0},
			{-hw, -hh, 0},
			{hw, -hh, 0},
		},
		UVs: []mgl64.Vec2{
			{0, 1},
			{1, 1},
			{0, 0},
			{1, 0},
		},
		Indices: []uint16{0, 2, 1, 2, 3, 1},
	}
}

// Dispose releases the projection buffer. A disposed geometry is skipped by
// the renderer. Safe to call more than once.
func (g *Geometry) Dispose() {
	g.disposed = true
	g.projected = nil
}

// IsDisposed reports whether Dispose has been called.
func (g *Geometry) IsDisposed() bool {
	return g.disposed
}

// ensureProjected grows the projection buffer to fit len(g.Positions), using
// a high-water-mark strategy (never shrinks).
func (g *Geometry) ensureProjected() []ebiten.Vertex {
	need := len(g.Positions)
	if cap(g.projected) < need {
		g.projected = make([]ebiten.Vertex, need)
	}
	g.projected = g.projected[:need]
	return g.projected
}

// projectVertices transforms g's positions by mvp into normalized device
// coordinates, then maps them onto a width x height surface (origin top-left,
// Y down). The UV of each vertex is carried in SrcX/SrcY for the shader.
func projectVertices(g *Geometry, mvp mgl64.Mat4, width, height int) []ebiten.Vertex {
	dst := g.ensureProjected()
	w, h := float64(width), float64(height)
	for i, p := range g.Positions {
		clip := mvp.Mul4x1(p.Vec4(1))
		nx, ny := clip.X(), clip.Y()
		if cw := clip.W(); cw != 0 && cw != 1 {
			nx, ny = nx/cw, ny/cw
		}
		var u, v float64
		if i < len(g.UVs) {
			u, v = g.UVs[i].X(), g.UVs[i].Y()
		}
		dst[i] = ebiten.Vertex{
			DstX:   float32((nx + 1) * 0.5 * w),
			DstY:   float32((1 - ny) * 0.5 * h),
			SrcX:   float32(u),
			SrcY:   float32(v),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return dst
}
