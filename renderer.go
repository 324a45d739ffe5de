package dotfield

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ShadowMapType selects a shadow filtering technique.
type ShadowMapType uint8

const (
	ShadowMapBasic   ShadowMapType = iota // unfiltered
	ShadowMapPCF                          // percentage-closer filtering
	ShadowMapPCFSoft                      // softened PCF
)

// ShadowMapOptions configures shadow support. No built-in material casts
// shadows; the options are carried so scenes share one renderer baseline.
type ShadowMapOptions struct {
	Enabled bool
	Type    ShadowMapType
}

// RendererOptions configures a Renderer.
type RendererOptions struct {
	// Antialias enables edge antialiasing on shader draws.
	Antialias bool
	// Alpha keeps the surface transparent between draws; otherwise each
	// pass starts from ClearColor.
	Alpha bool
	// ClearColor fills the surface before each pass when Alpha is false.
	ClearColor Color
	ShadowMap  ShadowMapOptions
	// ColorSpace is the output color space hosts request from Ebitengine.
	ColorSpace ebiten.ColorSpace
}

// DefaultRendererOptions returns antialiased, transparent output with soft
// shadows enabled and sRGB color.
func DefaultRendererOptions() RendererOptions {
	return RendererOptions{
		Antialias:  true,
		Alpha:      true,
		ClearColor: Color{0, 0, 0, 1},
		ShadowMap:  ShadowMapOptions{Enabled: true, Type: ShadowMapPCFSoft},
		ColorSpace: ebiten.ColorSpaceSRGB,
	}
}

// RenderInfo counts renderer activity since creation.
type RenderInfo struct {
	// Frames is the number of Render calls.
	Frames int
	// DrawCalls is the number of meshes submitted across all frames.
	DrawCalls int
}

// Renderer draws a scene graph through a camera into its Surface.
type Renderer struct {
	opts    RendererOptions
	surface *Surface
	info    RenderInfo

	shaderOp ebiten.DrawTrianglesShaderOptions
	warned   map[*ShaderMaterial]bool
	disposed bool
}

// NewRenderer creates a renderer with a width x height surface.
func NewRenderer(width, height int, opts RendererOptions) *Renderer {
	return &Renderer{
		opts:    opts,
		surface: newSurface(width, height),
		warned:  make(map[*ShaderMaterial]bool),
	}
}

// Options returns the options the renderer was created with.
func (r *Renderer) Options() RendererOptions {
	return r.opts
}

// Surface returns the output surface.
func (r *Renderer) Surface() *Surface {
	return r.surface
}

// Info returns activity counters.
func (r *Renderer) Info() RenderInfo {
	return r.info
}

// SetSize resizes the output surface.
func (r *Renderer) SetSize(width, height int) {
	if r.disposed {
		return
	}
	r.surface.setSize(width, height)
}

// Clear resets the surface to its idle state.
func (r *Renderer) Clear() {
	img := r.surface.img
	if img == nil {
		return
	}
	if r.opts.Alpha {
		img.Clear()
		return
	}
	img.Fill(r.opts.ClearColor.toRGBA())
}

// Render clears the surface and draws every visible mesh under root through
// cam. Returns the number of meshes drawn.
func (r *Renderer) Render(root *Node, cam *OrthographicCamera) int {
	if r.disposed {
		return 0
	}
	r.info.Frames++
	if r.surface.img == nil || root == nil || cam == nil {
		return 0
	}
	r.Clear()

	viewProj := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	drawn := 0
	root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if n.Type == NodeTypeMesh && r.drawMesh(n, viewProj) {
			drawn++
		}
		return true
	})
	r.info.DrawCalls += drawn
	return drawn
}

// Dispose releases the surface image. Further calls are no-ops.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.surface.release()
	clear(r.warned)
}
