package dotfield

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
)

// BaseDotSize is the USize value for a dot-size multiplier of 1.
const BaseDotSize = 0.2

// AnimatorConfig configures an Animator. Zero values select the defaults.
type AnimatorConfig struct {
	// FragmentShader is a Kage program declaring UResolution, UMouse and
	// USize. Defaults to DotsShader.
	FragmentShader []byte
	// BaseDotSize is the USize value at multiplier 1. Defaults to BaseDotSize.
	BaseDotSize float64
}

// Animator owns a single full-screen shader plane in a Scene and translates
// resolution, mouse and dot-size updates into uniform and geometry changes
// followed by an immediate refresh.
type Animator struct {
	scene    *Scene
	plane    *Node
	geometry *Geometry
	material *ShaderMaterial
	baseSize float64

	resolution mgl64.Vec2
	mouse      mgl64.Vec2
	dotSize    float64 // multiplier

	sizeTween *gween.Tween
	disposed  bool
}

// NewAnimator creates the shader plane and adds it to scene's graph.
// Uniforms start at UMouse=(0,0), UResolution=(1,1), USize=base.
func NewAnimator(scene *Scene, cfg AnimatorConfig) *Animator {
	if cfg.FragmentShader == nil {
		cfg.FragmentShader = DotsShader
	}
	if cfg.BaseDotSize == 0 {
		cfg.BaseDotSize = BaseDotSize
	}
	a := &Animator{
		scene:      scene,
		baseSize:   cfg.BaseDotSize,
		resolution: mgl64.Vec2{1, 1},
		dotSize:    1,
	}
	a.createShaderPlane(cfg.FragmentShader)
	scene.Root().AddChild(a.plane)
	Logger().Info("animator created", "plane", a.plane.ID)
	return a
}

// createShaderPlane builds the unit quad, its transparent material and the
// mesh node, scaled to the current resolution.
func (a *Animator) createShaderPlane(source []byte) {
	a.geometry = NewPlaneGeometry(1, 1)
	a.material = NewShaderMaterial(source)
	a.material.Transparent = true
	a.material.DepthWrite = false
	a.material.SetVec2(UniformMouse, a.mouse.X(), a.mouse.Y())
	a.material.SetVec2(UniformResolution, a.resolution.X(), a.resolution.Y())
	a.material.SetFloat(UniformSize, a.baseSize*a.dotSize)

	a.plane = NewMesh("shader-plane", a.geometry, a.material)
	a.plane.Scale = mgl64.Vec3{a.resolution.X(), -a.resolution.Y(), 1}
}

// SetResolution resizes the scene, updates UResolution, rescales the plane
// to (w, -h, 1) and refreshes. The scene is resized first so the refresh
// sees a surface matching the uniform.
func (a *Animator) SetResolution(width, height int) {
	if a.disposed {
		return
	}
	a.scene.SetResolution(width, height)
	w, h := float64(width), float64(height)
	a.resolution = mgl64.Vec2{w, h}
	a.material.SetVec2(UniformResolution, w, h)
	a.plane.Scale = mgl64.Vec3{w, -h, 1}
	a.scene.Refresh()
}

// SetMouse updates UMouse and refreshes. No smoothing or clamping is applied.
func (a *Animator) SetMouse(x, y float64) {
	if a.disposed {
		return
	}
	a.mouse = mgl64.Vec2{x, y}
	a.material.SetVec2(UniformMouse, x, y)
	a.scene.Refresh()
}

// SetDotSize sets USize to multiplier times the base size and refreshes.
// Cancels any running dot-size tween.
func (a *Animator) SetDotSize(multiplier float64) {
	if a.disposed {
		return
	}
	a.sizeTween = nil
	a.applyDotSize(multiplier)
	a.scene.Refresh()
}

func (a *Animator) applyDotSize(multiplier float64) {
	a.dotSize = multiplier
	a.material.SetFloat(UniformSize, a.baseSize*multiplier)
}

// Resolution returns the last resolution set.
func (a *Animator) Resolution() mgl64.Vec2 {
	return a.resolution
}

// Mouse returns the last mouse position set.
func (a *Animator) Mouse() mgl64.Vec2 {
	return a.mouse
}

// DotSize returns the current dot-size multiplier.
func (a *Animator) DotSize() float64 {
	return a.dotSize
}

// Plane returns the shader plane node.
func (a *Animator) Plane() *Node {
	return a.plane
}

// Material returns the plane's shader material.
func (a *Animator) Material() *ShaderMaterial {
	return a.material
}

// Scene returns the scene the animator renders into.
func (a *Animator) Scene() *Scene {
	return a.scene
}

// Dispose releases the plane's geometry and material and removes the plane
// from the scene graph. Safe to call more than once.
func (a *Animator) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.sizeTween = nil
	a.geometry.Dispose()
	a.material.Dispose()
	a.plane.RemoveFromParent()
	Logger().Info("animator disposed", "plane", a.plane.ID)
}

// Disposed reports whether Dispose has been called.
func (a *Animator) Disposed() bool {
	return a.disposed
}
