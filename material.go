package dotfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ShaderMaterial pairs a Kage fragment program with its uniform values.
// The program is compiled lazily on first use.
type ShaderMaterial struct {
	// Source is the Kage fragment program.
	Source []byte
	// Transparent enables alpha blending; otherwise output replaces the target.
	Transparent bool
	// DepthWrite is recorded for parity with depth-buffered renderers. The
	// surface has no depth buffer, so draw order alone decides occlusion.
	DepthWrite bool

	uniforms map[string]any

	shader     *ebiten.Shader
	compileErr error
	disposed   bool
}

// NewShaderMaterial creates an opaque, depth-writing material for source.
func NewShaderMaterial(source []byte) *ShaderMaterial {
	return &ShaderMaterial{
		Source:     source,
		DepthWrite: true,
		uniforms:   make(map[string]any, 4),
	}
}

// SetFloat sets a float uniform.
func (m *ShaderMaterial) SetFloat(name string, v float64) {
	m.uniforms[name] = float32(v)
}

// SetVec2 sets a vec2 uniform. The backing slice is reused across calls to
// avoid a per-update allocation.
func (m *ShaderMaterial) SetVec2(name string, x, y float64) {
	if s, ok := m.uniforms[name].([]float32); ok && len(s) == 2 {
		s[0], s[1] = float32(x), float32(y)
		return
	}
	m.uniforms[name] = []float32{float32(x), float32(y)}
}

// Float returns a float uniform and whether it is set.
func (m *ShaderMaterial) Float(name string) (float64, bool) {
	v, ok := m.uniforms[name].(float32)
	return float64(v), ok
}

// Vec2 returns a vec2 uniform and whether it is set.
func (m *ShaderMaterial) Vec2(name string) (x, y float64, ok bool) {
	s, ok := m.uniforms[name].([]float32)
	if !ok || len(s) != 2 {
		return 0, 0, false
	}
	return float64(s[0]), float64(s[1]), true
}

// Uniforms returns the uniform map passed to the shader. The returned map
// MUST NOT be mutated.
func (m *ShaderMaterial) Uniforms() map[string]any {
	return m.uniforms
}

// Blend returns the blend mode implied by Transparent.
func (m *ShaderMaterial) Blend() BlendMode {
	if m.Transparent {
		return BlendNormal
	}
	return BlendNone
}

// Compile returns the compiled shader, compiling it on first call. A failed
// compile is remembered and returned on every later call.
func (m *ShaderMaterial) Compile() (*ebiten.Shader, error) {
	if m.disposed {
		return nil, fmt.Errorf("compile shader: material disposed")
	}
	if m.shader != nil || m.compileErr != nil {
		return m.shader, m.compileErr
	}
	s, err := ebiten.NewShader(m.Source)
	if err != nil {
		m.compileErr = fmt.Errorf("compile shader: %w", err)
		return nil, m.compileErr
	}
	m.shader = s
	return s, nil
}

// Dispose releases the compiled shader. Safe to call more than once.
func (m *ShaderMaterial) Dispose() {
	if m.shader != nil {
		m.shader.Deallocate()
		m.shader = nil
	}
	m.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (m *ShaderMaterial) IsDisposed() bool {
	return m.disposed
}
