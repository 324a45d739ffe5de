package dotfield

import (
	"github.com/go-gl/mathgl/mgl64"
)

// drawMesh submits one mesh. Meshes with missing, disposed or uncompilable
// resources are skipped; a compile failure is logged once per material.
func (r *Renderer) drawMesh(n *Node, viewProj mgl64.Mat4) bool {
	g, m := n.Geometry, n.Material
	if g == nil || m == nil || g.IsDisposed() || m.IsDisposed() {
		return false
	}
	if len(g.Positions) == 0 || len(g.Indices) == 0 {
		return false
	}
	shader, err := m.Compile()
	if err != nil {
		if !r.warned[m] {
			r.warned[m] = true
			Logger().Warn("mesh skipped", "node", n.Name, "err", err)
		}
		return false
	}

	mvp := viewProj.Mul4(n.WorldMatrix())
	w, h := r.surface.Size()
	verts := projectVertices(g, mvp, w, h)

	op := &r.shaderOp
	op.Uniforms = m.Uniforms()
	op.Blend = m.Blend().EbitenBlend()
	op.AntiAlias = r.opts.Antialias
	r.surface.img.DrawTrianglesShader(verts, g.Indices, shader, op)
	return true
}
