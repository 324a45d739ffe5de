package dotfield

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Element is a host box that components mount into. Its size is the content
// box reported to size observers; its children are the surfaces appended by
// renderers.
type Element struct {
	width, height int
	children      []*Surface
}

// NewElement creates an element with the given content size. Negative
// dimensions are clamped to zero.
func NewElement(width, height int) *Element {
	e := &Element{}
	e.SetSize(width, height)
	return e
}

// SetSize updates the content box. Negative dimensions are clamped to zero.
// Hosts follow this with Window.DispatchResize.
func (e *Element) SetSize(width, height int) {
	e.width = max(width, 0)
	e.height = max(height, 0)
}

// Size returns the content box dimensions.
func (e *Element) Size() (width, height int) {
	return e.width, e.height
}

// AppendChild attaches s as the last child. If s is attached elsewhere it is
// detached from that element first.
func (e *Element) AppendChild(s *Surface) {
	if s == nil {
		panic("dotfield: cannot append nil surface")
	}
	if s.parent != nil {
		s.parent.RemoveChild(s)
	}
	s.parent = e
	e.children = append(e.children, s)
}

// RemoveChild detaches s. Panics if s is not a child of e.
func (e *Element) RemoveChild(s *Surface) {
	if s.parent != e {
		panic("dotfield: surface's parent is not this element")
	}
	for i, c := range e.children {
		if c == s {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			break
		}
	}
	s.parent = nil
}

// Contains reports whether s is a child of e.
func (e *Element) Contains(s *Surface) bool {
	return s != nil && s.parent == e
}

// Children returns the attached surfaces. The returned slice MUST NOT be mutated.
func (e *Element) Children() []*Surface {
	return e.children
}

// Draw composites every attached surface onto dst at the origin.
func (e *Element) Draw(dst *ebiten.Image) {
	for _, s := range e.children {
		if s.img == nil {
			continue
		}
		dst.DrawImage(s.img, nil)
	}
}

// Surface is a renderer's output image. A zero-sized surface holds no image.
type Surface struct {
	img           *ebiten.Image
	width, height int
	parent        *Element
}

// newSurface creates a detached surface of the given size.
func newSurface(width, height int) *Surface {
	s := &Surface{}
	s.setSize(width, height)
	return s
}

// setSize reallocates the backing image when the size changes.
func (s *Surface) setSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.img != nil && width == s.width && height == s.height {
		return
	}
	s.release()
	s.width, s.height = width, height
	if width > 0 && height > 0 {
		s.img = ebiten.NewImage(width, height)
	}
}

// release frees the backing image. The size is kept.
func (s *Surface) release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Image returns the backing image, or nil for a zero-sized or released surface.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Parent returns the element s is attached to, or nil.
func (s *Surface) Parent() *Element {
	return s.parent
}
