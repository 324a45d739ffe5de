package dotfield

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent clears to fully transparent black.
var ColorTransparent = Color{}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * a * 255)),
		G: uint8(math.Round(clamp01(c.G) * a * 255)),
		B: uint8(math.Round(clamp01(c.B) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle in the units of whatever produced it.
type Rect struct {
	X, Y, Width, Height float64
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeGroup  NodeType = iota // group node with no visual output
	NodeTypeCamera                 // carries an OrthographicCamera
	NodeTypeMesh                   // geometry drawn with a ShaderMaterial
)

// EventType identifies a kind of window event.
type EventType uint8

const (
	EventResize      EventType = iota // fires when the host window changes size
	EventPointerMove                  // fires when the pointer moves
	EventFrame                        // fires once per tick of the host loop
)

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendNone                    // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}
