package dotfield

import (
	_ "embed"
)

// Uniform names declared by compatible fragment shaders. Kage only exposes
// exported (capitalized) variables as uniforms.
const (
	UniformResolution = "UResolution"
	UniformMouse      = "UMouse"
	UniformSize       = "USize"
)

// DotsShader is the default fragment program: a dot grid whose dots swell
// and brighten near the pointer.
//
//go:embed shaders/dots.kage
var DotsShader []byte
