package dotfield

// Config configures a Background.
type Config struct {
	// Spring smooths pointer movement on each axis.
	Spring SpringConfig
	// Renderer configures the scene's renderer.
	Renderer RendererOptions
	// Animator configures the shader plane.
	Animator AnimatorConfig
	// Debug enables per-refresh timing logs on the scene.
	Debug bool

	// OnAnimatorReady, if set, is called right after an animator is created
	// and before the first resolution is applied.
	OnAnimatorReady func(*Animator)
	// OnSceneDispose, if set, is called right after a scene is disposed.
	OnSceneDispose func(*Scene)
}

// DefaultConfig returns the pointer spring (stiffness 100, damping 20), the
// default renderer options and the embedded dot-grid shader.
func DefaultConfig() Config {
	return Config{
		Spring:   DefaultSpringConfig(),
		Renderer: DefaultRendererOptions(),
	}
}
