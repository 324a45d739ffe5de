package dotfield

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults used for pointer smoothing.
const (
	DefaultStiffness = 100
	DefaultDamping   = 20
	DefaultMass      = 1
	DefaultRestDelta = 0.5
	DefaultRestSpeed = 2
)

// SpringConfig describes a damped spring. Stiffness, Damping and Mass are
// physical parameters; RestDelta and RestSpeed decide when an animation
// settles (distance to target and speed in units per second).
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	RestDelta float64
	RestSpeed float64
}

// DefaultSpringConfig returns stiffness 100, damping 20, mass 1: a
// critically damped spring.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
		Mass:      DefaultMass,
		RestDelta: DefaultRestDelta,
		RestSpeed: DefaultRestSpeed,
	}
}

// AngularFrequency returns sqrt(stiffness / mass).
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.mass())
}

// DampingRatio returns damping / (2 * sqrt(stiffness * mass)). 1 is
// critically damped; below 1 oscillates.
func (c SpringConfig) DampingRatio() float64 {
	k := c.Stiffness * c.mass()
	if k <= 0 {
		return 1
	}
	return c.Damping / (2 * math.Sqrt(k))
}

func (c SpringConfig) mass() float64 {
	if c.Mass <= 0 {
		return DefaultMass
	}
	return c.Mass
}

// MotionValue is a scalar that follows its target through a damped spring,
// advanced by the window's frame ticks. Subscribers are notified of every
// change to the current value.
type MotionValue struct {
	win *Window
	cfg SpringConfig

	spring   harmonica.Spring
	springDt float64

	current  float64
	velocity float64
	target   float64

	frame     CallbackHandle
	animating bool
	change    listeners[float64]
}

// NewSpringValue creates a motion value resting at initial.
func NewSpringValue(win *Window, initial float64, cfg SpringConfig) *MotionValue {
	return &MotionValue{
		win:     win,
		cfg:     cfg,
		current: initial,
		target:  initial,
	}
}

// Get returns the current value.
func (v *MotionValue) Get() float64 {
	return v.current
}

// Target returns the value the spring is heading toward.
func (v *MotionValue) Target() float64 {
	return v.target
}

// Velocity returns the current velocity in units per second.
func (v *MotionValue) Velocity() float64 {
	return v.velocity
}

// IsAnimating reports whether the spring is subscribed to frame ticks.
func (v *MotionValue) IsAnimating() bool {
	return v.animating
}

// OnChange registers a callback invoked with every new current value.
func (v *MotionValue) OnChange(fn func(float64)) CallbackHandle {
	return v.change.add(fn)
}

// Set retargets the spring. Velocity is preserved so retargeting mid-flight
// stays smooth.
func (v *MotionValue) Set(target float64) {
	v.target = target
	if v.current == target && v.velocity == 0 {
		return
	}
	if !v.animating {
		v.animating = true
		v.frame = v.win.OnFrame(v.step)
	}
}

// Jump sets the value immediately, without animation, and notifies subscribers.
func (v *MotionValue) Jump(value float64) {
	v.Stop()
	v.target = value
	v.velocity = 0
	v.setCurrent(value)
}

// Stop halts the animation at the current value.
func (v *MotionValue) Stop() {
	if !v.animating {
		return
	}
	v.animating = false
	v.velocity = 0
	v.frame.Remove()
	v.frame = CallbackHandle{}
}

// step advances the spring by dt seconds.
func (v *MotionValue) step(dt float64) {
	if dt <= 0 {
		return
	}
	if dt != v.springDt {
		v.spring = harmonica.NewSpring(dt, v.cfg.AngularFrequency(), v.cfg.DampingRatio())
		v.springDt = dt
	}
	pos, vel := v.spring.Update(v.current, v.velocity, v.target)
	v.velocity = vel

	if math.Abs(v.target-pos) <= v.cfg.RestDelta && math.Abs(vel) <= v.cfg.RestSpeed {
		v.Stop()
		v.setCurrent(v.target)
		return
	}
	v.setCurrent(pos)
}

func (v *MotionValue) setCurrent(value float64) {
	if value == v.current {
		return
	}
	v.current = value
	v.change.emit(value)
}
