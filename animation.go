package dotfield

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenDotSize animates the dot-size multiplier from its current value to
// multiplier over duration seconds. Advance it with Update; each step
// refreshes the scene. A later SetDotSize or TweenDotSize replaces it.
func (a *Animator) TweenDotSize(multiplier float64, duration float32, fn ease.TweenFunc) {
	if a.disposed {
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	a.sizeTween = gween.New(float32(a.dotSize), float32(multiplier), duration, fn)
}

// Tweening reports whether a dot-size tween is running.
func (a *Animator) Tweening() bool {
	return a.sizeTween != nil
}

// Update advances the dot-size tween by dt seconds. No-op when idle.
func (a *Animator) Update(dt float32) {
	if a.disposed || a.sizeTween == nil {
		return
	}
	val, done := a.sizeTween.Update(dt)
	a.applyDotSize(float64(val))
	if done {
		a.sizeTween = nil
	}
	a.scene.Refresh()
}
