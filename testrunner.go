package dotfield

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action     string  `json:"action"`
	Label      string  `json:"label,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	FromX      float64 `json:"fromX,omitempty"`
	FromY      float64 `json:"fromY,omitempty"`
	ToX        float64 `json:"toX,omitempty"`
	ToY        float64 `json:"toY,omitempty"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Duration   float32 `json:"duration,omitempty"`
	Frames     int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer moves, resizes, dot-size changes
// and screenshots across frames for automated visual runs.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a runner ready to be stepped
// once per frame.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "move", "sweep", "resize", "dotsize", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Hosts call it before Window.Tick.
// el is the element bg is mounted in; resize steps change its size and
// dispatch a window resize.
func (r *ScriptRunner) Step(bg *Background, win *Window, el *Element) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if win.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		win.InjectMove(st.X, st.Y)
	case "sweep":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		win.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "resize":
		if el != nil {
			el.SetSize(st.Width, st.Height)
			win.DispatchResize()
		}
	case "dotsize":
		if a := bg.Animator(); a != nil {
			if st.Duration > 0 {
				a.TweenDotSize(st.Multiplier, st.Duration, nil)
			} else {
				a.SetDotSize(st.Multiplier)
			}
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if s := bg.Scene(); s != nil {
			s.Screenshot(st.Label)
			s.Refresh()
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && win.Pending() == 0 {
		r.done = true
	}
}
