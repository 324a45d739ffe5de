package dotfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayInterval is how often the overlay text is rebuilt, in seconds.
const overlayInterval = 0.5

// StatsOverlay prints FPS, TPS and the background's pointer and dot-size
// state in the top-left corner of the screen. The text is rebuilt every
// half second.
type StatsOverlay struct {
	bg      *Background
	elapsed float64
	text    string
}

// NewStatsOverlay creates an overlay reporting on bg.
func NewStatsOverlay(bg *Background) *StatsOverlay {
	o := &StatsOverlay{bg: bg}
	o.text = o.format(ebiten.ActualFPS(), ebiten.ActualTPS())
	return o
}

// Update advances the refresh timer by dt seconds.
func (o *StatsOverlay) Update(dt float64) {
	o.elapsed += dt
	if o.elapsed < overlayInterval {
		return
	}
	o.elapsed = 0
	o.text = o.format(ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Text returns the current overlay text.
func (o *StatsOverlay) Text() string {
	return o.text
}

// Draw prints the overlay onto dst.
func (o *StatsOverlay) Draw(dst *ebiten.Image) {
	ebitenutil.DebugPrint(dst, o.text)
}

func (o *StatsOverlay) format(fps, tps float64) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if o.bg == nil {
		return s
	}
	s += fmt.Sprintf("\nmouse: %.0f, %.0f", o.bg.MouseX().Get(), o.bg.MouseY().Get())
	if a := o.bg.Animator(); a != nil {
		s += fmt.Sprintf("\ndots: x%.2f", a.DotSize())
	}
	return s
}
