package dotfield

import (
	"time"
)

// debugStats holds per-refresh timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	renderTime time.Duration
	drawCalls  int
	nodeCount  int
}

// debugLog reports refresh stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	info := s.renderer.Info()
	Logger().Debug("refresh",
		"render", stats.renderTime,
		"draws", stats.drawCalls,
		"nodes", stats.nodeCount,
		"frames", info.Frames,
		"totalDraws", info.DrawCalls,
	)
}

// countNodes counts root and all of its descendants.
func countNodes(root *Node) int {
	count := 0
	root.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
