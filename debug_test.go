package dotfield

import "testing"

func TestCountNodes(t *testing.T) {
	root := NewGroup("root")
	if got := countNodes(root); got != 1 {
		t.Errorf("countNodes(single) = %d, want 1", got)
	}
	a := NewGroup("a")
	root.AddChild(a)
	a.AddChild(NewGroup("b"))
	a.AddChild(NewGroup("c"))
	if got := countNodes(root); got != 4 {
		t.Errorf("countNodes = %d, want 4", got)
	}
}

func TestDebugLogDisabledIsNoop(t *testing.T) {
	s := NewScene(NewElement(1, 1), DefaultRendererOptions())
	s.debugLog(debugStats{drawCalls: 3}) // debug off; must not panic
}
