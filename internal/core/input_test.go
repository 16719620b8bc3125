package core

import "testing"

func TestInputFramePreservesOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	got := f.Actions()
	if len(got) != 2 || got[0] != ActionUp || got[1] != ActionLeft {
		t.Fatalf("Actions() = %v, expected [Up Left]", got)
	}
	if !f.Has(ActionLeft) || f.Has(ActionRestart) {
		t.Error("Has() reports wrong membership")
	}

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, Up, true},
		{ActionDown, Down, true},
		{ActionLeft, Left, true},
		{ActionRight, Right, true},
		{ActionStop, Neutral, false},
		{ActionRestart, Neutral, false},
		{ActionNone, Neutral, false},
	}

	for _, tc := range tests {
		d, ok := tc.action.Direction()
		if d != tc.dir || ok != tc.ok {
			t.Errorf("%s.Direction() = (%s, %v), expected (%s, %v)", tc.action, d, ok, tc.dir, tc.ok)
		}
	}
}
