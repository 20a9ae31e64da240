package keytracker

import "testing"

func TestObserveRisingEdge(t *testing.T) {
	var k KeyStateTracker
	steps := []struct {
		pressed bool
		want    bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{false, false},
		{true, true},
	}
	for i, s := range steps {
		if got := k.Observe(s.pressed); got != s.want {
			t.Errorf("step %d: Observe(%v) = %v, want %v", i, s.pressed, got, s.want)
		}
	}
}
