package display

import (
	"math"
	"testing"
)

func TestBrightness(t *testing.T) {
	if got := Brightness(0); got != 1 {
		t.Errorf("Brightness(0) = %v, want 1", got)
	}
	prev := 1.0
	for d := 1.0; d <= 20; d++ {
		b := Brightness(d)
		if b > prev {
			t.Fatalf("brightness rose at depth %.0f: %v > %v", d, b, prev)
		}
		if b < minBrightness || math.IsNaN(b) {
			t.Fatalf("brightness %v at depth %.0f", b, d)
		}
		prev = b
	}
	if Brightness(1000) != minBrightness {
		t.Error("far entries should clamp to the minimum")
	}
}
