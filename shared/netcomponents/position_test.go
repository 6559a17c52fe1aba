package netcomponents

import (
	"math"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	from, to := 0.1, 0.3
	if got := Lerp(from, to, 0); got != from {
		t.Fatalf("Lerp(t=0) = %v, want %v", got, from)
	}
	if got := Lerp(from, to, 1); got != to {
		t.Fatalf("Lerp(t=1) = %v, want %v", got, to)
	}
	if got := Lerp(from, to, 7); got != to {
		t.Fatalf("Lerp(t=7) = %v, want clamp to %v", got, to)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{-6, -6 + 2*math.Pi},
		{6, 6 - 2*math.Pi},
		{4 * math.Pi, 0},
		{math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLerpAngleTakesShortArc(t *testing.T) {
	from, to := 3.0, -3.0
	prev := from
	total := 0.0
	for i := 1; i <= 10; i++ {
		cur := LerpAngle(from, to, float64(i)/10)
		total += math.Abs(NormalizeAngle(cur - prev))
		prev = cur
	}
	if total >= math.Pi {
		t.Fatalf("traversed %v rad, want less than pi", total)
	}
	if LerpAngle(from, to, 1) != to {
		t.Fatalf("LerpAngle(t=1) not exact")
	}
}

func TestBackfillVelocity(t *testing.T) {
	five := 5.0
	if got := *BackfillVelocity(nil, &five); got != 5 {
		t.Fatalf("backfill from prev = %v, want 5", got)
	}
	if got := *BackfillVelocity(nil, nil); got != 0 {
		t.Fatalf("backfill without prev = %v, want 0", got)
	}
	two := 2.0
	out := BackfillVelocity(&two, &five)
	if *out != 2 {
		t.Fatalf("explicit value = %v, want 2", *out)
	}
	two = 9
	if *out != 2 {
		t.Fatalf("backfilled pointer aliases the input")
	}
}
