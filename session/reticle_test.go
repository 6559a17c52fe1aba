package session

import (
	"math"
	"testing"

	"github.com/automoto/voidrift/config"
)

func testAim() config.AimConfig {
	return config.AimConfig{FreeRadius: 150, LockRadius: 20, AnimSeconds: 0.25, SpinMax: 8}
}

func TestReticleAnimatesToLock(t *testing.T) {
	r := NewReticle(testAim())
	if r.Radius() != 150 {
		t.Fatalf("free radius = %v", r.Radius())
	}

	r.Update("p_a", 0.1)
	mid := r.Progress()
	if mid <= 0 || mid >= 1 {
		t.Fatalf("progress mid-animation = %v", mid)
	}
	for i := 0; i < 10; i++ {
		r.Update("p_a", 0.05)
	}
	if r.Progress() != 1 {
		t.Fatalf("progress = %v, want 1", r.Progress())
	}
	if math.Abs(r.Radius()-20) > 1e-6 {
		t.Fatalf("locked radius = %v, want 20", r.Radius())
	}
	if r.Spin() <= 0 {
		t.Fatalf("ring did not spin while locked")
	}
}

func TestReticleReleases(t *testing.T) {
	r := NewReticle(testAim())
	for i := 0; i < 10; i++ {
		r.Update("m_1", 0.05)
	}
	for i := 0; i < 10; i++ {
		r.Update("", 0.05)
	}
	if r.Progress() != 0 || r.Target() != "" {
		t.Fatalf("progress = %v target = %q after release", r.Progress(), r.Target())
	}
}
