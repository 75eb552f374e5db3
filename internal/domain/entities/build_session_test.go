package entities

import (
	"testing"
	"time"
)

func TestBuildSession_EffectiveLifecycle(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	s := BuildSession{Lifecycle: LifecycleActive, ExpiresAt: now.Add(time.Minute)}
	if got := s.EffectiveLifecycle(now); got != LifecycleActive {
		t.Fatalf("expected active, got %s", got)
	}
	if !s.Open(now) {
		t.Fatalf("expected open session")
	}

	s.ExpiresAt = now
	if got := s.EffectiveLifecycle(now); got != LifecycleExpired {
		t.Fatalf("expected expired, got %s", got)
	}
	if s.Open(now) {
		t.Fatalf("expected closed session")
	}

	done := BuildSession{Lifecycle: LifecycleCompleted, ExpiresAt: now.Add(-time.Hour)}
	if got := done.EffectiveLifecycle(now); got != LifecycleCompleted {
		t.Fatalf("completed sessions do not expire, got %s", got)
	}
}

func TestBuildSession_VerdictPending(t *testing.T) {
	s := BuildSession{Configuration: &Configuration{ID: "cfg-1"}, AppliedSeq: 2, VerdictSeq: 1}
	if !s.VerdictPending() {
		t.Fatalf("expected verdict for seq 1 to be pending against snapshot seq 2")
	}
	s.VerdictSeq = 2
	if s.VerdictPending() {
		t.Fatalf("expected verdict to cover the latest snapshot")
	}
	if (BuildSession{AppliedSeq: 1}).VerdictPending() {
		t.Fatalf("sessions without a configuration have nothing to verify")
	}
}

func TestParseHelpers(t *testing.T) {
	if p, ok := ParsePlatform(" AMD "); !ok || p != PlatformAMD {
		t.Fatalf("unexpected platform parse: %q %v", p, ok)
	}
	if _, ok := ParsePlatform("arm"); ok {
		t.Fatalf("expected arm to be rejected")
	}
	if c, ok := ParseCategory("powersupply"); !ok || c != CategoryPowerSupply {
		t.Fatalf("unexpected category parse: %q %v", c, ok)
	}
	if _, ok := ParseCategory("gpu"); ok {
		t.Fatalf("expected gpu to be rejected")
	}
	if _, ok := ParseStep("checkout"); ok {
		t.Fatalf("expected checkout step to be rejected")
	}
}
