package game

import (
	"testing"
	"time"
)

func TestTimer_ExpiresStrictlyAfterDuration(t *testing.T) {
	tm := NewTimer(2 * time.Second)
	t0 := time.Unix(100, 0)
	if tm.Active() || tm.Expire(t0) {
		t.Fatal("new timer should be inactive")
	}

	tm.Start(t0)
	if tm.Expire(t0.Add(2 * time.Second)) {
		t.Fatal("timer must not expire at exactly its duration")
	}
	if got := tm.Remaining(t0.Add(500 * time.Millisecond)); got != 1500*time.Millisecond {
		t.Fatalf("Remaining = %v, want 1.5s", got)
	}
	if !tm.Expire(t0.Add(2*time.Second + time.Nanosecond)) {
		t.Fatal("timer should expire once past its duration")
	}
	if tm.Active() || tm.Remaining(t0) != 0 {
		t.Fatal("expired timer should be inactive with nothing remaining")
	}
}

func TestTimer_Shift(t *testing.T) {
	tm := NewTimer(time.Second)
	t0 := time.Unix(0, 0)
	tm.Start(t0)
	tm.Shift(10 * time.Second)
	if tm.Expire(t0.Add(5 * time.Second)) {
		t.Fatal("shifted timer expired early")
	}
	if got := tm.Elapsed(t0.Add(10 * time.Second)); got != 0 {
		t.Fatalf("Elapsed after shift = %v, want 0", got)
	}
}

func TestTimer_RemainingFloorsAtZero(t *testing.T) {
	tm := NewTimer(time.Second)
	t0 := time.Unix(0, 0)
	tm.Start(t0)
	if got := tm.Remaining(t0.Add(time.Hour)); got != 0 {
		t.Fatalf("Remaining = %v, want 0", got)
	}
}
