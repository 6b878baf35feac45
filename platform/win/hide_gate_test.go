package win

import (
	"testing"
	"time"
)

func TestHideGate(t *testing.T) {
	clock := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	g := newHideGate(func() time.Time { return clock })

	if !g.Open() {
		t.Fatal("new gate should be open")
	}
	g.Hold(showGrace)
	if g.Open() {
		t.Error("gate should be held right after Hold")
	}
	clock = clock.Add(showGrace - time.Millisecond)
	if g.Open() {
		t.Error("gate should still be held just before the grace ends")
	}
	clock = clock.Add(time.Millisecond)
	if !g.Open() {
		t.Error("gate should open once the grace ends")
	}
	g.Hold(0)
	if !g.Open() {
		t.Error("Hold(0) should leave the gate open")
	}
}
