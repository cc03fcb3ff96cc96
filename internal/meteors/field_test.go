package meteors

import (
	"math/rand"
	"slices"
	"testing"
)

func TestAdvanceAllRemovesGroundedWithoutSkipping(t *testing.T) {
	d := newFakeDisplay()
	f := NewMeteorField(d, &seqRand{values: []int{0}})
	l := &recordingListener{}
	f.SetListener(l)

	// #0 and #2 reach the ground this tick, #1 does not.
	placeMeteors(f, Position{0, 3}, Position{1, 1}, Position{2, 3})

	f.AdvanceAll()

	if f.Size() != 1 {
		t.Fatalf("Size() = %d, expected 1", f.Size())
	}
	if got := f.Positions(); got[0] != (Position{1, 2}) {
		t.Errorf("remaining meteor at %v, expected (1,2)", got[0])
	}
	if l.exits != 2 {
		t.Errorf("MeteorExited fired %d times, expected 2", l.exits)
	}

	want := []string{"moved(0,4)", "moved(1,2)", "moved(2,4)", "exited", "exited"}
	if !slices.Equal(l.events, want) {
		t.Errorf("events = %v, expected %v", l.events, want)
	}
}

func TestAdvanceAllRemovesAdjacentGrounded(t *testing.T) {
	f := NewMeteorField(newFakeDisplay(), &seqRand{values: []int{0}})
	l := &recordingListener{}
	f.SetListener(l)

	placeMeteors(f, Position{0, 3}, Position{1, 3}, Position{3, 0})

	f.AdvanceAll()

	if f.Size() != 1 || f.Positions()[0] != (Position{3, 1}) {
		t.Errorf("Positions() = %v, expected [(3,1)]", f.Positions())
	}
	if l.exits != 2 {
		t.Errorf("MeteorExited fired %d times, expected 2", l.exits)
	}
}

func TestAdvanceAllHidesGroundedMeteor(t *testing.T) {
	d := newFakeDisplay()
	f := NewMeteorField(d, &seqRand{values: []int{0}})
	placeMeteors(f, Position{4, 3}, Position{0, 0})

	f.AdvanceAll()

	if d.isLit(4, 4) {
		t.Error("grounded meteor should be erased when removed")
	}
	if !d.isLit(0, 1) {
		t.Error("falling meteor should be drawn")
	}
}

func TestAdvanceAllWithoutListener(t *testing.T) {
	f := NewMeteorField(newFakeDisplay(), &seqRand{values: []int{0}})
	placeMeteors(f, Position{0, 3})

	f.AdvanceAll()
	f.SetListener(nil)
	f.AdvanceAll()

	if f.Size() != 0 {
		t.Errorf("Size() = %d, expected 0", f.Size())
	}
}

func TestSpawnAtRandomColumn(t *testing.T) {
	f := NewMeteorField(newFakeDisplay(), &seqRand{values: []int{3}})

	if !f.Spawn() {
		t.Fatal("Spawn() on an empty field should succeed")
	}
	if got := f.Positions(); len(got) != 1 || got[0] != (Position{3, SpawnRow}) {
		t.Errorf("Positions() = %v, expected [(3,-1)]", got)
	}
}

func TestSpawnRejectsOccupiedSpawnCell(t *testing.T) {
	d := newFakeDisplay()
	f := NewMeteorField(d, &seqRand{values: []int{2, 2}})

	f.Spawn()
	if f.Spawn() {
		t.Error("second spawn into the same cell should be rejected")
	}
	if f.Size() != 1 {
		t.Errorf("Size() = %d, expected 1", f.Size())
	}
	if len(d.calls) != 0 {
		t.Errorf("rejected spawn should not draw, calls = %v", d.calls)
	}
}

func TestSpawnRowIsFreeAfterAdvance(t *testing.T) {
	f := NewMeteorField(newFakeDisplay(), &seqRand{values: []int{2}})

	// Spawn then advance, as Tick does: the same column is free again.
	for i := 0; i < 3; i++ {
		if !f.Spawn() {
			t.Fatalf("spawn %d into column 2 rejected", i+1)
		}
		f.AdvanceAll()
	}
	want := []Position{{2, 2}, {2, 1}, {2, 0}}
	got := f.Positions()
	if len(got) != len(want) {
		t.Fatalf("Positions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Positions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestSpawnRejectsLitCell(t *testing.T) {
	d := newFakeDisplay()
	d.lit[Position{1, SpawnRow}] = true
	f := NewMeteorField(d, &seqRand{values: []int{1}})

	if f.Spawn() {
		t.Error("spawn into a lit cell should be rejected")
	}
	if f.Size() != 0 {
		t.Errorf("Size() = %d, expected 0", f.Size())
	}
}

func TestFieldInvariantsUnderRandomPlay(t *testing.T) {
	d := newFakeDisplay()
	f := NewMeteorField(d, rand.New(rand.NewSource(42)))
	platform := NewPlatform(d)
	platform.Show()

	for tick := 0; tick < 500; tick++ {
		before := f.Positions()
		if f.Size() < 4 {
			f.Spawn()
		}
		after := f.Positions()

		// A new meteor never lands on an occupied cell
		if len(after) > len(before) {
			spawned := after[len(after)-1]
			if slices.Contains(before, spawned) || spawned == platform.Pos() {
				t.Fatalf("tick %d: spawn at occupied cell %v", tick, spawned)
			}
		}

		f.AdvanceAll()

		seen := make(map[Position]bool)
		for _, p := range f.Positions() {
			if !InBounds(p) {
				t.Fatalf("tick %d: meteor out of bounds at %v", tick, p)
			}
			if seen[p] {
				t.Fatalf("tick %d: two meteors share %v", tick, p)
			}
			seen[p] = true
		}
	}
}
