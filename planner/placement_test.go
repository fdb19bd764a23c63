package planner

import "testing"

func TestPlacement_Place(t *testing.T) {
	p := newPlacement(3)

	p.Place(2)

	for r, want := range []bool{false, false, true} {
		if got := p.IsPlaced(r); got != want {
			t.Errorf("IsPlaced(%d): want %t, got %t", r, want, got)
		}
	}
	if got := p.Depth(); got != 1 {
		t.Errorf("Depth(): want 1, got %d", got)
	}
}

func TestPlacement_Undo(t *testing.T) {
	p := newPlacement(4)
	p.Place(0)
	p.Place(3)
	p.Place(1)

	p.Undo()

	for r, want := range []bool{true, false, false, true} {
		if got := p.IsPlaced(r); got != want {
			t.Errorf("IsPlaced(%d): want %t, got %t", r, want, got)
		}
	}
	if got := p.Depth(); got != 2 {
		t.Errorf("Depth(): want 2, got %d", got)
	}
}

func TestPlacement_Undo_empty(t *testing.T) {
	p := newPlacement(2)

	p.Undo()

	if got := p.Depth(); got != 0 {
		t.Errorf("Depth(): want 0, got %d", got)
	}
}
