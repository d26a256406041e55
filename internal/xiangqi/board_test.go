package xiangqi

import (
	"errors"
	"testing"
)

func TestBoardPlaceAndCapture(t *testing.T) {
	b := &Board{}
	pc, err := b.place(Horse, Black, pt(1, 9))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if got, _ := b.At(pt(1, 9)); got != pc {
		t.Fatalf("At returned %v", got)
	}
	if _, err := b.place(Chariot, Red, pt(1, 9)); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if _, err := b.place(Chariot, Red, pt(9, 0)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	b.capture(pc)
	if got, _ := b.At(pt(1, 9)); got != nil || !pc.Captured {
		t.Fatalf("capture left %v on (1,9), captured=%v", got, pc.Captured)
	}
	if len(b.Pieces()) != 0 {
		t.Fatalf("expected empty board")
	}
}

func TestPlaceRejectsUnknownKindOrColor(t *testing.T) {
	b := &Board{}
	tests := []struct {
		name  string
		kind  Kind
		color Color
	}{
		{"kind", Kind(42), Red},
		{"negative kind", Kind(-1), Black},
		{"color", Chariot, Color(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.place(tt.kind, tt.color, pt(0, 5)); !errors.Is(err, ErrInvalidLayout) {
				t.Fatalf("expected ErrInvalidLayout, got %v", err)
			}
			if got, _ := b.At(pt(0, 5)); got != nil {
				t.Fatalf("bad piece placed: %v", got)
			}
		})
	}
	if got := encode(b, Red); got != "9/9/9/9/9/9/9/9/9/9 w" {
		t.Fatalf("encode after rejected placements: %q", got)
	}
}

func TestBoardAtOutOfRange(t *testing.T) {
	b := &Board{}
	for _, p := range []Point{pt(-1, 0), pt(0, -1), pt(9, 0), pt(0, 10)} {
		var oor *OutOfRangeError
		if _, err := b.At(p); !errors.As(err, &oor) || oor.At != p {
			t.Fatalf("%s: expected OutOfRangeError, got %v", p, err)
		}
	}
}

func TestNewBoardRejectsOverlap(t *testing.T) {
	_, err := NewBoard(Layout{
		{Kind: General, Color: Red, At: pt(4, 0)},
		{Kind: Adviser, Color: Red, At: pt(4, 0)},
	})
	if !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	_, err = NewBoard(Layout{{Kind: Kind(42), Color: Red, At: pt(4, 0)}})
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
	_, err = NewBoard(Layout{{Kind: Chariot, Color: Color(7), At: pt(0, 5)}})
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout for bad color, got %v", err)
	}
}

func TestZones(t *testing.T) {
	palace := 0
	for idx := 0; idx < NumPoints; idx++ {
		p := pointOf(idx)
		if inPalace(Red, p) {
			palace++
			if p.Y > 2 {
				t.Fatalf("red palace contains %s", p)
			}
		}
		if inPalace(Black, p) && p.Y < 7 {
			t.Fatalf("black palace contains %s", p)
		}
		if crossedRiver(Red, p) == crossedRiver(Black, p) {
			t.Fatalf("%s crossed for both or neither side", p)
		}
	}
	if palace != 9 {
		t.Fatalf("red palace has %d points", palace)
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	b := newTestBoard(t, Placement{Chariot, Red, pt(0, 0)})
	if err := b.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
	pc, _ := b.At(pt(0, 0))
	pc.Pos = pt(3, 3)
	var iv InvariantViolation
	if err := b.Verify(); !errors.As(err, &iv) {
		t.Fatalf("expected InvariantViolation, got %v", err)
	}
}
