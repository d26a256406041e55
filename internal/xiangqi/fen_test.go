package xiangqi

import (
	"errors"
	"testing"
)

func TestEncodeRoundTrip(t *testing.T) {
	g := mustDecode(t, startFEN)
	if got := g.Encode(); got != startFEN {
		t.Fatalf("encode: got %q want %q", got, startFEN)
	}

	mustCommit(t, g, pt(1, 2), pt(1, 9))
	fen := g.Encode()
	want := "rCbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/7C1/9/RNBAKABNR b"
	if fen != want {
		t.Fatalf("encode after capture: got %q want %q", fen, want)
	}

	back := mustDecode(t, fen)
	if back.ActiveColor() != Black {
		t.Fatalf("decoded side: %s", back.ActiveColor())
	}
	if back.Encode() != fen {
		t.Fatalf("round trip: got %q want %q", back.Encode(), fen)
	}
	if len(back.AllMoves()) != len(g.AllMoves()) {
		t.Fatalf("move count differs after round trip: %d vs %d", len(back.AllMoves()), len(g.AllMoves()))
	}
}

func TestParseLayoutDefaultsToRed(t *testing.T) {
	layout, side, err := ParseLayout("4k4/9/9/9/9/9/9/9/9/4K4")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if side != Red {
		t.Fatalf("side: %s", side)
	}
	if len(layout) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(layout))
	}
	if layout[0] != (Placement{General, Black, pt(4, 9)}) || layout[1] != (Placement{General, Red, pt(4, 0)}) {
		t.Fatalf("unexpected placements: %+v", layout)
	}
}

func TestParseLayoutRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbakabnr/9/1c5c1 w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNRR w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/8/RNBAKABNR w",
		"rnbakabnx/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w extra",
	}
	for _, fen := range bad {
		if _, _, err := ParseLayout(fen); !errors.Is(err, ErrInvalidLayout) {
			t.Fatalf("%q: expected ErrInvalidLayout, got %v", fen, err)
		}
	}
}
