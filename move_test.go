package autocuber

import (
	"errors"
	"testing"
)

func TestParseMoveBasic(t *testing.T) {
	cases := map[string]Move{
		"R":  {Face: FaceR, Turn: CW, StartDepth: 0, EndDepth: 1},
		"R'": {Face: FaceR, Turn: CCW, StartDepth: 0, EndDepth: 1},
		"U2": {Face: FaceU, Turn: Double, StartDepth: 0, EndDepth: 1},
		"M":  {Face: FaceL, Turn: CW, StartDepth: 1, EndDepth: 2},
		"E'": {Face: FaceD, Turn: CCW, StartDepth: 1, EndDepth: 2},
		"S2": {Face: FaceF, Turn: Double, StartDepth: 1, EndDepth: 2},
		"r":  {Face: FaceR, Turn: CW, StartDepth: 0, EndDepth: 2},
		"f2": {Face: FaceF, Turn: Double, StartDepth: 0, EndDepth: 2},
		"Uw": {Face: FaceU, Turn: CW, StartDepth: 0, EndDepth: 2},
		"d'": {Face: FaceD, Turn: CCW, StartDepth: 0, EndDepth: 2},
	}
	for input, want := range cases {
		got, err := ParseMove(input)
		if err != nil {
			t.Errorf("ParseMove(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", input, got, want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, input := range []string{"", "X", "R3", "Rx", "2R"} {
		if _, err := ParseMove(input); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) = %v, want ErrInvalidNotation", input, err)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, notation := range []string{"R", "R'", "R2", "M", "M'", "E", "S2", "r", "u'", "f2", "B", "L'"} {
		m, err := ParseMove(notation)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", notation, err)
		}
		if m.Notation() != notation {
			t.Errorf("ParseMove(%q).Notation() = %q", notation, m.Notation())
		}
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if R2.Inverse() != R2 {
		t.Error("R2 should be its own inverse")
	}
	if M.Inverse() != MPrime {
		t.Error("M inverse should be M'")
	}
}

func TestInvertMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	inv := InvertMoves(moves)
	if got := FormatMoves(inv); got != "U R U' R'" {
		t.Errorf("InvertMoves = %q, want %q", got, "U R U' R'")
	}
}

func TestParseMovesRejectsInvalid(t *testing.T) {
	if _, err := ParseMoves("R U X"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
}

func TestMoveValidate(t *testing.T) {
	if err := R.Validate(); err != nil {
		t.Errorf("R should validate, got %v", err)
	}
	whole := Move{Face: FaceU, Turn: CW, StartDepth: 0, EndDepth: 3}
	if err := whole.Validate(); err != nil {
		t.Errorf("whole-cube rotation should validate, got %v", err)
	}

	bad := []Move{
		{Face: FaceR, Turn: CW, StartDepth: -1, EndDepth: 1},
		{Face: FaceR, Turn: CW, StartDepth: 0, EndDepth: 4},
		{Face: FaceR, Turn: CW, StartDepth: 2, EndDepth: 1},
		{Face: FaceR, Turn: CW, StartDepth: 1, EndDepth: 1},
	}
	for _, m := range bad {
		if err := m.Validate(); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("%+v should fail with ErrInvalidDepth, got %v", m, err)
		}
	}

	if err := (Move{Face: "Q", Turn: CW, EndDepth: 1}).Validate(); !errors.Is(err, ErrInvalidNotation) {
		t.Error("unknown face should fail validation")
	}
}

func TestFormatMoves(t *testing.T) {
	if got := FormatMoves(SexyMove); got != "R U R' U'" {
		t.Errorf("FormatMoves(SexyMove) = %q", got)
	}
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want empty", got)
	}
}
