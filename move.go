package autocuber

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Face represents a cube face in standard Singmaster notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Axis returns the outward unit normal of the face. Slice depths are
// measured from the face inward along this axis, and face turns rotate
// about it.
func (f Face) Axis() mgl64.Vec3 {
	switch f {
	case FaceR:
		return mgl64.Vec3{1, 0, 0}
	case FaceL:
		return mgl64.Vec3{-1, 0, 0}
	case FaceU:
		return mgl64.Vec3{0, 1, 0}
	case FaceD:
		return mgl64.Vec3{0, -1, 0}
	case FaceF:
		return mgl64.Vec3{0, 0, 1}
	case FaceB:
		return mgl64.Vec3{0, 0, -1}
	default:
		return mgl64.Vec3{}
	}
}

// Turn represents the direction and magnitude of a turn, as a signed
// quarter-turn count. Clockwise is as seen looking at the turning face.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move: which face, which way, and how deep.
//
// The slice range [StartDepth, EndDepth) selects the layers the move
// affects, counted from the turning face inward. A normal outer turn is
// 0..1, a middle slice turn (M/E/S) is 1..2, a wide turn is 0..2, and
// 0..3 rotates the whole cube.
type Move struct {
	Face       Face // Which face to turn
	Turn       Turn // Direction and amount
	StartDepth int  // First affected layer, counted from the face
	EndDepth   int  // One past the last affected layer
}

// Validate rejects descriptors with an out-of-range slice range. Moves
// built by ParseMove or the predefined constants are always valid.
func (m Move) Validate() error {
	if m.Face.Axis() == (mgl64.Vec3{}) {
		return ErrInvalidNotation
	}
	if m.StartDepth < 0 || m.EndDepth > 3 || m.StartDepth >= m.EndDepth {
		return ErrInvalidDepth
	}
	return nil
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, M, r', u2
func (m Move) Notation() string {
	letter := string(m.Face)
	switch {
	case m.StartDepth == 1 && m.EndDepth == 2:
		// Middle slices have their own letters on the L/D/F axes.
		switch m.Face {
		case FaceL:
			letter = "M"
		case FaceD:
			letter = "E"
		case FaceF:
			letter = "S"
		}
	case m.StartDepth == 0 && m.EndDepth == 2:
		letter = strings.ToLower(letter)
	}

	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return letter + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, M, E', S2, r, Uw, f2
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	faceChar := rune(s[0])
	startDepth, endDepth := 0, 1

	// M, E and S turn the middle slice on the L, D and F axes.
	letter := faceChar
	switch faceChar {
	case 'M':
		letter = 'L'
		startDepth, endDepth = 1, 2
	case 'E':
		letter = 'D'
		startDepth, endDepth = 1, 2
	case 'S':
		letter = 'F'
		startDepth, endDepth = 1, 2
	}

	var face Face
	switch letter {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, ErrInvalidNotation
	}

	// A lowercase face letter is a wide turn.
	if letter >= 'a' && letter <= 'z' {
		endDepth = 2
	}

	turn := CW
	for _, mod := range s[1:] {
		switch mod {
		case 'w':
			endDepth = 2
		case '2':
			turn = Double
		case '\'', '`':
			switch turn {
			case Double:
				// 2' is the same half turn
			default:
				turn = CCW
			}
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn, StartDepth: startDepth, EndDepth: endDepth}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the inverse of a move sequence: the moves reversed,
// each individually inverted. Applying a sequence and then its inverse
// returns the cube to its starting state.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
