package autocuber

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CubeFace indexes a face in the facelet projection.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube as 26 movable pieces on a grid of
// slots. The axes follow the solved orientation: +X right (R), +Y up (U),
// +Z front (F).
//
// The pieces are created once and persist for the cube's lifetime; moves
// change their poses and re-point the slot map. Outside an active
// animation, piece positions are exactly the 26 non-core grid coordinates,
// each used once.
type Cube struct {
	pieces []*Piece         // all 26 pieces, ordered by home slot
	slots  [NumSlots]*Piece // position-to-piece map; CoreSlot stays nil
}

// NewCube creates a solved cube: every piece at its home slot with
// identity orientation.
func NewCube() *Cube {
	c := &Cube{pieces: make([]*Piece, 0, 26)}
	for slot := 0; slot < NumSlots; slot++ {
		if slot == CoreSlot {
			continue
		}
		x, y, z := CoordOf(slot)
		home := mgl64.Vec3{float64(x), float64(y), float64(z)}
		p := &Piece{
			home:    home,
			pos:     home,
			ori:     mgl64.QuatIdent(),
			prevPos: home,
			prevOri: mgl64.QuatIdent(),
		}
		p.settle()
		c.pieces = append(c.pieces, p)
		c.slots[slot] = p
	}
	return c
}

// Pieces returns all 26 pieces in home-slot order. The renderer reads
// poses from these every frame.
func (c *Cube) Pieces() []*Piece {
	return c.pieces
}

// PieceAt returns the piece whose logical position is currently the given
// grid coordinate, or nil for the core.
func (c *Cube) PieceAt(x, y, z int) *Piece {
	return c.slots[SlotOf(x, y, z)]
}

// Advance moves every piece's animation clock forward. Pieces whose
// segment has already completed are unaffected.
func (c *Cube) Advance(dt time.Duration) {
	for _, p := range c.pieces {
		if p.elapsed < settled {
			p.elapsed += dt
		}
	}
}

// Apply applies moves instantly, without animation.
func (c *Cube) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, m := range moves {
		c.applyMove(m)
	}
	c.settleAll()
	return nil
}

// ApplyNotation parses a notation string and applies it instantly.
// Example: "R U R' U'"
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// settleAll completes every in-flight animation segment.
func (c *Cube) settleAll() {
	for _, p := range c.pieces {
		p.settle()
	}
}

// retargetHome starts a straight-line animation segment taking every piece
// back to its slot-identity pose and restores the identity slot map.
func (c *Cube) retargetHome() {
	for _, p := range c.pieces {
		p.beginSegment(mgl64.Vec3{})
		p.pos = p.home
		p.ori = mgl64.QuatIdent()
	}
	c.slots = [NumSlots]*Piece{}
	for _, p := range c.pieces {
		c.slots[slotOfVec(p.home)] = p
	}
}

// IsSolved returns true if every piece sits at its home slot with identity
// orientation.
func (c *Cube) IsSolved() bool {
	for _, p := range c.pieces {
		if p.pos != p.home {
			return false
		}
		if math.Abs(p.ori.W) != 1 || p.ori.V != (mgl64.Vec3{}) {
			return false
		}
	}
	return true
}

// Facelets projects the pieces' logical poses onto a sticker array.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) never moves relative to its face.
func (c *Cube) Facelets() [6][9]Color {
	var facelets [6][9]Color
	// Fixed centers first; the movable pieces overwrite nothing at index 4.
	for face := CubeFace(0); face < 6; face++ {
		facelets[face][4] = Color(face)
	}

	for _, p := range c.pieces {
		pos := roundVec(p.pos)
		for _, d := range faceDirections {
			if p.home.Dot(d.normal) != 1 {
				continue // the piece has no sticker on this side
			}
			now := roundVec(p.ori.Rotate(d.normal))
			face, ok := faceOfNormal(now)
			if !ok {
				continue
			}
			facelets[face.index][faceletIndex(face, pos)] = d.color
		}
	}
	return facelets
}

// faceDirection pairs an outward sticker normal in the solved state with
// its color.
type faceDirection struct {
	normal mgl64.Vec3
	color  Color
}

var faceDirections = []faceDirection{
	{mgl64.Vec3{0, 1, 0}, White},
	{mgl64.Vec3{0, -1, 0}, Yellow},
	{mgl64.Vec3{0, 0, 1}, Green},
	{mgl64.Vec3{0, 0, -1}, Blue},
	{mgl64.Vec3{1, 0, 0}, Red},
	{mgl64.Vec3{-1, 0, 0}, Orange},
}

// faceLayout fixes how a face's 3x3 sticker grid maps onto cube space:
// column index grows along right, row index along down.
type faceLayout struct {
	index       CubeFace
	normal      mgl64.Vec3
	right, down mgl64.Vec3
}

var faceLayouts = []faceLayout{
	{CubeFaceU, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}},
	{CubeFaceD, mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}},
	{CubeFaceF, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, -1, 0}},
	{CubeFaceB, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, -1, 0}},
	{CubeFaceR, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, -1, 0}},
	{CubeFaceL, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, -1, 0}},
}

func faceOfNormal(n mgl64.Vec3) (faceLayout, bool) {
	for _, f := range faceLayouts {
		if f.normal == n {
			return f, true
		}
	}
	return faceLayout{}, false
}

func faceletIndex(f faceLayout, pos mgl64.Vec3) int {
	col := int(pos.Dot(f.right)) + 1
	row := int(pos.Dot(f.down)) + 1
	return row*3 + col
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	facelets := c.Facelets()
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += facelets[CubeFaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				result += facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += facelets[CubeFaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}

func roundVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Round(v.X()), math.Round(v.Y()), math.Round(v.Z())}
}

func slotOfVec(v mgl64.Vec3) int {
	return SlotOf(int(math.Round(v.X())), int(math.Round(v.Y())), int(math.Round(v.Z())))
}
