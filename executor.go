package autocuber

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// applyMove applies one pre-validated move to the cube and starts an
// animation segment on every affected piece. Move descriptors are
// validated at the boundary (Move.Validate); by the time a move reaches
// here it is pure state transformation with no error path.
func (c *Cube) applyMove(m Move) {
	axis := m.Face.Axis()
	selector := func(coord mgl64.Vec3) bool {
		depth := 1 - int(math.Round(coord.Dot(axis)))
		return m.StartDepth <= depth && depth < m.EndDepth
	}
	c.transform(selector, axis, int(m.Turn))
}

// transform rotates the pieces selected by the predicate about the axis by
// the signed number of quarter turns. A clockwise turn viewed from the
// positive axis direction is a negative rotation, so each quarter applies
// the quaternion for -sign(quarters)*pi/2; half turns apply it twice.
func (c *Cube) transform(selector func(coord mgl64.Vec3) bool, axis mgl64.Vec3, quarters int) {
	count := quarters
	sign := 1.0
	if count < 0 {
		count = -count
		sign = -1
	}
	quarter := mgl64.QuatRotate(-sign*math.Pi/2, axis)

	// Phase one: compute every selected piece's new pose. The slot map is
	// only read here; two pieces in the same move may target overlapping
	// source and destination slots, so no remapping happens until every
	// piece has its final position.
	type remap struct {
		piece    *Piece
		from, to int
	}
	remaps := make([]remap, 0, 9)

	for slot := 0; slot < NumSlots; slot++ {
		if slot == CoreSlot {
			continue
		}
		x, y, z := CoordOf(slot)
		coord := mgl64.Vec3{float64(x), float64(y), float64(z)}
		if !selector(coord) {
			continue
		}

		p := c.slots[slot]
		p.beginSegment(axis)
		for i := 0; i < count; i++ {
			// The 90-degree rotation matrix entries are exact 0/+-1, so
			// rounding removes all float error from the rotated position.
			p.pos = roundVec(quarter.Rotate(p.pos))
			p.ori = SnapOrientation(quarter.Mul(p.ori))
		}
		remaps = append(remaps, remap{piece: p, from: slot, to: slotOfVec(p.pos)})
	}

	// Phase two: commit the new slot assignments.
	for _, r := range remaps {
		c.slots[r.from] = nil
	}
	for _, r := range remaps {
		if c.slots[r.to] != nil {
			panic("autocuber: position-to-piece map lost bijectivity")
		}
		c.slots[r.to] = r.piece
	}
}
