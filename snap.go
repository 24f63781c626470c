package autocuber

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The 24 rotations of a cube only ever produce quaternion components drawn
// from {-1, -sqrt2/2, -1/2, 0, 1/2, sqrt2/2, 1}. Repeated quaternion
// multiplication during successive quarter turns accumulates floating
// error, so every orientation is rounded back onto that set after each
// move; without this, pieces drift out of the valid orientations over many
// turns.

const halfSqrt2 = math.Sqrt2 / 2

// SnapOrientation rounds each component of q to the nearest member of the
// valid component set. Rounding bins the signed square of the component at
// the midpoints of the squared targets, which behaves correctly both in
// the steep region near 0 and the flat region near +-1. Idempotent:
// snapping an already-snapped quaternion returns it unchanged.
func SnapOrientation(q mgl64.Quat) mgl64.Quat {
	return mgl64.Quat{
		W: snapComponent(q.W),
		V: mgl64.Vec3{
			snapComponent(q.V.X()),
			snapComponent(q.V.Y()),
			snapComponent(q.V.Z()),
		},
	}
}

// snapComponent rounds one quaternion component. The squared targets are
// 0, 1/4, 1/2 and 1, so the bin boundaries are 1/8, 3/8 and 3/4.
func snapComponent(v float64) float64 {
	sq := v * v
	var r float64
	switch {
	case sq < 1.0/8:
		return 0
	case sq < 3.0/8:
		r = 0.5
	case sq < 3.0/4:
		r = halfSqrt2
	default:
		r = 1
	}
	return math.Copysign(r, v)
}
