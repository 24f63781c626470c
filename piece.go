package autocuber

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Piece is one of the 26 movable sub-cubes. A Piece keeps its identity for
// the life of the cube; moves only change its pose and which slot it
// occupies.
//
// A piece always carries one animation segment: the previous pose, the
// target pose, the rotation axis of the move that separated them, and the
// time elapsed since the segment began. Outside an animation the rendered
// pose equals the target pose.
type Piece struct {
	home mgl64.Vec3 // slot coordinate at construction, never changes

	pos mgl64.Vec3 // logical (target) position, integer-valued between moves
	ori mgl64.Quat // logical (target) orientation, always snapped

	prevPos mgl64.Vec3
	prevOri mgl64.Quat

	axis    mgl64.Vec3 // zero vector = straight-line interpolation
	elapsed time.Duration
}

// Home returns the piece's slot coordinate at construction.
func (p *Piece) Home() mgl64.Vec3 { return p.home }

// Position returns the piece's logical target position. Outside an active
// animation this is always an integer grid coordinate.
func (p *Piece) Position() mgl64.Vec3 { return p.pos }

// Orientation returns the piece's logical target orientation, one of the
// cube's 24 valid rotations.
func (p *Piece) Orientation() mgl64.Quat { return p.ori }

// beginSegment starts a new animation segment from the current target pose
// toward a pose yet to be written by the caller.
func (p *Piece) beginSegment(axis mgl64.Vec3) {
	p.prevPos = p.pos
	p.prevOri = p.ori
	p.axis = axis
	p.elapsed = 0
}

// settled is an elapsed time no turn duration can exceed.
const settled = time.Duration(1 << 62)

// settle completes the current segment instantly.
func (p *Piece) settle() {
	p.elapsed = settled
}

// RenderedPose returns the pose to draw this frame: the previous pose at
// the start of the segment, the target pose once the turn duration has
// elapsed, and a continuous interpolation in between. Orientation follows
// the shortest arc; position follows a straight line for zero-axis
// segments and an arc around the rotation axis otherwise.
func (p *Piece) RenderedPose(turnDuration time.Duration) (mgl64.Vec3, mgl64.Quat) {
	if turnDuration <= 0 || p.elapsed >= turnDuration {
		return p.pos, p.ori
	}
	if p.elapsed <= 0 {
		return p.prevPos, p.prevOri
	}

	t := easeInOut(float64(p.elapsed) / float64(turnDuration))

	ori := slerpShortest(p.prevOri, p.ori, t)
	if p.axis == (mgl64.Vec3{}) {
		return lerpVec(p.prevPos, p.pos, t), ori
	}
	return arcLerp(p.prevPos, p.pos, p.axis, t), ori
}
