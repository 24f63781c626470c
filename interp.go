package autocuber

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// easeInOut is a raised-cosine ease: motion starts and ends at zero
// velocity. t must already be clamped to [0, 1].
func easeInOut(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// slerpShortest spherically interpolates between two orientations along the
// shorter of the two great-circle arcs. q and -q describe the same
// rotation, so the target is negated when the quaternions sit in opposite
// hemispheres.
func slerpShortest(from, to mgl64.Quat, t float64) mgl64.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, t)
}

// axisFrame returns a rotation taking world space into a frame whose
// z-axis is aligned with the given rotation axis. The secondary up vector
// only fixes the remaining two axes; any stable choice works, so +Y is
// used with a +X fallback for vertical axes.
func axisFrame(axis mgl64.Vec3) mgl64.Quat {
	up := mgl64.Vec3{0, 1, 0}
	if math.Abs(axis.Y()) > math.Abs(axis.X()) && math.Abs(axis.Y()) > math.Abs(axis.Z()) {
		up = mgl64.Vec3{1, 0, 0}
	}
	return mgl64.QuatLookAtV(mgl64.Vec3{}, axis, up)
}

// arcLerp interpolates a position around a rotation axis through the
// origin. Both endpoints are re-expressed in the axis frame, converted to
// cylindrical coordinates there, and interpolated: radius and height
// linearly, angle along the shortest angular path. This makes a turning
// piece sweep an arc at constant distance from the axis instead of cutting
// a straight chord through the cube's interior.
func arcLerp(from, to, axis mgl64.Vec3, t float64) mgl64.Vec3 {
	frame := axisFrame(axis)
	a := frame.Rotate(from)
	b := frame.Rotate(to)

	radiusA, angleA := math.Hypot(a.X(), a.Y()), math.Atan2(a.Y(), a.X())
	radiusB, angleB := math.Hypot(b.X(), b.Y()), math.Atan2(b.Y(), b.X())

	// Take the short way around.
	delta := angleB - angleA
	if delta > math.Pi {
		delta -= 2 * math.Pi
	} else if delta < -math.Pi {
		delta += 2 * math.Pi
	}

	radius := lerp(radiusA, radiusB, t)
	angle := angleA + delta*t
	height := lerp(a.Z(), b.Z(), t)

	v := mgl64.Vec3{radius * math.Cos(angle), radius * math.Sin(angle), height}
	return frame.Inverse().Rotate(v)
}
