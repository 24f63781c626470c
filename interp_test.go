package autocuber

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func vecsClose(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

func TestEaseInOutEndpoints(t *testing.T) {
	if easeInOut(0) != 0 {
		t.Errorf("ease(0) = %v", easeInOut(0))
	}
	if easeInOut(1) != 1 {
		t.Errorf("ease(1) = %v", easeInOut(1))
	}
	if got := easeInOut(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("ease(0.5) = %v", got)
	}
	// Symmetric: ease(t) + ease(1-t) == 1
	for _, tt := range []float64{0.1, 0.25, 0.4} {
		if got := easeInOut(tt) + easeInOut(1-tt); math.Abs(got-1) > 1e-12 {
			t.Errorf("ease(%v) not symmetric: sum = %v", tt, got)
		}
	}
}

func TestArcLerpEndpoints(t *testing.T) {
	axis := mgl64.Vec3{0, 1, 0}
	from := mgl64.Vec3{1, 1, 1}
	to := mgl64.Vec3{1, 1, -1}
	if got := arcLerp(from, to, axis, 0); !vecsClose(got, from, 1e-12) {
		t.Errorf("arcLerp t=0 = %v, want %v", got, from)
	}
	if got := arcLerp(from, to, axis, 1); !vecsClose(got, to, 1e-12) {
		t.Errorf("arcLerp t=1 = %v, want %v", got, to)
	}
}

func TestArcLerpConstantRadius(t *testing.T) {
	// A corner swinging a quarter turn about Y stays at distance sqrt(2)
	// from the axis the whole way; a chord would dip to 1 at the midpoint.
	axis := mgl64.Vec3{0, 1, 0}
	from := mgl64.Vec3{1, 1, 1}
	to := mgl64.Vec3{1, 1, -1}
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		p := arcLerp(from, to, axis, tt)
		radius := math.Hypot(p.X(), p.Z())
		if math.Abs(radius-math.Sqrt2) > 1e-9 {
			t.Errorf("t=%v: radius = %v, want sqrt(2)", tt, radius)
		}
		if math.Abs(p.Y()-1) > 1e-9 {
			t.Errorf("t=%v: height = %v, want 1", tt, p.Y())
		}
	}
}

func TestArcLerpShortWrap(t *testing.T) {
	// From 350 degrees to 10 degrees around Z must sweep the short 20
	// degree path through 0, never the long way through 180.
	axis := mgl64.Vec3{0, 0, 1}
	a350 := 350 * math.Pi / 180
	a10 := 10 * math.Pi / 180
	from := mgl64.Vec3{math.Cos(a350), math.Sin(a350), 0}
	to := mgl64.Vec3{math.Cos(a10), math.Sin(a10), 0}

	mid := arcLerp(from, to, axis, 0.5)
	want := mgl64.Vec3{1, 0, 0} // angle 0
	if !vecsClose(mid, want, 1e-9) {
		t.Errorf("midpoint = %v, want %v", mid, want)
	}
}

func TestSlerpShortestPicksNearHemisphere(t *testing.T) {
	from := mgl64.QuatIdent()
	// -q represents the same rotation as q; interpolation must not swing
	// the long way around to reach it.
	to := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}).Scale(-1)
	mid := slerpShortest(from, to, 0.5)
	// Midpoint of the short path is an eighth turn, which keeps +X at
	// x = cos(45 degrees); the long way would flip it negative.
	v := mid.Rotate(mgl64.Vec3{1, 0, 0})
	if v.X() < 0.5 {
		t.Errorf("slerp took the long way: midpoint rotates X to %v", v)
	}
}

func TestRenderedPoseEndpoints(t *testing.T) {
	d := 300 * time.Millisecond
	cube := NewCube()
	cube.applyMove(U)
	p := cube.PieceAt(1, 1, 1) // now occupied by the old UFR piece's neighbor

	// t=0: exactly the previous pose.
	pos, ori := p.RenderedPose(d)
	if pos != p.prevPos || ori != p.prevOri {
		t.Errorf("t=0 pose = %v,%v want previous %v,%v", pos, ori, p.prevPos, p.prevOri)
	}

	// t=1: exactly the target pose.
	p.elapsed = d
	pos, ori = p.RenderedPose(d)
	if pos != p.pos || ori != p.ori {
		t.Errorf("t=1 pose = %v,%v want target %v,%v", pos, ori, p.pos, p.ori)
	}
}

func TestRenderedPoseStraightSegment(t *testing.T) {
	d := 200 * time.Millisecond
	cube := NewCube()
	cube.retargetHome()
	p := cube.PieceAt(1, 1, 1)
	p.prevPos = mgl64.Vec3{-1, 1, 1} // pretend it was somewhere else

	p.elapsed = d / 2
	pos, _ := p.RenderedPose(d)
	// Raised-cosine ease is 0.5 at the halfway point, so the position is
	// the straight midpoint.
	want := mgl64.Vec3{0, 1, 1}
	if !vecsClose(pos, want, 1e-9) {
		t.Errorf("straight midpoint = %v, want %v", pos, want)
	}
}

func TestRenderedPoseArcMidTurn(t *testing.T) {
	d := 200 * time.Millisecond
	cube := NewCube()
	cube.applyMove(U)
	// Whatever piece now sits at UFR started the move one quarter turn
	// behind; mid-animation it must still be sqrt(2) from the Y axis.
	p := cube.PieceAt(1, 1, 1)
	p.elapsed = d / 2
	pos, _ := p.RenderedPose(d)
	if radius := math.Hypot(pos.X(), pos.Z()); math.Abs(radius-math.Sqrt2) > 1e-9 {
		t.Errorf("mid-turn radius = %v, want sqrt(2)", radius)
	}
}
