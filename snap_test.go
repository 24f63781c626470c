package autocuber

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var validComponents = []float64{-1, -halfSqrt2, -0.5, 0, 0.5, halfSqrt2, 1}

func isValidComponent(v float64) bool {
	for _, c := range validComponents {
		if v == c {
			return true
		}
	}
	return false
}

func TestSnapIdentity(t *testing.T) {
	id := mgl64.QuatIdent()
	if got := SnapOrientation(id); got != id {
		t.Errorf("snap(identity) = %v", got)
	}
}

func TestSnapIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		q := mgl64.Quat{
			W: rng.Float64()*2 - 1,
			V: mgl64.Vec3{rng.Float64()*2 - 1, rng.Float64()*2 - 1, rng.Float64()*2 - 1},
		}.Normalize()
		once := SnapOrientation(q)
		twice := SnapOrientation(once)
		if once != twice {
			t.Fatalf("snap not idempotent for %v: %v != %v", q, once, twice)
		}
	}
}

func TestSnapProducesValidComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		q := mgl64.Quat{
			W: rng.Float64()*2 - 1,
			V: mgl64.Vec3{rng.Float64()*2 - 1, rng.Float64()*2 - 1, rng.Float64()*2 - 1},
		}.Normalize()
		s := SnapOrientation(q)
		for _, v := range []float64{s.W, s.V.X(), s.V.Y(), s.V.Z()} {
			if !isValidComponent(v) {
				t.Fatalf("snap(%v) produced invalid component %v", q, v)
			}
		}
	}
}

func TestSnapNearQuarterTurn(t *testing.T) {
	// A quarter turn about X with a little accumulated float error should
	// snap back to the exact quarter turn.
	q := mgl64.QuatRotate(math.Pi/2+1e-9, mgl64.Vec3{1, 0, 0})
	s := SnapOrientation(q)
	want := mgl64.Quat{W: halfSqrt2, V: mgl64.Vec3{halfSqrt2, 0, 0}}
	if s != want {
		t.Errorf("snap(quarter+eps) = %v, want %v", s, want)
	}
}

func TestSnapSurvivesManyTurns(t *testing.T) {
	// Thousands of repeated quarter turns must not drift out of the valid
	// orientation set when snapping after every multiplication.
	quarter := mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{0, 1, 0})
	ori := mgl64.QuatIdent()
	for i := 0; i < 4000; i++ {
		ori = SnapOrientation(quarter.Mul(ori))
		for _, v := range []float64{ori.W, ori.V.X(), ori.V.Y(), ori.V.Z()} {
			if !isValidComponent(v) {
				t.Fatalf("drifted after %d turns: %v", i+1, ori)
			}
		}
	}
	// 4000 quarter turns about one axis is the identity rotation.
	if math.Abs(ori.W) != 1 || ori.V != (mgl64.Vec3{}) {
		t.Errorf("4000 quarter turns should be identity, got %v", ori)
	}
}
