package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/achilleasa/prism/types"
)

func expectSlots(t *testing.T, out []float32, offset int, exp ...float32) {
	t.Helper()
	for i, v := range exp {
		if math.Float32bits(out[offset+i]) != math.Float32bits(v) {
			t.Fatalf("expected slot %d to be %f; got %f", offset+i, v, out[offset+i])
		}
	}
}

func TestSphereBBox(t *testing.T) {
	s := NewSphere(types.XYZ(1, 2, 3), 0.5, 7)
	exp := types.AABBFromPoints(types.XYZ(0.5, 1.5, 2.5), types.XYZ(1.5, 2.5, 3.5))
	if s.BBox() != exp {
		t.Fatalf("expected sphere bbox to be %v; got %v", exp, s.BBox())
	}
	if s.Kind != Sphere {
		t.Fatalf("expected kind to be %s; got %s", Sphere, s.Kind)
	}
}

func TestMovingSphereBBox(t *testing.T) {
	s := NewMovingSphere(types.XYZ(0, 0, 0), types.XYZ(0, 2, 0), 1, 0)
	exp := types.AABBFromPoints(types.XYZ(-1, -1, -1), types.XYZ(1, 3, 1))
	if s.BBox() != exp {
		t.Fatalf("expected moving sphere bbox to be %v; got %v", exp, s.BBox())
	}
	if got, exp := s.Center.At(1), types.XYZ(0, 2, 0); got != exp {
		t.Fatalf("expected center at t=1 to be %v; got %v", exp, got)
	}
}

func TestSphereEncode(t *testing.T) {
	s := NewSphere(types.XYZ(1, 2, 3), 0.5, 7)
	out := s.Encode()
	if len(out) != Stride {
		t.Fatalf("expected encoded length to be %d; got %d", Stride, len(out))
	}

	expectSlots(t, out, 0, 1, 2, 3, 0)
	expectSlots(t, out, 4, 0, 0, 0, 0.5)
	expectSlots(t, out, 8, 0, 0, 0, 7)
	expectSlots(t, out, 12, 0, 0, 0, float32(Sphere))
	expectSlots(t, out, 16, 0, 0, 0, 0)
	expectSlots(t, out, 20, s.BBox().Encode()...)
	expectSlots(t, out, 26, 0, 0)
}

func TestQuad(t *testing.T) {
	q, err := NewQuad(types.XYZ(-1, -1, -2), types.XYZ(2, 0, 0), types.XYZ(0, 2, 0), 3)
	if err != nil {
		t.Fatal(err)
	}

	if exp := types.XYZ(0, 0, 1); q.Normal != exp {
		t.Fatalf("expected normal to be %v; got %v", exp, q.Normal)
	}
	if q.D != -2 {
		t.Fatalf("expected plane offset D to be -2; got %f", q.D)
	}
	// n = (0,0,4) so w = n / (n.n) = (0,0,0.25)
	if exp := types.XYZ(0, 0, 0.25); q.W != exp {
		t.Fatalf("expected w to be %v; got %v", exp, q.W)
	}

	// The quad lies in the z=-2 plane so its box must be padded along Z.
	bbox := q.BBox()
	if bbox.Z.Size() < types.MinAxisSize {
		t.Fatalf("expected flat quad bbox to be padded along Z; got %v", bbox.Z)
	}
	if bbox.X != (types.Interval{Min: -1, Max: 1}) || bbox.Y != (types.Interval{Min: -1, Max: 1}) {
		t.Fatalf("expected quad bbox to span [-1, 1] on X and Y; got %v", bbox)
	}

	out := q.Encode()
	expectSlots(t, out, 0, -1, -1, -2, -2)
	expectSlots(t, out, 4, 2, 0, 0, 0)
	expectSlots(t, out, 8, 0, 2, 0, 3)
	expectSlots(t, out, 12, 0, 0, 1, float32(Quad))
	expectSlots(t, out, 16, 0, 0, 0.25, 0)
	expectSlots(t, out, 20, bbox.Encode()...)
	expectSlots(t, out, 26, 0, 0)
}

func TestFarAwayQuadBBox(t *testing.T) {
	q, err := NewQuad(types.XYZ(-2, 3000, -2), types.XYZ(4, 0, 0), types.XYZ(0, 0, 4), 0)
	if err != nil {
		t.Fatal(err)
	}

	bbox := q.BBox()
	if bbox.Y.Size() < types.MinAxisSize {
		t.Fatalf("expected flat quad bbox at y=3000 to be padded along Y; got %v", bbox.Y)
	}
	if !bbox.Y.Surrounds(3000) {
		t.Fatalf("expected padded Y axis %v to surround the quad plane", bbox.Y)
	}
}

func TestDegenerateQuad(t *testing.T) {
	_, err := NewQuad(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(2, 0, 0), 0)
	if !errors.Is(err, ErrDegenerateQuad) {
		t.Fatalf("expected ErrDegenerateQuad; got %v", err)
	}
	if !errors.Is(err, types.ErrZeroLength) {
		t.Fatalf("expected error to wrap types.ErrZeroLength; got %v", err)
	}
}
