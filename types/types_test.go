package types

import (
	"math"
	"testing"
)

func TestVec3Normalize(t *testing.T) {
	v, err := XYZ(3, 0, 4).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if diff := math.Abs(float64(v.Len() - 1)); diff > 1e-6 {
		t.Fatalf("expected normalized vector length to be 1; got %f", v.Len())
	}
	exp := XYZ(0.6, 0, 0.8)
	if v != exp {
		t.Fatalf("expected normalized vector to be %v; got %v", exp, v)
	}

	_, err = Vec3{}.Normalize()
	if err != ErrZeroLength {
		t.Fatalf("expected to get ErrZeroLength; got %v", err)
	}
}

func TestVec3Algebra(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(4, 5, 6)

	if got := a.Dot(b); got != 32 {
		t.Fatalf("expected dot product to be 32; got %f", got)
	}
	if got, exp := a.Cross(b), XYZ(-3, 6, -3); got != exp {
		t.Fatalf("expected cross product to be %v; got %v", exp, got)
	}
	if got, exp := a.Sub(b).Negate(), XYZ(3, 3, 3); got != exp {
		t.Fatalf("expected negated difference to be %v; got %v", exp, got)
	}
	if got, exp := b.DivVec(XYZ(2, 5, 3)), XYZ(2, 1, 2); got != exp {
		t.Fatalf("expected component division to be %v; got %v", exp, got)
	}
	if got, exp := a.MulVec(b).AddScalar(1), XYZ(5, 11, 19); got != exp {
		t.Fatalf("expected component product plus one to be %v; got %v", exp, got)
	}
}

func TestVec3Encode(t *testing.T) {
	out := XYZ(1, 2, 3).Encode()
	exp := []float32{1, 2, 3, 0}
	if len(out) != len(exp) {
		t.Fatalf("expected encoded length to be %d; got %d", len(exp), len(out))
	}
	for i := range exp {
		if out[i] != exp[i] {
			t.Fatalf("expected slot %d to be %f; got %f", i, exp[i], out[i])
		}
	}
}

func TestRayEncode(t *testing.T) {
	r := Ray{Origin: XYZ(1, 2, 3), Direction: XYZ(4, 5, 6), Time: 0.5}
	out := r.Encode()
	exp := []float32{1, 2, 3, 0.5, 4, 5, 6, 0}
	for i := range exp {
		if math.Float32bits(out[i]) != math.Float32bits(exp[i]) {
			t.Fatalf("expected slot %d to be %f; got %f", i, exp[i], out[i])
		}
	}

	if got, exp := r.At(2), XYZ(9, 12, 15); got != exp {
		t.Fatalf("expected point at t=2 to be %v; got %v", exp, got)
	}
}

func TestIntervalOps(t *testing.T) {
	i := Interval{Min: 1, Max: 3}
	if !i.Contains(1) || !i.Contains(3) || i.Contains(3.5) {
		t.Fatal("expected closed interval containment")
	}
	if i.Surrounds(1) || !i.Surrounds(2) {
		t.Fatal("expected open interval containment")
	}

	e := EmptyInterval()
	if e.Size() >= 0 {
		t.Fatalf("expected empty interval to have negative size; got %f", e.Size())
	}
	if got := UnionInterval(i, e); got != i {
		t.Fatalf("expected union with empty interval to be %v; got %v", i, got)
	}
	if got, exp := i.Expand(2), (Interval{Min: 0, Max: 4}); got != exp {
		t.Fatalf("expected expanded interval to be %v; got %v", exp, got)
	}
}

func TestAABBFromPointsNormalizesOrder(t *testing.T) {
	b := AABBFromPoints(XYZ(2, -1, 5), XYZ(-2, 1, 3))
	exp := AABB{
		X: Interval{-2, 2},
		Y: Interval{-1, 1},
		Z: Interval{3, 5},
	}
	if b != exp {
		t.Fatalf("expected box to be %v; got %v", exp, b)
	}
}

func TestAABBPadding(t *testing.T) {
	// Flat along Y
	b := AABBFromPoints(XYZ(0, 1, 0), XYZ(2, 1, 2))
	if b.Y.Size() < MinAxisSize {
		t.Fatalf("expected Y axis to be padded to at least %f; got %f", MinAxisSize, b.Y.Size())
	}
	if b.Y.Min >= 1 || b.Y.Max <= 1 {
		t.Fatalf("expected padding to be symmetric around 1; got %v", b.Y)
	}
	if b.X != (Interval{0, 2}) {
		t.Fatalf("expected X axis to remain untouched; got %v", b.X)
	}

	if !EmptyAABB().IsEmpty() {
		t.Fatal("expected empty box to remain empty")
	}
}

func TestAABBPaddingFarFromOrigin(t *testing.T) {
	// The float32 spacing around these coordinates exceeds MinAxisSize
	for _, y := range []float32{1, 1000, 1500, 3000, 5000, -40000, 1e6} {
		b := AABBFromPoints(XYZ(0, y, 0), XYZ(2, y, 2))
		if b.Y.Size() < MinAxisSize {
			t.Fatalf("expected Y axis at y=%f to be padded to at least %g; got %g", y, MinAxisSize, b.Y.Size())
		}
		if !b.Y.Surrounds(y) {
			t.Fatalf("expected padded Y axis %v to surround %f", b.Y, y)
		}
	}
}

func TestIntervalPadTo(t *testing.T) {
	wide := Interval{Min: 0, Max: 1}
	if got := wide.PadTo(MinAxisSize); got != wide {
		t.Fatalf("expected wide interval to remain untouched; got %v", got)
	}

	// Padding is idempotent
	padded := Interval{Min: 3000, Max: 3000}.PadTo(MinAxisSize)
	if padded.Size() < MinAxisSize {
		t.Fatalf("expected padded size to be at least %g; got %g", MinAxisSize, padded.Size())
	}
	if got := padded.PadTo(MinAxisSize); got != padded {
		t.Fatalf("expected padding an already padded interval to be a no-op; got %v", got)
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABBFromPoints(XYZ(0, 0, 0), XYZ(1, 1, 1))
	b := AABBFromPoints(XYZ(-3, 2, 0.5), XYZ(-2, 4, 7))
	c := AABBFromPoints(XYZ(10, -10, 0), XYZ(11, -9, 1))

	u := UnionAABB(a, b)
	for _, box := range []AABB{a, b} {
		for _, p := range box.Corners() {
			if !u.Contains(p) {
				t.Fatalf("expected union %v to contain corner %v", u, p)
			}
		}
		if !u.Encloses(box) {
			t.Fatalf("expected union %v to enclose %v", u, box)
		}
	}

	if UnionAABB(a, b) != UnionAABB(b, a) {
		t.Fatal("expected union to be commutative")
	}
	if UnionAABB(UnionAABB(a, b), c) != UnionAABB(a, UnionAABB(b, c)) {
		t.Fatal("expected union to be associative")
	}
	if got := UnionAABB(a, EmptyAABB()); got != a {
		t.Fatalf("expected union with the empty box to be %v; got %v", a, got)
	}
	if got := UnionAABB(EmptyAABB(), a); got != a {
		t.Fatalf("expected union with the empty box to be %v; got %v", a, got)
	}
}

func TestAABBAxisInterval(t *testing.T) {
	b := AABBFromIntervals(Interval{0, 1}, Interval{0, 2}, Interval{0, 3})
	specs := []struct {
		axis Axis
		exp  Interval
	}{
		{XAxis, b.X},
		{YAxis, b.Y},
		{ZAxis, b.Z},
		{Axis(3), b.X},
		{Axis(255), b.X},
	}
	for _, s := range specs {
		if got := b.AxisInterval(s.axis); got != s.exp {
			t.Fatalf("expected interval for axis %d to be %v; got %v", s.axis, s.exp, got)
		}
	}
}

func TestAABBLongestAxis(t *testing.T) {
	specs := []struct {
		sizes [3]float32
		exp   Axis
	}{
		{[3]float32{5, 5, 9}, ZAxis},
		{[3]float32{9, 9, 5}, XAxis},
		{[3]float32{1, 9, 9}, YAxis},
		{[3]float32{7, 7, 7}, XAxis},
		{[3]float32{1, 2, 1}, YAxis},
	}
	for _, s := range specs {
		b := AABBFromIntervals(
			Interval{0, s.sizes[0]},
			Interval{0, s.sizes[1]},
			Interval{0, s.sizes[2]},
		)
		if got := b.LongestAxis(); got != s.exp {
			t.Fatalf("expected longest axis for sizes %v to be %d; got %d", s.sizes, s.exp, got)
		}
	}
}

func TestAABBEncode(t *testing.T) {
	b := AABBFromIntervals(Interval{-1, 1}, Interval{-2, 2}, Interval{-3, 3})
	out := b.Encode()
	exp := []float32{-1, 1, -2, 2, -3, 3}
	if len(out) != len(exp) {
		t.Fatalf("expected encoded length to be %d; got %d", len(exp), len(out))
	}
	for i := range exp {
		if out[i] != exp[i] {
			t.Fatalf("expected slot %d to be %f; got %f", i, exp[i], out[i])
		}
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(XYZ(0, 1, 0), math.Pi/2)

	// +X rotates into -Z around +Y
	got := q.Rotate(XYZ(1, 0, 0))
	exp := XYZ(0, 0, -1)
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-exp[i])) > 1e-5 {
			t.Fatalf("expected rotated vector to be %v; got %v", exp, got)
		}
	}

	// Two quarter turns compose into a half turn
	got = q.Mul(q).Rotate(XYZ(1, 0, 0))
	exp = XYZ(-1, 0, 0)
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-exp[i])) > 1e-5 {
			t.Fatalf("expected composed rotation to yield %v; got %v", exp, got)
		}
	}

	if got := QuatIdent().Rotate(XYZ(1, 2, 3)); got != XYZ(1, 2, 3) {
		t.Fatalf("expected identity rotation to leave vector unchanged; got %v", got)
	}
}

func TestAABBCentroid(t *testing.T) {
	box := AABBFromPoints(XYZ(-2, 0, 4), XYZ(2, 6, 8))
	if exp, got := XYZ(0, 3, 6), box.Centroid(); got != exp {
		t.Fatalf("expected centroid to be %v; got %v", exp, got)
	}
}
