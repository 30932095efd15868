package types

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// Boxes thinner than this along any axis are padded symmetrically at
// construction time. Flat geometry such as quads would otherwise produce
// zero-thickness boxes that the GPU slab test can miss.
const MinAxisSize float32 = 1e-4

// An axis-aligned bounding box defined by one interval per axis.
type AABB struct {
	X Interval
	Y Interval
	Z Interval
}

// Create an empty box. It is the identity element for UnionAABB and is the
// only constructor that does not apply padding.
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

// Create a box from three intervals.
func AABBFromIntervals(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padToMinimums()
}

// Create a box that spans two corner points given in any order.
func AABBFromPoints(a, b Vec3) AABB {
	min := MinVec3(a, b)
	max := MaxVec3(a, b)
	return AABB{
		X: Interval{Min: min[0], Max: max[0]},
		Y: Interval{Min: min[1], Max: max[1]},
		Z: Interval{Min: min[2], Max: max[2]},
	}.padToMinimums()
}

// Create the smallest box enclosing both a and b. Both inputs are already
// padded so the union is not padded again; this keeps it exactly
// commutative and associative.
func UnionAABB(a, b AABB) AABB {
	return AABB{
		X: UnionInterval(a.X, b.X),
		Y: UnionInterval(a.Y, b.Y),
		Z: UnionInterval(a.Z, b.Z),
	}
}

func (b AABB) padToMinimums() AABB {
	if b.IsEmpty() {
		return b
	}
	b.X = b.X.PadTo(MinAxisSize)
	b.Y = b.Y.PadTo(MinAxisSize)
	b.Z = b.Z.PadTo(MinAxisSize)
	return b
}

// Check whether the box encloses no points along at least one axis.
func (b AABB) IsEmpty() bool {
	return b.X.Min > b.X.Max || b.Y.Min > b.Y.Max || b.Z.Min > b.Z.Max
}

// Get the interval for the given axis. 1 selects Y, 2 selects Z and every
// other value, including out of range ones, selects X.
func (b AABB) AxisInterval(axis Axis) Interval {
	switch axis {
	case YAxis:
		return b.Y
	case ZAxis:
		return b.Z
	default:
		return b.X
	}
}

// Get the axis with the largest extent. Ties resolve to the lower axis.
func (b AABB) LongestAxis() Axis {
	best := XAxis
	bestSize := b.X.Size()
	if size := b.Y.Size(); size > bestSize {
		best, bestSize = YAxis, size
	}
	if size := b.Z.Size(); size > bestSize {
		best = ZAxis
	}
	return best
}

// Check if point p lies inside the box.
func (b AABB) Contains(p Vec3) bool {
	return b.X.Contains(p[0]) && b.Y.Contains(p[1]) && b.Z.Contains(p[2])
}

// Check if other lies completely inside the box.
func (b AABB) Encloses(other AABB) bool {
	return b.X.Min <= other.X.Min && other.X.Max <= b.X.Max &&
		b.Y.Min <= other.Y.Min && other.Y.Max <= b.Y.Max &&
		b.Z.Min <= other.Z.Min && other.Z.Max <= b.Z.Max
}

// Get min and max corners.
func (b AABB) Corners() [2]Vec3 {
	return [2]Vec3{
		{b.X.Min, b.Y.Min, b.Z.Min},
		{b.X.Max, b.Y.Max, b.Z.Max},
	}
}

// Get box center.
func (b AABB) Centroid() Vec3 {
	c := b.Corners()
	return c[0].Add(c[1]).Mul(0.5)
}

// align(4) size(24)
func (b AABB) Encode() []float32 {
	out := make([]float32, 6)
	copy(out[0:], b.X.Encode())
	copy(out[2:], b.Y.Encode())
	copy(out[4:], b.Z.Encode())
	return out
}
