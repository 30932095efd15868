package geometry

import (
	"errors"
	"fmt"

	"github.com/achilleasa/prism/asset/layout"
	"github.com/achilleasa/prism/types"
)

var (
	ErrDegenerateQuad = errors.New("geometry: quad edges are parallel or zero-length")
)

// Kind identifies the primitive type. The numeric value is written to the
// geometry buffer and drives intersection dispatch in the kernel.
type Kind int

const (
	kindInvalid Kind = iota
	Sphere
	Quad
)

func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Quad:
		return "quad"
	}
	return "invalid"
}

// Layout of an encoded geometry primitive. Spheres and quads share one
// layout sized to the larger of the two:
//
//	[0-2]   sphere center origin | quad Q
//	[3]     sphere center time   | quad D
//	[4-6]   sphere center motion | quad u
//	[7]     sphere radius
//	[8-10]  quad v
//	[11]    material index
//	[12-14] quad normal
//	[15]    kind
//	[16-18] quad w
//	[19]    padding
//	[20-25] bbox
//	[26-27] padding
var Layout = layout.Layout{Align: 16, Size: 112}

// Number of float slots between two consecutive primitives in the geometry buffer.
var Stride = Layout.Stride()

// A Geometry primitive. Instances are immutable once constructed; all derived
// data (bounding box, plane equation) is computed by the constructors.
type Geometry struct {
	Kind Kind

	// Index into the scene material list.
	MaterialIndex int

	// Sphere
	Center types.Ray
	Radius float32

	// Quad
	Q      types.Vec3
	U      types.Vec3
	V      types.Vec3
	Normal types.Vec3
	D      float32
	W      types.Vec3

	bbox types.AABB
}

// Create a stationary sphere.
func NewSphere(center types.Vec3, radius float32, materialIndex int) *Geometry {
	rvec := types.XYZ(radius, radius, radius)
	return &Geometry{
		Kind:          Sphere,
		MaterialIndex: materialIndex,
		Center:        types.Ray{Origin: center},
		Radius:        radius,
		bbox:          types.AABBFromPoints(center.Sub(rvec), center.Add(rvec)),
	}
}

// Create a sphere whose center moves from center0 at time 0 to center1 at
// time 1. The bounding box encloses the sphere at both end points.
func NewMovingSphere(center0, center1 types.Vec3, radius float32, materialIndex int) *Geometry {
	rvec := types.XYZ(radius, radius, radius)
	box0 := types.AABBFromPoints(center0.Sub(rvec), center0.Add(rvec))
	box1 := types.AABBFromPoints(center1.Sub(rvec), center1.Add(rvec))
	return &Geometry{
		Kind:          Sphere,
		MaterialIndex: materialIndex,
		Center:        types.Ray{Origin: center0, Direction: center1.Sub(center0)},
		Radius:        radius,
		bbox:          types.UnionAABB(box0, box1),
	}
}

// Create a planar quad spanned by the corner q and the edge vectors u and v.
// Parallel or zero-length edges yield ErrDegenerateQuad.
func NewQuad(q, u, v types.Vec3, materialIndex int) (*Geometry, error) {
	n := u.Cross(v)
	normal, err := n.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateQuad, err)
	}

	diag1 := types.AABBFromPoints(q, q.Add(u).Add(v))
	diag2 := types.AABBFromPoints(q.Add(u), q.Add(v))

	return &Geometry{
		Kind:          Quad,
		MaterialIndex: materialIndex,
		Q:             q,
		U:             u,
		V:             v,
		Normal:        normal,
		D:             normal.Dot(q),
		W:             n.Div(n.Dot(n)),
		bbox:          types.UnionAABB(diag1, diag2),
	}, nil
}

// Get the primitive AABB.
func (g *Geometry) BBox() types.AABB {
	return g.bbox
}

// Encode primitive.
//
// align(16) size(112)
func (g *Geometry) Encode() []float32 {
	out := make([]float32, Stride)

	switch g.Kind {
	case Sphere:
		copy(out[0:], g.Center.Encode())
		out[7] = g.Radius
	case Quad:
		copy(out[0:], g.Q.Encode())
		out[3] = g.D
		copy(out[4:], g.U.Encode())
		copy(out[8:], g.V.Encode())
		copy(out[12:], g.Normal.Encode())
		copy(out[16:], g.W.Encode())
	}

	out[11] = float32(g.MaterialIndex)
	out[15] = float32(g.Kind)
	copy(out[20:], g.bbox.Encode())
	return out
}
