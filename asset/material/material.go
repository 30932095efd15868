package material

import (
	"github.com/achilleasa/prism/asset/layout"
	"github.com/achilleasa/prism/types"
)

// Layout of an encoded material:
//
//	[0-2] albedo
//	[3]   fuzz
//	[4]   refraction index
//	[5]   kind
//	[6-7] padding
var Layout = layout.Layout{Align: 16, Size: 32}

// Number of float slots between two consecutive materials in the material buffer.
var Stride = Layout.Stride()

// A Material is a closed union over the supported surface models. All kinds
// share one struct layout; fields that do not apply to a kind are zero.
// Geometry refers to materials by their index in the scene material list so
// that many primitives can share a single material.
type Material struct {
	Kind Kind

	// Lambertian and Metal
	Albedo types.Vec3

	// Metal
	Fuzz float32

	// Dielectric
	RefractionIndex float32
}

// Create a diffuse material.
func NewLambertian(albedo types.Vec3) Material {
	return Material{Kind: Lambertian, Albedo: albedo}
}

// Create a reflective material. Fuzz is clamped to [0, 1].
func NewMetal(albedo types.Vec3, fuzz float32) Material {
	if fuzz < 0 {
		fuzz = 0
	} else if fuzz > 1 {
		fuzz = 1
	}
	return Material{Kind: Metal, Albedo: albedo, Fuzz: fuzz}
}

// Create a refractive material.
func NewDielectric(refractionIndex float32) Material {
	return Material{Kind: Dielectric, RefractionIndex: refractionIndex}
}

// Encode material.
//
// align(16) size(32)
func (m Material) Encode() []float32 {
	out := make([]float32, Stride)
	copy(out[0:], m.Albedo.Encode())
	out[3] = m.Fuzz
	out[4] = m.RefractionIndex
	out[5] = float32(m.Kind)
	return out
}
