package input

import (
	"github.com/achilleasa/prism/asset/material"
	"github.com/achilleasa/prism/types"
)

// A sphere primitive. A moving sphere travels from Center to Center1 over
// the shutter interval.
type Sphere struct {
	Center        types.Vec3
	Center1       types.Vec3
	Moving        bool
	Radius        float32
	MaterialIndex int
}

// A planar quadrilateral spanned by the edge vectors U and V from corner Q.
type Quad struct {
	Q             types.Vec3
	U             types.Vec3
	V             types.Vec3
	MaterialIndex int
}

// Camera settings.
type Camera struct {
	LookFrom      types.Vec3
	LookAt        types.Vec3
	Vup           types.Vec3
	VFov          float32
	DefocusAngle  float32
	FocusDistance float32
}

// The scene contains all elements that are processed and optimized by the scene compiler.
type Scene struct {
	Spheres   []Sphere
	Quads     []Quad
	Materials []material.Material
	Camera    *Camera

	// Suggested bounce depth for this scene; zero lets the compiler pick.
	MaxBounces uint32
}

// Create a new scene.
func NewScene() *Scene {
	return &Scene{
		Spheres:   make([]Sphere, 0),
		Quads:     make([]Quad, 0),
		Materials: make([]material.Material, 0),
		Camera: &Camera{
			LookFrom:      types.XYZ(0, 0, 0),
			LookAt:        types.XYZ(0, 0, -1),
			Vup:           types.XYZ(0, 1, 0),
			VFov:          90,
			FocusDistance: 10,
		},
	}
}

// Append a material and return its index.
func (sc *Scene) AddMaterial(mat material.Material) int {
	sc.Materials = append(sc.Materials, mat)
	return len(sc.Materials) - 1
}

// Add a stationary sphere.
func (sc *Scene) AddSphere(center types.Vec3, radius float32, materialIndex int) {
	sc.Spheres = append(sc.Spheres, Sphere{
		Center:        center,
		Center1:       center,
		Radius:        radius,
		MaterialIndex: materialIndex,
	})
}

// Add a sphere that moves from center0 to center1.
func (sc *Scene) AddMovingSphere(center0, center1 types.Vec3, radius float32, materialIndex int) {
	sc.Spheres = append(sc.Spheres, Sphere{
		Center:        center0,
		Center1:       center1,
		Moving:        true,
		Radius:        radius,
		MaterialIndex: materialIndex,
	})
}

// Add a quad.
func (sc *Scene) AddQuad(q, u, v types.Vec3, materialIndex int) {
	sc.Quads = append(sc.Quads, Quad{Q: q, U: u, V: v, MaterialIndex: materialIndex})
}

// Get the total number of primitives in the scene.
func (sc *Scene) PrimitiveCount() int {
	return len(sc.Spheres) + len(sc.Quads)
}
