package input

import (
	"math/rand"

	"github.com/achilleasa/prism/asset/material"
	"github.com/achilleasa/prism/types"
)

type DemoOptions struct {
	// Small spheres are scattered on a (2*GridRange)^2 grid.
	GridRange int

	// Radius of the scattered spheres.
	SmallRadius float32

	// Give diffuse spheres a random vertical motion.
	MovingSpheres bool
}

// Get the default demo options.
func DefaultDemoOptions() DemoOptions {
	return DemoOptions{
		GridRange:   11,
		SmallRadius: 0.2,
	}
}

// Generate the "final render" scene: a large ground sphere, three feature
// spheres (glass, diffuse, metal) and a grid of small spheres with random
// materials. The same rng state always produces the same scene.
func RandomSpheresScene(rng *rand.Rand, opts DemoOptions) *Scene {
	sc := NewScene()
	sc.Camera = &Camera{
		LookFrom:      types.XYZ(13, 2, 3),
		LookAt:        types.XYZ(0, 0, 0),
		Vup:           types.XYZ(0, 1, 0),
		VFov:          20,
		DefocusAngle:  0,
		FocusDistance: 10,
	}
	sc.MaxBounces = 5

	groundMat := sc.AddMaterial(material.NewLambertian(types.XYZ(0.5, 0.5, 0.5)))
	glassMat := sc.AddMaterial(material.NewDielectric(1.5))
	diffuseMat := sc.AddMaterial(material.NewLambertian(types.XYZ(0.4, 0.2, 0.1)))
	metalMat := sc.AddMaterial(material.NewMetal(types.XYZ(0.7, 0.6, 0.5), 0))

	r := opts.SmallRadius
	keepOut := types.XYZ(4, r, 0)
	for a := -opts.GridRange; a < opts.GridRange; a++ {
		for b := -opts.GridRange; b < opts.GridRange; b++ {
			chooseMat := rng.Float32()
			center := types.XYZ(
				float32(a)*2.5+0.9*rng.Float32(),
				r,
				float32(b)*1.2+0.9*rng.Float32(),
			)

			if center.Sub(keepOut).Len() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				rv := randomVec3(rng, 0, 1)
				albedo := rv.MulVec(rv)
				matIndex := sc.AddMaterial(material.NewLambertian(albedo))
				if opts.MovingSpheres {
					sc.AddMovingSphere(center, center.Add(types.XYZ(0, randomRange(rng, 0, 0.5), 0)), r, matIndex)
				} else {
					sc.AddSphere(center, r, matIndex)
				}
			case chooseMat < 0.95:
				albedo := randomVec3(rng, 0.5, 1)
				fuzz := randomRange(rng, 0, 0.5)
				sc.AddSphere(center, r, sc.AddMaterial(material.NewMetal(albedo, fuzz)))
			default:
				sc.AddSphere(center, r, sc.AddMaterial(material.NewDielectric(1.5)))
			}
		}
	}

	sc.AddSphere(types.XYZ(0, -1000, 0), 1000, groundMat)
	sc.AddSphere(types.XYZ(0, 1, 0), 1, glassMat)
	sc.AddSphere(types.XYZ(-4, 1, 0), 1, diffuseMat)
	sc.AddSphere(types.XYZ(4, 1, 0), 1, metalMat)

	return sc
}

// Generate a scene with five colored quads facing a camera on the +Z axis.
func QuadsScene() *Scene {
	sc := NewScene()
	sc.Camera = &Camera{
		LookFrom:      types.XYZ(0, 0, 9),
		LookAt:        types.XYZ(0, 0, 0),
		Vup:           types.XYZ(0, 1, 0),
		VFov:          80,
		FocusDistance: 10,
	}
	sc.MaxBounces = 50

	leftRed := sc.AddMaterial(material.NewLambertian(types.XYZ(1.0, 0.2, 0.2)))
	backGreen := sc.AddMaterial(material.NewLambertian(types.XYZ(0.2, 1.0, 0.2)))
	rightBlue := sc.AddMaterial(material.NewLambertian(types.XYZ(0.2, 0.2, 1.0)))
	upperOrange := sc.AddMaterial(material.NewLambertian(types.XYZ(1.0, 0.5, 0.0)))
	lowerTeal := sc.AddMaterial(material.NewLambertian(types.XYZ(0.2, 0.8, 0.8)))

	sc.AddQuad(types.XYZ(-3, -2, 5), types.XYZ(0, 0, -4), types.XYZ(0, 4, 0), leftRed)
	sc.AddQuad(types.XYZ(-2, -2, 0), types.XYZ(4, 0, 0), types.XYZ(0, 4, 0), backGreen)
	sc.AddQuad(types.XYZ(3, -2, 1), types.XYZ(0, 0, 4), types.XYZ(0, 4, 0), rightBlue)
	sc.AddQuad(types.XYZ(-2, 3, 1), types.XYZ(4, 0, 0), types.XYZ(0, 0, 4), upperOrange)
	sc.AddQuad(types.XYZ(-2, -3, 5), types.XYZ(4, 0, 0), types.XYZ(0, 0, -4), lowerTeal)

	return sc
}

func randomRange(rng *rand.Rand, min, max float32) float32 {
	return min + (max-min)*rng.Float32()
}

func randomVec3(rng *rand.Rand, min, max float32) types.Vec3 {
	return types.XYZ(randomRange(rng, min, max), randomRange(rng, min, max), randomRange(rng, min, max))
}
