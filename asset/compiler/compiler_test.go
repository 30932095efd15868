package compiler

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/achilleasa/prism/asset/compiler/bvh"
	"github.com/achilleasa/prism/asset/compiler/input"
	"github.com/achilleasa/prism/asset/geometry"
	"github.com/achilleasa/prism/asset/material"
	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/types"
)

func TestCompileRandomSpheres(t *testing.T) {
	in := input.RandomSpheresScene(rand.New(rand.NewSource(1)), input.DefaultDemoOptions())
	opts := DefaultOptions()
	opts.FrameW, opts.FrameH = 320, 200

	sc, err := Compile(in, opts)
	if err != nil {
		t.Fatal(err)
	}

	if got, exp := len(sc.GeometryList), len(in.Spheres); got != exp {
		t.Fatalf("expected %d geometry primitives; got %d", exp, got)
	}
	if got, exp := len(sc.BvhNodeList), 2*len(in.Spheres)-1; got != exp {
		t.Fatalf("expected %d bvh nodes; got %d", exp, got)
	}
	if err = bvh.Validate(sc.BvhNodeList, sc.GeometryList); err != nil {
		t.Fatal(err)
	}
	if len(sc.MaterialList) != len(in.Materials) {
		t.Fatalf("expected %d materials; got %d", len(in.Materials), len(sc.MaterialList))
	}

	if sc.Camera.ImageWidth != 320 || sc.Camera.ImageHeight != 200 {
		t.Fatalf("expected camera raster to be 320x200; got %dx%d", sc.Camera.ImageWidth, sc.Camera.ImageHeight)
	}
	if sc.Camera.VFov != 20 || sc.Camera.LookFrom != types.XYZ(13, 2, 3) {
		t.Fatalf("expected camera settings to be copied from the input scene; got %+v", *sc.Camera)
	}

	exp := scene.ShaderConfig{MaxBounces: 5, SamplesPerPixel: 1}
	if sc.Config != exp {
		t.Fatalf("expected shader config %+v; got %+v", exp, sc.Config)
	}
}

func TestCompileQuads(t *testing.T) {
	opts := DefaultOptions()
	opts.NumBounces = 8

	sc, err := Compile(input.QuadsScene(), opts)
	if err != nil {
		t.Fatal(err)
	}

	for index, g := range sc.GeometryList {
		if g.Kind != geometry.Quad {
			t.Fatalf("expected primitive %d to be a quad; got %s", index, g.Kind)
		}
	}
	if len(sc.BvhNodeList) != 9 {
		t.Fatalf("expected 9 bvh nodes; got %d", len(sc.BvhNodeList))
	}
	if sc.Config.MaxBounces != 8 {
		t.Fatalf("expected option bounce depth to override the scene; got %d", sc.Config.MaxBounces)
	}
}

func TestCompileMovingSpheres(t *testing.T) {
	in := input.NewScene()
	mat := in.AddMaterial(material.NewLambertian(types.XYZ(0.5, 0.5, 0.5)))
	in.AddMovingSphere(types.XYZ(0, 0, -2), types.XYZ(0, 1, -2), 0.5, mat)
	in.AddSphere(types.XYZ(3, 0, -2), 0.5, mat)

	sc, err := Compile(in, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	var moving *geometry.Geometry
	for _, g := range sc.GeometryList {
		if g.Center.Direction != (types.Vec3{}) {
			moving = g
		}
	}
	if moving == nil {
		t.Fatalf("expected a moving sphere in the compiled geometry")
	}
	if !moving.BBox().Contains(types.XYZ(0, 1.4, -2)) {
		t.Fatalf("expected moving sphere bbox to cover the end position")
	}
	if sc.Config.MaxBounces != defaultBounces {
		t.Fatalf("expected default bounce depth %d; got %d", defaultBounces, sc.Config.MaxBounces)
	}
}

func TestCompileErrors(t *testing.T) {
	in := input.NewScene()
	in.AddSphere(types.XYZ(0, 0, 0), 1, 0)
	if _, err := Compile(in, DefaultOptions()); err != ErrNoMaterials {
		t.Fatalf("expected ErrNoMaterials; got %v", err)
	}

	in = input.NewScene()
	in.AddMaterial(material.NewDielectric(1.5))
	in.AddSphere(types.XYZ(0, 0, 0), 1, 3)
	if _, err := Compile(in, DefaultOptions()); !errors.Is(err, ErrMaterialIndex) {
		t.Fatalf("expected ErrMaterialIndex; got %v", err)
	}

	in = input.NewScene()
	mat := in.AddMaterial(material.NewDielectric(1.5))
	in.AddQuad(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0), types.XYZ(2, 0, 0), mat)
	if _, err := Compile(in, DefaultOptions()); !errors.Is(err, geometry.ErrDegenerateQuad) {
		t.Fatalf("expected ErrDegenerateQuad; got %v", err)
	}

	in = input.NewScene()
	in.AddMaterial(material.NewDielectric(1.5))
	if _, err := Compile(in, DefaultOptions()); err != bvh.ErrEmptyScene {
		t.Fatalf("expected ErrEmptyScene; got %v", err)
	}

	in = input.NewScene()
	mat = in.AddMaterial(material.NewDielectric(1.5))
	in.AddSphere(types.XYZ(0, 0, 0), 1, mat)
	in.Camera.LookAt = in.Camera.LookFrom
	if _, err := Compile(in, DefaultOptions()); !errors.Is(err, scene.ErrDegenerateCamera) {
		t.Fatalf("expected ErrDegenerateCamera; got %v", err)
	}

	if _, err := Compile(in, Options{}); err != scene.ErrInvalidRaster {
		t.Fatalf("expected ErrInvalidRaster; got %v", err)
	}
}
