package compiler

import (
	"errors"
	"fmt"
	"time"

	"github.com/achilleasa/prism/asset/compiler/bvh"
	"github.com/achilleasa/prism/asset/compiler/input"
	"github.com/achilleasa/prism/asset/geometry"
	"github.com/achilleasa/prism/asset/layout"
	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/log"
)

var (
	ErrNoMaterials   = errors.New("compiler: scene defines no materials")
	ErrMaterialIndex = errors.New("compiler: primitive references an undefined material")
)

type sceneCompiler struct {
	parsedScene    *input.Scene
	optimizedScene *scene.Scene
	opts           Options
	logger         log.Logger
}

// Compile a raw scene description into a GPU-friendly optimized scene format.
func Compile(parsedScene *input.Scene, opts Options) (*scene.Scene, error) {
	compiler := &sceneCompiler{
		parsedScene:    parsedScene,
		optimizedScene: &scene.Scene{},
		opts:           opts,
		logger:         log.New("scene compiler"),
	}

	start := time.Now()
	compiler.logger.Noticef("compiling scene")

	var err error
	err = compiler.processMaterials()
	if err != nil {
		return nil, err
	}

	err = compiler.createGeometry()
	if err != nil {
		return nil, err
	}

	err = compiler.partitionGeometry()
	if err != nil {
		return nil, err
	}

	err = compiler.setupCamera()
	if err != nil {
		return nil, err
	}

	compiler.setupShaderConfig()

	compiler.logger.Noticef("compiled scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return compiler.optimizedScene, nil
}

// Copy material definitions. Material indices are written to the geometry
// buffer as floats so the list must stay within the exact integer range.
func (sc *sceneCompiler) processMaterials() error {
	start := time.Now()
	sc.logger.Noticef("processing %d materials", len(sc.parsedScene.Materials))

	if len(sc.parsedScene.Materials) == 0 {
		return ErrNoMaterials
	}
	if err := layout.CheckExactInteger(len(sc.parsedScene.Materials) - 1); err != nil {
		return fmt.Errorf("compiler: material list too large: %w", err)
	}

	sc.optimizedScene.MaterialList = append(sc.optimizedScene.MaterialList[:0], sc.parsedScene.Materials...)

	sc.logger.Noticef("processed materials in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Convert raw sphere and quad definitions into geometry primitives.
func (sc *sceneCompiler) createGeometry() error {
	start := time.Now()
	sc.logger.Noticef("creating geometry (%d spheres, %d quads)", len(sc.parsedScene.Spheres), len(sc.parsedScene.Quads))

	if err := layout.CheckExactInteger(sc.parsedScene.PrimitiveCount()); err != nil {
		return fmt.Errorf("compiler: too many primitives: %w", err)
	}

	geomList := make([]*geometry.Geometry, 0, sc.parsedScene.PrimitiveCount())
	for index, s := range sc.parsedScene.Spheres {
		if err := sc.checkMaterialIndex(s.MaterialIndex); err != nil {
			return fmt.Errorf("sphere %d: %w", index, err)
		}

		if s.Moving {
			geomList = append(geomList, geometry.NewMovingSphere(s.Center, s.Center1, s.Radius, s.MaterialIndex))
		} else {
			geomList = append(geomList, geometry.NewSphere(s.Center, s.Radius, s.MaterialIndex))
		}
	}
	for index, q := range sc.parsedScene.Quads {
		if err := sc.checkMaterialIndex(q.MaterialIndex); err != nil {
			return fmt.Errorf("quad %d: %w", index, err)
		}

		g, err := geometry.NewQuad(q.Q, q.U, q.V, q.MaterialIndex)
		if err != nil {
			return fmt.Errorf("quad %d: %w", index, err)
		}
		geomList = append(geomList, g)
	}

	sc.optimizedScene.GeometryList = geomList
	sc.logger.Noticef("created geometry in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

func (sc *sceneCompiler) checkMaterialIndex(index int) error {
	if index < 0 || index >= len(sc.optimizedScene.MaterialList) {
		return fmt.Errorf("%w: index %d, material count %d", ErrMaterialIndex, index, len(sc.optimizedScene.MaterialList))
	}
	return nil
}

// Generate a BVH tree for the scene geometry. Each primitive ends up in its
// own leaf; the geometry list is reordered to match the leaf object indices.
func (sc *sceneCompiler) partitionGeometry() error {
	start := time.Now()
	sc.logger.Noticef("partitioning geometry")

	nodes, err := bvh.Build(sc.optimizedScene.GeometryList)
	if err != nil {
		return err
	}
	if err = layout.CheckExactInteger(len(nodes) - 1); err != nil {
		return fmt.Errorf("compiler: bvh too large: %w", err)
	}
	if err = bvh.Validate(nodes, sc.optimizedScene.GeometryList); err != nil {
		return err
	}
	sc.optimizedScene.BvhNodeList = nodes

	sc.logger.Noticef("partitioned geometry in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Set up the scene camera and verify that it produces a valid view basis.
func (sc *sceneCompiler) setupCamera() error {
	cam := scene.NewCamera(sc.opts.FrameW, sc.opts.FrameH)
	if in := sc.parsedScene.Camera; in != nil {
		cam.LookFrom = in.LookFrom
		cam.LookAt = in.LookAt
		cam.Vup = in.Vup
		cam.VFov = in.VFov
		cam.DefocusAngle = in.DefocusAngle
		cam.FocusDistance = in.FocusDistance
	}

	if _, err := cam.ViewData(); err != nil {
		return err
	}

	sc.optimizedScene.Camera = cam
	return nil
}

func (sc *sceneCompiler) setupShaderConfig() {
	bounces := sc.opts.NumBounces
	if bounces == 0 {
		bounces = sc.parsedScene.MaxBounces
	}
	if bounces == 0 {
		bounces = defaultBounces
	}

	sc.optimizedScene.Config = scene.ShaderConfig{
		MaxBounces:      bounces,
		SamplesPerPixel: sc.opts.SamplesPerPixel,
	}
}
