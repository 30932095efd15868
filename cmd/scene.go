package cmd

import (
	"fmt"
	"math/rand"

	"github.com/achilleasa/prism/asset/compiler"
	"github.com/achilleasa/prism/asset/compiler/input"
	"github.com/achilleasa/prism/asset/scene"
	"github.com/urfave/cli"
)

// Names of the built-in demo scenes.
const (
	SpheresScene = "spheres"
	QuadsScene   = "quads"
)

// Flags shared by all commands that compile a scene.
var SceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene",
		Value: SpheresScene,
		Usage: "demo scene to compile (spheres, quads)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "random seed for scene generation",
	},
	cli.BoolFlag{
		Name:  "motion",
		Usage: "give diffuse spheres a random vertical motion",
	},
	cli.IntFlag{
		Name:  "width",
		Value: 1024,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 1024,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: 1,
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "bounces",
		Value: 0,
		Usage: "max ray bounces (0 uses the scene default)",
	},
}

// Generate and compile one of the demo scenes.
func buildScene(name string, seed int64, demoOpts input.DemoOptions, opts compiler.Options) (*scene.Scene, error) {
	var in *input.Scene
	switch name {
	case SpheresScene:
		in = input.RandomSpheresScene(rand.New(rand.NewSource(seed)), demoOpts)
	case QuadsScene:
		in = input.QuadsScene()
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}

	return compiler.Compile(in, opts)
}

func sceneFromContext(ctx *cli.Context) (*scene.Scene, error) {
	demoOpts := input.DefaultDemoOptions()
	demoOpts.MovingSpheres = ctx.Bool("motion")

	opts := compiler.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		NumBounces:      uint32(ctx.Int("bounces")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
	}

	return buildScene(ctx.String("scene"), ctx.Int64("seed"), demoOpts, opts)
}

// Compile a demo scene and display its buffer statistics.
func CompileScene(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("compiling scene: %s", ctx.String("scene"))
	sc, err := sceneFromContext(ctx)
	if err != nil {
		return err
	}

	// Display compiled scene info
	logger.Noticef("scene information:\n%s", sc.Stats())

	return nil
}
