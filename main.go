package main

import (
	"fmt"
	"os"
	"time"

	"github.com/achilleasa/prism/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "prism"
	app.Usage = "prepare raytracer scenes for GPU upload"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "compile a demo scene and display buffer statistics",
			Description: `
Generate one of the built-in demo scenes, build a BVH tree to optimize
ray intersection tests and package scene elements in a GPU-friendly format.`,
			Flags:  cmd.SceneFlags,
			Action: cmd.CompileScene,
		},
		{
			Name:  "frames",
			Usage: "simulate frame ticks and display per-frame uniform values",
			Description: `
Compile a demo scene and advance a tracer session through a sequence of
frame timestamps. For each frame the seed, accumulated frame count and
camera position uploaded to the GPU are displayed.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "frames",
					Value: 10,
					Usage: "number of frames to simulate",
				},
				cli.DurationFlag{
					Name:  "frame-time",
					Value: 16 * time.Millisecond,
					Usage: "time between frames",
				},
				cli.Int64Flag{
					Name:  "start",
					Value: 0,
					Usage: "timestamp of the first frame in milliseconds",
				},
				cli.Int64Flag{
					Name:  "max-frames",
					Value: 0,
					Usage: "max accumulated frames (0 for unlimited)",
				},
				cli.Float64Flag{
					Name:  "orbit",
					Value: 0,
					Usage: "camera orbit speed in degrees per second",
				},
			}, cmd.SceneFlags...),
			Action: cmd.SimulateFrames,
		},
		{
			Name:   "shader",
			Usage:  "compile the tracer layout shader and list buffer bindings",
			Flags:  cmd.SceneFlags,
			Action: cmd.ShaderInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
