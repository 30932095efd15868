package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/achilleasa/prism/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Compile a demo scene and simulate a sequence of frame ticks, displaying
// the per-frame values uploaded to the GPU.
func SimulateFrames(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := sceneFromContext(ctx)
	if err != nil {
		return err
	}

	session, err := tracer.NewSession(sc, tracer.Options{
		MaxAccumulatedFrames: ctx.Int64("max-frames"),
		OrbitSpeed:           float32(ctx.Float64("orbit")),
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Elapsed", "Seed", "Accumulated", "Look from", "Upload"})

	frameTime := ctx.Duration("frame-time")
	start := time.Duration(ctx.Int64("start")) * time.Millisecond
	var uploaded uint64
	for index := 0; index < ctx.Int("frames"); index++ {
		f, err := session.Frame(start + time.Duration(index)*frameTime)
		if err != nil {
			return err
		}

		var frameBytes uint64
		for _, b := range f.Updates {
			frameBytes += b.Size()
		}
		uploaded += frameBytes

		table.Append([]string{
			fmt.Sprintf("%d", index),
			f.Elapsed.String(),
			fmt.Sprintf("%d", f.Seed),
			fmt.Sprintf("%d", f.FrameCount),
			fmt.Sprintf("(%3.3f, %3.3f, %3.3f)", f.ViewData.LookFrom[0], f.ViewData.LookFrom[1], f.ViewData.LookFrom[2]),
			fmt.Sprintf("%d bytes", frameBytes),
		})
	}
	table.SetFooter([]string{"", "", "", "", "TOTAL", fmt.Sprintf("%d bytes", uploaded)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())

	return nil
}
