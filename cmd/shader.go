package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/prism/tracer"
	"github.com/achilleasa/prism/tracer/shader"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Compile the tracer layout shader and list the buffer bindings it expects.
func ShaderInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := sceneFromContext(ctx)
	if err != nil {
		return err
	}
	session, err := tracer.NewSession(sc, tracer.Options{})
	if err != nil {
		return err
	}

	spirv, err := shader.Compile()
	if err != nil {
		return err
	}
	logger.Noticef("compiled layout shader to %d SPIR-V words", len(spirv))

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Binding", "Buffer", "Type", "Refresh", "Stride", "Size"})
	for _, b := range session.Buffers().Bindings() {
		table.Append([]string{
			fmt.Sprintf("%d", b.Binding),
			b.Label,
			b.BindingType.String(),
			b.Refresh.String(),
			fmt.Sprintf("%d", b.Stride),
			fmt.Sprintf("%d bytes", b.Size()),
		})
	}

	table.Render()
	logger.Noticef("buffer bindings\n%s", buf.String())

	return nil
}
