package scene

import "github.com/achilleasa/prism/asset/layout"

// Layout of the encoded shader configuration:
//
//	[0] max bounce depth
//	[1] samples per pixel
var ShaderConfigLayout = layout.Layout{Align: 4, Size: 8}

// Kernel settings that stay constant for the lifetime of a compiled scene.
type ShaderConfig struct {
	// Maximum number of ray bounces before a path is terminated.
	MaxBounces uint32

	// Number of samples traced per pixel and frame.
	SamplesPerPixel uint32
}

// align(4) size(8)
func (c ShaderConfig) Encode() []float32 {
	return []float32{float32(c.MaxBounces), float32(c.SamplesPerPixel)}
}
