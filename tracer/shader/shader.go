// Package shader embeds the WGSL declaration of the tracer buffer layouts.
package shader

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// SPIR-V module magic number.
const SPIRVMagic uint32 = 0x07230203

//go:embed shaders/layout.wgsl
var layoutWGSL string

// Get the WGSL source declaring the tracer buffer layouts and bindings.
func Source() string {
	return layoutWGSL
}

// Compile the layout shader to SPIR-V words.
func Compile() ([]uint32, error) {
	spirvBytes, err := naga.Compile(layoutWGSL)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to compile layout shader: %w", err)
	}

	// SPIR-V is a stream of little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
