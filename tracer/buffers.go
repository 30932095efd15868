package tracer

import (
	"fmt"

	"github.com/achilleasa/prism/asset/geometry"
	"github.com/achilleasa/prism/asset/layout"
	"github.com/achilleasa/prism/asset/material"
	"github.com/achilleasa/prism/asset/scene"
	"github.com/gogpu/gputypes"
)

// Binding slots in bind group 0. These must match the @binding annotations
// in the tracer shader.
const (
	CameraBinding uint32 = iota
	GeometryBinding
	ShaderConfigBinding
	SeedBinding
	MaterialsBinding
	BvhNodesBinding
	FrameCountBinding
)

// Vertices of two triangles covering the whole clip space.
var fullScreenQuad = []float32{-1, -1, 1, -1, 1, 1, -1, -1, 1, 1, -1, 1}

// A Buffer holds the encoded contents of one GPU buffer together with the
// information needed to allocate and bind it.
type Buffer struct {
	Label       string
	Binding     uint32
	BindingType gputypes.BufferBindingType
	Usage       gputypes.BufferUsage
	Refresh     Refresh

	// Number of float slots per element.
	Stride int

	// Encoded contents.
	Data []float32
}

// Get buffer size in bytes.
func (b *Buffer) Size() uint64 {
	return uint64(len(b.Data) * layout.SlotSize)
}

// Get the number of elements stored in the buffer.
func (b *Buffer) Len() int {
	if b.Stride == 0 {
		return 0
	}
	return len(b.Data) / b.Stride
}

// Get the buffer contents as little-endian bytes ready for upload.
func (b *Buffer) Bytes() []byte {
	return layout.Bytes(b.Data)
}

// Get a descriptor for allocating this buffer.
func (b *Buffer) Descriptor() gputypes.BufferDescriptor {
	return gputypes.BufferDescriptor{
		Label: b.Label,
		Size:  b.Size(),
		Usage: b.Usage,
	}
}

// Get the bind group layout entry for this buffer.
func (b *Buffer) LayoutEntry() gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    b.Binding,
		Visibility: gputypes.ShaderStageCompute,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           b.BindingType,
			MinBindingSize: uint64(b.Stride * layout.SlotSize),
		},
	}
}

func (b *Buffer) String() string {
	return fmt.Sprintf("%s(binding %d, %s, %d bytes, %s)", b.Label, b.Binding, b.BindingType, b.Size(), b.Refresh)
}

func uniformBuffer(label string, binding uint32, refresh Refresh, l layout.Layout) *Buffer {
	return &Buffer{
		Label:       label,
		Binding:     binding,
		BindingType: gputypes.BufferBindingTypeUniform,
		Usage:       gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		Refresh:     refresh,
		Stride:      l.Stride(),
		Data:        make([]float32, l.Stride()),
	}
}

func storageBuffer(label string, binding uint32, stride int) *Buffer {
	return &Buffer{
		Label:       label,
		Binding:     binding,
		BindingType: gputypes.BufferBindingTypeReadOnlyStorage,
		Usage:       gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
		Refresh:     RefreshPerBuild,
		Stride:      stride,
	}
}

// The set of buffers consumed by the tracer shader.
type BufferSet struct {
	// Per-frame uniforms. Their contents here stay zeroed; Session.Frame
	// returns freshly encoded copies.
	Camera     *Buffer
	Seed       *Buffer
	FrameCount *Buffer

	// Scene data
	Geometry     *Buffer
	ShaderConfig *Buffer
	Materials    *Buffer
	BvhNodes     *Buffer

	// Vertices for the full-screen presentation pass.
	QuadVertices *Buffer
}

// Allocate new buffer set.
func newBufferSet() *BufferSet {
	return &BufferSet{
		Camera:       uniformBuffer("camera data", CameraBinding, RefreshPerFrame, scene.CameraViewDataLayout),
		Seed:         uniformBuffer("seed", SeedBinding, RefreshPerFrame, layout.ScalarLayout),
		FrameCount:   uniformBuffer("frame count", FrameCountBinding, RefreshPerFrame, layout.ScalarLayout),
		Geometry:     storageBuffer("geometry", GeometryBinding, geometry.Stride),
		ShaderConfig: uniformBuffer("shader config", ShaderConfigBinding, RefreshPerBuild, scene.ShaderConfigLayout),
		Materials:    storageBuffer("materials", MaterialsBinding, material.Stride),
		BvhNodes:     storageBuffer("bvh nodes", BvhNodesBinding, scene.BvhNodeStride),
		QuadVertices: &Buffer{
			Label:   "full screen quad",
			Usage:   gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
			Refresh: RefreshPerBuild,
			Stride:  2,
			Data:    append([]float32(nil), fullScreenQuad...),
		},
	}
}

// Copy the set. Buffer contents are shared; setScene replaces Data slices
// instead of writing into them so copies are never modified.
func (bs *BufferSet) clone() *BufferSet {
	copyBuf := func(b *Buffer) *Buffer {
		dup := *b
		return &dup
	}
	return &BufferSet{
		Camera:       copyBuf(bs.Camera),
		Seed:         copyBuf(bs.Seed),
		FrameCount:   copyBuf(bs.FrameCount),
		Geometry:     copyBuf(bs.Geometry),
		ShaderConfig: copyBuf(bs.ShaderConfig),
		Materials:    copyBuf(bs.Materials),
		BvhNodes:     copyBuf(bs.BvhNodes),
		QuadVertices: copyBuf(bs.QuadVertices),
	}
}

// Encode scene data into the per-build buffers.
func (bs *BufferSet) setScene(sc *scene.Scene) {
	bs.Geometry.Data = sc.EncodeGeometry()
	bs.Materials.Data = sc.EncodeMaterials()
	bs.BvhNodes.Data = sc.EncodeBvh()
	bs.ShaderConfig.Data = sc.Config.Encode()
}

// Get the bound buffers ordered by binding slot.
func (bs *BufferSet) Bindings() []*Buffer {
	return []*Buffer{
		bs.Camera,
		bs.Geometry,
		bs.ShaderConfig,
		bs.Seed,
		bs.Materials,
		bs.BvhNodes,
		bs.FrameCount,
	}
}

// Get the bind group layout entries for all bound buffers.
func (bs *BufferSet) BindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	bindings := bs.Bindings()
	entries := make([]gputypes.BindGroupLayoutEntry, len(bindings))
	for index, b := range bindings {
		entries[index] = b.LayoutEntry()
	}
	return entries
}

// Get the vertex layout of the full-screen quad buffer: one vec2f position
// at shader location 0.
func (bs *BufferSet) QuadVertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(bs.QuadVertices.Stride * layout.SlotSize),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
	}
}
