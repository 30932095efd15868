package scene

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/achilleasa/prism/asset/geometry"
	"github.com/achilleasa/prism/asset/layout"
	"github.com/achilleasa/prism/asset/material"
	"github.com/achilleasa/prism/types"
	"github.com/olekukonko/tablewriter"
)

const (
	// Sentinel value for unused BVH node indices.
	InvalidIndex int32 = -1

	// The BVH root is always the first node in the node list.
	BvhRootIndex = 0
)

// Layout of an encoded BVH node:
//
//	[0-5]  bbox
//	[6-7]  padding
//	[8]    left child node index or -1
//	[9]    right child node index or -1
//	[10]   object index or -1
//	[11]   padding
var BvhNodeLayout = layout.Layout{Align: 16, Size: 48}

// Number of float slots between two consecutive nodes in the BVH buffer.
var BvhNodeStride = BvhNodeLayout.Stride()

// Bvh nodes are stored in a flat list and reference each other by index:
//
// - For internal nodes Left and Right point to the child nodes and
// ObjectIndex is -1.
// - For leafs ObjectIndex points to a primitive in the (reordered) scene
// geometry list and Left/Right are -1.
type BvhNode struct {
	BBox        types.AABB
	Left        int32
	Right       int32
	ObjectIndex int32
}

// Create a node with all index slots set to InvalidIndex.
func NewBvhNode(bbox types.AABB) BvhNode {
	return BvhNode{
		BBox:        bbox,
		Left:        InvalidIndex,
		Right:       InvalidIndex,
		ObjectIndex: InvalidIndex,
	}
}

// Set left and right child node indices.
func (n *BvhNode) SetChildNodes(left, right uint32) {
	n.Left = int32(left)
	n.Right = int32(right)
	n.ObjectIndex = InvalidIndex
}

// Set the primitive index for a leaf.
func (n *BvhNode) SetObjectIndex(index uint32) {
	n.Left = InvalidIndex
	n.Right = InvalidIndex
	n.ObjectIndex = int32(index)
}

// Check if this is a leaf node.
func (n *BvhNode) IsLeaf() bool {
	return n.ObjectIndex != InvalidIndex
}

// Encode node.
//
// align(16) size(48)
func (n BvhNode) Encode() []float32 {
	out := make([]float32, BvhNodeStride)
	copy(out[0:], n.BBox.Encode())
	out[8] = float32(n.Left)
	out[9] = float32(n.Right)
	out[10] = float32(n.ObjectIndex)
	return out
}

// A compiled scene ready to be encoded into GPU buffers.
type Scene struct {
	// The BVH node list. Leafs index into GeometryList.
	BvhNodeList []BvhNode

	// Scene primitives in BVH order. This is NOT the order in which the
	// primitives were originally defined.
	GeometryList []*geometry.Geometry

	// Materials referenced by index from GeometryList.
	MaterialList []material.Material

	// The scene camera.
	Camera *Camera

	// Kernel settings.
	Config ShaderConfig
}

// Encode the BVH node list.
func (sc *Scene) EncodeBvh() []float32 {
	return layout.EncodeArray(sc.BvhNodeList, BvhNodeStride)
}

// Encode the primitive list.
func (sc *Scene) EncodeGeometry() []float32 {
	return layout.EncodeArray(sc.GeometryList, geometry.Stride)
}

// Encode the material list.
func (sc *Scene) EncodeMaterials() []float32 {
	return layout.EncodeArray(sc.MaterialList, material.Stride)
}

// Build a tabular representation of scene statistics.
func (sc *Scene) Stats() string {
	var buf bytes.Buffer

	geomCount := map[geometry.Kind]int{}
	for _, g := range sc.GeometryList {
		geomCount[g.Kind]++
	}
	matCount := map[material.Kind]int{}
	for _, m := range sc.MaterialList {
		matCount[m.Kind]++
	}
	leafs := 0
	for index := range sc.BvhNodeList {
		if sc.BvhNodeList[index].IsLeaf() {
			leafs++
		}
	}

	bvhBytes := len(sc.BvhNodeList) * BvhNodeStride * layout.SlotSize
	geomBytes := len(sc.GeometryList) * geometry.Stride * layout.SlotSize
	matBytes := len(sc.MaterialList) * material.Stride * layout.SlotSize
	camBytes := CameraViewDataLayout.Size
	cfgBytes := ShaderConfigLayout.Size

	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Count", "Size"})
	table.Append([]string{"BVH", "---", fmt.Sprint(len(sc.BvhNodeList)), fmtSize(bvhBytes)})
	table.Append([]string{"", "Internal", fmt.Sprint(len(sc.BvhNodeList) - leafs), ""})
	table.Append([]string{"", "Leafs", fmt.Sprint(leafs), ""})
	table.Append([]string{" ", " ", " ", " "})
	table.Append([]string{"Geometry", "---", fmt.Sprint(len(sc.GeometryList)), fmtSize(geomBytes)})
	table.Append([]string{"", "Spheres", fmt.Sprint(geomCount[geometry.Sphere]), ""})
	table.Append([]string{"", "Quads", fmt.Sprint(geomCount[geometry.Quad]), ""})
	table.Append([]string{" ", " ", " ", " "})
	table.Append([]string{"Materials", "---", fmt.Sprint(len(sc.MaterialList)), fmtSize(matBytes)})
	table.Append([]string{"", "Lambertian", fmt.Sprint(matCount[material.Lambertian]), ""})
	table.Append([]string{"", "Metal", fmt.Sprint(matCount[material.Metal]), ""})
	table.Append([]string{"", "Dielectric", fmt.Sprint(matCount[material.Dielectric]), ""})
	table.Append([]string{" ", " ", " ", " "})
	table.Append([]string{"Uniforms", "---", "2", fmtSize(camBytes + cfgBytes)})
	table.Append([]string{"", "Camera", "1", fmtSize(camBytes)})
	table.Append([]string{"", "Shader config", "1", fmtSize(cfgBytes)})
	table.SetFooter([]string{"Total", " ", " ", strings.TrimLeft(fmtSize(bvhBytes+geomBytes+matBytes+camBytes+cfgBytes), " ")})

	table.Render()
	return buf.String()
}

// Format a byte count with the appropriate byte/kb/mb unit.
func fmtSize(totalBytes int) string {
	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", totalBytes)
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", float32(totalBytes)/1e3)
	}
	return fmt.Sprintf("%5.1f mb", float32(totalBytes)/1e6)
}
