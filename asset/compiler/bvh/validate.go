package bvh

import (
	"errors"
	"fmt"

	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/types"
)

var (
	ErrInvalidTree = errors.New("bvh: invalid tree")
)

// Walk a flattened tree from its root and verify that it is a valid BVH over
// items:
//   - the list holds 2N-1 nodes and every node is reachable exactly once
//   - children are stored after their parent
//   - every item is referenced by exactly one leaf whose bbox matches it
//   - every internal node's bbox is the union of its children's boxes
func Validate[T BoundedVolume](nodes []scene.BvhNode, items []T) error {
	if len(items) == 0 {
		return ErrEmptyScene
	}
	if exp := 2*len(items) - 1; len(nodes) != exp {
		return fmt.Errorf("%w: expected %d nodes for %d items; got %d", ErrInvalidTree, exp, len(items), len(nodes))
	}

	visited := make([]bool, len(nodes))
	referenced := make([]bool, len(items))
	stack := []int32{scene.BvhRootIndex}
	for len(stack) > 0 {
		nodeIndex := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[nodeIndex] {
			return fmt.Errorf("%w: node %d is reachable more than once", ErrInvalidTree, nodeIndex)
		}
		visited[nodeIndex] = true
		node := &nodes[nodeIndex]

		if node.IsLeaf() {
			if node.Left != scene.InvalidIndex || node.Right != scene.InvalidIndex {
				return fmt.Errorf("%w: leaf %d has child indices", ErrInvalidTree, nodeIndex)
			}
			if node.ObjectIndex < 0 || int(node.ObjectIndex) >= len(items) {
				return fmt.Errorf("%w: leaf %d references out of range item %d", ErrInvalidTree, nodeIndex, node.ObjectIndex)
			}
			if referenced[node.ObjectIndex] {
				return fmt.Errorf("%w: item %d is referenced by more than one leaf", ErrInvalidTree, node.ObjectIndex)
			}
			referenced[node.ObjectIndex] = true
			if node.BBox != items[node.ObjectIndex].BBox() {
				return fmt.Errorf("%w: leaf %d bbox does not match item %d", ErrInvalidTree, nodeIndex, node.ObjectIndex)
			}
			continue
		}

		for _, child := range []int32{node.Left, node.Right} {
			if child <= nodeIndex || int(child) >= len(nodes) {
				return fmt.Errorf("%w: node %d has invalid child index %d", ErrInvalidTree, nodeIndex, child)
			}
		}
		if node.BBox != types.UnionAABB(nodes[node.Left].BBox, nodes[node.Right].BBox) {
			return fmt.Errorf("%w: node %d bbox is not the union of its children", ErrInvalidTree, nodeIndex)
		}
		stack = append(stack, node.Right, node.Left)
	}

	for nodeIndex, ok := range visited {
		if !ok {
			return fmt.Errorf("%w: node %d is unreachable", ErrInvalidTree, nodeIndex)
		}
	}
	return nil
}
