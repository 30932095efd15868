package bvh

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"github.com/achilleasa/prism/asset/scene"
	"github.com/achilleasa/prism/log"
	"github.com/achilleasa/prism/types"
)

var (
	ErrEmptyScene = errors.New("bvh: scene contains no primitives")
)

// The BoundedVolume interface is implemented by all primitives that can
// be partitioned by the bvh builder.
type BoundedVolume interface {
	BBox() types.AABB
}

type stats struct {
	totalItems int
	nodes      int
	leafs      int
	maxDepth   int
}

type builder[T BoundedVolume] struct {
	logger log.Logger

	// The items being partitioned. Sub-ranges of this slice are sorted
	// in place while the tree is built.
	items []T

	// Bvh nodes stored as a contiguous list
	nodes []scene.BvhNode

	// Stats
	stats stats
}

// Construct a BVH from a set of bounded volumes.
//
// Each sub-range of items is split in half along the longest axis of its
// bounding box after sorting it by the min coordinate of that axis in
// descending order. Every leaf holds exactly one item so a list of N items
// produces 2N-1 nodes. The root is always stored at scene.BvhRootIndex.
//
// Build REORDERS items in place. Leaf nodes store the index of their item in
// the reordered slice; callers must upload items in the order Build leaves
// them in. An empty item list yields ErrEmptyScene.
func Build[T BoundedVolume](items []T) ([]scene.BvhNode, error) {
	if len(items) == 0 {
		return nil, ErrEmptyScene
	}

	b := &builder[T]{
		logger: log.New("bvh builder"),
		items:  items,
		nodes:  make([]scene.BvhNode, 0, 2*len(items)-1),
		stats: stats{
			totalItems: len(items),
		},
	}

	start := time.Now()
	b.partition(0, len(items), 0)
	b.logger.Debugf(
		"BVH tree build time: %d ms, items: %d, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		b.stats.totalItems, b.stats.maxDepth, b.stats.nodes, b.stats.leafs,
	)
	return b.nodes, nil
}

// Partition items[start:end] and return node index.
func (b *builder[T]) partition(start, end, depth int) uint32 {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	span := end - start
	if span == 1 {
		return b.createLeaf(start)
	}

	// Calculate bounding box for node
	bbox := types.EmptyAABB()
	for _, item := range b.items[start:end] {
		bbox = types.UnionAABB(bbox, item.BBox())
	}

	axis := bbox.LongestAxis()
	slices.SortStableFunc(b.items[start:end], func(l, r T) int {
		return cmp.Compare(r.BBox().AxisInterval(axis).Min, l.BBox().AxisInterval(axis).Min)
	})

	mid := start + span/2

	// Reserve the node slot before visiting the children so that parents
	// always precede their children in the node list.
	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, scene.NewBvhNode(bbox))
	b.stats.nodes++

	// Partition children and update node indices
	leftNodeIndex := b.partition(start, mid, depth+1)
	rightNodeIndex := b.partition(mid, end, depth+1)
	b.nodes[nodeIndex].SetChildNodes(leftNodeIndex, rightNodeIndex)

	return uint32(nodeIndex)
}

// Append a leaf for the item at the given index and return the leaf's index
// in the bvh node array.
func (b *builder[T]) createLeaf(itemIndex int) uint32 {
	node := scene.NewBvhNode(b.items[itemIndex].BBox())
	node.SetObjectIndex(uint32(itemIndex))

	// append node to list
	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, node)

	// update stats
	b.stats.nodes++
	b.stats.leafs++

	return uint32(nodeIndex)
}
