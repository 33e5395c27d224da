package mesh

import (
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// KDSampler is a kd-tree backed NearestSampler for large FEA node sets,
// turning the O(vertices × samples) brute-force pass into
// O(vertices × log samples).
type KDSampler struct {
	tree *kdtree.Tree
}

var _ NearestSampler = (*KDSampler)(nil)

// NewKDSampler indexes the samples. Building is O(n log n); the input
// slice is copied and not retained.
func NewKDSampler(nodes []StressNode) *KDSampler {
	if len(nodes) == 0 {
		return &KDSampler{}
	}
	pts := make(kdNodes, len(nodes))
	for i, n := range nodes {
		pts[i] = kdNode(n)
	}
	return &KDSampler{tree: kdtree.New(pts, true)}
}

// Nearest returns the indexed sample closest to p.
func (s *KDSampler) Nearest(p r3.Vec) (StressNode, bool) {
	if s.tree == nil {
		return StressNode{}, false
	}
	got, _ := s.tree.Nearest(kdNode{X: p.X, Y: p.Y, Z: p.Z})
	return StressNode(got.(kdNode)), true
}

// kdtree.Comparable / kdtree.Interface plumbing for stress nodes.

type kdNode StressNode

func (n kdNode) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdNode)
	switch d {
	case 0:
		return n.X - q.X
	case 1:
		return n.Y - q.Y
	default:
		return n.Z - q.Z
	}
}

func (n kdNode) Dims() int { return 3 }

func (n kdNode) Distance(c kdtree.Comparable) float64 {
	q := c.(kdNode)
	dx, dy, dz := n.X-q.X, n.Y-q.Y, n.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}

type kdNodes []kdNode

func (p kdNodes) Index(i int) kdtree.Comparable { return p[i] }
func (p kdNodes) Len() int                      { return len(p) }
func (p kdNodes) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p kdNodes) Pivot(d kdtree.Dim) int {
	return kdPlane{Dim: d, kdNodes: p}.Pivot()
}

type kdPlane struct {
	kdtree.Dim
	kdNodes
}

func (p kdPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.kdNodes[i].X < p.kdNodes[j].X
	case 1:
		return p.kdNodes[i].Y < p.kdNodes[j].Y
	default:
		return p.kdNodes[i].Z < p.kdNodes[j].Z
	}
}
func (p kdPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdNodes = p.kdNodes[start:end]
	return p
}
func (p kdPlane) Swap(i, j int) {
	p.kdNodes[i], p.kdNodes[j] = p.kdNodes[j], p.kdNodes[i]
}
