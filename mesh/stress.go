package mesh

import (
	"math"

	"github.com/vesselworks/tankcad/colormap"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stress coloring: map externally supplied scalar stress fields onto a
// mesh as per-vertex colors. The pass never alters topology; it returns
// a new buffer set sharing positions/normals/indices content with a
// freshly computed Colors array.

// StressNode is one scalar field sample at a point. Samples come from
// the design layer or an FEA post-processor; the mesh package never
// computes or mutates them.
type StressNode struct {
	X, Y, Z float64
	Stress  float64
}

// Pos returns the sample location.
func (n StressNode) Pos() r3.Vec { return r3.Vec{X: n.X, Y: n.Y, Z: n.Z} }

// FEAMesh is an externally supplied set of FEA result nodes.
type FEAMesh struct {
	Nodes []StressNode
}

// NearestSampler finds the stress sample nearest to a query point.
// It is the seam for substituting a spatial index for the brute-force
// scan without changing the coloring contract.
type NearestSampler interface {
	// Nearest returns the closest sample by Euclidean distance, or
	// ok=false when there are no samples at all.
	Nearest(p r3.Vec) (node StressNode, ok bool)
}

// bruteSampler is the O(samples) linear scan. Fine at current design
// scales (hundreds of samples); larger FEA fields use KDSampler.
type bruteSampler []StressNode

func (s bruteSampler) Nearest(p r3.Vec) (StressNode, bool) {
	if len(s) == 0 {
		return StressNode{}, false
	}
	best := s[0]
	bestD2 := r3.Norm2(r3.Sub(best.Pos(), p))
	for _, n := range s[1:] {
		d2 := r3.Norm2(r3.Sub(n.Pos(), p))
		if d2 < bestD2 {
			best, bestD2 = n, d2
		}
	}
	return best, true
}

// feaIndexThreshold is the node count above which the FEA variant
// builds a kd-tree instead of scanning linearly.
const feaIndexThreshold = 256

// ApplyStressColors colors b from design-domain stress samples using a
// brute-force nearest-neighbor lookup. The [min,max] domain normalizes
// sample values before mapping through cm. An empty sample set still
// yields a Colors array, filled with the palette's lower boundary
// color.
func ApplyStressColors(b *Buffers, samples []StressNode, min, max float64, cm colormap.Mapper) *Buffers {
	return ApplyStressColorsSampled(b, bruteSampler(samples), min, max, cm)
}

// ApplyFEAStressColors colors b from FEA result nodes. Large node sets
// are indexed with a kd-tree first; the coloring contract is identical
// to ApplyStressColors.
func ApplyFEAStressColors(b *Buffers, fea *FEAMesh, min, max float64, cm colormap.Mapper) *Buffers {
	var sampler NearestSampler
	switch {
	case fea == nil || len(fea.Nodes) == 0:
		sampler = bruteSampler(nil)
	case len(fea.Nodes) >= feaIndexThreshold:
		sampler = NewKDSampler(fea.Nodes)
	default:
		sampler = bruteSampler(fea.Nodes)
	}
	return ApplyStressColorsSampled(b, sampler, min, max, cm)
}

// ApplyStressColorsSampled is the generic coloring pass over any
// nearest-neighbor strategy.
func ApplyStressColorsSampled(b *Buffers, sampler NearestSampler, min, max float64, cm colormap.Mapper) *Buffers {
	out := b.Clone()
	n := out.VertexCount()
	out.Colors = make([]float32, 3*n)

	if _, ok := sampler.Nearest(r3.Vec{}); !ok {
		// No samples: boundary color everywhere.
		c := colormap.Normalized(cm, math.Inf(-1), min, max)
		for i := 0; i < n; i++ {
			out.Colors[3*i] = float32(c[0])
			out.Colors[3*i+1] = float32(c[1])
			out.Colors[3*i+2] = float32(c[2])
		}
		return out
	}
	for i := 0; i < n; i++ {
		node, _ := sampler.Nearest(out.Position(i))
		c := colormap.Normalized(cm, node.Stress, min, max)
		out.Colors[3*i] = float32(c[0])
		out.Colors[3*i+1] = float32(c[1])
		out.Colors[3*i+2] = float32(c[2])
	}
	return out
}
