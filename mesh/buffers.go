// Package mesh builds triangulated tank geometry from a design snapshot
// and applies stress-derived vertex colors. All meshes are flat
// GPU-facing buffers: three floats per position/normal/color and three
// indices per triangle, ready for direct upload by an external renderer.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/vesselworks/tankcad/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Buffers is a triangle mesh in flat array form. Positions and Normals
// hold 3 floats per vertex, Indices 3 entries per triangle. Colors is
// optional (empty until a coloring pass runs) and holds 3 normalized
// channel floats per vertex.
type Buffers struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
	Colors    []float32
}

// VertexCount returns the number of vertices.
func (b *Buffers) VertexCount() int { return len(b.Positions) / 3 }

// TriangleCount returns the number of triangles.
func (b *Buffers) TriangleCount() int { return len(b.Indices) / 3 }

// IsEmpty returns true if the mesh has no geometry.
func (b *Buffers) IsEmpty() bool { return len(b.Positions) == 0 }

// Position returns vertex i as a vector.
func (b *Buffers) Position(i int) r3.Vec {
	return r3.Vec{
		X: float64(b.Positions[3*i]),
		Y: float64(b.Positions[3*i+1]),
		Z: float64(b.Positions[3*i+2]),
	}
}

// Normal returns the normal of vertex i as a vector.
func (b *Buffers) Normal(i int) r3.Vec {
	return r3.Vec{
		X: float64(b.Normals[3*i]),
		Y: float64(b.Normals[3*i+1]),
		Z: float64(b.Normals[3*i+2]),
	}
}

// Triangle returns triangle i resolved through the index buffer.
func (b *Buffers) Triangle(i int) r3.Triangle {
	return r3.Triangle{
		b.Position(int(b.Indices[3*i])),
		b.Position(int(b.Indices[3*i+1])),
		b.Position(int(b.Indices[3*i+2])),
	}
}

// Triangles resolves the whole index buffer into triangles.
func (b *Buffers) Triangles() []r3.Triangle {
	ts := make([]r3.Triangle, b.TriangleCount())
	for i := range ts {
		ts[i] = b.Triangle(i)
	}
	return ts
}

// Clone returns a deep copy. Colors are copied only if present.
func (b *Buffers) Clone() *Buffers {
	c := &Buffers{
		Positions: append([]float32(nil), b.Positions...),
		Normals:   append([]float32(nil), b.Normals...),
		Indices:   append([]uint32(nil), b.Indices...),
	}
	if b.Colors != nil {
		c.Colors = append([]float32(nil), b.Colors...)
	}
	return c
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (b *Buffers) Bounds() d3.Box {
	if b.IsEmpty() {
		return d3.Box{}
	}
	bb := d3.Box{Min: b.Position(0), Max: b.Position(0)}
	n := b.VertexCount()
	for i := 1; i < n; i++ {
		bb = bb.Include(b.Position(i))
	}
	return bb
}

// BoundingSphere returns a sphere enclosing every vertex, centered at
// the bounding box center. Used as a raycast pre-test.
func (b *Buffers) BoundingSphere() (center r3.Vec, radius float64) {
	if b.IsEmpty() {
		return r3.Vec{}, 0
	}
	bb := b.Bounds()
	center = bb.Center()
	n := b.VertexCount()
	var max2 float64
	for i := 0; i < n; i++ {
		d2 := r3.Norm2(r3.Sub(b.Position(i), center))
		if d2 > max2 {
			max2 = d2
		}
	}
	return center, math.Sqrt(max2)
}

var (
	errBufferMismatch = errors.New("mesh: positions and normals length mismatch")
	errIndexCount     = errors.New("mesh: index count not a multiple of 3")
	errIndexRange     = errors.New("mesh: index out of vertex range")
	errNotFinite      = errors.New("mesh: non-finite buffer value")
	errBadNormal      = errors.New("mesh: degenerate normal")
	errColorCount     = errors.New("mesh: color count does not match vertex count")
)

// Validate checks the structural mesh invariants: positions and normals
// agree in length, the index buffer describes whole triangles within
// vertex bounds, all values are finite and every normal has unit length
// within tolerance.
func (b *Buffers) Validate() error {
	if len(b.Positions) != len(b.Normals) {
		return fmt.Errorf("%w: %d vs %d", errBufferMismatch, len(b.Positions), len(b.Normals))
	}
	if len(b.Positions)%3 != 0 {
		return errors.New("mesh: position count not a multiple of 3")
	}
	if len(b.Indices)%3 != 0 {
		return errIndexCount
	}
	if b.Colors != nil && len(b.Colors) != len(b.Positions) {
		return fmt.Errorf("%w: %d colors for %d vertices", errColorCount, len(b.Colors)/3, b.VertexCount())
	}
	for i, p := range b.Positions {
		if bad32(p) {
			return fmt.Errorf("%w: position %d", errNotFinite, i/3)
		}
	}
	n := uint32(b.VertexCount())
	for i, idx := range b.Indices {
		if idx >= n {
			return fmt.Errorf("%w: indices[%d]=%d, %d vertices", errIndexRange, i, idx, n)
		}
	}
	const normTol = 1e-3
	for i := 0; i < b.VertexCount(); i++ {
		nx, ny, nz := b.Normals[3*i], b.Normals[3*i+1], b.Normals[3*i+2]
		if bad32(nx) || bad32(ny) || bad32(nz) {
			return fmt.Errorf("%w: normal %d", errNotFinite, i)
		}
		norm := math32.Sqrt(nx*nx + ny*ny + nz*nz)
		if math32.Abs(norm-1) > normTol {
			return fmt.Errorf("%w: |n[%d]| = %g", errBadNormal, i, norm)
		}
	}
	return nil
}

func bad32(f float32) bool {
	return math32.IsNaN(f) || math32.IsInf(f, 0)
}

// Merge concatenates meshes into a single buffer set, offsetting
// indices so the result addresses the combined vertex range. Colors are
// carried only if every input has them.
func Merge(meshes ...*Buffers) *Buffers {
	out := &Buffers{}
	hasColors := len(meshes) > 0
	for _, m := range meshes {
		if m.Colors == nil {
			hasColors = false
		}
	}
	for _, m := range meshes {
		off := uint32(out.VertexCount())
		out.Positions = append(out.Positions, m.Positions...)
		out.Normals = append(out.Normals, m.Normals...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, idx+off)
		}
		if hasColors {
			out.Colors = append(out.Colors, m.Colors...)
		}
	}
	return out
}
