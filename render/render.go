// Package render streams generated tank meshes to preview formats.
// The 3D viewer itself is external; this package only covers STL
// snapshots for design review and the (stubbed) CAD exchange exporter.
package render

import (
	"io"

	"github.com/vesselworks/tankcad/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer is a source of triangles read in chunks.
type Renderer interface {
	ReadTriangles(t []r3.Triangle) (int, error)
}

// meshRenderer reads triangles out of flat mesh buffers.
type meshRenderer struct {
	b    *mesh.Buffers
	next int
}

// NewMeshRenderer returns a Renderer that drains the triangles of b.
func NewMeshRenderer(b *mesh.Buffers) Renderer {
	return &meshRenderer{b: b}
}

func (m *meshRenderer) ReadTriangles(dst []r3.Triangle) (int, error) {
	total := m.b.TriangleCount()
	if m.next >= total {
		return 0, io.EOF
	}
	n := 0
	for n < len(dst) && m.next < total {
		dst[n] = m.b.Triangle(m.next)
		m.next++
		n++
	}
	return n, nil
}

// RenderAll reads the full contents of a Renderer and returns the slice
// read. It does not return io.EOF.
func RenderAll(r Renderer) ([]r3.Triangle, error) {
	var err error
	var nt int
	result := make([]r3.Triangle, 0, 1<<12)
	buf := make([]r3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
