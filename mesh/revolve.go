package mesh

import (
	"math"

	"github.com/vesselworks/tankcad"
)

// Surface-of-revolution triangulation. A meridian polyline in the (r,z)
// half-plane is swept about the tank (Z) axis at a fixed angular sample
// count. Successive rings and successive angular samples are connected
// into two triangles per quad with consistent winding so that the cross
// product of edge vectors points outward.

const (
	defaultSegments       = 64
	defaultProfileSamples = 50
	defaultCylinderRings  = 16
	minSegments           = 3
)

// revolve sweeps the meridian about the Z axis. closed marks meridians
// that form a loop in the (r,z) plane (boss sections); their first and
// last points are treated as neighbors when computing normals and an
// extra band of quads joins the last ring back to the first.
//
// Vertex normals come from the meridian tangent: for a tangent (dr, dz)
// the outward 2D normal is (-dz, dr), which resolves to
// (-dz·cosθ, -dz·sinθ, dr) in 3D. Meridians ordered top to bottom
// (z non-increasing) therefore get outward-facing normals.
func revolve(meridian []tankcad.ProfilePoint, segments int, closed bool) *Buffers {
	if len(meridian) < 2 {
		return &Buffers{}
	}
	if segments < minSegments {
		segments = minSegments
	}
	rings := len(meridian)
	normals2 := meridianNormals(meridian, closed)

	b := &Buffers{
		Positions: make([]float32, 0, rings*segments*3),
		Normals:   make([]float32, 0, rings*segments*3),
	}
	for j := 0; j < rings; j++ {
		p := meridian[j]
		n2 := normals2[j]
		for k := 0; k < segments; k++ {
			theta := tau * float64(k) / float64(segments)
			sin, cos := math.Sincos(theta)
			b.Positions = append(b.Positions,
				float32(p.R*cos), float32(p.R*sin), float32(p.Z))
			b.Normals = append(b.Normals,
				float32(n2[0]*cos), float32(n2[0]*sin), float32(n2[1]))
		}
	}

	bands := rings - 1
	if closed {
		bands = rings
	}
	b.Indices = make([]uint32, 0, bands*segments*6)
	for j := 0; j < bands; j++ {
		j1 := (j + 1) % rings
		for k := 0; k < segments; k++ {
			k1 := (k + 1) % segments
			a := uint32(j*segments + k)
			bb := uint32(j1*segments + k)
			c := uint32(j1*segments + k1)
			d := uint32(j*segments + k1)
			b.Indices = append(b.Indices, a, bb, c, a, c, d)
		}
	}
	return b
}

const tau = 2 * math.Pi

// meridianNormals returns the unit outward (r,z)-plane normal at each
// meridian point using central differences. Degenerate tangents (runs of
// identical points, e.g. a boss-clamped flat at zero dome depth) reuse
// the previous normal so the output never contains a zero vector.
func meridianNormals(m []tankcad.ProfilePoint, closed bool) [][2]float64 {
	n := len(m)
	out := make([][2]float64, n)
	last := [2]float64{0, 1}
	for j := 0; j < n; j++ {
		var prev, next tankcad.ProfilePoint
		switch {
		case closed:
			prev, next = m[(j-1+n)%n], m[(j+1)%n]
		case j == 0:
			prev, next = m[0], m[1]
		case j == n-1:
			prev, next = m[n-2], m[n-1]
		default:
			prev, next = m[j-1], m[j+1]
		}
		dr := next.R - prev.R
		dz := next.Z - prev.Z
		nr, nz := -dz, dr
		norm := math.Hypot(nr, nz)
		if norm < 1e-12 {
			out[j] = last
			continue
		}
		out[j] = [2]float64{nr / norm, nz / norm}
		last = out[j]
	}
	return out
}
