package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Hit is the result of casting a ray against a mesh. Distance is the
// ray parameter t of the nearest valid intersection (t > 0); Point is
// the intersection location. A miss has Hit == false and zero values.
type Hit struct {
	Hit      bool
	Point    r3.Vec
	Distance float64
}

// intersectEpsilon rejects near-parallel rays and grazing t values in
// the triangle test.
const intersectEpsilon = 1e-7

// IntersectTriangle performs the Möller–Trumbore ray/triangle test in
// barycentric coordinates. A hit requires t > 0 with u,v >= 0 and
// u+v <= 1; rays parallel to the triangle plane miss.
func (r Ray) IntersectTriangle(tri r3.Triangle) (t float64, ok bool) {
	edge1 := r3.Sub(tri[1], tri[0])
	edge2 := r3.Sub(tri[2], tri[0])
	h := r3.Cross(r.Dir, edge2)
	det := r3.Dot(edge1, h)
	if det > -intersectEpsilon && det < intersectEpsilon {
		return 0, false
	}
	invDet := 1 / det
	s := r3.Sub(r.Origin, tri[0])
	u := invDet * r3.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}
	q := r3.Cross(s, edge1)
	v := invDet * r3.Dot(r.Dir, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = invDet * r3.Dot(edge2, q)
	if t < intersectEpsilon {
		// Line intersection behind or at the origin, not a ray hit.
		return 0, false
	}
	return t, true
}

// RaycastMesh tests the ray against every triangle of a flat
// position/index buffer pair and returns the closest hit. A
// bounding-sphere pre-test short-circuits rays that cannot reach the
// mesh before any triangle-level work.
func RaycastMesh(r Ray, positions []float32, indices []uint32) Hit {
	nv := len(positions) / 3
	nt := len(indices) / 3
	if nv == 0 || nt == 0 {
		return Hit{}
	}
	if !r.intersectsSphere(boundingSphere(positions)) {
		return Hit{}
	}

	best := math.Inf(1)
	for i := 0; i < nt; i++ {
		i0, i1, i2 := indices[3*i], indices[3*i+1], indices[3*i+2]
		if int(i0) >= nv || int(i1) >= nv || int(i2) >= nv {
			continue
		}
		tri := r3.Triangle{vertexAt(positions, i0), vertexAt(positions, i1), vertexAt(positions, i2)}
		if t, ok := r.IntersectTriangle(tri); ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return Hit{}
	}
	return Hit{Hit: true, Point: r.At(best), Distance: best}
}

func vertexAt(positions []float32, i uint32) r3.Vec {
	return r3.Vec{
		X: float64(positions[3*i]),
		Y: float64(positions[3*i+1]),
		Z: float64(positions[3*i+2]),
	}
}

type sphere struct {
	center r3.Vec
	radius float64
}

func boundingSphere(positions []float32) sphere {
	n := len(positions) / 3
	min := vertexAt(positions, 0)
	max := min
	for i := 1; i < n; i++ {
		v := vertexAt(positions, uint32(i))
		min = r3.Vec{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y), Z: math.Min(min.Z, v.Z)}
		max = r3.Vec{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y), Z: math.Max(max.Z, v.Z)}
	}
	c := r3.Scale(0.5, r3.Add(min, max))
	return sphere{center: c, radius: r3.Norm(r3.Sub(max, c))}
}

// intersectsSphere is the standard ray/sphere rejection test. Rays
// starting inside the sphere always pass.
func (r Ray) intersectsSphere(s sphere) bool {
	oc := r3.Sub(s.center, r.Origin)
	if r3.Norm2(oc) <= s.radius*s.radius {
		return true
	}
	tca := r3.Dot(oc, r.Dir)
	if tca < 0 {
		return false
	}
	d2 := r3.Norm2(oc) - tca*tca
	return d2 <= s.radius*s.radius
}
