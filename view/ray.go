package view

import (
	"math"

	"github.com/vesselworks/tankcad/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Canvas is the viewer canvas geometry: its CSS bounding-rect origin
// and its pixel dimensions.
type Canvas struct {
	Left, Top     float64
	Width, Height float64
}

// ScreenToNDC converts pointer coordinates to normalized device
// coordinates in [-1,1]². Screen Y grows downward while NDC Y grows
// upward, so Y is flipped.
func ScreenToNDC(screenX, screenY float64, c Canvas) (ndcX, ndcY float64) {
	if c.Width <= 0 || c.Height <= 0 {
		return 0, 0
	}
	ndcX = (screenX-c.Left)/c.Width*2 - 1
	ndcY = -((screenY-c.Top)/c.Height*2 - 1)
	return ndcX, ndcY
}

// Ray is a picking ray. Direction is unit length. Rays are
// per-interaction values, rebuilt on every pick event.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec
}

// NewRay constructs the picking ray through an NDC point. The origin is
// always the camera position; the direction comes from un-projecting
// the NDC point through the inverse projection and inverse view
// matrices. The result is finite and unit-length for any rigid view
// transform; a degenerate un-projection falls back to the -Z view
// direction rather than returning NaN.
func NewRay(ndcX, ndcY float64, cameraPos r3.Vec, viewMatrix, projMatrix Mat4) Ray {
	clip := Vec4{X: ndcX, Y: ndcY, Z: 0.5, W: 1}
	eye := projMatrix.Inverse().MulVec4(clip)
	world := viewMatrix.Inverse().MulVec4(eye)

	ray := Ray{Origin: cameraPos, Dir: r3.Vec{Z: -1}}
	if math.Abs(world.W) < 1e-15 {
		return ray
	}
	p := r3.Vec{X: world.X / world.W, Y: world.Y / world.W, Z: world.Z / world.W}
	dir := r3.Sub(p, cameraPos)
	if !d3.Finite(dir) || r3.Norm(dir) < 1e-15 {
		return ray
	}
	ray.Dir = r3.Unit(dir)
	return ray
}

// At returns the point at ray parameter t.
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}
