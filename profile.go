package tankcad

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ProfilePoint is one meridian sample of a dome profile: radius from the
// tank axis and axial position above the cylinder junction. Profiles are
// ordered apex to equator, so Z is non-increasing and R non-decreasing.
type ProfilePoint struct {
	R float64
	Z float64
}

// Vec returns the point as an (r, z) plane vector.
func (p ProfilePoint) Vec() r2.Vec {
	return r2.Vec{X: p.R, Y: p.Z}
}

// IsotensoidProfile computes numPoints+1 meridian samples of an
// isotensoid dome. r0 is the equator (cylinder) radius, alpha0Deg the
// netting angle at the equator, bossRadius the hard lower bound imposed
// by the boss fitting and domeDepth the apex height above the junction.
//
// The meridian angle is interpolated from 90° at the apex down to alpha0
// at the equator and the netting relation r = r0·sin(alpha0)/sin(alpha)
// gives the radius. The boss clamp is a hard floor, not a smooth blend:
// the curvature is discontinuous at the clamp boundary. Smoothing it is
// an open design question and must not be done silently.
//
// The first returned point is the apex (Z == domeDepth), the last is the
// cylinder junction (Z == 0, R == r0). numPoints < 1 is treated as 1.
func IsotensoidProfile(r0, alpha0Deg, bossRadius, domeDepth float64, numPoints int) []ProfilePoint {
	if numPoints < 1 {
		numPoints = 1
	}
	// Keep alpha0 strictly inside (0°, 90°) so sin(alpha) never
	// vanishes and every sample stays finite.
	alpha0 := Clamp(DtoR(alpha0Deg), 1e-6, pi/2-1e-6)
	sinAlpha0 := math.Sin(alpha0)

	pts := make([]ProfilePoint, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		t := float64(i) / float64(numPoints)
		alpha := alpha0 + (pi/2-alpha0)*(1-t)
		r := r0 * sinAlpha0 / math.Sin(alpha)
		r = math.Max(r, bossRadius)
		pts[i] = ProfilePoint{R: r, Z: domeDepth * (1 - t)}
	}
	return pts
}
