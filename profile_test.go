package tankcad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vesselworks/tankcad"
)

func TestIsotensoidProfileReference(t *testing.T) {
	// 700 bar type IV reference dome: R0=300mm, netting angle 54.74°,
	// 30mm boss, 150mm deep dome.
	const (
		r0    = 300.0
		alpha = 54.74
		boss  = 30.0
		depth = 150.0
		n     = 50
	)
	prof := tankcad.IsotensoidProfile(r0, alpha, boss, depth, n)
	require.Len(t, prof, n+1)
	require.InDelta(t, depth, prof[0].Z, 1e-12)
	require.InDelta(t, 0, prof[n].Z, 1e-12)
	require.InDelta(t, r0, prof[n].R, 1e-9)
}

func TestIsotensoidProfileProperties(t *testing.T) {
	cases := []struct {
		name       string
		r0, alpha  float64
		boss, deep float64
		n          int
	}{
		{"typical", 300, 54.74, 30, 150, 50},
		{"steep angle", 120, 80, 10, 40, 25},
		{"shallow angle", 500, 5, 60, 300, 100},
		{"zero depth", 250, 54.74, 25, 0, 20},
		{"two points", 100, 45, 5, 50, 1},
		{"boss exceeds equator", 80, 54.74, 120, 60, 30},
		{"tiny tank", 1e-3, 30, 1e-4, 5e-4, 10},
		{"huge tank", 1e6, 60, 1e4, 5e5, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prof := tankcad.IsotensoidProfile(tc.r0, tc.alpha, tc.boss, tc.deep, tc.n)
			require.Len(t, prof, tc.n+1)
			require.InDelta(t, tc.deep, prof[0].Z, 1e-9*math.Max(tc.deep, 1))
			for i, p := range prof {
				require.False(t, math.IsNaN(p.R) || math.IsInf(p.R, 0), "r[%d] not finite", i)
				require.False(t, math.IsNaN(p.Z) || math.IsInf(p.Z, 0), "z[%d] not finite", i)
				require.Greater(t, p.R, 0.0, "r[%d]", i)
				require.GreaterOrEqual(t, p.R, tc.boss, "boss clamp violated at %d", i)
				if i > 0 {
					require.LessOrEqual(t, prof[i].Z, prof[i-1].Z, "z must be non-increasing at %d", i)
					require.GreaterOrEqual(t, prof[i].R, prof[i-1].R-1e-12, "r must be non-decreasing at %d", i)
				}
			}
		})
	}
}

func TestIsotensoidProfileBossClampIsHardFloor(t *testing.T) {
	// With the boss radius above the equator radius every point clamps
	// exactly to the boss radius; the clamp is a floor, not a blend.
	prof := tankcad.IsotensoidProfile(80, 54.74, 120, 60, 16)
	for i, p := range prof {
		require.Equal(t, 120.0, p.R, "point %d", i)
	}
}

func TestIsotensoidProfileSamplesBelowOne(t *testing.T) {
	prof := tankcad.IsotensoidProfile(100, 45, 5, 50, 0)
	require.Len(t, prof, 2, "numPoints below 1 clamps to apex+junction")
	require.Equal(t, 50.0, prof[0].Z)
	require.Equal(t, 0.0, prof[1].Z)
}

func TestProfilePointVec(t *testing.T) {
	v := tankcad.ProfilePoint{R: 3, Z: 7}.Vec()
	require.Equal(t, 3.0, v.X)
	require.Equal(t, 7.0, v.Y)
}
