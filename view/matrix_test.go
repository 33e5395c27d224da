package view_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vesselworks/tankcad/view"
	"gonum.org/v1/gonum/mat"
)

// denseFromMat4 converts a column-major Mat4 into a gonum Dense for
// cross-checking.
func denseFromMat4(m view.Mat4) *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			d.Set(r, c, m[c*4+r])
		}
	}
	return d
}

func translation(x, y, z float64) view.Mat4 {
	m := view.Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

func rotationZ(rad float64) view.Mat4 {
	s, c := math.Sincos(rad)
	m := view.Identity()
	m[0], m[4] = c, -s
	m[1], m[5] = s, c
	return m
}

func scale(x, y, z float64) view.Mat4 {
	m := view.Mat4{}
	m[0], m[5], m[10], m[15] = x, y, z, 1
	return m
}

func TestInverseAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		m := translation(rng.NormFloat64()*10, rng.NormFloat64()*10, rng.NormFloat64()*10).
			Mul(rotationZ(rng.Float64() * 2 * math.Pi)).
			Mul(scale(1+rng.Float64(), 1+rng.Float64(), 1+rng.Float64()))

		var want mat.Dense
		require.NoError(t, want.Inverse(denseFromMat4(m)))

		got := denseFromMat4(m.Inverse())
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				require.InDelta(t, want.At(r, c), got.At(r, c), 1e-9,
					"trial %d entry (%d,%d)", trial, r, c)
			}
		}
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := translation(3, -2, 8).Mul(rotationZ(0.7)).Mul(scale(2, 3, 0.5))
	inv := m.Inverse()
	for _, v := range []view.Vec4{
		{X: 1, Y: 2, Z: 3, W: 1},
		{X: -4, Y: 0.5, Z: 9, W: 1},
		{X: 0, Y: 0, Z: 0, W: 1},
	} {
		back := inv.MulVec4(m.MulVec4(v))
		require.InDelta(t, v.X, back.X, 1e-9)
		require.InDelta(t, v.Y, back.Y, 1e-9)
		require.InDelta(t, v.Z, back.Z, 1e-9)
		require.InDelta(t, v.W, back.W, 1e-9)
	}
}

func TestInverseSingularReturnsIdentity(t *testing.T) {
	var zero view.Mat4
	require.Equal(t, view.Identity(), zero.Inverse())

	// Rank-deficient: zero scale on one axis.
	require.Equal(t, view.Identity(), scale(1, 1, 0).Inverse())
}

func TestMulVec4DirectionIgnoresTranslation(t *testing.T) {
	m := translation(100, -200, 300)
	dir := view.Vec4{X: 0, Y: 0, Z: -1, W: 0}
	got := m.MulVec4(dir)
	require.Equal(t, dir, got, "w=0 vectors must not pick up translation")
}

func TestDet(t *testing.T) {
	require.InDelta(t, 1.0, view.Identity().Det(), 1e-12)
	require.InDelta(t, 6.0, scale(1, 2, 3).Det(), 1e-12)
	require.InDelta(t, 0.0, scale(1, 1, 0).Det(), 1e-12)
}
