package mesh_test

import (
	"math"
	"testing"

	sdfxsdf "github.com/deadsy/sdfx/sdf"
	"github.com/stretchr/testify/require"
	"github.com/vesselworks/tankcad"
	"github.com/vesselworks/tankcad/mesh"
)

func testDesign() *tankcad.DesignGeometry {
	return &tankcad.DesignGeometry{
		Dimensions: tankcad.Dimensions{
			InnerRadiusMM:    175,
			OuterRadiusMM:    200,
			CylinderLengthMM: 800,
			TotalLengthMM:    1100,
			WallThicknessMM:  25,
		},
		Dome: tankcad.DomeSpec{
			Type:            tankcad.Isotensoid,
			NettingAngleDeg: 54.74,
			DepthMM:         150,
			BossIDMM:        40,
			BossODMM:        60,
		},
		Layup: &tankcad.Layup{Layers: []tankcad.CompositeLayer{
			{Index: 0, Type: tankcad.Helical, WindingAngleDeg: 15, ThicknessMM: 3, Coverage: tankcad.FullCoverage},
			{Index: 1, Type: tankcad.Hoop, WindingAngleDeg: 88, ThicknessMM: 2, Coverage: tankcad.CylinderCoverage},
			{Index: 2, Type: tankcad.Helical, WindingAngleDeg: 25, ThicknessMM: 3, Coverage: tankcad.FullCoverage},
		}},
		LinerThicknessMM: 4,
	}
}

func TestBuildTankGeometryNil(t *testing.T) {
	require.Nil(t, mesh.BuildTankGeometry(nil))
}

func TestBuildTankGeometryInvariants(t *testing.T) {
	tank := mesh.BuildTankGeometry(testDesign())
	require.NotNil(t, tank)
	require.NoError(t, tank.Validate())
	require.Len(t, tank.Layers, 3, "one shell per layup entry")
	require.Len(t, tank.Bosses, 2, "boss fitting at each apex")
	require.False(t, tank.Outer.IsEmpty())
	require.False(t, tank.Inner.IsEmpty())
}

func TestBuildTankGeometryNoLayup(t *testing.T) {
	g := testDesign()
	g.Layup = nil
	tank := mesh.BuildTankGeometry(g)
	require.NoError(t, tank.Validate())
	require.Empty(t, tank.Layers)
}

func TestLayerRadiiNonDecreasing(t *testing.T) {
	tank := mesh.BuildTankGeometry(testDesign())
	prev := 0.0
	for i, l := range tank.Layers {
		bb := l.Mesh.Bounds()
		radius := bb.Max.X
		require.Greater(t, radius, prev, "layer %d shell radius must grow", i)
		prev = radius
	}
	// Every layer sits outside the liner surface.
	inner := tank.Inner.Bounds().Max.X
	require.Greater(t, tank.Layers[0].Mesh.Bounds().Max.X, inner)
}

func TestBuildTankGeometryDegenerate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*tankcad.DesignGeometry)
	}{
		{"zero cylinder", func(g *tankcad.DesignGeometry) { g.Dimensions.CylinderLengthMM = 0 }},
		{"zero dome depth", func(g *tankcad.DesignGeometry) { g.Dome.DepthMM = 0 }},
		{"negative dome depth", func(g *tankcad.DesignGeometry) { g.Dome.DepthMM = -5 }},
		{"inverted radii", func(g *tankcad.DesignGeometry) {
			g.Dimensions.InnerRadiusMM, g.Dimensions.OuterRadiusMM = 200, 175
		}},
		{"boss swallows dome", func(g *tankcad.DesignGeometry) { g.Dome.BossODMM = 500 }},
		{"huge", func(g *tankcad.DesignGeometry) {
			g.Dimensions.OuterRadiusMM = 1e7
			g.Dimensions.CylinderLengthMM = 5e7
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := testDesign()
			tc.mutate(g)
			tank := mesh.BuildTankGeometry(g)
			require.NotNil(t, tank, "builder must stay total on degenerate dims")
			require.NoError(t, tank.Validate())
		})
	}
}

func TestBossesSkippedWhenDegenerate(t *testing.T) {
	g := testDesign()
	g.Dome.BossODMM = g.Dome.BossIDMM // OD == ID has no material
	tank := mesh.BuildTankGeometry(g)
	require.Empty(t, tank.Bosses)
}

// TestOuterShellOnSDFCylinder cross-checks the revolved outer shell
// against an independently defined signed distance field: every vertex
// of the cylindrical section must lie on the zero level of an sdfx
// cylinder of the same radius and length.
func TestOuterShellOnSDFCylinder(t *testing.T) {
	g := testDesign()
	g.Layup = nil
	dims := g.Dimensions
	tank := mesh.BuildTankGeometryOpts(g, mesh.BuildOptions{Segments: 48, ProfileSamples: 40})

	cyl, err := sdfxsdf.Cylinder3D(dims.CylinderLengthMM, dims.OuterRadiusMM, 0)
	require.NoError(t, err)

	half := dims.CylinderLengthMM / 2
	checked := 0
	for i := 0; i < tank.Outer.VertexCount(); i++ {
		p := tank.Outer.Position(i)
		if math.Abs(p.Z) > 0.9*half {
			continue
		}
		d := cyl.Evaluate(sdfxsdf.V3{X: p.X, Y: p.Y, Z: p.Z})
		require.InDelta(t, 0, d, 1e-3, "vertex %d off the cylinder surface", i)
		checked++
	}
	require.Greater(t, checked, 0, "no cylinder-section vertices sampled")
}

func TestMergedTank(t *testing.T) {
	tank := mesh.BuildTankGeometry(testDesign())
	merged := tank.Merged()
	require.NoError(t, merged.Validate())

	wantVerts := tank.Outer.VertexCount() + tank.Inner.VertexCount()
	wantTris := tank.Outer.TriangleCount() + tank.Inner.TriangleCount()
	for _, l := range tank.Layers {
		wantVerts += l.Mesh.VertexCount()
		wantTris += l.Mesh.TriangleCount()
	}
	for _, b := range tank.Bosses {
		wantVerts += b.VertexCount()
		wantTris += b.TriangleCount()
	}
	require.Equal(t, wantVerts, merged.VertexCount())
	require.Equal(t, wantTris, merged.TriangleCount())
}

func TestBuffersValidateCatchesCorruption(t *testing.T) {
	tank := mesh.BuildTankGeometry(testDesign())
	b := tank.Outer.Clone()
	b.Indices[0] = uint32(b.VertexCount() + 7)
	require.Error(t, b.Validate())

	b = tank.Outer.Clone()
	b.Normals[0], b.Normals[1], b.Normals[2] = 0, 0, 0
	require.Error(t, b.Validate())

	b = tank.Outer.Clone()
	b.Positions[0] = float32(math.NaN())
	require.Error(t, b.Validate())
}
