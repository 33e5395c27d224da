package tankcad_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vesselworks/tankcad"
)

func validGeometry() *tankcad.DesignGeometry {
	return &tankcad.DesignGeometry{
		Dimensions: tankcad.Dimensions{
			InnerRadiusMM:    175,
			OuterRadiusMM:    200,
			CylinderLengthMM: 800,
			TotalLengthMM:    1100,
			WallThicknessMM:  25,
			InternalVolumeL:  85,
		},
		Dome: tankcad.DomeSpec{
			Type:            tankcad.Isotensoid,
			NettingAngleDeg: 54.74,
			ApexRadiusMM:    30,
			DepthMM:         150,
			BossIDMM:        40,
			BossODMM:        60,
		},
		LinerThicknessMM:    4,
		FiberVolumeFraction: 0.6,
	}
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, validGeometry().Validate())
}

func TestValidateErrors(t *testing.T) {
	var nilGeom *tankcad.DesignGeometry
	require.ErrorIs(t, nilGeom.Validate(), tankcad.ErrNilGeometry)

	g := validGeometry()
	g.Dimensions.OuterRadiusMM = g.Dimensions.InnerRadiusMM
	require.ErrorIs(t, g.Validate(), tankcad.ErrRadiusOrder)

	g = validGeometry()
	g.Dimensions.InnerRadiusMM = 0
	require.ErrorIs(t, g.Validate(), tankcad.ErrNonPositiveRadius)

	g = validGeometry()
	g.Dome.BossODMM = 3 * g.Dimensions.OuterRadiusMM
	require.ErrorIs(t, g.Validate(), tankcad.ErrBossTooLarge)

	g = validGeometry()
	g.Dome.NettingAngleDeg = 90
	require.ErrorIs(t, g.Validate(), tankcad.ErrBadNettingAngle)
}

func TestLayerEnumsString(t *testing.T) {
	require.Equal(t, "helical", tankcad.Helical.String())
	require.Equal(t, "hoop", tankcad.Hoop.String())
	require.Equal(t, "full", tankcad.FullCoverage.String())
	require.Equal(t, "cylinder", tankcad.CylinderCoverage.String())
}
