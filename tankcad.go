// Package tankcad generates composite pressure-vessel geometry for design
// review. It produces triangulated tank meshes (liner, composite layer
// shells and boss fittings) from parametric dome/dimension/layup
// specifications so a 3D viewer can render and pick against them.
//
// The package is a pure in-memory library: no I/O, no shared state.
// Every operation is a function over its inputs and returns freshly
// allocated buffers, so concurrent calls are safe by construction.
package tankcad

import (
	"errors"
	"fmt"
)

// LayerType describes the winding pattern of a composite layer.
type LayerType uint8

const (
	// Helical layers wind at a low angle over cylinder and domes.
	Helical LayerType = iota
	// Hoop layers wind near 90° and only reinforce the cylinder.
	Hoop
)

func (lt LayerType) String() string {
	switch lt {
	case Helical:
		return "helical"
	case Hoop:
		return "hoop"
	}
	return "unknown(" + string(rune('0'+lt)) + ")"
}

// Coverage describes the axial extent of a composite layer.
type Coverage uint8

const (
	// FullCoverage layers cover cylinder and both domes.
	FullCoverage Coverage = iota
	// CylinderCoverage layers cover only the cylindrical section.
	CylinderCoverage
)

func (c Coverage) String() string {
	if c == CylinderCoverage {
		return "cylinder"
	}
	return "full"
}

// CompositeLayer is one entry of an ordered winding layup.
type CompositeLayer struct {
	// Index is the position of the layer in the layup, innermost first.
	Index int
	Type  LayerType
	// WindingAngleDeg is the fiber angle relative to the tank axis.
	WindingAngleDeg float64
	ThicknessMM     float64
	Coverage        Coverage
}

// Layup is the ordered stack of composite layers forming the shell.
type Layup struct {
	Layers []CompositeLayer
}

// Dimensions are the principal tank dimensions in millimetres
// (volume in litres).
type Dimensions struct {
	InnerRadiusMM    float64
	OuterRadiusMM    float64
	CylinderLengthMM float64
	TotalLengthMM    float64
	WallThicknessMM  float64
	InternalVolumeL  float64
}

// DomeType tags the dome profile family.
type DomeType uint8

const (
	// Isotensoid domes have uniform fiber tension along the winding path.
	Isotensoid DomeType = iota
	// Torispherical domes are kept as a tag for imported designs;
	// profile generation currently treats them as isotensoid.
	Torispherical
)

// DomeSpec parameterizes the dome end caps and their boss cutouts.
type DomeSpec struct {
	Type DomeType
	// NettingAngleDeg is the fiber winding angle at the dome equator.
	NettingAngleDeg float64
	ApexRadiusMM    float64
	DepthMM         float64
	BossIDMM        float64
	BossODMM        float64
}

// DesignGeometry is an immutable snapshot of one tank design. It is
// created by the requirements/optimization layer and never mutated here.
type DesignGeometry struct {
	Dimensions Dimensions
	Dome       DomeSpec
	// ThicknessDistribution holds wall thickness samples along the
	// meridian, apex to equator. May be empty.
	ThicknessDistribution []float64
	// Layup is optional; designs without a winding definition have nil.
	Layup               *Layup
	FiberVolumeFraction float64
	LinerThicknessMM    float64
}

// Validation errors returned by DesignGeometry.Validate.
var (
	ErrNilGeometry       = errors.New("tankcad: nil design geometry")
	ErrRadiusOrder       = errors.New("tankcad: outer radius must exceed inner radius")
	ErrNonPositiveRadius = errors.New("tankcad: radii must be positive")
	ErrBossTooLarge      = errors.New("tankcad: boss outer diameter exceeds tank diameter")
	ErrBadNettingAngle   = errors.New("tankcad: netting angle must be in (0°, 90°)")
)

// Validate checks the design for caller-side precondition violations.
// The mesh builder itself stays total on malformed-but-non-nil input;
// callers that want early feedback run Validate first.
func (g *DesignGeometry) Validate() error {
	if g == nil {
		return ErrNilGeometry
	}
	d := g.Dimensions
	if d.InnerRadiusMM <= 0 || d.OuterRadiusMM <= 0 {
		return fmt.Errorf("%w: inner=%g outer=%g", ErrNonPositiveRadius, d.InnerRadiusMM, d.OuterRadiusMM)
	}
	if d.OuterRadiusMM <= d.InnerRadiusMM {
		return fmt.Errorf("%w: inner=%g outer=%g", ErrRadiusOrder, d.InnerRadiusMM, d.OuterRadiusMM)
	}
	if g.Dome.BossODMM > 2*d.OuterRadiusMM {
		return fmt.Errorf("%w: boss OD=%g", ErrBossTooLarge, g.Dome.BossODMM)
	}
	if a := g.Dome.NettingAngleDeg; a <= 0 || a >= 90 {
		return fmt.Errorf("%w: got %g°", ErrBadNettingAngle, a)
	}
	return nil
}
