package mesh

import (
	"math"

	"github.com/vesselworks/tankcad"
)

// LayerMesh pairs a composite layer with its generated shell.
type LayerMesh struct {
	Layer tankcad.CompositeLayer
	Mesh  *Buffers
}

// TankGeometry aggregates every mesh generated for one design: the
// outer and inner shells, one shell per layup entry (in layup order)
// and the boss fittings at both apexes.
type TankGeometry struct {
	Outer  *Buffers
	Inner  *Buffers
	Layers []LayerMesh
	Bosses []*Buffers
}

// Validate runs Buffers.Validate on every sub-mesh.
func (t *TankGeometry) Validate() error {
	if err := t.Outer.Validate(); err != nil {
		return err
	}
	if err := t.Inner.Validate(); err != nil {
		return err
	}
	for _, l := range t.Layers {
		if err := l.Mesh.Validate(); err != nil {
			return err
		}
	}
	for _, b := range t.Bosses {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Merged concatenates every sub-mesh into one upload buffer.
func (t *TankGeometry) Merged() *Buffers {
	all := []*Buffers{t.Outer, t.Inner}
	for _, l := range t.Layers {
		all = append(all, l.Mesh)
	}
	all = append(all, t.Bosses...)
	return Merge(all...)
}

// BuildOptions tune tessellation density. The zero value selects the
// defaults (64 angular segments, 50 dome profile samples, 16 cylinder
// rings).
type BuildOptions struct {
	// Segments is the angular sample count of every revolved surface.
	Segments int
	// ProfileSamples is the dome meridian sample count per dome.
	ProfileSamples int
	// CylinderRings is the ring count along the cylindrical section.
	CylinderRings int
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.Segments == 0 {
		o.Segments = defaultSegments
	}
	if o.ProfileSamples == 0 {
		o.ProfileSamples = defaultProfileSamples
	}
	if o.CylinderRings == 0 {
		o.CylinderRings = defaultCylinderRings
	}
	return o
}

// BuildTankGeometry generates all meshes for a design with default
// tessellation. It returns nil only for a nil design; malformed but
// non-nil designs still produce structurally valid (if degenerate)
// buffers, keeping the pipeline total.
func BuildTankGeometry(g *tankcad.DesignGeometry) *TankGeometry {
	return BuildTankGeometryOpts(g, BuildOptions{})
}

// BuildTankGeometryOpts is BuildTankGeometry with explicit tessellation
// options.
func BuildTankGeometryOpts(g *tankcad.DesignGeometry, opt BuildOptions) *TankGeometry {
	if g == nil {
		return nil
	}
	opt = opt.withDefaults()

	dims := g.Dimensions
	dome := g.Dome
	depth := math.Max(dome.DepthMM, 0)
	bossR := dome.BossODMM / 2

	t := &TankGeometry{
		Outer: shellAt(dims.OuterRadiusMM, dims.CylinderLengthMM, dome.NettingAngleDeg, bossR, depth, tankcad.FullCoverage, opt),
		Inner: shellAt(dims.InnerRadiusMM, dims.CylinderLengthMM, dome.NettingAngleDeg, bossR, depth, tankcad.FullCoverage, opt),
	}

	if g.Layup != nil {
		t.Layers = make([]LayerMesh, 0, len(g.Layup.Layers))
		// Explicit fold over the ordered layup: each layer's shell
		// radius is the inner radius plus the liner plus every
		// preceding thickness plus its own, so shell radii are
		// strictly non-decreasing.
		offset := g.LinerThicknessMM
		for _, layer := range g.Layup.Layers {
			offset += layer.ThicknessMM
			r := dims.InnerRadiusMM + offset
			t.Layers = append(t.Layers, LayerMesh{
				Layer: layer,
				Mesh:  shellAt(r, dims.CylinderLengthMM, dome.NettingAngleDeg, bossR, depth, layer.Coverage, opt),
			})
		}
	}

	t.Bosses = bossMeshes(dome, dims.CylinderLengthMM/2+depth, opt.Segments)
	return t
}

// shellAt builds one revolved shell at the given cylinder radius.
// FullCoverage shells span both domes and the cylinder; cylinder-only
// shells span just the cylindrical section.
func shellAt(radius, cylLen, alpha0Deg, bossR, depth float64, cov tankcad.Coverage, opt BuildOptions) *Buffers {
	half := cylLen / 2
	var m []tankcad.ProfilePoint

	if cov == tankcad.CylinderCoverage {
		m = cylinderMeridian(radius, half, opt.CylinderRings)
		return revolve(m, opt.Segments, false)
	}

	prof := tankcad.IsotensoidProfile(radius, alpha0Deg, bossR, depth, opt.ProfileSamples)
	// Top dome, apex down to the junction.
	for _, p := range prof {
		m = append(m, tankcad.ProfilePoint{R: p.R, Z: half + p.Z})
	}
	// Cylinder section, skipping the ring shared with the junction.
	cyl := cylinderMeridian(radius, half, opt.CylinderRings)
	m = append(m, cyl[1:]...)
	// Bottom dome mirrors the top, junction out to the apex.
	for i := len(prof) - 2; i >= 0; i-- {
		p := prof[i]
		m = append(m, tankcad.ProfilePoint{R: p.R, Z: -half - p.Z})
	}
	return revolve(m, opt.Segments, false)
}

// cylinderMeridian samples the straight section from +half down to
// -half with rings+1 points.
func cylinderMeridian(radius, half float64, rings int) []tankcad.ProfilePoint {
	if rings < 1 {
		rings = 1
	}
	m := make([]tankcad.ProfilePoint, rings+1)
	for i := 0; i <= rings; i++ {
		z := half - (2*half)*float64(i)/float64(rings)
		m[i] = tankcad.ProfilePoint{R: radius, Z: z}
	}
	return m
}

// bossMeshes generates the two boss fittings as short revolved annular
// plugs protruding from each apex. Degenerate boss diameters (OD not
// greater than ID, or non-positive) yield no boss meshes rather than
// broken buffers.
func bossMeshes(dome tankcad.DomeSpec, apexZ float64, segments int) []*Buffers {
	id := dome.BossIDMM
	od := dome.BossODMM
	if od <= 0 || id < 0 || od <= id {
		return nil
	}
	height := 0.25 * od
	top := revolve(bossMeridian(id/2, od/2, apexZ+height, apexZ), segments, true)
	bottom := revolve(bossMeridian(id/2, od/2, -apexZ, -apexZ-height), segments, true)
	return []*Buffers{top, bottom}
}

// bossMeridian is the closed rectangular section of a boss plug in the
// (r,z) plane, ordered so revolve produces outward normals: top annulus,
// outer wall, bottom annulus, inner bore.
func bossMeridian(rInner, rOuter, zTop, zBottom float64) []tankcad.ProfilePoint {
	return []tankcad.ProfilePoint{
		{R: rInner, Z: zTop},
		{R: rOuter, Z: zTop},
		{R: rOuter, Z: zBottom},
		{R: rInner, Z: zBottom},
	}
}
