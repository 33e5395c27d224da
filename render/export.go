package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/vesselworks/tankcad/mesh"
)

// Format enumerates CAD exchange formats the exporter knows about.
type Format uint8

const (
	FormatSTL Format = iota
	FormatSTEP
	FormatIGES
)

func (f Format) String() string {
	switch f {
	case FormatSTL:
		return "stl"
	case FormatSTEP:
		return "step"
	case FormatIGES:
		return "iges"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ErrUnsupportedFormat is returned for formats the exporter does not
// implement yet. Proper B-rep CAD export (STEP/IGES) needs a geometry
// kernel and is deliberately out of scope; only mesh STL snapshots are
// supported.
var ErrUnsupportedFormat = errors.New("render: unsupported export format")

// Export writes a tank's merged mesh in the requested format.
func Export(w io.Writer, t *mesh.TankGeometry, f Format) error {
	if t == nil {
		return errors.New("render: nil tank geometry")
	}
	switch f {
	case FormatSTL:
		return WriteSTL(w, t.Merged().Triangles())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}
