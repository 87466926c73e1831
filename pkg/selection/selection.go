// Package selection loads named selection windows from YAML so callers can
// keep reusable extraction regions in configuration files. Each window pairs
// a coordinate dimension with a textual range in the format accepted by
// package coordinate.
package selection

import (
	"fmt"

	"github.com/spectralab/mzpeaks/pkg/coordinate"
)

// Dimension names a coordinate space a window selects over.
type Dimension string

const (
	DimensionMZ          Dimension = "mz"
	DimensionMass        Dimension = "mass"
	DimensionTime        Dimension = "time"
	DimensionIonMobility Dimension = "ion_mobility"
)

func (d Dimension) valid() bool {
	switch d {
	case DimensionMZ, DimensionMass, DimensionTime, DimensionIonMobility:
		return true
	}
	return false
}

// Window is a named selection region over one coordinate space. The bounds
// are parsed once at load time; the typed accessors stamp them with the
// matching dimension marker.
type Window struct {
	Name      string
	Dimension Dimension

	start *float64
	end   *float64
}

// NewWindow returns a window with the given parsed bounds. Either pointer
// may be nil for unbounded.
func NewWindow(name string, dim Dimension, start, end *float64) Window {
	return Window{Name: name, Dimension: dim, start: start, end: end}
}

// MZRange reports the window as an m/z range. ok is false when the window
// selects over a different dimension.
func (w Window) MZRange() (coordinate.MZRange, bool) {
	if w.Dimension != DimensionMZ {
		return coordinate.MZRange{}, false
	}
	return coordinate.MZRange{Start: w.start, End: w.end}, true
}

// MassRange reports the window as a neutral mass range.
func (w Window) MassRange() (coordinate.MassRange, bool) {
	if w.Dimension != DimensionMass {
		return coordinate.MassRange{}, false
	}
	return coordinate.MassRange{Start: w.start, End: w.end}, true
}

// TimeRange reports the window as an event time range.
func (w Window) TimeRange() (coordinate.TimeRange, bool) {
	if w.Dimension != DimensionTime {
		return coordinate.TimeRange{}, false
	}
	return coordinate.TimeRange{Start: w.start, End: w.end}, true
}

// IonMobilityRange reports the window as an ion mobility range.
func (w Window) IonMobilityRange() (coordinate.IonMobilityRange, bool) {
	if w.Dimension != DimensionIonMobility {
		return coordinate.IonMobilityRange{}, false
	}
	return coordinate.IonMobilityRange{Start: w.start, End: w.end}, true
}

func (w Window) String() string {
	r := coordinate.MZRange{Start: w.start, End: w.end}
	return fmt.Sprintf("%s[%s %s]", w.Name, w.Dimension, r.String())
}
