// Package mzpeaks provides the peak data model for mass spectrometry.
//
// mzpeaks is a Go port of the mzpeaks Rust crate. A peak is the most atomic
// unit of a processed mass spectrum: a location in one or more coordinate
// spaces (m/z, neutral mass, time, ion mobility) with a measured intensity
// and an ordinal index assigned by a containing collection.
//
// # Basic Usage
//
// Construct peaks and test them against selection windows:
//
//	p := mzpeaks.NewCentroidPeak(204.07, 5000, 19)
//
//	window, err := mzpeaks.ParseMZRange("200:210")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if window.Contains(p) {
//	    fmt.Println(p)
//	}
//
// # Derived Coordinates
//
// A deconvoluted peak stores a neutral mass and charge; its m/z is derived
// on every read:
//
//	d := mzpeaks.NewDeconvolutedPeak(799.359964027, 5000, 2, 0)
//	fmt.Println(d.GetMZ()) // 400.68725848027
//
// The subpackages carry the full surface: pkg/coordinate for dimension
// markers, capability interfaces, and ranges; pkg/peak for entities, roles,
// and conversions; pkg/selection for YAML window files; pkg/peakio for peak
// list serialization.
package mzpeaks

import (
	"github.com/spectralab/mzpeaks/pkg/coordinate"
	"github.com/spectralab/mzpeaks/pkg/peak"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/spectralab/mzpeaks" without subpackages.
type (
	// CentroidPeak is a single m/z coordinate with intensity and index.
	CentroidPeak = peak.CentroidPeak

	// DeconvolutedPeak is a neutral mass coordinate with intensity, charge,
	// and index.
	DeconvolutedPeak = peak.DeconvolutedPeak

	// MZPoint is a bare m/z and intensity pair with no persisted index.
	MZPoint = peak.MZPoint

	// CentroidLike is the role of anything indexed in m/z with intensity.
	CentroidLike = peak.CentroidLike

	// DeconvolutedCentroidLike is the role of anything indexed in neutral
	// mass with intensity and known charge.
	DeconvolutedCentroidLike = peak.DeconvolutedCentroidLike

	// MZRange is a selection window over the m/z coordinate space.
	MZRange = coordinate.MZRange

	// MassRange is a selection window over the neutral mass coordinate
	// space.
	MassRange = coordinate.MassRange

	// TimeRange is a selection window over the event time coordinate space.
	TimeRange = coordinate.TimeRange

	// IonMobilityRange is a selection window over the ion mobility
	// coordinate space.
	IonMobilityRange = coordinate.IonMobilityRange

	// RangeParseError reports which side of a textual range failed to
	// parse.
	RangeParseError = coordinate.RangeParseError

	// IndexType is the ordinal position within an owning collection.
	IndexType = coordinate.IndexType
)

// ChargeCarrierMass is the proton mass in Daltons, used to convert between
// neutral mass and m/z.
const ChargeCarrierMass = peak.ChargeCarrierMass

// NewCentroidPeak returns a centroid peak at the given m/z.
func NewCentroidPeak(mz float64, intensity float32, index IndexType) CentroidPeak {
	return peak.NewCentroidPeak(mz, intensity, index)
}

// NewDeconvolutedPeak returns a deconvoluted peak at the given neutral mass
// and charge state.
func NewDeconvolutedPeak(mass float64, intensity float32, charge int32, index IndexType) DeconvolutedPeak {
	return peak.NewDeconvolutedPeak(mass, intensity, charge, index)
}

// NewMZPoint returns a bare point at the given m/z.
func NewMZPoint(mz float64, intensity float32) MZPoint {
	return peak.NewMZPoint(mz, intensity)
}

// NewMZRange returns the m/z window [start, end].
func NewMZRange(start, end float64) MZRange {
	return coordinate.NewMZRange(start, end)
}

// ParseMZRange parses a textual window over the m/z coordinate space.
func ParseMZRange(s string) (MZRange, error) {
	return coordinate.ParseMZRange(s)
}
