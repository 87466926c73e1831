// Package peak defines the atomic units of a processed mass spectrum: single
// measured points carrying one or more coordinates, an intensity, and an
// ordinal index assigned by a containing collection.
//
// The concrete entities are plain records. Generic algorithms consume them
// through the capability interfaces of this package and package coordinate;
// any type that happens to implement the right method set qualifies for the
// corresponding role with no further declaration.
package peak

import (
	"cmp"
	"fmt"

	"github.com/spectralab/mzpeaks/pkg/coordinate"
)

// ChargeCarrierMass is the mass contribution of one elementary charge unit,
// the proton, in Daltons.
const ChargeCarrierMass = 1.007276

// IntensityMeasurement is satisfied by any entity with a measured intensity.
type IntensityMeasurement interface {
	GetIntensity() float32
}

// IntensityMeasurementMut is an IntensityMeasurement whose intensity is
// stored and assignable.
type IntensityMeasurementMut interface {
	IntensityMeasurement
	IntensityMut() *float32
}

// KnownCharge is satisfied by any entity with a determined charge state.
type KnownCharge interface {
	GetCharge() int32
}

// KnownChargeMut is a KnownCharge whose charge state is stored and
// assignable.
type KnownChargeMut interface {
	KnownCharge
	ChargeMut() *int32
}

// CentroidLike is any entity indexed in the m/z coordinate space with an
// intensity. Satisfying the method set is sufficient; there is no opt-in.
type CentroidLike interface {
	coordinate.MZLocated
	coordinate.Indexed
	IntensityMeasurement
}

// DeconvolutedCentroidLike is any entity indexed in the neutral mass
// coordinate space with an intensity and a known charge state.
type DeconvolutedCentroidLike interface {
	coordinate.MassLocated
	coordinate.Indexed
	IntensityMeasurement
	KnownCharge
}

// MassToMZ derives the mass-to-charge ratio of a species with the given
// neutral mass and charge state. A charge of zero divides by zero and
// yields an IEEE non-finite result; callers must guard if that matters.
func MassToMZ(mass float64, charge int32) float64 {
	z := float64(charge)
	return (mass + ChargeCarrierMass*z) / z
}

// MZToMass inverts MassToMZ, recovering the neutral mass from an m/z and a
// charge state.
func MZToMass(mz float64, charge int32) float64 {
	z := float64(charge)
	return mz*z - ChargeCarrierMass*z
}

// CentroidPeak is a single m/z coordinate with an intensity and an index.
// Nearly the most basic representation of peak-picked data.
type CentroidPeak struct {
	Mz        float64              `json:"mz" yaml:"mz"`
	Intensity float32              `json:"intensity" yaml:"intensity"`
	Index     coordinate.IndexType `json:"index" yaml:"index"`
}

// NewCentroidPeak returns a centroid peak at the given m/z.
func NewCentroidPeak(mz float64, intensity float32, index coordinate.IndexType) CentroidPeak {
	return CentroidPeak{Mz: mz, Intensity: intensity, Index: index}
}

// GetMZ reports the m/z coordinate.
func (p CentroidPeak) GetMZ() float64 { return p.Mz }

// MZMut exposes the stored m/z for assignment.
func (p *CentroidPeak) MZMut() *float64 { return &p.Mz }

// GetIntensity reports the measured intensity.
func (p CentroidPeak) GetIntensity() float32 { return p.Intensity }

// IntensityMut exposes the stored intensity for assignment.
func (p *CentroidPeak) IntensityMut() *float32 { return &p.Intensity }

// GetIndex reports the ordinal assigned by the owning collection.
func (p CentroidPeak) GetIndex() coordinate.IndexType { return p.Index }

// SetIndex assigns the ordinal. Owning collections call this when sorting
// or inserting.
func (p *CentroidPeak) SetIndex(i coordinate.IndexType) { p.Index = i }

// Compare orders centroid peaks by m/z, consistent with the m/z coordinate.
func (p CentroidPeak) Compare(o CentroidPeak) int { return cmp.Compare(p.Mz, o.Mz) }

// AsMZPoint converts to the bare point representation, dropping the index.
func (p CentroidPeak) AsMZPoint() MZPoint {
	return MZPoint{Mz: p.Mz, Intensity: p.Intensity}
}

func (p CentroidPeak) String() string {
	return fmt.Sprintf("CentroidPeak(%v, %v, %d)", p.Mz, p.Intensity, p.Index)
}

// MZPoint is a bare m/z and intensity pair for lightweight transient
// representations. It participates in centroid-like generic code but never
// persists an index: reads report zero and assignment is ignored.
type MZPoint struct {
	Mz        float64 `json:"mz" yaml:"mz"`
	Intensity float32 `json:"intensity" yaml:"intensity"`
}

// NewMZPoint returns a bare point at the given m/z.
func NewMZPoint(mz float64, intensity float32) MZPoint {
	return MZPoint{Mz: mz, Intensity: intensity}
}

// GetMZ reports the m/z coordinate.
func (p MZPoint) GetMZ() float64 { return p.Mz }

// MZMut exposes the stored m/z for assignment.
func (p *MZPoint) MZMut() *float64 { return &p.Mz }

// GetIntensity reports the measured intensity.
func (p MZPoint) GetIntensity() float32 { return p.Intensity }

// IntensityMut exposes the stored intensity for assignment.
func (p *MZPoint) IntensityMut() *float32 { return &p.Intensity }

// GetIndex always reports zero; a bare point has no persisted index.
func (p MZPoint) GetIndex() coordinate.IndexType { return 0 }

// SetIndex is a no-op; a bare point has no persisted index.
func (p *MZPoint) SetIndex(coordinate.IndexType) {}

// Compare orders bare points by m/z.
func (p MZPoint) Compare(o MZPoint) int { return cmp.Compare(p.Mz, o.Mz) }

// AsCentroid converts to the indexed representation with index zero.
func (p MZPoint) AsCentroid() CentroidPeak {
	return CentroidPeak{Mz: p.Mz, Intensity: p.Intensity, Index: 0}
}

func (p MZPoint) String() string {
	return fmt.Sprintf("MZPoint(%v, %v)", p.Mz, p.Intensity)
}

// DeconvolutedPeak is a single neutral mass coordinate with an intensity, a
// known charge state, and an index. Its m/z coordinate is derived from the
// neutral mass and charge on every read, so it always reflects the current
// stored values.
type DeconvolutedPeak struct {
	Mass      float64              `json:"neutral_mass" yaml:"neutral_mass"`
	Intensity float32              `json:"intensity" yaml:"intensity"`
	Charge    int32                `json:"charge" yaml:"charge"`
	Index     coordinate.IndexType `json:"index" yaml:"index"`
}

// NewDeconvolutedPeak returns a deconvoluted peak at the given neutral mass
// and charge state.
func NewDeconvolutedPeak(mass float64, intensity float32, charge int32, index coordinate.IndexType) DeconvolutedPeak {
	return DeconvolutedPeak{Mass: mass, Intensity: intensity, Charge: charge, Index: index}
}

// GetNeutralMass reports the neutral mass coordinate.
func (p DeconvolutedPeak) GetNeutralMass() float64 { return p.Mass }

// NeutralMassMut exposes the stored neutral mass for assignment.
func (p *DeconvolutedPeak) NeutralMassMut() *float64 { return &p.Mass }

// GetMZ reports the derived m/z coordinate, recomputed from the current
// neutral mass and charge. It is read-only; there is no MZMut. A charge of
// zero yields an IEEE non-finite result.
func (p DeconvolutedPeak) GetMZ() float64 { return MassToMZ(p.Mass, p.Charge) }

// GetIntensity reports the aggregated intensity.
func (p DeconvolutedPeak) GetIntensity() float32 { return p.Intensity }

// IntensityMut exposes the stored intensity for assignment.
func (p *DeconvolutedPeak) IntensityMut() *float32 { return &p.Intensity }

// GetCharge reports the determined charge state.
func (p DeconvolutedPeak) GetCharge() int32 { return p.Charge }

// ChargeMut exposes the stored charge state for assignment.
func (p *DeconvolutedPeak) ChargeMut() *int32 { return &p.Charge }

// GetIndex reports the ordinal assigned by the owning collection.
func (p DeconvolutedPeak) GetIndex() coordinate.IndexType { return p.Index }

// SetIndex assigns the ordinal.
func (p *DeconvolutedPeak) SetIndex(i coordinate.IndexType) { p.Index = i }

// Compare orders deconvoluted peaks by neutral mass, consistent with the
// mass coordinate.
func (p DeconvolutedPeak) Compare(o DeconvolutedPeak) int { return cmp.Compare(p.Mass, o.Mass) }

func (p DeconvolutedPeak) String() string {
	return fmt.Sprintf("DeconvolutedPeak(%v, %v, %d, %d)", p.Mass, p.Intensity, p.Charge, p.Index)
}

// AsCentroid materializes any centroid-like entity as a CentroidPeak,
// preserving coordinate, intensity, and index exactly.
func AsCentroid(p CentroidLike) CentroidPeak {
	return CentroidPeak{Mz: p.GetMZ(), Intensity: p.GetIntensity(), Index: p.GetIndex()}
}

// AsDeconvoluted materializes any deconvoluted-centroid-like entity as a
// DeconvolutedPeak, preserving all stored values exactly.
func AsDeconvoluted(p DeconvolutedCentroidLike) DeconvolutedPeak {
	return DeconvolutedPeak{
		Mass:      p.GetNeutralMass(),
		Intensity: p.GetIntensity(),
		Charge:    p.GetCharge(),
		Index:     p.GetIndex(),
	}
}
