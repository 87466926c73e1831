package peak

import "github.com/spectralab/mzpeaks/pkg/coordinate"

// CentroidRef is a shared, read-only view of a centroid-like entity.
// Coordinate, intensity, and index reads delegate to the referent, while
// SetIndex is accepted and silently ignored: generic code may treat owned
// peaks and shared views interchangeably without a view ever mutating the
// referent's index. A CentroidRef is itself CentroidLike.
type CentroidRef[T CentroidLike] struct {
	referent T
}

// BorrowCentroid returns a shared view of p.
func BorrowCentroid[T CentroidLike](p T) CentroidRef[T] {
	return CentroidRef[T]{referent: p}
}

// GetMZ reports the referent's m/z coordinate.
func (r CentroidRef[T]) GetMZ() float64 { return r.referent.GetMZ() }

// GetIntensity reports the referent's intensity.
func (r CentroidRef[T]) GetIntensity() float32 { return r.referent.GetIntensity() }

// GetIndex reports the referent's index.
func (r CentroidRef[T]) GetIndex() coordinate.IndexType { return r.referent.GetIndex() }

// SetIndex is ignored on a shared view.
func (r CentroidRef[T]) SetIndex(coordinate.IndexType) {}

// DeconvolutedRef is a shared, read-only view of a deconvoluted-centroid-like
// entity, with the same delegating reads and no-op SetIndex as CentroidRef.
// It also exposes the derived m/z of the referent.
type DeconvolutedRef[T DeconvolutedCentroidLike] struct {
	referent T
}

// BorrowDeconvoluted returns a shared view of p.
func BorrowDeconvoluted[T DeconvolutedCentroidLike](p T) DeconvolutedRef[T] {
	return DeconvolutedRef[T]{referent: p}
}

// GetNeutralMass reports the referent's neutral mass coordinate.
func (r DeconvolutedRef[T]) GetNeutralMass() float64 { return r.referent.GetNeutralMass() }

// GetMZ reports the m/z derived from the referent's neutral mass and charge.
func (r DeconvolutedRef[T]) GetMZ() float64 {
	return MassToMZ(r.referent.GetNeutralMass(), r.referent.GetCharge())
}

// GetIntensity reports the referent's intensity.
func (r DeconvolutedRef[T]) GetIntensity() float32 { return r.referent.GetIntensity() }

// GetCharge reports the referent's charge state.
func (r DeconvolutedRef[T]) GetCharge() int32 { return r.referent.GetCharge() }

// GetIndex reports the referent's index.
func (r DeconvolutedRef[T]) GetIndex() coordinate.IndexType { return r.referent.GetIndex() }

// SetIndex is ignored on a shared view.
func (r DeconvolutedRef[T]) SetIndex(coordinate.IndexType) {}
