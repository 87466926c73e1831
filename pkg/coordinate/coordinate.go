// Package coordinate models the independent measurement axes a mass
// spectrometry observation may be placed in simultaneously: mass-to-charge
// ratio (m/z), neutral mass, event time, and ion mobility.
//
// An entity joins an axis by implementing the matching capability interface
// (for example any type with a GetMZ method is MZLocated). Zero-size
// dimension markers such as MZ and Mass bind those capabilities to generic
// code, so algorithms over one axis can be written once and reused across
// all axes without runtime branching:
//
//	func lowest[C coordinate.CoordinateSystem[T], T any](peaks []T) T {
//		var c C
//		best := peaks[0]
//		for _, p := range peaks[1:] {
//			if c.Coordinate(p) < c.Coordinate(best) {
//				best = p
//			}
//		}
//		return best
//	}
//
//	p := lowest[coordinate.MZ[peak.CentroidPeak]](peaks)
//
// Because the marker for one axis only accepts entities with that axis's
// capability, mixing coordinate spaces is a compile error, not a runtime
// surprise.
package coordinate

// IndexType is the ordinal position of an entity within some external
// ordered collection, such as a sorted peak list.
type IndexType = uint32

// MZLocated is satisfied by any entity with a position in the
// mass-to-charge ratio coordinate space.
type MZLocated interface {
	GetMZ() float64
}

// MassLocated is satisfied by any entity with a position in the neutral
// mass coordinate space.
type MassLocated interface {
	GetNeutralMass() float64
}

// TimeLocated is satisfied by any entity with a position in the event time
// coordinate space.
type TimeLocated interface {
	GetTime() float64
}

// IonMobilityLocated is satisfied by any entity with a position in the ion
// mobility time coordinate space.
type IonMobilityLocated interface {
	GetIonMobility() float64
}

// MZLocatedMut is an MZLocated entity whose m/z is stored and assignable.
// Derived coordinates never implement the mutable variant.
type MZLocatedMut interface {
	MZLocated
	MZMut() *float64
}

// MassLocatedMut is a MassLocated entity whose neutral mass is stored and
// assignable.
type MassLocatedMut interface {
	MassLocated
	NeutralMassMut() *float64
}

// TimeLocatedMut is a TimeLocated entity whose time is stored and
// assignable.
type TimeLocatedMut interface {
	TimeLocated
	TimeMut() *float64
}

// IonMobilityLocatedMut is an IonMobilityLocated entity whose ion mobility
// is stored and assignable.
type IonMobilityLocatedMut interface {
	IonMobilityLocated
	IonMobilityMut() *float64
}

// Indexed is satisfied by entities that carry an ordinal position assigned
// by a containing collection. The index is collection metadata, not part of
// the measurement; nothing at this layer enforces uniqueness.
type Indexed interface {
	GetIndex() IndexType
}

// IndexedMut additionally allows the owning collection to assign the index.
type IndexedMut interface {
	Indexed
	SetIndex(IndexType)
}

// CoordinateSystem is implemented by dimension markers. A marker extracts
// the coordinate of an entity on its axis, giving generic code a uniform,
// compile-time dispatched accessor.
type CoordinateSystem[T any] interface {
	Coordinate(T) float64
}

// MutableCoordinateSystem is implemented by mutable dimension markers,
// which additionally expose the stored coordinate for assignment.
type MutableCoordinateSystem[T any] interface {
	CoordinateSystem[T]
	CoordinateMut(T) *float64
}

// MZ is the mass-to-charge ratio dimension marker.
type MZ[T MZLocated] struct{}

// Coordinate reports the m/z of p.
func (MZ[T]) Coordinate(p T) float64 { return p.GetMZ() }

// Mass is the neutral mass dimension marker.
type Mass[T MassLocated] struct{}

// Coordinate reports the neutral mass of p.
func (Mass[T]) Coordinate(p T) float64 { return p.GetNeutralMass() }

// Time is the event time dimension marker.
type Time[T TimeLocated] struct{}

// Coordinate reports the elapsed time of p.
func (Time[T]) Coordinate(p T) float64 { return p.GetTime() }

// IonMobility is the ion mobility time dimension marker.
type IonMobility[T IonMobilityLocated] struct{}

// Coordinate reports the ion mobility of p.
func (IonMobility[T]) Coordinate(p T) float64 { return p.GetIonMobility() }

// MZMutable is the mutable view of the m/z dimension. It only instantiates
// over entities that store their m/z, so requesting mutable access to a
// derived m/z fails to compile.
type MZMutable[T MZLocatedMut] struct{}

// Coordinate reports the m/z of p.
func (MZMutable[T]) Coordinate(p T) float64 { return p.GetMZ() }

// CoordinateMut exposes the stored m/z of p for assignment.
func (MZMutable[T]) CoordinateMut(p T) *float64 { return p.MZMut() }

// MassMutable is the mutable view of the neutral mass dimension.
type MassMutable[T MassLocatedMut] struct{}

// Coordinate reports the neutral mass of p.
func (MassMutable[T]) Coordinate(p T) float64 { return p.GetNeutralMass() }

// CoordinateMut exposes the stored neutral mass of p for assignment.
func (MassMutable[T]) CoordinateMut(p T) *float64 { return p.NeutralMassMut() }

// TimeMutable is the mutable view of the event time dimension.
type TimeMutable[T TimeLocatedMut] struct{}

// Coordinate reports the elapsed time of p.
func (TimeMutable[T]) Coordinate(p T) float64 { return p.GetTime() }

// CoordinateMut exposes the stored time of p for assignment.
func (TimeMutable[T]) CoordinateMut(p T) *float64 { return p.TimeMut() }

// IonMobilityMutable is the mutable view of the ion mobility dimension.
type IonMobilityMutable[T IonMobilityLocatedMut] struct{}

// Coordinate reports the ion mobility of p.
func (IonMobilityMutable[T]) Coordinate(p T) float64 { return p.GetIonMobility() }

// CoordinateMut exposes the stored ion mobility of p for assignment.
func (IonMobilityMutable[T]) CoordinateMut(p T) *float64 { return p.IonMobilityMut() }

// CoordinateOf reports the coordinate of p on dimension C. It is a free
// function spelling of C's Coordinate method.
func CoordinateOf[C CoordinateSystem[T], T any](p T) float64 {
	var c C
	return c.Coordinate(p)
}

// CoordinateMutOf exposes the stored coordinate of p on dimension C for
// assignment.
func CoordinateMutOf[C MutableCoordinateSystem[T], T any](p T) *float64 {
	var c C
	return c.CoordinateMut(p)
}
