package coordinate

import (
	"math"
	"strconv"
)

// BoundKind classifies one end of an interval query.
type BoundKind uint8

const (
	// BoundUnbounded marks an absent bound. An unbounded start behaves as
	// 0 and an unbounded end behaves as +Inf.
	BoundUnbounded BoundKind = iota
	// BoundIncluded marks a closed bound.
	BoundIncluded
	// BoundExcluded marks an open bound.
	BoundExcluded
)

// Bound is one end of an interval query.
type Bound struct {
	Kind  BoundKind
	Value float64
}

// Include returns a closed bound at v.
func Include(v float64) Bound { return Bound{Kind: BoundIncluded, Value: v} }

// Exclude returns an open bound at v.
func Exclude(v float64) Bound { return Bound{Kind: BoundExcluded, Value: v} }

// Unbounded returns an absent bound.
func Unbounded() Bound { return Bound{Kind: BoundUnbounded} }

// RangeBounds is the bound-pair view of anything interval-like. It is the
// argument shape accepted by overlap tests.
type RangeBounds interface {
	StartBound() Bound
	EndBound() Bound
}

// Bounds is a plain bound pair. It implements RangeBounds for callers that
// need to express open or mixed bounds directly.
type Bounds struct {
	Start Bound
	End   Bound
}

// StartBound reports the lower bound.
func (b Bounds) StartBound() Bound { return b.Start }

// EndBound reports the upper bound.
func (b Bounds) EndBound() Bound { return b.End }

// CoordinateRange is a selection window over one coordinate space. A nil
// Start or End is unbounded in that direction; present bounds are inclusive.
// The dimension marker C ties the window to a single coordinate space, so a
// range over m/z cannot be applied to a neutral mass test.
type CoordinateRange[C CoordinateSystem[T], T any] struct {
	Start *float64
	End   *float64
}

// MZRange is a selection window over the m/z coordinate space, accepting
// any MZLocated entity.
type MZRange = CoordinateRange[MZ[MZLocated], MZLocated]

// MassRange is a selection window over the neutral mass coordinate space.
type MassRange = CoordinateRange[Mass[MassLocated], MassLocated]

// TimeRange is a selection window over the event time coordinate space.
type TimeRange = CoordinateRange[Time[TimeLocated], TimeLocated]

// IonMobilityRange is a selection window over the ion mobility coordinate
// space.
type IonMobilityRange = CoordinateRange[IonMobility[IonMobilityLocated], IonMobilityLocated]

// NewRange returns a window over dimension C with the given optional
// bounds. Either pointer may be nil for unbounded.
func NewRange[C CoordinateSystem[T], T any](start, end *float64) CoordinateRange[C, T] {
	return CoordinateRange[C, T]{Start: start, End: end}
}

// BoundedRange returns a fully bounded window [start, end] over dimension C.
func BoundedRange[C CoordinateSystem[T], T any](start, end float64) CoordinateRange[C, T] {
	return CoordinateRange[C, T]{Start: &start, End: &end}
}

// RangeUpTo returns a window with only an upper bound, (unbounded, end].
func RangeUpTo[C CoordinateSystem[T], T any](end float64) CoordinateRange[C, T] {
	return CoordinateRange[C, T]{End: &end}
}

// NewMZRange returns the m/z window [start, end].
func NewMZRange(start, end float64) MZRange {
	return BoundedRange[MZ[MZLocated], MZLocated](start, end)
}

// MZRangeUpTo returns the m/z window (unbounded, end].
func MZRangeUpTo(end float64) MZRange {
	return RangeUpTo[MZ[MZLocated], MZLocated](end)
}

// NewMassRange returns the neutral mass window [start, end].
func NewMassRange(start, end float64) MassRange {
	return BoundedRange[Mass[MassLocated], MassLocated](start, end)
}

// MassRangeUpTo returns the neutral mass window (unbounded, end].
func MassRangeUpTo(end float64) MassRange {
	return RangeUpTo[Mass[MassLocated], MassLocated](end)
}

// NewTimeRange returns the time window [start, end].
func NewTimeRange(start, end float64) TimeRange {
	return BoundedRange[Time[TimeLocated], TimeLocated](start, end)
}

// TimeRangeUpTo returns the time window (unbounded, end].
func TimeRangeUpTo(end float64) TimeRange {
	return RangeUpTo[Time[TimeLocated], TimeLocated](end)
}

// NewIonMobilityRange returns the ion mobility window [start, end].
func NewIonMobilityRange(start, end float64) IonMobilityRange {
	return BoundedRange[IonMobility[IonMobilityLocated], IonMobilityLocated](start, end)
}

// IonMobilityRangeUpTo returns the ion mobility window (unbounded, end].
func IonMobilityRangeUpTo(end float64) IonMobilityRange {
	return RangeUpTo[IonMobility[IonMobilityLocated], IonMobilityLocated](end)
}

func (r CoordinateRange[C, T]) startOrZero() float64 {
	if r.Start != nil {
		return *r.Start
	}
	return 0
}

func (r CoordinateRange[C, T]) endOrInf() float64 {
	if r.End != nil {
		return *r.End
	}
	return math.Inf(1)
}

// Contains reports whether the coordinate of p on dimension C falls within
// the window. Both present bounds are inclusive.
func (r CoordinateRange[C, T]) Contains(p T) bool {
	var c C
	return r.ContainsRaw(c.Coordinate(p))
}

// ContainsRaw reports whether the raw value x falls within the window.
func (r CoordinateRange[C, T]) ContainsRaw(x float64) bool {
	return x >= r.startOrZero() && x <= r.endOrInf()
}

// Overlaps reports whether the window shares at least one boundary or
// interior point with the given bound pair. The argument's included and
// excluded bounds are collapsed to their numeric values, so an exclusive
// bound that only touches at its exact boundary still reports overlap;
// callers needing strict exclusion at a boundary must test it themselves.
func (r CoordinateRange[C, T]) Overlaps(o RangeBounds) bool {
	start := 0.0
	if b := o.StartBound(); b.Kind != BoundUnbounded {
		start = b.Value
	}
	end := math.Inf(1)
	if b := o.EndBound(); b.Kind != BoundUnbounded {
		end = b.Value
	}
	return r.endOrInf() >= start && end >= r.startOrZero()
}

// StartBound reports the lower bound of the window.
func (r CoordinateRange[C, T]) StartBound() Bound {
	if r.Start == nil {
		return Unbounded()
	}
	return Include(*r.Start)
}

// EndBound reports the upper bound of the window.
func (r CoordinateRange[C, T]) EndBound() Bound {
	if r.End == nil {
		return Unbounded()
	}
	return Include(*r.End)
}

// String renders the window in the textual range format accepted by
// ParseRange, with absent bounds left empty.
func (r CoordinateRange[C, T]) String() string {
	var start, end string
	if r.Start != nil {
		start = strconv.FormatFloat(*r.Start, 'g', -1, 64)
	}
	if r.End != nil {
		end = strconv.FormatFloat(*r.End, 'g', -1, 64)
	}
	return start + ":" + end
}
