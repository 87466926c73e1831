package coordinate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ionPoint is a local entity placed in two coordinate spaces at once. It
// acquires both capabilities purely by method set, with no registration.
type ionPoint struct {
	time  float64
	drift float64
}

func (p ionPoint) GetTime() float64 { return p.time }

func (p *ionPoint) TimeMut() *float64 { return &p.time }

func (p ionPoint) GetIonMobility() float64 { return p.drift }

func (p *ionPoint) IonMobilityMut() *float64 { return &p.drift }

func TestCoordinateOfMatchesNamedAccessor(t *testing.T) {
	p := ionPoint{time: 12.5, drift: 0.89}

	assert.Equal(t, p.GetTime(), CoordinateOf[Time[ionPoint]](p))
	assert.Equal(t, p.GetIonMobility(), CoordinateOf[IonMobility[ionPoint]](p))
}

func TestMarkerCoordinateMatchesFreeFunction(t *testing.T) {
	p := ionPoint{time: 3.25, drift: 1.5}

	var tm Time[ionPoint]
	assert.Equal(t, CoordinateOf[Time[ionPoint]](p), tm.Coordinate(p))

	var im IonMobility[ionPoint]
	assert.Equal(t, CoordinateOf[IonMobility[ionPoint]](p), im.Coordinate(p))
}

func TestCoordinateMutOfWritesStoredValue(t *testing.T) {
	p := &ionPoint{time: 1.0, drift: 2.0}

	*CoordinateMutOf[TimeMutable[*ionPoint]](p) = 9001.0
	assert.Equal(t, 9001.0, p.GetTime())
	assert.Equal(t, 9001.0, CoordinateOf[Time[*ionPoint]](p))

	// The other coordinate space is untouched.
	assert.Equal(t, 2.0, p.GetIonMobility())

	var im IonMobilityMutable[*ionPoint]
	*im.CoordinateMut(p) = 0.75
	assert.Equal(t, 0.75, p.GetIonMobility())
}

// lowestOn is a generic algorithm written once and reused on every axis.
func lowestOn[C CoordinateSystem[T], T any](points []T) T {
	var c C
	best := points[0]
	for _, p := range points[1:] {
		if c.Coordinate(p) < c.Coordinate(best) {
			best = p
		}
	}
	return best
}

func TestGenericAlgorithmAcrossAxes(t *testing.T) {
	points := []ionPoint{
		{time: 5.0, drift: 0.2},
		{time: 1.0, drift: 0.9},
		{time: 3.0, drift: 0.5},
	}

	assert.Equal(t, 1.0, lowestOn[Time[ionPoint]](points).GetTime())
	assert.Equal(t, 0.2, lowestOn[IonMobility[ionPoint]](points).GetIonMobility())
}
