package coordinate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mzTestPoint is a minimal m/z-located entity for containment tests.
type mzTestPoint struct {
	mz float64
}

func (p mzTestPoint) GetMZ() float64 { return p.mz }

func TestParseRangeDelimiters(t *testing.T) {
	// Space, colon, and hyphen all delimit the same bounded window.
	for _, input := range []string{"10 20", "10:20", "10-20"} {
		r, err := ParseMZRange(input)
		require.NoError(t, err, "input %q", input)
		require.NotNil(t, r.Start)
		require.NotNil(t, r.End)
		assert.Equal(t, 10.0, *r.Start, "input %q", input)
		assert.Equal(t, 20.0, *r.End, "input %q", input)
	}
}

func TestParseRangeDelimiterPriority(t *testing.T) {
	// The space wins over the colon; the colon stays in the end token and
	// fails numeric parsing there.
	_, err := ParseMZRange("10 20:30")
	var perr *RangeParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "end", perr.Side)
}

func TestParseRangeOpenSides(t *testing.T) {
	r, err := ParseMZRange(":20")
	require.NoError(t, err)
	assert.Nil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, 20.0, *r.End)

	r, err = ParseMZRange("10:")
	require.NoError(t, err)
	require.NotNil(t, r.Start)
	assert.Equal(t, 10.0, *r.Start)
	assert.Nil(t, r.End)

	// A bare number is a start-only window.
	r, err = ParseMZRange("10")
	require.NoError(t, err)
	require.NotNil(t, r.Start)
	assert.Equal(t, 10.0, *r.Start)
	assert.Nil(t, r.End)
}

func TestParseRangeMalformed(t *testing.T) {
	_, err := ParseMZRange("a:20")
	var perr *RangeParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "start", perr.Side)
	assert.Error(t, perr.Unwrap())

	_, err = ParseMZRange("10:b")
	perr = nil
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "end", perr.Side)

	// Only the first colon splits; the second makes the end token invalid.
	_, err = ParseMZRange("1:2:3")
	perr = nil
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "end", perr.Side)
}

func TestContains(t *testing.T) {
	r := NewMZRange(100.0, 200.0)

	assert.True(t, r.Contains(mzTestPoint{mz: 150.0}))
	assert.False(t, r.Contains(mzTestPoint{mz: 99.9999}))

	// Both present bounds are inclusive.
	assert.True(t, r.ContainsRaw(100.0))
	assert.True(t, r.ContainsRaw(200.0))
	assert.False(t, r.ContainsRaw(200.0001))
}

func TestContainsUnboundedSides(t *testing.T) {
	upper := MZRangeUpTo(20.0)
	assert.True(t, upper.ContainsRaw(5.0))
	assert.True(t, upper.ContainsRaw(20.0))
	assert.False(t, upper.ContainsRaw(25.0))
	// An absent start behaves as zero.
	assert.False(t, upper.ContainsRaw(-1.0))

	open := MZRange{}
	assert.True(t, open.ContainsRaw(1e9))
}

func TestOverlaps(t *testing.T) {
	a := NewMZRange(0, 10)
	b := NewMZRange(10, 20)

	// A shared boundary point counts as overlap.
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	c := NewMZRange(0, 9)
	assert.False(t, c.Overlaps(b))
	assert.False(t, b.Overlaps(c))
}

func TestOverlapsArbitraryBounds(t *testing.T) {
	r := NewMZRange(0, 10)

	assert.True(t, r.Overlaps(Bounds{Start: Include(5), End: Unbounded()}))
	assert.False(t, r.Overlaps(Bounds{Start: Include(10.5), End: Unbounded()}))

	// An excluded bound collapses to its numeric value, so a touching open
	// bound still reports overlap.
	assert.True(t, r.Overlaps(Bounds{Start: Exclude(10), End: Unbounded()}))

	// A fully unbounded argument overlaps everything.
	assert.True(t, r.Overlaps(Bounds{}))
}

func TestRangeBoundsView(t *testing.T) {
	r := NewMZRange(2, 3)
	assert.Equal(t, Include(2), r.StartBound())
	assert.Equal(t, Include(3), r.EndBound())

	open := MZRange{}
	assert.Equal(t, Unbounded(), open.StartBound())
	assert.Equal(t, Unbounded(), open.EndBound())
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "10:20", NewMZRange(10, 20).String())
	assert.Equal(t, ":20", MZRangeUpTo(20).String())

	r, err := ParseMZRange("10:")
	require.NoError(t, err)
	assert.Equal(t, "10:", r.String())
}
