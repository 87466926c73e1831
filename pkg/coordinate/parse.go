package coordinate

import (
	"fmt"
	"strconv"
	"strings"
)

// RangeParseError reports which side of a textual range failed to parse,
// wrapping the underlying numeric parse error.
type RangeParseError struct {
	Side string // "start" or "end"
	Err  error
}

func (e *RangeParseError) Error() string {
	return fmt.Sprintf("failed to parse range %s: %v", e.Side, e.Err)
}

func (e *RangeParseError) Unwrap() error {
	return e.Err
}

// splitRangeTokens splits s on the first occurrence of the highest-priority
// delimiter present: a space, then a colon, then a hyphen. With no delimiter
// the whole string is the start token. Remaining delimiter characters stay
// in the tokens and surface as numeric parse failures.
func splitRangeTokens(s string) (string, string) {
	for _, delim := range []byte{' ', ':', '-'} {
		if i := strings.IndexByte(s, delim); i >= 0 {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func parseBound(token, side string) (*float64, error) {
	if token == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, &RangeParseError{Side: side, Err: err}
	}
	return &v, nil
}

// ParseRange parses a textual selection window over dimension C. The input
// has the form "<start><delim><end>" where <delim> is the first occurrence
// of a space, colon, or hyphen, in that priority. Either side may be empty
// for unbounded, and a bare number parses as a start-only window.
func ParseRange[C CoordinateSystem[T], T any](s string) (CoordinateRange[C, T], error) {
	startTok, endTok := splitRangeTokens(s)
	start, err := parseBound(startTok, "start")
	if err != nil {
		return CoordinateRange[C, T]{}, err
	}
	end, err := parseBound(endTok, "end")
	if err != nil {
		return CoordinateRange[C, T]{}, err
	}
	return CoordinateRange[C, T]{Start: start, End: end}, nil
}

// ParseMZRange parses a textual window over the m/z coordinate space.
func ParseMZRange(s string) (MZRange, error) {
	return ParseRange[MZ[MZLocated], MZLocated](s)
}

// ParseMassRange parses a textual window over the neutral mass coordinate
// space.
func ParseMassRange(s string) (MassRange, error) {
	return ParseRange[Mass[MassLocated], MassLocated](s)
}

// ParseTimeRange parses a textual window over the event time coordinate
// space.
func ParseTimeRange(s string) (TimeRange, error) {
	return ParseRange[Time[TimeLocated], TimeLocated](s)
}

// ParseIonMobilityRange parses a textual window over the ion mobility
// coordinate space.
func ParseIonMobilityRange(s string) (IonMobilityRange, error) {
	return ParseRange[IonMobility[IonMobilityLocated], IonMobilityLocated](s)
}
