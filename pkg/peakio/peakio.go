// Package peakio reads and writes centroid peak lists in simple text
// formats: whitespace-separated TSV and line-delimited JSON. It is a thin
// serialization collaborator over the plain records of package peak. JSONL
// round-trips every stored field exactly; TSV carries only m/z and
// intensity, with indexes reassigned in read order.
package peakio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spectralab/mzpeaks/pkg/coordinate"
	"github.com/spectralab/mzpeaks/pkg/peak"
)

// Reindex assigns sequential indexes to peaks in slice order. Containers
// own index assignment; this is the helper they use after sorting or
// filtering.
func Reindex(peaks []peak.CentroidPeak) {
	for i := range peaks {
		peaks[i].SetIndex(coordinate.IndexType(i))
	}
}

// ReadTSV reads a peak list of "mz intensity" lines. Fields are separated
// by any run of spaces or tabs; blank lines and lines starting with '#' are
// skipped. Indexes are assigned in read order.
func ReadTSV(r io.Reader) ([]peak.CentroidPeak, error) {
	var peaks []peak.CentroidPeak
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected mz and intensity, got %q", lineNo, line)
		}
		mz, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid mz: %w", lineNo, err)
		}
		intensity, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid intensity: %w", lineNo, err)
		}
		peaks = append(peaks, peak.NewCentroidPeak(mz, float32(intensity), coordinate.IndexType(len(peaks))))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading peaks: %w", err)
	}
	return peaks, nil
}

// WriteTSV writes peaks as tab-separated "mz intensity" lines.
func WriteTSV(w io.Writer, peaks []peak.CentroidPeak) error {
	bw := bufio.NewWriter(w)
	for _, p := range peaks {
		mz := strconv.FormatFloat(p.Mz, 'g', -1, 64)
		intensity := strconv.FormatFloat(float64(p.Intensity), 'g', -1, 32)
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", mz, intensity); err != nil {
			return fmt.Errorf("writing peaks: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing peaks: %w", err)
	}
	return nil
}

// ReadJSONL reads a peak list with one JSON object per line, using the json
// field tags of peak.CentroidPeak. Blank lines are skipped.
func ReadJSONL(r io.Reader) ([]peak.CentroidPeak, error) {
	var peaks []peak.CentroidPeak
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var p peak.CentroidPeak
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		peaks = append(peaks, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading peaks: %w", err)
	}
	return peaks, nil
}

// WriteJSONL writes peaks with one JSON object per line.
func WriteJSONL(w io.Writer, peaks []peak.CentroidPeak) error {
	enc := json.NewEncoder(w)
	for _, p := range peaks {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("writing peaks: %w", err)
		}
	}
	return nil
}
