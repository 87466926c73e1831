package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/spectralab/mzpeaks/pkg/coordinate"
	"github.com/spectralab/mzpeaks/pkg/peak"
	"github.com/spectralab/mzpeaks/pkg/peakio"
	"github.com/spectralab/mzpeaks/pkg/selection"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	filterMZ        []string
	filterSelection string
	filterInput     string
	filterFormat    string
	filterColor     string
	filterSort      bool
	filterReindex   bool
)

// styles holds color formatters for human-readable peak output
type styles struct {
	header *color.Color
	mz     *color.Color
	index  *color.Color
}

// newStyles creates color formatters for filter output
// enabled=false respects --color never and non-terminal output
func newStyles(enabled bool) *styles {
	s := &styles{
		header: color.New(color.Bold),
		mz:     color.New(color.FgHiGreen),
		index:  color.New(color.FgHiBlue),
	}

	if !enabled {
		s.header.DisableColor()
		s.mz.DisableColor()
		s.index.DisableColor()
	}

	return s
}

var filterCmd = &cobra.Command{
	Use:   "filter <peaks-file>",
	Short: "Filter a peak list by coordinate windows",
	Long: `Read a centroided peak list and keep the peaks that fall inside the
requested m/z windows. A peak is kept when it is contained in at least one
window; with no windows, all peaks pass through. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringArrayVar(&filterMZ, "mz", nil, "m/z window, e.g. \"150:600\" (repeatable)")
	filterCmd.Flags().StringVar(&filterSelection, "selection", "", "Path to a YAML selection windows file")
	filterCmd.Flags().StringVar(&filterInput, "input", "tsv", "Input format: tsv, jsonl")
	filterCmd.Flags().StringVar(&filterFormat, "format", "tsv", "Output format: tsv, jsonl, human")
	filterCmd.Flags().StringVar(&filterColor, "color", "auto", "Color output: auto, always, never")
	filterCmd.Flags().BoolVar(&filterSort, "sort", false, "Sort kept peaks by m/z")
	filterCmd.Flags().BoolVar(&filterReindex, "reindex", false, "Assign sequential indexes to kept peaks")
}

func runFilter(cmd *cobra.Command, args []string) error {
	windows, err := collectWindows(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	peaks, err := readPeaks(args[0])
	if err != nil {
		return err
	}

	kept := applyWindows(peaks, windows)

	if filterSort {
		slices.SortFunc(kept, peak.CentroidPeak.Compare)
	}
	if filterReindex {
		peakio.Reindex(kept)
	}

	return writePeaks(cmd.OutOrStdout(), kept)
}

// collectWindows gathers m/z windows from --mz flags and the selection
// file. Windows over other dimensions cannot apply to a centroid list and
// are skipped with a notice.
func collectWindows(errOut io.Writer) ([]coordinate.MZRange, error) {
	var windows []coordinate.MZRange

	for _, s := range filterMZ {
		r, err := coordinate.ParseMZRange(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --mz window %q: %w", s, err)
		}
		windows = append(windows, r)
	}

	if filterSelection != "" {
		loaded, err := selection.NewLoader().LoadFile(filterSelection)
		if err != nil {
			return nil, fmt.Errorf("loading selection file: %w", err)
		}
		for _, w := range loaded {
			r, ok := w.MZRange()
			if !ok {
				if !quiet {
					fmt.Fprintf(errOut, "skipping window %q: dimension %s does not apply to a centroid list\n", w.Name, w.Dimension)
				}
				continue
			}
			windows = append(windows, r)
		}
	}

	return windows, nil
}

func applyWindows(peaks []peak.CentroidPeak, windows []coordinate.MZRange) []peak.CentroidPeak {
	if len(windows) == 0 {
		return peaks
	}
	kept := make([]peak.CentroidPeak, 0, len(peaks))
	for _, p := range peaks {
		for _, w := range windows {
			if w.Contains(p) {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}

func readPeaks(target string) ([]peak.CentroidPeak, error) {
	var r io.Reader
	if target == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(target)
		if err != nil {
			return nil, fmt.Errorf("opening peak list: %w", err)
		}
		defer f.Close()
		r = f
	}

	switch filterInput {
	case "tsv":
		return peakio.ReadTSV(r)
	case "jsonl":
		return peakio.ReadJSONL(r)
	default:
		return nil, fmt.Errorf("unknown input format: %s", filterInput)
	}
}

func writePeaks(out io.Writer, peaks []peak.CentroidPeak) error {
	switch filterFormat {
	case "tsv":
		return peakio.WriteTSV(out, peaks)
	case "jsonl":
		return peakio.WriteJSONL(out, peaks)
	case "human":
		return writeHuman(out, peaks)
	default:
		return fmt.Errorf("unknown output format: %s", filterFormat)
	}
}

func writeHuman(out io.Writer, peaks []peak.CentroidPeak) error {
	enabled := false
	switch filterColor {
	case "always":
		enabled = true
	case "never":
		enabled = false
	case "auto":
		enabled = term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return fmt.Errorf("unknown color mode: %s", filterColor)
	}
	s := newStyles(enabled)

	fmt.Fprintf(out, "%s\n", s.header.Sprintf("%12s  %12s  %8s", "m/z", "intensity", "index"))
	for _, p := range peaks {
		fmt.Fprintf(out, "%s  %12.1f  %s\n",
			s.mz.Sprintf("%12.4f", p.Mz),
			p.Intensity,
			s.index.Sprintf("%8d", p.Index),
		)
	}
	fmt.Fprintf(out, "\n%d peaks\n", len(peaks))
	return nil
}
