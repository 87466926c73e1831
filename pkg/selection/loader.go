package selection

import (
	"fmt"
	"os"

	"github.com/spectralab/mzpeaks/pkg/coordinate"
	"gopkg.in/yaml.v3"
)

// yamlWindow is the intermediate struct for one window entry in a selection
// YAML file.
type yamlWindow struct {
	Name      string `yaml:"name"`
	Dimension string `yaml:"dimension"`
	Range     string `yaml:"range"`
}

// yamlSelectionFile is the top-level structure of a selection YAML file: a
// "windows" list at the top level.
type yamlSelectionFile struct {
	Windows []yamlWindow `yaml:"windows"`
}

// Loader parses selection window files.
type Loader struct{}

// NewLoader returns a selection window loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses selection windows from YAML bytes. Window names must be
// unique, dimensions must be known, and ranges must parse in the textual
// range format.
func (l *Loader) Load(data []byte) ([]Window, error) {
	var file yamlSelectionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Windows) == 0 {
		return nil, fmt.Errorf("no windows found in YAML")
	}

	seen := make(map[string]struct{}, len(file.Windows))
	windows := make([]Window, 0, len(file.Windows))
	for _, yw := range file.Windows {
		if yw.Name == "" {
			return nil, fmt.Errorf("window missing name")
		}
		if _, dup := seen[yw.Name]; dup {
			return nil, fmt.Errorf("duplicate window name %q", yw.Name)
		}
		seen[yw.Name] = struct{}{}

		dim := Dimension(yw.Dimension)
		if !dim.valid() {
			return nil, fmt.Errorf("window %q: unknown dimension %q", yw.Name, yw.Dimension)
		}

		// The marker only matters for typed accessors later; parsing is
		// dimension-independent.
		r, err := coordinate.ParseMZRange(yw.Range)
		if err != nil {
			return nil, fmt.Errorf("window %q: %w", yw.Name, err)
		}
		windows = append(windows, NewWindow(yw.Name, dim, r.Start, r.End))
	}
	return windows, nil
}

// LoadFile parses selection windows from a YAML file path.
func (l *Loader) LoadFile(path string) ([]Window, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.Load(data)
}
