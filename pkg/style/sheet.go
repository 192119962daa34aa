package style

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/floating/pkg/layout"
)

// supportedMajor is the stylesheet schema major version this package reads.
const supportedMajor = "v1"

// Sheet is a stylesheet loaded from YAML, resolving styles per widget name.
//
//	version: v1
//	widgets:
//	  floating-background:
//	    background-color: "#2e3440"
//	    padding: { left: 4, top: 4, right: 4, bottom: 4 }
type Sheet struct {
	version string
	widgets map[string]Static
}

type sheetFile struct {
	Version string               `yaml:"version"`
	Widgets map[string]entryYAML `yaml:"widgets"`
}

type entryYAML struct {
	BackgroundColor string     `yaml:"background-color"`
	Padding         insetsYAML `yaml:"padding"`
}

type insetsYAML struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Load reads and parses a stylesheet file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}
	return Parse(data)
}

// Parse parses stylesheet YAML. A missing version defaults to the
// supported major; an unsupported or malformed version is an error.
func Parse(data []byte) (*Sheet, error) {
	var file sheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
	}

	version := strings.TrimSpace(file.Version)
	if version == "" {
		version = supportedMajor
	}
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("invalid stylesheet version %q", version)
	}
	if semver.Major(version) != supportedMajor {
		return nil, fmt.Errorf("unsupported stylesheet version %q (want major %s)", version, supportedMajor)
	}

	sheet := &Sheet{
		version: version,
		widgets: make(map[string]Static, len(file.Widgets)),
	}
	for name, entry := range file.Widgets {
		resolved := Default()
		if entry.BackgroundColor != "" {
			color, err := ParseColor(entry.BackgroundColor)
			if err != nil {
				return nil, fmt.Errorf("widget %q: %w", name, err)
			}
			resolved.Background = color
		}
		resolved.Insets = layout.EdgeInsetsOnly(
			entry.Padding.Left,
			entry.Padding.Top,
			entry.Padding.Right,
			entry.Padding.Bottom,
		)
		sheet.widgets[name] = resolved
	}
	return sheet, nil
}

// Version returns the stylesheet's declared schema version.
func (s *Sheet) Version() string {
	return s.version
}

// Style returns the provider for the named widget. Unknown names
// resolve to the default style.
func (s *Sheet) Style(widget string) Static {
	if resolved, ok := s.widgets[widget]; ok {
		return resolved
	}
	return Default()
}
