// SPDX-License-Identifier: MIT

package chartfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/taufulou/bazi-app-sub000/chart"
)

// ErrUnsupportedFormat indicates a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("chartfile: unsupported format")

// Format is a chart document encoding.
type Format uint8

const (
	FormatNone Format = iota
	YAML
	TOML
	JSON
)

var formatNames = [...]string{"none", "yaml", "toml", "json"}

func (f Format) String() string {
	if int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatNames[f]
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return FormatNone, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Decode reads one chart.Input in format f from r. Unknown keys fail.
func Decode(r io.Reader, f Format) (chart.Input, error) {
	var in chart.Input
	var err error
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&in)
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&in)
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&in)
	default:
		return chart.Input{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return chart.Input{}, fmt.Errorf("chartfile: decode %s: %w", f, err)
	}
	return in, nil
}

// LoadInput reads and decodes the file at path. A document without a name
// takes the file's base name.
func LoadInput(path string) (chart.Input, error) {
	f, err := FormatOf(path)
	if err != nil {
		return chart.Input{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return chart.Input{}, fmt.Errorf("chartfile: %w", err)
	}
	defer fh.Close()

	in, err := Decode(fh, f)
	if err != nil {
		return chart.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	if in.Name == "" {
		in.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return in, nil
}

// Load reads, decodes and builds the chart at path.
func Load(path string) (chart.Chart, error) {
	in, err := LoadInput(path)
	if err != nil {
		return chart.Chart{}, err
	}
	c, err := chart.Build(in)
	if err != nil {
		return chart.Chart{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
