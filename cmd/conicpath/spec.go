package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/conic"
)

// Curve kinds accepted in a spec file.
const (
	KindFourPoint       = "four-point"
	KindThreePointAngle = "three-point-angle"
	KindCubic           = "cubic"
)

// Spec is a document of curves to build and render.
type Spec struct {
	Curves []CurveSpec `yaml:"curves" toml:"curves"`
}

// CurveSpec describes a single curve.
type CurveSpec struct {
	Name string `yaml:"name" toml:"name"`
	Kind string `yaml:"kind" toml:"kind"`
	// Points holds [x, y] pairs: four for four-point and cubic curves, three
	// for three-point-angle curves.
	Points [][]float64 `yaml:"points" toml:"points"`
	// Angle is only used by three-point-angle curves.
	Angle float64   `yaml:"angle" toml:"angle"`
	Range []float64 `yaml:"range" toml:"range"`
	Sigma []float64 `yaml:"sigma" toml:"sigma"`
	// Select optionally restricts the curve to a sub-range.
	Select []float64 `yaml:"select" toml:"select"`
	// Displace optionally translates the curve.
	Displace []float64 `yaml:"displace" toml:"displace"`
}

// Spec file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// LoadSpec loads a curve specification from a file. Files ending in .toml
// are read as TOML, everything else as YAML.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = FormatTOML
	}
	return ParseSpec(data, format)
}

// ParseSpec parses a curve specification in the given format and applies
// defaults.
func ParseSpec(data []byte, format string) (*Spec, error) {
	var spec Spec
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &spec)
	case FormatTOML:
		err = toml.Unmarshal(data, &spec)
	default:
		return nil, fmt.Errorf("unknown spec format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing spec file: %w", err)
	}

	// Apply defaults
	for i := range spec.Curves {
		c := &spec.Curves[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("curve%d", i+1)
		}
		if c.Range == nil {
			c.Range = []float64{0, 1}
		}
	}
	return &spec, nil
}

var errMalformed = errors.New("malformed curve spec")

func pair(field string, v []float64) ([2]float64, error) {
	if len(v) != 2 {
		return [2]float64{}, fmt.Errorf("%w: %s needs 2 values, got %d", errMalformed, field, len(v))
	}
	return [2]float64{v[0], v[1]}, nil
}

func (c *CurveSpec) points(n int) ([]conic.Point, error) {
	if len(c.Points) != n {
		return nil, fmt.Errorf("%w: %s curve needs %d points, got %d", errMalformed, c.Kind, n, len(c.Points))
	}
	pts := make([]conic.Point, n)
	for i, p := range c.Points {
		xy, err := pair(fmt.Sprintf("point %d", i), p)
		if err != nil {
			return nil, err
		}
		pts[i] = conic.Pt(xy[0], xy[1])
	}
	return pts, nil
}

func (c *CurveSpec) domain() (conic.CurveRange, conic.BilinearFactor, error) {
	r, err := pair("range", c.Range)
	if err != nil {
		return conic.CurveRange{}, conic.BilinearFactor{}, err
	}
	var sigma conic.BilinearFactor
	if c.Sigma != nil {
		s, err := pair("sigma", c.Sigma)
		if err != nil {
			return conic.CurveRange{}, conic.BilinearFactor{}, err
		}
		sigma = conic.Sigma(s[0], s[1])
	}
	return conic.CurveRange(r), sigma, nil
}

// transform returns the optional sub-range and displacement.
func (c *CurveSpec) transform(full conic.CurveRange) (sel *conic.CurveRange, disp *conic.Vec2, err error) {
	if c.Select != nil {
		s, err := pair("select", c.Select)
		if err != nil {
			return nil, nil, err
		}
		r := conic.CurveRange(s)
		if !r.Valid() || r[0] < full[0] || r[1] > full[1] {
			return nil, nil, fmt.Errorf("select %s outside %s: %w", r, full, conic.ErrInvalidRange)
		}
		sel = &r
	}
	if c.Displace != nil {
		d, err := pair("displace", c.Displace)
		if err != nil {
			return nil, nil, err
		}
		v := conic.Vec(d[0], d[1])
		disp = &v
	}
	return sel, disp, nil
}
