// Package config describes batches of charts, either the built-in set of
// benchmark results or a YAML file of the same shape.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/zloyboy/benchchart/batch"
	"github.com/zloyboy/benchchart/chart"
	"gopkg.in/yaml.v3"
)

// Chart is one bar chart of a batch.
//
// Decimals selects how many digits annotations show; when it is absent or
// negative the shortest exact form is used. Unset style fields fall back to
// white 2pt edges and 0.8 opacity.
type Chart struct {
	Key    string    `yaml:"key"`
	Title  string    `yaml:"title"`
	XLabel string    `yaml:"x_label"`
	YLabel string    `yaml:"y_label"`
	Output string    `yaml:"output"`
	Labels []string  `yaml:"labels"`
	Values []float64 `yaml:"values"`

	Colors    []string `yaml:"colors,omitempty"`
	EdgeColor string   `yaml:"edge_color,omitempty"`
	EdgeWidth *float64 `yaml:"edge_width,omitempty"`
	Alpha     *float64 `yaml:"alpha,omitempty"`
	Theme     string   `yaml:"theme,omitempty"`

	Decimals *int    `yaml:"decimals,omitempty"`
	Suffix   string  `yaml:"suffix,omitempty"`
	Offset   float64 `yaml:"offset"`

	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	DPI    float64 `yaml:"dpi,omitempty"`
}

// Batch is an ordered list of charts with unique keys.
type Batch struct {
	Charts []Chart `yaml:"charts"`
}

const (
	defaultEdgeColor = "#ffffff"
	defaultEdgeWidth = 2.0
	defaultAlpha     = 0.8
)

// Load reads a batch from a YAML file.
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config %s", path)
	}
	return b, nil
}

// Parse decodes and validates a YAML batch. Unknown fields are rejected.
func Parse(data []byte) (*Batch, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var b Batch
	if err := dec.Decode(&b); err != nil {
		return nil, errors.Wrap(err, "decoding batch")
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks that every chart has a unique key, an output file and a
// parseable style. Dataset problems are left to the renderer so they fail
// only their chart.
func (b *Batch) Validate() error {
	if len(b.Charts) == 0 {
		return errors.New("batch has no charts")
	}
	keys := make(map[string]struct{}, len(b.Charts))
	for i, c := range b.Charts {
		if c.Key == "" {
			return errors.Newf("chart %d has no key", i)
		}
		if _, ok := keys[c.Key]; ok {
			return errors.Newf("duplicate chart key %q", c.Key)
		}
		keys[c.Key] = struct{}{}
		if c.Output == "" {
			return errors.Newf("chart %q has no output file", c.Key)
		}
		if _, err := c.BarChart(); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns the charts named by keys, in batch order. An empty keys
// list keeps everything.
func (b *Batch) Filter(keys []string) (*Batch, error) {
	if len(keys) == 0 {
		return b, nil
	}
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = false
	}
	out := &Batch{}
	for _, c := range b.Charts {
		if _, ok := want[c.Key]; ok {
			want[c.Key] = true
			out.Charts = append(out.Charts, c)
		}
	}
	for _, k := range keys {
		if !want[k] {
			return nil, errors.Newf("unknown chart %q", k)
		}
	}
	return out, nil
}

// Jobs turns the batch into render jobs writing into dir, which must exist.
func (b *Batch) Jobs(dir string) ([]batch.Job, error) {
	jobs := make([]batch.Job, 0, len(b.Charts))
	for _, c := range b.Charts {
		bc, err := c.BarChart()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, batch.Job{
			Key:   c.Key,
			Path:  filepath.Join(dir, c.Output),
			Chart: bc,
		})
	}
	return jobs, nil
}

// BarChart builds the chart described by c.
func (c Chart) BarChart() (*chart.BarChart, error) {
	style, err := c.style()
	if err != nil {
		return nil, errors.Wrapf(err, "chart %q", c.Key)
	}
	theme, err := parseTheme(c.Theme)
	if err != nil {
		return nil, errors.Wrapf(err, "chart %q", c.Key)
	}
	return &chart.BarChart{
		Title:  c.Title,
		XAxis:  chart.XAxis{Name: c.XLabel},
		YAxis:  chart.YAxis{Name: c.YLabel},
		Canvas: chart.Canvas{WidthInches: c.Width, HeightInches: c.Height, DPI: c.DPI},
		Theme:  theme,
		Data:   chart.Dataset{Labels: c.Labels, Values: c.Values},
		Style:  style,
		Annotation: chart.Annotation{
			Format: c.formatter(),
			Offset: c.Offset,
		},
	}, nil
}

func (c Chart) formatter() chart.ValueFormatter {
	if c.Decimals == nil || *c.Decimals < 0 {
		return chart.ShortestFormatter(c.Suffix)
	}
	return chart.FixedFormatter(*c.Decimals, c.Suffix)
}

func (c Chart) style() (chart.BarStyle, error) {
	s := chart.BarStyle{
		EdgeWidth: defaultEdgeWidth,
		Alpha:     defaultAlpha,
	}
	for _, hex := range c.Colors {
		col, err := chart.ParseHex(hex)
		if err != nil {
			return s, err
		}
		s.Colors = append(s.Colors, col)
	}
	edge := c.EdgeColor
	if edge == "" {
		edge = defaultEdgeColor
	}
	var err error
	if s.EdgeColor, err = chart.ParseHex(edge); err != nil {
		return s, err
	}
	if c.EdgeWidth != nil {
		s.EdgeWidth = *c.EdgeWidth
	}
	if c.Alpha != nil {
		s.Alpha = *c.Alpha
	}
	return s, nil
}

func parseTheme(name string) (chart.Theme, error) {
	switch name {
	case "", "dark":
		return chart.DarkTheme(), nil
	case "light":
		return chart.LightTheme(), nil
	default:
		return chart.Theme{}, errors.Newf("unknown theme %q", name)
	}
}
