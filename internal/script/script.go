// Package script loads YAML stroke scripts and replays them with a
// paintcore session.
//
// A script describes a canvas, a tool, a brush, paint parameters and a
// list of strokes:
//
//	canvas: {width: 128, height: 128, background: white}
//	tool: {name: paintbrush}
//	brush: {radius: 6, hardness: 0.8, spacing: 10}
//	params: {foreground: "#c03030", apply_mode: constant}
//	strokes:
//	  - points: [[10, 10], [100, 40, 0.5], [120, 120]]
//
// Points are [x, y] or [x, y, pressure] sequences, or {x, y, pressure}
// mappings. Colors are CSS names or hex strings.
package script

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/paintcore"
)

// Script is a parsed stroke script.
type Script struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Tool    ToolConfig    `yaml:"tool"`
	Brush   BrushConfig   `yaml:"brush"`
	Params  ParamsConfig  `yaml:"params"`
	History HistoryConfig `yaml:"history"`

	// Linked paints a second, transparent layer alongside the canvas.
	Linked bool `yaml:"linked"`

	// Seed fixes the noise seed. Zero picks a random one.
	Seed uint64 `yaml:"seed"`

	// Undo is the number of strokes undone after replay.
	Undo int `yaml:"undo"`

	Strokes []Stroke `yaml:"strokes"`
}

// CanvasConfig describes the drawable strokes are replayed onto.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Format     string `yaml:"format"`
	Background string `yaml:"background"`

	// Image is an optional PNG loaded as the canvas. Width, Height and
	// Format are ignored when it is set.
	Image string `yaml:"image"`
}

// ToolConfig selects a tool and its settings. Fields a tool does not use
// are ignored.
type ToolConfig struct {
	Name string `yaml:"name"`

	// Type is "blur" or "sharpen" for convolve and "dodge" or "burn" for
	// dodgeburn.
	Type string `yaml:"type"`

	// Range is "shadows", "midtones" or "highlights" for dodgeburn.
	Range string `yaml:"range"`

	Rate     *float64 `yaml:"rate"`
	Pressure *float64 `yaml:"pressure"`
	Radius   *float64 `yaml:"radius"`
	Exposure *float64 `yaml:"exposure"`

	// Offset is the clone source offset. The clone source is a snapshot
	// of the canvas taken before the first stroke.
	Offset [2]int `yaml:"offset"`
}

// BrushConfig describes the brush. Mask, when set, is a PNG whose alpha
// channel becomes the brush mask; otherwise a circle brush is generated.
type BrushConfig struct {
	Radius   float64 `yaml:"radius"`
	Hardness float64 `yaml:"hardness"`
	Spacing  float64 `yaml:"spacing"`
	Mask     string  `yaml:"mask"`
}

// ParamsConfig mirrors paintcore.Params. Unset fields keep their defaults.
type ParamsConfig struct {
	BrushOpacity    *float64     `yaml:"brush_opacity"`
	ImageOpacity    *float64     `yaml:"image_opacity"`
	Hardness        string       `yaml:"hardness"`
	ApplyMode       string       `yaml:"apply_mode"`
	PaintMode       string       `yaml:"paint_mode"`
	Noise           bool         `yaml:"noise"`
	NoiseParams     *NoiseConfig `yaml:"noise_params"`
	SizeScale       *float64     `yaml:"size_scale"`
	PressureSize    bool         `yaml:"pressure_size"`
	PressureOpacity bool         `yaml:"pressure_opacity"`
	Foreground      string       `yaml:"foreground"`
	Background      string       `yaml:"background"`
}

// NoiseConfig mirrors paintcore.NoiseParams.
type NoiseConfig struct {
	Frequency float64 `yaml:"frequency"`
	StepStart float64 `yaml:"step_start"`
	StepWidth float64 `yaml:"step_width"`
}

// HistoryConfig caps the undo history.
type HistoryConfig struct {
	MaxBytes  int `yaml:"max_bytes"`
	MaxGroups int `yaml:"max_groups"`
}

// Stroke is one pointer stroke.
type Stroke struct {
	Points []Point `yaml:"points"`

	// Foreground overrides the paint color for this stroke.
	Foreground string `yaml:"foreground"`

	// Ticks is the number of timer ticks sent at the last point to tools
	// that spray while resting.
	Ticks int `yaml:"ticks"`

	// Halt ends the stroke with Halt instead of Finish.
	Halt bool `yaml:"halt"`
}

// Point is one stroke sample. Pressure defaults to 1.
type Point struct {
	X, Y     float64
	Pressure float64
}

// UnmarshalYAML accepts [x, y], [x, y, pressure] and {x, y, pressure}.
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	p.Pressure = 1
	switch n.Kind {
	case yaml.SequenceNode:
		if len(n.Content) < 2 || len(n.Content) > 3 {
			return fmt.Errorf("line %d: point needs 2 or 3 values, got %d", n.Line, len(n.Content))
		}
		dst := []*float64{&p.X, &p.Y, &p.Pressure}
		for i, c := range n.Content {
			v, err := strconv.ParseFloat(c.Value, 64)
			if err != nil {
				return fmt.Errorf("line %d: point value %q: %w", c.Line, c.Value, err)
			}
			*dst[i] = v
		}
		return nil
	case yaml.MappingNode:
		var m struct {
			X        float64  `yaml:"x"`
			Y        float64  `yaml:"y"`
			Pressure *float64 `yaml:"pressure"`
		}
		if err := n.Decode(&m); err != nil {
			return err
		}
		p.X, p.Y = m.X, m.Y
		if m.Pressure != nil {
			p.Pressure = *m.Pressure
		}
		return nil
	default:
		return fmt.Errorf("line %d: point must be a sequence or mapping", n.Line)
	}
}

// Defaults returns an empty script on a 256×256 white canvas painting
// with a soft paintbrush.
func Defaults() Script {
	return Script{
		Canvas: CanvasConfig{Width: 256, Height: 256, Format: "rgba8", Background: "white"},
		Tool:   ToolConfig{Name: "paintbrush"},
		Brush:  BrushConfig{Radius: 8, Hardness: 0.5, Spacing: paintcore.DefaultBrushSpacing},
	}
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse parses a script over Defaults and validates it.
func Parse(data []byte) (*Script, error) {
	sc := Defaults()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the parts of the script that do not need the filesystem.
func (sc *Script) Validate() error {
	var errs []error
	if sc.Canvas.Image == "" && (sc.Canvas.Width <= 0 || sc.Canvas.Height <= 0) {
		errs = append(errs, fmt.Errorf("canvas: invalid size %dx%d", sc.Canvas.Width, sc.Canvas.Height))
	}
	if _, err := paintcore.ParseFormat(sc.Canvas.Format); err != nil {
		errs = append(errs, fmt.Errorf("canvas: %w", err))
	}
	if _, err := ParseColor(sc.Canvas.Background); err != nil {
		errs = append(errs, fmt.Errorf("canvas: %w", err))
	}
	if _, err := sc.NewTool(nil); err != nil {
		errs = append(errs, fmt.Errorf("tool: %w", err))
	}
	if sc.Brush.Mask == "" && sc.Brush.Radius <= 0 {
		errs = append(errs, fmt.Errorf("brush: radius must be positive, got %v", sc.Brush.Radius))
	}
	if _, err := sc.Params.Build(); err != nil {
		errs = append(errs, fmt.Errorf("params: %w", err))
	}
	if sc.Undo < 0 {
		errs = append(errs, fmt.Errorf("undo: must not be negative, got %d", sc.Undo))
	}
	for i, st := range sc.Strokes {
		if len(st.Points) == 0 {
			errs = append(errs, fmt.Errorf("stroke %d: no points", i))
		}
		if _, err := ParseColor(st.Foreground); st.Foreground != "" && err != nil {
			errs = append(errs, fmt.Errorf("stroke %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Build returns the paint parameters described by the config.
func (pc ParamsConfig) Build() (paintcore.Params, error) {
	p := paintcore.DefaultParams()
	var err error
	if pc.BrushOpacity != nil {
		p.BrushOpacity = *pc.BrushOpacity
	}
	if pc.ImageOpacity != nil {
		p.ImageOpacity = *pc.ImageOpacity
	}
	if pc.Hardness != "" {
		if p.Hardness, err = paintcore.ParseHardness(pc.Hardness); err != nil {
			return p, err
		}
	}
	if pc.ApplyMode != "" {
		if p.ApplyMode, err = paintcore.ParseApplyMode(pc.ApplyMode); err != nil {
			return p, err
		}
	}
	if pc.PaintMode != "" {
		if p.PaintMode, err = paintcore.ParsePaintMode(pc.PaintMode); err != nil {
			return p, err
		}
	}
	p.Noise = pc.Noise
	if pc.NoiseParams != nil {
		p.NoiseParams = paintcore.NoiseParams(*pc.NoiseParams)
	}
	if pc.SizeScale != nil {
		p.SizeScale = *pc.SizeScale
	}
	p.PressureSize = pc.PressureSize
	p.PressureOpacity = pc.PressureOpacity
	if pc.Foreground != "" {
		if p.Foreground, err = ParseColor(pc.Foreground); err != nil {
			return p, err
		}
	}
	if pc.Background != "" {
		if p.Background, err = ParseColor(pc.Background); err != nil {
			return p, err
		}
	}
	return p.Validate(), nil
}

// NewTool creates the configured tool. source is the clone source and may
// be nil.
func (sc *Script) NewTool(source paintcore.Drawable) (paintcore.Tool, error) {
	tc := sc.Tool
	tool, err := paintcore.NewTool(tc.Name)
	if err != nil {
		return nil, err
	}
	switch t := tool.(type) {
	case *paintcore.Airbrush:
		setIf(&t.Rate, tc.Rate)
		setIf(&t.Pressure, tc.Pressure)
	case *paintcore.Convolve:
		switch strings.ToLower(tc.Type) {
		case "", "blur":
		case "sharpen":
			t.Type = paintcore.ConvolveSharpen
		default:
			return nil, fmt.Errorf("unknown convolve type %q", tc.Type)
		}
		setIf(&t.Rate, tc.Rate)
		setIf(&t.Radius, tc.Radius)
	case *paintcore.Smudge:
		setIf(&t.Rate, tc.Rate)
	case *paintcore.DodgeBurn:
		switch strings.ToLower(tc.Type) {
		case "", "dodge":
		case "burn":
			t.Type = paintcore.Burn
		default:
			return nil, fmt.Errorf("unknown dodgeburn type %q", tc.Type)
		}
		switch strings.ToLower(tc.Range) {
		case "", "midtones":
		case "shadows":
			t.Range = paintcore.Shadows
		case "highlights":
			t.Range = paintcore.Highlights
		default:
			return nil, fmt.Errorf("unknown tone range %q", tc.Range)
		}
		setIf(&t.Exposure, tc.Exposure)
	case *paintcore.Clone:
		t.Source = source
		t.Offset.X, t.Offset.Y = tc.Offset[0], tc.Offset[1]
	}
	return tool, nil
}

func setIf(dst, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ParseColor parses a CSS color name ("rebeccapurple") or a hex string
// ("#rgb", "#rgba", "#rrggbb", "#rrggbbaa"; the '#' is optional).
func ParseColor(s string) (paintcore.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return paintcore.RGBA{}, errors.New("color cannot be empty")
	}
	if spec == "transparent" {
		return paintcore.Transparent, nil
	}
	if c, ok := colornames.Map[spec]; ok {
		return paintcore.FromColor(c), nil
	}
	hex := strings.TrimPrefix(spec, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return paintcore.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return paintcore.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return paintcore.Hex(hex), nil
}
