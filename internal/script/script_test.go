package script

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/paintcore"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    paintcore.RGBA
		wantErr bool
	}{
		{"red", paintcore.RGBA{R: 1, A: 1}, false},
		{" White ", paintcore.White, false},
		{"transparent", paintcore.Transparent, false},
		{"#00ff00", paintcore.RGBA{G: 1, A: 1}, false},
		{"00f", paintcore.RGBA{B: 1, A: 1}, false},
		{"#ff000080", paintcore.RGBA{R: 1, A: 128.0 / 255}, false},
		{"", paintcore.RGBA{}, true},
		{"#12345", paintcore.RGBA{}, true},
		{"#gggggg", paintcore.RGBA{}, true},
		{"notacolor", paintcore.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPointUnmarshal(t *testing.T) {
	sc, err := Parse([]byte(`
strokes:
  - points:
      - [1, 2]
      - [3, 4, 0.5]
      - {x: 5, y: 6}
      - {x: 7, y: 8, pressure: 0.25}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []Point{{1, 2, 1}, {3, 4, 0.5}, {5, 6, 1}, {7, 8, 0.25}}
	got := sc.Strokes[0].Points
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad point", "strokes: [{points: [[1]]}]", "2 or 3 values"},
		{"point value", "strokes: [{points: [[1, x]]}]", "point value"},
		{"empty stroke", "strokes: [{points: []}]", "no points"},
		{"tool", "tool: {name: lasso}", "unknown tool"},
		{"convolve type", "tool: {name: convolve, type: emboss}", "convolve type"},
		{"format", "canvas: {format: cmyk}", "unknown format"},
		{"size", "canvas: {width: 0}", "invalid size"},
		{"paint mode", "params: {paint_mode: glow}", "unknown mode"},
		{"hardness", "params: {hardness: squishy}", "unknown hardness"},
		{"color", "params: {foreground: '#xyz'}", "invalid color"},
		{"undo", "undo: -1", "must not be negative"},
		{"yaml", "strokes: [", "parse script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestParamsBuild(t *testing.T) {
	half := 0.5
	pc := ParamsConfig{
		BrushOpacity: &half,
		Hardness:     "hard",
		ApplyMode:    "incremental",
		PaintMode:    "multiply",
		Noise:        true,
		NoiseParams:  &NoiseConfig{Frequency: 0.1, StepStart: 0.3, StepWidth: 0.2},
		Foreground:   "blue",
	}
	p, err := pc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.BrushOpacity != 0.5 || p.ImageOpacity != 1 {
		t.Errorf("opacities = %v, %v", p.BrushOpacity, p.ImageOpacity)
	}
	if p.Hardness != paintcore.HardnessHard || p.ApplyMode != paintcore.ApplyIncremental || p.PaintMode != paintcore.PaintMultiply {
		t.Errorf("modes = %v, %v, %v", p.Hardness, p.ApplyMode, p.PaintMode)
	}
	if !p.Noise || p.NoiseParams.StepStart != 0.3 {
		t.Errorf("noise = %v, %+v", p.Noise, p.NoiseParams)
	}
	if p.Foreground != paintcore.Blue {
		t.Errorf("Foreground = %+v, want blue", p.Foreground)
	}
}

func TestNewTool(t *testing.T) {
	rate, exposure := 0.9, 0.2
	tests := []struct {
		tc    ToolConfig
		check func(t *testing.T, tool paintcore.Tool)
	}{
		{ToolConfig{Name: "convolve", Type: "sharpen", Rate: &rate}, func(t *testing.T, tool paintcore.Tool) {
			c := tool.(*paintcore.Convolve)
			if c.Type != paintcore.ConvolveSharpen || c.Rate != rate {
				t.Errorf("convolve = %+v", c)
			}
		}},
		{ToolConfig{Name: "dodgeburn", Type: "burn", Range: "shadows", Exposure: &exposure}, func(t *testing.T, tool paintcore.Tool) {
			db := tool.(*paintcore.DodgeBurn)
			if db.Type != paintcore.Burn || db.Range != paintcore.Shadows || db.Exposure != exposure {
				t.Errorf("dodgeburn = %+v", db)
			}
		}},
		{ToolConfig{Name: "airbrush", Rate: &rate}, func(t *testing.T, tool paintcore.Tool) {
			if a := tool.(*paintcore.Airbrush); a.Rate != rate || a.Pressure != 0.1 {
				t.Errorf("airbrush = %+v", a)
			}
		}},
		{ToolConfig{Name: "clone", Offset: [2]int{3, -4}}, func(t *testing.T, tool paintcore.Tool) {
			if c := tool.(*paintcore.Clone); c.Offset != image.Pt(3, -4) || c.Source == nil {
				t.Errorf("clone = %+v", c)
			}
		}},
	}
	src := paintcore.NewPixmap(4, 4, paintcore.FormatRGBA8)
	for _, tt := range tests {
		t.Run(tt.tc.Name, func(t *testing.T) {
			sc := Defaults()
			sc.Tool = tt.tc
			tool, err := sc.NewTool(src)
			if err != nil {
				t.Fatalf("NewTool() error = %v", err)
			}
			tt.check(t, tool)
		})
	}
}

func TestPlay(t *testing.T) {
	sc, err := Parse([]byte(`
canvas: {width: 64, height: 32, background: white}
tool: {name: pencil}
brush: {radius: 3, hardness: 1, spacing: 20}
params: {foreground: black}
linked: true
seed: 7
strokes:
  - points: [[4, 16], [60, 16]]
  - points: [[32, 2], [32, 30]]
    foreground: red
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	res, err := sc.Play()
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if res.Painted != 2 {
		t.Errorf("Painted = %d, want 2", res.Painted)
	}
	if got := res.Canvas.GetPixel(10, 16); got != paintcore.Black {
		t.Errorf("first stroke pixel = %+v, want black", got)
	}
	if got := res.Canvas.GetPixel(32, 4); got != paintcore.Red {
		t.Errorf("second stroke pixel = %+v, want red", got)
	}
	if got := res.Canvas.GetPixel(10, 2); got != paintcore.White {
		t.Errorf("untouched pixel = %+v, want white", got)
	}
	if res.Linked == nil || res.Linked.GetPixel(10, 16) != paintcore.Black {
		t.Error("linked layer was not painted")
	}
	if undo, redo, _ := res.History.Stats(); undo != 2 || redo != 0 {
		t.Errorf("history = %d undo, %d redo, want 2, 0", undo, redo)
	}
}

func TestPlayUndo(t *testing.T) {
	sc, err := Parse([]byte(`
canvas: {width: 32, height: 32, background: white}
undo: 5
strokes:
  - points: [[4, 4], [28, 28]]
  - points: [[28, 4], [4, 28]]
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	res, err := sc.Play()
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if res.Undone != 2 {
		t.Errorf("Undone = %d, want 2", res.Undone)
	}
	for y := range 32 {
		for x := range 32 {
			if got := res.Canvas.GetPixel(x, y); got != paintcore.White {
				t.Fatalf("pixel (%d,%d) = %+v after undoing everything", x, y, got)
			}
		}
	}
}

func TestPlayBrushMask(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mask.png")
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range 9 {
		img.SetNRGBA(i%3, i/3, color.NRGBA{A: 255})
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	sc := Defaults()
	sc.Canvas.Width, sc.Canvas.Height = 16, 16
	sc.Brush.Mask = path
	sc.Strokes = []Stroke{{Points: []Point{{X: 8, Y: 8, Pressure: 1}}}}
	res, err := sc.Play()
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if got := res.Canvas.GetPixel(8, 8); got != paintcore.Black {
		t.Errorf("stamped pixel = %+v, want black", got)
	}

	sc.Brush.Mask = filepath.Join(dir, "missing.png")
	if _, err := sc.Play(); err == nil {
		t.Error("Play() with a missing mask returned nil error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte("tool: {name: eraser}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if sc.Tool.Name != "eraser" || sc.Canvas.Width != 256 {
		t.Errorf("Load() = %+v", sc)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("Load() of a missing file returned nil error")
	}
}
