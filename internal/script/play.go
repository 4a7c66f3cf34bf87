package script

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/paintcore"
)

// Result is the outcome of replaying a script.
type Result struct {
	Canvas *paintcore.Pixmap

	// Linked is the linked layer, or nil when the script has none.
	Linked *paintcore.Pixmap

	History *paintcore.History

	// Painted counts strokes that started.
	Painted int

	// Undone counts strokes undone after replay.
	Undone int
}

// ticker is implemented by tools that paint on a timer while resting.
type ticker interface {
	Tick(s *paintcore.Session)
}

// Play replays the script onto a new canvas.
func (sc *Script) Play() (*Result, error) {
	canvas, err := sc.newCanvas()
	if err != nil {
		return nil, err
	}
	brush, err := sc.newBrush()
	if err != nil {
		return nil, err
	}
	params, err := sc.Params.Build()
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	tool, err := sc.NewTool(canvas.Clone())
	if err != nil {
		return nil, fmt.Errorf("tool: %w", err)
	}

	res := &Result{
		Canvas:  canvas,
		History: paintcore.NewHistory(paintcore.HistoryConfig(sc.History)),
	}
	tablet := paintcore.NewTablet()
	opts := []paintcore.Option{
		paintcore.WithBrushProvider(paintcore.StaticBrush(brush)),
		paintcore.WithUndoSystem(res.History),
		paintcore.WithInputSource(tablet),
		paintcore.WithParams(params),
	}
	if sc.Seed != 0 {
		opts = append(opts, paintcore.WithNoiseSeed(sc.Seed))
	}
	if sc.Linked {
		res.Linked = paintcore.NewPixmap(canvas.Width(), canvas.Height(), paintcore.FormatRGBA8)
		opts = append(opts, paintcore.WithLinkedDrawable(res.Linked))
	}
	s := paintcore.NewSession(tool, opts...)

	for i, st := range sc.Strokes {
		p := params
		if st.Foreground != "" {
			if p.Foreground, err = ParseColor(st.Foreground); err != nil {
				return nil, fmt.Errorf("stroke %d: %w", i, err)
			}
		}
		s.SetParams(p)

		first := st.Points[0]
		tablet.Set(first.Pressure, 0, 0)
		if !s.Init(canvas, first.X, first.Y) {
			return nil, fmt.Errorf("stroke %d: not started", i)
		}
		res.Painted++
		for _, pt := range st.Points[1:] {
			tablet.Set(pt.Pressure, 0, 0)
			s.InterpolateTo(pt.X, pt.Y)
		}
		if t, ok := tool.(ticker); ok {
			for range st.Ticks {
				t.Tick(s)
			}
		}
		if st.Halt {
			s.Halt()
		} else {
			s.Finish()
		}
		s.Cleanup()
	}

	for range sc.Undo {
		if _, ok := res.History.Undo(); !ok {
			break
		}
		res.Undone++
	}
	return res, nil
}

func (sc *Script) newCanvas() (*paintcore.Pixmap, error) {
	if sc.Canvas.Image != "" {
		img, err := loadPNG(sc.Canvas.Image)
		if err != nil {
			return nil, fmt.Errorf("canvas: %w", err)
		}
		return paintcore.FromImage(img), nil
	}
	format, err := paintcore.ParseFormat(sc.Canvas.Format)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	bg, err := ParseColor(sc.Canvas.Background)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	pm := paintcore.NewPixmap(sc.Canvas.Width, sc.Canvas.Height, format)
	pm.Clear(bg)
	return pm, nil
}

func (sc *Script) newBrush() (*paintcore.MaskBrush, error) {
	spacing := sc.Brush.Spacing
	if spacing <= 0 {
		spacing = paintcore.DefaultBrushSpacing
	}
	if sc.Brush.Mask == "" {
		return paintcore.NewCircleBrush(sc.Brush.Radius, sc.Brush.Hardness).WithSpacing(spacing), nil
	}
	img, err := loadPNG(sc.Brush.Mask)
	if err != nil {
		return nil, fmt.Errorf("brush: %w", err)
	}
	return paintcore.NewMaskBrush(paintcore.NewMaskFromAlpha(img), spacing), nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
