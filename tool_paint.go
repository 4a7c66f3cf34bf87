package paintcore

import "time"

// Pencil paints the foreground color with hard, pixel-snapped edges.
type Pencil struct{}

// Name implements Tool.
func (Pencil) Name() string { return "pencil" }

// Motion implements Tool.
func (Pencil) Motion(s *Session, p Params) {
	p.Hardness = HardnessHard
	s.Paste(s.Painthit(p), p, Fill(p.Foreground))
}

// Paintbrush paints the foreground color.
type Paintbrush struct{}

// Name implements Tool.
func (Paintbrush) Name() string { return "paintbrush" }

// Motion implements Tool.
func (Paintbrush) Motion(s *Session, p Params) {
	s.Paste(s.Painthit(p), p, Fill(p.Foreground))
}

// Eraser removes alpha on drawables that have it and paints the
// background color on those that do not.
type Eraser struct{}

// Name implements Tool.
func (Eraser) Name() string { return "eraser" }

// Motion implements Tool.
func (Eraser) Motion(s *Session, p Params) {
	s.Paste(s.Painthit(p), p, func(t *PaintTarget) bool {
		if t.Drawable.Format().HasAlpha() {
			t.Mode = PaintErase
			t.Paint.Fill(Black)
		} else {
			t.Mode = PaintNormal
			t.Paint.Fill(p.Background)
		}
		return true
	})
}

// Airbrush sprays the foreground color, building up where it lingers.
//
// The caller owns the timer: while the pointer rests, it calls Tick every
// Interval to spray again at the current point.
type Airbrush struct {
	// Rate is the number of sprays per second while resting, in (0, 150].
	Rate float64

	// Pressure scales the brush opacity, in [0, 1].
	Pressure float64
}

// NewAirbrush creates an airbrush with moderate rate and pressure.
func NewAirbrush() *Airbrush {
	return &Airbrush{Rate: 80, Pressure: 0.1}
}

// Name implements Tool.
func (a *Airbrush) Name() string { return "airbrush" }

// Motion implements Tool.
func (a *Airbrush) Motion(s *Session, p Params) {
	p.ApplyMode = ApplyIncremental
	p.BrushOpacity *= clamp01(a.Pressure)
	s.Paste(s.Painthit(p), p, Fill(p.Foreground))
}

// Tick sprays again at the current application point.
func (a *Airbrush) Tick(s *Session) {
	s.Reapply()
}

// Interval returns the delay between ticks.
func (a *Airbrush) Interval() time.Duration {
	rate := min(max(a.Rate, 1), 150)
	return time.Duration(float64(time.Second) / rate)
}
