package paintcore

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"
)

// State is the stroke lifecycle state of a Session.
type State uint8

const (
	// StateUninitialized is a session with no stroke bound.
	StateUninitialized State = iota

	// StateInit is a stroke that has applied its first point.
	StateInit

	// StateMotion is a stroke receiving motion.
	StateMotion

	// StateFinish is an ended stroke. Cleanup makes the session reusable.
	StateFinish
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInit:
		return "init"
	case StateMotion:
		return "motion"
	case StateFinish:
		return "finish"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Session drives one stroke at a time for one tool.
//
// A stroke is Init, any number of InterpolateTo, then Finish or Halt,
// then Cleanup. Each application point captures undo tiles, builds the
// stamp and composites it, in that order. Calls out of order are ignored.
//
// A Session is not safe for concurrent use and assumes exclusive access to
// its drawables for the duration of a stroke.
type Session struct {
	tool   Tool
	opts   sessionOptions
	params Params
	state  State
	rng    *rand.Rand

	brush       Brush
	mask        *Mask
	baseSpacing float64
	spacing     float64

	start, last, cur, point Sample
	interp                  Interpolator

	targets  []*target
	pipeline maskPipeline

	dirty         image.Rectangle
	premultiplied bool
	hits          int
}

// NewSession creates a session painting with tool.
func NewSession(tool Tool, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		tool:   tool,
		opts:   o,
		params: o.params,
		rng:    rand.New(rand.NewPCG(o.seed, o.seed^0x5DEECE66D)),
	}
}

// Tool returns the tool the session paints with.
func (s *Session) Tool() Tool { return s.tool }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Params returns the current paint parameters.
func (s *Session) Params() Params { return s.params }

// SetParams replaces the paint parameters. Values are clamped into range.
// Changes apply from the next application point.
func (s *Session) SetParams(p Params) { s.params = p.Validate() }

// SetLinkedDrawable binds a drawable painted alongside the primary one by
// the next stroke. Pass nil to unbind.
func (s *Session) SetLinkedDrawable(d Drawable) { s.opts.linked = d }

// Brush returns the brush of the current stroke, or nil.
func (s *Session) Brush() Brush { return s.brush }

// Start returns the first sample of the stroke.
func (s *Session) Start() Sample { return s.start }

// Last returns the sample motion was last interpolated to before the
// current one.
func (s *Session) Last() Sample { return s.last }

// Current returns the newest sample received.
func (s *Session) Current() Sample { return s.cur }

// Point returns the current application point.
func (s *Session) Point() Sample { return s.point }

// Spacing returns the distance between painthits for the newest sample.
func (s *Session) Spacing() float64 { return s.spacing }

// Dirty returns the union of regions written by the stroke.
func (s *Session) Dirty() image.Rectangle { return s.dirty }

// Hits returns the number of application points of the stroke.
func (s *Session) Hits() int { return s.hits }

// Premultiplied reports whether the primary drawable stores premultiplied
// alpha.
func (s *Session) Premultiplied() bool { return s.premultiplied }

// Drawable returns the primary drawable of the stroke, or nil.
func (s *Session) Drawable() Drawable {
	if len(s.targets) == 0 {
		return nil
	}
	return s.targets[0].drawable
}

// Linked returns the linked drawable of the stroke, or nil.
func (s *Session) Linked() Drawable {
	if len(s.targets) < 2 {
		return nil
	}
	return s.targets[1].drawable
}

// UndoStore returns the undo store for a target, or nil when the target
// is not bound.
func (s *Session) UndoStore(setup SetupMode) *UndoStore {
	for _, t := range s.targets {
		if t.setup == setup {
			return t.undo
		}
	}
	return nil
}

func (s *Session) active() bool {
	return s.state == StateInit || s.state == StateMotion
}

func (s *Session) ignored(call string) {
	Logger().Debug("paintcore: call ignored", "call", call, "state", s.state, "err", ErrInvalidState)
}

// Init starts a stroke on d at (x, y) and applies the first point.
//
// It returns false, leaving d untouched, when the session is not
// uninitialized, d is nil, or no usable brush is available.
func (s *Session) Init(d Drawable, x, y float64) bool {
	if s.state != StateUninitialized {
		s.ignored("init")
		return false
	}
	if d == nil {
		Logger().Warn("paintcore: stroke not started", "err", ErrNoDrawable)
		return false
	}
	var b Brush
	if s.opts.brushes != nil {
		b = s.opts.brushes.ActiveBrush()
	}
	if b == nil {
		Logger().Warn("paintcore: stroke not started", "err", ErrNoBrush)
		return false
	}
	m := b.Mask()
	if m == nil || m.IsEmpty() {
		Logger().Warn("paintcore: stroke not started", "err", ErrEmptyMask)
		return false
	}

	s.brush, s.mask = b, m
	s.baseSpacing = float64(max(m.Width(), m.Height())) * b.Spacing() / 100
	s.bind(d)
	s.pipeline.begin(s.rng)
	s.premultiplied = d.Format().IsPremultiplied()

	sample := s.opts.input.Axes().At(x, y)
	s.start, s.last, s.cur, s.point = sample, sample, sample, sample
	s.interp.Reset(sample)
	s.spacing = s.spacingFor(sample)
	pt := image.Pt(int(math.Floor(x)), int(math.Floor(y)))
	s.dirty = image.Rectangle{Min: pt, Max: pt}
	s.hits = 0
	s.state = StateInit

	Logger().Debug("paintcore: stroke init",
		"tool", s.tool.Name(),
		"bounds", d.Bounds(),
		"format", d.Format(),
		"linked", s.Linked() != nil,
		"spacing", s.spacing)

	if st, ok := s.tool.(ToolStarter); ok {
		st.Start(s, s.params)
	}
	s.apply(sample)
	return true
}

// bind allocates per-drawable state for the primary and linked drawables.
func (s *Session) bind(d Drawable) {
	s.targets = []*target{newTarget(SetupNormal, d)}
	if s.opts.linked != nil && s.opts.linked != d {
		s.targets = append(s.targets, newTarget(SetupLinked, s.opts.linked))
	}
}

// spacingFor returns the painthit spacing at sample's pressure.
func (s *Session) spacingFor(sample Sample) float64 {
	return math.Max(s.baseSpacing*s.params.pressureScale(sample.Pressure), MinSpacing)
}

// InterpolateTo moves the stroke to (x, y), applying every painthit due
// along the way. Pressure and tilt come from the input source.
func (s *Session) InterpolateTo(x, y float64) {
	if !s.active() {
		s.ignored("interpolate")
		return
	}
	sample := s.opts.input.Axes().At(x, y)
	s.last, s.cur = s.cur, sample
	s.spacing = s.spacingFor(sample)

	seg := s.interp.Segment(sample, s.spacing)
	for pt := range seg.All() {
		s.apply(pt)
	}
	s.interp.Commit(seg)
	s.state = StateMotion
}

// Reapply paints again at the current application point. Timer-driven
// tools call it between motion events.
func (s *Session) Reapply() {
	if !s.active() {
		s.ignored("reapply")
		return
	}
	s.apply(s.point)
}

func (s *Session) apply(pt Sample) {
	s.point = pt
	s.hits++
	s.tool.Motion(s, s.params)
}

// Painthit prepares the painthit at the current application point: undo
// tiles under it are captured first, then the stamp is built. It returns
// nil when the painthit misses every drawable.
func (s *Session) Painthit(p Params) *Painthit {
	if !s.active() || s.mask == nil {
		return nil
	}
	scale := p.pressureScale(s.point.Pressure)
	if scale <= 0 {
		return nil
	}

	r := place(s.mask, s.point.X, s.point.Y, scale, p.Hardness).rect()
	hit := false
	for _, t := range s.targets {
		if r.Overlaps(t.drawable.Bounds()) {
			t.undo.EnsureCaptured(r)
			hit = true
		}
	}
	if !hit {
		return nil
	}

	return &Painthit{
		Sample: s.point,
		Stamp:  s.pipeline.stamp(s.mask, s.point.X, s.point.Y, scale, p),
	}
}

// Paste composites hit into the primary drawable and, when bound, the
// linked drawable. render supplies the paint for each of them.
func (s *Session) Paste(hit *Painthit, p Params, render RenderFunc) {
	if hit == nil || !s.active() {
		return
	}
	s.dirty = s.dirty.Union(composite(s.targets, hit, p, render))
}

// Finish ends the stroke. When anything was painted, one undo group with
// an entry per painted drawable goes to the undo system and previews are
// invalidated. Per-stroke caches are always released.
func (s *Session) Finish() {
	if !s.active() {
		s.ignored("finish")
		return
	}
	s.end("finish")
}

// Halt aborts the stroke. Paint already applied stays and is undoable as
// with Finish.
func (s *Session) Halt() {
	if !s.active() {
		s.ignored("halt")
		return
	}
	s.end("halt")
}

func (s *Session) end(reason string) {
	if st, ok := s.tool.(ToolStopper); ok {
		st.Stop(s)
	}

	var entries []*UndoEntry
	if !s.dirty.Empty() {
		for _, t := range s.targets {
			if e := t.undo.finalize(); e != nil {
				entries = append(entries, e)
			}
		}
		if s.opts.undo != nil {
			s.opts.undo.PushGroup(s.tool.Name(), entries...)
		} else {
			for _, e := range entries {
				e.Release()
			}
		}
		for _, t := range s.targets {
			if inv, ok := t.drawable.(PreviewInvalidator); ok {
				inv.InvalidatePreview()
			}
		}
	}
	for _, t := range s.targets {
		t.undo.Release()
	}
	s.pipeline.clear()
	s.state = StateFinish

	Logger().Debug("paintcore: stroke "+reason,
		"tool", s.tool.Name(),
		"hits", s.hits,
		"dirty", s.dirty,
		"undo_entries", len(entries),
		"distance", s.interp.Distance())
}

// Cleanup releases everything held for the last stroke and returns the
// session to StateUninitialized. A stroke still in progress is halted.
func (s *Session) Cleanup() {
	if s.active() {
		s.end("halt")
	}
	for _, t := range s.targets {
		t.reset()
	}
	s.targets = nil
	s.brush, s.mask = nil, nil
	s.dirty = image.Rectangle{}
	s.hits = 0
	s.state = StateUninitialized
}
