package paintcore

import "math/rand/v2"

// Option configures a Session during creation.
//
// Example:
//
//	history := paintcore.NewHistory(paintcore.HistoryConfig{})
//	s := paintcore.NewSession(paintcore.Paintbrush{},
//		paintcore.WithBrushProvider(paintcore.StaticBrush(paintcore.NewCircleBrush(8, 0.5))),
//		paintcore.WithUndoSystem(history),
//	)
type Option func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	brushes BrushProvider
	undo    UndoSystem
	input   InputSource
	linked  Drawable
	params  Params
	seed    uint64
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		input:  Mouse{},
		params: DefaultParams(),
		seed:   rand.Uint64(),
	}
}

// WithBrushProvider sets where the session gets its brush at stroke start.
// Without a provider every Init fails.
func WithBrushProvider(bp BrushProvider) Option {
	return func(o *sessionOptions) {
		o.brushes = bp
	}
}

// WithUndoSystem sets the receiver of finished strokes. Without one the
// captured tiles are released when the stroke ends.
func WithUndoSystem(u UndoSystem) Option {
	return func(o *sessionOptions) {
		o.undo = u
	}
}

// WithInputSource sets the source of pressure and tilt. Defaults to Mouse.
func WithInputSource(src InputSource) Option {
	return func(o *sessionOptions) {
		if src != nil {
			o.input = src
		}
	}
}

// WithLinkedDrawable sets a drawable painted alongside the primary one,
// such as a layer mask.
func WithLinkedDrawable(d Drawable) Option {
	return func(o *sessionOptions) {
		o.linked = d
	}
}

// WithParams sets the initial paint parameters.
func WithParams(p Params) Option {
	return func(o *sessionOptions) {
		o.params = p.Validate()
	}
}

// WithNoiseSeed makes brush noise reproducible.
func WithNoiseSeed(seed uint64) Option {
	return func(o *sessionOptions) {
		o.seed = seed
	}
}
