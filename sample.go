package paintcore

// Sample is one pointer sample along a stroke.
// Samples are values and are never modified after creation.
type Sample struct {
	X, Y float64

	// Pressure is in [0, 1].
	Pressure float64

	// TiltX and TiltY are in [-1, 1].
	TiltX, TiltY float64
}

// Axes holds the device axes that accompany a pointer position.
type Axes struct {
	Pressure float64
	TiltX    float64
	TiltY    float64
}

func (a Axes) clamped() Axes {
	return Axes{
		Pressure: clamp01(a.Pressure),
		TiltX:    clampSigned(a.TiltX),
		TiltY:    clampSigned(a.TiltY),
	}
}

// At returns a sample at (x, y) carrying the axes, clamped to range.
func (a Axes) At(x, y float64) Sample {
	c := a.clamped()
	return Sample{X: x, Y: y, Pressure: c.Pressure, TiltX: c.TiltX, TiltY: c.TiltY}
}

// InputSource normalizes device axes whether or not a pressure device is
// present.
type InputSource interface {
	Axes() Axes
}

// Mouse is an InputSource without pressure or tilt.
// It reports full pressure and no tilt.
type Mouse struct{}

// Axes implements InputSource.
func (Mouse) Axes() Axes { return Axes{Pressure: 1} }

// Tablet is an InputSource reporting the last axes set by the caller.
// The zero value reports zero pressure.
type Tablet struct {
	axes Axes
}

// NewTablet creates a tablet source with full pressure and no tilt.
func NewTablet() *Tablet {
	return &Tablet{axes: Axes{Pressure: 1}}
}

// Set records the axes of the next sample. Values are clamped to range.
func (t *Tablet) Set(pressure, tiltX, tiltY float64) {
	t.axes = Axes{Pressure: pressure, TiltX: tiltX, TiltY: tiltY}.clamped()
}

// Axes implements InputSource.
func (t *Tablet) Axes() Axes { return t.axes }

func clampSigned(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
