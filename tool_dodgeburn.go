package paintcore

import "math"

// DodgeBurnType selects lightening or darkening.
type DodgeBurnType uint8

const (
	// Dodge lightens pixels.
	Dodge DodgeBurnType = iota

	// Burn darkens pixels.
	Burn
)

// ToneRange selects the tones DodgeBurn affects most.
type ToneRange uint8

const (
	// Shadows affects dark tones most.
	Shadows ToneRange = iota

	// Midtones affects middle tones most.
	Midtones

	// Highlights affects light tones most.
	Highlights
)

// DodgeBurn lightens or darkens the pixels under the brush. The adjustment
// is computed from the pre-stroke pixels, so in constant mode repeated
// passes within one stroke do not compound.
type DodgeBurn struct {
	Type  DodgeBurnType
	Range ToneRange

	// Exposure is the strength of the adjustment, in [0, 1].
	Exposure float64

	curve [256]uint8
}

// NewDodgeBurn creates a midtone dodge or burn tool at half exposure.
func NewDodgeBurn(typ DodgeBurnType) *DodgeBurn {
	return &DodgeBurn{Type: typ, Range: Midtones, Exposure: 0.5}
}

// Name implements Tool.
func (db *DodgeBurn) Name() string { return "dodgeburn" }

// Start implements ToolStarter.
func (db *DodgeBurn) Start(*Session, Params) {
	for i := range db.curve {
		v := db.adjust(float64(i) / 255)
		db.curve[i] = uint8(math.Round(clamp01(v) * 255))
	}
}

// Motion implements Tool.
func (db *DodgeBurn) Motion(s *Session, p Params) {
	s.Paste(s.Painthit(p), p, func(t *PaintTarget) bool {
		t.Mode = PaintReplace
		orig := ReadPaint(t.Pristine, t.Drawable.Format(), t.Paint.Rect)
		for i := 0; i < len(orig.Pix); i += 4 {
			a := orig.Pix[i+3]
			for ch := range 3 {
				t.Paint.Pix[i+ch] = mul255(db.curve[unmul255(orig.Pix[i+ch], a)], a)
			}
			t.Paint.Pix[i+3] = a
		}
		return true
	})
}

// adjust maps one straight channel value in [0, 1].
func (db *DodgeBurn) adjust(v float64) float64 {
	e := clamp01(db.Exposure)
	switch db.Range {
	case Highlights:
		f := 1 + e/3
		if db.Type == Burn {
			f = 1 - e/3
		}
		return v * f
	case Shadows:
		f := 1 - e/3
		if db.Type == Dodge {
			return f*v + (1 - f)
		}
		if v < 1-f {
			return 0
		}
		return (v - (1 - f)) / f
	default:
		if db.Type == Dodge {
			return math.Pow(v, 1/(1+e))
		}
		return math.Pow(v, 1+e)
	}
}
