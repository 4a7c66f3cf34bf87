package paintcore

import (
	"image"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func newTestPipeline(seed uint64) *maskPipeline {
	p := &maskPipeline{}
	p.begin(rand.New(rand.NewPCG(seed, seed)))
	return p
}

func maskSum(m *Mask) float64 {
	var s float64
	for y := range m.Height() {
		for x := range m.Width() {
			s += float64(m.At(x, y))
		}
	}
	return s
}

func floatCircle(radius, hardness float64) *Mask {
	src := NewCircleBrush(radius, hardness).Mask()
	out := NewMask(src.Width(), src.Height(), PrecisionFloat)
	for y := range src.Height() {
		for x := range src.Width() {
			out.Set(x, y, src.At(x, y))
		}
	}
	return out
}

func TestStampHardIsBinary(t *testing.T) {
	src := NewCircleBrush(5, 0).Mask()
	params := DefaultParams()
	params.Hardness = HardnessHard

	for _, scale := range []float64{1, 0.6} {
		p := newTestPipeline(1)
		st := p.stamp(src, 10.3, 10.7, scale, params)
		m := st.Mask
		nonZero := 0
		for y := range m.Height() {
			for x := range m.Width() {
				switch v := m.At(x, y); v {
				case 0:
				case 1:
					nonZero++
				default:
					t.Fatalf("scale %v: texel (%d,%d) = %v, want 0 or 1", scale, x, y, v)
				}
			}
		}
		if nonZero == 0 {
			t.Errorf("scale %v: solidified mask is empty", scale)
		}
	}
}

func TestStampSoftSubsample(t *testing.T) {
	src := floatCircle(4, 0.5)
	p := newTestPipeline(1)
	st := p.stamp(src, 20.25, 30.75, 1, DefaultParams())

	if st.Mask.Width() != src.Width()+1 || st.Mask.Height() != src.Height()+1 {
		t.Fatalf("stamp size = %dx%d, want %dx%d", st.Mask.Width(), st.Mask.Height(), src.Width()+1, src.Height()+1)
	}
	want := image.Pt(20-src.Width()/2, 30-src.Height()/2)
	if st.Origin != want {
		t.Errorf("Origin = %v, want %v", st.Origin, want)
	}
	if a, b := maskSum(src), maskSum(st.Mask); b < a-1e-3 || b > a+1e-3 {
		t.Errorf("subsample changed total coverage: %v -> %v", a, b)
	}
}

func TestStampSoftWholePixelKeepsTexels(t *testing.T) {
	src := NewCircleBrush(3, 0.5).Mask()
	p := newTestPipeline(1)
	m := p.stamp(src, 8, 8, 1, DefaultParams()).Mask
	for y := range src.Height() {
		for x := range src.Width() {
			if got, want := m.At(x, y), src.At(x, y); got != want {
				t.Fatalf("texel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestStampExactSnaps(t *testing.T) {
	src := NewCircleBrush(2, 0.5).Mask()
	params := DefaultParams()
	params.Hardness = HardnessExact
	p := newTestPipeline(1)

	tests := []struct {
		x, y float64
		want image.Point
	}{
		{10.4, 10.4, image.Pt(10-2, 10-2)},
		{10.5, 10.6, image.Pt(11-2, 11-2)},
	}
	for _, tt := range tests {
		st := p.stamp(src, tt.x, tt.y, 1, params)
		if st.Origin != tt.want {
			t.Errorf("stamp(%v, %v).Origin = %v, want %v", tt.x, tt.y, st.Origin, tt.want)
		}
		if st.Mask != src {
			t.Error("exact unscaled stamp should use the canonical mask as is")
		}
	}
}

func TestStampSolidCache(t *testing.T) {
	src := NewCircleBrush(3, 0).Mask()
	params := DefaultParams()
	params.Hardness = HardnessHard
	p := newTestPipeline(1)

	a := p.stamp(src, 5, 5, 1, params).Mask
	b := p.stamp(src, 9, 9, 1, params).Mask
	if a != b {
		t.Error("solidified mask not reused within a stroke")
	}
	if c := p.stamp(src, 9, 9, 0.5, params).Mask; c == a {
		t.Error("scaled solid mask shares the unscaled cache entry")
	}
	if len(p.solid) != 1 {
		t.Errorf("cache holds %d entries, want 1", len(p.solid))
	}

	p.clear()
	if len(p.solid) != 0 {
		t.Errorf("cache holds %d entries after clear, want 0", len(p.solid))
	}

	params.Noise = true
	d := p.stamp(src, 5, 5, 1, params).Mask
	e := p.stamp(src, 5, 5, 1, params).Mask
	if d == e {
		t.Error("noisy hard masks should be fresh buffers")
	}
	if len(p.solid) != 0 {
		t.Errorf("noisy strokes cached %d solid masks", len(p.solid))
	}
}

func TestStampNeverMutatesCanonical(t *testing.T) {
	src := NewCircleBrush(4, 0.3).Mask()
	before := slices.Clone(src.U8())

	for _, h := range []Hardness{HardnessSoft, HardnessHard, HardnessExact} {
		for _, noisy := range []bool{false, true} {
			params := DefaultParams()
			params.Hardness = h
			params.Noise = noisy
			p := newTestPipeline(7)
			p.stamp(src, 3.3, 4.6, 1, params)
			p.stamp(src, 3.3, 4.6, 0.7, params)
		}
	}
	if !slices.Equal(before, src.U8()) {
		t.Error("canonical mask was modified")
	}
}

func TestStampUnsupportedPrecision(t *testing.T) {
	logs := captureLogs(t)
	src := NewMaskU16(2, 2, []uint16{0, 65535, 65535, 0})
	p := newTestPipeline(1)

	st := p.stamp(src, 1, 1, 1, DefaultParams())
	p.stamp(src, 2, 2, 0.5, DefaultParams())

	if st.Mask == src {
		t.Error("pass-through should be a copy")
	}
	if !slices.Equal(st.Mask.U16(), src.U16()) {
		t.Errorf("pass-through data = %v, want %v", st.Mask.U16(), src.U16())
	}
	out := logs.String()
	if !strings.Contains(out, "precision not supported") || !strings.Contains(out, "precision=u16") {
		t.Errorf("missing precision warning, got: %s", out)
	}
	if n := strings.Count(out, "precision not supported"); n != 1 {
		t.Errorf("warning logged %d times, want once per stroke", n)
	}
}

func TestScaleMaskKeepsDimensions(t *testing.T) {
	src := NewMask(8, 8, PrecisionU8)
	for i := range src.U8() {
		src.U8()[i] = 255
	}
	for _, prec := range []Precision{PrecisionU8, PrecisionFloat} {
		in := src
		if prec == PrecisionFloat {
			in = NewMask(8, 8, PrecisionFloat)
			for i := range in.Float() {
				in.Float()[i] = 1
			}
		}
		m := scaleMask(in, 0.5, 0, 0)
		if m.Width() != 9 || m.Height() != 9 || m.Precision() != prec {
			t.Fatalf("%v: scaled mask = %dx%d %v", prec, m.Width(), m.Height(), m.Precision())
		}
		if got := m.At(4, 4); got < 0.99 {
			t.Errorf("%v: center coverage = %v, want ~1", prec, got)
		}
		if got := m.At(0, 0); got != 0 {
			t.Errorf("%v: corner coverage = %v, want 0", prec, got)
		}
		if sum := maskSum(m); sum > maskSum(in)/2 {
			t.Errorf("%v: scaled coverage %v not reduced from %v", prec, sum, maskSum(in))
		}
	}
}

func TestNoiseStage(t *testing.T) {
	src := floatCircle(6, 0.8)
	params := DefaultParams()
	params.Noise = true
	params.Hardness = HardnessExact

	params.NoiseParams = NoiseParams{Frequency: 0.3, StepStart: 0, StepWidth: 0}
	p := newTestPipeline(3)
	if m := p.stamp(src, 10, 10, 1, params).Mask; !slices.Equal(m.Float(), src.Float()) {
		t.Error("noise with step at 0 should pass coverage through")
	}

	params.NoiseParams = NoiseParams{Frequency: 0.3, StepStart: 0.4, StepWidth: 0.2}
	a := newTestPipeline(3).stamp(src, 10, 10, 1, params).Mask
	b := newTestPipeline(3).stamp(src, 10, 10, 1, params).Mask
	if !slices.Equal(a.Float(), b.Float()) {
		t.Error("noise is not deterministic for a seed")
	}
	for i, v := range a.Float() {
		if v < 0 || v > src.Float()[i] {
			t.Fatalf("texel %d = %v, outside [0, %v]", i, v, src.Float()[i])
		}
	}
}

func TestPlaceMatchesStamp(t *testing.T) {
	src := NewCircleBrush(3, 0.5).Mask()
	for _, h := range []Hardness{HardnessSoft, HardnessHard, HardnessExact} {
		for _, scale := range []float64{1, 0.5} {
			params := DefaultParams()
			params.Hardness = h
			p := newTestPipeline(1)
			pl := place(src, 12.7, 3.2, scale, h)
			st := p.stamp(src, 12.7, 3.2, scale, params)
			if pl.rect() != st.Rect() {
				t.Errorf("%v scale %v: place rect %v, stamp rect %v", h, scale, pl.rect(), st.Rect())
			}
		}
	}
}
