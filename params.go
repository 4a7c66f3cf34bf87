package paintcore

import (
	"fmt"
	"strings"
)

// Hardness selects how the brush mask is placed at sub-pixel positions.
type Hardness uint8

const (
	// HardnessSoft places the stamp at sub-pixel precision.
	HardnessSoft Hardness = iota

	// HardnessHard snaps to whole pixels and binarizes the mask.
	HardnessHard

	// HardnessExact snaps to whole pixels and uses the mask as is.
	HardnessExact
)

var hardnessNames = [...]string{"soft", "hard", "exact"}

// String returns the lowercase hardness name.
func (h Hardness) String() string {
	if int(h) < len(hardnessNames) {
		return hardnessNames[h]
	}
	return fmt.Sprintf("Hardness(%d)", uint8(h))
}

// ParseHardness looks a hardness up by name.
func ParseHardness(name string) (Hardness, error) {
	for i, n := range hardnessNames {
		if strings.EqualFold(n, name) {
			return Hardness(i), nil
		}
	}
	return HardnessSoft, fmt.Errorf("paintcore: unknown hardness %q", name)
}

// ApplyMode selects how overlapping painthits of one stroke accumulate.
type ApplyMode uint8

const (
	// ApplyConstant caps the stroke at the opacity of a single painthit.
	ApplyConstant ApplyMode = iota

	// ApplyIncremental lets overlapping painthits build up.
	ApplyIncremental
)

// String returns the lowercase apply mode name.
func (m ApplyMode) String() string {
	switch m {
	case ApplyConstant:
		return "constant"
	case ApplyIncremental:
		return "incremental"
	default:
		return fmt.Sprintf("ApplyMode(%d)", uint8(m))
	}
}

// ParseApplyMode looks an apply mode up by name.
func ParseApplyMode(name string) (ApplyMode, error) {
	switch strings.ToLower(name) {
	case "constant":
		return ApplyConstant, nil
	case "incremental":
		return ApplyIncremental, nil
	}
	return ApplyConstant, fmt.Errorf("paintcore: unknown apply mode %q", name)
}

// NoiseParams shapes the noise applied to the brush mask.
type NoiseParams struct {
	// Frequency of the noise field in cycles per pixel.
	Frequency float64

	// StepStart is the noise level where coverage starts to appear.
	StepStart float64

	// StepWidth is the width of the transition band above StepStart.
	// Small values give a near-binary texture.
	StepWidth float64
}

// Params configures how a tool paints. Tools receive a copy per painthit
// and may override fields before pasting.
type Params struct {
	// BrushOpacity weights each painthit, in [0, 1].
	BrushOpacity float64

	// ImageOpacity is the opacity the stroke is written with, in [0, 1].
	ImageOpacity float64

	Hardness  Hardness
	ApplyMode ApplyMode
	PaintMode PaintMode

	// Noise enables the noise stage of the brush mask pipeline.
	Noise       bool
	NoiseParams NoiseParams

	// SizeScale scales the brush, in (0, 1].
	SizeScale float64

	// PressureSize scales the brush by pen pressure.
	PressureSize bool

	// PressureOpacity scales BrushOpacity by pen pressure.
	PressureOpacity bool

	Foreground RGBA
	Background RGBA
}

// DefaultParams returns full-opacity soft painting in constant mode.
func DefaultParams() Params {
	return Params{
		BrushOpacity: 1,
		ImageOpacity: 1,
		Hardness:     HardnessSoft,
		ApplyMode:    ApplyConstant,
		PaintMode:    PaintNormal,
		NoiseParams: NoiseParams{
			Frequency: 0.25,
			StepStart: 0.5,
			StepWidth: 0.1,
		},
		SizeScale:  1,
		Foreground: Black,
		Background: White,
	}
}

// Validate returns p with every field clamped into its range.
// Unknown enum values fall back to their defaults.
func (p Params) Validate() Params {
	p.BrushOpacity = clamp01(p.BrushOpacity)
	p.ImageOpacity = clamp01(p.ImageOpacity)
	if p.Hardness > HardnessExact {
		p.Hardness = HardnessSoft
	}
	if p.ApplyMode > ApplyIncremental {
		p.ApplyMode = ApplyConstant
	}
	if !p.PaintMode.IsValid() {
		p.PaintMode = PaintNormal
	}
	if p.SizeScale <= 0 || p.SizeScale > 1 {
		p.SizeScale = 1
	}
	p.NoiseParams.Frequency = max(p.NoiseParams.Frequency, 0)
	p.NoiseParams.StepStart = clamp01(p.NoiseParams.StepStart)
	p.NoiseParams.StepWidth = clamp01(p.NoiseParams.StepWidth)
	return p
}

// pressureScale returns the brush scale at pressure.
func (p Params) pressureScale(pressure float64) float64 {
	s := p.SizeScale
	if p.PressureSize {
		s *= pressure
	}
	return s
}

// opacityAt returns the brush opacity at pressure.
func (p Params) opacityAt(pressure float64) float64 {
	if p.PressureOpacity {
		return p.BrushOpacity * pressure
	}
	return p.BrushOpacity
}
