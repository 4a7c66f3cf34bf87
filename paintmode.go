package paintcore

import "github.com/gogpu/paintcore/internal/blend"

// PaintMode defines how paint combines with the pixels below it.
type PaintMode = blend.Mode

// Paint modes.
const (
	// PaintNormal composites paint over the drawable.
	PaintNormal = blend.ModeNormal

	// PaintBehind paints only where the drawable is transparent.
	PaintBehind = blend.ModeBehind

	// PaintErase removes alpha in proportion to coverage.
	PaintErase = blend.ModeErase

	// PaintReplace moves pixels towards the paint by coverage, alpha included.
	// Tools that source their paint from drawable pixels use it.
	PaintReplace = blend.ModeReplace

	PaintAddition   = blend.ModeAddition
	PaintMultiply   = blend.ModeMultiply
	PaintScreen     = blend.ModeScreen
	PaintOverlay    = blend.ModeOverlay
	PaintDarken     = blend.ModeDarken
	PaintLighten    = blend.ModeLighten
	PaintDifference = blend.ModeDifference
	PaintColorDodge = blend.ModeColorDodge
	PaintColorBurn  = blend.ModeColorBurn
	PaintHardLight  = blend.ModeHardLight
	PaintSoftLight  = blend.ModeSoftLight
)

// ParsePaintMode looks a paint mode up by name, for example "multiply".
func ParsePaintMode(name string) (PaintMode, error) {
	return blend.ParseMode(name)
}
