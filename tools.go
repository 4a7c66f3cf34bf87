package paintcore

import (
	"fmt"
	"slices"
	"strings"
)

// Tool paints at each application point of a stroke.
//
// Motion is called once per application point, including the first.
// A typical implementation adjusts p, asks the session for the painthit
// and pastes it with a render function supplying the paint:
//
//	func (Pencil) Motion(s *paintcore.Session, p paintcore.Params) {
//		p.Hardness = paintcore.HardnessHard
//		s.Paste(s.Painthit(p), p, paintcore.Fill(p.Foreground))
//	}
type Tool interface {
	Name() string
	Motion(s *Session, p Params)
}

// ToolStarter is implemented by tools that set up per-stroke state.
// Start runs during Init before the first point is applied.
type ToolStarter interface {
	Start(s *Session, p Params)
}

// ToolStopper is implemented by tools that release per-stroke state.
// Stop runs when the stroke finishes or halts.
type ToolStopper interface {
	Stop(s *Session)
}

// Fill returns a render function painting a solid color.
func Fill(c RGBA) RenderFunc {
	return func(t *PaintTarget) bool {
		t.Paint.Fill(c)
		return true
	}
}

var toolFactories = map[string]func() Tool{
	"pencil":     func() Tool { return Pencil{} },
	"paintbrush": func() Tool { return Paintbrush{} },
	"eraser":     func() Tool { return Eraser{} },
	"airbrush":   func() Tool { return NewAirbrush() },
	"convolve":   func() Tool { return NewConvolve(ConvolveBlur) },
	"smudge":     func() Tool { return NewSmudge() },
	"dodgeburn":  func() Tool { return NewDodgeBurn(Dodge) },
	"clone":      func() Tool { return &Clone{} },
}

// ToolNames returns the names accepted by NewTool, sorted.
func ToolNames() []string {
	names := make([]string, 0, len(toolFactories))
	for n := range toolFactories {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// NewTool creates a tool with default settings by name.
func NewTool(name string) (Tool, error) {
	f, ok := toolFactories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("paintcore: unknown tool %q", name)
	}
	return f(), nil
}
