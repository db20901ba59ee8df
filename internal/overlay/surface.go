package overlay

import (
	"context"

	"github.com/atomicstack/navsync/internal/panel"
	"github.com/atomicstack/navsync/internal/theme"
)

// Button names and tooltips of the overlay controls.
const (
	ButtonCollapse = "collapseTreeButton"
	ButtonSync     = "selectInTreeButton"

	TooltipCollapse = "Collapse All"
	TooltipSync     = "Sync with Code Editor"
)

// Button is one overlay control.
type Button struct {
	Name    string
	Tooltip string
	Icon    theme.Icon
	onClick func(ctx context.Context)
}

// Click runs the button's action.
func (b Button) Click(ctx context.Context) {
	if b.onClick != nil {
		b.onClick(ctx)
	}
}

// Surface is the header content installed into a tree view. It implements
// host.Header by being stored in the header slot.
type Surface struct {
	// Token correlates trace entries of one installation.
	Token   string
	PanelID string
	Variant panel.Variant
	Buttons []Button

	hover string
}

// Button returns the control registered under name.
func (s *Surface) Button(name string) (Button, bool) {
	if s == nil {
		return Button{}, false
	}
	for _, b := range s.Buttons {
		if b.Name == name {
			return b, true
		}
	}
	return Button{}, false
}

// Click invokes the named control and reports whether it exists.
func (s *Surface) Click(ctx context.Context, name string) bool {
	b, ok := s.Button(name)
	if !ok {
		return false
	}
	b.Click(ctx)
	return true
}

// SetHover highlights the named control; an empty name clears the highlight.
func (s *Surface) SetHover(name string) {
	if s == nil {
		return
	}
	if _, ok := s.Button(name); !ok {
		name = ""
	}
	s.hover = name
}

func (s *Surface) Hover() string {
	if s == nil {
		return ""
	}
	return s.hover
}
