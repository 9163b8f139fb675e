package config

import (
	"strings"

	perrors "github.com/zhubert/popover/internal/errors"
	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/popover"
)

// BaseAttributes returns popover.DefaultAttributes with the configured values
// applied. The config must have been merged with defaults; an invalid config
// returns a KindInvalid error listing every problem.
func (c *Config) BaseAttributes() (popover.Attributes, error) {
	if errs := Validate(c); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return popover.Attributes{}, perrors.ConfigInvalid(strings.Join(msgs, "; "))
	}

	attrs := popover.DefaultAttributes()

	if p := c.ScreenEdgePadding; p != nil {
		attrs.ScreenEdgePadding = geometry.EdgeInsets{Top: p.Top, Left: p.Left, Bottom: p.Bottom, Right: p.Right}
	}
	if c.Dismissal.Modes != nil {
		// Validate has already parsed these.
		attrs.Dismissal.Mode, _ = popover.ParseDismissMode(c.Dismissal.Modes)
	}
	if p := c.Dismissal.DragDismissalProximity; p != nil {
		attrs.Dismissal.DragDismissalProximity = *p
	}
	if b := c.Dismissal.DragMovesOffScreen; b != nil {
		attrs.Dismissal.DragMovesPopoverOffScreen = *b
	}
	if c.RubberBanding != nil {
		attrs.RubberBanding, _ = popover.ParseRubberBanding(c.RubberBanding)
	}
	if f := c.Animation.Frequency; f != nil {
		attrs.Presentation.Frequency = *f
		attrs.Dismissal.Transition.Frequency = *f
	}
	if d := c.Animation.Damping; d != nil {
		attrs.Presentation.Damping = *d
		attrs.Dismissal.Transition.Damping = *d
	}
	return attrs, nil
}
