package config

import (
	"errors"
	"fmt"

	"github.com/zhubert/popover/internal/popover"
)

// MaxAnimationFPS caps the spring frame rate.
const MaxAnimationFPS = 240

// ValidationError describes a single validation problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a Config for errors and returns all problems found. Unset
// fields are not errors.
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if p := cfg.ScreenEdgePadding; p != nil {
		if p.Top < 0 || p.Left < 0 || p.Bottom < 0 || p.Right < 0 {
			errs = append(errs, ValidationError{
				Field:   "screen_edge_padding",
				Message: "padding must not be negative",
			})
		}
	}

	// Dismissal
	if _, err := popover.ParseDismissMode(cfg.Dismissal.Modes); err != nil {
		errs = append(errs, ValidationError{
			Field:   "dismissal.modes",
			Message: fmt.Sprintf("%v (must be tap-outside, drag-down, drag-up, or none)", unwrapContext(err)),
		})
	}
	if p := cfg.Dismissal.DragDismissalProximity; p != nil && (*p < 0 || *p > 1) {
		errs = append(errs, ValidationError{
			Field:   "dismissal.drag_dismissal_proximity",
			Message: fmt.Sprintf("%v is outside [0, 1]", *p),
		})
	}

	if _, err := popover.ParseRubberBanding(cfg.RubberBanding); err != nil {
		errs = append(errs, ValidationError{
			Field:   "rubber_banding",
			Message: fmt.Sprintf("%v (must be x or y)", unwrapContext(err)),
		})
	}

	// Animation
	if f := cfg.Animation.Frequency; f != nil && *f <= 0 {
		errs = append(errs, ValidationError{
			Field:   "animation.frequency",
			Message: "frequency must be positive",
		})
	}
	if d := cfg.Animation.Damping; d != nil && *d < 0 {
		errs = append(errs, ValidationError{
			Field:   "animation.damping",
			Message: "damping must not be negative",
		})
	}
	if fps := cfg.Animation.FPS; fps != nil && (*fps < 1 || *fps > MaxAnimationFPS) {
		errs = append(errs, ValidationError{
			Field:   "animation.fps",
			Message: fmt.Sprintf("%d is outside [1, %d]", *fps, MaxAnimationFPS),
		})
	}

	// Drag
	if d := cfg.Drag.MinimumDistance; d != nil && *d < 0 {
		errs = append(errs, ValidationError{
			Field:   "drag.minimum_distance",
			Message: "distance must not be negative",
		})
	}
	if r := cfg.Drag.DecelerationRate; r != nil && (*r <= 0 || *r >= 1) {
		errs = append(errs, ValidationError{
			Field:   "drag.deceleration_rate",
			Message: fmt.Sprintf("%v is outside (0, 1)", *r),
		})
	}

	return errs
}

// unwrapContext drops the "op:" prefix from a structured parse error.
func unwrapContext(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
