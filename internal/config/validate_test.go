package config

import (
	"testing"

	perrors "github.com/zhubert/popover/internal/errors"
)

func TestValidate(t *testing.T) {
	neg := -1.0
	big := 1.5
	one := 1.0
	zeroFPS := 0
	tests := []struct {
		name   string
		cfg    *Config
		fields []string
	}{
		{
			name: "empty config is valid",
			cfg:  &Config{},
		},
		{
			name:   "negative padding",
			cfg:    &Config{ScreenEdgePadding: &Insets{Left: -1}},
			fields: []string{"screen_edge_padding"},
		},
		{
			name:   "unknown dismissal mode",
			cfg:    &Config{Dismissal: DismissalConfig{Modes: []string{"swipe"}}},
			fields: []string{"dismissal.modes"},
		},
		{
			name:   "proximity out of range",
			cfg:    &Config{Dismissal: DismissalConfig{DragDismissalProximity: &big}},
			fields: []string{"dismissal.drag_dismissal_proximity"},
		},
		{
			name:   "unknown axis",
			cfg:    &Config{RubberBanding: []string{"z"}},
			fields: []string{"rubber_banding"},
		},
		{
			name: "bad animation",
			cfg: &Config{Animation: AnimationConfig{
				Frequency: &neg,
				Damping:   &neg,
				FPS:       &zeroFPS,
			}},
			fields: []string{"animation.frequency", "animation.damping", "animation.fps"},
		},
		{
			name:   "bad drag",
			cfg:    &Config{Drag: DragConfig{MinimumDistance: &neg, DecelerationRate: &one}},
			fields: []string{"drag.minimum_distance", "drag.deceleration_rate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			if len(errs) != len(tt.fields) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.fields))
			}
			for i, f := range tt.fields {
				if errs[i].Field != f {
					t.Errorf("error %d field: got %q, want %q", i, errs[i].Field, f)
				}
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Field: "drag.minimum_distance", Message: "distance must not be negative"}
	if got := e.Error(); got != "drag.minimum_distance: distance must not be negative" {
		t.Errorf("Error() = %q", got)
	}
}

func TestBaseAttributes_Invalid(t *testing.T) {
	_, err := (&Config{RubberBanding: []string{"z"}}).BaseAttributes()
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if !perrors.Is(err, perrors.KindInvalid) {
		t.Errorf("kind: got %v, want invalid", perrors.GetKind(err))
	}
}
