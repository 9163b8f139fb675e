package config

// DefaultConfig returns the configuration used when no file is present. The
// values match popover.DefaultAttributes and the ui package defaults.
func DefaultConfig() *Config {
	proximity := 0.25
	offScreen := false
	frequency := 6.0
	damping := 0.8
	fps := 60
	minDistance := 1.0
	deceleration := 0.998

	return &Config{
		Theme:             "dark-purple",
		ScreenEdgePadding: &Insets{Top: 1, Left: 1, Bottom: 1, Right: 1},
		Dismissal: DismissalConfig{
			Modes:                  []string{"tap-outside"},
			DragDismissalProximity: &proximity,
			DragMovesOffScreen:     &offScreen,
		},
		RubberBanding: []string{"x", "y"},
		Animation: AnimationConfig{
			Frequency: &frequency,
			Damping:   &damping,
			FPS:       &fps,
		},
		Drag: DragConfig{
			MinimumDistance:  &minDistance,
			DecelerationRate: &deceleration,
		},
	}
}

// Merge fills every unset field of partial from defaults. partial is not modified.
func Merge(partial, defaults *Config) *Config {
	result := *partial

	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.ScreenEdgePadding == nil {
		result.ScreenEdgePadding = defaults.ScreenEdgePadding
	}

	// Dismissal
	if result.Dismissal.Modes == nil {
		result.Dismissal.Modes = defaults.Dismissal.Modes
	}
	if result.Dismissal.DragDismissalProximity == nil {
		result.Dismissal.DragDismissalProximity = defaults.Dismissal.DragDismissalProximity
	}
	if result.Dismissal.DragMovesOffScreen == nil {
		result.Dismissal.DragMovesOffScreen = defaults.Dismissal.DragMovesOffScreen
	}

	if result.RubberBanding == nil {
		result.RubberBanding = defaults.RubberBanding
	}

	// Animation
	if result.Animation.Frequency == nil {
		result.Animation.Frequency = defaults.Animation.Frequency
	}
	if result.Animation.Damping == nil {
		result.Animation.Damping = defaults.Animation.Damping
	}
	if result.Animation.FPS == nil {
		result.Animation.FPS = defaults.Animation.FPS
	}

	// Drag
	if result.Drag.MinimumDistance == nil {
		result.Drag.MinimumDistance = defaults.Drag.MinimumDistance
	}
	if result.Drag.DecelerationRate == nil {
		result.Drag.DecelerationRate = defaults.Drag.DecelerationRate
	}

	return &result
}
