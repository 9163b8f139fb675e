// Package config loads the popover defaults from ~/.popover/config.yaml.
// Every field is optional; unset fields fall back to DefaultConfig.
package config

import (
	"os"
	"path/filepath"

	perrors "github.com/zhubert/popover/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".popover"
	configFileName = "config.yaml"
)

// Config is the top-level configuration.
type Config struct {
	// Theme is a UI theme name such as "nord"; empty keeps the default.
	Theme string `yaml:"theme"`

	ScreenEdgePadding *Insets         `yaml:"screen_edge_padding"`
	Dismissal         DismissalConfig `yaml:"dismissal"`
	// RubberBanding lists the elastic axes ("x", "y"). An explicit empty list
	// turns rubber-banding off; leaving it out keeps the default.
	RubberBanding []string        `yaml:"rubber_banding"`
	Animation     AnimationConfig `yaml:"animation"`
	Drag          DragConfig      `yaml:"drag"`
}

// Insets is padding in cells.
type Insets struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
}

// DismissalConfig controls how popovers are dismissed.
type DismissalConfig struct {
	// Modes are any of "tap-outside", "drag-down", "drag-up" or "none".
	Modes                  []string `yaml:"modes"`
	DragDismissalProximity *float64 `yaml:"drag_dismissal_proximity"`
	DragMovesOffScreen     *bool    `yaml:"drag_moves_off_screen"`
}

// AnimationConfig sets the spring used to ease popovers into place.
type AnimationConfig struct {
	Frequency *float64 `yaml:"frequency"`
	Damping   *float64 `yaml:"damping"`
	FPS       *int     `yaml:"fps"`
}

// DragConfig tunes gesture recognition.
type DragConfig struct {
	// MinimumDistance is how far, in cells, a press travels before it is a drag.
	MinimumDistance *float64 `yaml:"minimum_distance"`
	// DecelerationRate is the per-millisecond velocity decay used to predict
	// where a released drag comes to rest.
	DecelerationRate *float64 `yaml:"deceleration_rate"`
}

// DefaultPath returns ~/.popover/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", perrors.E(perrors.Op("config.DefaultPath"), perrors.KindIO, err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads and parses the config at path.
// Returns nil, nil if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	return &cfg, nil
}

// LoadAndMerge loads the config at path and fills unset fields from
// DefaultConfig. A missing file yields the defaults.
func LoadAndMerge(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if cfg == nil {
		return defaults, nil
	}
	return Merge(cfg, defaults), nil
}
