package config

import (
	"os"
	"path/filepath"

	perrors "github.com/zhubert/popover/internal/errors"
)

// Template is the default config.yaml content with every setting commented.
const Template = `# Popover playground configuration
#
# Every setting is optional; the values shown are the defaults.

# theme: dark-purple         # dark-purple, nord, dracula, or light

# screen_edge_padding:       # Cells kept free at each surface edge
#   top: 1
#   left: 1
#   bottom: 1
#   right: 1

dismissal:
  modes: [tap-outside]       # tap-outside, drag-down, drag-up, or none
  # drag_dismissal_proximity: 0.25  # Fraction of the surface height near the edge
  # drag_moves_off_screen: false    # Push the popover past the edge when drag-dismissed

# rubber_banding: [x, y]     # Axes that resist dragging; [] turns it off

animation:
  # frequency: 6             # Spring angular frequency
  # damping: 0.8             # Spring damping ratio (1 is critically damped)
  # fps: 60                  # Animation frame rate

drag:
  # minimum_distance: 1      # Cells the pointer travels before a press becomes a drag
  # deceleration_rate: 0.998 # Per-millisecond velocity decay for release prediction
`

// WriteTemplate writes Template to path, creating its directory.
// Returns an error if the file already exists.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return perrors.ConfigExists(path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return perrors.ConfigWriteFailed(path, err)
	}

	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		return perrors.ConfigWriteFailed(path, err)
	}
	return nil
}
