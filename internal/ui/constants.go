// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for the playground screen
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// MinTerminalWidth is the narrowest terminal the layout is computed for
	MinTerminalWidth = 20

	// MinTerminalHeight is the shortest terminal the layout is computed for
	MinTerminalHeight = 6

	// PopoverBorderSize is the total border width of a popover frame (1 on each side)
	PopoverBorderSize = 2

	// PopoverPaddingWidth is the horizontal padding inside a popover (Padding(0, 1))
	PopoverPaddingWidth = 2

	// DefaultWrapWidth is the widest a text popover grows before wrapping
	DefaultWrapWidth = 48

	// MenuVisibleItems is the number of menu rows shown at once
	MenuVisibleItems = 6
)

// Gesture defaults, used when the config leaves them unset
const (
	// DefaultDragMinimumDistance is how far (in cells) the pointer must travel
	// before a press becomes a drag
	DefaultDragMinimumDistance = 1.0

	// DefaultDecelerationRate is the per-millisecond velocity decay used to
	// predict where a released drag would come to rest
	DefaultDecelerationRate = 0.998

	// VelocityWindow is how far back pointer samples count toward velocity
	VelocityWindow = 100 * time.Millisecond
)

// Animation defaults
const (
	// DefaultAnimationFPS is the frame rate of spring animations
	DefaultAnimationFPS = 60

	// AnimationSettleDistance is how close (in cells) a spring must be to its
	// target, and how slow, before it snaps and stops ticking
	AnimationSettleDistance = 0.01

	// StatusTimeout is how long an announcement stays in the header
	StatusTimeout = 3 * time.Second
)
