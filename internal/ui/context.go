package ui

import (
	"sync"

	"github.com/zhubert/popover/internal/geometry"
	"github.com/zhubert/popover/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	mu sync.Mutex
}

// NewViewContext creates a view context with the fixed header and footer heights.
func NewViewContext() *ViewContext {
	logger.ComponentLogger("ui").Debug("ViewContext initialized")
	return &ViewContext{
		HeaderHeight: HeaderHeight,
		FooterHeight: FooterHeight,
	}
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	logger.ComponentLogger("ui").Debug("terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
	)
}

// SurfaceBounds is the region popovers are presented in: the full width between
// the header and the footer, in screen coordinates.
func (v *ViewContext) SurfaceBounds() geometry.Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return geometry.R(0, float64(v.HeaderHeight), float64(v.TerminalWidth), float64(v.ContentHeight))
}
