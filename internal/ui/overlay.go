package ui

import (
	"image"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Layer is one rendered popover placed on the screen in cell coordinates.
type Layer struct {
	// Rect is where the content goes. It may extend past the screen.
	Rect    image.Rectangle
	Content string
}

// Compose draws layers over base, bottom-most first, and returns a width×height
// view. Each layer is clipped to its own Rect and to the screen.
func Compose(base string, width, height int, layers []Layer) string {
	if width <= 0 || height <= 0 {
		return base
	}

	screen := image.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(width, height)
	uv.NewStyledString(base).Draw(scr, uv.Rect(0, 0, width, height))

	for _, l := range layers {
		visible := l.Rect.Intersect(screen)
		if visible.Empty() {
			continue
		}
		clipped := clip(l.Content, l.Rect, visible)
		area := uv.Rect(visible.Min.X, visible.Min.Y, visible.Dx(), visible.Dy())
		uv.NewStyledString(clipped).Draw(scr, area)
	}

	return scr.Render()
}

// clip cuts content laid out at full down to the part inside visible.
func clip(content string, full, visible image.Rectangle) string {
	lines := strings.Split(content, "\n")

	top := visible.Min.Y - full.Min.Y
	if top >= len(lines) {
		return ""
	}
	lines = lines[top:]
	if len(lines) > visible.Dy() {
		lines = lines[:visible.Dy()]
	}

	left := visible.Min.X - full.Min.X
	for i, line := range lines {
		if left > 0 {
			line = ansi.TruncateLeft(line, left, "")
		}
		lines[i] = ansi.Truncate(line, visible.Dx(), "")
	}
	return strings.Join(lines, "\n")
}
