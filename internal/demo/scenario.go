// Package demo records scripted runs of the playground. A scenario drives the
// same model the interactive program uses, headlessly and on a virtual clock,
// so recordings are reproducible.
package demo

import (
	"fmt"
	"time"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait holds the screen for a duration, animating if anything moves.
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepClick presses and releases the left button at a cell.
	StepClick
	// StepDrag drags the popover with a tag by a cell offset.
	StepDrag
	// StepResize changes the terminal size.
	StepResize
	// StepSettle runs animation frames until nothing moves.
	StepSettle
	// StepCapture captures the current frame.
	StepCapture
	// StepAnnotate adds a caption to the next captured frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepClick, and the offset for StepDrag
	X, Y int

	// For StepDrag
	Tag string

	// For StepResize
	Width, Height int

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 100)
	Height      int // Terminal height (default 30)
	Steps       []Step
}

// Validate checks that the scenario is valid and fills in its defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 100
	}
	if s.Height <= 0 {
		s.Height = 30
	}
	for i, step := range s.Steps {
		switch {
		case step.Type == StepDrag && step.Tag == "":
			return &ValidationError{Field: stepField(i), Message: "drag needs a popover tag"}
		case step.Type == StepResize && (step.Width <= 0 || step.Height <= 0):
			return &ValidationError{Field: stepField(i), Message: "resize needs a positive size"}
		case step.Type == StepWait && step.Duration < 0:
			return &ValidationError{Field: stepField(i), Message: "negative wait"}
		}
	}
	return nil
}

func stepField(i int) string {
	return fmt.Sprintf("Steps[%d]", i)
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{Type: StepKey, Key: key}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{Type: StepKey, Key: key, Description: description}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{Type: StepTypeText, Text: text}
}

// Click creates a left click at screen cell (x, y).
func Click(x, y int) Step {
	return Step{Type: StepClick, X: x, Y: y}
}

// Drag creates a step that grabs the popover tagged tag at its center and
// moves it by (dx, dy) cells before letting go.
func Drag(tag string, dx, dy int) Step {
	return Step{Type: StepDrag, Tag: tag, X: dx, Y: dy}
}

// Resize creates a terminal resize step.
func Resize(width, height int) Step {
	return Step{Type: StepResize, Width: width, Height: height}
}

// Settle creates a step that records animation frames until nothing moves.
func Settle() Step {
	return Step{Type: StepSettle}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{Type: StepCapture}
}
