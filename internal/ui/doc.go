// Package ui draws popovers in the terminal and turns mouse input into gestures.
//
// # Overview
//
// The popover package decides where things go; this package decides what they
// look like. It is built on Bubble Tea and Lipgloss and composes popovers over
// the base view with an ultraviolet screen buffer.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line): title, announcements, open count   │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Surface: popovers are laid out and drawn here     │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line): key hints                          │
//	└─────────────────────────────────────────────────────┘
//
// ViewContext owns the terminal size and derives the surface bounds from it.
//
// # Render loop
//
// After every update the host calls Renderer.Measure, which reports content
// sizes to the container, then Renderer.Sync to hand new frames to the
// Animator. View draws Renderer.Layers with Compose. Work the container defers
// goes through Scheduler and comes back as a DeferredMsg.
//
// # Gestures
//
// DragRecognizer converts press, motion and release events into taps and drags.
// A release projects the pointer's recent velocity forward to produce the
// predicted end translation the container uses to decide the drag's outcome.
//
// # Content
//
// Text, Tooltip, Code (chroma highlighting), Menu (fuzzy filtering) and Confirm
// (a huh form) implement Content. Menu and Confirm are Interactive and take
// keys while their popover is on top.
package ui
