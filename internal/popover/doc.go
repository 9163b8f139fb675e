// Package popover positions transient overlays and drives their drag interaction.
//
// # Overview
//
// A Popover is created with Attributes and presented on a Surface. The surface owns a
// Model (the ordered registry of presented popovers) and a Container (layout and
// gestures). Drawing is left to the host: it asks the container for Placements, draws
// them, measures their content and reports sizes back.
//
// # Lifecycle
//
//	Present ──► uninitialized-size ──size report──► positioned ◄──► dragging
//	                                                     │
//	                                   Dismiss / tap / drag ──► dismissed
//
// Every presentation gets a fresh presentation ID. Size reports carry the ID they were
// measured for; reports for an earlier presentation are dropped. A popover stays
// invisible until its first non-zero size is known, so it never flashes at the origin.
//
// # Geometry
//
// ComputeFrame places a popover from its Position, source frame, content size and the
// surface bounds. Absolute positions pin an anchor of the popover to an anchor of the
// source frame and clamp into the padded bounds. Relative positions try their anchors in
// order and fall back to the last one.
//
// # Gestures
//
// The host reports DragEvents. DragOffset turns a translation into a live offset, damping
// it with RubberBand on axes that resist. On release the predicted end translation decides
// between dismissal, moving to the closest anchor, and snapping back.
//
// # Threading
//
// Nothing here is safe for concurrent use. Everything runs on the host's UI goroutine;
// the only deferred work goes through the Scheduler supplied by the host.
package popover
