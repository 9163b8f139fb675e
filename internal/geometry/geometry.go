// Package geometry provides the float64 point, vector, size and rectangle types used to
// place popovers.
//
// The coordinate space has its origin in the top left corner with the axes extending
// right and down. Units are terminal cells; fractional values are kept until drawing.
package geometry

import (
	"image"
	"math"
)

// Point is a position on the surface.
type Point struct {
	X, Y float64
}

// Vector is a displacement, such as a drag translation or a live offset.
type Vector struct {
	X, Y float64
}

// Size is a width and height. The zero Size is "no size".
type Size struct {
	Width, Height float64
}

// Rect is an origin plus a size.
type Rect struct {
	Origin Point
	Size   Size
}

// EdgeInsets are distances inward from each edge of a rectangle.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

// R returns the rectangle with origin (x, y) and size w×h.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Insets returns EdgeInsets with the same value on every edge.
func Insets(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Left: v, Bottom: v, Right: v}
}

// Add returns p moved by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from p2 to p.
func (p Point) Sub(p2 Point) Vector {
	return Vector{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Distance returns the euclidean distance between p and p2.
func (p Point) Distance(p2 Point) float64 {
	return p.Sub(p2).Length()
}

// Add returns v+v2.
func (v Vector) Add(v2 Vector) Vector {
	return Vector{X: v.X + v2.X, Y: v.Y + v2.Y}
}

// Sub returns v-v2.
func (v Vector) Sub(v2 Vector) Vector {
	return Vector{X: v.X - v2.X, Y: v.Y - v2.Y}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsZero reports whether s has no area in either dimension.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Min returns the component-wise minimum of s and s2.
func (s Size) Min(s2 Size) Size {
	return Size{Width: math.Min(s.Width, s2.Width), Height: math.Min(s.Height, s2.Height)}
}

func (r Rect) MinX() float64 { return r.Origin.X }
func (r Rect) MinY() float64 { return r.Origin.Y }
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Offset returns r translated by v.
func (r Rect) Offset(v Vector) Rect {
	r.Origin = r.Origin.Add(v)
	return r
}

// Inset returns r shrunk by in. Sizes never go negative.
func (r Rect) Inset(in EdgeInsets) Rect {
	r.Origin.X += in.Left
	r.Origin.Y += in.Top
	r.Size.Width = math.Max(0, r.Size.Width-in.Left-in.Right)
	r.Size.Height = math.Max(0, r.Size.Height-in.Top-in.Bottom)
	return r
}

// Contains reports whether p lies in r. Min edges are inclusive, max edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// ContainsRect reports whether s lies entirely within r.
func (r Rect) ContainsRect(s Rect) bool {
	return s.MinX() >= r.MinX() && s.MaxX() <= r.MaxX() &&
		s.MinY() >= r.MinY() && s.MaxY() <= r.MaxY()
}

// Image converts r to cell coordinates, rounding the origin and size to the nearest cell.
func (r Rect) Image() image.Rectangle {
	x := int(math.Round(r.Origin.X))
	y := int(math.Round(r.Origin.Y))
	return image.Rect(x, y, x+int(math.Round(r.Size.Width)), y+int(math.Round(r.Size.Height)))
}

// FromImage converts a cell rectangle to a Rect.
func FromImage(r image.Rectangle) Rect {
	return R(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}

// Clamp limits v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
