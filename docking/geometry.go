// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"
	"math"
)

// Host is the live surface of a [Control]: the widget whose client area
// the docked edge surfaces are arranged in.
type Host interface {

	// SuspendLayout stops the host from laying out its children
	// until ResumeLayout is called.
	SuspendLayout()

	// ResumeLayout resumes layout after SuspendLayout.
	ResumeLayout()

	// PerformLayout lays out the children of the host immediately.
	PerformLayout()

	// ScreenBounds returns the client area of the host in screen coordinates.
	ScreenBounds() image.Rectangle
}

// Panel is a [Host] without a real widget behind it, which records the
// layout calls made on it.
type Panel struct {

	// Bounds are the screen bounds of the panel.
	Bounds image.Rectangle

	// Suspends, Resumes, and Layouts count the calls made on the panel.
	Suspends, Resumes, Layouts int

	suspended int
}

// NewPanel returns a new panel with the given screen bounds.
func NewPanel(bounds image.Rectangle) *Panel {
	return &Panel{Bounds: bounds}
}

func (p *Panel) SuspendLayout() {
	p.Suspends++
	p.suspended++
}

func (p *Panel) ResumeLayout() {
	p.Resumes++
	p.suspended--
}

func (p *Panel) PerformLayout() {
	p.Layouts++
}

func (p *Panel) ScreenBounds() image.Rectangle {
	return p.Bounds
}

// IsSuspended returns whether layout is currently suspended.
func (p *Panel) IsSuspended() bool {
	return p.suspended > 0
}

// Subdivision is a rectangle divided into strips along its four edges.
type Subdivision struct {
	Left, Right, Top, Bottom image.Rectangle

	// Center is the area remaining inside the four strips.
	Center image.Rectangle
}

// Edge returns the strip of the given edge.
func (s Subdivision) Edge(edge Edges) image.Rectangle {
	switch edge {
	case EdgeLeft:
		return s.Left
	case EdgeRight:
		return s.Right
	case EdgeTop:
		return s.Top
	case EdgeBottom:
		return s.Bottom
	}
	return image.Rectangle{}
}

// SubdivideRectangle divides the given area into four edge strips, each
// the area's width or height divided by the divisor, capped at maxLength.
func SubdivideRectangle(area image.Rectangle, divisor, maxLength int) Subdivision {
	if maxLength <= 0 {
		maxLength = math.MaxInt
	}
	lx := min(area.Dx()/divisor, maxLength)
	ly := min(area.Dy()/divisor, maxLength)
	return Subdivision{
		Left:   image.Rect(area.Min.X, area.Min.Y, area.Min.X+lx, area.Max.Y),
		Right:  image.Rect(area.Max.X-lx, area.Min.Y, area.Max.X, area.Max.Y),
		Top:    image.Rect(area.Min.X, area.Min.Y, area.Max.X, area.Min.Y+ly),
		Bottom: image.Rect(area.Min.X, area.Max.Y-ly, area.Max.X, area.Max.Y),
		Center: image.Rect(area.Min.X+lx, area.Min.Y+ly, area.Max.X-lx, area.Max.Y-ly),
	}
}

// takeEdge removes a strip of up to size pixels from the given edge of the
// rectangle, returning the strip and the remaining rectangle.
func takeEdge(r image.Rectangle, edge Edges, size int) (strip, rest image.Rectangle) {
	size = max(size, 0)
	strip, rest = r, r
	switch edge {
	case EdgeLeft:
		size = min(size, r.Dx())
		strip.Max.X = r.Min.X + size
		rest.Min.X = strip.Max.X
	case EdgeRight:
		size = min(size, r.Dx())
		strip.Min.X = r.Max.X - size
		rest.Max.X = strip.Min.X
	case EdgeTop:
		size = min(size, r.Dy())
		strip.Max.Y = r.Min.Y + size
		rest.Min.Y = strip.Max.Y
	case EdgeBottom:
		size = min(size, r.Dy())
		strip.Min.Y = r.Max.Y - size
		rest.Max.Y = strip.Min.Y
	default:
		return image.Rectangle{}, r
	}
	return strip, rest
}

// isHorizontalEdge returns whether the edge is left or right,
// which are the edges whose surfaces take width.
func isHorizontalEdge(edge Edges) bool {
	return edge == EdgeLeft || edge == EdgeRight
}

// validEdge returns whether the edge is one of the four control edges.
func validEdge(edge Edges) bool {
	return edge >= EdgeTop && edge <= EdgeRight
}
