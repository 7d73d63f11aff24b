// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cells

import (
	"image"
	"slices"
	"strconv"
)

// Orientations are the directions in which a [Sequence] arranges its items.
type Orientations int32

const (
	// Horizontal arranges items from left to right.
	Horizontal Orientations = iota

	// Vertical arranges items from top to bottom.
	Vertical
)

func (o Orientations) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// ParseOrientation returns the orientation with the given name,
// defaulting to [Horizontal].
func ParseOrientation(s string) Orientations {
	if s == "Vertical" {
		return Vertical
	}
	return Horizontal
}

// Item is an element of a [Sequence]: either a *[Cell] or a *[Sequence].
type Item interface {
	isItem()
}

func (c *Cell) isItem()     {}
func (s *Sequence) isItem() {}

// Sequence is an ordered list of cells and nested sequences
// arranged in one direction.
type Sequence struct {
	Orientation Orientations
	Items       []Item
}

// Layout is a tree of cells rooted in a [Sequence].
// It is the surface that every docking space arranges its pages in.
type Layout struct {
	Root *Sequence

	numLifetimeCells int
}

// NewLayout returns a new empty layout with the given root orientation.
func NewLayout(orientation Orientations) *Layout {
	return &Layout{Root: &Sequence{Orientation: orientation}}
}

// NewCell returns a new uniquely named cell appended to the root sequence.
func (l *Layout) NewCell(pages ...*Page) *Cell {
	c := NewCell(l.NextCellName(), pages...)
	l.Root.Items = append(l.Root.Items, c)
	return c
}

// AddCell appends the given cell to the root sequence.
func (l *Layout) AddCell(c *Cell) {
	if c.Name == "" {
		c.Name = l.NextCellName()
	}
	l.Root.Items = append(l.Root.Items, c)
}

// NextCellName returns the next automatic cell name that is not already in use.
func (l *Layout) NextCellName() string {
	for {
		name := "cell-" + strconv.Itoa(l.numLifetimeCells)
		l.numLifetimeCells++
		if l.CellByName(name) == nil {
			return name
		}
	}
}

// Cells returns all cells of the layout in depth-first order.
func (l *Layout) Cells() []*Cell {
	var cs []*Cell
	walkCells(l.Root, func(c *Cell) bool {
		cs = append(cs, c)
		return true
	})
	return cs
}

// walkCells calls fun on every cell under the given sequence in depth-first
// order, stopping when fun returns false. It returns false if it stopped.
func walkCells(s *Sequence, fun func(c *Cell) bool) bool {
	for _, it := range s.Items {
		switch it := it.(type) {
		case *Cell:
			if !fun(it) {
				return false
			}
		case *Sequence:
			if !walkCells(it, fun) {
				return false
			}
		}
	}
	return true
}

// FirstCell returns the first cell of the layout, or nil.
func (l *Layout) FirstCell() *Cell {
	var first *Cell
	walkCells(l.Root, func(c *Cell) bool {
		first = c
		return false
	})
	return first
}

// CellByName returns the cell with the given name, or nil.
func (l *Layout) CellByName(name string) *Cell {
	var found *Cell
	walkCells(l.Root, func(c *Cell) bool {
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// CellForLive returns the cell containing the live page with the given
// unique name and its index there, or nil and -1.
func (l *Layout) CellForLive(uniqueName string) (*Cell, int) {
	var found *Cell
	idx := -1
	walkCells(l.Root, func(c *Cell) bool {
		if i := c.IndexOfLive(uniqueName); i >= 0 {
			found, idx = c, i
			return false
		}
		return true
	})
	return found, idx
}

// CellForStore returns the cell containing the store page with the given
// unique name and store name, and its index there, or nil and -1.
func (l *Layout) CellForStore(uniqueName, storeName string) (*Cell, int) {
	var found *Cell
	idx := -1
	walkCells(l.Root, func(c *Cell) bool {
		if i := c.IndexOfStore(uniqueName, storeName); i >= 0 {
			found, idx = c, i
			return false
		}
		return true
	})
	return found, idx
}

// Live returns the live page with the given unique name, or nil.
func (l *Layout) Live(uniqueName string) *Page {
	c, i := l.CellForLive(uniqueName)
	if c == nil {
		return nil
	}
	return c.Pages[i]
}

// LivePages returns every live page in depth-first cell order.
func (l *Layout) LivePages() []*Page {
	var pages []*Page
	walkCells(l.Root, func(c *Cell) bool {
		pages = append(pages, c.LivePages()...)
		return true
	})
	return pages
}

// NumPages returns the number of pages in the layout, including store pages.
func (l *Layout) NumPages() int {
	n := 0
	walkCells(l.Root, func(c *Cell) bool {
		n += c.Len()
		return true
	})
	return n
}

// HasVisiblePages returns whether any cell has a live visible page.
func (l *Layout) HasVisiblePages() bool {
	return !walkCells(l.Root, func(c *Cell) bool {
		return !c.HasVisiblePages()
	})
}

// Clear removes every cell from the layout.
func (l *Layout) Clear() {
	l.Root.Items = nil
}

// Compact removes cells without any pages and sequences without any items.
// It returns the cells that were removed.
func (l *Layout) Compact() []*Cell {
	var removed []*Cell
	compactSequence(l.Root, &removed)
	return removed
}

func compactSequence(s *Sequence, removed *[]*Cell) {
	s.Items = slices.DeleteFunc(s.Items, func(it Item) bool {
		switch it := it.(type) {
		case *Cell:
			if it.Len() == 0 {
				*removed = append(*removed, it)
				return true
			}
		case *Sequence:
			compactSequence(it, removed)
			return len(it.Items) == 0
		}
		return false
	})
}

// CellRects returns the screen rectangle of every visible cell when the
// layout is arranged within the given bounds. Space is divided evenly
// between the visible items of each sequence.
func (l *Layout) CellRects(bounds image.Rectangle) map[*Cell]image.Rectangle {
	rects := map[*Cell]image.Rectangle{}
	arrange(l.Root, bounds, rects)
	return rects
}

func itemVisible(it Item) bool {
	switch it := it.(type) {
	case *Cell:
		return it.HasVisiblePages()
	case *Sequence:
		return slices.ContainsFunc(it.Items, itemVisible)
	}
	return false
}

func arrange(s *Sequence, bounds image.Rectangle, rects map[*Cell]image.Rectangle) {
	var vis []Item
	for _, it := range s.Items {
		if itemVisible(it) {
			vis = append(vis, it)
		}
	}
	n := len(vis)
	if n == 0 {
		return
	}
	extent := bounds.Dx()
	if s.Orientation == Vertical {
		extent = bounds.Dy()
	}
	pos := 0
	for i, it := range vis {
		size := extent / n
		if i == n-1 {
			size = extent - pos
		}
		r := bounds
		if s.Orientation == Vertical {
			r.Min.Y = bounds.Min.Y + pos
			r.Max.Y = r.Min.Y + size
		} else {
			r.Min.X = bounds.Min.X + pos
			r.Max.X = r.Min.X + size
		}
		pos += size
		switch it := it.(type) {
		case *Cell:
			rects[it] = r
		case *Sequence:
			arrange(it, r, rects)
		}
	}
}
