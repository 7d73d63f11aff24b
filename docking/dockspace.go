// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"

	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
)

// Dockspace is a cell layout of pages docked against an edge of a [Control].
// Its Size is the extent it takes from the control: the width on the left
// and right edges, and the height on the top and bottom edges.
type Dockspace struct {
	spaceBase

	// Size is the extent of the dockspace away from its edge.
	Size int

	// MinSize is the smallest Size the dockspace can be reduced to.
	MinSize int
}

func newDockspace(name string, edge Edges, opts *Options) *Dockspace {
	d := &Dockspace{Size: opts.DockspaceSize, MinSize: opts.DockspaceMinSize}
	d.initSpace(d, name, LocationDocked, ContainerDockspaceCell, stackOrientation(edge))
	return d
}

// stackOrientation returns the orientation that cells stack in on the given
// edge: vertically on the left and right, horizontally on the top and bottom.
func stackOrientation(edge Edges) cells.Orientations {
	if isHorizontalEdge(edge) {
		return cells.Vertical
	}
	return cells.Horizontal
}

func (d *Dockspace) XMLName() string { return "DS" }

// EdgeDocked returns the edge element the dockspace belongs to.
func (d *Dockspace) EdgeDocked() *EdgeDocked {
	return ParentByType[*EdgeDocked](d)
}

// Edge returns the control edge the dockspace is docked against.
func (d *Dockspace) Edge() Edges {
	if e := d.EdgeDocked(); e != nil {
		return e.Edge
	}
	return EdgeNone
}

// Control returns the control the dockspace is docked in.
func (d *Dockspace) Control() *Control {
	return ParentByType[*Control](d)
}

// Visible returns whether the dockspace is shown, which is
// whenever it has a visible page.
func (d *Dockspace) Visible() bool {
	return d.HasVisiblePages()
}

// ScreenRect returns the screen rectangle the dockspace occupies,
// which is empty when it is not visible.
func (d *Dockspace) ScreenRect() image.Rectangle {
	c := d.Control()
	if c == nil {
		return image.Rectangle{}
	}
	return c.arrange().dockspaces[d]
}

// Resize changes the size of the dockspace by the given amount, as done by
// dragging its separator. The new size is offered to
// [Manager.OnDockspaceSeparatorResize] listeners and then clamped between
// the minimum size and the size that keeps the control's inner minimum.
// It returns the new size.
func (d *Dockspace) Resize(delta int) int {
	lo, hi := d.MinSize, d.Size
	if c := d.Control(); c != nil {
		inner := c.InnerRect()
		free := inner.Dx() - c.InnerMinimum.X
		if !isHorizontalEdge(d.Edge()) {
			free = inner.Dy() - c.InnerMinimum.Y
		}
		hi = d.Size + max(free, 0)
	}
	hi = max(hi, lo)
	e := &SeparatorResizeEvent{Element: d, Size: d.Size + delta, Minimum: lo, Maximum: hi}
	if m := managerOf(d); m != nil {
		m.listeners.dockspaceSeparatorResize.Call(e)
	}
	d.Size = min(max(e.Size, lo), hi)
	return d.Size
}

func (d *Dockspace) PropagateDragTargets(floating *FloatingWindow, data *DragData, targets *[]*DragTarget) {
	if d.Visible() && data.Allows(cells.AllowDocked) {
		appendCellTargets(d, d.Layout, d.ScreenRect(), targets)
	}
	d.spaceBase.PropagateDragTargets(floating, data, targets)
}

func (d *Dockspace) SaveElement(parent *layoutxml.Element) {
	node := d.saveNode(parent)
	node.SetAttrInt("S", d.Size)
	node.SetAttrInt("MS", d.MinSize)
	if c := d.Control(); c != nil {
		node.SetAttrInt("O", c.orderIndex(d))
	}
	d.saveLayout(node)
}

func (d *Dockspace) LoadElement(node *layoutxml.Element) error {
	var err error
	if d.Size, err = node.AttrInt("S", d.Size); err != nil {
		return err
	}
	if d.MinSize, err = node.AttrInt("MS", d.MinSize); err != nil {
		return err
	}
	return d.loadLayout(node)
}

// appendCellTargets appends a transfer target for every visible cell of the
// given layout arranged within the given screen rectangle.
func appendCellTargets(el Element, l *cells.Layout, screen image.Rectangle, targets *[]*DragTarget) {
	if screen.Empty() {
		return
	}
	rects := l.CellRects(screen)
	for _, c := range l.Cells() {
		r, ok := rects[c]
		if !ok {
			continue
		}
		*targets = append(*targets, &DragTarget{ScreenRect: r, HotRect: r, DrawRect: r, Transfer: true, Element: el, Cell: c})
	}
}
