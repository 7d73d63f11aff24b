// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
)

// Control is a managed host surface with four edges, each of which can hold
// docked dockspaces and auto hidden groups. The area left over inside the
// docked surfaces is the inner area, which is kept at least InnerMinimum in
// size by shrinking the dockspaces.
type Control struct {
	ElementBase

	// Host is the live surface the control arranges its edges in.
	Host Host

	// InnerMinimum is the minimum size of the inner area.
	InnerMinimum image.Point

	// Fill is an optional workspace or navigator that fills the inner area.
	Fill Element

	// order is the docking order of the dockspaces, from the outermost
	// to the innermost across all edges.
	order []*Dockspace

	// loadedOrder is the saved docking order of dockspaces during a load.
	loadedOrder map[*Dockspace]int

	// updates is the nesting depth of update brackets.
	updates int
}

// controlEdges are the edges of a control in the order of its children.
var controlEdges = []Edges{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

func newControl(name string, host Host, opts *Options) *Control {
	if host == nil {
		host = NewPanel(image.Rectangle{})
	}
	c := &Control{Host: host, InnerMinimum: opts.InnerMinimum, loadedOrder: map[*Dockspace]int{}}
	initElement(c, name)
	for _, edge := range controlEdges {
		errors.Log(c.addChild(newEdge(edge)))
	}
	return c
}

func (c *Control) XMLName() string { return "DC" }

// Edge returns the edge element for the given edge, or nil.
func (c *Control) Edge(edge Edges) *Edge {
	for _, e := range ChildrenOfType[*Edge](c) {
		if e.Edge == edge {
			return e
		}
	}
	return nil
}

// EdgeDocked returns the docked part of the given edge, or nil.
func (c *Control) EdgeDocked(edge Edges) *EdgeDocked {
	if e := c.Edge(edge); e != nil {
		return e.Docked
	}
	return nil
}

// EdgeAutoHidden returns the auto hidden part of the given edge, or nil.
func (c *Control) EdgeAutoHidden(edge Edges) *EdgeAutoHidden {
	if e := c.Edge(edge); e != nil {
		return e.AutoHidden
	}
	return nil
}

// Dockspaces returns the dockspaces of the control in docking order,
// from the outermost to the innermost.
func (c *Control) Dockspaces() []*Dockspace {
	return slices.Clone(c.order)
}

// dock adds the dockspace to the docking order directly outside of the
// given dockspace, or as the innermost when before is nil.
func (c *Control) dock(d, before *Dockspace) {
	if i := slices.Index(c.order, before); before != nil && i >= 0 {
		c.order = slices.Insert(c.order, i, d)
		return
	}
	c.order = append(c.order, d)
}

// undock removes the dockspace from the docking order.
func (c *Control) undock(d *Dockspace) {
	if i := slices.Index(c.order, d); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	delete(c.loadedOrder, d)
}

// orderIndex returns the position of the dockspace in the docking order.
func (c *Control) orderIndex(d *Dockspace) int {
	return slices.Index(c.order, d)
}

// arrangement is the result of laying out the edge surfaces of a control.
type arrangement struct {
	strips     map[Edges]image.Rectangle
	dockspaces map[*Dockspace]image.Rectangle
	inner      image.Rectangle
}

// arrange lays out the auto hidden strips of the edges that have visible
// groups, and then the visible dockspaces in docking order, each taking
// its size from the area remaining inside the previous ones.
func (c *Control) arrange() *arrangement {
	a := &arrangement{strips: map[Edges]image.Rectangle{}, dockspaces: map[*Dockspace]image.Rectangle{}}
	rest := c.Host.ScreenBounds()
	opts := optionsOf(c)
	for _, edge := range controlEdges {
		if ah := c.EdgeAutoHidden(edge); ah != nil && ah.HasVisibleGroups() {
			a.strips[edge], rest = takeEdge(rest, edge, opts.AutoHiddenStripSize)
		}
	}
	for _, d := range c.order {
		if d.Visible() {
			a.dockspaces[d], rest = takeEdge(rest, d.Edge(), d.Size)
		}
	}
	a.inner = rest
	return a
}

// InnerRect returns the screen rectangle left inside the docked surfaces.
func (c *Control) InnerRect() image.Rectangle {
	return c.arrange().inner
}

// StripRect returns the screen rectangle of the auto hidden strip of the
// given edge, which is empty when the edge has no visible groups.
func (c *Control) StripRect(edge Edges) image.Rectangle {
	return c.arrange().strips[edge]
}

// EnforceInnerMinimum shrinks the visible dockspaces until the inner area is
// at least InnerMinimum in both dimensions, or every dockspace is at its
// minimum size.
func (c *Control) EnforceInnerMinimum() {
	if short := c.InnerMinimum.X - c.innerExtent(true); short > 0 {
		c.shrinkDockspaces(true, short)
	}
	if short := c.InnerMinimum.Y - c.innerExtent(false); short > 0 {
		c.shrinkDockspaces(false, short)
	}
}

// innerExtent returns the width (horizontal) or height the inner area would
// have if the strips and visible dockspaces of that axis were not clamped to
// the host. It is negative when they overflow the host.
func (c *Control) innerExtent(horizontal bool) int {
	screen := c.Host.ScreenBounds()
	extent := screen.Dy()
	if horizontal {
		extent = screen.Dx()
	}
	opts := optionsOf(c)
	for _, edge := range controlEdges {
		if isHorizontalEdge(edge) != horizontal {
			continue
		}
		if ah := c.EdgeAutoHidden(edge); ah != nil && ah.HasVisibleGroups() {
			extent -= opts.AutoHiddenStripSize
		}
	}
	for _, d := range c.order {
		if d.Visible() && isHorizontalEdge(d.Edge()) == horizontal {
			extent -= d.Size
		}
	}
	return extent
}

// shrinkDockspaces removes the given amount from the visible dockspaces that
// take width (horizontal) or height, spreading it evenly over the innermost
// ones first and dropping each that reaches its minimum size.
func (c *Control) shrinkDockspaces(horizontal bool, remove int) {
	var ds []*Dockspace
	for _, d := range c.order {
		if d.Visible() && isHorizontalEdge(d.Edge()) == horizontal {
			ds = append(ds, d)
		}
	}
	for remove > 0 && len(ds) > 0 {
		each := max(1, remove/len(ds))
		for i := len(ds) - 1; i >= 0; i-- {
			d := ds[i]
			if d.Size <= d.MinSize {
				ds = slices.Delete(ds, i, i+1)
				continue
			}
			size := max(d.MinSize, d.Size-each)
			remove -= d.Size - size
			d.Size = size
			if remove <= 0 {
				break
			}
		}
	}
}

func (c *Control) PropagateAction(action Actions, uniqueNames []string) {
	switch action {
	case StartUpdate:
		c.updates++
		if c.updates == 1 {
			c.Host.SuspendLayout()
		}
	case EndUpdate:
		if c.updates > 0 {
			c.updates--
			if c.updates == 0 {
				c.Host.ResumeLayout()
				c.EnforceInnerMinimum()
			}
		}
	case Loading:
		c.order = nil
		clear(c.loadedOrder)
	}
	c.ElementBase.PropagateAction(action, uniqueNames)
	switch action {
	case ShowPages, ShowAllPages:
		if c.updates == 0 {
			c.EnforceInnerMinimum()
		}
	}
}

// fillBounds returns the screen bounds of the fill element, if any.
func (c *Control) fillBounds() image.Rectangle {
	if b, ok := c.Fill.(interface{ ScreenBounds() image.Rectangle }); ok {
		return b.ScreenBounds()
	}
	return image.Rectangle{}
}

func (c *Control) PropagateDragTargets(floating *FloatingWindow, data *DragData, targets *[]*DragTarget) {
	if data.Allows(cells.AllowDocked) {
		screen := c.Host.ScreenBounds()
		hot := SubdivideRectangle(screen, 10, 20)
		draw := SubdivideRectangle(screen, 3, 0)
		for _, edge := range dropEdges {
			*targets = append(*targets, &DragTarget{
				ScreenRect: screen, HotRect: hot.Edge(edge), DrawRect: draw.Edge(edge),
				Edge: edge, ExcludeCluster: true, Element: c,
			})
		}
		inner := c.InnerRect()
		if c.Fill != nil {
			inner = c.fillBounds()
		} else if inner == screen {
			inner = image.Rectangle{}
		}
		if !inner.Empty() {
			hot := SubdivideRectangle(inner, 20, 20)
			draw := SubdivideRectangle(inner, 3, 0)
			for _, edge := range dropEdges {
				*targets = append(*targets, &DragTarget{
					ScreenRect: inner, HotRect: hot.Edge(edge), DrawRect: draw.Edge(edge),
					Edge: edge, Inner: true, Element: c,
				})
			}
		}
	}
	c.ElementBase.PropagateDragTargets(floating, data, targets)
}

func (c *Control) LoadElement(node *layoutxml.Element) error {
	if err := c.loadNamedChildren(node); err != nil {
		return err
	}
	if len(c.loadedOrder) > 0 {
		slices.SortStableFunc(c.order, func(a, b *Dockspace) int {
			oa, ok := c.loadedOrder[a]
			if !ok {
				oa = len(c.order)
			}
			ob, ok := c.loadedOrder[b]
			if !ok {
				ob = len(c.order)
			}
			return oa - ob
		})
		clear(c.loadedOrder)
	}
	return nil
}

// dockPages places pages in a new dockspace against the given edge, as the
// outermost of the whole control unless inner is set.
func (c *Control) dockPages(edge Edges, inner bool, pages []*cells.Page) *Dockspace {
	ed := c.EdgeDocked(edge)
	if ed == nil {
		return nil
	}
	var d *Dockspace
	if inner {
		d = ed.AppendDockspace()
	} else {
		d = ed.InsertDockspace(0)
		c.undock(d)
		c.order = slices.Insert(c.order, 0, d)
	}
	d.AppendCell(pages...)
	return d
}

// controlOf returns the control that the element is in, or nil.
func controlOf(el Element) *Control {
	if el == nil {
		return nil
	}
	return ParentByType[*Control](el)
}
