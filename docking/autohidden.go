// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
)

// AutoHiddenGroup is a group of auto hidden pages on an edge of a [Control].
// Its pages are shown as tabs in the edge strip and slide out on demand.
type AutoHiddenGroup struct {
	spaceBase

	// SlideSize is the extent of the panel that slides out
	// when a page of the group is shown.
	SlideSize int
}

func newAutoHiddenGroup(name string, edge Edges, opts *Options) *AutoHiddenGroup {
	g := &AutoHiddenGroup{SlideSize: opts.SlideSize}
	g.initSpace(g, name, LocationAutoHidden, ContainerAutoHiddenGroup, stackOrientation(edge))
	g.singleCell = true
	return g
}

func (g *AutoHiddenGroup) XMLName() string { return "DAH" }

// EdgeAutoHidden returns the edge element the group belongs to.
func (g *AutoHiddenGroup) EdgeAutoHidden() *EdgeAutoHidden {
	return ParentByType[*EdgeAutoHidden](g)
}

// Edge returns the control edge of the group.
func (g *AutoHiddenGroup) Edge() Edges {
	if e := g.EdgeAutoHidden(); e != nil {
		return e.Edge
	}
	return EdgeNone
}

// Visible returns whether the group shows any tab.
func (g *AutoHiddenGroup) Visible() bool {
	return g.HasVisiblePages()
}

// ResizeSlide changes the slide size of the group by the given amount, as
// done by dragging the separator of the slide panel. The new size is offered
// to [Manager.OnAutoHiddenSeparatorResize] listeners and kept within the
// control. It returns the new size.
func (g *AutoHiddenGroup) ResizeSlide(delta int) int {
	lo, hi := 0, g.SlideSize+max(delta, 0)
	if c := ParentByType[*Control](g); c != nil {
		b := c.Host.ScreenBounds()
		hi = b.Dx()
		if !isHorizontalEdge(g.Edge()) {
			hi = b.Dy()
		}
	}
	if m := managerOf(g); m != nil {
		lo = m.Options.DockspaceMinSize
	}
	hi = max(hi, lo)
	e := &SeparatorResizeEvent{Element: g, Size: g.SlideSize + delta, Minimum: lo, Maximum: hi}
	if m := managerOf(g); m != nil {
		m.listeners.autoHiddenSeparatorResize.Call(e)
	}
	g.SlideSize = min(max(e.Size, lo), hi)
	return g.SlideSize
}

func (g *AutoHiddenGroup) SaveElement(parent *layoutxml.Element) {
	node := g.saveNode(parent)
	node.SetAttrInt("S", g.SlideSize)
	g.saveLayout(node)
}

func (g *AutoHiddenGroup) LoadElement(node *layoutxml.Element) error {
	var err error
	if g.SlideSize, err = node.AttrInt("S", g.SlideSize); err != nil {
		return err
	}
	return g.loadLayout(node)
}

// cell returns the single cell of the group.
func (g *AutoHiddenGroup) cell() *cells.Cell {
	return g.targetCell()
}
