// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/docking/cells"
)

// DragData is the set of pages being dragged.
type DragData struct {
	Pages []*cells.Page
}

// Allows returns whether any of the pages allows the given flag.
func (d *DragData) Allows(flag cells.Flags) bool {
	return slices.ContainsFunc(d.Pages, func(p *cells.Page) bool { return p.Allows(flag) })
}

// PagesAllowing returns the pages that allow the given flag.
func (d *DragData) PagesAllowing(flag cells.Flags) []*cells.Page {
	var pages []*cells.Page
	for _, p := range d.Pages {
		if p.Allows(flag) {
			pages = append(pages, p)
		}
	}
	return pages
}

// DragTarget is a place that dragged pages can be dropped on.
type DragTarget struct {

	// ScreenRect is the whole screen area the target belongs to.
	ScreenRect image.Rectangle

	// HotRect is the area the pointer must be in for the target to match.
	HotRect image.Rectangle

	// DrawRect is the area drawn to indicate the target.
	DrawRect image.Rectangle

	// Edge is the control edge that an edge target docks against.
	Edge Edges

	// Transfer is whether the target moves the pages into Cell of Element,
	// rather than docking them in a new dockspace.
	Transfer bool

	// ExcludeCluster is whether the target is left out of drag hint clusters.
	ExcludeCluster bool

	// Inner is whether an edge target is on the inner area of the control,
	// where pages are docked innermost rather than outermost.
	Inner bool

	// Element is the element the target belongs to.
	Element Element

	// Cell is the cell pages are transferred into, or nil for the
	// active cell of Element.
	Cell *cells.Cell
}

// IsMatch returns whether the given screen point is in the hot area.
func (t *DragTarget) IsMatch(pt image.Point) bool {
	return pt.In(t.HotRect)
}

// dropEdges are the edges that drag targets are made for.
var dropEdges = []Edges{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}

// DragTargets returns the drop targets for the given drag data in tree
// order, leaving out the given floating window that carries the pages.
func (m *Manager) DragTargets(floating *FloatingWindow, data *DragData) []*DragTarget {
	var targets []*DragTarget
	m.PropagateDragTargets(floating, data, &targets)
	return targets
}

// DragManager tracks an interactive drag of pages. Move is called as the
// pointer moves, and the drag finishes with either Drop or Quit.
type DragManager struct {
	manager *Manager

	// Data are the dragged pages.
	Data *DragData

	// Window is the floating window carrying the pages that can float,
	// or nil when none can.
	Window *FloatingWindow

	// Targets are the drop targets for the drag.
	Targets []*DragTarget

	// Current is the target under the pointer, or nil.
	Current *DragTarget

	done bool
}

// DoDragDropNames starts dragging the pages with the given unique names.
func (m *Manager) DoDragDropNames(screen image.Point, uniqueNames []string) (*DragManager, error) {
	if err := validateUniqueNames(uniqueNames); err != nil {
		return nil, err
	}
	pages := make([]*cells.Page, 0, len(uniqueNames))
	for _, nm := range uniqueNames {
		p, err := m.livePage(nm)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return m.DoDragDrop(screen, pages)
}

// DoDragDrop starts dragging the given pages from the given screen point.
// The pages that can float are first moved into a floating window at the
// point, reusing a hidden window that the first of them floated in before,
// and the hosts are laid out so that the drop targets reflect the move.
func (m *Manager) DoDragDrop(screen image.Point, pages []*cells.Page) (*DragManager, error) {
	if err := validatePages(pages); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	for _, p := range pages {
		if !m.ContainsPage(p.UniqueName) {
			return nil, ErrPageNotFound
		}
	}
	dm := &DragManager{manager: m, Data: &DragData{Pages: pages}}
	if floatable := dm.Data.PagesAllowing(cells.AllowFloating); len(floatable) > 0 {
		dm.Window = m.dragWindow(screen, floatable)
	}
	for _, c := range m.Controls() {
		c.Host.PerformLayout()
	}
	dm.Targets = m.DragTargets(dm.Window, dm.Data)
	m.listeners.dragStart.Call(&DragEvent{Pages: pages, Point: screen})
	return dm, nil
}

// dragWindow moves the given pages into the floating window that carries
// them during a drag, and returns it.
func (m *Manager) dragWindow(screen image.Point, pages []*cells.Page) *FloatingWindow {
	u := m.BeginUpdate()
	defer u.End()
	first := pages[0].UniqueName
	if s, ok := m.FindStorePageElement(LocationFloating, first).(*Floatspace); ok {
		if w := s.Window(); w != nil && !w.Visible() {
			m.transfer(first, pages, LocationFloating, func(rest []*cells.Page) pageSpace {
				s.Append(rest...)
				return s
			})
			w.Move(screen)
			return w
		}
	}
	if s, ok := m.FindPageElement(first).(*Floatspace); ok && s.holdsExactly(pages) {
		if w := s.Window(); w != nil {
			w.Move(screen)
			return w
		}
	}
	f := m.FindDockingFloating(first)
	if f == nil {
		return nil
	}
	m.PropagateAction(ClearFloatingStoredPages, cells.UniqueNames(pages))
	var w *FloatingWindow
	bounds := image.Rectangle{Min: screen, Max: screen.Add(m.Options.FloatingSize)}
	m.transfer(first, pages, LocationFloating, func(rest []*cells.Page) pageSpace {
		w = f.AddFloatingWindow(bounds)
		w.Floatspace.Append(rest...)
		return w.Floatspace
	})
	return w
}

// Move moves the drag to the given screen point, moving the floating window
// with it, and returns the target under the point, or nil.
func (dm *DragManager) Move(pt image.Point) *DragTarget {
	if dm.Window != nil {
		dm.Window.Move(pt)
	}
	dm.Current = nil
	for _, t := range dm.Targets {
		if t.IsMatch(pt) {
			dm.Current = t
			break
		}
	}
	return dm.Current
}

// Drop finishes the drag at the given screen point, moving the pages into
// the target under it. Without a target, the pages that could float stay in
// the floating window. It returns whether any page was placed.
func (dm *DragManager) Drop(pt image.Point) bool {
	if dm.done {
		return false
	}
	t := dm.Move(pt)
	dm.done = true
	m := dm.manager
	placed := dm.Window != nil
	if t != nil {
		placed = dm.dropOn(t)
	}
	m.listeners.dragEnd.Call(&DragEvent{Pages: dm.Data.Pages, Point: pt, Target: t})
	return placed
}

// dropOn moves the pages into the given target.
func (dm *DragManager) dropOn(t *DragTarget) bool {
	m := dm.manager
	u := m.BeginUpdate()
	defer u.End()
	if !t.Transfer {
		c, ok := t.Element.(*Control)
		if !ok {
			return false
		}
		pages := dm.Data.PagesAllowing(cells.AllowDocked)
		if len(pages) == 0 {
			return false
		}
		first := pages[0].UniqueName
		m.PropagateAction(ClearDockedStoredPages, cells.UniqueNames(pages))
		m.transfer(first, pages, LocationDocked, func(rest []*cells.Page) pageSpace {
			return c.dockPages(t.Edge, t.Inner, rest)
		})
		return true
	}
	s, ok := t.Element.(pageSpace)
	if !ok {
		slog.Warn("docking: drop target element cannot take pages", "element", t.Element.AsBase().Path())
		return false
	}
	loc := locationOf(s)
	var pages []*cells.Page
	for _, p := range dm.Data.PagesAllowing(locationFlag(loc)) {
		if m.FindPageElement(p.UniqueName) != s {
			pages = append(pages, p)
		}
	}
	if len(pages) == 0 {
		return false
	}
	m.PropagateAction(clearStoredAction(loc), cells.UniqueNames(pages))
	m.transfer(pages[0].UniqueName, pages, loc, func(rest []*cells.Page) pageSpace {
		c := t.Cell
		if c == nil || !slices.Contains(s.Cells(), c) {
			c = s.targetCell()
		}
		c.Append(rest...)
		return s
	})
	return true
}

// Quit abandons the drag. The pages that could float stay in the
// floating window.
func (dm *DragManager) Quit() {
	if dm.done {
		return
	}
	dm.done = true
	dm.manager.listeners.dragQuit.Call(&DragEvent{Pages: dm.Data.Pages})
}

// locationOf returns the location of the pages in the given space.
func locationOf(el Element) Locations {
	if s, ok := el.(interface{ Location() Locations }); ok {
		return s.Location()
	}
	return LocationNone
}

// locationFlag returns the page flag that allows the given location.
func locationFlag(loc Locations) cells.Flags {
	switch loc {
	case LocationDocked:
		return cells.AllowDocked
	case LocationAutoHidden:
		return cells.AllowAutoHidden
	case LocationFloating:
		return cells.AllowFloating
	case LocationWorkspace:
		return cells.AllowWorkspace
	case LocationNavigator:
		return cells.AllowNavigator
	}
	return 0
}
