// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"cogentcore.org/docking/cells"
)

// Pages returns all of the live pages in the tree, in tree order.
func (m *Manager) Pages() []*cells.Page {
	return m.PagesFor(ListAll)
}

// PagesFor returns the live pages in the locations accepted by the filter.
func (m *Manager) PagesFor(filter PageLists) []*cells.Page {
	var pages []*cells.Page
	m.PropagatePageList(filter, &pages)
	return pages
}

// CellsFor returns the cells of the spaces accepted by the filter.
func (m *Manager) CellsFor(filter PageLists) []*cells.Cell {
	var cs []*cells.Cell
	m.PropagateCellList(filter, &cs)
	return cs
}

// ContainsPage returns whether a live page has the given unique name.
func (m *Manager) ContainsPage(uniqueName string) bool {
	v, _ := m.PropagateBoolState(ContainsPage, uniqueName)
	return v
}

// IsPageShowing returns whether the live page with the given unique name
// is visible.
func (m *Manager) IsPageShowing(uniqueName string) bool {
	v, _ := m.PropagateBoolState(IsPageShowing, uniqueName)
	return v
}

// ContainsStorePage returns whether any store page has the given unique name.
func (m *Manager) ContainsStorePage(uniqueName string) bool {
	v, _ := m.PropagateBoolState(ContainsStorePage, uniqueName)
	return v
}

// PageForUniqueName returns the live page with the given unique name, or nil.
func (m *Manager) PageForUniqueName(uniqueName string) *cells.Page {
	return m.PropagatePageState(PageForUniqueName, uniqueName)
}

// livePage returns the live page for the given unique name, checking the
// name first.
func (m *Manager) livePage(uniqueName string) (*cells.Page, error) {
	if uniqueName == "" {
		return nil, ErrEmptyUniqueName
	}
	p := m.PageForUniqueName(uniqueName)
	if p == nil {
		return nil, ErrPageNotFound
	}
	return p, nil
}

// The target finders look for the element that a page should be moved into
// for each location. Each looks first for a store page of that location
// left behind by the page, then for an element next to where the page is
// now, and then falls back on the first root of the right kind.

// FindDockingFloating returns the floating root to float the page in, or nil.
func (m *Manager) FindDockingFloating(uniqueName string) *Floating {
	if el := m.FindStorePageElement(LocationFloating, uniqueName); el != nil {
		if f := ParentByType[*Floating](el); f != nil {
			return f
		}
	}
	if el := m.FindPageElement(uniqueName); el != nil {
		if f := ParentByType[*Floating](el); f != nil {
			return f
		}
	}
	if fs := m.Floatings(); len(fs) > 0 {
		return fs[0]
	}
	return nil
}

// FindDockingEdgeDocked returns the edge to dock the page against, or nil.
func (m *Manager) FindDockingEdgeDocked(uniqueName string) *EdgeDocked {
	if d, ok := m.FindStorePageElement(LocationDocked, uniqueName).(*Dockspace); ok {
		if ed := d.EdgeDocked(); ed != nil {
			return ed
		}
	}
	switch el := m.FindPageElement(uniqueName).(type) {
	case *AutoHiddenGroup:
		if e := ParentByType[*Edge](el); e != nil {
			return e.Docked
		}
	case *Dockspace:
		if ed := el.EdgeDocked(); ed != nil {
			return ed
		}
	}
	if cs := m.Controls(); len(cs) > 0 {
		return cs[0].EdgeDocked(EdgeLeft)
	}
	return nil
}

// FindDockingEdgeAutoHidden returns the edge to auto hide the page on, or nil.
func (m *Manager) FindDockingEdgeAutoHidden(uniqueName string) *EdgeAutoHidden {
	if g, ok := m.FindStorePageElement(LocationAutoHidden, uniqueName).(*AutoHiddenGroup); ok {
		if eah := g.EdgeAutoHidden(); eah != nil {
			return eah
		}
	}
	switch el := m.FindPageElement(uniqueName).(type) {
	case *Dockspace:
		if e := ParentByType[*Edge](el); e != nil {
			return e.AutoHidden
		}
	case *AutoHiddenGroup:
		if eah := el.EdgeAutoHidden(); eah != nil {
			return eah
		}
	}
	if cs := m.Controls(); len(cs) > 0 {
		return cs[0].EdgeAutoHidden(EdgeLeft)
	}
	return nil
}

// FindDockingWorkspace returns the workspace to move the page into, or nil.
func (m *Manager) FindDockingWorkspace(uniqueName string) *Workspace {
	if w, ok := m.FindStorePageElement(LocationWorkspace, uniqueName).(*Workspace); ok {
		return w
	}
	for _, c := range m.Controls() {
		if w, ok := c.Fill.(*Workspace); ok && controlOf(m.FindPageElement(uniqueName)) == c {
			return w
		}
	}
	if ws := m.Workspaces(); len(ws) > 0 {
		return ws[0]
	}
	return nil
}

// FindDockingNavigator returns the navigator to move the page into, or nil.
func (m *Manager) FindDockingNavigator(uniqueName string) *Navigator {
	if n, ok := m.FindStorePageElement(LocationNavigator, uniqueName).(*Navigator); ok {
		return n
	}
	for _, c := range m.Controls() {
		if n, ok := c.Fill.(*Navigator); ok && controlOf(m.FindPageElement(uniqueName)) == c {
			return n
		}
	}
	if ns := m.Navigators(); len(ns) > 0 {
		return ns[0]
	}
	return nil
}
