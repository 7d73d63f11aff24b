// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"slices"

	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
)

// spaceBase is the shared part of every element that arranges pages in a
// [cells.Layout]: dockspaces, auto hidden groups, floatspaces, workspaces,
// and navigators. It answers the page queries of the propagation protocol
// and implements the page actions against its layout.
type spaceBase struct {
	ElementBase

	// Layout is the cell layout that the pages are arranged in.
	Layout *cells.Layout

	// location is the location of the pages in this space,
	// and its name is the store name of store pages made here.
	location Locations

	// cellKind is the kind of container event raised for cells.
	cellKind ContainerKinds

	// singleCell is whether the space always has exactly one cell.
	singleCell bool
}

// initSpace sets up the space part of the given element.
func (s *spaceBase) initSpace(this Element, name string, location Locations, cellKind ContainerKinds, orientation cells.Orientations) {
	initElement(this, name)
	s.Layout = cells.NewLayout(orientation)
	s.location = location
	s.cellKind = cellKind
}

// Location returns the location of the pages in this space.
func (s *spaceBase) Location() Locations {
	return s.location
}

// storeName is the store name of store pages made in this space.
func (s *spaceBase) storeName() string {
	return s.location.String()
}

// HasVisiblePages returns whether the space shows any page.
func (s *spaceBase) HasVisiblePages() bool {
	return s.Layout.HasVisiblePages()
}

// VisiblePages returns the visible live pages in layout order.
func (s *spaceBase) VisiblePages() []*cells.Page {
	var pages []*cells.Page
	for _, c := range s.Layout.Cells() {
		pages = append(pages, c.VisiblePages()...)
	}
	return pages
}

// Cells returns the cells of the space.
func (s *spaceBase) Cells() []*cells.Cell {
	return s.Layout.Cells()
}

// CellForPage returns the cell containing the live page with the given
// unique name, or nil.
func (s *spaceBase) CellForPage(uniqueName string) *cells.Cell {
	c, _ := s.Layout.CellForLive(uniqueName)
	return c
}

// newCell adds a new cell with the given pages. Spaces with a single cell
// raise their container event for the space itself, not for the cell.
func (s *spaceBase) newCell(pages ...*cells.Page) *cells.Cell {
	c := s.Layout.NewCell(pages...)
	if !s.singleCell {
		managerOf(s.self()).containerAdded(s.cellKind, s.self(), c)
	}
	return c
}

// targetCell returns the cell new pages are appended to,
// creating it when the space has none.
func (s *spaceBase) targetCell() *cells.Cell {
	if c := s.Layout.FirstCell(); c != nil {
		return c
	}
	return s.newCell()
}

// Append appends the given pages to the first cell of the space.
func (s *spaceBase) Append(pages ...*cells.Page) {
	if len(pages) == 0 {
		return
	}
	s.targetCell().Append(pages...)
}

// AppendCell appends the given pages in a new cell. Spaces with a
// single cell append to that cell instead.
func (s *spaceBase) AppendCell(pages ...*cells.Page) *cells.Cell {
	if s.singleCell {
		c := s.targetCell()
		c.Append(pages...)
		return c
	}
	return s.newCell(pages...)
}

// SelectPage selects the live page with the given unique name.
func (s *spaceBase) SelectPage(uniqueName string) bool {
	c := s.CellForPage(uniqueName)
	if c == nil {
		return false
	}
	return c.Select(uniqueName)
}

// restorePage replaces the store page for the given page in this space with
// the page itself, at the same position. It returns false if there is no
// such store page.
func (s *spaceBase) restorePage(p *cells.Page) bool {
	c, i := s.Layout.CellForStore(p.UniqueName, s.storeName())
	if c == nil {
		return false
	}
	c.Replace(i, p)
	c.Refresh()
	return true
}

// detachPage removes the live page with the given unique name,
// keeping any store pages for it.
func (s *spaceBase) detachPage(uniqueName string) bool {
	c, i := s.Layout.CellForLive(uniqueName)
	if c == nil {
		return false
	}
	c.RemoveAt(i)
	return true
}

// removePages removes the pages accepted by the given function from every cell,
// disposing the live ones when asked to.
func (s *spaceBase) removePages(dispose bool, match func(p *cells.Page) bool) {
	for _, c := range s.Layout.Cells() {
		for i := len(c.Pages) - 1; i >= 0; i-- {
			p := c.Pages[i]
			if !match(p) {
				continue
			}
			c.RemoveAt(i)
			if dispose && !p.IsStore() {
				p.Dispose()
			}
		}
	}
}

// storePages replaces the live pages accepted by the given function
// with store pages.
func (s *spaceBase) storePages(match func(p *cells.Page) bool) {
	for _, c := range s.Layout.Cells() {
		for i, p := range c.Pages {
			if !p.IsStore() && match(p) {
				c.Replace(i, cells.NewStorePage(p.UniqueName, s.storeName()))
			}
		}
	}
}

// setVisible sets the visibility of the live pages accepted by the given function.
func (s *spaceBase) setVisible(visible bool, match func(p *cells.Page) bool) {
	for _, c := range s.Layout.Cells() {
		for _, p := range c.Pages {
			if !p.IsStore() && match(p) {
				p.Visible = visible
			}
		}
		c.Refresh()
	}
}

func (s *spaceBase) PropagateAction(action Actions, uniqueNames []string) {
	named := func(p *cells.Page) bool { return slices.Contains(uniqueNames, p.UniqueName) }
	live := func(p *cells.Page) bool { return !p.IsStore() }
	all := func(p *cells.Page) bool { return true }
	switch action {
	case ShowPages:
		s.setVisible(true, named)
	case HidePages:
		s.setVisible(false, named)
	case ShowAllPages:
		s.setVisible(true, all)
	case HideAllPages:
		s.setVisible(false, all)
	case RemovePages:
		s.removePages(false, named)
	case RemoveAndDisposePages:
		s.removePages(true, named)
	case RemoveAllPages:
		s.removePages(false, all)
	case RemoveAndDisposeAllPages:
		s.removePages(true, all)
	case StorePages:
		s.storePages(named)
	case StoreAllPages:
		s.storePages(all)
	case ClearStoredPages:
		s.removePages(false, func(p *cells.Page) bool { return p.IsStore() && named(p) })
	case ClearAllStoredPages:
		s.removePages(false, func(p *cells.Page) bool { return !live(p) })
	case ClearDockedStoredPages, ClearAutoHiddenStoredPages, ClearFloatingStoredPages,
		ClearWorkspaceStoredPages, ClearNavigatorStoredPages:
		if action == clearStoredAction(s.location) {
			s.removePages(false, func(p *cells.Page) bool { return p.IsStore() && named(p) })
		}
	case Loading:
		s.Layout.Clear()
	}
	s.ElementBase.PropagateAction(action, uniqueNames)
}

func (s *spaceBase) PropagateBoolState(state BoolStates, uniqueName string) (bool, bool) {
	switch state {
	case ContainsPage:
		if s.Layout.Live(uniqueName) != nil {
			return true, true
		}
	case IsPageShowing:
		if p := s.Layout.Live(uniqueName); p != nil {
			return p.Visible, true
		}
	case ContainsStorePage:
		if c, _ := s.Layout.CellForStore(uniqueName, ""); c != nil {
			return true, true
		}
	}
	return s.ElementBase.PropagateBoolState(state, uniqueName)
}

func (s *spaceBase) PropagatePageState(state PageStates, uniqueName string) *cells.Page {
	if state == PageForUniqueName {
		if p := s.Layout.Live(uniqueName); p != nil {
			return p
		}
	}
	return s.ElementBase.PropagatePageState(state, uniqueName)
}

func (s *spaceBase) PropagatePageList(filter PageLists, pages *[]*cells.Page) {
	if filter.Matches(s.location) {
		*pages = append(*pages, s.Layout.LivePages()...)
	}
	s.ElementBase.PropagatePageList(filter, pages)
}

func (s *spaceBase) PropagateCellList(filter PageLists, cs *[]*cells.Cell) {
	if filter.Matches(s.location) {
		*cs = append(*cs, s.Layout.Cells()...)
	}
	s.ElementBase.PropagateCellList(filter, cs)
}

func (s *spaceBase) FindPageLocation(uniqueName string) Locations {
	if s.Layout.Live(uniqueName) != nil {
		return s.location
	}
	return s.ElementBase.FindPageLocation(uniqueName)
}

func (s *spaceBase) FindPageElement(uniqueName string) Element {
	if s.Layout.Live(uniqueName) != nil {
		return s.self()
	}
	return s.ElementBase.FindPageElement(uniqueName)
}

func (s *spaceBase) FindStorePageElement(location Locations, uniqueName string) Element {
	if location == s.location {
		if c, _ := s.Layout.CellForStore(uniqueName, s.storeName()); c != nil {
			return s.self()
		}
	}
	return s.ElementBase.FindStorePageElement(location, uniqueName)
}

// compact removes the cells without pages, sending events for them.
func (s *spaceBase) compact() {
	if s.singleCell {
		return
	}
	m := managerOf(s.self())
	for _, c := range s.Layout.Compact() {
		m.containerRemoved(s.cellKind, s.self(), c)
	}
}

// isEmpty returns whether the space has no pages at all, live or stored.
func (s *spaceBase) isEmpty() bool {
	return s.Layout.NumPages() == 0
}

// saveLayout saves the cells and pages of the space into the given node.
func (s *spaceBase) saveLayout(node *layoutxml.Element) {
	m := managerOf(s.self())
	saveSequence(m, node, s.Layout.Root)
}

func saveSequence(m *Manager, parent *layoutxml.Element, seq *cells.Sequence) {
	sn := parent.AddChild("SEQ")
	sn.SetAttr("O", seq.Orientation.String())
	for _, it := range seq.Items {
		switch it := it.(type) {
		case *cells.Sequence:
			saveSequence(m, sn, it)
		case *cells.Cell:
			cn := sn.AddChild("WC")
			cn.SetAttr("N", it.Name)
			if sel := it.Selected(); sel != nil {
				cn.SetAttr("S", sel.UniqueName)
			}
			for _, p := range it.Pages {
				pn := cn.AddChild("KP")
				pn.SetAttr("UN", p.UniqueName)
				if p.IsStore() {
					pn.SetAttr("S", p.StoreName)
					continue
				}
				pn.SetAttrBool("V", p.Visible)
				if m != nil {
					cpd := layoutxml.New("CPD")
					m.listeners.pageSaving.Call(&PageXMLEvent{Page: p, Element: cpd})
					if len(cpd.Children) > 0 || len(cpd.Attrs) > 0 || cpd.Text != "" {
						pn.Children = append(pn.Children, cpd)
					}
				}
			}
		}
	}
}

// loadLayout loads the cells and pages of the space from the given node.
func (s *spaceBase) loadLayout(node *layoutxml.Element) error {
	s.Layout.Clear()
	sn := node.Child("SEQ")
	if sn == nil {
		return nil
	}
	m := managerOf(s.self())
	if err := loadSequence(m, s, sn, s.Layout.Root); err != nil {
		return err
	}
	if !s.singleCell {
		for _, c := range s.Layout.Cells() {
			m.containerAdded(s.cellKind, s.self(), c)
		}
	}
	return nil
}

func loadSequence(m *Manager, s *spaceBase, node *layoutxml.Element, seq *cells.Sequence) error {
	seq.Orientation = cells.ParseOrientation(node.AttrString("O", ""))
	for _, cn := range node.Children {
		switch cn.Name {
		case "SEQ":
			sub := &cells.Sequence{}
			seq.Items = append(seq.Items, sub)
			if err := loadSequence(m, s, cn, sub); err != nil {
				return err
			}
		case "WC":
			c := &cells.Cell{Name: cn.AttrString("N", "")}
			for _, pn := range cn.Children {
				if pn.Name != "KP" {
					continue
				}
				name := pn.AttrString("UN", "")
				if name == "" {
					return &FormatError{Msg: "page element without a unique name"}
				}
				if store, ok := pn.Attr("S"); ok {
					c.Pages = append(c.Pages, cells.NewStorePage(name, store))
					continue
				}
				p := m.loadingPage(name)
				if p == nil {
					continue
				}
				p.Visible = pn.AttrBool("V", true)
				if cpd := pn.Child("CPD"); cpd != nil {
					m.listeners.pageLoading.Call(&PageXMLEvent{Page: p, Element: cpd})
				}
				c.Pages = append(c.Pages, p)
			}
			if sel := cn.AttrString("S", ""); sel != "" {
				c.Select(sel)
			}
			c.Refresh()
			if c.Name == "" {
				c.Name = s.Layout.NextCellName()
			}
			seq.Items = append(seq.Items, c)
		}
	}
	return nil
}
