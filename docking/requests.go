// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"

	"cogentcore.org/docking/cells"
)

// pageSpace is a space element that pages can be restored into.
type pageSpace interface {
	Element
	restorePage(p *cells.Page) bool
	SelectPage(uniqueName string) bool
	CellForPage(uniqueName string) *cells.Cell
	Cells() []*cells.Cell
	targetCell() *cells.Cell
	detachPage(uniqueName string) bool
}

// requestCanceled sends a cancelable request event for the page, which
// starts out canceled when the page does not allow the given flag,
// and returns whether the request ended up canceled.
func requestCanceled(ls Listeners[*CancelUniqueNameEvent], p *cells.Page, flag cells.Flags) bool {
	e := &CancelUniqueNameEvent{UniqueName: p.UniqueName, Cancel: !p.Allows(flag)}
	ls.Call(e)
	return e.Cancel
}

// transfer moves the given pages into the target location, as requested
// for the page with the given unique name. The current position of each
// page is kept as a store page, except for pages that are already in the
// target location, which are taken out of their cells. Pages with a store page in the target
// location are put back in its place, and the others join them, or go into
// a new space made by the create function when none could be put back.
func (m *Manager) transfer(uniqueName string, pages []*cells.Page, target Locations, create func(pages []*cells.Page) pageSpace) {
	u := m.BeginUpdate()
	defer u.End()

	var store []string
	for _, nm := range cells.UniqueNames(pages) {
		switch loc := m.FindPageLocation(nm); loc {
		case target:
			el := m.FindPageElement(nm)
			s, ok := el.(pageSpace)
			if !ok {
				expectPageElement(el, nm)
			}
			s.detachPage(nm)
			continue
		case LocationNone, LocationCustom:
		default:
			m.PropagateAction(clearStoredAction(loc), []string{nm})
		}
		store = append(store, nm)
	}
	if len(store) > 0 {
		m.PropagateAction(StorePages, store)
	}

	var dest pageSpace
	var anchor string
	var rest []*cells.Page
	for _, p := range pages {
		s, ok := m.FindStorePageElement(target, p.UniqueName).(pageSpace)
		if ok && s.restorePage(p) {
			if dest == nil || p.UniqueName == uniqueName {
				dest, anchor = s, p.UniqueName
			}
			continue
		}
		rest = append(rest, p)
	}
	if len(rest) > 0 {
		if dest != nil {
			dest.CellForPage(anchor).Append(rest...)
		} else {
			dest = create(rest)
		}
	}
	if dest == nil {
		return
	}
	dest.SelectPage(uniqueName)
	m.focused = dest
}

// movablePages returns the visible pages that allow the given flag,
// always including the requested page.
func movablePages(visible []*cells.Page, p *cells.Page, flag cells.Flags) []*cells.Page {
	pages := []*cells.Page{p}
	for _, vp := range visible {
		if vp != p && vp.Allows(flag) {
			pages = append(pages, vp)
		}
	}
	return pages
}

// MakeDockedRequest moves the page with the given unique name into a
// dockspace, back where it was last docked when possible.
// It does nothing when the page is already docked or the request is canceled
// by a [Manager.OnPageDockedRequest] listener.
func (m *Manager) MakeDockedRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	if m.FindPageLocation(uniqueName) == LocationDocked {
		return nil
	}
	if requestCanceled(m.listeners.pageDockedRequest, p, cells.AllowDocked) {
		return nil
	}
	ed := m.FindDockingEdgeDocked(uniqueName)
	if ed == nil {
		return ErrNoTarget
	}
	m.transfer(uniqueName, []*cells.Page{p}, LocationDocked, ed.createSpace)
	return nil
}

// MakeAutoHiddenRequest moves the page with the given unique name into an
// auto hidden group, back where it was last auto hidden when possible.
func (m *Manager) MakeAutoHiddenRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	if m.FindPageLocation(uniqueName) == LocationAutoHidden {
		return nil
	}
	if requestCanceled(m.listeners.pageAutoHiddenRequest, p, cells.AllowAutoHidden) {
		return nil
	}
	eah := m.FindDockingEdgeAutoHidden(uniqueName)
	if eah == nil {
		return ErrNoTarget
	}
	m.transfer(uniqueName, []*cells.Page{p}, LocationAutoHidden, eah.createSpace)
	return nil
}

// MakeFloatingRequest moves the page with the given unique name into a
// floating window, back where it last floated when possible.
func (m *Manager) MakeFloatingRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	if m.FindPageLocation(uniqueName) == LocationFloating {
		return nil
	}
	if requestCanceled(m.listeners.pageFloatingRequest, p, cells.AllowFloating) {
		return nil
	}
	f := m.FindDockingFloating(uniqueName)
	if f == nil {
		return ErrNoTarget
	}
	m.transfer(uniqueName, []*cells.Page{p}, LocationFloating, f.createSpace(m.floatingBounds(uniqueName)))
	return nil
}

// MakeWorkspaceRequest moves the page with the given unique name into a
// workspace, back where it last was in one when possible.
func (m *Manager) MakeWorkspaceRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	if m.FindPageLocation(uniqueName) == LocationWorkspace {
		return nil
	}
	if requestCanceled(m.listeners.pageWorkspaceRequest, p, cells.AllowWorkspace) {
		return nil
	}
	w := m.FindDockingWorkspace(uniqueName)
	if w == nil {
		return ErrNoTarget
	}
	m.transfer(uniqueName, []*cells.Page{p}, LocationWorkspace, w.createSpace)
	return nil
}

// MakeNavigatorRequest moves the page with the given unique name into a
// navigator, back where it last was in one when possible.
func (m *Manager) MakeNavigatorRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	if m.FindPageLocation(uniqueName) == LocationNavigator {
		return nil
	}
	if requestCanceled(m.listeners.pageNavigatorRequest, p, cells.AllowNavigator) {
		return nil
	}
	n := m.FindDockingNavigator(uniqueName)
	if n == nil {
		return ErrNoTarget
	}
	m.transfer(uniqueName, []*cells.Page{p}, LocationNavigator, n.createSpace)
	return nil
}

// SwitchAutoHiddenGroupToDockedCellRequest docks the visible pages of the
// auto hidden group holding the page with the given unique name.
// It does nothing when the page is not auto hidden.
func (m *Manager) SwitchAutoHiddenGroupToDockedCellRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	g, ok := m.FindPageElement(uniqueName).(*AutoHiddenGroup)
	if !ok {
		return nil
	}
	if requestCanceled(m.listeners.pageDockedRequest, p, cells.AllowDocked) {
		return nil
	}
	ed := m.FindDockingEdgeDocked(uniqueName)
	if ed == nil {
		return ErrNoTarget
	}
	m.transfer(uniqueName, movablePages(g.VisiblePages(), p, cells.AllowDocked), LocationDocked, ed.createSpace)
	return nil
}

// SwitchDockedCellToAutoHiddenGroupRequest auto hides the visible pages of
// the docked cell holding the page with the given unique name.
// It does nothing when the page is not docked.
func (m *Manager) SwitchDockedCellToAutoHiddenGroupRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	d, ok := m.FindPageElement(uniqueName).(*Dockspace)
	if !ok {
		return nil
	}
	if requestCanceled(m.listeners.pageAutoHiddenRequest, p, cells.AllowAutoHidden) {
		return nil
	}
	eah := m.FindDockingEdgeAutoHidden(uniqueName)
	if eah == nil {
		return ErrNoTarget
	}
	visible := d.CellForPage(uniqueName).VisiblePages()
	m.transfer(uniqueName, movablePages(visible, p, cells.AllowAutoHidden), LocationAutoHidden, eah.createSpace)
	return nil
}

// SwitchDockedToFloatingWindowRequest floats the visible pages of the docked
// cell holding the page with the given unique name.
// It does nothing when the page is not docked.
func (m *Manager) SwitchDockedToFloatingWindowRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	d, ok := m.FindPageElement(uniqueName).(*Dockspace)
	if !ok {
		return nil
	}
	if requestCanceled(m.listeners.pageFloatingRequest, p, cells.AllowFloating) {
		return nil
	}
	f := m.FindDockingFloating(uniqueName)
	if f == nil {
		return ErrNoTarget
	}
	visible := d.CellForPage(uniqueName).VisiblePages()
	m.transfer(uniqueName, movablePages(visible, p, cells.AllowFloating), LocationFloating, f.createSpace(m.floatingBounds(uniqueName)))
	return nil
}

// SwitchFloatingToDockedRequest docks the visible pages of the floating
// window holding the page with the given unique name.
// It does nothing when the page is not floating.
func (m *Manager) SwitchFloatingToDockedRequest(uniqueName string) error {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return err
	}
	s, ok := m.FindPageElement(uniqueName).(*Floatspace)
	if !ok {
		return nil
	}
	if requestCanceled(m.listeners.pageDockedRequest, p, cells.AllowDocked) {
		return nil
	}
	ed := m.FindDockingEdgeDocked(uniqueName)
	if ed == nil {
		return ErrNoTarget
	}
	m.transfer(uniqueName, movablePages(s.VisiblePages(), p, cells.AllowDocked), LocationDocked, ed.createSpace)
	return nil
}

// CloseRequest asks to close the pages with the given unique names. For each
// page, [Manager.OnPageCloseRequest] listeners can change the suggested
// [Options.DefaultCloseRequest], and then the chosen action is performed.
// Names without a live page are ignored.
func (m *Manager) CloseRequest(uniqueNames []string) error {
	if err := validateUniqueNames(uniqueNames); err != nil {
		return err
	}
	if len(uniqueNames) == 0 {
		return nil
	}
	u := m.BeginUpdate()
	defer u.End()
	for _, nm := range uniqueNames {
		if !m.ContainsPage(nm) {
			continue
		}
		e := &CloseRequestEvent{UniqueName: nm, CloseRequest: m.Options.DefaultCloseRequest}
		m.listeners.pageCloseRequest.Call(e)
		switch e.CloseRequest {
		case RemovePage:
			m.PropagateAction(RemovePages, []string{nm})
		case RemovePageAndDispose:
			m.PropagateAction(RemoveAndDisposePages, []string{nm})
		case HidePage:
			m.PropagateAction(HidePages, []string{nm})
		}
	}
	return nil
}

// floatingBounds returns the bounds for a new floating window for the page,
// placed over where the page is now.
func (m *Manager) floatingBounds(uniqueName string) image.Rectangle {
	var at image.Point
	switch el := m.FindPageElement(uniqueName).(type) {
	case *Dockspace:
		at = el.ScreenRect().Min
	case *Workspace:
		at = el.Bounds.Min
	case *Navigator:
		at = el.Bounds.Min
	case *AutoHiddenGroup:
		if c := controlOf(el); c != nil {
			at = c.Host.ScreenBounds().Min
		}
	case nil, *Floatspace:
	default:
		expectPageElement(el, uniqueName)
	}
	return image.Rectangle{Min: at, Max: at.Add(m.Options.FloatingSize)}
}

func (e *EdgeDocked) createSpace(pages []*cells.Page) pageSpace {
	d := e.AppendDockspace()
	d.AppendCell(pages...)
	return d
}

func (e *EdgeAutoHidden) createSpace(pages []*cells.Page) pageSpace {
	g := e.AppendAutoHiddenGroup()
	g.Append(pages...)
	return g
}

// createSpace returns a function that floats pages in a new window
// with the given bounds.
func (f *Floating) createSpace(bounds image.Rectangle) func(pages []*cells.Page) pageSpace {
	return func(pages []*cells.Page) pageSpace {
		w := f.AddFloatingWindow(bounds)
		w.Floatspace.Append(pages...)
		return w.Floatspace
	}
}

func (w *Workspace) createSpace(pages []*cells.Page) pageSpace {
	w.Append(pages...)
	return w
}

func (n *Navigator) createSpace(pages []*cells.Page) pageSpace {
	n.Append(pages...)
	return n
}
