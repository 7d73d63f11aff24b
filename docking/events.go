// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"

	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
)

// Event is the interface satisfied by all docking events.
type Event interface {
	SetHandled()
	IsHandled() bool
}

// EventBase implements the handled state of an [Event].
type EventBase struct {
	handled bool
}

// SetHandled marks the event as handled, which stops
// any remaining listeners from being called.
func (e *EventBase) SetHandled() { e.handled = true }

// IsHandled returns whether the event has been handled.
func (e *EventBase) IsHandled() bool { return e.handled }

// Listeners is a list of listener functions for one kind of event.
// Listeners are called in reverse order, so that the last ones added
// are the first called, and calling stops once the event is handled.
type Listeners[E Event] []func(e E)

// Add adds the given listener.
func (ls *Listeners[E]) Add(fun func(e E)) {
	*ls = append(*ls, fun)
}

// Call calls the listeners with the given event.
func (ls Listeners[E]) Call(e E) {
	for i := len(ls) - 1; i >= 0; i-- {
		if e.IsHandled() {
			return
		}
		ls[i](e)
	}
}

// CancelUniqueNameEvent is a cancelable request concerning one page.
type CancelUniqueNameEvent struct {
	EventBase
	UniqueName string

	// Cancel is whether the request should be cancelled.
	// It starts out set when the page does not allow the request.
	Cancel bool
}

// CloseRequestEvent is sent when the user asks to close a page.
// Listeners may change CloseRequest to determine what happens.
type CloseRequestEvent struct {
	EventBase
	UniqueName   string
	CloseRequest CloseRequests
}

// XMLEvent is sent when the global custom data of a layout is saved or loaded.
// Saving listeners add children to Element; loading listeners read them.
type XMLEvent struct {
	EventBase
	Element *layoutxml.Element
}

// PageXMLEvent is sent when the custom data of a page is saved or loaded.
type PageXMLEvent struct {
	EventBase
	Page    *cells.Page
	Element *layoutxml.Element
}

// RecreateLoadingPageEvent is sent when a loaded layout names a page that
// does not exist. Listeners may set Page to a new page to place it.
type RecreateLoadingPageEvent struct {
	EventBase
	UniqueName string
	Page       *cells.Page
}

// PagesEvent carries a list of pages. For orphaned pages, listeners remove
// the pages they take back; the remaining pages are disposed.
type PagesEvent struct {
	EventBase
	Pages []*cells.Page
}

// ContainerEvent is sent when a container is added to or removed from the tree.
type ContainerEvent struct {
	EventBase
	Kind    ContainerKinds
	Element Element
	Cell    *cells.Cell
}

// SeparatorResizeEvent is sent when a separator is dragged to resize a
// dockspace or an auto hidden slide panel. Listeners may adjust Size,
// which is clamped to [Minimum, Maximum] afterwards.
type SeparatorResizeEvent struct {
	EventBase
	Element Element
	Size    int
	Minimum int
	Maximum int
}

// ContextMenuEvent is sent before the context menu of a page is shown.
// Listeners may edit the menu or cancel it.
type ContextMenuEvent struct {
	EventBase
	UniqueName string
	Menu       *Menu
	Cancel     bool
}

// DragEvent is sent when a drag of pages starts, ends with a drop, or quits.
type DragEvent struct {
	EventBase
	Pages  []*cells.Page
	Point  image.Point
	Target *DragTarget
}

// listeners are all of the event listeners of a [Manager].
type listeners struct {
	pageCloseRequest          Listeners[*CloseRequestEvent]
	pageDockedRequest         Listeners[*CancelUniqueNameEvent]
	pageAutoHiddenRequest     Listeners[*CancelUniqueNameEvent]
	pageFloatingRequest       Listeners[*CancelUniqueNameEvent]
	pageWorkspaceRequest      Listeners[*CancelUniqueNameEvent]
	pageNavigatorRequest      Listeners[*CancelUniqueNameEvent]
	globalSaving              Listeners[*XMLEvent]
	globalLoading             Listeners[*XMLEvent]
	pageSaving                Listeners[*PageXMLEvent]
	pageLoading               Listeners[*PageXMLEvent]
	orphanedPages             Listeners[*PagesEvent]
	recreateLoadingPage       Listeners[*RecreateLoadingPageEvent]
	containerAdded            Listeners[*ContainerEvent]
	containerRemoved          Listeners[*ContainerEvent]
	dockspaceSeparatorResize  Listeners[*SeparatorResizeEvent]
	autoHiddenSeparatorResize Listeners[*SeparatorResizeEvent]
	showPageContextMenu       Listeners[*ContextMenuEvent]
	dragStart                 Listeners[*DragEvent]
	dragEnd                   Listeners[*DragEvent]
	dragQuit                  Listeners[*DragEvent]
}

// OnPageCloseRequest adds a listener for requests to close a page.
func (m *Manager) OnPageCloseRequest(fun func(e *CloseRequestEvent)) {
	m.listeners.pageCloseRequest.Add(fun)
}

// OnPageDockedRequest adds a listener for requests to dock a page.
func (m *Manager) OnPageDockedRequest(fun func(e *CancelUniqueNameEvent)) {
	m.listeners.pageDockedRequest.Add(fun)
}

// OnPageAutoHiddenRequest adds a listener for requests to auto hide a page.
func (m *Manager) OnPageAutoHiddenRequest(fun func(e *CancelUniqueNameEvent)) {
	m.listeners.pageAutoHiddenRequest.Add(fun)
}

// OnPageFloatingRequest adds a listener for requests to float a page.
func (m *Manager) OnPageFloatingRequest(fun func(e *CancelUniqueNameEvent)) {
	m.listeners.pageFloatingRequest.Add(fun)
}

// OnPageWorkspaceRequest adds a listener for requests to move a page into a workspace.
func (m *Manager) OnPageWorkspaceRequest(fun func(e *CancelUniqueNameEvent)) {
	m.listeners.pageWorkspaceRequest.Add(fun)
}

// OnPageNavigatorRequest adds a listener for requests to move a page into a navigator.
func (m *Manager) OnPageNavigatorRequest(fun func(e *CancelUniqueNameEvent)) {
	m.listeners.pageNavigatorRequest.Add(fun)
}

// OnGlobalSaving adds a listener that writes global custom data when a layout is saved.
func (m *Manager) OnGlobalSaving(fun func(e *XMLEvent)) {
	m.listeners.globalSaving.Add(fun)
}

// OnGlobalLoading adds a listener that reads global custom data when a layout is loaded.
func (m *Manager) OnGlobalLoading(fun func(e *XMLEvent)) {
	m.listeners.globalLoading.Add(fun)
}

// OnPageSaving adds a listener that writes custom page data when a layout is saved.
func (m *Manager) OnPageSaving(fun func(e *PageXMLEvent)) {
	m.listeners.pageSaving.Add(fun)
}

// OnPageLoading adds a listener that reads custom page data when a layout is loaded.
func (m *Manager) OnPageLoading(fun func(e *PageXMLEvent)) {
	m.listeners.pageLoading.Add(fun)
}

// OnOrphanedPages adds a listener for pages that a loaded layout no longer places.
func (m *Manager) OnOrphanedPages(fun func(e *PagesEvent)) {
	m.listeners.orphanedPages.Add(fun)
}

// OnRecreateLoadingPage adds a listener that creates pages named by a loaded
// layout that do not exist.
func (m *Manager) OnRecreateLoadingPage(fun func(e *RecreateLoadingPageEvent)) {
	m.listeners.recreateLoadingPage.Add(fun)
}

// OnContainerAdded adds a listener for containers added to the tree.
func (m *Manager) OnContainerAdded(fun func(e *ContainerEvent)) {
	m.listeners.containerAdded.Add(fun)
}

// OnContainerRemoved adds a listener for containers removed from the tree.
func (m *Manager) OnContainerRemoved(fun func(e *ContainerEvent)) {
	m.listeners.containerRemoved.Add(fun)
}

// OnDockspaceSeparatorResize adds a listener for dockspace separator resizing.
func (m *Manager) OnDockspaceSeparatorResize(fun func(e *SeparatorResizeEvent)) {
	m.listeners.dockspaceSeparatorResize.Add(fun)
}

// OnAutoHiddenSeparatorResize adds a listener for auto hidden slide separator resizing.
func (m *Manager) OnAutoHiddenSeparatorResize(fun func(e *SeparatorResizeEvent)) {
	m.listeners.autoHiddenSeparatorResize.Add(fun)
}

// OnShowPageContextMenu adds a listener that can edit page context menus.
func (m *Manager) OnShowPageContextMenu(fun func(e *ContextMenuEvent)) {
	m.listeners.showPageContextMenu.Add(fun)
}

// OnDoDragDropStart adds a listener for the start of a page drag.
func (m *Manager) OnDoDragDropStart(fun func(e *DragEvent)) {
	m.listeners.dragStart.Add(fun)
}

// OnDoDragDropEnd adds a listener for the end of a page drag.
func (m *Manager) OnDoDragDropEnd(fun func(e *DragEvent)) {
	m.listeners.dragEnd.Add(fun)
}

// OnDoDragDropQuit adds a listener for a page drag that was abandoned.
func (m *Manager) OnDoDragDropQuit(fun func(e *DragEvent)) {
	m.listeners.dragQuit.Add(fun)
}

// containerAdded sends a [ContainerEvent] for an added container.
func (m *Manager) containerAdded(kind ContainerKinds, el Element, c *cells.Cell) {
	if m == nil {
		return
	}
	m.listeners.containerAdded.Call(&ContainerEvent{Kind: kind, Element: el, Cell: c})
}

// containerRemoved sends a [ContainerEvent] for a removed container.
func (m *Manager) containerRemoved(kind ContainerKinds, el Element, c *cells.Cell) {
	if m == nil {
		return
	}
	m.listeners.containerRemoved.Call(&ContainerEvent{Kind: kind, Element: el, Cell: c})
}
