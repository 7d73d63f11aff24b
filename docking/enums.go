// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

//go:generate core generate

// Locations are the places where a page can reside.
// The location of a page is derived by querying the element tree;
// it is never stored on the page itself.
type Locations int32 //enums:enum -trim-prefix Location

const (
	// LocationNone is used for pages that are not in the tree.
	LocationNone Locations = iota

	// LocationDocked is used for pages in a dockspace against a control edge.
	LocationDocked

	// LocationAutoHidden is used for pages in an auto hidden group on a control edge.
	LocationAutoHidden

	// LocationFloating is used for pages in a floating window.
	LocationFloating

	// LocationWorkspace is used for pages in a workspace.
	LocationWorkspace

	// LocationNavigator is used for pages in a navigator.
	LocationNavigator

	// LocationCustom is used for pages in host specific elements.
	LocationCustom
)

// Edges are the edges of a control that docked and auto hidden
// elements attach to.
type Edges int32 //enums:enum -trim-prefix Edge

const (
	EdgeNone Edges = iota
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Actions are the structural and lifecycle actions that are broadcast
// through the element tree by [Element.PropagateAction].
type Actions int32 //enums:enum

const (
	// StartUpdate starts a batch of changes; see [MultiUpdate].
	StartUpdate Actions = iota

	// EndUpdate ends a batch of changes started by [StartUpdate].
	EndUpdate

	// ShowPages shows the named pages.
	ShowPages

	// HidePages hides the named pages.
	HidePages

	// ShowAllPages shows every page.
	ShowAllPages

	// HideAllPages hides every page.
	HideAllPages

	// RemovePages removes the named pages and their store pages.
	RemovePages

	// RemoveAndDisposePages removes and disposes the named pages.
	RemoveAndDisposePages

	// RemoveAllPages removes every page.
	RemoveAllPages

	// RemoveAndDisposeAllPages removes and disposes every page.
	RemoveAndDisposeAllPages

	// StorePages replaces the named live pages with store pages.
	StorePages

	// StoreAllPages replaces every live page with a store page.
	StoreAllPages

	// ClearStoredPages removes the store pages of the named pages.
	ClearStoredPages

	// ClearAllStoredPages removes every store page.
	ClearAllStoredPages

	// ClearDockedStoredPages removes the named store pages in dockspaces.
	ClearDockedStoredPages

	// ClearAutoHiddenStoredPages removes the named store pages in auto hidden groups.
	ClearAutoHiddenStoredPages

	// ClearFloatingStoredPages removes the named store pages in floating windows.
	ClearFloatingStoredPages

	// ClearWorkspaceStoredPages removes the named store pages in workspaces.
	ClearWorkspaceStoredPages

	// ClearNavigatorStoredPages removes the named store pages in navigators.
	ClearNavigatorStoredPages

	// Loading resets the tree before a layout is loaded.
	Loading

	// StringChanged notifies elements that display strings have changed.
	StringChanged
)

// BoolStates are the boolean queries answered by [Element.PropagateBoolState].
type BoolStates int32 //enums:enum

const (
	// ContainsPage is whether a live page with the unique name exists.
	ContainsPage BoolStates = iota

	// IsPageShowing is whether the live page with the unique name is shown.
	IsPageShowing

	// ContainsStorePage is whether a store page with the unique name exists.
	ContainsStorePage
)

// PageStates are the page queries answered by [Element.PropagatePageState].
type PageStates int32 //enums:enum

const (
	// PageForUniqueName finds the live page with the unique name.
	PageForUniqueName PageStates = iota
)

// PageLists are the filters used when collecting pages and cells
// with [Element.PropagatePageList] and [Element.PropagateCellList].
type PageLists int32 //enums:enum -trim-prefix List

const (
	ListAll PageLists = iota
	ListDocked
	ListAutoHidden
	ListFloating
	ListWorkspace
	ListNavigator
)

// Matches returns whether the filter accepts pages in the given location.
func (pl PageLists) Matches(loc Locations) bool {
	switch pl {
	case ListAll:
		return true
	case ListDocked:
		return loc == LocationDocked
	case ListAutoHidden:
		return loc == LocationAutoHidden
	case ListFloating:
		return loc == LocationFloating
	case ListWorkspace:
		return loc == LocationWorkspace
	case ListNavigator:
		return loc == LocationNavigator
	}
	return false
}

// CloseRequests are the outcomes of a request to close a page.
type CloseRequests int32 //enums:enum

const (
	// CloseNone leaves the page where it is.
	CloseNone CloseRequests = iota

	// RemovePage removes the page from the tree without disposing it.
	RemovePage

	// RemovePageAndDispose removes the page and disposes it.
	RemovePageAndDispose

	// HidePage hides the page, leaving it in place.
	HidePage
)

// ContainerKinds are the kinds of containers that raise
// [ContainerEvent]s when they are added or removed.
type ContainerKinds int32 //enums:enum -trim-prefix Container

const (
	ContainerAutoHiddenGroup ContainerKinds = iota
	ContainerAutoHiddenGroupPanel
	ContainerDockableWorkspace
	ContainerDockableWorkspaceCell
	ContainerDockableNavigator
	ContainerDockspace
	ContainerDockspaceCell
	ContainerDockspaceSeparator
	ContainerFloatspace
	ContainerFloatspaceCell
	ContainerFloatingWindow
)
