// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"

	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
)

// Workspace is a managed tabbed document area. Its pages are arranged
// in any number of cells within its bounds.
type Workspace struct {
	spaceBase

	// Bounds are the screen bounds of the workspace.
	Bounds image.Rectangle
}

func newWorkspace(name string, bounds image.Rectangle) *Workspace {
	w := &Workspace{Bounds: bounds}
	w.initSpace(w, name, LocationWorkspace, ContainerDockableWorkspaceCell, cells.Horizontal)
	return w
}

func (w *Workspace) XMLName() string { return "DW" }

// ScreenBounds returns the screen bounds of the workspace.
func (w *Workspace) ScreenBounds() image.Rectangle {
	return w.Bounds
}

func (w *Workspace) PropagateDragTargets(floating *FloatingWindow, data *DragData, targets *[]*DragTarget) {
	if data.Allows(cells.AllowWorkspace) && !w.Bounds.Empty() {
		if w.HasVisiblePages() {
			appendCellTargets(w, w.Layout, w.Bounds, targets)
		} else {
			*targets = append(*targets, &DragTarget{ScreenRect: w.Bounds, HotRect: w.Bounds, DrawRect: w.Bounds, Transfer: true, Element: w})
		}
	}
	w.spaceBase.PropagateDragTargets(floating, data, targets)
}

func (w *Workspace) SaveElement(parent *layoutxml.Element) {
	w.saveLayout(w.saveNode(parent))
}

func (w *Workspace) LoadElement(node *layoutxml.Element) error {
	return w.loadLayout(node)
}

// Navigator is a managed navigator area, which shows its pages in a
// single cell within its bounds.
type Navigator struct {
	spaceBase

	// Bounds are the screen bounds of the navigator.
	Bounds image.Rectangle
}

func newNavigator(name string, bounds image.Rectangle) *Navigator {
	n := &Navigator{Bounds: bounds}
	n.initSpace(n, name, LocationNavigator, ContainerDockableNavigator, cells.Vertical)
	n.singleCell = true
	return n
}

func (n *Navigator) XMLName() string { return "DN" }

// ScreenBounds returns the screen bounds of the navigator.
func (n *Navigator) ScreenBounds() image.Rectangle {
	return n.Bounds
}

func (n *Navigator) PropagateDragTargets(floating *FloatingWindow, data *DragData, targets *[]*DragTarget) {
	if data.Allows(cells.AllowNavigator) && !n.Bounds.Empty() {
		*targets = append(*targets, &DragTarget{ScreenRect: n.Bounds, HotRect: n.Bounds, DrawRect: n.Bounds, Transfer: true, Element: n, Cell: n.Layout.FirstCell()})
	}
	n.spaceBase.PropagateDragTargets(floating, data, targets)
}

func (n *Navigator) SaveElement(parent *layoutxml.Element) {
	n.saveLayout(n.saveNode(parent))
}

func (n *Navigator) LoadElement(node *layoutxml.Element) error {
	return n.loadLayout(node)
}
