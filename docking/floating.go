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

// Floating is the root of the floating windows of an owner window.
type Floating struct {
	ElementBase
}

func newFloating(name string) *Floating {
	f := &Floating{}
	initElement(f, name)
	return f
}

func (f *Floating) XMLName() string { return "DF" }

// Windows returns the floating windows in order.
func (f *Floating) Windows() []*FloatingWindow {
	return ChildrenOfType[*FloatingWindow](f)
}

// AddFloatingWindow adds a new empty floating window with the given bounds.
// Empty bounds are replaced with the default floating size.
func (f *Floating) AddFloatingWindow(bounds image.Rectangle) *FloatingWindow {
	return f.addWindowNamed(managerOf(f).uniqueName(f, "FloatingWindow"), bounds)
}

func (f *Floating) addWindowNamed(name string, bounds image.Rectangle) *FloatingWindow {
	if bounds.Empty() {
		bounds = image.Rectangle{Min: bounds.Min, Max: bounds.Min.Add(optionsOf(f).FloatingSize)}
	}
	w := newFloatingWindow(name, bounds)
	if errors.Log(f.addChild(w)) != nil {
		return nil
	}
	m := managerOf(f)
	m.containerAdded(ContainerFloatingWindow, w, nil)
	m.containerAdded(ContainerFloatspace, w.Floatspace, nil)
	return w
}

// removeWindow closes the given floating window with all of its pages.
func (f *Floating) removeWindow(w *FloatingWindow) {
	if !f.removeChild(w) {
		return
	}
	m := managerOf(f)
	for _, cl := range w.Floatspace.Cells() {
		m.containerRemoved(ContainerFloatspaceCell, w.Floatspace, cl)
	}
	m.containerRemoved(ContainerFloatspace, w.Floatspace, nil)
	m.containerRemoved(ContainerFloatingWindow, w, nil)
}

func (f *Floating) PropagateAction(action Actions, uniqueNames []string) {
	if action == Loading {
		for _, w := range f.Windows() {
			f.removeWindow(w)
		}
		return
	}
	f.ElementBase.PropagateAction(action, uniqueNames)
}

func (f *Floating) LoadElement(node *layoutxml.Element) error {
	for _, wn := range node.Children {
		if wn.Name != "DFW" {
			logSkipped(f, wn)
			continue
		}
		name := wn.AttrString("N", "")
		if name == "" || f.ChildByName(name) != nil {
			name = managerOf(f).uniqueName(f, "FloatingWindow")
		}
		w := f.addWindowNamed(name, image.Rect(0, 0, 1, 1))
		if w == nil {
			continue
		}
		if err := w.LoadElement(wn); err != nil {
			return err
		}
	}
	return nil
}

// FloatingWindow is a top level window holding a single [Floatspace].
type FloatingWindow struct {
	ElementBase

	// Floatspace holds the pages of the window.
	Floatspace *Floatspace

	// Bounds are the screen bounds of the window.
	Bounds image.Rectangle

	// Title is the title shown by the window, which is the text of the
	// selected page when there is one.
	Title string
}

func newFloatingWindow(name string, bounds image.Rectangle) *FloatingWindow {
	w := &FloatingWindow{Bounds: bounds}
	initElement(w, name)
	w.Floatspace = &Floatspace{}
	w.Floatspace.initSpace(w.Floatspace, "Floatspace", LocationFloating, ContainerFloatspaceCell, cells.Horizontal)
	errors.Log(w.addChild(w.Floatspace))
	return w
}

func (w *FloatingWindow) XMLName() string { return "DFW" }

// Visible returns whether the window is shown, which is
// whenever it has a visible page.
func (w *FloatingWindow) Visible() bool {
	return w.Floatspace.HasVisiblePages()
}

// Move moves the window so that its top left corner is at the given point.
func (w *FloatingWindow) Move(pt image.Point) {
	w.Bounds = w.Bounds.Add(pt.Sub(w.Bounds.Min))
}

// updateTitle sets the title from the selected page of the first cell
// that has one, or the default window title.
func (w *FloatingWindow) updateTitle() {
	for _, c := range w.Floatspace.Cells() {
		if p := c.Selected(); p != nil {
			w.Title = p.Text
			return
		}
	}
	w.Title = optionsOf(w).Strings.WindowTitle
}

func (w *FloatingWindow) PropagateAction(action Actions, uniqueNames []string) {
	w.ElementBase.PropagateAction(action, uniqueNames)
	switch action {
	case EndUpdate, StringChanged, ShowPages, HidePages, ShowAllPages, HideAllPages:
		w.updateTitle()
	}
}

func (w *FloatingWindow) PropagateDragTargets(floating *FloatingWindow, data *DragData, targets *[]*DragTarget) {
	if w == floating {
		return
	}
	w.ElementBase.PropagateDragTargets(floating, data, targets)
}

func (w *FloatingWindow) SaveElement(parent *layoutxml.Element) {
	node := w.saveNode(parent)
	node.SetAttrInt("X", w.Bounds.Min.X)
	node.SetAttrInt("Y", w.Bounds.Min.Y)
	node.SetAttrInt("W", w.Bounds.Dx())
	node.SetAttrInt("H", w.Bounds.Dy())
	w.saveChildren(node)
}

func (w *FloatingWindow) LoadElement(node *layoutxml.Element) error {
	var x, y, wd, ht int
	var err error
	if x, err = node.AttrInt("X", w.Bounds.Min.X); err != nil {
		return err
	}
	if y, err = node.AttrInt("Y", w.Bounds.Min.Y); err != nil {
		return err
	}
	if wd, err = node.AttrInt("W", w.Bounds.Dx()); err != nil {
		return err
	}
	if ht, err = node.AttrInt("H", w.Bounds.Dy()); err != nil {
		return err
	}
	w.Bounds = image.Rect(x, y, x+wd, y+ht)
	if err := w.loadNamedChildren(node); err != nil {
		return err
	}
	w.updateTitle()
	return nil
}

// Floatspace is the cell layout of the pages of a [FloatingWindow].
type Floatspace struct {
	spaceBase
}

func (s *Floatspace) XMLName() string { return "FS" }

// Window returns the floating window of the floatspace.
func (s *Floatspace) Window() *FloatingWindow {
	return ParentByType[*FloatingWindow](s)
}

func (s *Floatspace) PropagateDragTargets(floating *FloatingWindow, data *DragData, targets *[]*DragTarget) {
	if w := s.Window(); w != nil && w.Visible() && data.Allows(cells.AllowFloating) {
		appendCellTargets(s, s.Layout, w.Bounds, targets)
	}
	s.spaceBase.PropagateDragTargets(floating, data, targets)
}

func (s *Floatspace) SaveElement(parent *layoutxml.Element) {
	s.saveLayout(s.saveNode(parent))
}

func (s *Floatspace) LoadElement(node *layoutxml.Element) error {
	return s.loadLayout(node)
}

// holdsExactly returns whether the live pages of the floatspace are
// exactly the given pages.
func (s *Floatspace) holdsExactly(pages []*cells.Page) bool {
	live := s.Layout.LivePages()
	if len(live) != len(pages) {
		return false
	}
	for _, p := range pages {
		if !slices.Contains(live, p) {
			return false
		}
	}
	return true
}
