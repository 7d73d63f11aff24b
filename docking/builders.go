// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/docking/cells"
)

// ErrNoPages is returned when a builder is given no pages.
var ErrNoPages = errors.New("docking: pages must not be empty")

// resolveAs resolves the given path to an element of type T, returning an
// [ElementTypeError] when it does not.
func resolveAs[T Element](m *Manager, path string) (T, error) {
	el := m.ResolvePath(path)
	if t, ok := el.(T); ok {
		return t, nil
	}
	var zero T
	e := &ElementTypeError{Path: path, Expected: fmt.Sprintf("%T", zero), Found: elementKind(el)}
	if el == nil {
		e.Suggestion = suggestPath(m, path)
	}
	return zero, e
}

// checkNewPages checks pages that are about to be added: they must be valid,
// and live pages must not already be in the tree or repeated.
func (m *Manager) checkNewPages(pages ...[]*cells.Page) error {
	seen := map[string]bool{}
	n := 0
	for _, ps := range pages {
		if err := validatePages(ps); err != nil {
			return err
		}
		for _, p := range ps {
			n++
			if p.IsStore() {
				continue
			}
			if seen[p.UniqueName] || m.ContainsPage(p.UniqueName) {
				return fmt.Errorf("%w: %q", ErrDuplicatePage, p.UniqueName)
			}
			seen[p.UniqueName] = true
		}
	}
	if n == 0 {
		return ErrNoPages
	}
	return nil
}

// AddDockspace adds a dockspace as the innermost one on the given edge of
// the control at the given path. The pages go into its first cell, and each
// list of stack pages goes into a further cell stacked along the edge.
func (m *Manager) AddDockspace(path string, edge Edges, pages []*cells.Page, stackPages ...[]*cells.Page) (*Dockspace, error) {
	return m.insertDockspace(path, edge, -1, pages, stackPages)
}

// InsertDockspace is like [Manager.AddDockspace] but inserts the dockspace
// at the given index of the edge, where zero is the outermost.
func (m *Manager) InsertDockspace(path string, edge Edges, index int, pages []*cells.Page, stackPages ...[]*cells.Page) (*Dockspace, error) {
	return m.insertDockspace(path, edge, index, pages, stackPages)
}

func (m *Manager) insertDockspace(path string, edge Edges, index int, pages []*cells.Page, stackPages [][]*cells.Page) (*Dockspace, error) {
	c, err := resolveAs[*Control](m, path)
	if err != nil {
		return nil, err
	}
	if !validEdge(edge) {
		return nil, ErrInvalidEdge
	}
	if err := m.checkNewPages(append([][]*cells.Page{pages}, stackPages...)...); err != nil {
		return nil, err
	}
	u := m.BeginUpdate()
	defer u.End()
	ed := c.EdgeDocked(edge)
	if index < 0 {
		index = len(ed.Children)
	}
	d := ed.InsertDockspace(index)
	d.AppendCell(pages...)
	for _, ps := range stackPages {
		if len(ps) > 0 {
			d.AppendCell(ps...)
		}
	}
	return d, nil
}

// AddAutoHiddenGroup adds an auto hidden group with the given pages at the
// end of the given edge of the control at the given path.
func (m *Manager) AddAutoHiddenGroup(path string, edge Edges, pages []*cells.Page) (*AutoHiddenGroup, error) {
	return m.insertAutoHiddenGroup(path, edge, -1, pages)
}

// InsertAutoHiddenGroup is like [Manager.AddAutoHiddenGroup] but inserts the
// group at the given index of the edge.
func (m *Manager) InsertAutoHiddenGroup(path string, edge Edges, index int, pages []*cells.Page) (*AutoHiddenGroup, error) {
	return m.insertAutoHiddenGroup(path, edge, index, pages)
}

func (m *Manager) insertAutoHiddenGroup(path string, edge Edges, index int, pages []*cells.Page) (*AutoHiddenGroup, error) {
	c, err := resolveAs[*Control](m, path)
	if err != nil {
		return nil, err
	}
	if !validEdge(edge) {
		return nil, ErrInvalidEdge
	}
	if err := m.checkNewPages(pages); err != nil {
		return nil, err
	}
	u := m.BeginUpdate()
	defer u.End()
	eah := c.EdgeAutoHidden(edge)
	if index < 0 {
		index = len(eah.Children)
	}
	g := eah.InsertAutoHiddenGroup(index)
	g.Append(pages...)
	return g, nil
}

// AddFloatingWindow adds a floating window with the given pages and bounds to
// the floating root at the given path. Empty bounds get the default size.
func (m *Manager) AddFloatingWindow(path string, pages []*cells.Page, bounds image.Rectangle) (*FloatingWindow, error) {
	f, err := resolveAs[*Floating](m, path)
	if err != nil {
		return nil, err
	}
	if err := m.checkNewPages(pages); err != nil {
		return nil, err
	}
	u := m.BeginUpdate()
	defer u.End()
	w := f.AddFloatingWindow(bounds)
	w.Floatspace.Append(pages...)
	return w, nil
}

// AddToWorkspace adds the given pages to the active cell of the workspace
// at the given path.
func (m *Manager) AddToWorkspace(path string, pages []*cells.Page) (*Workspace, error) {
	w, err := resolveAs[*Workspace](m, path)
	if err != nil {
		return nil, err
	}
	if err := m.checkNewPages(pages); err != nil {
		return nil, err
	}
	u := m.BeginUpdate()
	defer u.End()
	w.Append(pages...)
	return w, nil
}

// AddToNavigator adds the given pages to the navigator at the given path.
func (m *Manager) AddToNavigator(path string, pages []*cells.Page) (*Navigator, error) {
	n, err := resolveAs[*Navigator](m, path)
	if err != nil {
		return nil, err
	}
	if err := m.checkNewPages(pages); err != nil {
		return nil, err
	}
	u := m.BeginUpdate()
	defer u.End()
	n.Append(pages...)
	return n, nil
}
