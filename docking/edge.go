// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/docking/layoutxml"
)

// Edge is one of the four edges of a [Control]. It holds the dockspaces
// docked against the edge and the auto hidden groups shown on it.
type Edge struct {
	ElementBase

	// Edge is which edge of the control this is.
	Edge Edges

	// Docked holds the dockspaces of the edge.
	Docked *EdgeDocked

	// AutoHidden holds the auto hidden groups of the edge.
	AutoHidden *EdgeAutoHidden
}

func newEdge(edge Edges) *Edge {
	e := &Edge{Edge: edge}
	initElement(e, edge.String())
	e.Docked = &EdgeDocked{Edge: edge}
	initElement(e.Docked, "Docked")
	e.AutoHidden = &EdgeAutoHidden{Edge: edge}
	initElement(e.AutoHidden, "AutoHidden")
	errors.Log(e.addChild(e.Docked))
	errors.Log(e.addChild(e.AutoHidden))
	return e
}

func (e *Edge) XMLName() string { return "DE" }

// EdgeDocked is the part of an [Edge] holding its dockspaces, ordered from
// the outermost, closest to the edge of the control, to the innermost.
type EdgeDocked struct {
	ElementBase

	// Edge is which edge of the control this is.
	Edge Edges
}

func (e *EdgeDocked) XMLName() string { return "DED" }

// Control returns the control of the edge.
func (e *EdgeDocked) Control() *Control {
	return ParentByType[*Control](e)
}

// Dockspaces returns the dockspaces from the outermost to the innermost.
func (e *EdgeDocked) Dockspaces() []*Dockspace {
	return ChildrenOfType[*Dockspace](e)
}

// AppendDockspace adds a new dockspace as the innermost one of the edge.
// It is docked inside every dockspace already in the control.
func (e *EdgeDocked) AppendDockspace() *Dockspace {
	return e.InsertDockspace(len(e.Children))
}

// InsertDockspace adds a new dockspace at the given index of the edge, where
// zero is the outermost. It is docked directly outside the dockspace that was
// at that index, or inside every dockspace of the control when the index is
// past the end.
func (e *EdgeDocked) InsertDockspace(index int) *Dockspace {
	return e.insertDockspaceNamed(index, managerOf(e).uniqueName(e, "Dockspace"))
}

func (e *EdgeDocked) insertDockspaceNamed(index int, name string) *Dockspace {
	index = min(max(index, 0), len(e.Children))
	d := newDockspace(name, e.Edge, optionsOf(e))
	var before *Dockspace
	if index < len(e.Children) {
		before, _ = e.Children[index].(*Dockspace)
	}
	if errors.Log(e.insertChild(d, index)) != nil {
		return nil
	}
	if c := e.Control(); c != nil {
		c.dock(d, before)
	}
	m := managerOf(e)
	m.containerAdded(ContainerDockspace, d, nil)
	m.containerAdded(ContainerDockspaceSeparator, d, nil)
	return d
}

// removeDockspace removes the given dockspace with all of its pages.
func (e *EdgeDocked) removeDockspace(d *Dockspace) {
	if !e.removeChild(d) {
		return
	}
	if c := e.Control(); c != nil {
		c.undock(d)
	}
	m := managerOf(e)
	for _, cl := range d.Cells() {
		m.containerRemoved(ContainerDockspaceCell, d, cl)
	}
	m.containerRemoved(ContainerDockspaceSeparator, d, nil)
	m.containerRemoved(ContainerDockspace, d, nil)
}

func (e *EdgeDocked) PropagateAction(action Actions, uniqueNames []string) {
	if action == Loading {
		for _, d := range e.Dockspaces() {
			e.removeDockspace(d)
		}
		return
	}
	e.ElementBase.PropagateAction(action, uniqueNames)
}

func (e *EdgeDocked) LoadElement(node *layoutxml.Element) error {
	for _, dn := range node.Children {
		if dn.Name != "DS" {
			logSkipped(e, dn)
			continue
		}
		name := dn.AttrString("N", "")
		if name == "" || e.ChildByName(name) != nil {
			name = managerOf(e).uniqueName(e, "Dockspace")
		}
		d := e.insertDockspaceNamed(len(e.Children), name)
		if d == nil {
			continue
		}
		if err := d.LoadElement(dn); err != nil {
			return err
		}
		o, err := dn.AttrInt("O", -1)
		if err != nil {
			return err
		}
		if c := e.Control(); c != nil && o >= 0 {
			c.loadedOrder[d] = o
		}
	}
	return nil
}

// EdgeAutoHidden is the part of an [Edge] holding its auto hidden groups.
type EdgeAutoHidden struct {
	ElementBase

	// Edge is which edge of the control this is.
	Edge Edges
}

func (e *EdgeAutoHidden) XMLName() string { return "DEAH" }

// Groups returns the auto hidden groups of the edge in order.
func (e *EdgeAutoHidden) Groups() []*AutoHiddenGroup {
	return ChildrenOfType[*AutoHiddenGroup](e)
}

// HasVisibleGroups returns whether any group of the edge shows a tab,
// which is when the edge strip is shown.
func (e *EdgeAutoHidden) HasVisibleGroups() bool {
	for _, g := range e.Groups() {
		if g.Visible() {
			return true
		}
	}
	return false
}

// AppendAutoHiddenGroup adds a new auto hidden group at the end of the edge.
func (e *EdgeAutoHidden) AppendAutoHiddenGroup() *AutoHiddenGroup {
	return e.InsertAutoHiddenGroup(len(e.Children))
}

// InsertAutoHiddenGroup adds a new auto hidden group at the given index.
func (e *EdgeAutoHidden) InsertAutoHiddenGroup(index int) *AutoHiddenGroup {
	return e.insertGroupNamed(index, managerOf(e).uniqueName(e, "AutoHiddenGroup"))
}

func (e *EdgeAutoHidden) insertGroupNamed(index int, name string) *AutoHiddenGroup {
	g := newAutoHiddenGroup(name, e.Edge, optionsOf(e))
	if errors.Log(e.insertChild(g, index)) != nil {
		return nil
	}
	m := managerOf(e)
	if len(e.Children) == 1 {
		m.containerAdded(ContainerAutoHiddenGroupPanel, e, nil)
	}
	m.containerAdded(ContainerAutoHiddenGroup, g, g.cell())
	return g
}

// removeGroup removes the given group with all of its pages.
func (e *EdgeAutoHidden) removeGroup(g *AutoHiddenGroup) {
	if !e.removeChild(g) {
		return
	}
	m := managerOf(e)
	if s := m.slid; s != nil && g.Layout.Live(s.UniqueName) != nil {
		m.slid = nil
	}
	m.containerRemoved(ContainerAutoHiddenGroup, g, nil)
	if len(e.Children) == 0 {
		m.containerRemoved(ContainerAutoHiddenGroupPanel, e, nil)
	}
}

func (e *EdgeAutoHidden) PropagateAction(action Actions, uniqueNames []string) {
	if action == Loading {
		for _, g := range e.Groups() {
			e.removeGroup(g)
		}
		return
	}
	e.ElementBase.PropagateAction(action, uniqueNames)
}

func (e *EdgeAutoHidden) LoadElement(node *layoutxml.Element) error {
	for _, gn := range node.Children {
		if gn.Name != "DAH" {
			logSkipped(e, gn)
			continue
		}
		name := gn.AttrString("N", "")
		if name == "" || e.ChildByName(name) != nil {
			name = managerOf(e).uniqueName(e, "AutoHiddenGroup")
		}
		g := e.insertGroupNamed(len(e.Children), name)
		if g == nil {
			continue
		}
		if err := g.LoadElement(gn); err != nil {
			return err
		}
	}
	return nil
}

// optionsOf returns the options of the manager of the element,
// or default options when it is not managed.
func optionsOf(el Element) *Options {
	if m := managerOf(el); m != nil && m.Options != nil {
		return m.Options
	}
	return NewOptions()
}
