// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"
	"log/slog"
	"strconv"

	"cogentcore.org/core/tree"
	"cogentcore.org/docking/cells"
)

// Manager is the root of a docking tree. It manages any number of controls,
// floating roots, workspaces, and navigators, and provides the public API
// for placing pages, moving them between locations, and saving and loading
// the layout.
//
// A Manager is not safe for concurrent use; all calls must be made from
// the goroutine that owns the user interface.
type Manager struct {
	ElementBase

	// Options are the configurable settings of the manager.
	Options *Options

	listeners listeners

	// updates is the nesting depth of update brackets.
	updates int

	// focused is the container that most recently received a page.
	focused Element

	// slid is the auto hidden page that is slid out, if any.
	slid *cells.Page

	// loading are the pages that existed before the current load,
	// by unique name.
	loading map[string]*cells.Page

	// placed are the unique names placed so far by the current load.
	placed map[string]bool

	// numNames is the number of generated element names.
	numNames int
}

// NewManager returns a new manager with default options.
func NewManager() *Manager {
	m := &Manager{Options: NewOptions()}
	initElement(m, "DockingManager")
	return m
}

func (m *Manager) XMLName() string { return "DM" }

// uniqueName returns a new element name with the given prefix
// that is not used by any child of the given parent.
func (m *Manager) uniqueName(parent Element, prefix string) string {
	for {
		m.numNames++
		name := prefix + strconv.Itoa(m.numNames)
		if parent.AsBase().ChildByName(name) == nil {
			return name
		}
	}
}

// ManageControl adds a new control for the given host surface.
func (m *Manager) ManageControl(name string, host Host) (*Control, error) {
	c := newControl(name, host, m.Options)
	if err := m.addChild(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ManageFloating adds a new root for floating windows.
func (m *Manager) ManageFloating(name string) (*Floating, error) {
	f := newFloating(name)
	if err := m.addChild(f); err != nil {
		return nil, err
	}
	return f, nil
}

// ManageWorkspace adds a new workspace with the given screen bounds.
func (m *Manager) ManageWorkspace(name string, bounds image.Rectangle) (*Workspace, error) {
	w := newWorkspace(name, bounds)
	if err := m.addChild(w); err != nil {
		return nil, err
	}
	m.containerAdded(ContainerDockableWorkspace, w, nil)
	return w, nil
}

// ManageNavigator adds a new navigator with the given screen bounds.
func (m *Manager) ManageNavigator(name string, bounds image.Rectangle) (*Navigator, error) {
	n := newNavigator(name, bounds)
	if err := m.addChild(n); err != nil {
		return nil, err
	}
	m.containerAdded(ContainerDockableNavigator, n, nil)
	return n, nil
}

// Controls returns the managed controls.
func (m *Manager) Controls() []*Control {
	return ChildrenOfType[*Control](m)
}

// Floatings returns the managed floating roots.
func (m *Manager) Floatings() []*Floating {
	return ChildrenOfType[*Floating](m)
}

// Workspaces returns the managed workspaces.
func (m *Manager) Workspaces() []*Workspace {
	return ChildrenOfType[*Workspace](m)
}

// Navigators returns the managed navigators.
func (m *Manager) Navigators() []*Navigator {
	return ChildrenOfType[*Navigator](m)
}

// BeginUpdate starts an update bracket and returns the guard that ends it.
// Empty containers are removed when the outermost bracket ends.
func (m *Manager) BeginUpdate() *MultiUpdate {
	return NewMultiUpdate(m)
}

func (m *Manager) PropagateAction(action Actions, uniqueNames []string) {
	switch action {
	case StartUpdate:
		m.updates++
	case EndUpdate:
		if m.updates > 0 {
			m.updates--
			if m.updates == 0 {
				m.tidy()
			}
		}
	case Loading:
		m.focused = nil
		m.slid = nil
	}
	m.ElementBase.PropagateAction(action, uniqueNames)
}

// tidy removes the empty cells of every space, and then the dockspaces,
// auto hidden groups, and floating windows that have no pages left.
func (m *Manager) tidy() {
	type removal func()
	var removals []removal
	m.WalkDown(func(n tree.Node) bool {
		switch el := n.(type) {
		case *Dockspace:
			el.compact()
			if el.isEmpty() {
				removals = append(removals, func() { el.EdgeDocked().removeDockspace(el) })
			}
			return tree.Break
		case *AutoHiddenGroup:
			if el.isEmpty() {
				removals = append(removals, func() { el.EdgeAutoHidden().removeGroup(el) })
			}
			return tree.Break
		case *FloatingWindow:
			el.Floatspace.compact()
			if el.Floatspace.isEmpty() {
				removals = append(removals, func() { ParentByType[*Floating](el).removeWindow(el) })
			}
			return tree.Break
		case *Workspace:
			el.compact()
			return tree.Break
		}
		return tree.Continue
	})
	for _, r := range removals {
		r()
	}
	if m.focused != nil && managerOf(m.focused) != m {
		m.focused = nil
	}
}

// loadingPage returns the page to place for the given unique name while
// loading a layout: the page that existed before the load, or else a page
// from [Manager.OnRecreateLoadingPage] listeners. It returns nil when the
// page cannot be provided, in which case it is left out of the layout.
func (m *Manager) loadingPage(uniqueName string) *cells.Page {
	if m == nil {
		return nil
	}
	if m.placed == nil {
		m.placed = map[string]bool{}
	}
	if m.placed[uniqueName] || m.ContainsPage(uniqueName) {
		slog.Warn("docking: ignoring saved page that is already placed", "page", uniqueName)
		return nil
	}
	p, ok := m.loading[uniqueName]
	if !ok {
		e := &RecreateLoadingPageEvent{UniqueName: uniqueName}
		m.listeners.recreateLoadingPage.Call(e)
		p = e.Page
	}
	if p == nil || p.UniqueName != uniqueName {
		slog.Debug("docking: leaving out saved page that cannot be recreated", "page", uniqueName)
		return nil
	}
	m.placed[uniqueName] = true
	return p
}

// FocusedElement returns the container that most recently received a page
// through a request, or nil.
func (m *Manager) FocusedElement() Element {
	return m.focused
}

// SlidePage slides out the auto hidden page with the given unique name,
// or slides in the current one when the name is empty.
func (m *Manager) SlidePage(uniqueName string) error {
	if uniqueName == "" {
		m.slid = nil
		return nil
	}
	el := m.FindPageElement(uniqueName)
	g, ok := el.(*AutoHiddenGroup)
	if !ok {
		return ErrPageNotFound
	}
	g.SelectPage(uniqueName)
	m.slid = g.Layout.Live(uniqueName)
	m.focused = g
	return nil
}

// SlidPage returns the auto hidden page that is slid out, or nil.
func (m *Manager) SlidPage() *cells.Page {
	if m.slid != nil && m.FindPageLocation(m.slid.UniqueName) != LocationAutoHidden {
		m.slid = nil
	}
	return m.slid
}

// SetStrings sets the display strings and updates the elements that show them.
func (m *Manager) SetStrings(s Strings) {
	m.Options.Strings = s
	m.PropagateAction(StringChanged, nil)
}
