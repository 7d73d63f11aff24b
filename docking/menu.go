// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"slices"

	"cogentcore.org/docking/cells"
)

// Menu is a context menu of page commands.
type Menu struct {
	Items []*MenuItem
}

// MenuItem is one command of a [Menu].
type MenuItem struct {

	// Text is the label of the item.
	Text string

	// Enabled is whether the item can be chosen.
	Enabled bool

	// Func performs the command.
	Func func() error
}

// Add adds a new item to the menu and returns it.
func (mn *Menu) Add(text string, enabled bool, fun func() error) *MenuItem {
	mi := &MenuItem{Text: text, Enabled: enabled, Func: fun}
	mn.Items = append(mn.Items, mi)
	return mi
}

// Item returns the item with the given text, or nil.
func (mn *Menu) Item(text string) *MenuItem {
	i := slices.IndexFunc(mn.Items, func(mi *MenuItem) bool { return mi.Text == text })
	if i < 0 {
		return nil
	}
	return mn.Items[i]
}

// Remove removes the item with the given text, returning whether there was one.
func (mn *Menu) Remove(text string) bool {
	n := len(mn.Items)
	mn.Items = slices.DeleteFunc(mn.Items, func(mi *MenuItem) bool { return mi.Text == text })
	return len(mn.Items) != n
}

// Run performs the command of the item if it is enabled.
func (mi *MenuItem) Run() error {
	if !mi.Enabled || mi.Func == nil {
		return nil
	}
	return mi.Func()
}

// PageContextMenu returns the context menu for the page with the given
// unique name, with items for moving, hiding, and closing it that are
// enabled by where the page is and what it allows. Listeners added with
// [Manager.OnShowPageContextMenu] can change the menu, or cancel it, in
// which case the returned menu is nil.
func (m *Manager) PageContextMenu(uniqueName string) (*Menu, error) {
	p, err := m.livePage(uniqueName)
	if err != nil {
		return nil, err
	}
	loc := m.FindPageLocation(uniqueName)
	can := func(target Locations, flag cells.Flags) bool {
		return loc != target && p.Allows(flag)
	}
	s := m.Options.Strings
	mn := &Menu{}
	mn.Add(s.Float, can(LocationFloating, cells.AllowFloating) && m.FindDockingFloating(uniqueName) != nil, func() error {
		if loc == LocationDocked {
			return m.SwitchDockedToFloatingWindowRequest(uniqueName)
		}
		return m.MakeFloatingRequest(uniqueName)
	})
	mn.Add(s.Dock, can(LocationDocked, cells.AllowDocked) && m.FindDockingEdgeDocked(uniqueName) != nil, func() error {
		switch loc {
		case LocationAutoHidden:
			return m.SwitchAutoHiddenGroupToDockedCellRequest(uniqueName)
		case LocationFloating:
			return m.SwitchFloatingToDockedRequest(uniqueName)
		}
		return m.MakeDockedRequest(uniqueName)
	})
	mn.Add(s.AutoHide, can(LocationAutoHidden, cells.AllowAutoHidden) && m.FindDockingEdgeAutoHidden(uniqueName) != nil, func() error {
		if loc == LocationDocked {
			return m.SwitchDockedCellToAutoHiddenGroupRequest(uniqueName)
		}
		return m.MakeAutoHiddenRequest(uniqueName)
	})
	mn.Add(s.Workspace, can(LocationWorkspace, cells.AllowWorkspace) && m.FindDockingWorkspace(uniqueName) != nil, func() error {
		return m.MakeWorkspaceRequest(uniqueName)
	})
	mn.Add(s.Navigator, can(LocationNavigator, cells.AllowNavigator) && m.FindDockingNavigator(uniqueName) != nil, func() error {
		return m.MakeNavigatorRequest(uniqueName)
	})
	mn.Add(s.Hide, p.Visible, func() error {
		return m.HidePage(uniqueName)
	})
	mn.Add(s.Close, p.Allows(cells.AllowClose), func() error {
		return m.CloseRequest([]string{uniqueName})
	})
	e := &ContextMenuEvent{UniqueName: uniqueName, Menu: mn}
	m.listeners.showPageContextMenu.Call(e)
	if e.Cancel {
		return nil, nil
	}
	return e.Menu, nil
}
