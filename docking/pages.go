// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

// propagateNames checks the unique names and, unless there are none,
// propagates the action for them inside an update bracket.
func (m *Manager) propagateNames(action Actions, uniqueNames []string) error {
	if err := validateUniqueNames(uniqueNames); err != nil {
		return err
	}
	if len(uniqueNames) == 0 {
		return nil
	}
	u := m.BeginUpdate()
	defer u.End()
	m.PropagateAction(action, uniqueNames)
	return nil
}

// propagateAll propagates the given action for all pages inside an update bracket.
func (m *Manager) propagateAll(action Actions) {
	u := m.BeginUpdate()
	defer u.End()
	m.PropagateAction(action, nil)
}

// ShowPage shows the page with the given unique name.
func (m *Manager) ShowPage(uniqueName string) error {
	return m.ShowPages([]string{uniqueName})
}

// ShowPages shows the pages with the given unique names.
func (m *Manager) ShowPages(uniqueNames []string) error {
	return m.propagateNames(ShowPages, uniqueNames)
}

// ShowAllPages shows every page.
func (m *Manager) ShowAllPages() {
	m.propagateAll(ShowAllPages)
}

// HidePage hides the page with the given unique name.
func (m *Manager) HidePage(uniqueName string) error {
	return m.HidePages([]string{uniqueName})
}

// HidePages hides the pages with the given unique names.
func (m *Manager) HidePages(uniqueNames []string) error {
	return m.propagateNames(HidePages, uniqueNames)
}

// HideAllPages hides every page.
func (m *Manager) HideAllPages() {
	m.propagateAll(HideAllPages)
}

// RemovePage removes the page with the given unique name, along with any
// store pages for it, disposing the page when asked to.
func (m *Manager) RemovePage(uniqueName string, dispose bool) error {
	return m.RemovePages([]string{uniqueName}, dispose)
}

// RemovePages removes the pages with the given unique names, along with any
// store pages for them, disposing the pages when asked to.
func (m *Manager) RemovePages(uniqueNames []string, dispose bool) error {
	if dispose {
		return m.propagateNames(RemoveAndDisposePages, uniqueNames)
	}
	return m.propagateNames(RemovePages, uniqueNames)
}

// RemoveAllPages removes every page and store page,
// disposing the pages when asked to.
func (m *Manager) RemoveAllPages(dispose bool) {
	if dispose {
		m.propagateAll(RemoveAndDisposeAllPages)
		return
	}
	m.propagateAll(RemoveAllPages)
}

// StorePage replaces the page with the given unique name with a store page,
// which remembers its position until the page is placed again.
func (m *Manager) StorePage(uniqueName string) error {
	return m.StorePages([]string{uniqueName})
}

// StorePages replaces the pages with the given unique names with store pages.
func (m *Manager) StorePages(uniqueNames []string) error {
	return m.propagateNames(StorePages, uniqueNames)
}

// StoreAllPages replaces every page with a store page.
func (m *Manager) StoreAllPages() {
	m.propagateAll(StoreAllPages)
}

// ClearStoredPage removes the store pages for the given unique name.
func (m *Manager) ClearStoredPage(uniqueName string) error {
	return m.ClearStoredPages([]string{uniqueName})
}

// ClearStoredPages removes the store pages for the given unique names.
func (m *Manager) ClearStoredPages(uniqueNames []string) error {
	return m.propagateNames(ClearStoredPages, uniqueNames)
}

// ClearAllStoredPages removes every store page.
func (m *Manager) ClearAllStoredPages() {
	m.propagateAll(ClearAllStoredPages)
}

// clearStoredAction returns the action that clears the store pages
// of the given location.
func clearStoredAction(location Locations) Actions {
	switch location {
	case LocationDocked:
		return ClearDockedStoredPages
	case LocationAutoHidden:
		return ClearAutoHiddenStoredPages
	case LocationFloating:
		return ClearFloatingStoredPages
	case LocationWorkspace:
		return ClearWorkspaceStoredPages
	case LocationNavigator:
		return ClearNavigatorStoredPages
	}
	return ClearStoredPages
}
