// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"
	"testing"

	"cogentcore.org/core/tree"
	"cogentcore.org/docking/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testManager is a manager with one control named Main, a floating
// root named Floating, and the control's panel host.
type testManager struct {
	*Manager
	control  *Control
	floating *Floating
	panel    *Panel
}

func newTestManager(t *testing.T) *testManager {
	m := NewManager()
	panel := NewPanel(image.Rect(0, 0, 1000, 800))
	c, err := m.ManageControl("Main", panel)
	require.NoError(t, err)
	f, err := m.ManageFloating("Floating")
	require.NoError(t, err)
	return &testManager{Manager: m, control: c, floating: f, panel: panel}
}

func pages(names ...string) []*cells.Page {
	ps := make([]*cells.Page, len(names))
	for i, nm := range names {
		ps[i] = cells.NewPage(nm, nm)
	}
	return ps
}

func TestManageDuplicateName(t *testing.T) {
	tm := newTestManager(t)
	_, err := tm.ManageControl("Main", nil)
	var de *DuplicateNameError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Main", de.Name)
	assert.Len(t, tm.Controls(), 1)
}

func TestPaths(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)

	assert.Equal(t, "Main,Left,Docked,"+d.Name, d.Path())
	assert.Equal(t, d, tm.ResolvePath(d.Path()))
	assert.Equal(t, d, tm.ResolvePath(" Main , Left,Docked, "+d.Name))
	assert.Equal(t, tm.control.EdgeAutoHidden(EdgeTop), tm.ResolvePath("Main,Top,AutoHidden"))
	assert.Nil(t, tm.ResolvePath("Main,Middle"))
	assert.Nil(t, tm.ResolvePath(""))
	assert.Equal(t, "", tm.Path())
}

func TestDuplicateRootNames(t *testing.T) {
	m := NewManager()
	w, err := m.ManageWorkspace("Docs", image.Rect(0, 0, 10, 10))
	require.NoError(t, err)
	_, err = m.ManageNavigator("Docs", image.Rect(0, 0, 10, 10))
	assert.Error(t, err)
	assert.Empty(t, m.Navigators())
	assert.Equal(t, w, m.ResolvePath("Docs"))
}

func TestUniqueNames(t *testing.T) {
	tm := newTestManager(t)
	ed := tm.control.EdgeDocked(EdgeLeft)
	taken := ed.insertDockspaceNamed(0, "Dockspace1")
	d := ed.AppendDockspace()
	assert.NotEqual(t, taken.Name, d.Name)
	assert.Len(t, ed.Dockspaces(), 2)
}

func TestMultiUpdateNesting(t *testing.T) {
	tm := newTestManager(t)
	u1 := tm.BeginUpdate()
	u2 := tm.BeginUpdate()
	assert.True(t, tm.panel.IsSuspended())
	u2.End()
	assert.True(t, tm.panel.IsSuspended())
	u1.End()
	u1.End()
	assert.False(t, tm.panel.IsSuspended())
	assert.Equal(t, 1, tm.panel.Suspends)
	assert.Equal(t, 1, tm.panel.Resumes)
}

func TestTidyKeepsStorePages(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	require.NoError(t, tm.StorePage("A"))

	assert.False(t, tm.ContainsPage("A"))
	assert.True(t, tm.ContainsStorePage("A"))
	assert.Equal(t, d, tm.ResolvePath(d.Path()))
	assert.False(t, d.Visible())

	require.NoError(t, tm.ClearStoredPage("A"))
	assert.Nil(t, tm.ResolvePath(d.Path()))
	assert.Empty(t, tm.control.Dockspaces())
}

func TestContainerEvents(t *testing.T) {
	tm := newTestManager(t)
	var added, removed []ContainerKinds
	tm.OnContainerAdded(func(e *ContainerEvent) { added = append(added, e.Kind) })
	tm.OnContainerRemoved(func(e *ContainerEvent) { removed = append(removed, e.Kind) })

	_, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	assert.Equal(t, []ContainerKinds{ContainerDockspace, ContainerDockspaceSeparator, ContainerDockspaceCell}, added)

	added = nil
	_, err = tm.AddAutoHiddenGroup("Main", EdgeRight, pages("B"))
	require.NoError(t, err)
	assert.Equal(t, []ContainerKinds{ContainerAutoHiddenGroupPanel, ContainerAutoHiddenGroup}, added)

	require.NoError(t, tm.RemovePages([]string{"A", "B"}, false))
	assert.Equal(t, []ContainerKinds{ContainerDockspaceCell, ContainerDockspaceSeparator, ContainerDockspace, ContainerAutoHiddenGroup, ContainerAutoHiddenGroupPanel}, removed)
}

func TestShowHidePages(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A", "B"))
	require.NoError(t, err)

	require.NoError(t, tm.HidePage("A"))
	assert.False(t, tm.IsPageShowing("A"))
	assert.True(t, tm.IsPageShowing("B"))
	assert.Equal(t, "B", d.Cells()[0].Selected().UniqueName)

	tm.HideAllPages()
	assert.False(t, d.Visible())
	assert.Equal(t, tm.control.Host.ScreenBounds(), tm.control.InnerRect())

	require.NoError(t, tm.ShowPages(nil))
	require.NoError(t, tm.ShowPages([]string{}))
	assert.ErrorIs(t, tm.ShowPages([]string{""}), ErrEmptyUniqueName)

	tm.ShowAllPages()
	assert.True(t, tm.IsPageShowing("A"))
	assert.Equal(t, image.Rect(0, 0, 200, 800), d.ScreenRect())
}

func TestRemovePageDispose(t *testing.T) {
	tm := newTestManager(t)
	ps := pages("A", "B")
	_, err := tm.AddDockspace("Main", EdgeLeft, ps)
	require.NoError(t, err)

	require.NoError(t, tm.RemovePage("A", true))
	assert.True(t, ps[0].Disposed())
	assert.False(t, tm.ContainsPage("A"))

	tm.RemoveAllPages(false)
	assert.False(t, ps[1].Disposed())
	assert.Empty(t, tm.Pages())
	assert.Empty(t, tm.control.Dockspaces())
}

func TestPageQueries(t *testing.T) {
	tm := newTestManager(t)
	ws, err := tm.ManageWorkspace("Docs", image.Rect(0, 0, 500, 500))
	require.NoError(t, err)
	_, err = tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	_, err = tm.AddToWorkspace("Docs", pages("B"))
	require.NoError(t, err)
	_, err = tm.AddFloatingWindow("Floating", pages("C"), image.Rectangle{})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C", "B"}, cells.UniqueNames(tm.Pages()))
	assert.Equal(t, []string{"B"}, cells.UniqueNames(tm.PagesFor(ListWorkspace)))
	assert.Len(t, tm.CellsFor(ListFloating), 1)
	assert.Equal(t, LocationWorkspace, tm.FindPageLocation("B"))
	assert.Equal(t, ws, tm.FindPageElement("B"))
	assert.Equal(t, LocationNone, tm.FindPageLocation("Z"))
	assert.Nil(t, tm.PageForUniqueName("Z"))
}

func TestSlidePage(t *testing.T) {
	tm := newTestManager(t)
	_, err := tm.AddAutoHiddenGroup("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)

	assert.ErrorIs(t, tm.SlidePage("Z"), ErrPageNotFound)
	require.NoError(t, tm.SlidePage("A"))
	assert.Equal(t, "A", tm.SlidPage().UniqueName)

	require.NoError(t, tm.MakeDockedRequest("A"))
	assert.Nil(t, tm.SlidPage())
}

func TestSetStrings(t *testing.T) {
	tm := newTestManager(t)
	w, err := tm.AddFloatingWindow("Floating", pages("A"), image.Rectangle{})
	require.NoError(t, err)
	assert.Equal(t, "A", w.Title)
	assert.Equal(t, image.Rect(0, 0, 300, 300), w.Bounds)

	require.NoError(t, tm.HidePage("A"))
	assert.Equal(t, "Floating Window", w.Title)

	s := tm.Options.Strings
	s.WindowTitle = "Fenêtre"
	tm.SetStrings(s)
	assert.Equal(t, "Fenêtre", w.Title)
}

func TestElementTree(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	assert.Same(t, d, tm.ResolvePath(d.Path()))
	assert.Same(t, tm.control, ParentByType[*Control](d))
	assert.Same(t, tm.Manager, managerOf(d))

	typ := tm.NodeType()
	assert.Equal(t, "manager", typ.IDName)
	assert.Contains(t, typ.Doc, "Manager is the root of a docking tree.")
	assert.Equal(t, "dockspace", d.NodeType().IDName)

	var names []string
	tm.WalkDown(func(n tree.Node) bool {
		if _, ok := n.(*Dockspace); ok {
			names = append(names, n.AsTree().Name)
		}
		return tree.Continue
	})
	assert.Equal(t, []string{d.Name}, names)
}
