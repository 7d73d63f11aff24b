// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"
	"testing"

	"cogentcore.org/docking/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatAndDockBack(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A", "B"))
	require.NoError(t, err)
	a := tm.PageForUniqueName("A")

	require.NoError(t, tm.MakeFloatingRequest("A"))
	assert.Equal(t, LocationFloating, tm.FindPageLocation("A"))
	assert.True(t, tm.ContainsStorePage("A"))
	require.Len(t, tm.floating.Windows(), 1)
	w := tm.floating.Windows()[0]
	assert.Equal(t, w.Floatspace, tm.FindPageElement("A"))
	assert.Equal(t, w.Floatspace, tm.FocusedElement())
	assert.Equal(t, image.Rect(0, 0, 300, 300), w.Bounds)
	assert.Equal(t, "B", d.Cells()[0].Selected().UniqueName)

	require.NoError(t, tm.MakeDockedRequest("A"))
	assert.Equal(t, LocationDocked, tm.FindPageLocation("A"))
	assert.Equal(t, d, tm.FindPageElement("A"))
	assert.Equal(t, a, d.Cells()[0].Pages[0])
	assert.Equal(t, a, d.Cells()[0].Selected())
	assert.False(t, w.Visible())

	require.NoError(t, tm.MakeFloatingRequest("A"))
	assert.Len(t, tm.floating.Windows(), 1)
	assert.Equal(t, w.Floatspace, tm.FindPageElement("A"))
}

func TestRequestInSameLocation(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	require.NoError(t, tm.MakeDockedRequest("A"))
	assert.Equal(t, d, tm.FindPageElement("A"))
	assert.False(t, tm.ContainsStorePage("A"))
}

func TestRequestErrors(t *testing.T) {
	tm := newTestManager(t)
	assert.ErrorIs(t, tm.MakeDockedRequest(""), ErrEmptyUniqueName)
	assert.ErrorIs(t, tm.MakeFloatingRequest("Z"), ErrPageNotFound)

	_, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	assert.ErrorIs(t, tm.MakeWorkspaceRequest("A"), ErrNoTarget)
	assert.ErrorIs(t, tm.MakeNavigatorRequest("A"), ErrNoTarget)
}

func TestRequestCancel(t *testing.T) {
	tm := newTestManager(t)
	ps := pages("A", "B")
	ps[1].Flags.Set(false, cells.AllowFloating)
	_, err := tm.AddDockspace("Main", EdgeLeft, ps)
	require.NoError(t, err)

	require.NoError(t, tm.MakeFloatingRequest("B"))
	assert.Equal(t, LocationDocked, tm.FindPageLocation("B"))

	var asked []string
	tm.OnPageFloatingRequest(func(e *CancelUniqueNameEvent) {
		asked = append(asked, e.UniqueName)
		e.Cancel = e.UniqueName == "A"
	})
	require.NoError(t, tm.MakeFloatingRequest("A"))
	assert.Equal(t, LocationDocked, tm.FindPageLocation("A"))

	require.NoError(t, tm.MakeFloatingRequest("B"))
	assert.Equal(t, LocationFloating, tm.FindPageLocation("B"))
	assert.Equal(t, []string{"A", "B"}, asked)
}

func TestListenerOrder(t *testing.T) {
	tm := newTestManager(t)
	_, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)

	var calls []int
	tm.OnPageAutoHiddenRequest(func(e *CancelUniqueNameEvent) { calls = append(calls, 1) })
	tm.OnPageAutoHiddenRequest(func(e *CancelUniqueNameEvent) {
		calls = append(calls, 2)
		e.SetHandled()
	})
	require.NoError(t, tm.MakeAutoHiddenRequest("A"))
	assert.Equal(t, []int{2}, calls)
	assert.Equal(t, LocationAutoHidden, tm.FindPageLocation("A"))
}

func TestSwitchDockedAndFloating(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A", "B"), pages("C"))
	require.NoError(t, err)

	require.NoError(t, tm.SwitchFloatingToDockedRequest("A"))
	assert.Equal(t, LocationDocked, tm.FindPageLocation("A"))

	require.NoError(t, tm.SwitchDockedToFloatingWindowRequest("A"))
	require.Len(t, tm.floating.Windows(), 1)
	s := tm.floating.Windows()[0].Floatspace
	assert.Equal(t, []string{"A", "B"}, cells.UniqueNames(s.Layout.LivePages()))
	assert.Equal(t, LocationDocked, tm.FindPageLocation("C"))

	require.NoError(t, tm.SwitchFloatingToDockedRequest("B"))
	first := d.Cells()[0]
	assert.Equal(t, []string{"A", "B"}, cells.UniqueNames(first.Pages))
	assert.Equal(t, "B", first.Selected().UniqueName)
	assert.Equal(t, d, tm.FocusedElement())
}

func TestSwitchDockedAndAutoHidden(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeRight, pages("A", "B"))
	require.NoError(t, err)
	require.NoError(t, tm.HidePage("B"))

	require.NoError(t, tm.SwitchDockedCellToAutoHiddenGroupRequest("A"))
	g, ok := tm.FindPageElement("A").(*AutoHiddenGroup)
	require.True(t, ok)
	assert.Equal(t, EdgeRight, g.Edge())
	assert.Equal(t, LocationDocked, tm.FindPageLocation("B"))
	assert.Equal(t, 24, tm.control.StripRect(EdgeRight).Dx())

	require.NoError(t, tm.SwitchAutoHiddenGroupToDockedCellRequest("A"))
	assert.Equal(t, d, tm.FindPageElement("A"))
	assert.Equal(t, []string{"A", "B"}, cells.UniqueNames(d.Cells()[0].Pages))
	assert.True(t, tm.control.StripRect(EdgeRight).Empty())
}

func TestMoveToWorkspaceAndNavigator(t *testing.T) {
	tm := newTestManager(t)
	ws, err := tm.ManageWorkspace("Docs", image.Rect(0, 0, 500, 500))
	require.NoError(t, err)
	nav, err := tm.ManageNavigator("Nav", image.Rect(0, 0, 200, 500))
	require.NoError(t, err)
	_, err = tm.AddDockspace("Main", EdgeLeft, pages("A", "B"))
	require.NoError(t, err)

	require.NoError(t, tm.MakeWorkspaceRequest("A"))
	assert.Equal(t, ws, tm.FindPageElement("A"))
	require.NoError(t, tm.MakeNavigatorRequest("B"))
	assert.Equal(t, nav, tm.FindPageElement("B"))
	require.NoError(t, tm.MakeNavigatorRequest("A"))
	assert.Len(t, nav.Cells(), 1)
	assert.Equal(t, []string{"B", "A"}, cells.UniqueNames(nav.Layout.LivePages()))

	require.NoError(t, tm.MakeWorkspaceRequest("A"))
	assert.Equal(t, ws, tm.FindPageElement("A"))
	assert.Len(t, ws.Cells(), 1)
}

func TestHiddenPageKeepsVisibilityWhenMoved(t *testing.T) {
	tm := newTestManager(t)
	_, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	require.NoError(t, tm.HidePage("A"))
	require.NoError(t, tm.MakeFloatingRequest("A"))
	assert.Equal(t, LocationFloating, tm.FindPageLocation("A"))
	assert.False(t, tm.IsPageShowing("A"))
}

func TestCloseRequest(t *testing.T) {
	tm := newTestManager(t)
	ps := pages("A", "B", "C")
	_, err := tm.AddDockspace("Main", EdgeLeft, ps)
	require.NoError(t, err)

	require.NoError(t, tm.CloseRequest(nil))
	assert.ErrorIs(t, tm.CloseRequest([]string{""}), ErrEmptyUniqueName)

	require.NoError(t, tm.CloseRequest([]string{"A", "Z"}))
	assert.True(t, tm.ContainsPage("A"))
	assert.False(t, tm.IsPageShowing("A"))

	tm.OnPageCloseRequest(func(e *CloseRequestEvent) {
		switch e.UniqueName {
		case "B":
			e.CloseRequest = RemovePageAndDispose
		case "C":
			e.CloseRequest = CloseNone
		}
	})
	require.NoError(t, tm.CloseRequest([]string{"B", "C"}))
	assert.False(t, tm.ContainsPage("B"))
	assert.True(t, ps[1].Disposed())
	assert.True(t, tm.IsPageShowing("C"))

	tm.Options.DefaultCloseRequest = RemovePage
	tm.OnPageCloseRequest(func(e *CloseRequestEvent) { e.SetHandled() })
	require.NoError(t, tm.CloseRequest([]string{"C"}))
	assert.False(t, tm.ContainsPage("C"))
	assert.False(t, ps[2].Disposed())
}
