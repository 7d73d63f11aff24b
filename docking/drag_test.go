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

func TestDragToOuterEdge(t *testing.T) {
	tm := newTestManager(t)
	_, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	existing, err := tm.AddDockspace("Main", EdgeTop, pages("B"))
	require.NoError(t, err)

	var events []string
	tm.OnDoDragDropStart(func(e *DragEvent) { events = append(events, "start") })
	tm.OnDoDragDropEnd(func(e *DragEvent) {
		events = append(events, "end")
		assert.NotNil(t, e.Target)
	})

	dm, err := tm.DoDragDropNames(image.Pt(500, 400), []string{"A"})
	require.NoError(t, err)
	require.NotNil(t, dm.Window)
	assert.Equal(t, LocationFloating, tm.FindPageLocation("A"))
	assert.Equal(t, image.Pt(500, 400), dm.Window.Bounds.Min)
	assert.Equal(t, 1, tm.panel.Layouts)
	for _, target := range dm.Targets {
		assert.NotEqual(t, dm.Window.Floatspace, target.Element)
	}

	target := dm.Move(image.Pt(5, 400))
	require.NotNil(t, target)
	assert.Equal(t, EdgeLeft, target.Edge)
	assert.False(t, target.Inner)
	assert.Equal(t, image.Pt(5, 400), dm.Window.Bounds.Min)

	assert.True(t, dm.Drop(image.Pt(5, 400)))
	assert.False(t, dm.Drop(image.Pt(5, 400)))
	assert.Equal(t, []string{"start", "end"}, events)

	assert.Equal(t, LocationDocked, tm.FindPageLocation("A"))
	d, ok := tm.FindPageElement("A").(*Dockspace)
	require.True(t, ok)
	assert.Equal(t, []*Dockspace{d, existing}, tm.control.Dockspaces())
	assert.Equal(t, []*Dockspace{d}, tm.control.EdgeDocked(EdgeLeft).Dockspaces())
}

func TestDragToInnerEdge(t *testing.T) {
	tm := newTestManager(t)
	outer, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	_, err = tm.AddFloatingWindow("Floating", pages("B"), image.Rect(600, 100, 900, 400))
	require.NoError(t, err)

	dm, err := tm.DoDragDropNames(image.Pt(600, 100), []string{"B"})
	require.NoError(t, err)
	target := dm.Move(image.Pt(205, 400))
	require.NotNil(t, target)
	assert.True(t, target.Inner)
	require.True(t, dm.Drop(image.Pt(205, 400)))

	d, ok := tm.FindPageElement("B").(*Dockspace)
	require.True(t, ok)
	assert.Equal(t, []*Dockspace{outer, d}, tm.control.Dockspaces())
	require.Len(t, tm.floating.Windows(), 1)
	assert.False(t, tm.floating.Windows()[0].Visible())
}

func TestDragIntoCell(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	_, err = tm.AddFloatingWindow("Floating", pages("B"), image.Rect(600, 100, 900, 400))
	require.NoError(t, err)

	dm, err := tm.DoDragDropNames(image.Pt(600, 100), []string{"B"})
	require.NoError(t, err)
	target := dm.Move(image.Pt(100, 400))
	require.NotNil(t, target)
	assert.True(t, target.Transfer)
	require.True(t, dm.Drop(image.Pt(100, 400)))

	assert.Equal(t, d, tm.FindPageElement("B"))
	assert.Equal(t, []string{"A", "B"}, cells.UniqueNames(d.Cells()[0].Pages))
	assert.Equal(t, "B", d.Cells()[0].Selected().UniqueName)
}

func TestDragQuitLeavesPagesFloating(t *testing.T) {
	tm := newTestManager(t)
	_, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	quit := 0
	tm.OnDoDragDropQuit(func(e *DragEvent) { quit++ })

	dm, err := tm.DoDragDropNames(image.Pt(500, 400), []string{"A"})
	require.NoError(t, err)
	assert.Nil(t, dm.Move(image.Pt(500, 400)))
	dm.Quit()
	dm.Quit()
	assert.Equal(t, 1, quit)
	assert.Equal(t, LocationFloating, tm.FindPageLocation("A"))
	assert.True(t, tm.ContainsStorePage("A"))
}

func TestDragReusesWindow(t *testing.T) {
	tm := newTestManager(t)
	w, err := tm.AddFloatingWindow("Floating", pages("A"), image.Rect(0, 0, 300, 300))
	require.NoError(t, err)

	dm, err := tm.DoDragDropNames(image.Pt(50, 60), []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, w, dm.Window)
	assert.Equal(t, image.Rect(50, 60, 350, 360), w.Bounds)
	assert.True(t, dm.Drop(image.Pt(500, 400)))
	assert.Nil(t, dm.Current)
	assert.Equal(t, image.Pt(500, 400), w.Bounds.Min)
	assert.Equal(t, w.Floatspace, tm.FindPageElement("A"))
}

func TestDragErrors(t *testing.T) {
	tm := newTestManager(t)
	_, err := tm.DoDragDropNames(image.Point{}, []string{""})
	assert.ErrorIs(t, err, ErrEmptyUniqueName)
	_, err = tm.DoDragDropNames(image.Point{}, []string{"Z"})
	assert.ErrorIs(t, err, ErrPageNotFound)
	_, err = tm.DoDragDrop(image.Point{}, nil)
	assert.ErrorIs(t, err, ErrNoPages)
	_, err = tm.DoDragDrop(image.Point{}, []*cells.Page{nil})
	assert.ErrorIs(t, err, ErrNilPage)
	_, err = tm.DoDragDrop(image.Point{}, pages("Z"))
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestDragDataAllows(t *testing.T) {
	ps := pages("A", "B")
	ps[0].Flags = cells.AllowDocked
	ps[1].Flags = cells.AllowDocked | cells.AllowFloating
	data := &DragData{Pages: ps}
	assert.True(t, data.Allows(cells.AllowFloating))
	assert.False(t, data.Allows(cells.AllowWorkspace))
	assert.Equal(t, []*cells.Page{ps[1]}, data.PagesAllowing(cells.AllowFloating))
}
