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

// twoLeftDockspaces returns a manager with an outer and an inner dockspace
// on the left edge with the given sizes and minimum size.
func twoLeftDockspaces(t *testing.T, outer, inner, minSize int) (*testManager, *Dockspace, *Dockspace) {
	tm := newTestManager(t)
	d1, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	d2, err := tm.AddDockspace("Main", EdgeLeft, pages("B"))
	require.NoError(t, err)
	d1.Size, d1.MinSize = outer, minSize
	d2.Size, d2.MinSize = inner, minSize
	return tm, d1, d2
}

func TestEnforceInnerMinimum(t *testing.T) {
	tests := []struct {
		name                 string
		outer, inner, short  int
		wantOuter, wantInner int
	}{
		{"even", 100, 100, 30, 85, 85},
		{"uneven", 120, 60, 40, 90, 50},
		{"both at minimum", 100, 100, 120, 50, 50},
		{"enough room", 100, 100, 0, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, d1, d2 := twoLeftDockspaces(t, tt.outer, tt.inner, 50)
			free := 1000 - tt.outer - tt.inner
			tm.control.InnerMinimum = image.Pt(free+tt.short, 0)
			tm.control.EnforceInnerMinimum()
			assert.Equal(t, tt.wantOuter, d1.Size)
			assert.Equal(t, tt.wantInner, d2.Size)
		})
	}
}

func TestEnforceInnerMinimumOverflow(t *testing.T) {
	tm, d1, d2 := twoLeftDockspaces(t, 700, 700, 50)
	assert.Equal(t, 0, tm.control.InnerRect().Dx())

	tm.control.InnerMinimum = image.Pt(100, 0)
	tm.control.EnforceInnerMinimum()
	assert.Equal(t, 450, d1.Size)
	assert.Equal(t, 450, d2.Size)
	assert.GreaterOrEqual(t, tm.control.InnerRect().Dx(), 100)
	assert.Equal(t, image.Rect(900, 0, 1000, 800), tm.control.InnerRect())
}

func TestEnforceInnerMinimumSkipsOtherAxis(t *testing.T) {
	tm := newTestManager(t)
	left, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	top, err := tm.AddDockspace("Main", EdgeTop, pages("B"))
	require.NoError(t, err)

	tm.control.InnerMinimum = image.Pt(0, 700)
	tm.control.EnforceInnerMinimum()
	assert.Equal(t, 200, left.Size)
	assert.Equal(t, 100, top.Size)
}

func TestArrange(t *testing.T) {
	tm := newTestManager(t)
	left, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	top, err := tm.AddDockspace("Main", EdgeTop, pages("B"))
	require.NoError(t, err)
	_, err = tm.AddAutoHiddenGroup("Main", EdgeRight, pages("C"))
	require.NoError(t, err)

	c := tm.control
	assert.Equal(t, []*Dockspace{left, top}, c.Dockspaces())
	assert.Equal(t, image.Rect(976, 0, 1000, 800), c.StripRect(EdgeRight))
	assert.True(t, c.StripRect(EdgeLeft).Empty())
	assert.Equal(t, image.Rect(0, 0, 200, 800), left.ScreenRect())
	assert.Equal(t, image.Rect(200, 0, 976, 200), top.ScreenRect())
	assert.Equal(t, image.Rect(200, 200, 976, 800), c.InnerRect())
}

func TestDockspaceStacks(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A"), pages("B", "C"), nil)
	require.NoError(t, err)
	require.Len(t, d.Cells(), 2)
	assert.Equal(t, cells.Vertical, d.Layout.Root.Orientation)
	assert.Equal(t, []string{"B", "C"}, cells.UniqueNames(d.Cells()[1].Pages))

	top, err := tm.InsertDockspace("Main", EdgeTop, 0, pages("D"))
	require.NoError(t, err)
	assert.Equal(t, cells.Horizontal, top.Layout.Root.Orientation)
}

func TestSubdivideRectangle(t *testing.T) {
	s := SubdivideRectangle(image.Rect(0, 0, 1000, 800), 10, 20)
	assert.Equal(t, image.Rect(0, 0, 20, 800), s.Left)
	assert.Equal(t, image.Rect(980, 0, 1000, 800), s.Right)
	assert.Equal(t, image.Rect(0, 0, 1000, 20), s.Top)
	assert.Equal(t, image.Rect(0, 780, 1000, 800), s.Bottom)
	assert.Equal(t, image.Rect(20, 20, 980, 780), s.Center)

	s = SubdivideRectangle(image.Rect(0, 0, 900, 300), 3, 0)
	assert.Equal(t, image.Rect(0, 0, 300, 300), s.Edge(EdgeLeft))
	assert.Equal(t, image.Rect(0, 200, 900, 300), s.Edge(EdgeBottom))
	assert.True(t, s.Edge(EdgeNone).Empty())
}

func TestControlDragTargets(t *testing.T) {
	tm := newTestManager(t)
	data := &DragData{Pages: pages("X")}

	targets := tm.DragTargets(nil, data)
	require.Len(t, targets, 4)
	assert.Equal(t, EdgeLeft, targets[0].Edge)
	assert.Equal(t, image.Rect(0, 0, 20, 800), targets[0].HotRect)
	assert.Equal(t, image.Rect(0, 0, 333, 800), targets[0].DrawRect)
	assert.True(t, targets[0].ExcludeCluster)
	assert.False(t, targets[0].Transfer)

	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)
	targets = tm.DragTargets(nil, data)
	require.Len(t, targets, 9)
	inner := targets[4]
	assert.True(t, inner.Inner)
	assert.Equal(t, EdgeLeft, inner.Edge)
	assert.Equal(t, image.Rect(200, 0, 1000, 800), inner.ScreenRect)
	assert.Equal(t, image.Rect(200, 0, 220, 800), inner.HotRect)
	cell := targets[8]
	assert.True(t, cell.Transfer)
	assert.Equal(t, d, cell.Element)
	assert.Equal(t, d.Cells()[0], cell.Cell)
	assert.Equal(t, image.Rect(0, 0, 200, 800), cell.HotRect)

	noDock := cells.NewPage("Y", "")
	noDock.Flags.Set(false, cells.AllowDocked)
	assert.Empty(t, tm.DragTargets(nil, &DragData{Pages: []*cells.Page{noDock}}))
}

func TestFillDragTargets(t *testing.T) {
	tm := newTestManager(t)
	ws, err := tm.ManageWorkspace("Docs", image.Rect(100, 100, 900, 700))
	require.NoError(t, err)
	tm.control.Fill = ws

	targets := tm.DragTargets(nil, &DragData{Pages: pages("X")})
	require.Len(t, targets, 9)
	assert.Equal(t, image.Rect(100, 100, 900, 700), targets[4].ScreenRect)
	assert.True(t, targets[8].Transfer)
	assert.Equal(t, ws, targets[8].Element)
	assert.Nil(t, targets[8].Cell)
}

func TestDockspaceResize(t *testing.T) {
	tm := newTestManager(t)
	d, err := tm.AddDockspace("Main", EdgeLeft, pages("A"))
	require.NoError(t, err)

	assert.Equal(t, 250, d.Resize(50))
	assert.Equal(t, d.MinSize, d.Resize(-1000))
	assert.Equal(t, 900, d.Resize(2000))

	tm.OnDockspaceSeparatorResize(func(e *SeparatorResizeEvent) {
		e.Size = 300
	})
	assert.Equal(t, 300, d.Resize(1))
}

func TestAutoHiddenResizeSlide(t *testing.T) {
	tm := newTestManager(t)
	g, err := tm.AddAutoHiddenGroup("Main", EdgeTop, pages("A"))
	require.NoError(t, err)

	assert.Equal(t, 250, g.ResizeSlide(50))
	assert.Equal(t, 800, g.ResizeSlide(5000))
	assert.Equal(t, tm.Options.DockspaceMinSize, g.ResizeSlide(-5000))
}
