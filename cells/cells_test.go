// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cells

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	f := AllowDocked | AllowFloating
	assert.True(t, f.Has(AllowDocked))
	assert.False(t, f.Has(AllowDocked|AllowClose))
	f.Set(true, AllowClose)
	assert.True(t, f.Has(AllowClose))
	f.Set(false, AllowDocked)
	assert.False(t, f.Has(AllowDocked))
	assert.Equal(t, "Floating|Close", f.String())
	assert.Equal(t, "None", Flags(0).String())
}

func TestCellSelection(t *testing.T) {
	a, b := NewPage("a", "A"), NewPage("b", "B")
	c := NewCell("c", a, b)
	assert.Equal(t, a, c.Selected())
	require.True(t, c.Select("b"))
	assert.Equal(t, b, c.Selected())

	c.Replace(1, NewStorePage("b", "Docked"))
	assert.Equal(t, a, c.Selected())
	assert.Equal(t, []*Page{a}, c.VisiblePages())
	assert.Equal(t, 1, c.IndexOfStore("b", "Docked"))
	assert.Equal(t, -1, c.IndexOfStore("b", "Floating"))
	assert.Equal(t, 1, c.IndexOfStore("b", ""))

	a.Visible = false
	c.Refresh()
	assert.Nil(t, c.Selected())
	assert.False(t, c.HasVisiblePages())
}

func TestCellInsertClamps(t *testing.T) {
	c := NewCell("c")
	a, b, d := NewPage("a", ""), NewPage("b", ""), NewPage("d", "")
	c.Insert(5, a)
	c.Insert(-1, b)
	c.Insert(1, d)
	assert.Equal(t, []string{"b", "d", "a"}, UniqueNames(c.Pages))
	assert.True(t, c.Remove(d))
	assert.False(t, c.Remove(d))
	assert.Equal(t, 1, c.IndexOfLive("a"))
}

func TestLayoutLookup(t *testing.T) {
	l := NewLayout(Vertical)
	c0 := l.NewCell(NewPage("a", ""))
	c1 := l.NewCell(NewPage("b", ""), NewStorePage("c", "Floating"))
	assert.Equal(t, "cell-0", c0.Name)
	assert.Equal(t, "cell-1", c1.Name)

	c, i := l.CellForLive("b")
	assert.Equal(t, c1, c)
	assert.Equal(t, 0, i)
	c, i = l.CellForStore("c", "Floating")
	assert.Equal(t, c1, c)
	assert.Equal(t, 1, i)
	assert.Nil(t, l.Live("c"))
	assert.Equal(t, 3, l.NumPages())
	assert.Equal(t, []string{"a", "b"}, UniqueNames(l.LivePages()))

	l.AddCell(&Cell{Name: "cell-2"})
	assert.Equal(t, "cell-3", l.NewCell().Name)
	removed := l.Compact()
	assert.Len(t, removed, 2)
	assert.Len(t, l.Cells(), 2)
}

func TestCellRects(t *testing.T) {
	l := NewLayout(Vertical)
	c0 := l.NewCell(NewPage("a", ""))
	c1 := l.NewCell(NewPage("b", ""))
	hidden := l.NewCell(NewStorePage("c", "Docked"))
	rects := l.CellRects(image.Rect(0, 0, 100, 301))
	assert.Equal(t, image.Rect(0, 0, 100, 150), rects[c0])
	assert.Equal(t, image.Rect(0, 150, 100, 301), rects[c1])
	_, ok := rects[hidden]
	assert.False(t, ok)
}
