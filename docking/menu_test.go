// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"testing"

	"cogentcore.org/docking/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageContextMenu(t *testing.T) {
	tm := newTestManager(t)
	ps := pages("A")
	ps[0].Flags.Set(false, cells.AllowClose)
	_, err := tm.AddDockspace("Main", EdgeLeft, ps)
	require.NoError(t, err)

	mn, err := tm.PageContextMenu("A")
	require.NoError(t, err)
	require.NotNil(t, mn)
	enabled := map[string]bool{}
	for _, mi := range mn.Items {
		enabled[mi.Text] = mi.Enabled
	}
	assert.Equal(t, map[string]bool{
		"Float":           true,
		"Dock":            false,
		"Auto Hide":       true,
		"Tabbed Document": false,
		"Navigator":       false,
		"Hide":            true,
		"Close":           false,
	}, enabled)

	require.NoError(t, mn.Item("Dock").Run())
	assert.Equal(t, LocationDocked, tm.FindPageLocation("A"))

	require.NoError(t, mn.Item("Auto Hide").Run())
	assert.Equal(t, LocationAutoHidden, tm.FindPageLocation("A"))

	mn, err = tm.PageContextMenu("A")
	require.NoError(t, err)
	assert.False(t, mn.Item("Auto Hide").Enabled)
	require.NoError(t, mn.Item("Dock").Run())
	assert.Equal(t, LocationDocked, tm.FindPageLocation("A"))

	mn, err = tm.PageContextMenu("A")
	require.NoError(t, err)
	require.NoError(t, mn.Item("Float").Run())
	assert.Equal(t, LocationFloating, tm.FindPageLocation("A"))
	require.NoError(t, mn.Item("Hide").Run())
	assert.False(t, tm.IsPageShowing("A"))
}

func TestPageContextMenuListeners(t *testing.T) {
	tm := newTestManager(t)
	_, err := tm.AddDockspace("Main", EdgeLeft, pages("A", "B"))
	require.NoError(t, err)

	tm.OnShowPageContextMenu(func(e *ContextMenuEvent) {
		if e.UniqueName == "B" {
			e.Cancel = true
			return
		}
		e.Menu.Remove("Close")
		e.Menu.Add("Rename", true, func() error { return nil })
	})

	mn, err := tm.PageContextMenu("A")
	require.NoError(t, err)
	assert.Nil(t, mn.Item("Close"))
	assert.NotNil(t, mn.Item("Rename"))
	assert.False(t, mn.Remove("Close"))

	mn, err = tm.PageContextMenu("B")
	require.NoError(t, err)
	assert.Nil(t, mn)

	_, err = tm.PageContextMenu("Z")
	assert.ErrorIs(t, err, ErrPageNotFound)
}
