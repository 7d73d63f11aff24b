// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cells provides the page, cell, and cell layout primitives
// that docking containers arrange. A [Page] is a unit of host content
// with a stable unique name, a [Cell] is an ordered set of pages shown
// as tabs with one selection, and a [Layout] is a tree of cells split
// horizontally or vertically.
package cells

import (
	"image"
	"strings"
)

// Flags are the capability flags of a [Page], which determine which
// docking locations it may be moved into.
type Flags uint32

const (
	// AllowDocked allows the page to be docked against a control edge.
	AllowDocked Flags = 1 << iota

	// AllowAutoHidden allows the page to be auto hidden on a control edge.
	AllowAutoHidden

	// AllowFloating allows the page to be placed in a floating window.
	AllowFloating

	// AllowWorkspace allows the page to be placed in a workspace.
	AllowWorkspace

	// AllowNavigator allows the page to be placed in a navigator.
	AllowNavigator

	// AllowClose allows the page to be closed by the user.
	AllowClose

	// AllowAll is the union of all of the capability flags.
	AllowAll = AllowDocked | AllowAutoHidden | AllowFloating | AllowWorkspace | AllowNavigator | AllowClose
)

var flagNames = []string{"Docked", "AutoHidden", "Floating", "Workspace", "Navigator", "Close"}

// Has returns whether all of the given flags are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Set sets or clears the given flags.
func (f *Flags) Set(on bool, flag Flags) {
	if on {
		*f |= flag
	} else {
		*f &^= flag
	}
}

func (f Flags) String() string {
	var names []string
	for i, nm := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, nm)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// Page is a unit of host content placed into exactly one docking cell at
// a time. Pages are owned by the host application; cells only reference
// them. A store page is a placeholder standing in for a page that has
// moved elsewhere, remembering the position the page used to have.
type Page struct {

	// UniqueName is the process unique identity of the page,
	// stable across every move, save, and load.
	UniqueName string

	// Text is the display text of the page, used for tabs and titles.
	Text string

	// Flags are the capability flags of the page.
	Flags Flags

	// Visible is whether the page is currently shown.
	Visible bool

	// MinSize is the minimum size the page content needs.
	MinSize image.Point

	// Content is the opaque host content of the page.
	Content any

	// StoreName is the name of the location family a store page
	// remembers. It is empty for live pages.
	StoreName string

	disposed bool
}

// NewPage returns a new visible page with the given unique name and text,
// allowing all docking locations.
func NewPage(uniqueName, text string) *Page {
	return &Page{UniqueName: uniqueName, Text: text, Flags: AllowAll, Visible: true}
}

// NewStorePage returns a new store placeholder for the page with the given
// unique name, remembering a position in the given location family.
func NewStorePage(uniqueName, storeName string) *Page {
	return &Page{UniqueName: uniqueName, StoreName: storeName}
}

// IsStore returns whether the page is a store placeholder.
func (p *Page) IsStore() bool {
	return p.StoreName != ""
}

// Allows returns whether the page has all of the given capability flags.
func (p *Page) Allows(flag Flags) bool {
	return p.Flags.Has(flag)
}

// Dispose marks the page as disposed. Disposed pages must not be placed again.
func (p *Page) Dispose() {
	p.disposed = true
}

// Disposed returns whether [Page.Dispose] has been called.
func (p *Page) Disposed() bool {
	return p.disposed
}

func (p *Page) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.IsStore() {
		return "store(" + p.UniqueName + ", " + p.StoreName + ")"
	}
	return p.UniqueName
}

// UniqueNames returns the unique names of the given pages.
func UniqueNames(pages []*Page) []string {
	names := make([]string, len(pages))
	for i, p := range pages {
		names[i] = p.UniqueName
	}
	return names
}
