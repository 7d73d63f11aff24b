// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cells

import "slices"

// Cell is an ordered set of pages shown as tabs, with at most one
// selected page. A cell holds both live pages and store placeholders;
// only live pages are ever shown or selected.
type Cell struct {

	// Name is the name of the cell, unique within its layout.
	Name string

	// Pages are the pages of the cell in tab order, including store pages.
	Pages []*Page

	// selected is the unique name of the selected page.
	selected string
}

// NewCell returns a new cell with the given name containing the given pages.
func NewCell(name string, pages ...*Page) *Cell {
	c := &Cell{Name: name}
	c.Append(pages...)
	return c
}

// Len returns the number of pages in the cell, including store pages.
func (c *Cell) Len() int {
	return len(c.Pages)
}

// Append adds the given pages at the end of the cell.
func (c *Cell) Append(pages ...*Page) {
	c.Pages = append(c.Pages, pages...)
	c.ensureSelection()
}

// Insert inserts the given page at the given index, clamped to the valid range.
func (c *Cell) Insert(index int, p *Page) {
	index = min(max(index, 0), len(c.Pages))
	c.Pages = slices.Insert(c.Pages, index, p)
	c.ensureSelection()
}

// Replace replaces the page at the given index, returning the old page.
func (c *Cell) Replace(index int, p *Page) *Page {
	old := c.Pages[index]
	c.Pages[index] = p
	if old.UniqueName == c.selected && p.IsStore() {
		c.selected = ""
	}
	c.ensureSelection()
	return old
}

// RemoveAt removes the page at the given index.
func (c *Cell) RemoveAt(index int) *Page {
	p := c.Pages[index]
	c.Pages = slices.Delete(c.Pages, index, index+1)
	if !p.IsStore() && p.UniqueName == c.selected {
		c.selected = ""
	}
	c.ensureSelection()
	return p
}

// Remove removes the given page, returning false if it is not in the cell.
func (c *Cell) Remove(p *Page) bool {
	i := slices.Index(c.Pages, p)
	if i < 0 {
		return false
	}
	c.RemoveAt(i)
	return true
}

// IndexOf returns the index of the given page, or -1.
func (c *Cell) IndexOf(p *Page) int {
	return slices.Index(c.Pages, p)
}

// IndexOfLive returns the index of the live page with the given unique name, or -1.
func (c *Cell) IndexOfLive(uniqueName string) int {
	return slices.IndexFunc(c.Pages, func(p *Page) bool {
		return !p.IsStore() && p.UniqueName == uniqueName
	})
}

// IndexOfStore returns the index of the store page with the given unique name
// and store name, or -1. An empty store name matches any store page.
func (c *Cell) IndexOfStore(uniqueName, storeName string) int {
	return slices.IndexFunc(c.Pages, func(p *Page) bool {
		return p.IsStore() && p.UniqueName == uniqueName && (storeName == "" || p.StoreName == storeName)
	})
}

// Live returns the live page with the given unique name, or nil.
func (c *Cell) Live(uniqueName string) *Page {
	if i := c.IndexOfLive(uniqueName); i >= 0 {
		return c.Pages[i]
	}
	return nil
}

// LivePages returns the live pages of the cell in tab order.
func (c *Cell) LivePages() []*Page {
	var pages []*Page
	for _, p := range c.Pages {
		if !p.IsStore() {
			pages = append(pages, p)
		}
	}
	return pages
}

// VisiblePages returns the live visible pages of the cell in tab order.
func (c *Cell) VisiblePages() []*Page {
	var pages []*Page
	for _, p := range c.Pages {
		if !p.IsStore() && p.Visible {
			pages = append(pages, p)
		}
	}
	return pages
}

// HasVisiblePages returns whether the cell has any live visible page.
func (c *Cell) HasVisiblePages() bool {
	return slices.ContainsFunc(c.Pages, func(p *Page) bool {
		return !p.IsStore() && p.Visible
	})
}

// Select selects the live page with the given unique name,
// returning false if there is none.
func (c *Cell) Select(uniqueName string) bool {
	p := c.Live(uniqueName)
	if p == nil {
		return false
	}
	c.selected = uniqueName
	return true
}

// Selected returns the selected page, or nil.
func (c *Cell) Selected() *Page {
	if c.selected == "" {
		return nil
	}
	return c.Live(c.selected)
}

// ensureSelection makes sure that a visible live page is selected
// whenever one exists.
func (c *Cell) ensureSelection() {
	if sel := c.Selected(); sel != nil && sel.Visible {
		return
	}
	c.selected = ""
	for _, p := range c.Pages {
		if !p.IsStore() && p.Visible {
			c.selected = p.UniqueName
			return
		}
	}
}

// Refresh updates the selection after page visibility has changed.
func (c *Cell) Refresh() {
	c.ensureSelection()
}
