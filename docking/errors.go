// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"fmt"
	"log/slog"
	"sort"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/tree"
	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrEmptyUniqueName is returned when a unique name is empty.
	ErrEmptyUniqueName = errors.New("docking: unique name must not be empty")

	// ErrNilPage is returned when a page argument is nil.
	ErrNilPage = errors.New("docking: page must not be nil")

	// ErrPageNotFound is returned when no live page has the given unique name.
	ErrPageNotFound = errors.New("docking: page not found")

	// ErrDuplicatePage is returned when a page with the same unique name
	// is already in the tree.
	ErrDuplicatePage = errors.New("docking: page with the same unique name already exists")

	// ErrNoTarget is returned when there is no element to move a page into.
	ErrNoTarget = errors.New("docking: no target element available")

	// ErrInvalidEdge is returned for an edge that is not top, bottom, left, or right.
	ErrInvalidEdge = errors.New("docking: invalid edge")
)

// DuplicateNameError is returned when adding an element whose name is
// already used by a sibling.
type DuplicateNameError struct {
	Parent string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("docking: element %q already has a child named %q", e.Parent, e.Name)
}

// ElementTypeError is returned when a path does not resolve to an
// element of the expected kind.
type ElementTypeError struct {

	// Path is the path that was resolved.
	Path string

	// Expected is the kind of element that was expected.
	Expected string

	// Found is the kind of element found, or empty when nothing was found.
	Found string

	// Suggestion is the closest existing path, if any.
	Suggestion string
}

func (e *ElementTypeError) Error() string {
	if e.Found == "" {
		msg := fmt.Sprintf("docking: path %q does not resolve to an element, expected %s", e.Path, e.Expected)
		if e.Suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
		}
		return msg
	}
	return fmt.Sprintf("docking: path %q resolves to %s, expected %s", e.Path, e.Found, e.Expected)
}

// FormatError is returned when a saved layout does not have the expected structure.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "docking: invalid layout format: " + e.Msg
}

// validateUniqueNames checks the unique names passed to a public operation.
func validateUniqueNames(uniqueNames []string) error {
	for _, nm := range uniqueNames {
		if nm == "" {
			return ErrEmptyUniqueName
		}
	}
	return nil
}

// validatePages checks the pages passed to a public operation.
func validatePages(pages []*cells.Page) error {
	for _, p := range pages {
		if p == nil {
			return ErrNilPage
		}
		if p.UniqueName == "" {
			return ErrEmptyUniqueName
		}
	}
	return nil
}

// expectPageElement panics for a page found in an element type that
// cannot hold pages, which means the tree is corrupt.
func expectPageElement(el Element, uniqueName string) {
	path := ""
	if el != nil {
		path = el.AsBase().Path()
	}
	panic(fmt.Sprintf("docking: page %q is in unexpected element %T at %q", uniqueName, el, path))
}

// elementKind returns a readable kind name for the given element.
func elementKind(el Element) string {
	if el == nil {
		return ""
	}
	return fmt.Sprintf("%T", el)
}

// suggestPath returns the existing element path that is most similar
// to the given path, or "" if nothing is reasonably close.
func suggestPath(m *Manager, path string) string {
	var paths []string
	for _, c := range m.elements() {
		c.AsTree().WalkDown(func(n tree.Node) bool {
			paths = append(paths, n.(Element).AsBase().Path())
			return tree.Continue
		})
	}
	if len(paths) == 0 {
		return ""
	}
	lev := metrics.NewLevenshtein()
	sort.SliceStable(paths, func(i, j int) bool {
		return strutil.Similarity(path, paths[i], lev) > strutil.Similarity(path, paths[j], lev)
	})
	if strutil.Similarity(path, paths[0], lev) < 0.5 {
		return ""
	}
	return paths[0]
}

// logSkipped logs a saved element that has no matching element to load into.
func logSkipped(parent Element, node *layoutxml.Element) {
	slog.Warn("docking: skipping saved element without a match", "parent", parent.AsBase().Path(), "tag", node.Name, "name", node.AttrString("N", ""))
}
