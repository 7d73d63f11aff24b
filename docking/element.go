// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"slices"
	"strings"

	"cogentcore.org/core/tree"
	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
)

// Element is the interface that every node of the docking tree satisfies.
// The core functionality is implemented on [ElementBase], which all
// element types embed; element types override the propagation methods
// to add their own answers and then defer to [ElementBase] for their
// children.
//
// Requests travel through the tree depth-first: actions are broadcast
// to every element, boolean and page queries stop at the first element
// that knows the answer, and list queries accumulate in pre-order.
type Element interface {
	tree.Node

	// AsBase returns the [ElementBase] of this element.
	AsBase() *ElementBase

	// XMLName returns the short tag used for this element in saved layouts.
	XMLName() string

	// PropagateAction performs the given action on this element
	// and then on all of its children in order.
	PropagateAction(action Actions, uniqueNames []string)

	// PropagateBoolState answers the given query for the given page.
	// known is false when no element in this subtree knows the answer.
	PropagateBoolState(state BoolStates, uniqueName string) (value, known bool)

	// PropagatePageState returns the first page found for the given query, or nil.
	PropagatePageState(state PageStates, uniqueName string) *cells.Page

	// PropagatePageList appends the live pages accepted by the filter.
	PropagatePageList(filter PageLists, pages *[]*cells.Page)

	// PropagateCellList appends the cells of spaces accepted by the filter.
	PropagateCellList(filter PageLists, cs *[]*cells.Cell)

	// PropagateDragTargets appends the drop targets for dragging the given
	// data, excluding the floating window being dragged.
	PropagateDragTargets(floating *FloatingWindow, data *DragData, targets *[]*DragTarget)

	// FindPageLocation returns the location of the live page, or [LocationNone].
	FindPageLocation(uniqueName string) Locations

	// FindPageElement returns the element containing the live page, or nil.
	FindPageElement(uniqueName string) Element

	// FindStorePageElement returns the element containing a store page for
	// the given unique name in the given location family, or nil.
	FindStorePageElement(location Locations, uniqueName string) Element

	// SaveElement appends the saved form of this element to the given parent.
	SaveElement(parent *layoutxml.Element)

	// LoadElement restores this element from its saved form.
	LoadElement(node *layoutxml.Element) error
}

// ElementBase implements the tree part of the [Element] interface on top of
// [tree.NodeBase]: the name, the parent back reference, and the ordered,
// uniquely named collection of children.
type ElementBase struct {
	tree.NodeBase
}

// initElement sets up the base of the given element with the given name.
func initElement(this Element, name string) {
	b := this.AsBase()
	b.This = this
	b.Name = name
}

// AsBase returns the [ElementBase] of the element.
func (e *ElementBase) AsBase() *ElementBase {
	return e
}

// self returns the element as its true underlying type.
func (e *ElementBase) self() Element {
	return e.This.(Element)
}

// elements returns the children as elements.
func (e *ElementBase) elements() []Element {
	return ChildrenOfType[Element](e)
}

func (e *ElementBase) String() string {
	if e.Parent == nil {
		return e.Name
	}
	return e.Path()
}

// Path returns the comma separated path of names from the root,
// in the form accepted by [ElementBase.ResolvePath]. The root itself
// is not part of any path.
func (e *ElementBase) Path() string {
	if e.Parent == nil {
		return ""
	}
	p, ok := e.Parent.AsTree().This.(Element)
	if !ok {
		return ""
	}
	if pp := p.AsBase().Path(); pp != "" {
		return pp + "," + e.Name
	}
	return e.Name
}

// insertChild inserts the given child at the given index,
// with an index past the end appending it.
func (e *ElementBase) insertChild(child Element, index int) error {
	if e.ChildByName(child.AsTree().Name) != nil {
		return &DuplicateNameError{Parent: e.Path(), Name: child.AsTree().Name}
	}
	e.InsertChild(child, min(max(index, 0), len(e.Children)))
	return nil
}

// addChild appends the given child.
func (e *ElementBase) addChild(child Element) error {
	return e.insertChild(child, len(e.Children))
}

// removeChild removes the given child, returning false if it is not a child.
// The child is detached but not destroyed, so it keeps its own children.
func (e *ElementBase) removeChild(child Element) bool {
	i := slices.Index(e.Children, tree.Node(child))
	if i < 0 {
		return false
	}
	e.Children = slices.Delete(e.Children, i, i+1)
	child.AsTree().Parent = nil
	return true
}

// ResolvePath returns the element at the given comma separated path of
// names below this element, or nil. Each child attempts the full
// resolution in order and the first match wins.
func (e *ElementBase) ResolvePath(path string) Element {
	names := splitPath(path)
	if len(names) == 0 {
		return nil
	}
	for _, c := range e.elements() {
		if r := resolvePath(c, names); r != nil {
			return r
		}
	}
	return nil
}

func splitPath(path string) []string {
	var names []string
	for _, nm := range strings.Split(path, ",") {
		if nm = strings.TrimSpace(nm); nm != "" {
			names = append(names, nm)
		}
	}
	return names
}

func resolvePath(el Element, names []string) Element {
	b := el.AsBase()
	if b.Name != names[0] {
		return nil
	}
	if len(names) == 1 {
		return el
	}
	for _, c := range b.elements() {
		if r := resolvePath(c, names[1:]); r != nil {
			return r
		}
	}
	return nil
}

// ParentByType returns the nearest ancestor of the given node that
// has the type T, or the zero value of T.
func ParentByType[T Element](n tree.Node) T {
	for p := n.AsTree().Parent; p != nil; p = p.AsTree().Parent {
		if t, ok := p.AsTree().This.(T); ok {
			return t
		}
	}
	var zero T
	return zero
}

// ChildrenOfType returns the children of the given node that have the type T.
func ChildrenOfType[T Element](n tree.Node) []T {
	var ts []T
	for _, c := range n.AsTree().Children {
		if t, ok := c.(T); ok {
			ts = append(ts, t)
		}
	}
	return ts
}

// managerOf returns the manager at the root of the element's tree, or nil.
func managerOf(el Element) *Manager {
	if m, ok := el.(*Manager); ok {
		return m
	}
	return ParentByType[*Manager](el)
}

// The default propagation visits the children in order.

func (e *ElementBase) PropagateAction(action Actions, uniqueNames []string) {
	for _, c := range e.elements() {
		c.PropagateAction(action, uniqueNames)
	}
}

func (e *ElementBase) PropagateBoolState(state BoolStates, uniqueName string) (bool, bool) {
	for _, c := range e.elements() {
		if v, ok := c.PropagateBoolState(state, uniqueName); ok {
			return v, true
		}
	}
	return false, false
}

func (e *ElementBase) PropagatePageState(state PageStates, uniqueName string) *cells.Page {
	for _, c := range e.elements() {
		if p := c.PropagatePageState(state, uniqueName); p != nil {
			return p
		}
	}
	return nil
}

func (e *ElementBase) PropagatePageList(filter PageLists, pages *[]*cells.Page) {
	for _, c := range e.elements() {
		c.PropagatePageList(filter, pages)
	}
}

func (e *ElementBase) PropagateCellList(filter PageLists, cs *[]*cells.Cell) {
	for _, c := range e.elements() {
		c.PropagateCellList(filter, cs)
	}
}

func (e *ElementBase) PropagateDragTargets(floating *FloatingWindow, data *DragData, targets *[]*DragTarget) {
	for _, c := range e.elements() {
		c.PropagateDragTargets(floating, data, targets)
	}
}

func (e *ElementBase) FindPageLocation(uniqueName string) Locations {
	for _, c := range e.elements() {
		if loc := c.FindPageLocation(uniqueName); loc != LocationNone {
			return loc
		}
	}
	return LocationNone
}

func (e *ElementBase) FindPageElement(uniqueName string) Element {
	for _, c := range e.elements() {
		if el := c.FindPageElement(uniqueName); el != nil {
			return el
		}
	}
	return nil
}

func (e *ElementBase) FindStorePageElement(location Locations, uniqueName string) Element {
	for _, c := range e.elements() {
		if el := c.FindStorePageElement(location, uniqueName); el != nil {
			return el
		}
	}
	return nil
}

// saveNode appends the element node with its name and child count.
func (e *ElementBase) saveNode(parent *layoutxml.Element) *layoutxml.Element {
	node := parent.AddChild(e.self().XMLName())
	node.SetAttr("N", e.Name)
	node.SetAttrInt("C", len(e.Children))
	return node
}

// saveChildren saves every child into the given node.
func (e *ElementBase) saveChildren(node *layoutxml.Element) {
	for _, c := range e.elements() {
		c.SaveElement(node)
	}
}

// SaveElement saves the element and its children.
func (e *ElementBase) SaveElement(parent *layoutxml.Element) {
	e.saveChildren(e.saveNode(parent))
}

// LoadElement loads the children that exist with the same name.
func (e *ElementBase) LoadElement(node *layoutxml.Element) error {
	return e.loadNamedChildren(node)
}

// loadNamedChildren loads every saved child into the existing child with the
// same name and tag; saved children without a match are skipped.
func (e *ElementBase) loadNamedChildren(node *layoutxml.Element) error {
	for _, cn := range node.Children {
		c, ok := e.ChildByName(cn.AttrString("N", "")).(Element)
		if !ok || c.XMLName() != cn.Name {
			logSkipped(e.self(), cn)
			continue
		}
		if err := c.LoadElement(cn); err != nil {
			return err
		}
	}
	return nil
}
