// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layoutxml provides the small XML document model that saved
// docking layouts are read into and written from, along with the text
// encodings those documents use and a watcher for layout files.
package layoutxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Attr is a single attribute of an [Element].
type Attr struct {
	Name  string
	Value string
}

// Element is a node of an XML document: a named element with ordered
// attributes, child elements, and character data.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// New returns a new element with the given name.
func New(name string) *Element {
	return &Element{Name: name}
}

// AddChild appends a new child element with the given name and returns it.
func (e *Element) AddChild(name string) *Element {
	c := New(name)
	e.Children = append(e.Children, c)
	return c
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// SetAttr sets the attribute with the given name, replacing any existing value.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetAttrInt sets the attribute with the given name to an integer value.
func (e *Element) SetAttrInt(name string, value int) *Element {
	return e.SetAttr(name, strconv.Itoa(value))
}

// SetAttrBool sets the attribute with the given name to a boolean value.
func (e *Element) SetAttrBool(name string, value bool) *Element {
	return e.SetAttr(name, strconv.FormatBool(value))
}

// Attr returns the value of the attribute with the given name
// and whether it exists.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrString returns the value of the attribute with the given name,
// or the given default if it does not exist.
func (e *Element) AttrString(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// AttrInt returns the integer value of the attribute with the given name,
// or the given default if it does not exist.
func (e *Element) AttrInt(name string, def int) (int, error) {
	v, ok := e.Attr(name)
	if !ok {
		return def, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def, fmt.Errorf("layoutxml: attribute %s of <%s>: %w", name, e.Name, err)
	}
	return i, nil
}

// AttrBool returns the boolean value of the attribute with the given name,
// or the given default if it does not exist or does not parse.
func (e *Element) AttrBool(name string, def bool) bool {
	v, ok := e.Attr(name)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

// Decode reads a single element tree from the given decoder,
// skipping everything before the first start element.
func Decode(d *xml.Decoder) (*Element, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("layoutxml: no root element")
			}
			return nil, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return decodeElement(d, se)
		}
	}
}

func decodeElement(d *xml.Decoder, start xml.StartElement) (*Element, error) {
	e := New(start.Name.Local)
	for _, a := range start.Attr {
		e.Attrs = append(e.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			c, err := decodeElement(d, tok)
			if err != nil {
				return nil, err
			}
			e.Children = append(e.Children, c)
		case xml.CharData:
			text.Write(tok)
		case xml.EndElement:
			e.Text = strings.TrimSpace(text.String())
			return e, nil
		}
	}
}

// Encode writes the element tree to the given encoder.
func (e *Element) Encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.Encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
