// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layoutxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

//go:generate core generate

// Encodings are the text encodings that layout documents are written in.
type Encodings int32 //enums:enum

const (
	// UTF16 is little-endian UTF-16 with a byte order mark,
	// which is the default encoding of saved layouts.
	UTF16 Encodings = iota

	// UTF16BE is big-endian UTF-16 with a byte order mark.
	UTF16BE

	// UTF8 is UTF-8 without a byte order mark.
	UTF8
)

// Label returns the label written into the XML declaration.
func (e Encodings) Label() string {
	switch e {
	case UTF16BE:
		return "utf-16BE"
	case UTF8:
		return "utf-8"
	}
	return "utf-16"
}

// ParseEncoding returns the encoding with the given label. It accepts the
// usual IANA labels as well as "unicode" and "bigendianunicode".
func ParseEncoding(name string) (Encodings, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-16", "utf16", "utf-16le", "unicode":
		return UTF16, nil
	case "utf-16be", "utf16be", "bigendianunicode":
		return UTF16BE, nil
	case "utf-8", "utf8":
		return UTF8, nil
	}
	return UTF16, fmt.Errorf("layoutxml: unsupported encoding %q", name)
}

// encoding returns the x/text encoding, or nil for UTF-8.
func (e Encodings) encoding() encoding.Encoding {
	switch e {
	case UTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	}
	return nil
}

// Write writes the given root element as a complete XML document
// in the given encoding.
func Write(w io.Writer, root *Element, enc Encodings) error {
	tw := w
	var tr *transform.Writer
	if e := enc.encoding(); e != nil {
		tr = transform.NewWriter(w, e.NewEncoder())
		tw = tr
	}
	if _, err := io.WriteString(tw, `<?xml version="1.0" encoding="`+enc.Label()+`"?>`+"\n"); err != nil {
		return err
	}
	xe := xml.NewEncoder(tw)
	xe.Indent("", "  ")
	if err := root.Encode(xe); err != nil {
		return err
	}
	if err := xe.Flush(); err != nil {
		return err
	}
	if tr != nil {
		return tr.Close()
	}
	return nil
}

// Read reads a complete XML document and returns its root element.
// UTF-16 documents are recognized by their byte order mark;
// everything else is read as UTF-8.
func Read(r io.Reader) (*Element, error) {
	tr := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	d := xml.NewDecoder(tr)
	// the transform has already produced UTF-8, whatever the declaration says
	d.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return Decode(d)
}

// Marshal returns the given root element as a complete document.
func Marshal(root *Element, enc Encodings) ([]byte, error) {
	var b bytes.Buffer
	if err := Write(&b, root, enc); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal parses a complete document and returns its root element.
func Unmarshal(data []byte) (*Element, error) {
	return Read(bytes.NewReader(data))
}

// WriteFile writes the given root element to the named file.
func WriteFile(filename string, root *Element, enc Encodings) error {
	b, err := Marshal(root, enc)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// ReadFile reads the root element of the named file.
func ReadFile(filename string) (*Element, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
