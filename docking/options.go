// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/docking/layoutxml"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options are the configurable settings of a [Manager].
// They can be saved to and loaded from TOML or YAML files.
type Options struct {

	// DefaultCloseRequest is the close action suggested to
	// [Manager.OnPageCloseRequest] listeners.
	DefaultCloseRequest CloseRequests

	// InnerMinimum is the minimum size of the area of a control that
	// is left over after all of the docked edge surfaces.
	InnerMinimum image.Point

	// AutoHiddenStripSize is the thickness of the strip of tabs shown on
	// an edge with auto hidden groups.
	AutoHiddenStripSize int

	// DockspaceSize is the initial size of new dockspaces.
	DockspaceSize int

	// DockspaceMinSize is the minimum size of new dockspaces.
	DockspaceMinSize int

	// SlideSize is the initial size of auto hidden slide panels.
	SlideSize int

	// FloatingSize is the initial size of new floating windows.
	FloatingSize image.Point

	// Encoding is the text encoding of saved layouts.
	Encoding layoutxml.Encodings

	// Strings are the display strings used for menus and titles.
	Strings Strings
}

// Strings are the display strings of the docking manager.
type Strings struct {
	Close       string
	Hide        string
	Float       string
	Dock        string
	AutoHide    string
	Workspace   string
	Navigator   string
	WindowTitle string
}

// Defaults sets the default values of the options.
func (o *Options) Defaults() {
	o.DefaultCloseRequest = HidePage
	o.InnerMinimum = image.Pt(100, 100)
	o.AutoHiddenStripSize = 24
	o.DockspaceSize = 200
	o.DockspaceMinSize = 20
	o.SlideSize = 200
	o.FloatingSize = image.Pt(300, 300)
	o.Encoding = layoutxml.UTF16
	o.Strings.Defaults()
}

// Defaults sets the default display strings.
func (s *Strings) Defaults() {
	s.Close = "Close"
	s.Hide = "Hide"
	s.Float = "Float"
	s.Dock = "Dock"
	s.AutoHide = "Auto Hide"
	s.Workspace = "Tabbed Document"
	s.Navigator = "Navigator"
	s.WindowTitle = "Floating Window"
}

// NewOptions returns new options with default values.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// OpenOptions returns options loaded from the named TOML or YAML file,
// with any settings missing from the file keeping their default values.
func OpenOptions(filename string) (*Options, error) {
	o := NewOptions()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = fmt.Errorf("docking: unsupported options file type %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Save saves the options to the named TOML or YAML file.
func (o *Options) Save(filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(o)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(o)
	default:
		err = fmt.Errorf("docking: unsupported options file type %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
