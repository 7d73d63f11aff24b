// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dock inspects and converts saved docking layouts.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/cli"
	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/docking"
	"cogentcore.org/docking/layoutxml"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

//go:generate core generate -add-funcs

// Config is the configuration information for the dock cli.
type Config struct {

	// Input is the saved layout file to read.
	Input string `posarg:"0"`

	// Output is the file to write the converted layout to.
	Output string `cmd:"convert" flag:"o,output" required:"-"`

	// Encoding is the text encoding of the converted layout:
	// utf16, utf16be, or utf8.
	Encoding string `cmd:"convert" flag:"e,encoding" default:"utf16"`

	// Width is the width of the surfaces the layout is loaded into.
	Width int `default:"1280"`

	// Height is the height of the surfaces the layout is loaded into.
	Height int `default:"800"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("dock", "Dock inspects and converts saved docking layouts.")
	cli.Run(opts, &Config{}, Describe, Convert)
}

// Describe prints a YAML summary of where each page of a saved layout is.
func Describe(c *Config) error { //cli:cmd -root
	m, err := load(c)
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(summarize(m))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

// Convert saves a layout again with the given encoding.
func Convert(c *Config) error {
	enc, err := parseEncoding(c.Encoding)
	if err != nil {
		return err
	}
	m, err := load(c)
	if err != nil {
		return err
	}
	out := c.Output
	if out == "" {
		out = c.Input
	}
	out, err = homedir.Expand(out)
	if err != nil {
		return err
	}
	m.Options.Encoding = enc
	if err := m.SaveConfigToFile(out); err != nil {
		return err
	}
	slog.Info("converted layout", "input", c.Input, "output", out, "encoding", c.Encoding)
	return nil
}

func parseEncoding(s string) (layoutxml.Encodings, error) {
	switch strings.ToLower(s) {
	case "utf16", "utf-16", "":
		return layoutxml.UTF16, nil
	case "utf16be", "utf-16be":
		return layoutxml.UTF16BE, nil
	case "utf8", "utf-8":
		return layoutxml.UTF8, nil
	}
	return 0, fmt.Errorf("dock: unknown encoding %q", s)
}

// load reads the input layout into a new manager whose roots are made to
// match the ones saved in the layout, with placeholder pages.
func load(c *Config) (*docking.Manager, error) {
	fn, err := homedir.Expand(c.Input)
	if err != nil {
		return nil, err
	}
	root, err := layoutxml.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	m := docking.NewManager()
	screen := image.Rect(0, 0, c.Width, c.Height)
	if dm := root.Child("DM"); dm != nil {
		for _, ch := range dm.Children {
			name := ch.AttrString("N", "")
			switch ch.Name {
			case "DC":
				_, err = m.ManageControl(name, docking.NewPanel(screen))
			case "DF":
				_, err = m.ManageFloating(name)
			case "DW":
				_, err = m.ManageWorkspace(name, screen)
			case "DN":
				_, err = m.ManageNavigator(name, screen)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	m.OnRecreateLoadingPage(func(e *docking.RecreateLoadingPageEvent) {
		e.Page = cells.NewPage(e.UniqueName, e.UniqueName)
	})
	if err := m.LoadConfig(root); err != nil {
		return nil, err
	}
	return m, nil
}

// pageSummary is the description of one page.
type pageSummary struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Path     string `yaml:"path"`
	Visible  bool   `yaml:"visible"`
}

// controlSummary is the description of one control.
type controlSummary struct {
	Name       string   `yaml:"name"`
	Inner      string   `yaml:"inner"`
	Dockspaces []string `yaml:"dockspaces,omitempty"`
}

type summary struct {
	Controls []controlSummary `yaml:"controls,omitempty"`
	Pages    []pageSummary    `yaml:"pages"`
}

func summarize(m *docking.Manager) *summary {
	s := &summary{}
	for _, c := range m.Controls() {
		cs := controlSummary{Name: c.Name, Inner: c.InnerRect().String()}
		for _, d := range c.Dockspaces() {
			cs.Dockspaces = append(cs.Dockspaces, d.Path())
		}
		s.Controls = append(s.Controls, cs)
	}
	for _, p := range m.Pages() {
		ps := pageSummary{
			Name:     p.UniqueName,
			Location: m.FindPageLocation(p.UniqueName).String(),
			Visible:  p.Visible,
		}
		if el := m.FindPageElement(p.UniqueName); el != nil {
			ps.Path = el.AsBase().Path()
		}
		s.Pages = append(s.Pages, ps)
	}
	return s
}
