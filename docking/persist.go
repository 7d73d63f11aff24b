// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"bytes"
	"io"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
)

// FormatVersion is the version of the saved layout format.
const FormatVersion = 1

// SaveConfig returns the saved form of the layout: a KD document element
// holding the global custom data written by [Manager.OnGlobalSaving]
// listeners, followed by the element tree.
func (m *Manager) SaveConfig() *layoutxml.Element {
	root := layoutxml.New("KD")
	root.SetAttrInt("V", FormatVersion)
	dgd := root.AddChild("DGD")
	m.listeners.globalSaving.Call(&XMLEvent{Element: dgd})
	m.SaveElement(root)
	return root
}

// SaveConfigToXML writes the layout to the given writer in the
// encoding of the options.
func (m *Manager) SaveConfigToXML(w io.Writer) error {
	return layoutxml.Write(w, m.SaveConfig(), m.Options.Encoding)
}

// SaveConfigToArray returns the layout as a document in the
// encoding of the options.
func (m *Manager) SaveConfigToArray() ([]byte, error) {
	return layoutxml.Marshal(m.SaveConfig(), m.Options.Encoding)
}

// SaveConfigToFile saves the layout to the named file in the
// encoding of the options.
func (m *Manager) SaveConfigToFile(filename string) error {
	return layoutxml.WriteFile(filename, m.SaveConfig(), m.Options.Encoding)
}

// checkEnvelope checks the document element of a saved layout and returns
// its global data and manager elements.
func checkEnvelope(root *layoutxml.Element) (dgd, dm *layoutxml.Element, err error) {
	if root == nil || root.Name != "KD" {
		return nil, nil, &FormatError{Msg: "document element must be KD"}
	}
	if _, ok := root.Attr("V"); !ok {
		return nil, nil, &FormatError{Msg: "missing format version"}
	}
	v, err := root.AttrInt("V", 0)
	if err != nil {
		return nil, nil, &FormatError{Msg: "format version is not a number"}
	}
	if v < 1 {
		return nil, nil, &FormatError{Msg: "format version must be at least 1"}
	}
	if v > FormatVersion {
		return nil, nil, &FormatError{Msg: "format version is newer than supported"}
	}
	if len(root.Children) < 1 || root.Children[0].Name != "DGD" {
		return nil, nil, &FormatError{Msg: "first element must be DGD"}
	}
	if len(root.Children) < 2 || root.Children[1].Name != "DM" {
		return nil, nil, &FormatError{Msg: "second element must be DM"}
	}
	return root.Children[0], root.Children[1], nil
}

// LoadConfig replaces the layout with the given saved form. The pages in the
// tree before loading are placed where the saved layout puts them; saved
// pages that do not exist are offered to [Manager.OnRecreateLoadingPage]
// listeners. Pages that the saved layout leaves out are sent to
// [Manager.OnOrphanedPages] listeners, and those that the listeners do not
// remove from the event are disposed.
//
// The document structure is checked before the tree is reset, but an error
// within the element tree leaves the layout partially loaded.
func (m *Manager) LoadConfig(root *layoutxml.Element) error {
	dgd, dm, err := checkEnvelope(root)
	if err != nil {
		return err
	}
	before := m.Pages()
	m.loading = make(map[string]*cells.Page, len(before))
	for _, p := range before {
		m.loading[p.UniqueName] = p
	}
	m.placed = map[string]bool{}
	err = m.loadTree(dgd, dm)
	m.loading = nil
	m.placed = nil

	var orphans []*cells.Page
	for _, p := range before {
		if m.PageForUniqueName(p.UniqueName) != p {
			orphans = append(orphans, p)
		}
	}
	if len(orphans) > 0 {
		e := &PagesEvent{Pages: orphans}
		m.listeners.orphanedPages.Call(e)
		for _, p := range e.Pages {
			slog.Debug("docking: disposing orphaned page", "page", p.UniqueName)
			p.Dispose()
		}
	}
	return err
}

// loadTree resets the tree and loads the saved elements inside an update bracket.
func (m *Manager) loadTree(dgd, dm *layoutxml.Element) error {
	u := m.BeginUpdate()
	defer u.End()
	m.PropagateAction(Loading, nil)
	m.listeners.globalLoading.Call(&XMLEvent{Element: dgd})
	return m.LoadElement(dm)
}

// LoadConfigFromXML loads the layout from the given reader.
func (m *Manager) LoadConfigFromXML(r io.Reader) error {
	root, err := layoutxml.Read(r)
	if err != nil {
		return err
	}
	return m.LoadConfig(root)
}

// LoadConfigFromArray loads the layout from the given document.
func (m *Manager) LoadConfigFromArray(data []byte) error {
	return m.LoadConfigFromXML(bytes.NewReader(data))
}

// LoadConfigFromFile loads the layout from the named file.
func (m *Manager) LoadConfigFromFile(filename string) error {
	root, err := layoutxml.ReadFile(filename)
	if err != nil {
		return err
	}
	return m.LoadConfig(root)
}

// WatchConfigFile reloads the layout from the named file whenever the file
// changes. The watcher runs on its own goroutine, so each reload is handed
// to the post function, which must run it on the goroutine that owns the
// manager. Close the returned watcher to stop watching.
func (m *Manager) WatchConfigFile(filename string, post func(fun func())) (*layoutxml.Watcher, error) {
	return layoutxml.Watch(filename, func() {
		post(func() {
			errors.Log(m.LoadConfigFromFile(filename))
		})
	})
}
