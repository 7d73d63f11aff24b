// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

import (
	"image"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"cogentcore.org/docking/cells"
	"cogentcore.org/docking/layoutxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLoadingManager returns a test manager with a Docs workspace that
// recreates every saved page it does not have.
func newLoadingManager(t *testing.T) (*testManager, *Workspace) {
	tm := newTestManager(t)
	ws, err := tm.ManageWorkspace("Docs", image.Rect(0, 0, 500, 500))
	require.NoError(t, err)
	tm.OnRecreateLoadingPage(func(e *RecreateLoadingPageEvent) {
		e.Page = cells.NewPage(e.UniqueName, "re-"+e.UniqueName)
	})
	return tm, ws
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src, _ := newLoadingManager(t)
	d, err := src.AddDockspace("Main", EdgeLeft, pages("A"), pages("B"))
	require.NoError(t, err)
	d.Size = 150
	_, err = src.AddFloatingWindow("Floating", pages("C"), image.Rect(10, 20, 410, 320))
	require.NoError(t, err)
	_, err = src.AddToWorkspace("Docs", pages("D"))
	require.NoError(t, err)
	_, err = src.AddAutoHiddenGroup("Main", EdgeBottom, pages("E"))
	require.NoError(t, err)
	require.NoError(t, src.MakeFloatingRequest("A"))
	require.NoError(t, src.HidePage("E"))
	src.OnGlobalSaving(func(e *XMLEvent) {
		e.Element.AddChild("Theme").SetAttr("Name", "dark")
	})
	src.OnPageSaving(func(e *PageXMLEvent) {
		if e.Page.UniqueName == "B" {
			e.Element.SetAttr("Path", "/tmp/b.txt")
		}
	})
	data, err := src.SaveConfigToArray()
	require.NoError(t, err)

	dst, ws := newLoadingManager(t)
	existing := pages("D")[0]
	_, err = dst.AddToWorkspace("Docs", []*cells.Page{existing})
	require.NoError(t, err)
	var theme, path string
	dst.OnGlobalLoading(func(e *XMLEvent) {
		if th := e.Element.Child("Theme"); th != nil {
			theme = th.AttrString("Name", "")
		}
	})
	dst.OnPageLoading(func(e *PageXMLEvent) {
		path = e.Element.AttrString("Path", "")
	})
	var orphaned bool
	dst.OnOrphanedPages(func(e *PagesEvent) { orphaned = true })

	require.NoError(t, dst.LoadConfigFromArray(data))
	assert.Equal(t, "dark", theme)
	assert.Equal(t, "/tmp/b.txt", path)
	assert.False(t, orphaned)

	assert.Equal(t, LocationFloating, dst.FindPageLocation("A"))
	assert.Equal(t, LocationDocked, dst.FindPageLocation("B"))
	assert.Equal(t, LocationFloating, dst.FindPageLocation("C"))
	assert.Equal(t, LocationAutoHidden, dst.FindPageLocation("E"))
	assert.False(t, dst.IsPageShowing("E"))
	assert.Equal(t, ws, dst.FindPageElement("D"))
	assert.Same(t, existing, dst.PageForUniqueName("D"))
	assert.Equal(t, "re-B", dst.PageForUniqueName("B").Text)

	ds := dst.control.Dockspaces()
	require.Len(t, ds, 1)
	assert.Equal(t, d.Name, ds[0].Name)
	assert.Equal(t, 150, ds[0].Size)
	assert.Len(t, ds[0].Cells(), 2)
	assert.True(t, dst.ContainsStorePage("A"))

	cs, ok := dst.FindPageElement("C").(*Floatspace)
	require.True(t, ok)
	assert.Equal(t, image.Rect(10, 20, 410, 320), cs.Window().Bounds)
	assert.Equal(t, "re-C", cs.Window().Title)

	require.NoError(t, dst.MakeDockedRequest("A"))
	assert.Equal(t, "A", ds[0].Cells()[0].Pages[0].UniqueName)
}

func TestLoadKeepsDockingOrder(t *testing.T) {
	src, _ := newLoadingManager(t)
	left, err := src.AddDockspace("Main", EdgeLeft, pages("B"))
	require.NoError(t, err)
	top, err := src.AddDockspace("Main", EdgeTop, pages("A"))
	require.NoError(t, err)
	outer, err := src.InsertDockspace("Main", EdgeLeft, 0, pages("C"))
	require.NoError(t, err)
	want := src.control.Dockspaces()
	require.Equal(t, []*Dockspace{outer, left, top}, want)
	data, err := src.SaveConfigToArray()
	require.NoError(t, err)

	dst, _ := newLoadingManager(t)
	require.NoError(t, dst.LoadConfigFromArray(data))
	got := dst.control.Dockspaces()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
	}
	assert.Equal(t, src.control.InnerRect(), dst.control.InnerRect())
}

func TestLoadOrphanedPages(t *testing.T) {
	empty, _ := newLoadingManager(t)
	data, err := empty.SaveConfigToArray()
	require.NoError(t, err)

	tm, _ := newLoadingManager(t)
	x, y := cells.NewPage("X", ""), cells.NewPage("Y", "")
	_, err = tm.AddToWorkspace("Docs", []*cells.Page{x})
	require.NoError(t, err)
	_, err = tm.AddDockspace("Main", EdgeLeft, []*cells.Page{y})
	require.NoError(t, err)

	var orphans []string
	tm.OnOrphanedPages(func(e *PagesEvent) {
		orphans = cells.UniqueNames(e.Pages)
		e.Pages = slices.DeleteFunc(e.Pages, func(p *cells.Page) bool { return p.UniqueName == "X" })
	})
	require.NoError(t, tm.LoadConfigFromArray(data))
	assert.Equal(t, []string{"Y", "X"}, orphans)
	assert.False(t, x.Disposed())
	assert.True(t, y.Disposed())
	assert.Empty(t, tm.Pages())
	assert.Empty(t, tm.control.Dockspaces())
}

func envelope(version string) *layoutxml.Element {
	root := layoutxml.New("KD")
	if version != "" {
		root.SetAttr("V", version)
	}
	root.AddChild("DGD")
	root.AddChild("DM").SetAttr("N", "DockingManager")
	return root
}

func TestLoadEnvelopeErrors(t *testing.T) {
	tm, _ := newLoadingManager(t)
	_, err := tm.AddToWorkspace("Docs", pages("A"))
	require.NoError(t, err)

	noChildren := layoutxml.New("KD").SetAttrInt("V", 1)
	swapped := envelope("1")
	swapped.Children[0], swapped.Children[1] = swapped.Children[1], swapped.Children[0]
	for name, root := range map[string]*layoutxml.Element{
		"wrong root":     layoutxml.New("Layout"),
		"no version":     envelope(""),
		"bad version":    envelope("one"),
		"zero version":   envelope("0"),
		"newer version":  envelope("2"),
		"no children":    noChildren,
		"swapped blocks": swapped,
	} {
		t.Run(name, func(t *testing.T) {
			var fe *FormatError
			assert.ErrorAs(t, tm.LoadConfig(root), &fe)
			assert.True(t, tm.ContainsPage("A"))
		})
	}

	assert.Error(t, tm.LoadConfigFromArray([]byte("not a layout")))
	assert.True(t, tm.ContainsPage("A"))
}

func TestLoadSkipsDuplicatesAndUnknown(t *testing.T) {
	root := envelope("1")
	dm := root.Children[1]
	dm.AddChild("DC").SetAttr("N", "Other")
	dw := dm.AddChild("DW").SetAttr("N", "Docs")
	wc := dw.AddChild("SEQ").SetAttr("O", "Horizontal").AddChild("WC")
	wc.AddChild("KP").SetAttr("UN", "A").SetAttrBool("V", true)
	wc.AddChild("KP").SetAttr("UN", "A").SetAttrBool("V", false)
	wc.AddChild("KP").SetAttr("UN", "B").SetAttr("S", "Docked")

	tm, ws := newLoadingManager(t)
	recreated := 0
	tm.OnRecreateLoadingPage(func(e *RecreateLoadingPageEvent) { recreated++ })
	require.NoError(t, tm.LoadConfig(root))

	assert.Equal(t, 1, recreated)
	require.Len(t, ws.Cells(), 1)
	c := ws.Cells()[0]
	assert.Equal(t, "cell-0", c.Name)
	assert.Equal(t, []string{"A", "B"}, cells.UniqueNames(c.Pages))
	assert.True(t, tm.IsPageShowing("A"))
	assert.True(t, tm.ContainsStorePage("B"))
}

func TestLoadPartialOnTreeError(t *testing.T) {
	root := envelope("1")
	dw := root.Children[1].AddChild("DW").SetAttr("N", "Docs")
	dw.AddChild("SEQ").AddChild("WC").AddChild("KP")

	tm, _ := newLoadingManager(t)
	x := cells.NewPage("X", "")
	_, err := tm.AddToWorkspace("Docs", []*cells.Page{x})
	require.NoError(t, err)
	var fe *FormatError
	assert.ErrorAs(t, tm.LoadConfig(root), &fe)
	assert.False(t, tm.ContainsPage("X"))
	assert.True(t, x.Disposed())
}

func TestSaveLoadFile(t *testing.T) {
	src, _ := newLoadingManager(t)
	src.Options.Encoding = layoutxml.UTF8
	_, err := src.AddDockspace("Main", EdgeRight, pages("A", "B"))
	require.NoError(t, err)
	fn := filepath.Join(t.TempDir(), "layout.xml")
	require.NoError(t, src.SaveConfigToFile(fn))

	root, err := layoutxml.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "KD", root.Name)
	assert.Equal(t, "1", root.AttrString("V", ""))

	dst, _ := newLoadingManager(t)
	require.NoError(t, dst.LoadConfigFromFile(fn))
	assert.Equal(t, []string{"A", "B"}, cells.UniqueNames(dst.Pages()))
	assert.Equal(t, EdgeRight, dst.control.Dockspaces()[0].Edge())
}

func TestWatchConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "layout.xml")
	src, _ := newLoadingManager(t)
	require.NoError(t, src.SaveConfigToFile(fn))

	dst, _ := newLoadingManager(t)
	posted := make(chan func(), 16)
	w, err := dst.WatchConfigFile(fn, func(fun func()) {
		select {
		case posted <- fun:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	_, err = src.AddToWorkspace("Docs", pages("A"))
	require.NoError(t, err)
	require.NoError(t, src.SaveConfigToFile(fn))
	deadline := time.After(5 * time.Second)
	for dst.FindPageLocation("A") != LocationWorkspace {
		select {
		case fun := <-posted:
			fun()
		case <-deadline:
			t.Fatal("layout file was not reloaded")
		}
	}
	assert.NoError(t, w.Close())
}
