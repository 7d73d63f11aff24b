// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docking provides a docking layout engine: a tree of elements that
// places pages docked against the edges of controls, auto hidden on those
// edges, in floating windows, in workspaces, and in navigators.
//
// A [Manager] is the root of the tree. Pages are added with the builders
// such as [Manager.AddDockspace], and moved between locations with requests
// such as [Manager.MakeFloatingRequest]. Moving a page leaves a store page
// behind, so that moving it back puts it where it was. Layouts are saved to
// and loaded from XML with [Manager.SaveConfigToFile] and
// [Manager.LoadConfigFromFile].
package docking
