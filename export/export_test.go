// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package export_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlview/avl"
	"github.com/bitmark-inc/avlview/export"
	"github.com/bitmark-inc/avlview/fault"
)

const delta = 1e-9

func seedTree() *avl.Tree {
	tree := avl.New()
	for _, key := range []int{40, 20, 50, 10, 30, 5, 25, 27} {
		tree.Insert(key)
	}
	return tree
}

func TestLayout(t *testing.T) {
	points := export.Layout(seedTree(), export.DefaultGeometry())

	expected := []struct {
		key int
		x   float64
		y   float64
		px  float64
		py  float64
	}{
		{5, -0.68, 0.4, -0.4, 0.6},
		{10, -0.4, 0.6, 0.0, 0.8},
		{20, 0.0, 0.8, 0.0, 0.0},
		{25, -0.076, 0.2, 0.12, 0.4},
		{27, 0.12, 0.4, 0.4, 0.6},
		{30, 0.316, 0.2, 0.12, 0.4},
		{40, 0.4, 0.6, 0.0, 0.8},
		{50, 0.68, 0.4, 0.4, 0.6},
	}

	if !assert.Equal(t, len(expected), len(points), "wrong number of points") {
		return
	}
	for i, e := range expected {
		p := points[i]
		assert.Equal(t, e.key, p.Key, "wrong key")
		assert.Equal(t, i, p.Slot, "wrong slot")
		assert.InDelta(t, e.x, p.X, delta, "x of: %d", e.key)
		assert.InDelta(t, e.y, p.Y, delta, "y of: %d", e.key)
		if 20 == e.key {
			assert.False(t, p.HasParent, "root has parent")
			continue
		}
		assert.True(t, p.HasParent, "missing parent of: %d", e.key)
		assert.InDelta(t, e.px, p.ParentX, delta, "parent x of: %d", e.key)
		assert.InDelta(t, e.py, p.ParentY, delta, "parent y of: %d", e.key)
	}
}

func TestLayoutEmpty(t *testing.T) {
	assert.Equal(t, []export.Point{}, export.Layout(avl.New(), export.DefaultGeometry()), "points of empty tree")
}

func TestWriteJSON(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := export.WriteJSON(buffer, seedTree(), export.DefaultGeometry())
	assert.Nil(t, err, "write error")

	var d export.Document
	err = json.Unmarshal(buffer.Bytes(), &d)
	assert.Nil(t, err, "unmarshal error")

	assert.Equal(t, 8, d.Count, "wrong count")
	assert.Equal(t, 4, d.Height, "wrong height")
	assert.Equal(t, []int{5, 10, 20, 25, 27, 30, 40, 50}, d.Keys, "wrong keys")
	assert.Equal(t, avl.Rotations{Left: 1, Right: 2}, d.Rotations, "wrong rotations")
	assert.Equal(t, export.DefaultGeometry(), d.Geometry, "wrong geometry")
	assert.Equal(t, 8, len(d.Points), "wrong points")
	assert.Contains(t, buffer.String(), `"path": [
        "R",
        "L"
      ]`, "path not written as letters")
}

func TestWriteDot(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := export.WriteDot(buffer, seedTree())
	assert.Nil(t, err, "write error")

	s := buffer.String()
	assert.True(t, strings.HasPrefix(s, "digraph"), "not a digraph")

	// seven real edges plus one placeholder under 10
	assert.Equal(t, 8, strings.Count(s, "->"), "wrong edge count")
	assert.Contains(t, s, "invis", "placeholder not hidden")
	assert.Contains(t, s, "ordering", "child ordering not set")

	buffer.Reset()
	err = export.WriteDot(buffer, avl.New())
	assert.Nil(t, err, "write error")
	assert.True(t, strings.HasPrefix(buffer.String(), "digraph"), "empty tree not a digraph")
	assert.Equal(t, 0, strings.Count(buffer.String(), "->"), "edges in empty tree")
}

func TestWriteTreeprint(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := export.WriteTreeprint(buffer, seedTree())
	assert.Nil(t, err, "write error")

	s := buffer.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	assert.Equal(t, 9, len(lines), "wrong line count:\n%s", s)
	assert.Equal(t, "20 (h:4 -1)", lines[0], "wrong root")
	assert.Contains(t, s, "∅", "missing placeholder")

	// left sub-tree is listed before the right
	assert.True(t, strings.Index(s, "10 (h:2 +1)") < strings.Index(s, "40 (h:3 +1)"), "wrong order")

	buffer.Reset()
	err = export.WriteTreeprint(buffer, avl.New())
	assert.Nil(t, err, "write error")
	assert.Equal(t, "(empty)\n", buffer.String(), "wrong empty drawing")
}

func TestWrite(t *testing.T) {
	tree := seedTree()
	g := export.DefaultGeometry()

	for _, format := range []string{export.ASCII, export.TreePrint, export.Dot, export.JSON, "JSON"} {
		buffer := &bytes.Buffer{}
		assert.True(t, export.ValidFormat(format), "format: %s", format)
		assert.Nil(t, export.Write(buffer, tree, format, g), "format: %s", format)
		assert.NotEqual(t, 0, buffer.Len(), "no output for: %s", format)
	}

	for _, format := range []string{export.ASCII, export.TreePrint, export.Dot, export.JSON} {
		buffer := &bytes.Buffer{}
		assert.NotPanics(t, func() {
			assert.Nil(t, export.Write(buffer, avl.New(), format, g), "empty tree format: %s", format)
		}, "empty tree format: %s", format)
		assert.NotEqual(t, 0, buffer.Len(), "no output for empty tree: %s", format)
	}

	assert.False(t, export.ValidFormat("svg"), "svg accepted")
	err := export.Write(&bytes.Buffer{}, tree, "svg", g)
	assert.Equal(t, fault.ErrInvalidOutputFormat, err, "wrong error")
}

func TestWriteASCII(t *testing.T) {
	tree := avl.New()
	buffer := &bytes.Buffer{}
	assert.Nil(t, export.WriteASCII(buffer, tree), "write error")
	assert.Equal(t, "(empty)\n", buffer.String(), "wrong empty drawing")

	tree.Insert(20)
	tree.Insert(10)
	tree.Insert(30)
	buffer.Reset()
	assert.Nil(t, export.WriteASCII(buffer, tree), "write error")
	assert.Equal(t, "       /------+ 30 h:1 +0\n|------+ 20 h:2 +0\n       \\------+ 10 h:1 +0\n", buffer.String(), "wrong drawing")

	err := export.WriteASCII(closedWriter{}, tree)
	assert.Equal(t, errClosed, err, "write error not returned")
}

var errClosed = errors.New("closed")

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) {
	return 0, errClosed
}
