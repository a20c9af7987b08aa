// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package export

import (
	"github.com/bitmark-inc/avlview/avl"
)

// Geometry - placement of a drawing in a -1..+1 square
//
// the root is at (X, Y), a child is OffsetX to the side and OffsetY
// below its parent and OffsetX is multiplied by Shrink at each level
type Geometry struct {
	X       float64 `gluamapper:"x" json:"x"`
	Y       float64 `gluamapper:"y" json:"y"`
	OffsetX float64 `gluamapper:"offset_x" json:"offset_x"`
	OffsetY float64 `gluamapper:"offset_y" json:"offset_y"`
	Shrink  float64 `gluamapper:"shrink" json:"shrink"`
}

// DefaultGeometry - fits an 800x600 window
func DefaultGeometry() Geometry {
	return Geometry{
		X:       0.0,
		Y:       0.8,
		OffsetX: 0.4,
		OffsetY: 0.2,
		Shrink:  0.7,
	}
}

// Point - a node with its drawing coordinates and the coordinates of
// the end of the line to its parent
type Point struct {
	Key       int      `json:"key"`
	Depth     int      `json:"depth"`
	Slot      int      `json:"slot"`
	Path      avl.Path `json:"path"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	HasParent bool     `json:"has_parent"`
	ParentX   float64  `json:"parent_x"`
	ParentY   float64  `json:"parent_y"`
}

// Layout - coordinates of every node in ascending key order
func Layout(tree *avl.Tree, g Geometry) []Point {
	points := make([]Point, 0, tree.Count())
	tree.Traverse(avl.VisitorFunc(func(p avl.Position) {
		x, y := g.locate(p.Path)
		point := Point{
			Key:   p.Key,
			Depth: p.Depth,
			Slot:  p.Slot,
			Path:  p.Path,
			X:     x,
			Y:     y,
		}
		if len(p.Path) > 0 {
			point.HasParent = true
			point.ParentX, point.ParentY = g.locate(p.Path[:len(p.Path)-1])
		}
		points = append(points, point)
	}))
	return points
}

// follow a path down from the root
func (g Geometry) locate(path avl.Path) (float64, float64) {
	x := g.X
	y := g.Y
	offset := g.OffsetX
	for _, br := range path {
		if avl.LeftBranch == br {
			x -= offset
		} else {
			x += offset
		}
		y -= g.OffsetY
		offset *= g.Shrink
	}
	return x, y
}
