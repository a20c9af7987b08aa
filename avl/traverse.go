// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlview/fault"
)

// Branch - which link was followed from a parent
type Branch int

// link directions
const (
	LeftBranch  Branch = iota
	RightBranch Branch = iota
)

// String - "L" or "R"
func (b Branch) String() string {
	switch b {
	case LeftBranch:
		return "L"
	case RightBranch:
		return "R"
	default:
		return "?"
	}
}

// MarshalText - so JSON shows "L"/"R" rather than numbers
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText - accept "L" or "R"
func (b *Branch) UnmarshalText(s []byte) error {
	switch string(s) {
	case "L":
		*b = LeftBranch
	case "R":
		*b = RightBranch
	default:
		return fault.ErrInvalidBranch
	}
	return nil
}

// Path - lineage of a node from the root, empty for the root itself
type Path []Branch

// String - compact form such as "LRR", "-" for the root
func (path Path) String() string {
	if 0 == len(path) {
		return "-"
	}
	b := make([]byte, len(path))
	for i, br := range path {
		b[i] = br.String()[0]
	}
	return string(b)
}

// Position - where a key sits in the shape of the tree
type Position struct {
	Key    int  `json:"key"`
	Height int  `json:"height"`
	Depth  int  `json:"depth"` // root is at depth 0
	Path   Path `json:"path"`
	Slot   int  `json:"slot"` // horizontal index, same as the in-order index
}

// Visitor - receives the position of each node
type Visitor interface {
	Visit(Position)
}

// VisitorFunc - adapt a plain function to a Visitor
type VisitorFunc func(Position)

// Visit - call f
func (f VisitorFunc) Visit(position Position) {
	f(position)
}

// Traverse - depth first walk calling the visitor for each node in
// ascending key order
//
// the tree must not be modified by the visitor
func (tree *Tree) Traverse(v Visitor) {
	slot := 0
	traverse(tree.root, 0, Path{}, &slot, v)
}

func traverse(p *Node, depth int, path Path, slot *int, v Visitor) {
	if nil == p {
		return
	}
	traverse(p.left, depth+1, extend(path, LeftBranch), slot, v)

	lineage := make(Path, len(path))
	copy(lineage, path)
	v.Visit(Position{
		Key:    p.key,
		Height: p.height,
		Depth:  depth,
		Path:   lineage,
		Slot:   *slot,
	})
	*slot += 1

	traverse(p.right, depth+1, extend(path, RightBranch), slot, v)
}

// new path so siblings never share a backing array
func extend(path Path, br Branch) Path {
	p := make(Path, len(path)+1)
	copy(p, path)
	p[len(path)] = br
	return p
}

// Positions - the positions of all nodes in ascending key order
func (tree *Tree) Positions() []Position {
	positions := make([]Position, 0, tree.count)
	tree.Traverse(VisitorFunc(func(position Position) {
		positions = append(positions, position)
	}))
	return positions
}

// Level - keys at a specific depth of the tree, left to right
func (tree *Tree) Level(depth uint) []int {
	keys := []int{}
	for _, p := range tree.root.childrenByDepth(depth) {
		keys = append(keys, p.key)
	}
	return keys
}

// internal: all nodes at a specific depth below p
func (p *Node) childrenByDepth(depth uint) []*Node {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node{p}
	}
	nodes := p.left.childrenByDepth(depth - 1)
	return append(nodes, p.right.childrenByDepth(depth-1)...)
}
