// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlview/counter"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root           *Node
	count          int
	allocator      allocator
	leftRotations  counter.Counter
	rightRotations counter.Counter
}

// Rotations - number of single rotations performed since the tree
// was created, a double rotation counts once in each direction
type Rotations struct {
	Left  uint64 `json:"left"`
	Right uint64 `json:"right"`
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewLimited - create an empty tree that can never allocate more than
// maximum nodes, going past the limit panics
func NewLimited(maximum int) *Tree {
	tree := New()
	if maximum > 0 {
		tree.allocator.maximum = maximum
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Rotations - read the rotation counters
func (tree *Tree) Rotations() Rotations {
	return Rotations{
		Left:  tree.leftRotations.Uint64(),
		Right: tree.rightRotations.Uint64(),
	}
}

// ResetRotations - zero the rotation counters, returns the values
// they held
func (tree *Tree) ResetRotations() Rotations {
	return Rotations{
		Left:  tree.leftRotations.Reset(),
		Right: tree.rightRotations.Reset(),
	}
}

// Clear - release every node, the tree is empty afterwards
func (tree *Tree) Clear() {
	tree.release(tree.root)
	tree.root = nil
	tree.count = 0
}

func (tree *Tree) release(p *Node) {
	if nil == p {
		return
	}
	tree.release(p.left)
	tree.release(p.right)
	tree.allocator.freeNode(p)
}

// Key - read the key from a node
func (p *Node) Key() int {
	return p.key
}

// Height - height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// Balance - height(left) - height(right)
func (p *Node) Balance() int {
	return balanceFactor(p)
}

// Left - left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}
