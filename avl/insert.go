// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present, the tree is unchanged
func (tree *Tree) Insert(key int) bool {
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the new sub-tree root
func (tree *Tree) insert(key int, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return tree.allocator.newNode(key), true
	}

	added := false
	switch {
	case key < p.key:
		p.left, added = tree.insert(key, p.left)
	case key > p.key:
		p.right, added = tree.insert(key, p.right)
	default: // duplicate
		return p, false
	}
	return tree.rebalance(p), added
}
