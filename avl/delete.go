// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific key from the tree
// returns false if the key was not present, the tree is unchanged
func (tree *Tree) Delete(key int) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the new sub-tree root
func (tree *Tree) delete(key int, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch {
	case key < p.key:
		p.left, removed = tree.delete(key, p.left)
	case key > p.key:
		p.right, removed = tree.delete(key, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			tree.allocator.freeNode(p) // return deleted node to pool
			return child, true
		}

		// two children: take over the successor's key then
		// remove the successor, which has no left child
		successor := p.right.first()
		p.key = successor.key
		p.right, removed = tree.delete(successor.key, p.right)
	}
	return tree.rebalance(p), removed
}
