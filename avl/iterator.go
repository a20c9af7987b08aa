// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	tree.InOrder(func(key int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// InOrder - call f for each key in ascending order until f returns false
func (tree *Tree) InOrder(f func(key int) bool) {
	inOrder(tree.root, f)
}

func inOrder(p *Node, f func(int) bool) bool {
	if nil == p {
		return true
	}
	if !inOrder(p.left, f) {
		return false
	}
	if !f(p.key) {
		return false
	}
	return inOrder(p.right, f)
}
