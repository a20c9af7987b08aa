// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an absent sub-tree has height zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

func (p *Node) updateHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// single right rotation, y's left child takes its place
//
//         y          x
//        / \        / \
//       x   c  →   a   y
//      / \            / \
//     a   b          b   c
func (tree *Tree) rotateRight(y *Node) *Node {
	x := y.left
	y.left = x.right
	x.right = y

	y.updateHeight()
	x.updateHeight()

	tree.rightRotations.Increment()
	return x
}

// single left rotation, mirror of rotateRight
func (tree *Tree) rotateLeft(x *Node) *Node {
	y := x.right
	x.right = y.left
	y.left = x

	x.updateHeight()
	y.updateHeight()

	tree.leftRotations.Increment()
	return y
}

// recompute the height of p and restore the balance of the sub-tree
// rooted at p, returns the new sub-tree root
func (tree *Tree) rebalance(p *Node) *Node {
	p.updateHeight()

	switch bf := balanceFactor(p); {
	case bf > 1: // left heavy
		if balanceFactor(p.left) < 0 {
			// double LR rotation
			p.left = tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)

	case bf < -1: // right heavy
		if balanceFactor(p.right) > 0 {
			// double RL rotation
			p.right = tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)
	}
	return p
}
