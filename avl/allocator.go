// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlview/fault"
)

// a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int   // key for ordering
	height int   // height of this sub-tree, leaf = 1
}

// per tree allocator
type allocator struct {
	pool       *Node // linked list of reclaimed nodes
	maximum    int   // limit on nodes ever created, zero is unlimited
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the pool
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
//
// running out of nodes is fatal
func (a *allocator) newNode(key int) *Node {
	if nil == a.pool {
		if 0 != a.freeNodes {
			fault.Panic("avl: node pool corrupt")
		}
		if 0 != a.maximum && a.totalNodes >= a.maximum {
			fault.PanicWithError("avl: allocate node", fault.ErrNodeAllocationFailed)
		}
		a.totalNodes += 1
		return &Node{
			key:    key,
			height: 1,
		}
	}
	p := a.pool
	a.pool = p.right
	p.key = key
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	a.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (a *allocator) freeNode(node *Node) {
	node.right = a.pool // use as free list pointer

	node.left = nil
	node.key = 0
	node.height = 0
	a.freeNodes += 1

	a.pool = node
}
