// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of unique integer keys
//
// Each node stores the height of the sub-tree rooted at it and the
// tree is rebalanced on the way back up from every insert or delete:
// the recursive routines return the (possibly rotated) root of the
// sub-tree they were given and the caller stores it back into the
// parent link.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Deleting a node with two children copies the key of the in-order
// successor into the node and then deletes the successor from the
// right sub-tree.
//
// The shape of the tree can be read without touching any balancing
// state through Traverse, Positions and Level, which is what the
// export package uses to lay out a drawing.
package avl
