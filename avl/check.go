// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlview/fault"
)

// Check - verify ordering, stored heights, balance and the node count
// returns nil if the tree is consistent
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrTreeCountMismatch
	}
	return nil
}

// internal: consistency checker, keys must lie strictly between low
// and high (nil means unbounded), returns the number of nodes
func check(p *Node, low *int, high *int) (int, error) {
	if nil == p {
		return 0, nil
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return 0, fault.ErrTreeOutOfOrder
	}

	nl, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	h := hl
	if hr > h {
		h = hr
	}
	if p.height != 1+h {
		return 0, fault.ErrTreeHeightIncorrect
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, fault.ErrTreeUnbalanced
	}
	return 1 + nl + nr, nil
}
