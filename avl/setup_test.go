// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"github.com/bitmark-inc/avlview/avl"
)

// keys used by the demonstration program
var referenceSeed = []int{40, 20, 50, 10, 30, 5, 25, 27}

// the seeded tree is:
//
//            20
//          /    \
//        10      40
//       /       /  \
//      5      27    50
//            /  \
//          25    30
func seedTree() *avl.Tree {
	tree := avl.New()
	for _, key := range referenceSeed {
		tree.Insert(key)
	}
	return tree
}
