// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"

	"github.com/bitmark-inc/avlview/avl"
)

// WriteTreeprint - indented drawing with the left sub-tree listed
// first, absent children of a half full node shown as "∅"
func WriteTreeprint(handle io.Writer, tree *avl.Tree) error {
	root := tree.Root()
	if nil == root {
		_, err := io.WriteString(handle, "(empty)\n")
		return err
	}

	t := treeprint.NewWithRoot(label(root))
	addBranches(t, root)
	_, err := io.WriteString(handle, t.String())
	return err
}

func addBranches(t treeprint.Tree, p *avl.Node) {
	left := p.Left()
	right := p.Right()
	if nil == left && nil == right {
		return
	}
	for _, child := range []*avl.Node{left, right} {
		if nil == child {
			t.AddNode("∅")
			continue
		}
		addBranches(t.AddBranch(label(child)), child)
	}
}

func label(p *avl.Node) string {
	return fmt.Sprintf("%d (h:%d %+d)", p.Key(), p.Height(), p.Balance())
}
