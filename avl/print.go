// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
// rotated 90° anticlockwise, returns the maximum depth of the tree
//
// output stops at the first write error, which is returned
func (tree *Tree) Print(w io.Writer, showHeights bool) (int, error) {
	return printTree(w, tree.root, "", root, showHeights)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, showHeights bool) (int, error) {
	if nil == tree {
		return 0, nil
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		d, err := printTree(w, tree.right, prefix+t, right, showHeights)
		if nil != err {
			return 0, err
		}
		rd = d
	}

	glyph := "|------+ "
	switch br {
	case left:
		glyph = "\\------+ "
	case right:
		glyph = "/------+ "
	}

	var err error
	if showHeights {
		_, err = fmt.Fprintf(w, "%s%s%d h:%d %+2d\n", prefix, glyph, tree.key, tree.height, balanceFactor(tree))
	} else {
		_, err = fmt.Fprintf(w, "%s%s%d\n", prefix, glyph, tree.key)
	}
	if nil != err {
		return 0, err
	}

	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		d, err := printTree(w, tree.left, prefix+t, left, showHeights)
		if nil != err {
			return 0, err
		}
		ld = d
	}
	if rd > ld {
		return 1 + rd, nil
	}
	return 1 + ld, nil
}
