// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package export

import (
	"io"
	"strings"

	"github.com/bitmark-inc/avlview/avl"
	"github.com/bitmark-inc/avlview/fault"
)

// output format names
const (
	ASCII     = "ascii"
	TreePrint = "tree"
	Dot       = "dot"
	JSON      = "json"
)

// ValidFormat - true if the name is a known format
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case ASCII, TreePrint, Dot, JSON:
		return true
	default:
		return false
	}
}

// Write - render the tree in the named format
func Write(handle io.Writer, tree *avl.Tree, format string, g Geometry) error {
	switch strings.ToLower(format) {
	case ASCII:
		return WriteASCII(handle, tree)
	case TreePrint:
		return WriteTreeprint(handle, tree)
	case Dot:
		return WriteDot(handle, tree)
	case JSON:
		return WriteJSON(handle, tree, g)
	default:
		return fault.ErrInvalidOutputFormat
	}
}

// WriteASCII - the tree drawing from avl.Print with heights and
// balance factors
func WriteASCII(handle io.Writer, tree *avl.Tree) error {
	if tree.IsEmpty() {
		_, err := io.WriteString(handle, "(empty)\n")
		return err
	}
	_, err := tree.Print(handle, true)
	return err
}
