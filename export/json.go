// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/avlview/avl"
)

// Document - JSON form of a tree
type Document struct {
	Count     int           `json:"count"`
	Height    int           `json:"height"`
	Keys      []int         `json:"keys"`
	Rotations avl.Rotations `json:"rotations"`
	Geometry  Geometry      `json:"geometry"`
	Points    []Point       `json:"points"`
}

// MakeDocument - snapshot of the tree
func MakeDocument(tree *avl.Tree, g Geometry) *Document {
	return &Document{
		Count:     tree.Count(),
		Height:    tree.Height(),
		Keys:      tree.Keys(),
		Rotations: tree.Rotations(),
		Geometry:  g,
		Points:    Layout(tree, g),
	}
}

// WriteJSON - indented JSON document
func WriteJSON(handle io.Writer, tree *avl.Tree, g Geometry) error {

	b, err := json.MarshalIndent(MakeDocument(tree, g), "", "  ")
	if nil != err {
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
