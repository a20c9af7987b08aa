// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package export - render the shape of an AVL tree for external
// drawing programs
//
// everything here is built on avl.Traverse so no balancing state is
// touched; the formats are an ASCII drawing, an indented tree, a
// Graphviz digraph and a JSON document carrying node coordinates
package export
