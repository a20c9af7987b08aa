// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/emicklei/dot"

	"github.com/bitmark-inc/avlview/avl"
)

// MakeGraph - Graphviz digraph of the tree
//
// a node with a single child gets an invisible sibling so that dot
// still draws the child to the correct side
func MakeGraph(tree *avl.Tree) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("ordering", "out")
	if root := tree.Root(); nil != root {
		addNode(g, root)
	}
	return g
}

func addNode(g *dot.Graph, p *avl.Node) dot.Node {
	n := g.Node(strconv.Itoa(p.Key()))
	n.Label(fmt.Sprintf("%d\nh:%d", p.Key(), p.Height()))

	left := p.Left()
	right := p.Right()
	if nil == left && nil == right {
		return n
	}

	for i, child := range []*avl.Node{left, right} {
		if nil != child {
			g.Edge(n, addNode(g, child))
			continue
		}
		placeholder := g.Node(fmt.Sprintf("%d.%d", p.Key(), i))
		placeholder.Attr("style", "invis")
		g.Edge(n, placeholder).Attr("style", "invis")
	}
	return n
}

// WriteDot - Graphviz source for the tree
func WriteDot(handle io.Writer, tree *avl.Tree) error {
	_, err := io.WriteString(handle, MakeGraph(tree).String())
	return err
}
