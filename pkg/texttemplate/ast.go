// Copyright 2026 Strata Authors.
// SPDX-License-Identifier: Apache-2.0

package texttemplate

import (
	"fmt"

	"github.com/strata-dev/strata/pkg/filepos"
)

type NodeRoot struct {
	Items []interface{}
}

// NodeText is a literal segment between delimiter matches.
type NodeText struct {
	Position *filepos.Position
	Content  string
}

// NodeValue is a value insertion: {{ expr }}.
type NodeValue struct {
	Position *filepos.Position
	Content  string
}

// NodeStmt is a control-flow statement: << stmt >>. An empty statement
// closes the enclosing block.
type NodeStmt struct {
	Position *filepos.Position
	Content  string
}

func (n *NodeRoot) AsString() string {
	var result string
	for _, item := range n.Items {
		switch typedItem := item.(type) {
		case *NodeText:
			result += typedItem.Content
		default:
			panic(fmt.Sprintf("unknown node type %T", typedItem))
		}
	}
	return result
}
