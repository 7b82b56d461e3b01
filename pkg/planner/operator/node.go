// Copyright 2025 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operator

// Node is one node of the bare operator tree the planner builds before the
// memo takes over: an operator handle plus child subtrees.
type Node struct {
	Op       Operator
	Children []*Node
}

// NewNode creates a tree node owning op with the given children.
func NewNode(op Operator, children ...*Node) *Node {
	return &Node{Op: op, Children: children}
}

// Clone deep-copies the subtree rooted at n; the copy shares no mutable
// state with the original, down through every owned contents instance.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	var children []*Node
	if n.Children != nil {
		children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			children = append(children, child.Clone())
		}
	}
	return &Node{Op: n.Op.Clone(), Children: children}
}
