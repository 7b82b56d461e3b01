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

package memo

import (
	"container/list"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
	"github.com/parapluirevel/terrier/pkg/planner/pattern"
	"github.com/parapluirevel/terrier/pkg/util/intest"
)

var _ base.HashEquals = &Group{}

// Group is the basic infra to store all logically equivalent expressions for
// one logical operator in the current context.
type Group struct {
	// groupID indicates the uniqueness of this group, also for encoding.
	groupID GroupID

	// logicalExpressions indicates the logical equiv classes for this group.
	logicalExpressions *list.List

	// operand2FirstExpr is used to locate to the first same-operand logical
	// expression in the list above instead of traversing them all.
	operand2FirstExpr map[pattern.Operand]*list.Element

	// hash2GroupExpr is used for de-duplication in the list.
	hash2GroupExpr map[uint64]*list.Element

	// Explored indicates whether this group has been explored.
	Explored bool
}

// NewGroup creates a new Group.
func NewGroup() *Group {
	return &Group{
		logicalExpressions: list.New(),
		operand2FirstExpr:  make(map[pattern.Operand]*list.Element),
		hash2GroupExpr:     make(map[uint64]*list.Element),
	}
}

// GetGroupID returns the unique id of this group.
func (g *Group) GetGroupID() GroupID {
	return g.groupID
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (g *Group) Hash64(h base.Hasher) {
	h.HashUint64(uint64(g.groupID))
}

// Equals implements the base.HashEquals.<1st> interface.
func (g *Group) Equals(other any) bool {
	if other == nil {
		return false
	}
	switch x := other.(type) {
	case *Group:
		return g.groupID == x.groupID
	case Group:
		return g.groupID == x.groupID
	default:
		return false
	}
}

// Exists checks whether a group expression with the given hash existed in
// this group.
func (g *Group) Exists(hash64u uint64) bool {
	_, ok := g.hash2GroupExpr[hash64u]
	return ok
}

// Lookup returns the expression in this group with the given hash that is
// structurally equal to e, if any.
func (g *Group) Lookup(e *GroupExpression) (*GroupExpression, bool) {
	elem, ok := g.hash2GroupExpr[e.Sum64()]
	if !ok {
		return nil, false
	}
	existed := elem.Value.(*GroupExpression)
	if existed.Equals(e) {
		return existed, true
	}
	return nil, false
}

// Insert adds a GroupExpression to the group, clustering expressions with
// the same operand together. It reports whether the expression was new.
func (g *Group) Insert(e *GroupExpression) bool {
	if e == nil {
		return false
	}
	// the expression hash should be initialized within Init(xxx) method.
	hash64 := e.Sum64()
	intest.Assert(hash64 != 0, "hash64 should not be 0")
	if g.Exists(hash64) {
		return false
	}
	operand := pattern.GetOperand(e.Op)
	var newEquiv *list.Element
	mark, ok := g.operand2FirstExpr[operand]
	if ok {
		// cluster same operands together.
		newEquiv = g.logicalExpressions.InsertAfter(e, mark)
	} else {
		// otherwise, put it at the end.
		newEquiv = g.logicalExpressions.PushBack(e)
		g.operand2FirstExpr[operand] = newEquiv
	}
	g.hash2GroupExpr[hash64] = newEquiv
	e.group = g
	return true
}

// Len returns the number of expressions currently in the group.
func (g *Group) Len() int {
	return g.logicalExpressions.Len()
}

// ForEachExpr traverses the group's expressions with f called on each one,
// stopping early when f returns false.
func (g *Group) ForEachExpr(f func(e *GroupExpression) bool) {
	for elem := g.logicalExpressions.Front(); elem != nil; elem = elem.Next() {
		expr := elem.Value.(*GroupExpression)
		if !f(expr) {
			break
		}
	}
}
