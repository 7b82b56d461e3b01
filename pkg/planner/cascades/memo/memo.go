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

	"github.com/pingcap/errors"
	"github.com/pingcap/failpoint"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
	"github.com/parapluirevel/terrier/pkg/planner/operator"
	"github.com/parapluirevel/terrier/pkg/util/intest"
)

// MemoExpression is the currency for feeding plan fragments into the memo:
// an operator handle whose inputs are either further MemoExpressions (new or
// changed operators) or existing groups (unchanged subtrees produced by an
// earlier insertion or a rule binding).
type MemoExpression struct {
	// Op is the operator of this fragment node; undefined only when
	// FromGroup stands in for the whole subtree.
	Op operator.Operator

	// Inputs are the child fragments, used when FromGroup is nil.
	Inputs []*MemoExpression

	// FromGroup, when set, denotes the existing group this leaf refers to.
	FromGroup *Group
}

// ExprFromNode converts a bare operator tree into the memo's input currency.
// The operators are not cloned: the memo takes ownership of the tree.
func ExprFromNode(n *operator.Node) *MemoExpression {
	if n == nil {
		return nil
	}
	inputs := make([]*MemoExpression, 0, len(n.Children))
	for _, child := range n.Children {
		inputs = append(inputs, ExprFromNode(child))
	}
	return &MemoExpression{Op: n.Op, Inputs: inputs}
}

// Memo is the main structure of the memo package: the space of explored
// groups plus the structural-hash index that deduplicates equivalent group
// expressions when they are copied in.
type Memo struct {
	// groupIDGen is the incremental group id generator for internal usage.
	groupIDGen *GroupIDGenerator

	// rootGroup is the root group of the memo.
	rootGroup *Group

	// groups is the list of all groups in the memo.
	groups *list.List

	// groupID2Group is the map from group id to group.
	groupID2Group map[GroupID]*list.Element

	// hash2GroupExpr is the map from structural hash to group expression,
	// memo-wide, for detecting duplicates across groups.
	hash2GroupExpr map[uint64]*list.Element

	// hasher is the reusable hasher.
	hasher base.Hasher
}

// NewMemo creates a new memo.
func NewMemo() *Memo {
	return &Memo{
		groupIDGen:     &GroupIDGenerator{id: 0},
		groups:         list.New(),
		groupID2Group:  make(map[GroupID]*list.Element),
		hash2GroupExpr: make(map[uint64]*list.Element),
		hasher:         base.NewHashEqualer(),
	}
}

// GetHasher gets a hasher from the memo that is ready to use.
func (mm *Memo) GetHasher() base.Hasher {
	mm.hasher.Reset()
	return mm.hasher
}

// GetRootGroup gets the root group of the memo.
func (mm *Memo) GetRootGroup() *Group {
	return mm.rootGroup
}

// GetGroups gets all groups in the memo.
func (mm *Memo) GetGroups() *list.List {
	return mm.groups
}

// Init initializes the memo with a bare operator tree, converting it into
// the group tree and setting the root group.
func (mm *Memo) Init(n *operator.Node) (*GroupExpression, error) {
	intest.Assert(mm.groups.Len() == 0)
	ge, err := mm.CopyIn(nil, ExprFromNode(n))
	if err != nil {
		return nil, err
	}
	mm.rootGroup = ge.GetGroup()
	return ge, nil
}

// CopyIn copies a MemoExpression into the memo as a GroupExpression inside
// the target group. A nil target means a new group unless an equal
// expression already lives somewhere in the memo, in which case the existing
// expression is returned and nothing is inserted: this is the structural
// deduplication the operator hash/equality contract exists for.
func (mm *Memo) CopyIn(target *Group, me *MemoExpression) (*GroupExpression, error) {
	failpoint.Inject("MockCopyInError", func() {
		failpoint.Return(nil, errors.New("mock memo copy-in error"))
	})
	if me == nil {
		return nil, errors.AddStack(operator.ErrUndefinedOperator)
	}
	// group the children first.
	childGroups := make([]*Group, 0, len(me.Inputs))
	for _, input := range me.Inputs {
		var currentChildG *Group
		if input.FromGroup != nil {
			// the earliest unchanged subtree from a rule XForm.
			currentChildG = input.FromGroup
		} else {
			// a new/changed operator, downward to complete its input groups.
			childGE, err := mm.CopyIn(nil, input)
			if err != nil {
				return nil, err
			}
			currentChildG = childGE.GetGroup()
		}
		intest.Assert(currentChildG != nil)
		intest.Assert(currentChildG != target)
		childGroups = append(childGroups, currentChildG)
	}
	groupExpr := NewGroupExpression(me.Op, childGroups)
	if err := groupExpr.Init(mm.GetHasher()); err != nil {
		return nil, err
	}
	return mm.InsertGroupExpression(groupExpr, target), nil
}

// InsertGroupExpression inserts a fully initialized group expression into
// the target group, deduplicating against the whole memo. It returns the
// canonical expression: the existing equal one when there is a duplicate,
// otherwise the inserted argument.
func (mm *Memo) InsertGroupExpression(groupExpr *GroupExpression, target *Group) *GroupExpression {
	hash64 := groupExpr.Sum64()
	if elem, ok := mm.hash2GroupExpr[hash64]; ok {
		existed := elem.Value.(*GroupExpression)
		if existed.Equals(groupExpr) {
			return existed
		}
		// hash collision between structurally different expressions; fall
		// through and keep both, group-local dedup still applies.
	}
	if target == nil {
		target = mm.NewGroup()
		mm.groups.PushBack(target)
		mm.groupID2Group[target.groupID] = mm.groups.Back()
	}
	if !target.Insert(groupExpr) {
		// an equal expression is already present at the group level; hand
		// back the canonical one.
		if existed, ok := target.Lookup(groupExpr); ok {
			return existed
		}
		return groupExpr
	}
	mm.hash2GroupExpr[hash64] = target.hash2GroupExpr[hash64]
	return groupExpr
}

// NewGroup creates a new group with the next id.
func (mm *Memo) NewGroup() *Group {
	group := NewGroup()
	group.groupID = mm.groupIDGen.NextGroupID()
	return group
}

// ForEachGroup traverses the groups with f called on each, stopping early
// when f returns false.
func (mm *Memo) ForEachGroup(f func(g *Group) bool) {
	for elem := mm.groups.Front(); elem != nil; elem = elem.Next() {
		group := elem.Value.(*Group)
		if !f(group) {
			break
		}
	}
}
