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
	"github.com/pingcap/errors"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
	"github.com/parapluirevel/terrier/pkg/planner/operator"
	"github.com/parapluirevel/terrier/pkg/util/intest"
)

var _ base.HashEquals = &GroupExpression{}

// GroupExpression is a logical operator bound to child groups instead of
// child operators: one member of a group's equivalence class. Its hash and
// equality are structural over the operator contents plus the child group
// identities, which is what lets the memo deduplicate independently built
// but semantically identical fragments.
type GroupExpression struct {
	// Op is the operator handle this expression wraps.
	Op operator.Operator

	// Inputs are the child groups, order significant.
	Inputs []*Group

	// group is the equivalence class this expression currently belongs to.
	group *Group

	// hash64 is the cached structural hash, filled by Init.
	hash64 uint64
}

// NewGroupExpression creates a GroupExpression over op with the given child
// groups. Init must be called before the expression enters a group.
func NewGroupExpression(op operator.Operator, inputs []*Group) *GroupExpression {
	return &GroupExpression{
		Op:     op,
		Inputs: inputs,
	}
}

// GetGroup returns the group this expression belongs to.
func (e *GroupExpression) GetGroup() *Group {
	return e.group
}

// Sum64 returns the cached hash filled by Init.
func (e *GroupExpression) Sum64() uint64 {
	intest.Assert(e.hash64 != 0, "group expression hash should be initialized")
	return e.hash64
}

// Init computes and caches the structural hash with the given hasher. It is
// the one place an undefined operator handle surfaces inside the memo, so
// the forwarding error is propagated rather than asserted away.
func (e *GroupExpression) Init(h base.Hasher) error {
	if err := e.Op.Hash64(h); err != nil {
		return errors.Trace(err)
	}
	for _, input := range e.Inputs {
		input.Hash64(h)
	}
	e.hash64 = h.Sum64()
	return nil
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (e *GroupExpression) Hash64(h base.Hasher) {
	h.HashUint64(e.hash64)
}

// Equals implements the base.HashEquals.<1st> interface. Two group
// expressions are equal when their operators are semantically equal and they
// are bound to the same child groups in the same order.
func (e *GroupExpression) Equals(other any) bool {
	e2, ok := other.(*GroupExpression)
	if !ok {
		return false
	}
	if e == nil {
		return e2 == nil
	}
	if e2 == nil {
		return false
	}
	if len(e.Inputs) != len(e2.Inputs) {
		return false
	}
	if !e.Op.Equals(e2.Op) {
		return false
	}
	for i, input := range e.Inputs {
		if !input.Equals(e2.Inputs[i]) {
			return false
		}
	}
	return true
}
