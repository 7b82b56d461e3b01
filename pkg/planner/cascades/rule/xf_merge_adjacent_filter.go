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

package rule

import (
	"github.com/parapluirevel/terrier/pkg/expression"
	"github.com/parapluirevel/terrier/pkg/planner/cascades/memo"
	"github.com/parapluirevel/terrier/pkg/planner/operator"
	"github.com/parapluirevel/terrier/pkg/planner/pattern"
)

var _ Rule = &XFMergeAdjacentFilter{}

// XFMergeAdjacentFilter fuses Filter(Filter(x)) into a single filter holding
// the concatenated predicates, one fused alternative per filter expression
// found in the child group.
type XFMergeAdjacentFilter struct {
	pat *pattern.Pattern
}

// NewXFMergeAdjacentFilter creates a new XFMergeAdjacentFilter rule.
func NewXFMergeAdjacentFilter() *XFMergeAdjacentFilter {
	return &XFMergeAdjacentFilter{
		pat: pattern.BuildPattern(pattern.OperandFilter, pattern.NewPattern(pattern.OperandFilter)),
	}
}

// ID implements the Rule interface.
func (*XFMergeAdjacentFilter) ID() uint {
	return XFMergeAdjacentFilterID
}

// Name implements the Rule interface.
func (*XFMergeAdjacentFilter) Name() string {
	return "merge_adjacent_filter"
}

// Pattern implements the Rule interface.
func (r *XFMergeAdjacentFilter) Pattern() *pattern.Pattern {
	return r.pat
}

// Match implements the Rule interface: the root must be a filter over a
// group that holds at least one filter expression.
func (r *XFMergeAdjacentFilter) Match(ge *memo.GroupExpression) bool {
	if _, ok := operator.As[*operator.LogicalFilter](ge.Op); !ok {
		return false
	}
	if len(ge.Inputs) != 1 {
		return false
	}
	matched := false
	ge.Inputs[0].ForEachExpr(func(child *memo.GroupExpression) bool {
		if _, ok := operator.As[*operator.LogicalFilter](child.Op); ok {
			matched = true
			return false
		}
		return true
	})
	return matched
}

// XForm implements the Rule interface.
func (r *XFMergeAdjacentFilter) XForm(ge *memo.GroupExpression) ([]*memo.MemoExpression, error) {
	parent, ok := operator.As[*operator.LogicalFilter](ge.Op)
	if !ok {
		return nil, nil
	}
	var substitutes []*memo.MemoExpression
	ge.Inputs[0].ForEachExpr(func(child *memo.GroupExpression) bool {
		childFilter, ok := operator.As[*operator.LogicalFilter](child.Op)
		if !ok || len(child.Inputs) != 1 {
			return true
		}
		merged := make([]expression.Expression, 0, len(parent.Predicates)+len(childFilter.Predicates))
		merged = append(merged, expression.CloneExprs(parent.Predicates)...)
		merged = append(merged, expression.CloneExprs(childFilter.Predicates)...)
		substitutes = append(substitutes, &memo.MemoExpression{
			Op:     operator.NewOperator(operator.NewLogicalFilter(merged)),
			Inputs: []*memo.MemoExpression{{FromGroup: child.Inputs[0]}},
		})
		return true
	})
	return substitutes, nil
}
