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

package cascades

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/parapluirevel/terrier/pkg/expression"
	"github.com/parapluirevel/terrier/pkg/planner/cascades/memo"
	"github.com/parapluirevel/terrier/pkg/planner/operator"
)

func stackedFilterTree() *operator.Node {
	p1 := expression.NewFunction("gt", &expression.Column{UniqueID: 1}, &expression.Constant{Value: int64(0)})
	p2 := expression.NewFunction("lt", &expression.Column{UniqueID: 2}, &expression.Constant{Value: int64(10)})
	return operator.NewNode(
		operator.NewOperator(operator.NewLogicalFilter([]expression.Expression{p1})),
		operator.NewNode(
			operator.NewOperator(operator.NewLogicalFilter([]expression.Expression{p2})),
			operator.NewNode(operator.NewOperator(operator.NewLogicalGet(1, "t1"))),
		),
	)
}

func TestOptimizerMergesAdjacentFilters(t *testing.T) {
	opt := NewOptimizer()
	rootGroup, err := opt.Execute(stackedFilterTree())
	require.NoError(t, err)
	require.NotNil(t, rootGroup)

	// the root group holds the original filter plus the merged alternative.
	require.Equal(t, 2, rootGroup.Len())
	var merged *memo.GroupExpression
	rootGroup.ForEachExpr(func(e *memo.GroupExpression) bool {
		if f, ok := operator.As[*operator.LogicalFilter](e.Op); ok && len(f.Predicates) == 2 {
			merged = e
			return false
		}
		return true
	})
	require.NotNil(t, merged)

	// the merged alternative reads the scan group directly.
	require.Len(t, merged.Inputs, 1)
	scanSeen := false
	merged.Inputs[0].ForEachExpr(func(e *memo.GroupExpression) bool {
		_, scanSeen = operator.As[*operator.LogicalGet](e.Op)
		return !scanSeen
	})
	require.True(t, scanSeen)

	// exploration reached a fixpoint with every group marked explored.
	opt.Memo().ForEachGroup(func(g *memo.Group) bool {
		require.True(t, g.Explored)
		return true
	})
}

func TestOptimizerWithRulesDisabled(t *testing.T) {
	opt := NewOptimizer()
	opt.SetRuleMask(bitset.New(8))
	rootGroup, err := opt.Execute(stackedFilterTree())
	require.NoError(t, err)
	// nothing fires, so every group keeps its single original expression.
	require.Equal(t, 1, rootGroup.Len())
	require.Equal(t, 3, opt.Memo().GetGroups().Len())
}

func TestOptimizerRejectsUndefinedRoot(t *testing.T) {
	opt := NewOptimizer()
	_, err := opt.Execute(nil)
	require.ErrorIs(t, err, operator.ErrUndefinedOperator)

	opt = NewOptimizer()
	_, err = opt.Execute(operator.NewNode(operator.Operator{}))
	require.ErrorIs(t, err, operator.ErrUndefinedOperator)
}

func TestOptimizerIdempotentShape(t *testing.T) {
	// two runs over equal trees produce memos of the same shape.
	opt1 := NewOptimizer()
	g1, err := opt1.Execute(stackedFilterTree())
	require.NoError(t, err)
	opt2 := NewOptimizer()
	g2, err := opt2.Execute(stackedFilterTree())
	require.NoError(t, err)
	require.Equal(t, g1.Len(), g2.Len())
	require.Equal(t, opt1.Memo().GetGroups().Len(), opt2.Memo().GetGroups().Len())
}
