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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parapluirevel/terrier/pkg/expression"
	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

func TestUndefinedOperatorBehavior(t *testing.T) {
	var op Operator
	require.False(t, op.IsDefined())

	_, err := op.GetName()
	require.ErrorIs(t, err, ErrUndefinedOperator)
	_, err = op.GetOpType()
	require.ErrorIs(t, err, ErrUndefinedOperator)
	_, err = op.IsLogical()
	require.ErrorIs(t, err, ErrUndefinedOperator)
	_, err = op.IsPhysical()
	require.ErrorIs(t, err, ErrUndefinedOperator)
	_, err = op.Sum64()
	require.ErrorIs(t, err, ErrUndefinedOperator)
	require.ErrorIs(t, op.Hash64(base.NewHashEqualer()), ErrUndefinedOperator)
	require.ErrorIs(t, op.Accept(&BaseOperatorVisitor{}), ErrUndefinedOperator)

	// downcast on an undefined handle is absent, never a panic.
	_, ok := As[*LogicalGet](op)
	require.False(t, ok)

	// two undefined handles are equal to each other, but not to a defined one.
	var op2 Operator
	require.True(t, op.Equals(op2))
	defined := NewOperator(NewLogicalMaxOneRow())
	require.False(t, op.Equals(defined))
	require.False(t, defined.Equals(op))

	// cloning a placeholder is a placeholder.
	require.False(t, op.Clone().IsDefined())
}

func TestOperatorForwarding(t *testing.T) {
	op := NewOperator(NewLogicalGet(1, "t1"))
	require.True(t, op.IsDefined())

	name, err := op.GetName()
	require.NoError(t, err)
	require.Equal(t, "LogicalGet", name)

	tp, err := op.GetOpType()
	require.NoError(t, err)
	require.Equal(t, OpTypeLogicalGet, tp)

	logical, err := op.IsLogical()
	require.NoError(t, err)
	require.True(t, logical)
	physical, err := op.IsPhysical()
	require.NoError(t, err)
	require.False(t, physical)

	scan := NewOperator(NewPhysicalSeqScan(1, "t1"))
	logical, err = scan.IsLogical()
	require.NoError(t, err)
	require.False(t, logical)
	physical, err = scan.IsPhysical()
	require.NoError(t, err)
	require.True(t, physical)
}

func TestOperatorMoveSemantics(t *testing.T) {
	op := NewOperator(NewLogicalLimit(1, 10))
	moved := op.Move()
	require.True(t, moved.IsDefined())
	require.False(t, op.IsDefined())

	// moving an undefined handle keeps both undefined.
	var undef Operator
	moved2 := undef.Move()
	require.False(t, moved2.IsDefined())
	require.False(t, undef.IsDefined())
}

func TestOperatorCloneIndependence(t *testing.T) {
	col := &expression.Column{UniqueID: 1}
	filter := NewLogicalFilter([]expression.Expression{
		expression.NewFunction("gt", col, &expression.Constant{Value: int64(1)}),
	})
	op := NewOperator(filter)
	op2 := op.Clone()

	require.True(t, op.Equals(op2))
	sum1, err := op.Sum64()
	require.NoError(t, err)
	sum2, err := op2.Sum64()
	require.NoError(t, err)
	require.Equal(t, sum1, sum2)

	// the clone owns independent predicate storage.
	f1, ok := As[*LogicalFilter](op)
	require.True(t, ok)
	f2, ok := As[*LogicalFilter](op2)
	require.True(t, ok)
	require.NotSame(t, f1, f2)
	require.NotSame(t, f1.Predicates[0], f2.Predicates[0])

	// mutating the clone's predicate list never affects the original.
	f2.Predicates[0] = &expression.Constant{Value: true}
	require.False(t, op.Equals(op2))
	require.True(t, f1.Predicates[0].Equals(expression.NewFunction("gt", col, &expression.Constant{Value: int64(1)})))
}

func TestOperatorCloneNestedHandle(t *testing.T) {
	seed := NewOperator(NewLogicalGet(7, "t_seed"))
	anchor := NewOperator(NewLogicalCTEAnchor(1, seed))
	anchor2 := anchor.Clone()
	require.True(t, anchor.Equals(anchor2))

	a1, ok := As[*LogicalCTEAnchor](anchor)
	require.True(t, ok)
	a2, ok := As[*LogicalCTEAnchor](anchor2)
	require.True(t, ok)

	// the nested seed handle is recursively cloned, not aliased.
	s1, ok := As[*LogicalGet](a1.Seed)
	require.True(t, ok)
	s2, ok := As[*LogicalGet](a2.Seed)
	require.True(t, ok)
	require.NotSame(t, s1, s2)
	s2.TableID = 8
	require.False(t, anchor.Equals(anchor2))
	require.Equal(t, int64(7), s1.TableID)
}

func TestOperatorDowncastSoundness(t *testing.T) {
	join := NewLogicalInnerJoin(nil)
	op := NewOperator(join)

	got, ok := As[*LogicalInnerJoin](op)
	require.True(t, ok)
	require.Same(t, join, got)

	// every other registered kind is absent.
	_, ok = As[*LogicalGet](op)
	require.False(t, ok)
	_, ok = As[*LogicalFilter](op)
	require.False(t, ok)
	_, ok = As[*LogicalLimit](op)
	require.False(t, ok)
	_, ok = As[*LogicalMaxOneRow](op)
	require.False(t, ok)
	_, ok = As[*LogicalCTEAnchor](op)
	require.False(t, ok)
	_, ok = As[*PhysicalSeqScan](op)
	require.False(t, ok)
	_, ok = As[*PhysicalFilter](op)
	require.False(t, ok)
	_, ok = As[*PhysicalInnerNLJoin](op)
	require.False(t, ok)
	_, ok = As[*PhysicalLimit](op)
	require.False(t, ok)
}

func TestOperatorEndToEndJoinScenario(t *testing.T) {
	newCond := func(rightID int64) expression.Expression {
		return expression.NewFunction("eq",
			&expression.Column{UniqueID: 1},
			&expression.Column{UniqueID: rightID})
	}
	a := NewOperator(NewLogicalInnerJoin([]expression.Expression{newCond(2)}))
	b := NewOperator(NewLogicalInnerJoin([]expression.Expression{newCond(2)}))
	c := NewOperator(NewLogicalInnerJoin([]expression.Expression{newCond(3)}))

	require.True(t, a.Equals(b))
	sumA, err := a.Sum64()
	require.NoError(t, err)
	sumB, err := b.Sum64()
	require.NoError(t, err)
	require.Equal(t, sumA, sumB)
	require.False(t, a.Equals(c))

	a2 := a.Clone()
	require.True(t, a.Equals(a2))
	j1, ok := As[*LogicalInnerJoin](a)
	require.True(t, ok)
	j2, ok := As[*LogicalInnerJoin](a2)
	require.True(t, ok)
	require.NotSame(t, j1.JoinConditions[0], j2.JoinConditions[0])
}

func TestNodeClone(t *testing.T) {
	tree := NewNode(
		NewOperator(NewLogicalFilter(nil)),
		NewNode(NewOperator(NewLogicalGet(1, "t1"))),
	)
	tree2 := tree.Clone()
	require.True(t, tree.Op.Equals(tree2.Op))
	require.Len(t, tree2.Children, 1)
	require.True(t, tree.Children[0].Op.Equals(tree2.Children[0].Op))

	g1, ok := As[*LogicalGet](tree.Children[0].Op)
	require.True(t, ok)
	g2, ok := As[*LogicalGet](tree2.Children[0].Op)
	require.True(t, ok)
	require.NotSame(t, g1, g2)
}
