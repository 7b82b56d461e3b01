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
)

// countingVisitor records how many times each handler fired.
type countingVisitor struct {
	BaseOperatorVisitor

	counts map[OpType]int
}

func newCountingVisitor() *countingVisitor {
	return &countingVisitor{counts: make(map[OpType]int)}
}

func (v *countingVisitor) VisitLogicalGet(*LogicalGet)                 { v.counts[OpTypeLogicalGet]++ }
func (v *countingVisitor) VisitLogicalFilter(*LogicalFilter)           { v.counts[OpTypeLogicalFilter]++ }
func (v *countingVisitor) VisitLogicalInnerJoin(*LogicalInnerJoin)     { v.counts[OpTypeLogicalInnerJoin]++ }
func (v *countingVisitor) VisitLogicalLimit(*LogicalLimit)             { v.counts[OpTypeLogicalLimit]++ }
func (v *countingVisitor) VisitLogicalMaxOneRow(*LogicalMaxOneRow)     { v.counts[OpTypeLogicalMaxOneRow]++ }
func (v *countingVisitor) VisitLogicalCTEAnchor(*LogicalCTEAnchor)     { v.counts[OpTypeLogicalCTEAnchor]++ }
func (v *countingVisitor) VisitPhysicalSeqScan(*PhysicalSeqScan)       { v.counts[OpTypePhysicalSeqScan]++ }
func (v *countingVisitor) VisitPhysicalFilter(*PhysicalFilter)         { v.counts[OpTypePhysicalFilter]++ }
func (v *countingVisitor) VisitPhysicalInnerNLJoin(*PhysicalInnerNLJoin) {
	v.counts[OpTypePhysicalInnerNLJoin]++
}
func (v *countingVisitor) VisitPhysicalLimit(*PhysicalLimit) { v.counts[OpTypePhysicalLimit]++ }

func TestVisitorDispatch(t *testing.T) {
	all := []NodeContents{
		NewLogicalGet(1, "t1"),
		NewLogicalFilter(nil),
		NewLogicalInnerJoin(nil),
		NewLogicalLimit(0, 1),
		NewLogicalMaxOneRow(),
		NewLogicalCTEAnchor(1, Operator{}),
		NewPhysicalSeqScan(1, "t1"),
		NewPhysicalFilter(nil),
		NewPhysicalInnerNLJoin(nil),
		NewPhysicalLimit(0, 1),
	}
	for _, contents := range all {
		v := newCountingVisitor()
		op := NewOperator(contents)
		require.NoError(t, op.Accept(v))
		// exactly one handler fired, and it is the one matching the tag.
		require.Len(t, v.counts, 1, contents.GetName())
		require.Equal(t, 1, v.counts[contents.GetOpType()], contents.GetName())
	}
}

func TestVisitorBaseIsNoOp(t *testing.T) {
	// the embeddable base accepts every kind without effect.
	base := &BaseOperatorVisitor{}
	op := NewOperator(NewLogicalGet(1, "t1"))
	require.NoError(t, op.Accept(base))
}

func TestToString(t *testing.T) {
	cond := expression.NewFunction("eq",
		&expression.Column{UniqueID: 1, OrigName: "t1.a"},
		&expression.Column{UniqueID: 2, OrigName: "t2.a"})
	pred := expression.NewFunction("gt",
		&expression.Column{UniqueID: 3, OrigName: "t2.b"},
		&expression.Constant{Value: int64(1)})
	tree := NewNode(
		NewOperator(NewLogicalInnerJoin([]expression.Expression{cond})),
		NewNode(NewOperator(NewLogicalGet(1, "t1"))),
		NewNode(
			NewOperator(NewLogicalFilter([]expression.Expression{pred})),
			NewNode(NewOperator(NewLogicalGet(2, "t2"))),
		),
	)
	require.Equal(t, "InnerJoin(eq(t1.a, t2.a)){Get(t1)->Filter(gt(t2.b, 1)){Get(t2)}}", ToString(tree))

	undef := NewNode(Operator{})
	require.Equal(t, "Undefined", ToString(undef))
}
