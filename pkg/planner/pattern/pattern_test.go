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

package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parapluirevel/terrier/pkg/planner/operator"
)

func TestGetOperand(t *testing.T) {
	require.Equal(t, OperandGet, GetOperand(operator.NewOperator(operator.NewLogicalGet(1, "t"))))
	require.Equal(t, OperandFilter, GetOperand(operator.NewOperator(operator.NewLogicalFilter(nil))))
	require.Equal(t, OperandInnerJoin, GetOperand(operator.NewOperator(operator.NewLogicalInnerJoin(nil))))
	require.Equal(t, OperandLimit, GetOperand(operator.NewOperator(operator.NewLogicalLimit(0, 1))))
	require.Equal(t, OperandMaxOneRow, GetOperand(operator.NewOperator(operator.NewLogicalMaxOneRow())))
	require.Equal(t, OperandCTEAnchor, GetOperand(operator.NewOperator(operator.NewLogicalCTEAnchor(1, operator.Operator{}))))

	// physical kinds and undefined handles are out of the rule language.
	require.Equal(t, OperandUnsupported, GetOperand(operator.NewOperator(operator.NewPhysicalSeqScan(1, "t"))))
	require.Equal(t, OperandUnsupported, GetOperand(operator.Operator{}))
}

func TestOperandMatch(t *testing.T) {
	require.True(t, OperandAny.Match(OperandGet))
	require.True(t, OperandFilter.Match(OperandAny))
	require.True(t, OperandFilter.Match(OperandFilter))
	require.False(t, OperandFilter.Match(OperandGet))
	require.False(t, OperandUnsupported.Match(OperandUnsupported))
	require.False(t, OperandAny.Match(OperandUnsupported))
	require.False(t, OperandUnsupported.Match(OperandAny))
}

func TestBuildPattern(t *testing.T) {
	p := BuildPattern(OperandFilter, NewPattern(OperandFilter))
	require.Equal(t, OperandFilter, p.Operand)
	require.Len(t, p.Children, 1)
	require.Equal(t, OperandFilter, p.Children[0].Operand)
	require.Nil(t, p.Children[0].Children)

	leaf := BuildPattern(OperandGet)
	require.Nil(t, leaf.Children)

	p2 := NewPattern(OperandInnerJoin)
	p2.SetChildren(NewPattern(OperandAny), NewPattern(OperandAny))
	require.Len(t, p2.Children, 2)
}
