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

// Package pattern is the shape language transformation rules describe their
// applicable plan fragments with.
package pattern

import (
	"github.com/parapluirevel/terrier/pkg/planner/operator"
)

// Operand is the node of a pattern tree, the logical operator kind a rule
// matches on. Operands are a coarser view than the full type tag set: rules
// match logical operators only.
type Operand int

const (
	// OperandAny is a wildcard matching any operand.
	OperandAny Operand = iota
	// OperandGet is the operand for LogicalGet.
	OperandGet
	// OperandFilter is the operand for LogicalFilter.
	OperandFilter
	// OperandInnerJoin is the operand for LogicalInnerJoin.
	OperandInnerJoin
	// OperandLimit is the operand for LogicalLimit.
	OperandLimit
	// OperandMaxOneRow is the operand for LogicalMaxOneRow.
	OperandMaxOneRow
	// OperandCTEAnchor is the operand for LogicalCTEAnchor.
	OperandCTEAnchor
	// OperandUnsupported is the operand for operators rules cannot match,
	// physical kinds and undefined handles included.
	OperandUnsupported
)

// GetOperand maps an operator handle to its rule-matching operand.
func GetOperand(op operator.Operator) Operand {
	tp, err := op.GetOpType()
	if err != nil {
		return OperandUnsupported
	}
	switch tp {
	case operator.OpTypeLogicalGet:
		return OperandGet
	case operator.OpTypeLogicalFilter:
		return OperandFilter
	case operator.OpTypeLogicalInnerJoin:
		return OperandInnerJoin
	case operator.OpTypeLogicalLimit:
		return OperandLimit
	case operator.OpTypeLogicalMaxOneRow:
		return OperandMaxOneRow
	case operator.OpTypeLogicalCTEAnchor:
		return OperandCTEAnchor
	default:
		return OperandUnsupported
	}
}

// Match checks whether the pattern operand o matches the operand t of a plan
// operator. OperandAny on either side matches; OperandUnsupported never
// matches anything, itself included.
func (o Operand) Match(t Operand) bool {
	if o == OperandUnsupported || t == OperandUnsupported {
		return false
	}
	if o == OperandAny || t == OperandAny {
		return true
	}
	return o == t
}

// Pattern defines the shape of a plan fragment a rule applies to: an operand
// for the root plus optional patterns for its children. Nil Children means
// the rule doesn't care what is below the root.
type Pattern struct {
	Operand
	Children []*Pattern
}

// NewPattern creates a pattern node for the given operand.
func NewPattern(operand Operand) *Pattern {
	return &Pattern{Operand: operand}
}

// SetChildren sets the child patterns.
func (p *Pattern) SetChildren(children ...*Pattern) {
	p.Children = children
}

// BuildPattern builds a pattern node with children in one call.
func BuildPattern(operand Operand, children ...*Pattern) *Pattern {
	p := NewPattern(operand)
	if len(children) > 0 {
		p.SetChildren(children...)
	}
	return p
}
