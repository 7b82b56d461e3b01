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
	"github.com/parapluirevel/terrier/pkg/expression"
	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

var (
	_ NodeContents = &PhysicalSeqScan{}
	_ NodeContents = &PhysicalFilter{}
	_ NodeContents = &PhysicalInnerNLJoin{}
	_ NodeContents = &PhysicalLimit{}
)

// PhysicalSeqScan scans a base table sequentially.
type PhysicalSeqScan struct {
	BaseNodeContents

	TableID   int64
	TableName string
}

// NewPhysicalSeqScan creates a PhysicalSeqScan contents instance.
func NewPhysicalSeqScan(tableID int64, tableName string) *PhysicalSeqScan {
	return &PhysicalSeqScan{
		BaseNodeContents: NewBaseNodeContents(OpTypePhysicalSeqScan),
		TableID:          tableID,
		TableName:        tableName,
	}
}

// Copy implements the NodeContents interface.
func (p *PhysicalSeqScan) Copy() NodeContents {
	np := *p
	return &np
}

// Accept implements the NodeContents interface.
func (p *PhysicalSeqScan) Accept(v OperatorVisitor) {
	v.VisitPhysicalSeqScan(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *PhysicalSeqScan) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	h.HashInt64(p.TableID)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *PhysicalSeqScan) Equals(other any) bool {
	p2, ok := other.(*PhysicalSeqScan)
	if !ok {
		return false
	}
	if p == nil {
		return p2 == nil
	}
	if p2 == nil {
		return false
	}
	return p.TableID == p2.TableID
}

// PhysicalFilter is the executable counterpart of LogicalFilter.
type PhysicalFilter struct {
	BaseNodeContents

	Predicates []expression.Expression
}

// NewPhysicalFilter creates a PhysicalFilter contents instance.
func NewPhysicalFilter(predicates []expression.Expression) *PhysicalFilter {
	return &PhysicalFilter{
		BaseNodeContents: NewBaseNodeContents(OpTypePhysicalFilter),
		Predicates:       predicates,
	}
}

// Copy implements the NodeContents interface.
func (p *PhysicalFilter) Copy() NodeContents {
	np := *p
	np.Predicates = expression.CloneExprs(p.Predicates)
	return &np
}

// Accept implements the NodeContents interface.
func (p *PhysicalFilter) Accept(v OperatorVisitor) {
	v.VisitPhysicalFilter(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *PhysicalFilter) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	expression.Hash64Exprs(h, p.Predicates)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *PhysicalFilter) Equals(other any) bool {
	p2, ok := other.(*PhysicalFilter)
	if !ok {
		return false
	}
	if p == nil {
		return p2 == nil
	}
	if p2 == nil {
		return false
	}
	return expression.EqualsExprs(p.Predicates, p2.Predicates)
}

// PhysicalInnerNLJoin executes an inner join with nested loops.
type PhysicalInnerNLJoin struct {
	BaseNodeContents

	JoinConditions []expression.Expression
}

// NewPhysicalInnerNLJoin creates a PhysicalInnerNLJoin contents instance.
func NewPhysicalInnerNLJoin(conditions []expression.Expression) *PhysicalInnerNLJoin {
	return &PhysicalInnerNLJoin{
		BaseNodeContents: NewBaseNodeContents(OpTypePhysicalInnerNLJoin),
		JoinConditions:   conditions,
	}
}

// Copy implements the NodeContents interface.
func (p *PhysicalInnerNLJoin) Copy() NodeContents {
	np := *p
	np.JoinConditions = expression.CloneExprs(p.JoinConditions)
	return &np
}

// Accept implements the NodeContents interface.
func (p *PhysicalInnerNLJoin) Accept(v OperatorVisitor) {
	v.VisitPhysicalInnerNLJoin(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *PhysicalInnerNLJoin) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	expression.Hash64Exprs(h, p.JoinConditions)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *PhysicalInnerNLJoin) Equals(other any) bool {
	p2, ok := other.(*PhysicalInnerNLJoin)
	if !ok {
		return false
	}
	if p == nil {
		return p2 == nil
	}
	if p2 == nil {
		return false
	}
	return expression.EqualsExprs(p.JoinConditions, p2.JoinConditions)
}

// PhysicalLimit is the executable counterpart of LogicalLimit.
type PhysicalLimit struct {
	BaseNodeContents

	Offset uint64
	Count  uint64
}

// NewPhysicalLimit creates a PhysicalLimit contents instance.
func NewPhysicalLimit(offset, count uint64) *PhysicalLimit {
	return &PhysicalLimit{
		BaseNodeContents: NewBaseNodeContents(OpTypePhysicalLimit),
		Offset:           offset,
		Count:            count,
	}
}

// Copy implements the NodeContents interface.
func (p *PhysicalLimit) Copy() NodeContents {
	np := *p
	return &np
}

// Accept implements the NodeContents interface.
func (p *PhysicalLimit) Accept(v OperatorVisitor) {
	v.VisitPhysicalLimit(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *PhysicalLimit) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	h.HashUint64(p.Offset)
	h.HashUint64(p.Count)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *PhysicalLimit) Equals(other any) bool {
	p2, ok := other.(*PhysicalLimit)
	if !ok {
		return false
	}
	if p == nil {
		return p2 == nil
	}
	if p2 == nil {
		return false
	}
	return p.Offset == p2.Offset && p.Count == p2.Count
}
