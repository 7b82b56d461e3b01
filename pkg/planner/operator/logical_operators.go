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
	_ NodeContents = &LogicalGet{}
	_ NodeContents = &LogicalFilter{}
	_ NodeContents = &LogicalInnerJoin{}
	_ NodeContents = &LogicalLimit{}
	_ NodeContents = &LogicalMaxOneRow{}
	_ NodeContents = &LogicalCTEAnchor{}
)

// LogicalGet reads a base table. TableID is the semantic identity; TableName
// is carried for display only.
type LogicalGet struct {
	BaseNodeContents

	TableID   int64
	TableName string
}

// NewLogicalGet creates a LogicalGet contents instance.
func NewLogicalGet(tableID int64, tableName string) *LogicalGet {
	return &LogicalGet{
		BaseNodeContents: NewBaseNodeContents(OpTypeLogicalGet),
		TableID:          tableID,
		TableName:        tableName,
	}
}

// Copy implements the NodeContents interface.
func (p *LogicalGet) Copy() NodeContents {
	np := *p
	return &np
}

// Accept implements the NodeContents interface.
func (p *LogicalGet) Accept(v OperatorVisitor) {
	v.VisitLogicalGet(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *LogicalGet) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	h.HashInt64(p.TableID)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *LogicalGet) Equals(other any) bool {
	p2, ok := other.(*LogicalGet)
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

// LogicalFilter keeps the rows of its child satisfying every predicate.
type LogicalFilter struct {
	BaseNodeContents

	Predicates []expression.Expression
}

// NewLogicalFilter creates a LogicalFilter contents instance.
func NewLogicalFilter(predicates []expression.Expression) *LogicalFilter {
	return &LogicalFilter{
		BaseNodeContents: NewBaseNodeContents(OpTypeLogicalFilter),
		Predicates:       predicates,
	}
}

// Copy implements the NodeContents interface.
func (p *LogicalFilter) Copy() NodeContents {
	np := *p
	np.Predicates = expression.CloneExprs(p.Predicates)
	return &np
}

// Accept implements the NodeContents interface.
func (p *LogicalFilter) Accept(v OperatorVisitor) {
	v.VisitLogicalFilter(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *LogicalFilter) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	expression.Hash64Exprs(h, p.Predicates)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *LogicalFilter) Equals(other any) bool {
	p2, ok := other.(*LogicalFilter)
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

// LogicalInnerJoin joins its two children on the conjunction of the join
// conditions.
type LogicalInnerJoin struct {
	BaseNodeContents

	JoinConditions []expression.Expression
}

// NewLogicalInnerJoin creates a LogicalInnerJoin contents instance.
func NewLogicalInnerJoin(conditions []expression.Expression) *LogicalInnerJoin {
	return &LogicalInnerJoin{
		BaseNodeContents: NewBaseNodeContents(OpTypeLogicalInnerJoin),
		JoinConditions:   conditions,
	}
}

// Copy implements the NodeContents interface.
func (p *LogicalInnerJoin) Copy() NodeContents {
	np := *p
	np.JoinConditions = expression.CloneExprs(p.JoinConditions)
	return &np
}

// Accept implements the NodeContents interface.
func (p *LogicalInnerJoin) Accept(v OperatorVisitor) {
	v.VisitLogicalInnerJoin(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *LogicalInnerJoin) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	expression.Hash64Exprs(h, p.JoinConditions)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *LogicalInnerJoin) Equals(other any) bool {
	p2, ok := other.(*LogicalInnerJoin)
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

// LogicalLimit returns at most Count rows of its child after skipping Offset.
type LogicalLimit struct {
	BaseNodeContents

	Offset uint64
	Count  uint64
}

// NewLogicalLimit creates a LogicalLimit contents instance.
func NewLogicalLimit(offset, count uint64) *LogicalLimit {
	return &LogicalLimit{
		BaseNodeContents: NewBaseNodeContents(OpTypeLogicalLimit),
		Offset:           offset,
		Count:            count,
	}
}

// Copy implements the NodeContents interface.
func (p *LogicalLimit) Copy() NodeContents {
	np := *p
	return &np
}

// Accept implements the NodeContents interface.
func (p *LogicalLimit) Accept(v OperatorVisitor) {
	v.VisitLogicalLimit(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *LogicalLimit) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	h.HashUint64(p.Offset)
	h.HashUint64(p.Count)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *LogicalLimit) Equals(other any) bool {
	p2, ok := other.(*LogicalLimit)
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

// LogicalMaxOneRow asserts its child produces at most one row. It carries no
// fields, so the tag-only Hash64/Equals defaults are exactly right: any two
// instances are interchangeable.
type LogicalMaxOneRow struct {
	BaseNodeContents
}

// NewLogicalMaxOneRow creates a LogicalMaxOneRow contents instance.
func NewLogicalMaxOneRow() *LogicalMaxOneRow {
	return &LogicalMaxOneRow{
		BaseNodeContents: NewBaseNodeContents(OpTypeLogicalMaxOneRow),
	}
}

// Copy implements the NodeContents interface.
func (p *LogicalMaxOneRow) Copy() NodeContents {
	np := *p
	return &np
}

// Accept implements the NodeContents interface.
func (p *LogicalMaxOneRow) Accept(v OperatorVisitor) {
	v.VisitLogicalMaxOneRow(p)
}

// LogicalCTEAnchor owns the seed plan of a common table expression as a
// nested handle, so copying the anchor must recursively clone the seed.
type LogicalCTEAnchor struct {
	BaseNodeContents

	CTEID int64
	Seed  Operator
}

// NewLogicalCTEAnchor creates a LogicalCTEAnchor contents instance taking
// ownership of the seed handle.
func NewLogicalCTEAnchor(cteID int64, seed Operator) *LogicalCTEAnchor {
	return &LogicalCTEAnchor{
		BaseNodeContents: NewBaseNodeContents(OpTypeLogicalCTEAnchor),
		CTEID:            cteID,
		Seed:             seed,
	}
}

// Copy implements the NodeContents interface.
func (p *LogicalCTEAnchor) Copy() NodeContents {
	np := *p
	np.Seed = p.Seed.Clone()
	return &np
}

// Accept implements the NodeContents interface.
func (p *LogicalCTEAnchor) Accept(v OperatorVisitor) {
	v.VisitLogicalCTEAnchor(p)
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (p *LogicalCTEAnchor) Hash64(h base.Hasher) {
	p.BaseNodeContents.Hash64(h)
	h.HashInt64(p.CTEID)
	if !p.Seed.IsDefined() {
		h.HashByte(base.NilFlag)
		return
	}
	h.HashByte(base.NotNilFlag)
	// the seed is defined, the forwarding error cannot fire.
	_ = p.Seed.Hash64(h)
}

// Equals implements the base.HashEquals.<1st> interface.
func (p *LogicalCTEAnchor) Equals(other any) bool {
	p2, ok := other.(*LogicalCTEAnchor)
	if !ok {
		return false
	}
	if p == nil {
		return p2 == nil
	}
	if p2 == nil {
		return false
	}
	return p.CTEID == p2.CTEID && p.Seed.Equals(p2.Seed)
}
