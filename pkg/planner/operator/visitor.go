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

// OperatorVisitor has one handler per concrete operator kind. Accept on a
// handle (or contents) invokes exactly the handler matching the contents'
// concrete type, exactly once per call; traversal into children is the
// visitor's own business.
type OperatorVisitor interface {
	VisitLogicalGet(op *LogicalGet)
	VisitLogicalFilter(op *LogicalFilter)
	VisitLogicalInnerJoin(op *LogicalInnerJoin)
	VisitLogicalLimit(op *LogicalLimit)
	VisitLogicalMaxOneRow(op *LogicalMaxOneRow)
	VisitLogicalCTEAnchor(op *LogicalCTEAnchor)
	VisitPhysicalSeqScan(op *PhysicalSeqScan)
	VisitPhysicalFilter(op *PhysicalFilter)
	VisitPhysicalInnerNLJoin(op *PhysicalInnerNLJoin)
	VisitPhysicalLimit(op *PhysicalLimit)
}

// BaseOperatorVisitor implements every handler as a no-op, so visitors embed
// it and override only the kinds they care about.
type BaseOperatorVisitor struct{}

var _ OperatorVisitor = &BaseOperatorVisitor{}

// VisitLogicalGet implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitLogicalGet(*LogicalGet) {}

// VisitLogicalFilter implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitLogicalFilter(*LogicalFilter) {}

// VisitLogicalInnerJoin implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitLogicalInnerJoin(*LogicalInnerJoin) {}

// VisitLogicalLimit implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitLogicalLimit(*LogicalLimit) {}

// VisitLogicalMaxOneRow implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitLogicalMaxOneRow(*LogicalMaxOneRow) {}

// VisitLogicalCTEAnchor implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitLogicalCTEAnchor(*LogicalCTEAnchor) {}

// VisitPhysicalSeqScan implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitPhysicalSeqScan(*PhysicalSeqScan) {}

// VisitPhysicalFilter implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitPhysicalFilter(*PhysicalFilter) {}

// VisitPhysicalInnerNLJoin implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitPhysicalInnerNLJoin(*PhysicalInnerNLJoin) {}

// VisitPhysicalLimit implements the OperatorVisitor interface.
func (*BaseOperatorVisitor) VisitPhysicalLimit(*PhysicalLimit) {}
