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

// OpType is the discriminant of a concrete operator kind. The set is closed
// and partitioned into a logical range and a physical range; the downcast
// check and the memo's deduplication both rely on every concrete kind
// reporting its own tag, and only its own tag, for the whole instance
// lifetime.
type OpType int

const (
	// OpTypeUndefined is the zero tag; no concrete kind registers under it.
	OpTypeUndefined OpType = iota

	// Logical operator kinds.

	// OpTypeLogicalGet reads a base table.
	OpTypeLogicalGet
	// OpTypeLogicalFilter keeps the rows satisfying its predicates.
	OpTypeLogicalFilter
	// OpTypeLogicalInnerJoin joins two children on join predicates.
	OpTypeLogicalInnerJoin
	// OpTypeLogicalLimit returns at most Count rows after Offset.
	OpTypeLogicalLimit
	// OpTypeLogicalMaxOneRow asserts its child produces at most one row.
	OpTypeLogicalMaxOneRow
	// OpTypeLogicalCTEAnchor owns the seed plan of a common table expression.
	OpTypeLogicalCTEAnchor

	logicalOpTypeEnd

	// Physical operator kinds.

	// OpTypePhysicalSeqScan scans a table sequentially.
	OpTypePhysicalSeqScan
	// OpTypePhysicalFilter is the physical counterpart of a filter.
	OpTypePhysicalFilter
	// OpTypePhysicalInnerNLJoin is a nested-loop inner join.
	OpTypePhysicalInnerNLJoin
	// OpTypePhysicalLimit is the physical counterpart of a limit.
	OpTypePhysicalLimit

	opTypeCount
)

// opTypeNames maps each tag to its stable display name. The names are for
// diagnostics and tracing; equality never looks at them.
var opTypeNames = [...]string{
	OpTypeUndefined:           "Undefined",
	OpTypeLogicalGet:          "LogicalGet",
	OpTypeLogicalFilter:       "LogicalFilter",
	OpTypeLogicalInnerJoin:    "LogicalInnerJoin",
	OpTypeLogicalLimit:        "LogicalLimit",
	OpTypeLogicalMaxOneRow:    "LogicalMaxOneRow",
	OpTypeLogicalCTEAnchor:    "LogicalCTEAnchor",
	logicalOpTypeEnd:          "",
	OpTypePhysicalSeqScan:     "PhysicalSeqScan",
	OpTypePhysicalFilter:      "PhysicalFilter",
	OpTypePhysicalInnerNLJoin: "PhysicalInnerNLJoin",
	OpTypePhysicalLimit:       "PhysicalLimit",
}

// IsLogical reports whether the tag falls in the logical partition.
func (tp OpType) IsLogical() bool {
	return tp > OpTypeUndefined && tp < logicalOpTypeEnd
}

// IsPhysical reports whether the tag falls in the physical partition.
func (tp OpType) IsPhysical() bool {
	return tp > logicalOpTypeEnd && tp < opTypeCount
}

// Name returns the registered display name of the tag.
func (tp OpType) Name() string {
	if tp <= OpTypeUndefined || tp >= opTypeCount || tp == logicalOpTypeEnd {
		return "Undefined"
	}
	return opTypeNames[tp]
}

// String implements the fmt.Stringer interface.
func (tp OpType) String() string {
	return tp.Name()
}
