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
	"fmt"
	"strings"

	"github.com/parapluirevel/terrier/pkg/expression"
)

// ToString explains an operator tree, returning a compact one-line form like
// InnerJoin(t1.a = t2.a){Get(t1)->Filter(t2.b > 1){Get(t2)}} for debugging
// and test expectations.
func ToString(n *Node) string {
	var sb strings.Builder
	treeToString(n, &sb)
	return sb.String()
}

func treeToString(n *Node, sb *strings.Builder) {
	v := &stringerVisitor{sb: sb}
	if err := n.Op.Accept(v); err != nil {
		sb.WriteString("Undefined")
	}
	if len(n.Children) == 0 {
		return
	}
	sb.WriteString("{")
	for i, child := range n.Children {
		if i > 0 {
			sb.WriteString("->")
		}
		treeToString(child, sb)
	}
	sb.WriteString("}")
}

func exprsToString(exprs []expression.Expression) string {
	strs := make([]string, 0, len(exprs))
	for _, one := range exprs {
		strs = append(strs, one.String())
	}
	return strings.Join(strs, ", ")
}

// stringerVisitor renders one operator's own line; tree recursion stays in
// treeToString so the visitor covers exactly one dispatch per node.
type stringerVisitor struct {
	BaseOperatorVisitor

	sb *strings.Builder
}

var _ OperatorVisitor = &stringerVisitor{}

func (v *stringerVisitor) VisitLogicalGet(op *LogicalGet) {
	fmt.Fprintf(v.sb, "Get(%s)", op.TableName)
}

func (v *stringerVisitor) VisitLogicalFilter(op *LogicalFilter) {
	fmt.Fprintf(v.sb, "Filter(%s)", exprsToString(op.Predicates))
}

func (v *stringerVisitor) VisitLogicalInnerJoin(op *LogicalInnerJoin) {
	fmt.Fprintf(v.sb, "InnerJoin(%s)", exprsToString(op.JoinConditions))
}

func (v *stringerVisitor) VisitLogicalLimit(op *LogicalLimit) {
	fmt.Fprintf(v.sb, "Limit(%d,%d)", op.Offset, op.Count)
}

func (v *stringerVisitor) VisitLogicalMaxOneRow(*LogicalMaxOneRow) {
	v.sb.WriteString("MaxOneRow")
}

func (v *stringerVisitor) VisitLogicalCTEAnchor(op *LogicalCTEAnchor) {
	fmt.Fprintf(v.sb, "CTEAnchor#%d", op.CTEID)
	if op.Seed.IsDefined() {
		v.sb.WriteString("[")
		// the seed is defined, Accept cannot fail.
		_ = op.Seed.Accept(v)
		v.sb.WriteString("]")
	}
}

func (v *stringerVisitor) VisitPhysicalSeqScan(op *PhysicalSeqScan) {
	fmt.Fprintf(v.sb, "SeqScan(%s)", op.TableName)
}

func (v *stringerVisitor) VisitPhysicalFilter(op *PhysicalFilter) {
	fmt.Fprintf(v.sb, "Sel(%s)", exprsToString(op.Predicates))
}

func (v *stringerVisitor) VisitPhysicalInnerNLJoin(op *PhysicalInnerNLJoin) {
	fmt.Fprintf(v.sb, "InnerNLJoin(%s)", exprsToString(op.JoinConditions))
}

func (v *stringerVisitor) VisitPhysicalLimit(op *PhysicalLimit) {
	fmt.Fprintf(v.sb, "PhyLimit(%d,%d)", op.Offset, op.Count)
}
