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

package task

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
	"github.com/parapluirevel/terrier/pkg/planner/cascades/memo"
	"github.com/parapluirevel/terrier/pkg/planner/cascades/rule"
	"github.com/parapluirevel/terrier/pkg/planner/pattern"
)

var _ base.Task = &ExploreGroupTask{}

// ExploreGroupTask applies the enabled transformation rules to every
// expression of one group, scheduling child groups for exploration first and
// re-scheduling itself until the group reaches a fixpoint.
type ExploreGroupTask struct {
	mm    *memo.Memo
	group *memo.Group
	sched base.Scheduler
	mask  *bitset.BitSet
}

// NewExploreGroupTask creates a task exploring one group.
func NewExploreGroupTask(mm *memo.Memo, group *memo.Group, sched base.Scheduler, mask *bitset.BitSet) *ExploreGroupTask {
	return &ExploreGroupTask{
		mm:    mm,
		group: group,
		sched: sched,
		mask:  mask,
	}
}

// Execute implements the base.Task interface.
func (t *ExploreGroupTask) Execute() error {
	if t.group.Explored {
		return nil
	}
	t.group.Explored = true
	lenBefore := t.group.Len()
	var firstErr error
	t.group.ForEachExpr(func(ge *memo.GroupExpression) bool {
		for _, input := range ge.Inputs {
			if !input.Explored {
				t.sched.PushTask(NewExploreGroupTask(t.mm, input, t.sched, t.mask))
			}
		}
		operand := pattern.GetOperand(ge.Op)
		for _, one := range rule.DefaultRuleSets[operand].Filter(t.mask) {
			if !one.Match(ge) {
				continue
			}
			substitutes, err := one.XForm(ge)
			if err != nil {
				firstErr = err
				return false
			}
			for _, sub := range substitutes {
				if _, err := t.mm.CopyIn(t.group, sub); err != nil {
					firstErr = err
					return false
				}
			}
		}
		return true
	})
	if firstErr != nil {
		return firstErr
	}
	if t.group.Len() > lenBefore {
		// new alternatives came in; drive the group to a fixpoint.
		t.group.Explored = false
		t.sched.PushTask(t)
	}
	return nil
}

// Desc implements the base.Task interface.
func (t *ExploreGroupTask) Desc(w io.StringWriter) {
	_, _ = w.WriteString(fmt.Sprintf("ExploreGroupTask{group:%d}", t.group.GetGroupID()))
}
