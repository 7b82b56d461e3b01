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

// Package cascades ties the memo, the rule sets and the task scheduler into
// the exploration phase of the cost-based optimizer.
package cascades

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/memo"
	"github.com/parapluirevel/terrier/pkg/planner/cascades/rule"
	"github.com/parapluirevel/terrier/pkg/planner/cascades/task"
	"github.com/parapluirevel/terrier/pkg/planner/operator"
	"github.com/parapluirevel/terrier/pkg/util/logutil"
)

// Optimizer owns one memo and drives exploration over it.
type Optimizer struct {
	mm       *memo.Memo
	ruleMask *bitset.BitSet
}

// NewOptimizer creates an optimizer with every registered rule enabled.
func NewOptimizer() *Optimizer {
	return &Optimizer{
		mm:       memo.NewMemo(),
		ruleMask: rule.DefaultRuleMask(),
	}
}

// Memo exposes the underlying memo, mainly for inspection in tests.
func (opt *Optimizer) Memo() *memo.Memo {
	return opt.mm
}

// SetRuleMask restricts the enabled rules to the ids set in mask.
func (opt *Optimizer) SetRuleMask(mask *bitset.BitSet) {
	opt.ruleMask = mask
}

// Execute copies the bare operator tree into the memo and explores it to a
// fixpoint, returning the root group.
func (opt *Optimizer) Execute(root *operator.Node) (*memo.Group, error) {
	if root == nil || !root.Op.IsDefined() {
		return nil, errors.AddStack(operator.ErrUndefinedOperator)
	}
	rootGE, err := opt.mm.Init(root)
	if err != nil {
		return nil, err
	}
	sched := task.NewSimpleTaskScheduler()
	defer sched.Destroy()
	sched.PushTask(task.NewExploreGroupTask(opt.mm, rootGE.GetGroup(), sched, opt.ruleMask))
	if err := sched.ExecuteTasks(); err != nil {
		return nil, err
	}
	logutil.BgLogger().Debug("cascades exploration finished",
		zap.Int("groups", opt.mm.GetGroups().Len()),
		zap.Uint64("root-group", uint64(opt.mm.GetRootGroup().GetGroupID())))
	return opt.mm.GetRootGroup(), nil
}
