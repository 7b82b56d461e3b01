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

// Package task drives the cascades exploration: a LIFO task stack, a serial
// scheduler and the concrete optimizing tasks.
package task

import (
	"io"
	"sync"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

// stackPool reuses task stacks across optimizing runs.
var stackPool = sync.Pool{
	New: func() any {
		return newTaskStack()
	},
}

// Stack stores the optimizing tasks created before or during the optimizing
// process, driven in LIFO order.
type Stack struct {
	tasks []base.Task
}

var _ base.Stack = &Stack{}

func newTaskStack() *Stack {
	return &Stack{
		tasks: make([]base.Task, 0, 4),
	}
}

// Destroy releases the stack back into the pool once it is useless, like at
// the end of an optimizing phase.
func (ts *Stack) Destroy() {
	clear(ts.tasks)
	ts.tasks = ts.tasks[:0]
	stackPool.Put(ts)
}

// Desc writes the detail info about the current stack state, top first.
func (ts *Stack) Desc(w io.StringWriter) {
	for i := len(ts.tasks) - 1; i >= 0; i-- {
		ts.tasks[i].Desc(w)
		_, _ = w.WriteString("\n")
	}
}

// Len indicates the length of the current stack.
func (ts *Stack) Len() int {
	return len(ts.tasks)
}

// Pop pops one task out of the stack, nil when empty.
func (ts *Stack) Pop() base.Task {
	if ts.Empty() {
		return nil
	}
	tmp := ts.tasks[len(ts.tasks)-1]
	ts.tasks = ts.tasks[:len(ts.tasks)-1]
	return tmp
}

// Push pushes one task into the stack.
func (ts *Stack) Push(one base.Task) {
	ts.tasks = append(ts.tasks, one)
}

// Empty indicates whether the stack is empty.
func (ts *Stack) Empty() bool {
	return ts.Len() == 0
}
