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
	"strings"
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

type recordingTask struct {
	id  int
	log *[]int
	err error
}

func (t *recordingTask) Execute() error {
	*t.log = append(*t.log, t.id)
	return t.err
}

func (t *recordingTask) Desc(w io.StringWriter) {
	_, _ = w.WriteString(fmt.Sprintf("recordingTask{%d}", t.id))
}

func TestTaskStack(t *testing.T) {
	var log []int
	stack := newTaskStack()
	require.True(t, stack.Empty())
	require.Nil(t, stack.Pop())

	stack.Push(&recordingTask{id: 1, log: &log})
	stack.Push(&recordingTask{id: 2, log: &log})
	stack.Push(&recordingTask{id: 3, log: &log})
	require.Equal(t, 3, stack.Len())

	// Desc renders top first.
	var sb strings.Builder
	stack.Desc(&sb)
	require.Equal(t, "recordingTask{3}\nrecordingTask{2}\nrecordingTask{1}\n", sb.String())

	require.Equal(t, 3, stack.Pop().(*recordingTask).id)
	require.Equal(t, 2, stack.Pop().(*recordingTask).id)
	require.Equal(t, 1, stack.Pop().(*recordingTask).id)
	require.True(t, stack.Empty())
	stack.Destroy()
}

func TestSimpleTaskSchedulerLIFO(t *testing.T) {
	var log []int
	sched := NewSimpleTaskScheduler()
	defer sched.Destroy()
	sched.PushTask(&recordingTask{id: 1, log: &log})
	sched.PushTask(&recordingTask{id: 2, log: &log})
	sched.PushTask(&recordingTask{id: 3, log: &log})
	require.NoError(t, sched.ExecuteTasks())
	require.Equal(t, []int{3, 2, 1}, log)
}

func TestSimpleTaskSchedulerStopsOnError(t *testing.T) {
	var log []int
	boom := errors.New("boom")
	sched := NewSimpleTaskScheduler()
	defer sched.Destroy()
	sched.PushTask(&recordingTask{id: 1, log: &log})
	sched.PushTask(&recordingTask{id: 2, log: &log, err: boom})
	sched.PushTask(&recordingTask{id: 3, log: &log})
	require.ErrorIs(t, sched.ExecuteTasks(), boom)
	// the failing task aborts the run; earlier-pushed tasks never fire.
	require.Equal(t, []int{3, 2}, log)
}

func TestTasksPushedDuringExecution(t *testing.T) {
	var log []int
	sched := NewSimpleTaskScheduler()
	defer sched.Destroy()
	var spawning base.Task = &spawnTask{sched: sched, log: &log}
	sched.PushTask(spawning)
	require.NoError(t, sched.ExecuteTasks())
	require.Equal(t, []int{-1, 7}, log)
}

// spawnTask pushes a followup task while executing, the way exploration
// tasks reschedule themselves.
type spawnTask struct {
	sched base.Scheduler
	log   *[]int
}

func (t *spawnTask) Execute() error {
	*t.log = append(*t.log, -1)
	t.sched.PushTask(&recordingTask{id: 7, log: t.log})
	return nil
}

func (t *spawnTask) Desc(w io.StringWriter) {
	_, _ = w.WriteString("spawnTask")
}
