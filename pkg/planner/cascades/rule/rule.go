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

// Package rule holds the transformation rule boundary of the cascades
// framework: the Rule interface the exploration tasks drive, and the
// concrete XForm rules.
package rule

import (
	"github.com/parapluirevel/terrier/pkg/planner/cascades/memo"
	"github.com/parapluirevel/terrier/pkg/planner/pattern"
)

// Rule is one transformation over a matched group expression. Rules reach
// the concrete operator fields through the checked downcast on the
// expression's operator handle; a failed downcast or precondition simply
// means the rule does not apply.
type Rule interface {
	// ID returns the rule's stable numeric id, used in rule masks.
	ID() uint

	// Name returns the rule's name for tracing.
	Name() string

	// Pattern returns the shape of plan fragments the rule can bind.
	Pattern() *pattern.Pattern

	// Match checks the rule's fine-grained preconditions on an expression
	// whose root already matched the pattern's operand.
	Match(ge *memo.GroupExpression) bool

	// XForm produces the substitute fragments for a matched expression; the
	// caller copies them back into the expression's group.
	XForm(ge *memo.GroupExpression) ([]*memo.MemoExpression, error)
}

// Rule ids, one per concrete rule, stable across releases since masks may be
// persisted in plan hints.
const (
	// XFMergeAdjacentFilterID is the id of XFMergeAdjacentFilter.
	XFMergeAdjacentFilterID uint = 1
)
