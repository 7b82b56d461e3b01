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

// Package expression holds the scalar expression surface the planner's
// operators carry as predicates and projections. Expressions are treated as
// immutable once built; Clone produces a deep, independent duplicate.
package expression

import (
	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

// Expression is the basic interface of a scalar value computed per row.
type Expression interface {
	base.HashEquals

	// Clone deep-copies the expression so the copy shares no mutable state
	// with the original.
	Clone() Expression

	// String returns the display form for diagnostics only; it takes no part
	// in equality.
	String() string
}

// Hash64Exprs folds a slice of expressions into h, nil-ness and length
// included, so a nil slice never collides with an allocated empty one.
func Hash64Exprs(h base.Hasher, exprs []Expression) {
	if exprs == nil {
		h.HashByte(base.NilFlag)
		return
	}
	h.HashByte(base.NotNilFlag)
	h.HashInt(len(exprs))
	for _, one := range exprs {
		one.Hash64(h)
	}
}

// EqualsExprs checks two expression slices pairwise, distinguishing nil from
// empty to stay consistent with Hash64Exprs.
func EqualsExprs(a, b []Expression) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i, one := range a {
		if !one.Equals(b[i]) {
			return false
		}
	}
	return true
}

// CloneExprs deep-copies a slice of expressions.
func CloneExprs(exprs []Expression) []Expression {
	if exprs == nil {
		return nil
	}
	cloned := make([]Expression, 0, len(exprs))
	for _, one := range exprs {
		cloned = append(cloned, one.Clone())
	}
	return cloned
}
