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

// Package operator holds the uniform node abstraction the optimizer stores
// logical and physical plan operators behind: the NodeContents capability
// interface every concrete kind implements, the BaseNodeContents adapter that
// supplies the shared plumbing, the Operator value handle the rest of the
// planner passes around, and the concrete operator catalog.
package operator

import (
	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

// NodeContents is the capability interface of one concrete operator kind.
// An instance is treated as immutable once built: it may be hashed, compared
// and copied from any number of goroutines, but never mutated in place.
//
// Hash64 and Equals are a consistency pair. The embedded BaseNodeContents
// defaults both to tag-only behavior, which is correct for field-less kinds;
// any kind carrying semantically significant fields must override both
// together so that Equals(a, b) implies equal Hash64 folds. This layer cannot
// check the pair generically, so each kind's test suite has to.
type NodeContents interface {
	base.HashEquals

	// Copy returns a deep, independent duplicate: the original and the copy
	// share no mutable state, recursively through any nested Operator
	// handles the contents own.
	Copy() NodeContents

	// Accept dispatches to the visitor's handler for this concrete kind,
	// exactly once per call.
	Accept(v OperatorVisitor)

	// GetName returns the stable display name of the concrete kind. It is
	// for diagnostics only and takes no part in equality.
	GetName() string

	// GetOpType returns the discriminant the concrete kind registered under.
	GetOpType() OpType

	// IsLogical reports whether the kind is a logical operator.
	IsLogical() bool

	// IsPhysical reports whether the kind is a physical operator. Exactly
	// one of IsLogical and IsPhysical holds for every concrete kind.
	IsPhysical() bool
}

// BaseNodeContents binds a concrete operator kind to NodeContents with the
// minimum per-kind code: embed it with the kind's tag and the name, kind and
// partition queries plus the tag-only Hash64/Equals defaults come along.
// Copy and Accept stay per-kind, since only the concrete kind knows which
// fields need independent duplication and which visitor handler to call.
type BaseNodeContents struct {
	tp OpType
}

// NewBaseNodeContents constructs the embedded base for the given tag.
func NewBaseNodeContents(tp OpType) BaseNodeContents {
	return BaseNodeContents{tp: tp}
}

// GetName implements the NodeContents interface.
func (b *BaseNodeContents) GetName() string {
	return b.tp.Name()
}

// GetOpType implements the NodeContents interface.
func (b *BaseNodeContents) GetOpType() OpType {
	return b.tp
}

// IsLogical implements the NodeContents interface.
func (b *BaseNodeContents) IsLogical() bool {
	return b.tp.IsLogical()
}

// IsPhysical implements the NodeContents interface.
func (b *BaseNodeContents) IsPhysical() bool {
	return b.tp.IsPhysical()
}

// Hash64 implements the base.HashEquals.<0th> interface, folding the type
// tag alone. Kinds with semantic fields fold this first, then their fields.
func (b *BaseNodeContents) Hash64(h base.Hasher) {
	h.HashInt64(int64(b.tp))
}

// Equals implements the base.HashEquals.<1st> interface, comparing type tags
// only: without an override, "same kind" is "equal".
func (b *BaseNodeContents) Equals(other any) bool {
	if other == nil {
		return false
	}
	c, ok := other.(NodeContents)
	if !ok {
		return false
	}
	return b.tp == c.GetOpType()
}
