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
	"github.com/pingcap/errors"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

// ErrUndefinedOperator is returned by every forwarding method called on a
// handle that owns no contents. Callers working with possibly-undefined
// handles should check IsDefined first.
var ErrUndefinedOperator = errors.New("undefined operator")

// Operator is the value handle stored throughout the optimizer tree. It owns
// exactly one NodeContents instance; no two live handles may share one. The
// zero value is the undefined handle, a valid inert placeholder.
//
// Plain struct assignment copies the handle, not the contents, and therefore
// aliases the owned instance; since contents are immutable once built this is
// safe for read access, but any caller that needs an independent tree must
// use Clone. Move transfers ownership and leaves the source undefined.
type Operator struct {
	contents NodeContents
}

// NewOperator takes ownership of contents and returns the owning handle. The
// caller must not retain or use the contents afterwards other than through
// the handle.
func NewOperator(contents NodeContents) Operator {
	return Operator{contents: contents}
}

// IsDefined reports whether the handle owns contents.
func (op Operator) IsDefined() bool {
	return op.contents != nil
}

// Clone returns a handle owning a deep, independent duplicate of the owned
// contents, recursively through any nested handles. Cloning an undefined
// handle yields an undefined handle: copying a placeholder is a placeholder.
func (op Operator) Clone() Operator {
	if op.contents == nil {
		return Operator{}
	}
	return Operator{contents: op.contents.Copy()}
}

// Move transfers ownership out of the receiver, which becomes undefined.
func (op *Operator) Move() Operator {
	moved := Operator{contents: op.contents}
	op.contents = nil
	return moved
}

// Accept dispatches the visitor to the owned contents' concrete handler.
func (op Operator) Accept(v OperatorVisitor) error {
	if op.contents == nil {
		return errors.AddStack(ErrUndefinedOperator)
	}
	op.contents.Accept(v)
	return nil
}

// GetName returns the owned contents' display name.
func (op Operator) GetName() (string, error) {
	if op.contents == nil {
		return "", errors.AddStack(ErrUndefinedOperator)
	}
	return op.contents.GetName(), nil
}

// GetOpType returns the owned contents' type tag.
func (op Operator) GetOpType() (OpType, error) {
	if op.contents == nil {
		return OpTypeUndefined, errors.AddStack(ErrUndefinedOperator)
	}
	return op.contents.GetOpType(), nil
}

// IsLogical reports whether the owned contents are a logical operator.
func (op Operator) IsLogical() (bool, error) {
	if op.contents == nil {
		return false, errors.AddStack(ErrUndefinedOperator)
	}
	return op.contents.IsLogical(), nil
}

// IsPhysical reports whether the owned contents are a physical operator.
func (op Operator) IsPhysical() (bool, error) {
	if op.contents == nil {
		return false, errors.AddStack(ErrUndefinedOperator)
	}
	return op.contents.IsPhysical(), nil
}

// Hash64 folds the owned contents into h.
func (op Operator) Hash64(h base.Hasher) error {
	if op.contents == nil {
		return errors.AddStack(ErrUndefinedOperator)
	}
	op.contents.Hash64(h)
	return nil
}

// Sum64 hashes the owned contents with a fresh hasher and returns the folded
// value, making the handle directly usable as a key for hash-based maps.
func (op Operator) Sum64() (uint64, error) {
	if op.contents == nil {
		return 0, errors.AddStack(ErrUndefinedOperator)
	}
	h := base.NewHashEqualer()
	op.contents.Hash64(h)
	return h.Sum64(), nil
}

// Equals delegates to the owned contents' equality. Two undefined handles
// are equal to each other and unequal to any defined handle.
func (op Operator) Equals(rhs Operator) bool {
	if op.contents == nil || rhs.contents == nil {
		return op.contents == nil && rhs.contents == nil
	}
	return op.contents.Equals(rhs.contents)
}

// As re-interprets the handle's owned contents as the concrete kind T. The
// second return is false when the handle is undefined or the contents'
// dynamic type is not exactly T; that outcome is the expected result of rule
// pattern probing, never an error. T must be the concrete pointer type of an
// operator kind, e.g. As[*LogicalInnerJoin](op).
func As[T NodeContents](op Operator) (T, bool) {
	if t, ok := op.contents.(T); ok {
		return t, true
	}
	var zero T
	return zero, false
}
