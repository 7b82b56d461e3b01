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

package expression

import (
	"fmt"
	"strings"

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

var _ Expression = &ScalarFunction{}

// ScalarFunction is a function call over argument expressions, e.g. eq(a, b).
// FuncName identifies the builtin semantically, so it takes part in equality.
type ScalarFunction struct {
	FuncName string
	Args     []Expression
}

// NewFunction builds a scalar function call.
func NewFunction(funcName string, args ...Expression) *ScalarFunction {
	return &ScalarFunction{FuncName: funcName, Args: args}
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (sf *ScalarFunction) Hash64(h base.Hasher) {
	h.HashString(sf.FuncName)
	Hash64Exprs(h, sf.Args)
}

// Equals implements the base.HashEquals.<1st> interface.
func (sf *ScalarFunction) Equals(other any) bool {
	sf2, ok := other.(*ScalarFunction)
	if !ok {
		return false
	}
	if sf == nil {
		return sf2 == nil
	}
	if sf2 == nil {
		return false
	}
	return sf.FuncName == sf2.FuncName && EqualsExprs(sf.Args, sf2.Args)
}

// Clone implements the Expression interface.
func (sf *ScalarFunction) Clone() Expression {
	return &ScalarFunction{
		FuncName: sf.FuncName,
		Args:     CloneExprs(sf.Args),
	}
}

// String implements the fmt.Stringer interface.
func (sf *ScalarFunction) String() string {
	args := make([]string, 0, len(sf.Args))
	for _, arg := range sf.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", sf.FuncName, strings.Join(args, ", "))
}
