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

	"github.com/parapluirevel/terrier/pkg/planner/cascades/base"
)

var _ Expression = &Column{}

// Column is a reference to a column produced somewhere below in the plan.
// UniqueID identifies the column optimizer-wide; OrigName is display only.
type Column struct {
	UniqueID int64
	OrigName string
}

// Hash64 implements the base.HashEquals.<0th> interface.
func (col *Column) Hash64(h base.Hasher) {
	h.HashInt64(col.UniqueID)
}

// Equals implements the base.HashEquals.<1st> interface.
func (col *Column) Equals(other any) bool {
	col2, ok := other.(*Column)
	if !ok {
		return false
	}
	if col == nil {
		return col2 == nil
	}
	if col2 == nil {
		return false
	}
	return col.UniqueID == col2.UniqueID
}

// Clone implements the Expression interface.
func (col *Column) Clone() Expression {
	newCol := *col
	return &newCol
}

// String implements the fmt.Stringer interface.
func (col *Column) String() string {
	if col.OrigName != "" {
		return col.OrigName
	}
	return fmt.Sprintf("Column#%d", col.UniqueID)
}
