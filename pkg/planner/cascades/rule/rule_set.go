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

package rule

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/parapluirevel/terrier/pkg/planner/pattern"
)

// ListRules is a list of rules rooted at one operand.
type ListRules []Rule

// Filter masks out the rules whose id is not set in mask.
func (l ListRules) Filter(mask *bitset.BitSet) ListRules {
	res := make(ListRules, 0, len(l))
	for _, one := range l {
		if mask.Test(one.ID()) {
			res = append(res, one)
		}
	}
	return res
}

// DefaultRuleSets indicates all the default rules, keyed by the operand the
// rule's pattern is rooted at.
var DefaultRuleSets = map[pattern.Operand]ListRules{
	pattern.OperandFilter: {NewXFMergeAdjacentFilter()},
}

// DefaultRuleMask enables every registered rule.
func DefaultRuleMask() *bitset.BitSet {
	mask := bitset.New(8)
	for _, rules := range DefaultRuleSets {
		for _, one := range rules {
			mask.Set(one.ID())
		}
	}
	return mask
}
