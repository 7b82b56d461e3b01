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

// Package intest provides assertions that take effect only in test binaries
// built with the `intest` tag. In production builds every call compiles to a
// cheap branch on a false constant.
package intest

import "fmt"

// Assert panics when cond is false and assertions are enabled.
func Assert(cond bool, msgAndArgs ...any) {
	if InTest && !cond {
		doPanic(msgAndArgs...)
	}
}

// AssertNotNil panics when obj is nil and assertions are enabled.
func AssertNotNil(obj any, msgAndArgs ...any) {
	Assert(obj != nil, msgAndArgs...)
}

func doPanic(msgAndArgs ...any) {
	if len(msgAndArgs) == 0 {
		panic("assert failed")
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		panic(fmt.Sprintf("assert failed: %v", msgAndArgs[0]))
	}
	panic(fmt.Sprintf("assert failed: "+format, msgAndArgs[1:]...))
}
