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

package base

import "math"

const (
	// offset64 is the initial hash value, taken from fnv.go.
	offset64 = 14695981039346656037

	// prime64 is a large-ish prime number used in hashing, taken from fnv.go.
	prime64 = 1099511628211
)

const (
	// NilFlag is fed to the hasher in place of a nil field, so a nil slice or
	// pointer never collides with an allocated zero-length one.
	NilFlag byte = iota
	// NotNilFlag precedes the content of a non-nil field.
	NotNilFlag
)

// Hasher is the interface for computing a streaming 64-bit hash. Callers feed
// the semantically significant fields of a value in a fixed order and read the
// folded result out of Sum64. A Hasher is stateful and not safe for concurrent
// use; Reset re-arms it for the next value.
type Hasher interface {
	HashBool(val bool)
	HashInt(val int)
	HashInt64(val int64)
	HashUint64(val uint64)
	HashFloat64(val float64)
	HashRune(val rune)
	HashString(val string)
	HashByte(val byte)
	HashBytes(val []byte)
	Reset()
	Sum64() uint64
}

// HashEquals is the interface for the hash64 and equals inspection of a node.
// The two methods are a correctness contract pair: for any two values a and b,
// a.Equals(b) implies that feeding a and b to fresh Hashers via Hash64 yields
// the same Sum64. The contract cannot be verified generically at runtime, so
// every implementor's test suite must cover it.
type HashEquals interface {
	// Hash64 returns the uint64 hash value of itself, folded into h.
	Hash64(h Hasher)
	// Equals checks whether two base objects are equivalent.
	Equals(other any) bool
}

// hashEqualer is the implementation of Hasher, using the FNV-1a mixing
// function on a running uint64.
type hashEqualer struct {
	hash uint64
}

// NewHashEqualer returns a new Hasher ready for use.
func NewHashEqualer() Hasher {
	return &hashEqualer{
		hash: offset64,
	}
}

// Reset resets the hashEqualer to the initial state.
func (he *hashEqualer) Reset() {
	he.hash = offset64
}

// Sum64 returns the folded hash of everything fed in since the last Reset.
func (he *hashEqualer) Sum64() uint64 {
	return he.hash
}

// HashBool hashes a Boolean value.
func (he *hashEqualer) HashBool(val bool) {
	i := 0
	if val {
		i = 1
	}
	he.hash ^= uint64(i)
	he.hash *= prime64
}

// HashInt hashes an integer value.
func (he *hashEqualer) HashInt(val int) {
	he.hash ^= uint64(val)
	he.hash *= prime64
}

// HashInt64 hashes an int64 value.
func (he *hashEqualer) HashInt64(val int64) {
	he.hash ^= uint64(val)
	he.hash *= prime64
}

// HashUint64 hashes a uint64 value.
func (he *hashEqualer) HashUint64(val uint64) {
	he.hash ^= val
	he.hash *= prime64
}

// HashFloat64 hashes a float64 value by its IEEE 754 bit pattern, so +0.0
// and -0.0 hash differently, consistent with a bit-level Equals.
func (he *hashEqualer) HashFloat64(val float64) {
	he.hash ^= math.Float64bits(val)
	he.hash *= prime64
}

// HashRune hashes a rune value.
func (he *hashEqualer) HashRune(val rune) {
	he.hash ^= uint64(val)
	he.hash *= prime64
}

// HashString hashes a string value byte by byte, length included, to keep
// {"ab","c"} and {"a","bc"} sequences distinguishable.
func (he *hashEqualer) HashString(val string) {
	he.HashInt(len(val))
	for _, c := range val {
		he.HashRune(c)
	}
}

// HashByte hashes a byte value.
func (he *hashEqualer) HashByte(val byte) {
	he.hash ^= uint64(val)
	he.hash *= prime64
}

// HashBytes hashes a byte slice, length included.
func (he *hashEqualer) HashBytes(val []byte) {
	he.HashInt(len(val))
	for _, c := range val {
		he.HashByte(c)
	}
}
