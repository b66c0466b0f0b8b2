// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

// Hasher provides a generic definition of a hashing function suitable for use
// within the hash map.  Hashcodes are permitted to collide, hence equality is
// required as well.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Combiner incrementally constructs an FNV-1a hashcode from a sequence of
// words and strings.  An uninitialised Combiner should not be used; construct
// one with NewCombiner instead.
type Combiner struct {
	hash uint64
}

// NewCombiner constructs a combiner initialised with the FNV offset basis.
func NewCombiner() Combiner {
	return Combiner{offset64}
}

// Write mixes a single 64-bit word into this hashcode.
func (p *Combiner) Write(word uint64) {
	p.hash ^= word
	p.hash *= prime64
}

// WriteString mixes each byte of a given string into this hashcode, followed
// by its length.  The length acts as a separator so that, for example, "ab"
// followed by "c" hashes differently from "a" followed by "bc".
func (p *Combiner) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		p.Write(uint64(s[i]))
	}
	//
	p.Write(uint64(len(s)))
}

// Sum64 returns the hashcode constructed so far.
func (p *Combiner) Sum64() uint64 {
	return p.hash
}
