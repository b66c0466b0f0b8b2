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

import (
	"fmt"
	"strings"
)

// Map defines a generic map implementation keyed on a Hasher.  This is a true
// hashtable in that collisions are handled gracefully using buckets, rather
// than simply discarding them.  Furthermore, keys are remembered in the order
// they were first inserted, such that iterating a map is deterministic.
type Map[K Hasher[K], V any] struct {
	// buckets maps hashcodes to the positions of all keys with that hashcode.
	buckets map[uint64][]uint
	// keys in order of first insertion.
	keys []K
	// values aligned with keys.
	values []V
}

// NewMap creates a new Map with a given underlying capacity.
func NewMap[K Hasher[K], V any](size uint) *Map[K, V] {
	buckets := make(map[uint64][]uint, size)
	return &Map[K, V]{buckets, make([]K, 0, size), make([]V, 0, size)}
}

// Size returns the number of unique keys stored in this Map.
func (p *Map[K, V]) Size() uint {
	return uint(len(p.keys))
}

// MaxBucket returns the size of the largest bucket.
func (p *Map[K, V]) MaxBucket() uint {
	m := uint(0)
	for _, b := range p.buckets {
		m = max(m, uint(len(b)))
	}

	return m
}

// Insert a new item into this map, returning true if the key was already
// contained (in which case its value is overwritten) and false otherwise.
func (p *Map[K, V]) Insert(key K, value V) bool {
	hash := key.Hash()
	// Check whether key already present
	if index, ok := p.find(hash, key); ok {
		p.values[index] = value
		return true
	}
	// Append item
	p.buckets[hash] = append(p.buckets[hash], uint(len(p.keys)))
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
	//
	return false
}

// ContainsKey checks whether the given key is contained within this map, or not.
func (p *Map[K, V]) ContainsKey(key K) bool {
	_, ok := p.find(key.Hash(), key)
	return ok
}

// Get the value associated with a given key, or return false otherwise.
func (p *Map[K, V]) Get(key K) (V, bool) {
	var empty V
	//
	if index, ok := p.find(key.Hash(), key); ok {
		return p.values[index], true
	}
	//
	return empty, false
}

// Keys returns the keys of this map in order of first insertion.  The returned
// slice must not be modified.
func (p *Map[K, V]) Keys() []K {
	return p.keys
}

// Each applies a given function to every key-value pair in this map, in order
// of first insertion.
func (p *Map[K, V]) Each(fn func(K, V)) {
	for i, k := range p.keys {
		fn(k, p.values[i])
	}
}

//nolint:revive
func (p *Map[K, V]) String() string {
	var r strings.Builder
	// Write opening brace
	r.WriteString("{")
	//
	for i, k := range p.keys {
		if i != 0 {
			r.WriteString(",")
		}
		//
		r.WriteString(fmt.Sprintf("%v:=%v", any(k), any(p.values[i])))
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// Find the position of a given key within its bucket.
func (p *Map[K, V]) find(hash uint64, key K) (uint, bool) {
	for _, index := range p.buckets[hash] {
		if key.Equals(p.keys[index]) {
			return index, true
		}
	}
	//
	return 0, false
}
