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
package algebra

import (
	"maps"
	"slices"

	"github.com/consensys/go-ratfunc/pkg/util/collection/hash"
)

var _ hash.Hasher[Powers] = Powers{}

// Powers is an immutable mapping from variable names to integer exponents, as
// found in a single term.  Entries are held sorted by variable name, such that
// two mappings with the same entries have the same representation regardless
// of how they were constructed.  The zero value is the empty mapping.
type Powers struct {
	names []string
	exps  []int
}

// NewPowers constructs a mapping from a given Go map.  Zero exponents are
// retained, since normalisation is a separate step.
func NewPowers(powers map[string]int) Powers {
	names := slices.Sorted(maps.Keys(powers))
	exps := make([]int, len(names))
	//
	for i, n := range names {
		exps[i] = powers[n]
	}
	//
	return Powers{names, exps}
}

// Len returns the number of variables in this mapping.
func (p Powers) Len() uint {
	return uint(len(p.names))
}

// IsEmpty checks whether this mapping has no variables at all.
func (p Powers) IsEmpty() bool {
	return len(p.names) == 0
}

// Name returns the nth variable of this mapping (in sorted order).
func (p Powers) Name(n uint) string {
	return p.names[n]
}

// Exponent returns the exponent of the nth variable of this mapping.
func (p Powers) Exponent(n uint) int {
	return p.exps[n]
}

// Get returns the exponent for a given variable, and whether or not that
// variable is a key in this mapping.
func (p Powers) Get(name string) (int, bool) {
	if i, ok := slices.BinarySearch(p.names, name); ok {
		return p.exps[i], true
	}
	//
	return 0, false
}

// Names returns (a copy of) the variables of this mapping in sorted order.
func (p Powers) Names() []string {
	return slices.Clone(p.names)
}

// Map returns this mapping as a freshly allocated Go map.
func (p Powers) Map() map[string]int {
	m := make(map[string]int, len(p.names))
	//
	for i, n := range p.names {
		m[n] = p.exps[i]
	}
	//
	return m
}

// Equals performs structural equality between two mappings.
func (p Powers) Equals(other Powers) bool {
	return slices.Equal(p.names, other.names) && slices.Equal(p.exps, other.exps)
}

// Hash returns a structural hashcode for this mapping.
func (p Powers) Hash() uint64 {
	c := hash.NewCombiner()
	//
	for i, n := range p.names {
		c.WriteString(n)
		c.Write(uint64(int64(p.exps[i])))
	}
	//
	return c.Sum64()
}

// Set returns a copy of this mapping where a given variable has a given
// exponent.
func (p Powers) Set(name string, exp int) Powers {
	i, ok := slices.BinarySearch(p.names, name)
	//
	if ok {
		exps := slices.Clone(p.exps)
		exps[i] = exp
		//
		return Powers{p.names, exps}
	}
	//
	names := slices.Insert(slices.Clone(p.names), i, name)
	exps := slices.Insert(slices.Clone(p.exps), i, exp)
	//
	return Powers{names, exps}
}

// dropZeros returns a copy of this mapping without any zero exponents.  When
// there are none, the mapping itself is returned.
func (p Powers) dropZeros() Powers {
	if !slices.Contains(p.exps, 0) {
		return p
	}
	//
	var (
		names []string
		exps  []int
	)
	//
	for i, e := range p.exps {
		if e != 0 {
			names = append(names, p.names[i])
			exps = append(exps, e)
		}
	}
	//
	return Powers{names, exps}
}

// mergePowers combines two mappings by adding exponents, where a variable
// absent from one side counts as exponent zero.  This mirrors a merge of two
// sorted arrays.
func mergePowers(lhs, rhs Powers) Powers {
	var (
		n     = len(lhs.names) + len(rhs.names)
		names = make([]string, 0, n)
		exps  = make([]int, 0, n)
		i, j  int
	)
	//
	for i < len(lhs.names) && j < len(rhs.names) {
		switch l, r := lhs.names[i], rhs.names[j]; {
		case l < r:
			names, exps = append(names, l), append(exps, lhs.exps[i])
			i++
		case l > r:
			names, exps = append(names, r), append(exps, rhs.exps[j])
			j++
		default:
			names, exps = append(names, l), append(exps, lhs.exps[i]+rhs.exps[j])
			i, j = i+1, j+1
		}
	}
	// Append whatever remains
	names = append(names, lhs.names[i:]...)
	exps = append(exps, lhs.exps[i:]...)
	names = append(names, rhs.names[j:]...)
	exps = append(exps, rhs.exps[j:]...)
	//
	return Powers{names, exps}
}
