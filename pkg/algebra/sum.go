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
	"slices"

	"github.com/consensys/go-ratfunc/pkg/util/collection/hash"
	"github.com/hashicorp/go-set/v3"
)

// TermSum represents a polynomial, i.e. a sum of zero or more terms.  A
// normalised sum holds no two like terms and no zero terms, except for the
// zero sum itself which holds exactly one zero term.
type TermSum struct {
	terms []Term
}

// NewTermSum constructs a sum from zero or more terms.  The result is not
// normalised and, hence, may hold like terms or zero terms.
func NewTermSum(terms ...Term) TermSum {
	return TermSum{slices.Clone(terms)}
}

// ZeroSum returns the canonical zero sum, which holds a single zero term.
func ZeroSum() TermSum {
	return TermSum{[]Term{ZeroTerm()}}
}

// OneSum returns the multiplicative identity, which holds a single constant
// term with coefficient one.
func OneSum() TermSum {
	return TermSum{[]Term{Constant(1)}}
}

// ConstantSum returns a sum holding a single constant term.
func ConstantSum(c float64) TermSum {
	return TermSum{[]Term{Constant(c)}}
}

// Len returns the number of terms in this sum.
func (p TermSum) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term in this sum.
func (p TermSum) Term(ith uint) Term {
	return p.terms[ith]
}

// Terms returns (a copy of) the terms of this sum.
func (p TermSum) Terms() []Term {
	return slices.Clone(p.terms)
}

// Variables returns the union of the variables of every term in this sum.
func (p TermSum) Variables() *set.Set[string] {
	vars := set.New[string](0)
	//
	for _, t := range p.terms {
		vars.InsertSlice(t.powers.names)
	}
	//
	return vars
}

// IsZero checks whether this sum normalises to the zero sum.
func (p TermSum) IsZero() bool {
	n := p.Normalize()
	return len(n.terms) == 1 && n.terms[0].IsZero()
}

// IsOne checks whether this sum normalises to the multiplicative identity.
func (p TermSum) IsOne() bool {
	n := p.Normalize()
	return len(n.terms) == 1 && n.terms[0].Equal(Constant(1))
}

// Equal determines whether two sums hold the same set of terms.  Neither sum is
// normalised beforehand, hence two sums which differ only by the order of their
// terms are equal, but sums which differ by (say) an uncombined like term are
// not.
func (p TermSum) Equal(other TermSum) bool {
	return containsAll(p.terms, other.terms) && containsAll(other.terms, p.terms)
}

// Normalize returns the canonical form of this sum.  Every term is normalised,
// then like terms are combined by adding their coefficients.  Combined terms
// whose coefficient becomes zero are dropped and, if nothing remains, the zero
// sum is returned.  Terms appear in the order their powers were first seen.
func (p TermSum) Normalize() TermSum {
	var (
		groups = hash.NewMap[Powers, float64](uint(len(p.terms)))
		terms  []Term
	)
	// Combine like terms
	for _, t := range p.terms {
		t = t.Normalize()
		// Zero terms contribute nothing, though they are still grouped (with
		// the empty powers).
		coeff, _ := groups.Get(t.powers)
		groups.Insert(t.powers, coeff+t.coefficient)
	}
	// Drop anything which cancelled out
	groups.Each(func(powers Powers, coeff float64) {
		if coeff != 0 {
			terms = append(terms, Term{coeff, powers})
		}
	})
	//
	if len(terms) == 0 {
		return ZeroSum()
	}
	//
	return TermSum{terms}
}

// Add returns the normalised sum of this sum and another.
func (p TermSum) Add(other TermSum) TermSum {
	terms := make([]Term, 0, len(p.terms)+len(other.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, other.terms...)
	//
	return TermSum{terms}.Normalize()
}

// Sub returns the normalised difference of this sum and another.
func (p TermSum) Sub(other TermSum) TermSum {
	return p.Add(other.Neg())
}

// Mul returns the normalised product of this sum and another.
func (p TermSum) Mul(other TermSum) TermSum {
	return MultiplyTermSums(p, other)
}

// Square returns the normalised product of this sum with itself.
func (p TermSum) Square() TermSum {
	return MultiplyTermSums(p, p)
}

// Neg returns a copy of this sum with every coefficient negated.
func (p TermSum) Neg() TermSum {
	terms := make([]Term, len(p.terms))
	//
	for i, t := range p.terms {
		terms[i] = t.Neg()
	}
	//
	return TermSum{terms}
}

// Differentiate returns the normalised partial derivative of this sum with
// respect to a given variable.
func (p TermSum) Differentiate(name string) TermSum {
	terms := make([]Term, len(p.terms))
	//
	for i, t := range p.terms {
		terms[i] = t.Differentiate(name)
	}
	//
	return TermSum{terms}.Normalize()
}

// Value evaluates this sum at a given point, by adding the value of each term.
func (p TermSum) Value(env Assignment) (float64, error) {
	var value float64
	//
	for _, t := range p.terms {
		v, err := t.Value(env)
		if err != nil {
			return 0, err
		}
		//
		value += v
	}
	//
	return value, nil
}

func containsAll(lhs, rhs []Term) bool {
	for _, r := range rhs {
		if !slices.ContainsFunc(lhs, r.Equal) {
			return false
		}
	}
	//
	return true
}
