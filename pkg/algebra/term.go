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
	"fmt"

	"github.com/consensys/go-ratfunc/pkg/util/math"
	"github.com/hashicorp/go-set/v3"
)

// Assignment maps variables to the values at which an expression is evaluated.
type Assignment map[string]float64

// Term represents a monomial, i.e. a constant coefficient multiplied by zero or
// more variables raised to integer powers.  Terms are values: every operation
// returns a fresh term rather than updating the receiver.
type Term struct {
	coefficient float64
	powers      Powers
}

// NewTerm constructs a term with a given coefficient and powers.  The result is
// not normalised, hence it may contain zero exponents and, likewise, a zero
// coefficient with non-empty powers.
func NewTerm(coefficient float64, powers map[string]int) Term {
	return Term{coefficient, NewPowers(powers)}
}

// Constant constructs a term with no variables.
func Constant(coefficient float64) Term {
	return Term{coefficient, Powers{}}
}

// ZeroTerm returns the canonical zero term, which has no variables.
func ZeroTerm() Term {
	return Constant(0)
}

// Variable constructs the term 1*name^1.
func Variable(name string) Term {
	return Term{1, NewPowers(map[string]int{name: 1})}
}

// Coefficient returns the coefficient of this term.
func (p Term) Coefficient() float64 {
	return p.coefficient
}

// Powers returns the variables of this term along with their exponents.
func (p Term) Powers() Powers {
	return p.powers
}

// Exponent returns the exponent of a given variable in this term, which is
// zero if the variable is not a factor.
func (p Term) Exponent(name string) int {
	exp, _ := p.powers.Get(name)
	return exp
}

// Variables returns the set of variables appearing in this term.
func (p Term) Variables() *set.Set[string] {
	return set.From(p.powers.names)
}

// IsZero checks whether the coefficient of this term is zero.
func (p Term) IsZero() bool {
	return p.coefficient == 0
}

// IsConstant checks whether this term has no variables.
func (p Term) IsConstant() bool {
	return p.powers.IsEmpty()
}

// Equal performs structural equality between two terms.  That is, they are
// considered the same provided their coefficients and powers are identical.
func (p Term) Equal(other Term) bool {
	return p.coefficient == other.coefficient && p.powers.Equals(other.powers)
}

// Matches determines whether or not the powers of this term match those of the
// other.  Matching terms are "like terms" which can be combined by adding their
// coefficients.
func (p Term) Matches(other Term) bool {
	return p.powers.Equals(other.powers)
}

// Normalize returns the canonical form of this term.  A zero coefficient gives
// the canonical zero term, otherwise variables with zero exponents are dropped.
func (p Term) Normalize() Term {
	if p.coefficient == 0 {
		return ZeroTerm()
	}
	//
	return Term{p.coefficient, p.powers.dropZeros()}
}

// Neg returns a negated copy of this term.
func (p Term) Neg() Term {
	return p.Scale(-1)
}

// Scale returns a copy of this term with its coefficient multiplied by a given
// constant.
func (p Term) Scale(factor float64) Term {
	return Term{p.coefficient * factor, p.powers}
}

// Mul returns a fresh term representing the multiplication of this term and
// another.
func (p Term) Mul(other Term) Term {
	return MultiplyTerms(p, other)
}

// Differentiate returns the partial derivative of this term with respect to a
// given variable.  When the variable is not a factor of this term, the result
// is the zero term.
func (p Term) Differentiate(name string) Term {
	exp, ok := p.powers.Get(name)
	//
	if !ok || exp == 0 {
		return ZeroTerm()
	}
	//
	return Term{p.coefficient * float64(exp), p.powers.Set(name, exp-1)}
}

// Value evaluates this term at a given point.  Every variable of this term must
// be assigned, though unrelated variables in the assignment are ignored.
func (p Term) Value(env Assignment) (float64, error) {
	value := p.coefficient
	//
	for i := range p.powers.Len() {
		name, exp := p.powers.Name(i), p.powers.Exponent(i)
		base, ok := env[name]
		//
		if !ok {
			return 0, fmt.Errorf("%w \"%s\"", ErrMissingVariable, name)
		} else if base == 0 && exp < 0 {
			return 0, fmt.Errorf("%w (%s^%d with %s=0)", ErrDivisionByZero, name, exp, name)
		}
		//
		value *= math.PowInt(base, exp)
	}
	//
	return value, nil
}
