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

	"github.com/hashicorp/go-set/v3"
)

// Quotient represents a rational function, i.e. one sum divided by another.
type Quotient struct {
	numerator   TermSum
	denominator TermSum
}

// NewQuotient constructs a rational function from a given numerator and
// denominator.  The result is not normalised, hence it is not checked whether
// the denominator is zero.
func NewQuotient(numerator, denominator TermSum) Quotient {
	return Quotient{numerator, denominator}
}

// NewPolynomial constructs a rational function whose denominator is one.
func NewPolynomial(numerator TermSum) Quotient {
	return Quotient{numerator, OneSum()}
}

// ZeroQuotient returns the canonical zero rational function, 0/1.
func ZeroQuotient() Quotient {
	return Quotient{ZeroSum(), OneSum()}
}

// OneQuotient returns the rational function 1/1.
func OneQuotient() Quotient {
	return Quotient{OneSum(), OneSum()}
}

// Numerator returns the numerator (dividend) of this rational function.
func (p Quotient) Numerator() TermSum {
	return p.numerator
}

// Denominator returns the denominator (divisor) of this rational function.
func (p Quotient) Denominator() TermSum {
	return p.denominator
}

// Variables returns the variables used in either the numerator or the
// denominator.
func (p Quotient) Variables() *set.Set[string] {
	vars := p.numerator.Variables()
	vars.InsertSet(p.denominator.Variables())
	//
	return vars
}

// IsZero checks whether the numerator of this rational function is zero.
func (p Quotient) IsZero() bool {
	return p.numerator.IsZero()
}

// Equal determines whether two rational functions are the same.  This holds
// when their numerators and denominators are pairwise equal or, alternatively,
// when both numerators are zero (irrespective of the denominators).
func (p Quotient) Equal(other Quotient) bool {
	if p.numerator.Equal(other.numerator) && p.denominator.Equal(other.denominator) {
		return true
	}
	//
	return p.numerator.IsZero() && other.numerator.IsZero()
}

// Normalize returns the canonical form of this rational function, where both
// numerator and denominator are normalised.  A zero numerator gives the zero
// rational function 0/1, whilst a zero denominator (with non-zero numerator)
// is reported as an error.
func (p Quotient) Normalize() (Quotient, error) {
	var (
		num = p.numerator.Normalize()
		den = p.denominator.Normalize()
	)
	//
	if num.IsZero() {
		return ZeroQuotient(), nil
	} else if den.IsZero() {
		return p, fmt.Errorf("%w (denominator is zero)", ErrDivisionByZero)
	}
	//
	return Quotient{num, den}, nil
}

// Value evaluates this rational function at a given point.  An error is
// reported if the denominator evaluates to zero at that point.
func (p Quotient) Value(env Assignment) (float64, error) {
	num, err := p.numerator.Value(env)
	if err != nil {
		return 0, err
	}
	//
	den, err := p.denominator.Value(env)
	if err != nil {
		return 0, err
	} else if den == 0 {
		return 0, fmt.Errorf("%w (denominator evaluates to zero)", ErrDivisionByZero)
	}
	//
	return num / den, nil
}

// Differentiate returns the partial derivative of this rational function with
// respect to a given variable, as determined by the quotient rule.  When the
// variable does not appear in the denominator, only the numerator is
// differentiated.
func (p Quotient) Differentiate(name string) (Quotient, error) {
	var (
		num  = p.numerator
		den  = p.denominator
		dnum = num.Differentiate(name)
	)
	//
	if !den.Variables().Contains(name) {
		return Quotient{dnum, den}.Normalize()
	}
	// (num' * den - num * den') / den^2
	lhs := MultiplyTermSums(dnum, den)
	rhs := MultiplyTermSums(num, den.Differentiate(name))
	//
	return Quotient{lhs.Add(rhs.Neg()), den.Square()}.Normalize()
}

// QuotientRule returns the partial derivative of this rational function with
// respect to a given variable by applying the quotient rule unconditionally,
// i.e. even when the variable does not appear in the denominator.  The result
// is equivalent to (though not necessarily structurally equal to) that of
// Differentiate.
func (p Quotient) QuotientRule(name string) (Quotient, error) {
	var (
		num = p.numerator
		den = p.denominator
		lhs = MultiplyTermSums(num.Differentiate(name), den)
		rhs = MultiplyTermSums(num, den.Differentiate(name))
	)
	//
	return Quotient{lhs.Sub(rhs), den.Square()}.Normalize()
}

// Equivalent determines whether two rational functions denote the same
// function, by checking a/b and c/d satisfy a*d == c*b.  Unlike Equal, this
// identifies (for example) y/y^2 with 1/y.
func (p Quotient) Equivalent(other Quotient) bool {
	lhs := MultiplyTermSums(p.numerator, other.denominator)
	rhs := MultiplyTermSums(other.numerator, p.denominator)
	//
	return lhs.Sub(rhs).IsZero()
}
