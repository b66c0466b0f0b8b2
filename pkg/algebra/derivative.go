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

import "slices"

// Derivative differentiates terms, sums, rational functions and expressions
// with respect to a fixed variable.  It holds no state beyond that variable.
type Derivative struct {
	variable string
}

// NewDerivative constructs a derivative with respect to a given variable.
func NewDerivative(variable string) Derivative {
	return Derivative{variable}
}

// Variable returns the variable of differentiation.
func (d Derivative) Variable() string {
	return d.variable
}

// Term differentiates a given term.
func (d Derivative) Term(term Term) Term {
	return term.Differentiate(d.variable)
}

// TermSum differentiates a given sum.
func (d Derivative) TermSum(sum TermSum) TermSum {
	return sum.Differentiate(d.variable)
}

// Quotient differentiates a given rational function.
func (d Derivative) Quotient(q Quotient) (Quotient, error) {
	return q.Differentiate(d.variable)
}

// Expression differentiates a given expression.
func (d Derivative) Expression(e Expression) (Expression, error) {
	return e.Differentiate(d.variable)
}

// Differentiate returns the partial derivative of an expression with respect to
// a given variable.
func Differentiate(e Expression, variable string) (Expression, error) {
	return NewDerivative(variable).Expression(e)
}

// DifferentiateAll returns the mixed partial derivative of an expression
// obtained by differentiating with respect to each given variable in turn.
func DifferentiateAll(e Expression, variables ...string) (Expression, error) {
	var err error
	//
	for _, v := range variables {
		if e, err = Differentiate(e, v); err != nil {
			return e, err
		}
	}
	//
	return e, nil
}

// Nth returns the nth partial derivative of an expression with respect to a
// given variable.  The zeroth derivative is the expression itself.
func Nth(e Expression, variable string, n uint) (Expression, error) {
	var err error
	//
	for i := uint(0); i < n && !e.IsZero(); i++ {
		if e, err = Differentiate(e, variable); err != nil {
			return e, err
		}
	}
	//
	return e, nil
}

// Partial associates a variable with the partial derivative of some expression
// with respect to it.
type Partial struct {
	Variable   string
	Derivative Expression
}

// Gradient returns the partial derivatives of an expression with respect to
// each of its variables, sorted by variable name.
func Gradient(e Expression) ([]Partial, error) {
	vars := e.Variables().Slice()
	slices.Sort(vars)
	//
	partials := make([]Partial, len(vars))
	//
	for i, v := range vars {
		d, err := Differentiate(e, v)
		if err != nil {
			return nil, err
		}
		//
		partials[i] = Partial{v, d}
	}
	//
	return partials, nil
}
