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
package errprop

import (
	"errors"
	"fmt"
	"math"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"gonum.org/v1/gonum/num/dual"
)

// ErrInconsistent is reported when a symbolic derivative disagrees with one
// computed numerically.
var ErrInconsistent = errors.New("inconsistent derivative")

// DualPartial computes the partial derivative of an expression with respect to
// a given variable at a given point using forward-mode automatic
// differentiation, rather than by differentiating symbolically.
func DualPartial(e algebra.Expression, name string, values algebra.Assignment) (float64, error) {
	var result dual.Number
	//
	for _, q := range e.Quotients() {
		num, err := dualSum(q.Numerator(), name, values)
		if err != nil {
			return 0, err
		}
		//
		den, err := dualSum(q.Denominator(), name, values)
		if err != nil {
			return 0, err
		} else if den.Real == 0 {
			return 0, fmt.Errorf("%w (denominator evaluates to zero)", algebra.ErrDivisionByZero)
		}
		//
		result = dual.Add(result, dual.Mul(num, dual.Inv(den)))
	}
	//
	return result.Emag, nil
}

// Check that every partial derivative of an expression agrees with that given
// by automatic differentiation at a given point, to within a relative
// tolerance.
func Check(e algebra.Expression, values algebra.Assignment, tolerance float64) error {
	gradient, err := algebra.Gradient(e)
	if err != nil {
		return err
	}
	//
	for _, p := range gradient {
		symbolic, err := p.Derivative.ValueWith(values, algebra.CoverMatch)
		if err != nil {
			return err
		}
		//
		numeric, err := DualPartial(e, p.Variable, values)
		if err != nil {
			return err
		}
		//
		if math.Abs(symbolic-numeric) > tolerance*max(1, math.Abs(numeric)) {
			return fmt.Errorf("%w (d/d%s is %v, expected %v)", ErrInconsistent, p.Variable, symbolic, numeric)
		}
	}
	//
	return nil
}

func dualSum(sum algebra.TermSum, name string, values algebra.Assignment) (dual.Number, error) {
	var result dual.Number
	//
	for _, term := range sum.Terms() {
		v, err := dualTerm(term, name, values)
		if err != nil {
			return result, err
		}
		//
		result = dual.Add(result, v)
	}
	//
	return result, nil
}

func dualTerm(term algebra.Term, name string, values algebra.Assignment) (dual.Number, error) {
	var (
		result = dual.Number{Real: term.Coefficient()}
		powers = term.Powers()
	)
	//
	for i := range powers.Len() {
		var (
			variable = powers.Name(i)
			exp      = powers.Exponent(i)
		)
		//
		val, ok := values[variable]
		if !ok {
			return result, fmt.Errorf("%w \"%s\"", algebra.ErrMissingVariable, variable)
		} else if val == 0 && exp < 0 {
			return result, fmt.Errorf("%w (%s^%d at zero)", algebra.ErrDivisionByZero, variable, exp)
		}
		//
		x := dual.Number{Real: val}
		//
		if variable == name {
			x.Emag = 1
		}
		//
		result = dual.Mul(result, dual.PowReal(x, float64(exp)))
	}
	//
	return result, nil
}
