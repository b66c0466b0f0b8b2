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
	"slices"
	"strconv"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"gonum.org/v1/gonum/floats"
)

// ErrNegativeError is reported when a measurement is given a negative error.
var ErrNegativeError = errors.New("negative error")

// Method determines how the contributions of independent errors are combined.
type Method uint

const (
	// Linear sums the magnitude of each contribution, giving a worst-case
	// bound.
	Linear Method = iota
	// Quadrature combines contributions as the square root of the sum of their
	// squares, which assumes errors are independent and random.
	Quadrature
)

// ParseMethod converts a method name into a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "quadrature":
		return Quadrature, nil
	}
	//
	return Linear, fmt.Errorf("unknown method \"%s\" (expected linear or quadrature)", name)
}

func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Quadrature:
		return "quadrature"
	}
	//
	return "unknown"
}

// norm returns the order of the vector norm which implements this method.
func (m Method) norm() float64 {
	if m == Quadrature {
		return 2
	}
	//
	return 1
}

// Contribution captures the effect which the error in a single variable has on
// an expression.
type Contribution struct {
	// Variable whose error this is.
	Variable string
	// Partial derivative of the expression with respect to this variable.
	Partial float64
	// Error in the variable.
	Error float64
}

// Magnitude returns |∂E/∂v|*σ for this contribution.
func (c Contribution) Magnitude() float64 {
	return math.Abs(c.Partial) * c.Error
}

// Measurement is a value paired with its absolute error.
type Measurement struct {
	Value float64 `json:"value" yaml:"value"`
	Error float64 `json:"error" yaml:"error"`
}

func (m Measurement) String() string {
	return fmt.Sprintf("%s ± %s", strconv.FormatFloat(m.Value, 'g', -1, 64),
		strconv.FormatFloat(m.Error, 'g', -1, 64))
}

// Contributions determines the contribution of each given error to the overall
// error of an expression at a given point, in order of variable name.  Errors
// can only be given for variables of the expression.  Variables with no error
// contribute nothing.
func Contributions(e algebra.Expression, values, errs algebra.Assignment) ([]Contribution, error) {
	var (
		vars  = e.Variables()
		names = make([]string, 0, len(errs))
	)
	//
	for name, sigma := range errs {
		if !vars.Contains(name) {
			return nil, fmt.Errorf("%w (error given for unknown variable \"%s\")", algebra.ErrVariableMismatch, name)
		} else if sigma < 0 {
			return nil, fmt.Errorf("%w (%s has error %v)", ErrNegativeError, name, sigma)
		}
		//
		names = append(names, name)
	}
	//
	slices.Sort(names)
	//
	contributions := make([]Contribution, len(names))
	//
	for i, name := range names {
		partial, err := e.Partial(name, values)
		if err != nil {
			return nil, err
		}
		//
		contributions[i] = Contribution{name, partial, errs[name]}
	}
	//
	return contributions, nil
}

// Combine the contributions of independent errors using a given method.
func Combine(contributions []Contribution, method Method) float64 {
	if len(contributions) == 0 {
		return 0
	}
	//
	magnitudes := make([]float64, len(contributions))
	//
	for i, c := range contributions {
		magnitudes[i] = c.Magnitude()
	}
	//
	return floats.Norm(magnitudes, method.norm())
}

// Propagate evaluates an expression at a given point, and determines the error
// in that value arising from the errors in its variables.  The point must
// assign exactly the variables of the expression.
func Propagate(e algebra.Expression, values, errs algebra.Assignment, method Method) (Measurement, error) {
	value, err := e.Value(values)
	if err != nil {
		return Measurement{}, err
	}
	//
	contributions, err := Contributions(e, values, errs)
	if err != nil {
		return Measurement{}, err
	}
	//
	return Measurement{value, Combine(contributions, method)}, nil
}
