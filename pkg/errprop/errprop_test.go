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
	"testing"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Propagate_01(t *testing.T) {
	checkPropagate(t, "x*y", algebra.Assignment{"x": 2, "y": 3}, algebra.Assignment{"x": 0.1, "y": 0.2},
		Linear, Measurement{6, 0.7})
}

func Test_Propagate_02(t *testing.T) {
	checkPropagate(t, "x*y", algebra.Assignment{"x": 2, "y": 3}, algebra.Assignment{"x": 0.1, "y": 0.2},
		Quadrature, Measurement{6, 0.5})
}

// No errors means an exact value.
func Test_Propagate_03(t *testing.T) {
	checkPropagate(t, "x^2/y", algebra.Assignment{"x": 3, "y": 2}, nil, Quadrature, Measurement{4.5, 0})
}

// d/dx x^2/y = 2x/y = 3, d/dy x^2/y = -x^2/y^2 = -2.25
func Test_Propagate_04(t *testing.T) {
	checkPropagate(t, "x^2/y", algebra.Assignment{"x": 3, "y": 2}, algebra.Assignment{"x": 1, "y": 1},
		Linear, Measurement{4.5, 5.25})
}

func Test_Propagate_05(t *testing.T) {
	e := parse(t, "x/y")
	//
	_, err := Propagate(e, algebra.Assignment{"x": 1, "y": 2}, algebra.Assignment{"z": 1}, Linear)
	assert.ErrorIs(t, err, algebra.ErrVariableMismatch)
	//
	_, err = Propagate(e, algebra.Assignment{"x": 1, "y": 2}, algebra.Assignment{"x": -1}, Linear)
	assert.ErrorIs(t, err, ErrNegativeError)
	//
	_, err = Propagate(e, algebra.Assignment{"x": 1}, algebra.Assignment{"x": 1}, Linear)
	assert.ErrorIs(t, err, algebra.ErrVariableMismatch)
	//
	_, err = Propagate(e, algebra.Assignment{"x": 1, "y": 0}, algebra.Assignment{"x": 1}, Linear)
	assert.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

// Linear combination agrees with the worst-case uncertainty of an expression.
func Test_Propagate_06(t *testing.T) {
	var (
		e      = parse(t, "(x*y + z^3)/(x - 2*y) + (4)/(z)")
		values = algebra.Assignment{"x": 1.5, "y": -0.5, "z": 2}
		errs   = algebra.Assignment{"x": 0.01, "y": 0.02, "z": 0.05}
	)
	//
	m, err := Propagate(e, values, errs, Linear)
	require.NoError(t, err)
	//
	sigma, err := e.Uncertainty(values, errs)
	require.NoError(t, err)
	assert.InDelta(t, sigma, m.Error, 1e-12)
}

func Test_Contributions_01(t *testing.T) {
	e := parse(t, "x*y + y")
	//
	cs, err := Contributions(e, algebra.Assignment{"x": 2, "y": 3}, algebra.Assignment{"y": 0.5, "x": 0.1})
	require.NoError(t, err)
	assert.Equal(t, []Contribution{{"x", 3, 0.1}, {"y", 3, 0.5}}, cs)
	assert.InDelta(t, 1.5, cs[1].Magnitude(), 1e-12)
}

func Test_Method_01(t *testing.T) {
	for _, m := range []Method{Linear, Quadrature} {
		parsed, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	//
	_, err := ParseMethod("cubic")
	assert.Error(t, err)
}

func Test_Measurement_01(t *testing.T) {
	assert.Equal(t, "6 ± 0.5", Measurement{6, 0.5}.String())
}

func Test_DualPartial_01(t *testing.T) {
	checkDual(t, "2*x + 3*x^2", algebra.Assignment{"x": 5})
}

func Test_DualPartial_02(t *testing.T) {
	checkDual(t, "x/y", algebra.Assignment{"x": 2, "y": 4})
}

func Test_DualPartial_03(t *testing.T) {
	checkDual(t, "(x*y + z^3)/(x - 2*y) + (4)/(z) + x^-2*y", algebra.Assignment{"x": 1.5, "y": -0.5, "z": 2})
}

func Test_DualPartial_04(t *testing.T) {
	checkDual(t, "3*x^5*y^3*z^2 + 2*x^2/x^5 + 1", algebra.Assignment{"x": 0.5, "y": 1.25, "z": -3})
}

func Test_DualPartial_05(t *testing.T) {
	e := parse(t, "x/y")
	//
	_, err := DualPartial(e, "x", algebra.Assignment{"x": 1, "y": 0})
	assert.ErrorIs(t, err, algebra.ErrDivisionByZero)
	//
	_, err = DualPartial(e, "x", algebra.Assignment{"x": 1})
	assert.ErrorIs(t, err, algebra.ErrMissingVariable)
}

// ===================================================================
// Test Helpers
// ===================================================================

func parse(t *testing.T, input string) algebra.Expression {
	t.Helper()
	//
	e, err := formula.ParseExpression("test", input)
	require.NoError(t, err)
	//
	return e
}

func checkPropagate(t *testing.T, input string, values, errs algebra.Assignment, method Method, expected Measurement) {
	t.Helper()
	//
	m, err := Propagate(parse(t, input), values, errs, method)
	require.NoError(t, err)
	assert.InDelta(t, expected.Value, m.Value, 1e-12)
	assert.InDelta(t, expected.Error, m.Error, 1e-12)
}

// Check symbolic derivatives agree with automatic differentiation.
func checkDual(t *testing.T, input string, values algebra.Assignment) {
	t.Helper()
	//
	e := parse(t, input)
	//
	for name := range values {
		symbolic, err := e.Partial(name, values)
		require.NoError(t, err)
		//
		numeric, err := DualPartial(e, name, values)
		require.NoError(t, err)
		assert.InDelta(t, numeric, symbolic, 1e-9, "d/d%s of %s", name, input)
	}
	//
	require.NoError(t, Check(e, values, 1e-9))
}
