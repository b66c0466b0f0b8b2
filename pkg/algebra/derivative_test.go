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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Derivative_01(t *testing.T) {
	d := NewDerivative("x")
	//
	assert.Equal(t, "x", d.Variable())
	assert.True(t, d.Term(NewTerm(4, map[string]int{"x": 3})).Equal(NewTerm(12, map[string]int{"x": 2})))
	assert.True(t, d.TermSum(NewTermSum(Variable("x"), Constant(2))).Equal(OneSum()))
	//
	q, err := d.Quotient(NewQuotient(OneSum(), NewTermSum(Variable("x"))))
	require.NoError(t, err)
	assert.True(t, q.Equal(NewQuotient(ConstantSum(-1), NewTermSum(NewTerm(1, map[string]int{"x": 2})))))
}

// d^3/dx^3 x^3 == 6, whilst d^4/dx^4 x^3 == 0
func Test_DerivativeNth_01(t *testing.T) {
	e := mustBuild(t, ExpressionData{{Numerator: []TermData{{1, map[string]int{"x": 3}}}}})
	//
	d3, err := Nth(e, "x", 3)
	require.NoError(t, err)
	assert.True(t, d3.Equal(mustBuild(t, ExpressionData{{Numerator: []TermData{{Coefficient: 6}}}})))
	//
	d4, err := Nth(e, "x", 4)
	require.NoError(t, err)
	assert.True(t, d4.IsZero())
	//
	d0, err := Nth(e, "x", 0)
	require.NoError(t, err)
	assert.True(t, d0.Equal(e))
}

// d/dx d/dy x^2*y^3 == 6*x*y^2
func Test_DerivativeAll_01(t *testing.T) {
	e := mustBuild(t, ExpressionData{{Numerator: []TermData{{1, map[string]int{"x": 2, "y": 3}}}}})
	//
	d, err := DifferentiateAll(e, "y", "x")
	require.NoError(t, err)
	assert.True(t, d.Equal(mustBuild(t, ExpressionData{{Numerator: []TermData{{6, map[string]int{"x": 1, "y": 2}}}}})))
}

func Test_Gradient_01(t *testing.T) {
	e := mustBuild(t, ExpressionData{
		{Numerator: []TermData{{1, map[string]int{"x": 1}}}, Denominator: []TermData{{1, map[string]int{"y": 1}}}},
		{Numerator: []TermData{{1, map[string]int{"z": 2}}}},
	})
	//
	partials, err := Gradient(e)
	require.NoError(t, err)
	require.Len(t, partials, 3)
	//
	env := Assignment{"x": 2, "y": 4, "z": 3}
	expected := []float64{0.25, -0.125, 6}
	//
	for i, v := range []string{"x", "y", "z"} {
		assert.Equal(t, v, partials[i].Variable)
		//
		val, err := partials[i].Derivative.ValueWith(env, CoverMatch)
		require.NoError(t, err)
		assert.Equal(t, expected[i], val, "d/d%s", v)
	}
}
