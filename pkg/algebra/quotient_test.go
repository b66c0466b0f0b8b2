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

func Test_QuotientNormalize_01(t *testing.T) {
	_, err := NewQuotient(OneSum(), ZeroSum()).Normalize()
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

// (x - x) / (y - y) is zero, rather than undefined.
func Test_QuotientNormalize_02(t *testing.T) {
	zero := NewTermSum(Variable("x"), Variable("x").Neg())
	q, err := NewQuotient(zero, NewTermSum(Variable("y"), Variable("y").Neg())).Normalize()
	//
	require.NoError(t, err)
	assert.True(t, q.Numerator().Equal(ZeroSum()))
	assert.True(t, q.Denominator().Equal(OneSum()))
}

func Test_QuotientNormalize_03(t *testing.T) {
	q := NewQuotient(NewTermSum(Variable("x"), Variable("x")), NewTermSum(Variable("y"), Constant(0)))
	n, err := q.Normalize()
	//
	require.NoError(t, err)
	assert.True(t, n.Numerator().Equal(NewTermSum(NewTerm(2, map[string]int{"x": 1}))))
	assert.True(t, n.Denominator().Equal(NewTermSum(Variable("y"))))
	//
	again, err := n.Normalize()
	require.NoError(t, err)
	assert.True(t, again.Equal(n))
}

func Test_QuotientEqual_01(t *testing.T) {
	lhs := NewQuotient(ZeroSum(), NewTermSum(Variable("x")))
	rhs := NewQuotient(ZeroSum(), NewTermSum(Variable("y")))
	//
	assert.True(t, lhs.Equal(rhs))
	assert.False(t, lhs.Equal(OneQuotient()))
}

func Test_QuotientValue_01(t *testing.T) {
	q := NewQuotient(NewTermSum(Variable("x"), Constant(1)), NewTermSum(Variable("y")))
	v, err := q.Value(Assignment{"x": 3, "y": 8})
	//
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
}

func Test_QuotientValue_02(t *testing.T) {
	q := NewQuotient(OneSum(), NewTermSum(Variable("y"), Constant(-2)))
	_, err := q.Value(Assignment{"y": 2})
	//
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

// d/dx x/y == 1/y, which is equivalent to y/y^2
func Test_QuotientDiff_01(t *testing.T) {
	var (
		x = NewTermSum(Variable("x"))
		y = NewTermSum(Variable("y"))
		q = NewQuotient(x, y)
	)
	//
	d, err := q.Differentiate("x")
	require.NoError(t, err)
	assert.True(t, d.Equal(NewQuotient(OneSum(), y)), "got %v", d)
	//
	full, err := q.QuotientRule("x")
	require.NoError(t, err)
	assert.True(t, full.Numerator().Equal(y), "got %v", full)
	assert.True(t, full.Denominator().Equal(NewTermSum(NewTerm(1, map[string]int{"y": 2}))))
	//
	assert.True(t, d.Equivalent(full))
}

// d/dy x/y == -x/y^2
func Test_QuotientDiff_02(t *testing.T) {
	q := NewQuotient(NewTermSum(Variable("x")), NewTermSum(Variable("y")))
	d, err := q.Differentiate("y")
	//
	require.NoError(t, err)
	assert.True(t, d.Numerator().Equal(NewTermSum(Variable("x").Neg())), "got %v", d)
	assert.True(t, d.Denominator().Equal(NewTermSum(NewTerm(1, map[string]int{"y": 2}))))
	//
	full, err := q.QuotientRule("y")
	require.NoError(t, err)
	assert.True(t, full.Equal(d))
}

// d/dx (x^2+1)/(x-1) == (x^2 - 2x - 1)/(x-1)^2
func Test_QuotientDiff_03(t *testing.T) {
	q := NewQuotient(
		NewTermSum(NewTerm(1, map[string]int{"x": 2}), Constant(1)),
		NewTermSum(Variable("x"), Constant(-1)),
	)
	//
	expected := NewQuotient(
		NewTermSum(NewTerm(1, map[string]int{"x": 2}), NewTerm(-2, map[string]int{"x": 1}), Constant(-1)),
		NewTermSum(NewTerm(1, map[string]int{"x": 2}), NewTerm(-2, map[string]int{"x": 1}), Constant(1)),
	)
	//
	d, err := q.Differentiate("x")
	require.NoError(t, err)
	assert.True(t, d.Equal(expected), "got %v", d)
}

// Differentiating a constant gives zero.
func Test_QuotientDiff_04(t *testing.T) {
	q := NewQuotient(ConstantSum(4), NewTermSum(Variable("y")))
	d, err := q.Differentiate("x")
	//
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.True(t, d.Denominator().Equal(OneSum()))
}

func Test_QuotientEquivalent_01(t *testing.T) {
	lhs := NewQuotient(NewTermSum(NewTerm(2, map[string]int{"x": 1})), ConstantSum(4))
	rhs := NewQuotient(NewTermSum(Variable("x")), ConstantSum(2))
	//
	assert.True(t, lhs.Equivalent(rhs))
	assert.False(t, lhs.Equal(rhs))
	assert.False(t, lhs.Equivalent(OneQuotient()))
}
