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

	"github.com/hashicorp/go-set/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SumZero_01(t *testing.T) {
	n := NewTermSum(Constant(0)).Normalize()
	//
	require.Equal(t, uint(1), n.Len())
	assert.True(t, n.Term(0).IsZero())
	assert.True(t, n.Term(0).Powers().IsEmpty())
	assert.True(t, n.Equal(ZeroSum()))
}

func Test_SumZero_02(t *testing.T) {
	n := NewTermSum().Normalize()
	assert.True(t, n.Equal(ZeroSum()))
}

// x - x == 0
func Test_SumZero_03(t *testing.T) {
	n := NewTermSum(Variable("x"), Variable("x").Neg()).Normalize()
	assert.True(t, n.Equal(ZeroSum()))
	assert.True(t, n.IsZero())
}

// Like terms are combined irrespective of how their powers were constructed.
func Test_SumNormalize_01(t *testing.T) {
	sum := NewTermSum(
		NewTerm(2, map[string]int{"x": 1, "y": 2}),
		Constant(1),
		NewTerm(3, map[string]int{"y": 2, "x": 1}),
		NewTerm(5, map[string]int{"y": 2, "x": 1, "z": 0}),
		Constant(-1),
	)
	//
	expected := NewTermSum(NewTerm(10, map[string]int{"x": 1, "y": 2}))
	assert.True(t, sum.Normalize().Equal(expected), "got %v", sum.Normalize())
}

func Test_SumNormalize_02(t *testing.T) {
	sums := []TermSum{
		ZeroSum(),
		OneSum(),
		NewTermSum(Variable("x"), Variable("x"), Constant(0)),
		NewTermSum(NewTerm(0, map[string]int{"x": 3}), Variable("y")),
		NewTermSum(Variable("a"), Variable("b"), Variable("a").Neg()),
	}
	//
	for _, sum := range sums {
		once := sum.Normalize()
		assert.True(t, once.Equal(once.Normalize()), "normalisation of %v not idempotent", sum)
	}
}

// First-seen order is retained.
func Test_SumNormalize_03(t *testing.T) {
	n := NewTermSum(Variable("z"), Constant(1), Variable("a"), Variable("z")).Normalize()
	//
	require.Equal(t, uint(3), n.Len())
	assert.True(t, n.Term(0).Equal(NewTerm(2, map[string]int{"z": 1})))
	assert.True(t, n.Term(1).Equal(Constant(1)))
	assert.True(t, n.Term(2).Equal(Variable("a")))
}

// (x+1)*(y-2) == (y-2)*(x+1)
func Test_SumMul_01(t *testing.T) {
	lhs := NewTermSum(Variable("x"), Constant(1))
	rhs := NewTermSum(Variable("y"), Constant(-2))
	//
	expected := NewTermSum(
		NewTerm(1, map[string]int{"x": 1, "y": 1}),
		NewTerm(-2, map[string]int{"x": 1}),
		Variable("y"),
		Constant(-2),
	)
	//
	assert.True(t, lhs.Mul(rhs).Equal(expected))
	assert.True(t, rhs.Mul(lhs).Equal(expected))
}

// (x+1)^2 == x^2 + 2x + 1
func Test_SumMul_02(t *testing.T) {
	sq := NewTermSum(Variable("x"), Constant(1)).Square()
	//
	expected := NewTermSum(
		NewTerm(1, map[string]int{"x": 2}),
		NewTerm(2, map[string]int{"x": 1}),
		Constant(1),
	)
	//
	assert.True(t, sq.Equal(expected), "got %v", sq)
}

// (x+y)*(x-y) == x^2 - y^2
func Test_SumMul_03(t *testing.T) {
	lhs := NewTermSum(Variable("x"), Variable("y"))
	rhs := NewTermSum(Variable("x"), Variable("y").Neg())
	//
	expected := NewTermSum(
		NewTerm(1, map[string]int{"x": 2}),
		NewTerm(-1, map[string]int{"y": 2}),
	)
	//
	assert.True(t, MultiplyTermSums(lhs, rhs).Equal(expected))
}

// x * x^-1 == 1
func Test_SumMul_04(t *testing.T) {
	lhs := NewTermSum(Variable("x"))
	rhs := NewTermSum(NewTerm(1, map[string]int{"x": -1}))
	//
	assert.True(t, lhs.Mul(rhs).Equal(OneSum()))
	assert.True(t, lhs.Mul(rhs).IsOne())
}

func Test_SumMul_05(t *testing.T) {
	p := NewTermSum(Variable("x"), Constant(3))
	//
	assert.True(t, p.Mul(ZeroSum()).Equal(ZeroSum()))
	assert.True(t, p.Mul(OneSum()).Equal(p))
}

func Test_SumNeg_01(t *testing.T) {
	p := NewTermSum(Variable("x"), Constant(-3))
	expected := NewTermSum(Variable("x").Neg(), Constant(3))
	//
	assert.True(t, p.Neg().Equal(expected))
	assert.True(t, p.Add(p.Neg()).Equal(ZeroSum()))
	assert.True(t, p.Sub(p).IsZero())
}

// d/dx (3x^2 + 2xy + y + 7) == 6x + 2y
func Test_SumDiff_01(t *testing.T) {
	p := NewTermSum(
		NewTerm(3, map[string]int{"x": 2}),
		NewTerm(2, map[string]int{"x": 1, "y": 1}),
		Variable("y"),
		Constant(7),
	)
	//
	expected := NewTermSum(
		NewTerm(6, map[string]int{"x": 1}),
		NewTerm(2, map[string]int{"y": 1}),
	)
	//
	assert.True(t, p.Differentiate("x").Equal(expected), "got %v", p.Differentiate("x"))
	assert.True(t, p.Differentiate("z").Equal(ZeroSum()))
}

func Test_SumValue_01(t *testing.T) {
	p := NewTermSum(NewTerm(3, map[string]int{"x": 2}), Variable("y"), Constant(7))
	v, err := p.Value(Assignment{"x": 2, "y": -1})
	//
	require.NoError(t, err)
	assert.Equal(t, 18.0, v)
}

func Test_SumValue_02(t *testing.T) {
	p := NewTermSum(NewTerm(3, map[string]int{"x": 2}), Variable("y"))
	_, err := p.Value(Assignment{"x": 2})
	//
	assert.ErrorIs(t, err, ErrMissingVariable)
}

func Test_SumVariables_01(t *testing.T) {
	p := NewTermSum(NewTerm(3, map[string]int{"x": 2}), Variable("y"), Constant(7))
	//
	assert.True(t, p.Variables().Equal(set.From([]string{"x", "y"})))
	assert.Equal(t, 0, ZeroSum().Variables().Size())
}
