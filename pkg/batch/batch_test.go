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
package batch

import (
	"context"
	"testing"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func Test_Load_01(t *testing.T) {
	file, err := Load("testdata/pendulum.yaml")
	require.NoError(t, err)
	//
	assert.Equal(t, "quadrature", file.Method)
	require.Len(t, file.Formulas, 2)
	assert.Equal(t, Lines{"39.47841760435743*l/g"}, file.Formulas[0].Expression)
	assert.Equal(t, []string{"l", "g"}, file.Formulas[0].Differentiate)
	assert.Equal(t, Lines{"x*y", "2*x"}, file.Formulas[1].Expression)
	assert.Equal(t, algebra.Assignment{"x": 2, "y": 3}, file.Formulas[1].Points[0].Values)
}

func Test_Load_02(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)
}

func Test_Parse_01(t *testing.T) {
	_, err := Parse([]byte("formulas:\n  - expression: x\n"))
	assert.ErrorContains(t, err, "has no name")
	//
	_, err = Parse([]byte("formulas:\n  - name: f\n"))
	assert.ErrorContains(t, err, "has no expression")
	//
	_, err = Parse([]byte("formulas:\n  - name: f\n    expression: {x: 1}\n"))
	assert.ErrorContains(t, err, "must be a string or list")
}

func Test_Run_01(t *testing.T) {
	file, err := Load("testdata/pendulum.yaml")
	require.NoError(t, err)
	//
	results, err := Run(context.Background(), file, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)
	// Period squared
	assert.Equal(t, "period_squared", results[0].Formula)
	assert.InDelta(t, 39.47841760435743/9.81, results[0].Value, 1e-12)
	require.NotNil(t, results[0].Error)
	assert.InDelta(t, 39.47841760435743/9.81, results[0].Derivatives["l"], 1e-12)
	assert.InDelta(t, -39.47841760435743/(9.81*9.81), results[0].Derivatives["g"], 1e-12)
	// No errors given
	assert.Equal(t, uint(1), results[1].Point)
	assert.Nil(t, results[1].Error)
	assert.InDelta(t, 2*39.47841760435743/9.81, results[1].Value, 1e-12)
	// Area, combined linearly: |y+2|*0.1 + |x|*0.2
	assert.Equal(t, "area", results[2].Formula)
	assert.InDelta(t, 10, results[2].Value, 1e-12)
	require.NotNil(t, results[2].Error)
	assert.InDelta(t, 0.9, *results[2].Error, 1e-12)
	assert.Nil(t, results[2].Derivatives)
}

// Results are in order regardless of concurrency.
func Test_Run_02(t *testing.T) {
	file := &File{Formulas: []Formula{{Name: "square", Expression: Lines{"x^2"}}}}
	//
	for i := range 100 {
		file.Formulas[0].Points = append(file.Formulas[0].Points, Point{Values: algebra.Assignment{"x": float64(i)}})
	}
	//
	for _, limit := range []int{0, 1, 4} {
		results, err := Run(context.Background(), file, limit)
		require.NoError(t, err)
		require.Len(t, results, 100)
		//
		for i, r := range results {
			assert.Equal(t, uint(i), r.Point)
			assert.Equal(t, float64(i*i), r.Value)
		}
	}
}

func Test_Run_03(t *testing.T) {
	file := &File{Formulas: []Formula{{
		Name:       "inverse",
		Expression: Lines{"1/x"},
		Points:     []Point{{Values: algebra.Assignment{"x": 1}}, {Values: algebra.Assignment{"x": 0}}},
	}}}
	//
	_, err := Run(context.Background(), file, 1)
	assert.ErrorIs(t, err, algebra.ErrDivisionByZero)
	assert.ErrorContains(t, err, "formula inverse, point 2")
}

func Test_Run_04(t *testing.T) {
	file := &File{Formulas: []Formula{{Name: "bad", Expression: Lines{"x^"}}}}
	//
	_, err := Run(context.Background(), file, 1)
	assert.ErrorIs(t, err, formula.ErrMalformedTerm)
	//
	file = &File{Method: "cubic", Formulas: []Formula{{Name: "f", Expression: Lines{"x"}}}}
	_, err = Run(context.Background(), file, 1)
	assert.ErrorContains(t, err, "unknown method")
}

func Test_Run_05(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	//
	file := &File{Formulas: []Formula{{
		Name:       "f",
		Expression: Lines{"x"},
		Points:     []Point{{Values: algebra.Assignment{"x": 1}}},
	}}}
	//
	_, err := Run(ctx, file, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
