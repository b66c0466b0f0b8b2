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
	"fmt"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/errprop"
	"github.com/consensys/go-ratfunc/pkg/formula"
	"github.com/consensys/go-ratfunc/pkg/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result of evaluating a formula at a single point.
type Result struct {
	// Formula which was evaluated.
	Formula string `json:"formula" yaml:"formula"`
	// Index of the point within the formula.
	Point uint `json:"point" yaml:"point"`
	// Value of the formula at this point.
	Value float64 `json:"value" yaml:"value"`
	// Error in the value, when errors were given for this point.
	Error *float64 `json:"error,omitempty" yaml:"error,omitempty"`
	// Partial derivatives requested for this formula.
	Derivatives map[string]float64 `json:"derivatives,omitempty" yaml:"derivatives,omitempty"`
}

// compiled captures a formula ready for evaluation.
type compiled struct {
	name        string
	expr        algebra.Expression
	method      errprop.Method
	derivatives []algebra.Partial
}

// job identifies a single point of a compiled formula.
type job struct {
	formula *compiled
	index   uint
	point   Point
}

// Run evaluates every point of every formula in a batch file, using at most
// limit goroutines (or without limit when this is not positive).  Results are
// returned in the order points are given.  The first failure cancels any
// remaining evaluations.
func Run(ctx context.Context, file *File, limit int) ([]Result, error) {
	stats := util.NewPerfStats()
	//
	jobs, err := compile(file)
	if err != nil {
		return nil, err
	}
	//
	stats.Log(fmt.Sprintf("Compiling %d formula(s)", len(file.Formulas)))
	//
	var (
		results = make([]Result, len(jobs))
		g, gctx = errgroup.WithContext(ctx)
	)
	//
	if limit > 0 {
		g.SetLimit(limit)
	}
	//
	stats = util.NewPerfStats()
	//
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			//
			r, err := j.evaluate()
			if err != nil {
				return fmt.Errorf("formula %s, point %d: %w", j.formula.name, j.index+1, err)
			}
			//
			results[i] = r
			//
			return nil
		})
	}
	//
	if err := g.Wait(); err != nil {
		return nil, err
	}
	//
	stats.Log(fmt.Sprintf("Evaluating %d point(s)", len(jobs)))
	//
	return results, nil
}

// compile every formula, producing the list of points to evaluate.
func compile(file *File) ([]job, error) {
	var jobs []job
	//
	defaultMethod, err := parseMethod(file.Method)
	if err != nil {
		return nil, err
	}
	//
	for _, f := range file.Formulas {
		c, err := compileFormula(f, defaultMethod)
		if err != nil {
			return nil, fmt.Errorf("formula %s: %w", f.Name, err)
		}
		//
		log.Debugf("compiled formula %s = %s", f.Name, formula.Format(c.expr))
		//
		for i, p := range f.Points {
			jobs = append(jobs, job{c, uint(i), p})
		}
	}
	//
	return jobs, nil
}

func compileFormula(f Formula, defaultMethod errprop.Method) (*compiled, error) {
	method := defaultMethod
	//
	if f.Method != "" {
		m, err := errprop.ParseMethod(f.Method)
		if err != nil {
			return nil, err
		}
		//
		method = m
	}
	//
	expr, err := formula.ParseExpression(f.Name, f.Expression...)
	if err != nil {
		return nil, err
	}
	//
	derivatives := make([]algebra.Partial, len(f.Differentiate))
	//
	for i, v := range f.Differentiate {
		d, err := algebra.Differentiate(expr, v)
		if err != nil {
			return nil, err
		}
		//
		derivatives[i] = algebra.Partial{Variable: v, Derivative: d}
	}
	//
	return &compiled{f.Name, expr, method, derivatives}, nil
}

func (j job) evaluate() (Result, error) {
	result := Result{Formula: j.formula.name, Point: j.index}
	//
	m, err := errprop.Propagate(j.formula.expr, j.point.Values, j.point.Errors, j.formula.method)
	if err != nil {
		return result, err
	}
	//
	result.Value = m.Value
	//
	if len(j.point.Errors) > 0 {
		result.Error = &m.Error
	}
	//
	if len(j.formula.derivatives) > 0 {
		result.Derivatives = make(map[string]float64, len(j.formula.derivatives))
	}
	//
	for _, p := range j.formula.derivatives {
		v, err := p.Derivative.ValueWith(j.point.Values, algebra.CoverMatch)
		if err != nil {
			return result, fmt.Errorf("d/d%s: %w", p.Variable, err)
		}
		//
		result.Derivatives[p.Variable] = v
	}
	//
	return result, nil
}

func parseMethod(name string) (errprop.Method, error) {
	if name == "" {
		return errprop.Linear, nil
	}
	//
	return errprop.ParseMethod(name)
}
