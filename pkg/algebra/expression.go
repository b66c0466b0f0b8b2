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
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Matching determines how the variables of an assignment must relate to those
// of the expression being evaluated.
type Matching uint

const (
	// ExactMatch requires the assigned variables to be exactly the variables of
	// the expression.
	ExactMatch Matching = iota
	// CoverMatch requires every variable of the expression to be assigned,
	// whilst permitting additional (unused) variables.
	CoverMatch
)

// Expression represents a sum of one or more rational functions.  This is the
// top-level value manipulated by users.  An expression is never empty: the zero
// expression holds a single zero rational function.
type Expression struct {
	terms []Quotient
}

// NewExpression constructs a normalised expression from zero or more rational
// functions.  An error is reported if any of them has a zero denominator.
func NewExpression(terms ...Quotient) (Expression, error) {
	return Expression{slices.Clone(terms)}.Normalize()
}

// ZeroExpression returns the canonical zero expression.
func ZeroExpression() Expression {
	return Expression{[]Quotient{ZeroQuotient()}}
}

// Len returns the number of rational functions in this expression.
func (p Expression) Len() uint {
	return uint(len(p.terms))
}

// Quotient returns the ith rational function in this expression.
func (p Expression) Quotient(ith uint) Quotient {
	return p.terms[ith]
}

// Quotients returns (a copy of) the rational functions in this expression.
func (p Expression) Quotients() []Quotient {
	return slices.Clone(p.terms)
}

// Variables returns the union of the variables of every rational function in
// this expression.
func (p Expression) Variables() *set.Set[string] {
	vars := set.New[string](0)
	//
	for _, q := range p.terms {
		vars.InsertSet(q.Variables())
	}
	//
	return vars
}

// IsZero checks whether this expression is the zero expression.
func (p Expression) IsZero() bool {
	for _, q := range p.terms {
		if !q.IsZero() {
			return false
		}
	}
	//
	return true
}

// Equal determines whether two expressions hold the same rational functions,
// irrespective of their order.
func (p Expression) Equal(other Expression) bool {
	return containsAllQuotients(p.terms, other.terms) && containsAllQuotients(other.terms, p.terms)
}

// Normalize returns the canonical form of this expression.  Every rational
// function is normalised, and those which are zero are dropped.  If nothing
// remains, the zero expression is returned.
func (p Expression) Normalize() (Expression, error) {
	var terms []Quotient
	//
	for _, q := range p.terms {
		n, err := q.Normalize()
		if err != nil {
			return p, err
		} else if !n.numerator.IsZero() {
			terms = append(terms, n)
		}
	}
	//
	if len(terms) == 0 {
		return ZeroExpression(), nil
	}
	//
	return Expression{terms}, nil
}

// Add returns the normalised sum of this expression and another.
func (p Expression) Add(other Expression) (Expression, error) {
	terms := make([]Quotient, 0, len(p.terms)+len(other.terms))
	terms = append(terms, p.terms...)
	terms = append(terms, other.terms...)
	//
	return Expression{terms}.Normalize()
}

// Differentiate returns the normalised partial derivative of this expression
// with respect to a given variable.
func (p Expression) Differentiate(name string) (Expression, error) {
	terms := make([]Quotient, len(p.terms))
	//
	for i, q := range p.terms {
		d, err := q.Differentiate(name)
		if err != nil {
			return p, err
		}
		//
		terms[i] = d
	}
	//
	return Expression{terms}.Normalize()
}

// Value evaluates this expression at a given point, where the assigned
// variables must be exactly those of this expression.
func (p Expression) Value(env Assignment) (float64, error) {
	return p.ValueWith(env, ExactMatch)
}

// ValueWith evaluates this expression at a given point, where the assigned
// variables must relate to those of this expression as determined by the
// given matching.
func (p Expression) ValueWith(env Assignment, matching Matching) (float64, error) {
	if err := p.checkAssignment(env, matching); err != nil {
		return 0, err
	}
	//
	var value float64
	//
	for _, q := range p.terms {
		v, err := q.Value(env)
		if err != nil {
			return 0, err
		}
		//
		value += v
	}
	//
	return value, nil
}

// Partial evaluates the partial derivative of this expression with respect to a
// given variable at a given point.  Since a derivative may use fewer variables
// than the expression itself, the assignment need only cover them.
func (p Expression) Partial(name string, env Assignment) (float64, error) {
	d, err := p.Differentiate(name)
	if err != nil {
		return 0, err
	}
	//
	return d.ValueWith(env, CoverMatch)
}

// Uncertainty returns the worst-case error of this expression at a given point,
// arising from independent errors in its variables.  This is the first-order
// sum of |∂E/∂v|*errs[v] over every variable v of the expression.  The point
// must assign exactly the variables of this expression, whilst variables
// without a given error are treated as exact.  Errors given for variables not
// in this expression are rejected.
func (p Expression) Uncertainty(env Assignment, errs Assignment) (float64, error) {
	if err := p.checkAssignment(env, ExactMatch); err != nil {
		return 0, err
	} else if err := p.checkAssignment(errs, CoverMatch); err != nil {
		return 0, err
	}
	//
	var (
		total float64
		vars  = p.Variables().Slice()
	)
	// Fixed order, so the sum is reproducible
	slices.Sort(vars)
	//
	for _, name := range vars {
		sigma, ok := errs[name]
		if !ok || sigma == 0 {
			continue
		}
		//
		partial, err := p.Partial(name, env)
		if err != nil {
			return 0, err
		}
		//
		total += math.Abs(partial) * math.Abs(sigma)
	}
	//
	return total, nil
}

func (p Expression) checkAssignment(env Assignment, matching Matching) error {
	var (
		vars     = p.Variables()
		assigned = set.From(slices.Collect(maps.Keys(env)))
	)
	//
	switch matching {
	case ExactMatch:
		if !vars.Equal(assigned) {
			return fmt.Errorf("%w (expected {%s}, got {%s})", ErrVariableMismatch, names(vars), names(assigned))
		}
	case CoverMatch:
		if !assigned.Subset(vars) {
			return fmt.Errorf("%w (expected {%s}, got {%s})", ErrVariableMismatch, names(vars), names(assigned))
		}
	default:
		panic("unknown matching")
	}
	//
	return nil
}

func names(vars *set.Set[string]) string {
	items := vars.Slice()
	slices.Sort(items)
	//
	return strings.Join(items, ",")
}

func containsAllQuotients(lhs, rhs []Quotient) bool {
	for _, r := range rhs {
		if !slices.ContainsFunc(lhs, r.Equal) {
			return false
		}
	}
	//
	return true
}
