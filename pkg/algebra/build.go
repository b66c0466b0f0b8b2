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

// TermData is the structured form of a term, as produced by a parser or
// consumed by a printer.
type TermData struct {
	Coefficient float64        `json:"coefficient" yaml:"coefficient"`
	Powers      map[string]int `json:"powers,omitempty" yaml:"powers,omitempty"`
}

// QuotientData is the structured form of a rational function.  An empty
// numerator denotes zero, whilst an empty denominator denotes one.
type QuotientData struct {
	Numerator   []TermData `json:"numerator" yaml:"numerator"`
	Denominator []TermData `json:"denominator,omitempty" yaml:"denominator,omitempty"`
}

// ExpressionData is the structured form of an expression, i.e. a sum of
// rational functions.
type ExpressionData []QuotientData

// Build constructs a normalised expression from its structured form.  An error
// is reported if any rational function has a zero denominator.
func Build(data ExpressionData) (Expression, error) {
	terms := make([]Quotient, len(data))
	//
	for i, q := range data {
		terms[i] = buildQuotient(q)
	}
	//
	return NewExpression(terms...)
}

// Render returns the structured form of a given expression.  Every rational
// function is given an explicit denominator, and terms appear in the order they
// are held.
func Render(e Expression) ExpressionData {
	data := make(ExpressionData, len(e.terms))
	//
	for i, q := range e.terms {
		data[i] = QuotientData{renderSum(q.numerator), renderSum(q.denominator)}
	}
	//
	return data
}

func buildQuotient(data QuotientData) Quotient {
	var (
		num = ZeroSum()
		den = OneSum()
	)
	//
	if len(data.Numerator) > 0 {
		num = buildSum(data.Numerator)
	}
	//
	if len(data.Denominator) > 0 {
		den = buildSum(data.Denominator)
	}
	//
	return Quotient{num, den}
}

func buildSum(data []TermData) TermSum {
	terms := make([]Term, len(data))
	//
	for i, t := range data {
		terms[i] = NewTerm(t.Coefficient, t.Powers)
	}
	//
	return TermSum{terms}
}

func renderSum(sum TermSum) []TermData {
	data := make([]TermData, len(sum.terms))
	//
	for i, t := range sum.terms {
		data[i] = TermData{Coefficient: t.coefficient}
		//
		if !t.powers.IsEmpty() {
			data[i].Powers = t.powers.Map()
		}
	}
	//
	return data
}
