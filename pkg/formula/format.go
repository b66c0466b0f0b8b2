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
package formula

import (
	"slices"
	"strconv"
	"strings"

	"github.com/consensys/go-ratfunc/pkg/algebra"
)

// Format returns the textual form of a given expression, such that parsing it
// gives back an equal expression.  Monomials are written as
// "coefficient*var1^exp1*var2^exp2", polynomials as monomials joined by " + ",
// and rational functions as "dividend/divisor".  Unit divisors are omitted.
// When an expression holds several rational functions, each is bracketed.
func Format(e algebra.Expression) string {
	return FormatData(algebra.Render(e))
}

// FormatData returns the textual form of an expression in structured form.
func FormatData(data algebra.ExpressionData) string {
	var (
		parts   = make([]string, len(data))
		bracket = len(data) > 1
	)
	//
	for i, q := range data {
		parts[i] = formatQuotient(q, bracket)
	}
	//
	return strings.Join(parts, " + ")
}

// FormatTerm returns the textual form of a single monomial.  A unit
// coefficient is omitted unless the monomial is constant.
func FormatTerm(term algebra.TermData) string {
	var (
		builder strings.Builder
		coeff   = strconv.FormatFloat(term.Coefficient, 'g', -1, 64)
	)
	//
	switch {
	case len(term.Powers) == 0:
		return coeff
	case term.Coefficient == -1:
		builder.WriteString("-")
	case term.Coefficient != 1:
		builder.WriteString(coeff)
		builder.WriteString("*")
	}
	//
	for i, name := range sortedNames(term.Powers) {
		if i != 0 {
			builder.WriteString("*")
		}
		//
		builder.WriteString(name)
		builder.WriteString("^")
		builder.WriteString(strconv.Itoa(term.Powers[name]))
	}
	//
	return builder.String()
}

// FormatSum returns the textual form of a polynomial.
func FormatSum(terms []algebra.TermData) string {
	if len(terms) == 0 {
		return "0"
	}
	//
	parts := make([]string, len(terms))
	//
	for i, t := range terms {
		parts[i] = FormatTerm(t)
	}
	//
	return strings.Join(parts, " + ")
}

func formatQuotient(q algebra.QuotientData, bracket bool) string {
	var (
		num = FormatSum(q.Numerator)
		den = FormatSum(q.Denominator)
	)
	//
	if bracket {
		num = "(" + num + ")"
		den = "(" + den + ")"
	}
	//
	if isUnit(q.Denominator) {
		return num
	}
	//
	return num + "/" + den
}

func isUnit(terms []algebra.TermData) bool {
	return len(terms) == 0 || (len(terms) == 1 && len(terms[0].Powers) == 0 && terms[0].Coefficient == 1)
}

func sortedNames(powers map[string]int) []string {
	names := make([]string, 0, len(powers))
	//
	for n := range powers {
		names = append(names, n)
	}
	//
	slices.Sort(names)
	//
	return names
}
