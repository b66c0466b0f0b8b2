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

// MultiplyTerms returns a fresh term representing the product of two terms.
// The coefficient is the product of both coefficients, whilst the exponent of
// each variable is the sum of its exponents in both (where a variable missing
// from one side counts as exponent zero).  The result is not normalised, hence
// exponents which cancel out remain as zero exponents.
func MultiplyTerms(lhs, rhs Term) Term {
	return Term{lhs.coefficient * rhs.coefficient, mergePowers(lhs.powers, rhs.powers)}
}

// MultiplyTermSums returns the normalised product of two sums.  This is the sum
// of the products of every pair of terms drawn from both sides, hence it
// performs n*m term multiplications for sums of n and m terms respectively.
func MultiplyTermSums(lhs, rhs TermSum) TermSum {
	terms := make([]Term, 0, len(lhs.terms)*len(rhs.terms))
	//
	for _, ith := range lhs.terms {
		for _, jth := range rhs.terms {
			terms = append(terms, MultiplyTerms(ith, jth))
		}
	}
	//
	return TermSum{terms}.Normalize()
}
