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
// Package algebra provides rational functions in several variables, along with
// symbolic differentiation, simplification and numeric evaluation.  Terms
// (monomials) are summed into polynomials (TermSum), which are divided to give
// rational functions (Quotient), which are summed to give an Expression.  All
// values are immutable and every operation produces fresh values.
package algebra
