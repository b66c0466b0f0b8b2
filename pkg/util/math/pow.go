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
package math

// PowInt raises a given base to a given (possibly negative) integer power
// using repeated squaring.  A negative power yields the reciprocal of the
// corresponding positive power, hence a zero base with a negative power gives
// an infinity.  Callers which must avoid this should check beforehand.
func PowInt(base float64, exp int) float64 {
	if exp < 0 {
		return 1 / powUint(base, uint(-exp))
	}
	//
	return powUint(base, uint(exp))
}

// powUint raises a given base to a given non-negative power.
func powUint(base float64, exp uint) float64 {
	result := float64(1)
	//
	for exp != 0 {
		if exp&1 == 1 {
			result *= base
		}
		// div 2
		exp >>= 1
		//
		base *= base
	}

	return result
}
