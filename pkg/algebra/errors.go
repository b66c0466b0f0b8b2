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

import "errors"

// ErrDivisionByZero is reported when a rational function has a denominator
// which is identically zero (after normalisation) or which evaluates to zero at
// a given point.
var ErrDivisionByZero = errors.New("division by zero")

// ErrMissingVariable is reported when evaluating a term whose factors include a
// variable for which no value was given.
var ErrMissingVariable = errors.New("missing variable")

// ErrVariableMismatch is reported when the variables of an assignment do not
// match those of the expression being evaluated.
var ErrVariableMismatch = errors.New("variable mismatch")
