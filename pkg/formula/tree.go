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
	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/xlab/treeprint"
)

// Tree constructs a structural dump of a given expression, showing each
// rational function with the terms of its numerator and denominator.
func Tree(e algebra.Expression) treeprint.Tree {
	var (
		root = treeprint.New()
		expr = root.AddBranch(Format(e))
	)
	//
	for _, q := range algebra.Render(e) {
		branch := expr.AddBranch(formatQuotient(q, false))
		addSum(branch.AddBranch("numerator"), q.Numerator)
		addSum(branch.AddBranch("denominator"), q.Denominator)
	}
	//
	return root
}

func addSum(branch treeprint.Tree, terms []algebra.TermData) {
	for _, t := range terms {
		branch.AddNode(FormatTerm(t))
	}
}
