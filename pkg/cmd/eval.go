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
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] formula_line...",
	Short: "Evaluate a formula at a given point.",
	Long: `Evaluate a formula, or one of its partial derivatives, at a given point.
	Every variable of the formula must be assigned using --set.  Unless
	--lenient is given, no other variables may be assigned.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			e        = readExpression(args)
			env      = readAssignment("set", GetStringArray(cmd, "set"))
			wrt      = GetString(cmd, "wrt")
			matching = algebra.ExactMatch
		)
		//
		if GetFlag(cmd, "lenient") {
			matching = algebra.CoverMatch
		}
		//
		if wrt != "" {
			var err error
			e, err = algebra.Differentiate(e, wrt)
			exitOnError(err)
			// Derivatives can eliminate variables
			matching = algebra.CoverMatch
		}
		//
		value, err := e.ValueWith(env, matching)
		exitOnError(err)
		fmt.Println(strconv.FormatFloat(value, 'g', -1, 64))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArray("set", nil, "assign a variable (e.g. x=5), can be repeated")
	evalCmd.Flags().String("wrt", "", "evaluate the partial derivative with respect to this variable")
	evalCmd.Flags().Bool("lenient", false, "permit assignments to variables not in the formula")
}
