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
	"encoding/json"
	"fmt"
	"os"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/formula"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] formula_line...",
	Short: "Differentiate a formula.",
	Long: `Differentiate a formula with respect to one or more variables.  Each
	argument is a line of the formula, and lines are summed.  Variables given by
	repeated --wrt flags are differentiated in turn, each --order times.  Without
	--wrt, the gradient of the formula is reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			e     = readExpression(args)
			vars  = GetStringArray(cmd, "wrt")
			order = GetUint(cmd, "order")
			cfg   = outputConfig{GetFlag(cmd, "json"), GetFlag(cmd, "tree")}
		)
		//
		if len(vars) == 0 {
			gradient, err := algebra.Gradient(e)
			exitOnError(err)
			//
			for _, p := range gradient {
				fmt.Printf("d/d%s: ", p.Variable)
				writeExpression(p.Derivative, cfg)
			}
			//
			return
		}
		//
		for _, v := range vars {
			var err error
			//
			e, err = algebra.Nth(e, v, order)
			exitOnError(err)
			log.Debugf("d^%d/d%s^%d => %s", order, v, order, formula.Format(e))
		}
		//
		writeExpression(e, cfg)
	},
}

// outputConfig determines how expressions are written.
type outputConfig struct {
	// Write structured terms as JSON
	json bool
	// Write an expression tree
	tree bool
}

func writeExpression(e algebra.Expression, cfg outputConfig) {
	switch {
	case cfg.json:
		bytes, err := json.Marshal(algebra.Render(e))
		exitOnError(err)
		fmt.Println(string(bytes))
	case cfg.tree:
		fmt.Print(formula.Tree(e).String())
	default:
		fmt.Println(formula.Format(e))
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringArrayP("wrt", "w", nil, "variable of differentiation (can be repeated)")
	diffCmd.Flags().Uint("order", 1, "number of times to differentiate with respect to each variable")
	diffCmd.Flags().Bool("json", false, "write the result as structured JSON terms")
	diffCmd.Flags().Bool("tree", false, "write the result as a tree")
}
