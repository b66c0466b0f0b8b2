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

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/errprop"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errorCmd = &cobra.Command{
	Use:   "error [flags] formula_line...",
	Short: "Evaluate a formula and propagate measurement errors.",
	Long: `Evaluate a formula at a given point, along with the error in its value
	arising from independent errors in its variables.  Errors are given with --err
	and combined either linearly (worst case) or in quadrature.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			e      = readExpression(args)
			values = readAssignment("set", GetStringArray(cmd, "set"))
			errs   = readAssignment("err", GetStringArray(cmd, "err"))
		)
		//
		method, err := errprop.ParseMethod(GetString(cmd, "method"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "check") {
			exitOnError(errprop.Check(e, values, GetFloat64(cmd, "tolerance")))
			log.Debug("symbolic and automatic derivatives agree")
		}
		//
		m, contributions, err := measure(e, values, errs, method)
		exitOnError(err)
		//
		for _, c := range contributions {
			log.Debugf("d/d%s = %v, contributing %v", c.Variable, c.Partial, c.Magnitude())
		}
		//
		fmt.Println(m.String())
	},
}

// Evaluate an expression and combine the contributions of each given error,
// which are returned as well for reporting.
func measure(e algebra.Expression, values, errs algebra.Assignment,
	method errprop.Method) (errprop.Measurement, []errprop.Contribution, error) {
	value, err := e.Value(values)
	if err != nil {
		return errprop.Measurement{}, nil, err
	}
	//
	contributions, err := errprop.Contributions(e, values, errs)
	if err != nil {
		return errprop.Measurement{}, nil, err
	}
	//
	return errprop.Measurement{Value: value, Error: errprop.Combine(contributions, method)}, contributions, nil
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(errorCmd)
	errorCmd.Flags().StringArray("set", nil, "assign a variable (e.g. x=5), can be repeated")
	errorCmd.Flags().StringArray("err", nil, "error in a variable (e.g. x=0.1), can be repeated")
	errorCmd.Flags().String("method", "linear", "combine errors using linear or quadrature")
	errorCmd.Flags().Bool("check", false, "check symbolic derivatives against automatic differentiation")
	errorCmd.Flags().Float64("tolerance", 1e-9, "relative tolerance used by --check")
}
