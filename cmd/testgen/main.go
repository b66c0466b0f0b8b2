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
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/batch"
	"github.com/consensys/go-ratfunc/pkg/cmd"
	"github.com/consensys/go-ratfunc/pkg/formula"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("formulas", 10, "Number of formulas")
	rootCmd.Flags().Uint("points", 4, "Number of points per formula")
	rootCmd.Flags().Uint("max-quotients", 3, "Maximum number of rational functions per formula")
	rootCmd.Flags().Uint("max-terms", 3, "Maximum number of terms per polynomial")
	rootCmd.Flags().Uint("max-exp", 3, "Maximum exponent of any variable")
	rootCmd.Flags().String("vars", "x,y,z", "Comma-separated variable names")
	rootCmd.Flags().Int("seed", 1, "Seed for the random number generator")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Test generation utility for go-ratfunc.",
	Long: `Generate a batch file of random formulas, each with random points and
	errors.  Denominators have positive coefficients, and points are positive,
	such that every point can be evaluated.`,
	Run: func(c *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(c.UsageString())
			os.Exit(1)
		}
		//
		if cmd.GetFlag(c, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		cfg := TestGenConfig{
			formulas:     cmd.GetUint(c, "formulas"),
			points:       cmd.GetUint(c, "points"),
			maxQuotients: max(1, cmd.GetUint(c, "max-quotients")),
			maxTerms:     max(1, cmd.GetUint(c, "max-terms")),
			maxExp:       cmd.GetUint(c, "max-exp"),
			vars:         strings.Split(cmd.GetString(c, "vars"), ","),
		}
		//
		rng := rand.New(rand.NewSource(int64(cmd.GetInt(c, "seed"))))
		file := generateBatch(cfg, rng)
		// Write out
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		//
		if err := enc.Encode(file); err != nil {
			fmt.Println(err)
			os.Exit(2)
		} else if err := enc.Close(); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	formulas     uint
	points       uint
	maxQuotients uint
	maxTerms     uint
	maxExp       uint
	vars         []string
}

func generateBatch(cfg TestGenConfig, rng *rand.Rand) batch.File {
	file := batch.File{Method: "quadrature"}
	//
	for i := range cfg.formulas {
		data := generateExpression(cfg, rng)
		// Determine which variables survived normalisation
		e, err := algebra.Build(data)
		if err != nil {
			panic(err)
		}
		//
		var (
			vars = e.Variables()
			f    = batch.Formula{
				Name:       fmt.Sprintf("f%d", i+1),
				Expression: batch.Lines{formula.FormatData(data)},
			}
		)
		//
		for _, v := range cfg.vars {
			if vars.Contains(v) {
				f.Differentiate = append(f.Differentiate, v)
			}
		}
		//
		log.Debugf("generated %s = %s", f.Name, f.Expression[0])
		//
		for range cfg.points {
			f.Points = append(f.Points, generatePoint(f.Differentiate, rng))
		}
		//
		file.Formulas = append(file.Formulas, f)
	}
	//
	return file
}

func generateExpression(cfg TestGenConfig, rng *rand.Rand) algebra.ExpressionData {
	var (
		n    = 1 + rng.Intn(int(cfg.maxQuotients))
		data = make(algebra.ExpressionData, n)
	)
	//
	for i := range data {
		data[i].Numerator = generateSum(cfg, rng, false)
		// Leave some rational functions as polynomials
		if rng.Intn(3) != 0 {
			data[i].Denominator = generateSum(cfg, rng, true)
		}
	}
	//
	return data
}

func generateSum(cfg TestGenConfig, rng *rand.Rand, positive bool) []algebra.TermData {
	terms := make([]algebra.TermData, 1+rng.Intn(int(cfg.maxTerms)))
	//
	for i := range terms {
		terms[i] = generateTerm(cfg, rng, positive)
	}
	//
	return terms
}

func generateTerm(cfg TestGenConfig, rng *rand.Rand, positive bool) algebra.TermData {
	term := algebra.TermData{Coefficient: float64(1 + rng.Intn(9))}
	//
	if !positive && rng.Intn(2) == 0 {
		term.Coefficient = -term.Coefficient
	}
	//
	for _, v := range cfg.vars {
		if exp := rng.Intn(int(cfg.maxExp) + 1); exp != 0 {
			if term.Powers == nil {
				term.Powers = make(map[string]int)
			}
			//
			term.Powers[v] = exp
		}
	}
	//
	return term
}

// Generate a point whose values are all positive, hence every denominator with
// positive coefficients is nonzero.
func generatePoint(vars []string, rng *rand.Rand) batch.Point {
	point := batch.Point{Values: make(algebra.Assignment), Errors: make(algebra.Assignment)}
	//
	for _, v := range vars {
		point.Values[v] = float64(1+rng.Intn(40)) / 8
		point.Errors[v] = float64(rng.Intn(10)) / 100
	}
	//
	return point
}
