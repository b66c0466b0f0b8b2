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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/formula"
	"github.com/consensys/go-ratfunc/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetFloat64 gets an expected float, or exits if an error arises.
func GetFloat64(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// configure the logging level from the persistent verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// readExpression parses the formula given on the command line, where each
// argument is a separate line.  Syntax errors are printed with highlighting,
// and cause the process to exit.
func readExpression(args []string) algebra.Expression {
	e, err := formula.ParseExpression("<formula>", args...)
	//
	var malformed *formula.MalformedTermError
	//
	switch {
	case err == nil:
		log.Debugf("read formula %s", formula.Format(e))
		return e
	case errors.As(err, &malformed):
		for _, serr := range malformed.Errors {
			printSyntaxError(&serr)
		}
	default:
		fmt.Println(err)
	}
	//
	os.Exit(2)
	// unreachable
	return e
}

// readAssignment parses a set of name=value pairs, exiting on failure.
func readAssignment(flag string, pairs []string) algebra.Assignment {
	env, err := parseAssignment(pairs)
	if err != nil {
		fmt.Printf("--%s: %s\n", flag, err)
		os.Exit(2)
	}
	//
	return env
}

// parseAssignment parses a set of name=value pairs.  Each pair can itself
// contain several comma-separated assignments.
func parseAssignment(pairs []string) (algebra.Assignment, error) {
	env := make(algebra.Assignment)
	//
	for _, pair := range pairs {
		for _, item := range strings.Split(pair, ",") {
			name, value, ok := strings.Cut(strings.TrimSpace(item), "=")
			name = strings.TrimSpace(name)
			//
			if !ok || name == "" {
				return nil, fmt.Errorf("expected name=value, found \"%s\"", item)
			} else if _, ok := env[name]; ok {
				return nil, fmt.Errorf("variable %s assigned more than once", name)
			}
			//
			val, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: \"%s\"", name, value)
			}
			//
			env[name] = val
		}
	}
	//
	return env, nil
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

// exitOnError reports a failure to evaluate and exits.
func exitOnError(err error) {
	if err != nil {
		log.Error(err)
		os.Exit(3)
	}
}
