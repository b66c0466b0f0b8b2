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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/errprop"
	"github.com/consensys/go-ratfunc/pkg/formula"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errInvalidNumber = errors.New("invalid number")

var promptCmd = &cobra.Command{
	Use:   "prompt [flags]",
	Short: "Differentiate and evaluate a formula interactively.",
	Long: `Read a formula line by line (ending with an empty line), followed by a
	variable of differentiation and the value of each remaining variable.  The
	derivative and its value are then reported.  With --errors, the formula itself
	is evaluated instead, and an error is read for each variable.  Prompts are
	only written when reading from a terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		method, err := errprop.ParseMethod(GetString(cmd, "method"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		session := promptSession{
			in:          bufio.NewScanner(os.Stdin),
			out:         os.Stdout,
			interactive: term.IsTerminal(int(os.Stdin.Fd())),
			errors:      GetFlag(cmd, "errors"),
			method:      method,
		}
		//
		if err := session.run(); err != nil {
			fmt.Println(err)
			//
			if errors.Is(err, formula.ErrMalformedTerm) || errors.Is(err, io.ErrUnexpectedEOF) ||
				errors.Is(err, errInvalidNumber) {
				os.Exit(2)
			}
			//
			os.Exit(3)
		}
	},
}

// promptSession reads a formula and its inputs line by line.
type promptSession struct {
	in  *bufio.Scanner
	out io.Writer
	// Whether or not to write prompts
	interactive bool
	// Whether to propagate errors, rather than differentiate.
	errors bool
	method errprop.Method
}

func (p *promptSession) run() error {
	var lines []string
	//
	for {
		line, err := p.ask("Enter next line of formula: ")
		if err != nil && len(lines) == 0 {
			return err
		} else if err != nil || line == "" {
			break
		}
		//
		lines = append(lines, line)
	}
	//
	e, err := formula.ParseExpression("<stdin>", lines...)
	if err != nil {
		return err
	}
	//
	if p.errors {
		return p.propagate(e)
	}
	//
	return p.differentiate(e)
}

func (p *promptSession) differentiate(e algebra.Expression) error {
	name, err := p.ask("Enter a variable of differentiation: ")
	if err != nil {
		return err
	}
	//
	d, err := algebra.Differentiate(e, name)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(p.out, "Derivative is: %s\n", formula.Format(d))
	//
	env := make(algebra.Assignment)
	//
	for _, v := range sortedVariables(d) {
		if env[v], err = p.askFloat(fmt.Sprintf("Enter value of %s: ", v)); err != nil {
			return err
		}
	}
	//
	value, err := d.Value(env)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(p.out, "Derivative's value is: %s\n", strconv.FormatFloat(value, 'g', -1, 64))
	//
	return nil
}

func (p *promptSession) propagate(e algebra.Expression) error {
	var (
		env  = make(algebra.Assignment)
		errs = make(algebra.Assignment)
		err  error
	)
	//
	for _, v := range sortedVariables(e) {
		if env[v], err = p.askFloat(fmt.Sprintf("Enter value of %s: ", v)); err != nil {
			return err
		} else if errs[v], err = p.askFloat(fmt.Sprintf("Enter error in %s: ", v)); err != nil {
			return err
		}
	}
	//
	m, err := errprop.Propagate(e, env, errs, p.method)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(p.out, "Value is: %s\n", m.String())
	//
	return nil
}

func (p *promptSession) ask(prompt string) (string, error) {
	if p.interactive {
		fmt.Fprint(p.out, prompt)
	}
	//
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		//
		return "", io.ErrUnexpectedEOF
	}
	//
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *promptSession) askFloat(prompt string) (float64, error) {
	line, err := p.ask(prompt)
	if err != nil {
		return 0, err
	}
	//
	val, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%w \"%s\"", errInvalidNumber, line)
	}
	//
	return val, nil
}

func sortedVariables(e algebra.Expression) []string {
	vars := e.Variables().Slice()
	slices.Sort(vars)
	//
	return vars
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().Bool("errors", false, "propagate errors through the formula, rather than differentiate")
	promptCmd.Flags().String("method", "linear", "combine errors using linear or quadrature")
}
