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
package batch

import (
	"fmt"
	"os"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"gopkg.in/yaml.v3"
)

// File describes a set of formulas, each evaluated at a number of points.
type File struct {
	// Method used for combining errors, unless overridden by a formula.
	Method string `yaml:"method,omitempty"`
	// Formulas to evaluate.
	Formulas []Formula `yaml:"formulas"`
}

// Formula describes a single expression to be evaluated.
type Formula struct {
	// Name identifies this formula in results.
	Name string `yaml:"name"`
	// Expression in textual form, given either as a single string or as a list
	// of lines to be summed.
	Expression Lines `yaml:"expression"`
	// Variables whose partial derivatives are also evaluated.
	Differentiate []string `yaml:"differentiate,omitempty"`
	// Method used for combining errors.
	Method string `yaml:"method,omitempty"`
	// Points at which to evaluate.
	Points []Point `yaml:"points"`
}

// Point is an assignment of values to variables, along with the errors in those
// values (if any).
type Point struct {
	Values algebra.Assignment `yaml:"values"`
	Errors algebra.Assignment `yaml:"errors,omitempty"`
}

// Lines of text which can be given in YAML either as a scalar or a sequence.
type Lines []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Lines) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = Lines{node.Value}
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := node.Decode(&lines); err != nil {
			return err
		}
		//
		*p = lines
		//
		return nil
	}
	//
	return fmt.Errorf("line %d: expression must be a string or list of strings", node.Line)
}

// Load reads a batch file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	//
	return Parse(data)
}

// Parse a batch file from its YAML contents.
func Parse(data []byte) (*File, error) {
	var file File
	//
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse batch YAML: %w", err)
	}
	//
	for i, f := range file.Formulas {
		if f.Name == "" {
			return nil, fmt.Errorf("formula %d has no name", i+1)
		} else if len(f.Expression) == 0 {
			return nil, fmt.Errorf("formula %s has no expression", f.Name)
		}
	}
	//
	return &file, nil
}
