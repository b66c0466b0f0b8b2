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
	"unicode"

	"github.com/consensys/go-ratfunc/pkg/util/source"
)

// Token kinds.
const (
	END_OF uint = iota
	WHITESPACE
	NEWLINE
	NUMBER
	IDENTIFIER
	ADD
	SUB
	MUL
	DIV
	POW
	LBRACE
	RBRACE
)

// Rule for describing whitespace
var whitespace source.Scanner[rune] = source.Many(WHITESPACE, ' ', '\t', '\r')

// Rule for describing identifiers.  These cannot begin with a digit, since
// numbers are scanned first.
var identifier source.Scanner[rune] = source.While(IDENTIFIER, func(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
})

// Rule for describing decimal numbers, with an optional fraction and exponent.
var number source.Scanner[rune] = numberScanner{}

var scanner source.Scanner[rune] = source.Or(
	whitespace,
	source.Many(NEWLINE, '\n'),
	number,
	identifier,
	source.One(ADD, '+'),
	source.One(SUB, '-'),
	source.One(MUL, '*'),
	source.One(DIV, '/'),
	source.One(POW, '^'),
	source.One(LBRACE, '('),
	source.One(RBRACE, ')'),
	source.Eof[rune](END_OF))

// Lex a given source file into a sequence of tokens, discarding whitespace.
// If some character cannot be matched, a syntax error is returned for it.
func Lex(srcfile *source.File) ([]source.Token, *source.SyntaxError) {
	var (
		contents = srcfile.Contents()
		lexer    = source.NewLexer(contents, scanner)
		tokens   []source.Token
	)
	//
	for _, t := range lexer.Collect() {
		if t.Kind != WHITESPACE {
			tokens = append(tokens, t)
		}
	}
	//
	if lexer.Remaining() != 0 {
		start := lexer.Index()
		return nil, srcfile.SyntaxError(source.NewSpan(start, start+1), "unknown character")
	}
	//
	return tokens, nil
}

type numberScanner struct{}

func (numberScanner) Scan(items []rune) (source.Token, bool) {
	i := digits(items, 0)
	// Fractional part
	if i < len(items) && items[i] == '.' {
		if j := digits(items, i+1); j > i+1 || i > 0 {
			i = j
		}
	}
	//
	if i == 0 {
		return source.Token{}, false
	}
	// Exponent, which is only consumed when well-formed.
	if i < len(items) && (items[i] == 'e' || items[i] == 'E') {
		j := i + 1
		if j < len(items) && (items[j] == '+' || items[j] == '-') {
			j++
		}
		//
		if k := digits(items, j); k > j {
			i = k
		}
	}
	//
	return source.Token{Kind: NUMBER, Span: source.NewSpan(0, i)}, true
}

// Determine the end of a run of digits beginning at a given position.
func digits(items []rune, i int) int {
	for i < len(items) && '0' <= items[i] && items[i] <= '9' {
		i++
	}
	//
	return i
}
