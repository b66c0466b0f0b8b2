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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-ratfunc/pkg/algebra"
	"github.com/consensys/go-ratfunc/pkg/util/source"
)

// ErrMalformedTerm is reported (via MalformedTermError) when a formula cannot
// be parsed.
var ErrMalformedTerm = errors.New("malformed term")

// MalformedTermError reports one or more syntax errors arising from parsing a
// formula.
type MalformedTermError struct {
	Errors []source.SyntaxError
}

// Error implements the error interface.
func (p *MalformedTermError) Error() string {
	msgs := make([]string, len(p.Errors))
	//
	for i, e := range p.Errors {
		msgs[i] = e.Error()
	}
	//
	return fmt.Sprintf("%s: %s", ErrMalformedTerm, strings.Join(msgs, "; "))
}

// Is allows a MalformedTermError to match ErrMalformedTerm.
func (p *MalformedTermError) Is(target error) bool {
	return target == ErrMalformedTerm
}

// ParseExpression parses one or more lines of text into a normalised
// expression.  Each line is a sum of rational functions, and the lines
// themselves are summed.  Syntax errors are reported as a *MalformedTermError,
// whilst a zero divisor is reported as algebra.ErrDivisionByZero.
func ParseExpression(name string, lines ...string) (algebra.Expression, error) {
	srcfile := source.NewSourceFile(name, []byte(strings.Join(lines, "\n")))
	//
	data, errs := Parse(srcfile)
	if len(errs) > 0 {
		return algebra.ZeroExpression(), &MalformedTermError{errs}
	}
	//
	return algebra.Build(data)
}

// Parse a given source file into the structured form of an expression, or
// produce one or more syntax errors.  Parsing resumes after each erroneous
// line, such that errors on distinct lines are all reported.
func Parse(srcfile *source.File) (algebra.ExpressionData, []source.SyntaxError) {
	tokens, err := Lex(srcfile)
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	var (
		p    = &Parser{srcfile, tokens, 0}
		data algebra.ExpressionData
		errs []source.SyntaxError
	)
	//
	for p.skip(NEWLINE); p.lookahead().Kind != END_OF; p.skip(NEWLINE) {
		line, err := p.parseLine()
		//
		if err != nil {
			errs = append(errs, *err)
			p.recover()
		} else {
			data = append(data, line...)
		}
	}
	//
	if len(data) == 0 && len(errs) == 0 {
		return nil, []source.SyntaxError{*srcfile.SyntaxError(p.lookahead().Span, "empty formula")}
	}
	//
	return data, errs
}

// Parser is responsible for parsing a sequence of tokens into the structured
// form of an expression.  The grammar is as follows:
//
//	line     := '-'? quotient (('+' | '-') quotient)*
//	quotient := operand ('/' operand)?
//	operand  := '(' sum ')' | sum
//	sum      := monomial (('+' | '-') monomial)*
//	monomial := factor ('*' factor)*
//	factor   := '-'? (number | identifier ('^' '-'? number)?)
//
// An unbracketed sum extends as far as possible, hence "a + b/c + d" denotes
// (a+b)/(c+d) as it does in the saved formula format.  It stops before an
// operator followed by a bracket, such that "(a)/(b) + (c)/(d)" denotes the sum
// of two rational functions.
type Parser struct {
	srcfile *source.File
	tokens  []source.Token
	index   int
}

func (p *Parser) parseLine() ([]algebra.QuotientData, *source.SyntaxError) {
	var (
		line []algebra.QuotientData
		sign = 1.0
	)
	// A leading minus may negate a bracketed quotient
	if p.lookahead().Kind == SUB && p.peek(1).Kind == LBRACE {
		sign = -1
		p.index++
	}
	//
	for {
		quotient, err := p.parseQuotient()
		if err != nil {
			return nil, err
		}
		//
		if sign < 0 {
			quotient.Numerator = negate(quotient.Numerator)
		}
		//
		line = append(line, quotient)
		//
		switch p.lookahead().Kind {
		case ADD:
			sign = 1
		case SUB:
			sign = -1
		case NEWLINE, END_OF:
			return line, nil
		default:
			return nil, p.syntaxError("unexpected token")
		}
		// Consume operator
		p.index++
	}
}

func (p *Parser) parseQuotient() (algebra.QuotientData, *source.SyntaxError) {
	var quotient algebra.QuotientData
	//
	num, err := p.parseOperand()
	if err != nil {
		return quotient, err
	}
	//
	quotient.Numerator = num
	//
	if p.match(DIV) {
		if quotient.Denominator, err = p.parseOperand(); err != nil {
			return quotient, err
		}
	}
	//
	return quotient, nil
}

func (p *Parser) parseOperand() ([]algebra.TermData, *source.SyntaxError) {
	if !p.match(LBRACE) {
		return p.parseSum()
	}
	//
	sum, err := p.parseSum()
	if err != nil {
		return nil, err
	} else if !p.match(RBRACE) {
		return nil, p.syntaxError("expected ')'")
	}
	//
	return sum, nil
}

func (p *Parser) parseSum() ([]algebra.TermData, *source.SyntaxError) {
	var sum []algebra.TermData
	//
	for sign := 1.0; ; {
		term, err := p.parseMonomial()
		if err != nil {
			return nil, err
		}
		//
		term.Coefficient *= sign
		sum = append(sum, term)
		// Check whether sum continues
		switch kind := p.lookahead().Kind; {
		case (kind == ADD || kind == SUB) && p.peek(1).Kind != LBRACE:
			sign = 1
			//
			if kind == SUB {
				sign = -1
			}
			//
			p.index++
		default:
			return sum, nil
		}
	}
}

func (p *Parser) parseMonomial() (algebra.TermData, *source.SyntaxError) {
	term := algebra.TermData{Coefficient: 1}
	//
	for {
		if err := p.parseFactor(&term); err != nil {
			return term, err
		} else if !p.match(MUL) {
			return term, nil
		}
	}
}

func (p *Parser) parseFactor(term *algebra.TermData) *source.SyntaxError {
	if p.match(SUB) {
		term.Coefficient = -term.Coefficient
	}
	//
	token := p.lookahead()
	//
	switch token.Kind {
	case NUMBER:
		val, err := strconv.ParseFloat(p.srcfile.Text(token.Span), 64)
		if err != nil {
			return p.syntaxError("invalid number")
		}
		//
		term.Coefficient *= val
		p.index++
	case IDENTIFIER:
		name := p.srcfile.Text(token.Span)
		p.index++
		//
		exp, err := p.parseExponent()
		if err != nil {
			return err
		}
		//
		if term.Powers == nil {
			term.Powers = make(map[string]int)
		}
		// Repeated variables accumulate, as in multiplication
		term.Powers[name] += exp
	default:
		return p.syntaxError("expected number or variable")
	}
	//
	return nil
}

func (p *Parser) parseExponent() (int, *source.SyntaxError) {
	if !p.match(POW) {
		return 1, nil
	}
	//
	sign := 1
	if p.match(SUB) {
		sign = -1
	}
	//
	token := p.lookahead()
	if token.Kind != NUMBER {
		return 0, p.syntaxError("expected exponent")
	}
	//
	exp, err := strconv.Atoi(p.srcfile.Text(token.Span))
	if err != nil {
		return 0, p.syntaxError("exponent must be an integer")
	}
	//
	p.index++
	//
	return sign * exp, nil
}

// Skip over any tokens of a given kind.
func (p *Parser) skip(kind uint) {
	for p.lookahead().Kind == kind {
		p.index++
	}
}

// Skip to the end of the current line, after an error has been reported.
func (p *Parser) recover() {
	for k := p.lookahead().Kind; k != NEWLINE && k != END_OF; k = p.lookahead().Kind {
		p.index++
	}
}

// Match a token of a given kind, consuming it if present.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Get the next token without consuming it.  The lexer guarantees the final
// token is END_OF, which is returned repeatedly once reached.
func (p *Parser) lookahead() source.Token {
	return p.peek(0)
}

func (p *Parser) peek(n int) source.Token {
	return p.tokens[min(p.index+n, len(p.tokens)-1)]
}

func (p *Parser) syntaxError(msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(p.lookahead().Span, msg)
}

func negate(terms []algebra.TermData) []algebra.TermData {
	for i := range terms {
		terms[i].Coefficient = -terms[i].Coefficient
	}
	//
	return terms
}
