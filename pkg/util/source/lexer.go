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
package source

// Token associates a kind with a given range of items in the sequence being
// scanned.
type Token struct {
	Kind uint
	Span Span
}

// Lexer splits a sequence of items into tokens using a given scanner.  Lexing
// stops after the end of the input has been scanned, or at the first item
// which cannot be scanned.
type Lexer[T any] struct {
	items   []T
	index   int
	scanner Scanner[T]
	// Token which has been scanned, but not yet returned.
	next    Token
	pending bool
}

// NewLexer constructs a new lexer with a given scanner.
func NewLexer[T any](input []T, scanner Scanner[T]) *Lexer[T] {
	return &Lexer[T]{items: input, scanner: scanner}
}

// Index returns the position of the lexer within the original sequence.
func (p *Lexer[T]) Index() int {
	return min(p.index, len(p.items))
}

// Remaining returns the number of items not yet consumed.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether another token can be scanned.
func (p *Lexer[T]) HasNext() bool {
	if !p.pending && p.index <= len(p.items) {
		if tok, ok := p.scanner.Scan(p.items[p.index:]); ok {
			tok.Span = NewSpan(tok.Span.Start()+p.index, tok.Span.End()+p.index)
			p.next, p.pending = tok, true
		}
	}
	//
	return p.pending
}

// Next returns the next token and advances the lexer.  This panics if no token
// can be scanned.
func (p *Lexer[T]) Next() Token {
	if !p.HasNext() {
		panic("no token to scan")
	}
	//
	p.pending = false
	// Scanning the end of input is final
	if p.index == len(p.items) {
		p.index++
	} else {
		p.index = p.next.Span.End()
	}
	//
	return p.next
}

// Collect all remaining tokens.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}
