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

import (
	"fmt"
	"slices"
)

// Line identifies a single line of a source file, numbered from 1.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line, excluding its newline.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// String returns the text of this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number returns the line number, where the first line is 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the offset of this line in its source file.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a given source text, such as a formula entered on the
// command line or read from a file.
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
	// Offset at which each line begins.
	starts []int
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	var (
		contents = []rune(string(bytes))
		starts   = []int{0}
	)
	//
	for i, r := range contents {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	//
	return &File{filename, contents, starts}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the text covered by a given span of this file.
func (s *File) Text(span Span) string {
	return string(s.contents[span.start:span.end])
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine returns the line containing the start of a given span.
// A span starting at the newline which ends a line belongs to that line, and a
// span starting beyond the end of the file belongs to the last line.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	index := min(span.start, len(s.contents))
	// Find the last line starting at or before index
	n, found := slices.BinarySearch(s.starts, index)
	if !found {
		n--
	}
	//
	start := s.starts[n]
	end := len(s.contents)
	//
	if n+1 < len(s.starts) {
		end = s.starts[n+1] - 1
	}
	//
	return Line{s.contents, Span{start, end}, n + 1}
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface, reporting the line and column (both
// counting from 1) at which this error starts.
func (p *SyntaxError) Error() string {
	line := p.FirstEnclosingLine()
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.filename, line.Number(), 1+p.span.start-line.Start(), p.msg)
}

// FirstEnclosingLine returns the line containing the start of this error.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
