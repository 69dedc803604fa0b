// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package streamjson

import "fmt"

// UnexpectedSymbolError reports a syntactically wrong lexeme at a given
// parser state. Offset is the absolute byte offset of the lexeme.
//
type UnexpectedSymbolError struct {
	Symbol string
	Offset int64
}

func (e *UnexpectedSymbolError) Error() string {
	return fmt.Sprintf("unexpected symbol %q at offset %d", e.Symbol, e.Offset)
}

// IncompleteJSONError reports that input ended inside a string, inside a
// structural context (an open object or array, or a dangling key), or
// before any value was seen.
//
type IncompleteJSONError struct {
	Reason string
	Offset int64
}

func (e *IncompleteJSONError) Error() string {
	return e.Reason
}

// JSONError reports a semantic error: number overflow, or additional data
// found after a complete value in single-value mode.
//
type JSONError struct {
	Reason string
	Offset int64
}

func (e *JSONError) Error() string {
	return e.Reason
}

// ConfigError reports an invalid combination of Options, raised by New
// before any bytes are consumed.
//
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}
