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

/*
Package streamjson is an incremental, event-driven JSON parser.

It consumes a JSON document as a sequence of arbitrarily-sized byte chunks
and emits a linear stream of structural events (start of object, object
key, start of array, primitive values, end of object, end of array)
without ever holding the full document or its parse tree in memory.

Two stages

The implementation is a small pipeline of two cooperating stages: an
internal lexer that turns the growing input buffer into lexemes, and a
Parser that drives a pushdown automaton over those lexemes and reports
Events to a Handler. Both stages are re-entrant: Feed may be called with
input split at any byte boundary, including in the middle of a string, a
number, an escape sequence or a keyword, and the resulting event stream is
identical to that produced by feeding the same bytes in a single call.

Usage

	p, err := streamjson.New(myHandler)
	if err != nil {
		// handle configuration error
	}
	if err := p.Feed([]byte(`{"a":1`)); err != nil {
		// handle error
	}
	if err := p.Feed([]byte(`}`)); err != nil {
		// handle error
	}
	if err := p.Finish(); err != nil {
		// handle error (e.g. an unterminated value)
	}

Once Feed or Finish returns a non-nil error, the Parser is poisoned: every
subsequent call returns that same error.

Companion packages

Package codec decodes chunked character input to the canonical UTF-8 byte
form this package expects. Package feed provides synchronous and
asynchronous adapters that read from an io.Reader and drive a Parser.
Package path implements a path-prefix filter over the event stream.
Package value is a small convenience layer that builds Go values from
events. None of these are required to use the core Parser.
*/
package streamjson
