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

import "math/big"

// Kind identifies the structural meaning of an Event.
//
type Kind uint8

// Event kinds.
//
const (
	StartObject Kind = iota
	EndObject
	ObjectKey
	StartArray
	EndArray
	Null
	Bool
	String
	Number
)

func (k Kind) String() string {
	switch k {
	case StartObject:
		return "StartObject"
	case EndObject:
		return "EndObject"
	case ObjectKey:
		return "ObjectKey"
	case StartArray:
		return "StartArray"
	case EndArray:
		return "EndArray"
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Number:
		return "Number"
	default:
		return "Kind(?)"
	}
}

// Event is a single structural event in the parse stream. Offset is the
// absolute byte offset of the lexeme that produced the event. Only the
// payload field(s) relevant to Kind are populated:
//
//	StartObject, EndObject, StartArray, EndArray: no payload.
//	ObjectKey, String:                            Str.
//	Bool:                                         Boolean.
//	Number:                                       exactly one of Int, Dec,
//	                                               Float, depending on the
//	                                               parser's number mode and
//	                                               the lexeme's shape.
//	Null:                                          no payload.
//
type Event struct {
	Kind    Kind
	Offset  int64
	Str     string
	Boolean bool
	Int     *big.Int
	Dec     *Decimal
	Float   float64
}

// Handler receives the event stream produced by a Parser. A non-nil error
// returned from HandleEvent aborts parsing: it is returned from the Feed or
// Finish call that produced the event, and poisons the Parser exactly like
// a syntax error would.
//
type Handler interface {
	HandleEvent(Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
//
type HandlerFunc func(Event) error

// HandleEvent calls f(e).
//
func (f HandlerFunc) HandleEvent(e Event) error {
	return f(e)
}
