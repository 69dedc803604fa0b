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

// frameKind is the role a stack frame plays in the pushdown automaton.
//
type frameKind uint8

const (
	stateValue      frameKind = iota // expecting a value (scalar, array or object)
	stateArrayNext                   // inside an array, between elements
	stateObjectKey                   // inside an object, expecting a key or ':'
	stateObjectNext                  // inside an object, between key:value pairs
)

// frame is one entry of the parser's stack. firstPending and awaitColon are
// only meaningful for the frame kinds that use them; their zero values are
// the "nothing special pending" state.
//
type frame struct {
	kind         frameKind
	firstPending bool // stateArrayNext/stateObjectKey: no element/key seen yet, a closer is also acceptable
	awaitColon   bool // stateObjectKey: a key was just matched, ':' must follow
}

// Parser drives the lexer and the value pushdown automaton over a stream of
// byte chunks, calling a Handler for every structural event.
//
// A Parser is not safe for concurrent use.
//
type Parser struct {
	lx       lexer
	handler  Handler
	opts     options
	stack    []frame
	fedBytes int64
	err      error
}

// New returns a Parser that reports events to handler as it consumes input
// fed via Feed and Finish.
//
func New(handler Handler, opts ...Option) (*Parser, error) {
	var o options
	for _, f := range opts {
		f(&o)
	}
	if o.allowComments {
		return nil, &ConfigError{Reason: "allow-comments is not supported by this parser"}
	}
	return &Parser{
		handler: handler,
		opts:    o,
		stack:   []frame{{kind: stateValue}},
	}, nil
}

// Feed consumes data, driving the parser as far as the buffered input
// allows, and returns once every complete lexeme it contains has produced
// its events. Feed may be called with data split at any byte boundary.
//
// Once Feed or Finish has returned a non-nil error, the Parser is poisoned:
// every subsequent call to either method returns that same error.
//
func (p *Parser) Feed(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.fedBytes += int64(len(data))
	p.lx.feed(data)
	if err := p.drain(); err != nil {
		p.err = err
		return err
	}
	p.lx.compact()
	return nil
}

// Finish signals that no more input will be fed and flushes any event that
// was only waiting on end-of-input to be reported.
//
// As a special case, calling Finish on a Parser that has never received a
// single byte via Feed is not an error: it is treated as "nothing to
// parse" rather than "incomplete JSON".
//
func (p *Parser) Finish() error {
	if p.err != nil {
		return p.err
	}
	if p.fedBytes == 0 {
		return nil
	}
	p.lx.finish()
	if err := p.drain(); err != nil {
		p.err = err
		return err
	}
	return nil
}

// drain feeds lexemes to the pushdown automaton until the lexer runs out
// of complete lexemes (or hits end of input).
//
func (p *Parser) drain() error {
	for {
		lxm, ok, err := p.lx.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := p.step(lxm); err != nil {
			return err
		}
		if lxm.kind == lexEOF {
			return nil
		}
	}
}

// step applies one lexeme to the current top of stack, looping without
// consuming a new lexeme whenever the stack changed in a way that requires
// re-examining the same lexeme against the new top (e.g. the first lexeme
// after '[' once it turns out not to be ']', or starting a fresh value in
// multi-value mode).
//
func (p *Parser) step(lxm lexeme) error {
	for {
		if len(p.stack) == 0 {
			if lxm.kind == lexEOF {
				return nil
			}
			if !p.opts.multipleValues {
				return &JSONError{Reason: "Additional data found", Offset: lxm.offset}
			}
			p.stack = append(p.stack, frame{kind: stateValue})
			continue
		}
		if lxm.kind == lexEOF {
			return &IncompleteJSONError{Reason: "Incomplete JSON content", Offset: lxm.offset}
		}

		i := len(p.stack) - 1
		var redo bool
		var err error
		switch p.stack[i].kind {
		case stateValue:
			redo, err = p.stepValue(lxm)
		case stateArrayNext:
			redo, err = p.stepArrayNext(i, lxm)
		case stateObjectKey:
			redo, err = p.stepObjectKey(i, lxm)
		case stateObjectNext:
			redo, err = p.stepObjectNext(i, lxm)
		}
		if err != nil {
			return err
		}
		if redo {
			continue
		}
		return nil
	}
}

func (p *Parser) emit(e Event) error {
	return p.handler.HandleEvent(e)
}

// completeValue pops the stateValue frame for the value that was just
// finished (a scalar, or a container whose matching close was just
// processed) and fixes up the new top of stack, if any: an array waiting
// on its first element now has one.
//
func (p *Parser) completeValue() {
	p.stack = p.stack[:len(p.stack)-1]
	if n := len(p.stack); n > 0 && p.stack[n-1].kind == stateArrayNext {
		p.stack[n-1].firstPending = false
	}
}

func (p *Parser) stepValue(lxm lexeme) (bool, error) {
	switch lxm.kind {
	case lexString:
		s, err := decodeString(lxm.text, lxm.offset)
		if err != nil {
			return false, err
		}
		if err := p.emit(Event{Kind: String, Offset: lxm.offset, Str: s}); err != nil {
			return false, err
		}
		p.completeValue()
		return false, nil

	case lexBare:
		switch lxm.text {
		case "true":
			if err := p.emit(Event{Kind: Bool, Offset: lxm.offset, Boolean: true}); err != nil {
				return false, err
			}
		case "false":
			if err := p.emit(Event{Kind: Bool, Offset: lxm.offset, Boolean: false}); err != nil {
				return false, err
			}
		case "null":
			if err := p.emit(Event{Kind: Null, Offset: lxm.offset}); err != nil {
				return false, err
			}
		default:
			ev, err := classifyNumber(lxm.text, lxm.offset, p.opts.useFloat)
			if err != nil {
				return false, err
			}
			if err := p.emit(ev); err != nil {
				return false, err
			}
		}
		p.completeValue()
		return false, nil

	case lexOp:
		switch lxm.text {
		case "[":
			if err := p.emit(Event{Kind: StartArray, Offset: lxm.offset}); err != nil {
				return false, err
			}
			p.stack = append(p.stack, frame{kind: stateArrayNext, firstPending: true})
			return false, nil
		case "{":
			if err := p.emit(Event{Kind: StartObject, Offset: lxm.offset}); err != nil {
				return false, err
			}
			p.stack = append(p.stack, frame{kind: stateObjectKey, firstPending: true})
			return false, nil
		}
	}
	return false, &UnexpectedSymbolError{Symbol: lxm.text, Offset: lxm.offset}
}

func (p *Parser) stepArrayNext(i int, lxm lexeme) (bool, error) {
	f := p.stack[i]
	if f.firstPending {
		if lxm.kind == lexOp && lxm.text == "]" {
			if err := p.emit(Event{Kind: EndArray, Offset: lxm.offset}); err != nil {
				return false, err
			}
			p.stack = p.stack[:i]
			p.completeValue()
			return false, nil
		}
		f.firstPending = false
		p.stack[i] = f
		p.stack = append(p.stack, frame{kind: stateValue})
		return true, nil
	}

	if lxm.kind != lexOp {
		return false, &UnexpectedSymbolError{Symbol: lxm.text, Offset: lxm.offset}
	}
	switch lxm.text {
	case "]":
		if err := p.emit(Event{Kind: EndArray, Offset: lxm.offset}); err != nil {
			return false, err
		}
		p.stack = p.stack[:i]
		p.completeValue()
		return false, nil
	case ",":
		p.stack = append(p.stack, frame{kind: stateValue})
		return false, nil
	}
	return false, &UnexpectedSymbolError{Symbol: lxm.text, Offset: lxm.offset}
}

func (p *Parser) stepObjectKey(i int, lxm lexeme) (bool, error) {
	f := p.stack[i]

	if f.awaitColon {
		if lxm.kind != lexOp || lxm.text != ":" {
			return false, &UnexpectedSymbolError{Symbol: lxm.text, Offset: lxm.offset}
		}
		p.stack[i] = frame{kind: stateObjectNext}
		p.stack = append(p.stack, frame{kind: stateValue})
		return false, nil
	}

	if f.firstPending && lxm.kind == lexOp && lxm.text == "}" {
		if err := p.emit(Event{Kind: EndObject, Offset: lxm.offset}); err != nil {
			return false, err
		}
		p.stack = p.stack[:i]
		p.completeValue()
		return false, nil
	}

	if lxm.kind != lexString {
		return false, &UnexpectedSymbolError{Symbol: lxm.text, Offset: lxm.offset}
	}
	key, err := decodeString(lxm.text, lxm.offset)
	if err != nil {
		return false, err
	}
	if err := p.emit(Event{Kind: ObjectKey, Offset: lxm.offset, Str: key}); err != nil {
		return false, err
	}
	f.firstPending = false
	f.awaitColon = true
	p.stack[i] = f
	return false, nil
}

func (p *Parser) stepObjectNext(i int, lxm lexeme) (bool, error) {
	if lxm.kind != lexOp {
		return false, &UnexpectedSymbolError{Symbol: lxm.text, Offset: lxm.offset}
	}
	switch lxm.text {
	case "}":
		if err := p.emit(Event{Kind: EndObject, Offset: lxm.offset}); err != nil {
			return false, err
		}
		p.stack = p.stack[:i]
		p.completeValue()
		return false, nil
	case ",":
		p.stack[i] = frame{kind: stateObjectKey}
		return false, nil
	}
	return false, &UnexpectedSymbolError{Symbol: lxm.text, Offset: lxm.offset}
}
