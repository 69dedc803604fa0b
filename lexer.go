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

// lexKind classifies a lexeme handed to the value parser.
//
type lexKind uint8

const (
	lexEOF lexKind = iota
	lexOp          // a single structural byte: { } [ ] , : or anything unrecognized
	lexString      // a quoted run, Text holds the content between the quotes, undecoded
	lexBare        // a maximal run of number/keyword characters
)

type lexeme struct {
	kind   lexKind
	offset int64
	text   string
}

// lexer turns a growing, push-fed byte buffer into lexemes. It never blocks:
// when the buffer does not contain a complete lexeme, next returns
// (lexeme{}, false, nil) and retains enough state (mode, the start offset of
// the in-progress lexeme, escape parity) to resume exactly where it left off
// on the next call, regardless of where the feed boundary fell.
//
// This replaces the teacher's pull-based State.Next/fill pair (which reads
// runes from an io.Reader, blocking on short reads) with a push-based
// equivalent: bytes arrive via feed, and a short buffer is not an error, it
// is simply "not enough yet".
//
type lexer struct {
	buf      []byte
	discd    int64 // D: absolute offset of buf[0]
	pos      int   // p: scan position within buf
	tokStart int   // start of the in-progress lexeme within buf

	mode lexMode

	escaped  bool // modeString: previous byte was an unescaped backslash
	finished bool // Finish has been called
	eofSent  bool // the EOF lexeme has already been returned
}

type lexMode uint8

const (
	lexModeIdle lexMode = iota
	lexModeString
	lexModeBare
)

// feed appends data to the buffer. The lexer never copies data it has
// already fully consumed and discarded.
//
func (lx *lexer) feed(data []byte) {
	lx.buf = append(lx.buf, data...)
}

// finish marks that no more bytes will ever be fed.
//
func (lx *lexer) finish() {
	lx.finished = true
}

// compact drops bytes before the earliest position still needed (the start
// of an in-progress lexeme, or the scan position if idle), keeping the
// buffer from growing without bound across a long Feed sequence.
//
func (lx *lexer) compact() {
	keepFrom := lx.pos
	if lx.mode != lexModeIdle {
		keepFrom = lx.tokStart
	}
	if keepFrom == 0 {
		return
	}
	n := copy(lx.buf, lx.buf[keepFrom:])
	lx.buf = lx.buf[:n]
	lx.discd += int64(keepFrom)
	lx.pos -= keepFrom
	lx.tokStart -= keepFrom
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// isBareByte reports whether b can occur inside a maximal bare-word run
// (an unquoted run of number or keyword characters). This mirrors the
// reference lexer's greedy character class: lowercase letters (which
// covers true/false/null as well as any invalid bareword), digits, an
// uppercase 'E' for exponents, and the punctuation a JSON number can use.
// Validity of the run as a number or keyword is decided later, by the
// value parser, against the strict grammar: lexing is liberal here so
// that malformed runs such as "1.2.3" still lex as a single lexeme and
// fail with a stable offset instead of being silently split.
//
func isBareByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == 'E' || b == '.' || b == '+' || b == '-':
		return true
	}
	return false
}

// next attempts to produce the next lexeme. ok is false when the buffer
// does not yet contain a complete lexeme (the lexer's internal state has
// been updated to remember how far it got), and on every call after the
// single EOF lexeme has been returned; err is non-nil only for a
// malformed input that can never be completed, such as an unterminated
// string at Finish.
//
func (lx *lexer) next() (lexeme, bool, error) {
	for {
		switch lx.mode {
		case lexModeIdle:
			for lx.pos < len(lx.buf) && isSpace(lx.buf[lx.pos]) {
				lx.pos++
			}
			if lx.pos >= len(lx.buf) {
				if lx.finished && !lx.eofSent {
					lx.eofSent = true
					return lexeme{kind: lexEOF, offset: lx.discd + int64(lx.pos)}, true, nil
				}
				return lexeme{}, false, nil
			}
			b := lx.buf[lx.pos]
			switch {
			case b == '"':
				lx.tokStart = lx.pos
				lx.pos++
				lx.mode = lexModeString
				lx.escaped = false
				continue
			case isBareByte(b):
				lx.tokStart = lx.pos
				lx.pos++
				lx.mode = lexModeBare
				continue
			default:
				off := lx.discd + int64(lx.pos)
				lx.pos++
				return lexeme{kind: lexOp, offset: off, text: string(b)}, true, nil
			}

		case lexModeString:
			for lx.pos < len(lx.buf) {
				c := lx.buf[lx.pos]
				switch {
				case lx.escaped:
					lx.escaped = false
					lx.pos++
				case c == '\\':
					lx.escaped = true
					lx.pos++
				case c == '"':
					text := string(lx.buf[lx.tokStart+1 : lx.pos])
					off := lx.discd + int64(lx.tokStart)
					lx.pos++
					lx.mode = lexModeIdle
					return lexeme{kind: lexString, offset: off, text: text}, true, nil
				default:
					lx.pos++
				}
			}
			if lx.finished {
				return lexeme{}, false, &IncompleteJSONError{
					Reason: "Incomplete string lexeme",
					Offset: lx.discd + int64(lx.tokStart),
				}
			}
			return lexeme{}, false, nil

		case lexModeBare:
			for lx.pos < len(lx.buf) && isBareByte(lx.buf[lx.pos]) {
				lx.pos++
			}
			if lx.pos >= len(lx.buf) && !lx.finished {
				return lexeme{}, false, nil
			}
			text := string(lx.buf[lx.tokStart:lx.pos])
			off := lx.discd + int64(lx.tokStart)
			lx.mode = lexModeIdle
			return lexeme{kind: lexBare, offset: off, text: text}, true, nil
		}
	}
}
