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

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// decodeString turns the raw content of a quoted lexeme (quotes already
// stripped, escapes still present) into its decoded form. offset is the
// absolute byte offset of the opening quote, used to anchor any error at
// the lexeme rather than at the interior byte that triggered it.
//
func decodeString(raw string, offset int64) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}

	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", &UnexpectedSymbolError{Symbol: `"` + raw + `"`, Offset: offset}
		}
		esc := raw[i+1]
		switch esc {
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '/':
			b.WriteByte('/')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r, n, err := decodeEscapedRune(raw, i, offset)
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			return "", &UnexpectedSymbolError{Symbol: `"` + raw + `"`, Offset: offset}
		}
	}
	return b.String(), nil
}

// decodeEscapedRune decodes a \uXXXX escape (and, if it encodes a high
// surrogate, the \uXXXX low surrogate immediately following it) starting at
// raw[i] == '\\'. It returns the decoded rune and the number of source
// bytes it consumed.
//
func decodeEscapedRune(raw string, i int, offset int64) (rune, int, error) {
	r1, err := hex4(raw, i+2, offset)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(rune(r1)) {
		return rune(r1), 6, nil
	}
	if i+8 > len(raw) || raw[i+6] != '\\' || raw[i+7] != 'u' {
		// Lone surrogate: emit the replacement character rather than
		// failing outright, matching how the decoder treats any other
		// unpaired surrogate.
		return utf8.RuneError, 6, nil
	}
	r2, err := hex4(raw, i+8, offset)
	if err != nil {
		return 0, 0, err
	}
	dec := utf16.DecodeRune(rune(r1), rune(r2))
	if dec == utf8.RuneError {
		return utf8.RuneError, 12, nil
	}
	return dec, 12, nil
}

func hex4(raw string, pos int, offset int64) (uint32, error) {
	if pos+4 > len(raw) {
		return 0, &UnexpectedSymbolError{Symbol: raw, Offset: offset}
	}
	v, err := strconv.ParseUint(raw[pos:pos+4], 16, 32)
	if err != nil {
		return 0, &UnexpectedSymbolError{Symbol: raw, Offset: offset}
	}
	return uint32(v), nil
}
