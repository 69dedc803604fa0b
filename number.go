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
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// jsonNumber is the strict JSON number grammar. The lexer itself is liberal
// (it greedily matches any run of digits, lowercase letters, 'E', '.', '+'
// and '-'),
// so a run like "1.2.3" lexes as a single lexeme and only fails here, at
// classification time, anchored at the lexeme's own offset.
//
var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// Decimal is an arbitrary-precision base-10 number: value = Unscaled *
// 10^(-Scale). It never loses precision relative to the JSON source text,
// unlike float64.
//
type Decimal struct {
	Unscaled *big.Int
	Scale    int64
}

// String renders d in plain decimal notation.
//
func (d *Decimal) String() string {
	if d.Scale <= 0 {
		u := new(big.Int).Set(d.Unscaled)
		if d.Scale < 0 {
			u.Mul(u, new(big.Int).Exp(big.NewInt(10), big.NewInt(-d.Scale), nil))
		}
		return u.String()
	}
	s := d.Unscaled.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for int64(len(s)) <= d.Scale {
		s = "0" + s
	}
	cut := int64(len(s)) - d.Scale
	out := s[:cut] + "." + s[cut:]
	if neg {
		out = "-" + out
	}
	return out
}

// classifyNumber validates text against the JSON number grammar and builds
// the Number event payload for it, honoring useFloat for the non-integer
// case. Plain integers are always *big.Int.
//
func classifyNumber(text string, offset int64, useFloat bool) (Event, error) {
	if !jsonNumber.MatchString(text) {
		return Event{}, &UnexpectedSymbolError{Symbol: text, Offset: offset}
	}

	isFloatShape := strings.ContainsAny(text, ".eE")
	if !isFloatShape {
		i, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return Event{}, &UnexpectedSymbolError{Symbol: text, Offset: offset}
		}
		return Event{Kind: Number, Offset: offset, Int: i}, nil
	}

	if useFloat {
		f, err := strconv.ParseFloat(text, 64)
		// ParseFloat reports a range error alongside ±Inf on overflow; that
		// case is decided by the infinity check below.
		if err != nil && !math.IsInf(f, 0) {
			return Event{}, &UnexpectedSymbolError{Symbol: text, Offset: offset}
		}
		// Only positive overflow is treated as an error: -1e400 overflows
		// to -Inf and is accepted as-is, matching the asymmetric overflow
		// check of the reference implementation this behavior is ported
		// from.
		if math.IsInf(f, 1) {
			return Event{}, &JSONError{Reason: fmt.Sprintf("float overflow: %s", text), Offset: offset}
		}
		return Event{Kind: Number, Offset: offset, Float: f}, nil
	}

	dec, err := parseDecimal(text)
	if err != nil {
		return Event{}, &UnexpectedSymbolError{Symbol: text, Offset: offset}
	}
	return Event{Kind: Number, Offset: offset, Dec: dec}, nil
}

// parseDecimal builds a Decimal from a string already validated by
// jsonNumber.
//
func parseDecimal(text string) (*Decimal, error) {
	mantissa := text
	var exp int64
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		mantissa = text[:i]
		e, err := strconv.ParseInt(text[i+1:], 10, 64)
		if err != nil {
			return nil, err
		}
		exp = e
	}

	scale := int64(0)
	digits := mantissa
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		digits = mantissa[:i] + mantissa[i+1:]
		scale = int64(len(mantissa) - i - 1)
	}

	u, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal mantissa %q", mantissa)
	}
	return &Decimal{Unscaled: u, Scale: scale - exp}, nil
}
