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
	"math/big"
	"strconv"
	"testing"
)

func TestClassifyNumberIntegers(t *testing.T) {
	testData := []struct {
		text string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"1000000000000000000", 1000000000000000000},
	}
	for i, td := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			ev, err := classifyNumber(td.text, 0, false)
			if err != nil {
				t.Fatalf("classifyNumber(%q): %v", td.text, err)
			}
			if ev.Int == nil || ev.Int.Cmp(big.NewInt(td.want)) != 0 {
				t.Fatalf("classifyNumber(%q) = %v, want %d", td.text, ev.Int, td.want)
			}
		})
	}
}

func TestClassifyNumberDecimal(t *testing.T) {
	testData := []struct {
		text string
		want string
	}{
		{"1.5", "1.5"},
		{"-1.5", "-1.5"},
		{"1.50", "1.50"},
		{"1e2", "100"},
		{"1.5e2", "150"},
		{"1.5e-2", "0.015"},
		{"123e-5", "0.00123"},
	}
	for i, td := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			ev, err := classifyNumber(td.text, 0, false)
			if err != nil {
				t.Fatalf("classifyNumber(%q): %v", td.text, err)
			}
			if ev.Dec == nil {
				t.Fatalf("classifyNumber(%q) produced no Decimal", td.text)
			}
			if got := ev.Dec.String(); got != td.want {
				t.Errorf("classifyNumber(%q).Dec.String() = %q, want %q", td.text, got, td.want)
			}
		})
	}
}

func TestClassifyNumberFloat(t *testing.T) {
	ev, err := classifyNumber("1.5e2", 0, true)
	if err != nil {
		t.Fatalf("classifyNumber: %v", err)
	}
	if ev.Float != 150 {
		t.Fatalf("got %v, want 150", ev.Float)
	}
}

func TestClassifyNumberRejectsMalformed(t *testing.T) {
	testData := []string{"1.2.3", "01", "+1", "1.", ".1", "1e", "--1", "1e+"}
	for i, text := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := classifyNumber(text, 7, false)
			if err == nil {
				t.Fatalf("classifyNumber(%q): expected an error", text)
			}
			use, ok := err.(*UnexpectedSymbolError)
			if !ok {
				t.Fatalf("got %T, want *UnexpectedSymbolError", err)
			}
			if use.Offset != 7 || use.Symbol != text {
				t.Fatalf("got %+v, want Offset=7 Symbol=%q", use, text)
			}
		})
	}
}
