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
	"testing"
)

func TestDecodeString(t *testing.T) {
	testData := []struct {
		raw  string
		want string
	}{
		{`hello`, "hello"},
		{`a\nb`, "a\nb"},
		{`a\tb\rc`, "a\tb\rc"},
		{`quote: \"`, `quote: "`},
		{`back\\slash`, `back\slash`},
		{`fwd\/slash`, "fwd/slash"},
		{`é`, "é"},
		{`😀`, "😀"},
		{`\u00e9`, "\u00e9"},
		{`caf\u00e9`, "caf\u00e9"},
		{`\ud83d\ude00`, "\U0001F600"},
		{`grin: \ud83d\ude00!`, "grin: \U0001F600!"},
	}
	for i, td := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := decodeString(td.raw, 0)
			if err != nil {
				t.Fatalf("decodeString(%q): %v", td.raw, err)
			}
			if got != td.want {
				t.Errorf("decodeString(%q) = %q, want %q", td.raw, got, td.want)
			}
		})
	}
}

func TestDecodeStringRejectsBadEscapes(t *testing.T) {
	testData := []string{`bad\`, `bad\x41`, `\u12`}
	for i, raw := range testData {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := decodeString(raw, 3)
			if err == nil {
				t.Fatalf("decodeString(%q): expected an error", raw)
			}
			if use, ok := err.(*UnexpectedSymbolError); !ok || use.Offset != 3 {
				t.Fatalf("got %#v, want *UnexpectedSymbolError at offset 3", err)
			}
		})
	}
}

func TestDecodeStringLoneSurrogateIsReplacementChar(t *testing.T) {
	got, err := decodeString(`\ud83dx`, 0)
	if err != nil {
		t.Fatalf("decodeString: %v", err)
	}
	want := "�x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
