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

package feed

import (
	"strings"
	"testing"

	"github.com/db47h/streamjson"
)

type recorder struct {
	kinds []streamjson.Kind
}

func (r *recorder) HandleEvent(e streamjson.Event) error {
	r.kinds = append(r.kinds, e.Kind)
	return nil
}

func TestSync(t *testing.T) {
	doc := `{"a": 1, "b": [2, 3]}`
	var r recorder
	p, err := streamjson.New(&r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := Sync(strings.NewReader(doc), p, WithBufSize(3)); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	want := []streamjson.Kind{
		streamjson.StartObject,
		streamjson.ObjectKey, streamjson.Number,
		streamjson.ObjectKey, streamjson.StartArray,
		streamjson.Number, streamjson.Number,
		streamjson.EndArray,
		streamjson.EndObject,
	}
	if len(r.kinds) != len(want) {
		t.Fatalf("got %v, want %v", r.kinds, want)
	}
	for i := range want {
		if r.kinds[i] != want[i] {
			t.Errorf("event %d: got %v, want %v", i, r.kinds[i], want[i])
		}
	}
}

func TestSyncPropagatesParserError(t *testing.T) {
	var r recorder
	p, err := streamjson.New(&r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := Sync(strings.NewReader(`}`), p); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

func TestSyncWithPositions(t *testing.T) {
	doc := "{\n  \"a\": 1\n}"
	ps := NewPositions()
	var r recorder
	p, err := streamjson.New(&r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := Sync(strings.NewReader(doc), p, WithPositions(ps), WithBufSize(4)); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	line, col := ps.Position(int64(strings.Index(doc, "1")))
	if line != 2 {
		t.Errorf("line = %d, want 2", line)
	}
	if col < 1 {
		t.Errorf("column = %d, want >= 1", col)
	}
}
