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

// Package value is a small convenience layer that builds plain Go values
// (map[string]any, []any and scalars) from a streamjson event stream. It
// is a demonstration consumer, not part of the core parser: most real
// pipelines will want path.Select or their own Handler instead of
// materializing a whole sub-document.
package value

import "github.com/db47h/streamjson"

// container is one level of nesting under construction.
type container struct {
	isArray bool
	elems   []any
	obj     map[string]any
	key     string
}

// Builder implements streamjson.Handler, accumulating a single top-level
// value (possibly nested) from the events it receives.
type Builder struct {
	stack  []container
	result any
	set    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Value returns the value built so far. It is only meaningful once the
// top-level value's closing event has been received.
func (b *Builder) Value() any {
	return b.result
}

// HandleEvent implements streamjson.Handler.
func (b *Builder) HandleEvent(e streamjson.Event) error {
	switch e.Kind {
	case streamjson.StartArray:
		b.stack = append(b.stack, container{isArray: true})
		return nil
	case streamjson.StartObject:
		b.stack = append(b.stack, container{obj: map[string]any{}})
		return nil
	case streamjson.EndArray, streamjson.EndObject:
		b.pop()
		return nil
	case streamjson.ObjectKey:
		b.stack[len(b.stack)-1].key = e.Str
		return nil
	case streamjson.Null:
		b.addValue(nil)
	case streamjson.Bool:
		b.addValue(e.Boolean)
	case streamjson.String:
		b.addValue(e.Str)
	case streamjson.Number:
		switch {
		case e.Int != nil:
			b.addValue(e.Int)
		case e.Dec != nil:
			b.addValue(e.Dec)
		default:
			b.addValue(e.Float)
		}
	}
	return nil
}

func (b *Builder) addValue(v any) {
	if len(b.stack) == 0 {
		b.result = v
		b.set = true
		return
	}
	top := &b.stack[len(b.stack)-1]
	if top.isArray {
		top.elems = append(top.elems, v)
	} else {
		top.obj[top.key] = v
	}
}

func (b *Builder) pop() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if top.isArray {
		b.addValue(top.elems)
	} else {
		b.addValue(top.obj)
	}
}
