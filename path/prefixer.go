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

package path

import "github.com/db47h/streamjson"

// segment tracks, for one level of container nesting, either the pending
// object key (applied by the next ObjectKey event) or the "any index"
// marker used for array elements.
type segment struct {
	key     string
	isArray bool
}

// Prefixer decorates an event stream with the Path at which each event
// occurs and forwards (Path, Event) pairs to next. Start/End events for a
// container report the path of the container itself, matching the
// convention that a value and its own start/end share one path.
type Prefixer struct {
	stack []segment
	next  func(Path, streamjson.Event) error
}

// NewPrefixer returns a Prefixer forwarding annotated events to next.
func NewPrefixer(next func(Path, streamjson.Event) error) *Prefixer {
	return &Prefixer{next: next}
}

// HandleEvent implements streamjson.Handler.
func (pf *Prefixer) HandleEvent(e streamjson.Event) error {
	switch e.Kind {
	case streamjson.ObjectKey:
		if n := len(pf.stack); n > 0 {
			pf.stack[n-1].key = e.Str
		}
		return pf.next(pf.path(), e)

	case streamjson.StartArray:
		if err := pf.next(pf.path(), e); err != nil {
			return err
		}
		pf.stack = append(pf.stack, segment{isArray: true})
		return nil

	case streamjson.StartObject:
		if err := pf.next(pf.path(), e); err != nil {
			return err
		}
		pf.stack = append(pf.stack, segment{})
		return nil

	case streamjson.EndArray, streamjson.EndObject:
		pf.stack = pf.stack[:len(pf.stack)-1]
		return pf.next(pf.path(), e)

	default:
		return pf.next(pf.path(), e)
	}
}

func (pf *Prefixer) path() Path {
	p := make(Path, len(pf.stack))
	for i, s := range pf.stack {
		if s.isArray {
			p[i] = Component{Any: true}
		} else {
			p[i] = Component{Key: s.key}
		}
	}
	return p
}

// Select returns a Handler that forwards to downstream only the events
// whose path has the given prefix, the streamjson equivalent of extracting
// a single sub-tree from the document.
func Select(prefix Path, downstream streamjson.Handler) streamjson.Handler {
	return NewPrefixer(func(p Path, e streamjson.Event) error {
		if !p.HasPrefix(prefix) {
			return nil
		}
		return downstream.HandleEvent(e)
	})
}
