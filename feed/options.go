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

// defaultBufSize is the chunk size used when no WithBufSize option is
// given.
const defaultBufSize = 64 * 1024

type options struct {
	bufSize   int
	positions *Positions
}

// Option configures a Sync or Async read loop.
type Option func(*options)

// WithBufSize sets the size of the chunks read from the source io.Reader.
func WithBufSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufSize = n
		}
	}
}

// WithPositions has the read loop record newline offsets into ps as it
// reads, so that ps.Position can later translate an Event's byte Offset
// into a line and column for diagnostics.
func WithPositions(ps *Positions) Option {
	return func(o *options) { o.positions = ps }
}

func newOptions(opts []Option) options {
	o := options{bufSize: defaultBufSize}
	for _, f := range opts {
		f(&o)
	}
	return o
}
