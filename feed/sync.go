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

// Package feed provides synchronous and asynchronous io.Reader-driven front
// ends for a streamjson.Parser. Neither is required to use the core
// parser: both are thin read-and-Feed loops built for the common case of
// parsing a whole io.Reader to completion.
package feed

import (
	"io"

	"github.com/db47h/streamjson"
)

// Sync reads r in chunks (64KiB by default, see WithBufSize) and feeds
// them to p until r is exhausted, then calls p.Finish. It returns the
// first error from either the reader or the parser.
func Sync(r io.Reader, p *streamjson.Parser, opts ...Option) error {
	o := newOptions(opts)
	buf := make([]byte, o.bufSize)
	var offset int64
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if o.positions != nil {
				o.positions.Scan(offset, chunk)
			}
			if err := p.Feed(chunk); err != nil {
				return err
			}
			offset += int64(n)
		}
		switch {
		case rerr == io.EOF:
			return p.Finish()
		case rerr != nil:
			return rerr
		}
	}
}
