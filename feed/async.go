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
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/db47h/streamjson"
)

// Stream is an asynchronous front end for a streamjson.Parser: a goroutine
// reads from an io.Reader and feeds the parser while the caller drains
// Events at its own pace.
type Stream struct {
	events chan streamjson.Event
	g      *errgroup.Group
}

// Async starts a goroutine that reads r in chunks and feeds a Parser
// constructed with popts, delivering every Event it produces over the
// returned Stream's channel. The pump goroutine is supervised by an
// errgroup so that a parse or read error is reliably surfaced to Wait
// instead of being dropped when the consumer stops draining Events.
func Async(ctx context.Context, r io.Reader, popts []streamjson.Option, fopts ...Option) (*Stream, error) {
	o := newOptions(fopts)
	events := make(chan streamjson.Event, 64)

	g, gctx := errgroup.WithContext(ctx)

	handler := streamjson.HandlerFunc(func(e streamjson.Event) error {
		select {
		case events <- e:
			return nil
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	p, err := streamjson.New(handler, popts...)
	if err != nil {
		return nil, err
	}

	g.Go(func() error {
		defer close(events)
		buf := make([]byte, o.bufSize)
		var offset int64
		for {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, rerr := r.Read(buf)
			if n > 0 {
				chunk := buf[:n]
				if o.positions != nil {
					o.positions.Scan(offset, chunk)
				}
				if ferr := p.Feed(chunk); ferr != nil {
					return ferr
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
	})

	return &Stream{events: events, g: g}, nil
}

// Events returns the channel of parse events. It is closed once the source
// is exhausted or the pump goroutine fails; call Wait afterwards to learn
// whether it closed because of an error.
func (s *Stream) Events() <-chan streamjson.Event {
	return s.events
}

// Wait blocks until the pump goroutine has finished and returns its error,
// if any. It must be called after the Events channel is drained (or
// closed) to observe a parse or read error.
func (s *Stream) Wait() error {
	return s.g.Wait()
}
