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

import "fmt"

// Positions incrementally records line boundaries seen in a byte stream as
// it is read, and translates an absolute byte offset (as reported on a
// streamjson.Event) into a 1-based line and column.
//
// Unlike a seekable source, a Sync or Async read loop only ever sees each
// byte once; Positions is built for that: feed it every chunk as it is
// read, in order, and it can answer Position queries for any offset at or
// before the last byte scanned.
type Positions struct {
	lines []int64 // absolute offset of the first byte of each line; lines[0] == 0
}

// NewPositions returns an empty Positions tracker, ready to Scan from
// offset 0.
func NewPositions() *Positions {
	return &Positions{lines: []int64{0}}
}

// Scan records the newlines found in data, which starts at absolute offset
// chunkOffset. Chunks must be scanned in order and without gaps.
func (p *Positions) Scan(chunkOffset int64, data []byte) {
	for i, b := range data {
		if b == '\n' {
			p.lines = append(p.lines, chunkOffset+int64(i)+1)
		}
	}
}

// Position returns the 1-based line and column (a byte index within the
// line) for offset.
func (p *Positions) Position(offset int64) (line, column int) {
	i, j := 0, len(p.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(p.lines[h] > offset) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i, int(offset - p.lines[i-1] + 1)
}

// String renders a line:column pair for offset.
func (p *Positions) String(offset int64) string {
	line, col := p.Position(offset)
	return fmt.Sprintf("%d:%d", line, col)
}
