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

// Package path annotates a streamjson event stream with the container path
// at which each event occurred, and can filter the stream down to a single
// prefix.
package path

import "strings"

// Component is one segment of a Path: either a literal object key, or Any,
// a wildcard that matches any object key or array index.
type Component struct {
	Key string
	Any bool
}

func (c Component) String() string {
	if c.Any {
		return "*"
	}
	return c.Key
}

// Path is a sequence of Components from the document root.
type Path []Component

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, ".")
}

// HasPrefix reports whether p starts with prefix, treating an Any
// component in prefix as matching any corresponding component of p.
func (p Path) HasPrefix(prefix Path) bool {
	if len(p) < len(prefix) {
		return false
	}
	for i, c := range prefix {
		if c.Any {
			continue
		}
		if p[i].Any || p[i].Key != c.Key {
			return false
		}
	}
	return true
}
