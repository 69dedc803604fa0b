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

package streamjson_test

import (
	"fmt"

	"github.com/db47h/streamjson"
)

func Example() {
	p, err := streamjson.New(streamjson.HandlerFunc(func(e streamjson.Event) error {
		fmt.Println(e.Kind)
		return nil
	}))
	if err != nil {
		panic(err)
	}
	// Feed the document in two arbitrarily-sized chunks; the event stream
	// is identical to feeding it in one call.
	if err := p.Feed([]byte(`{"name": "ada", "tag`)); err != nil {
		panic(err)
	}
	if err := p.Feed([]byte(`s": ["math", "computing"]}`)); err != nil {
		panic(err)
	}
	if err := p.Finish(); err != nil {
		panic(err)
	}
	// Output:
	// StartObject
	// ObjectKey
	// String
	// ObjectKey
	// StartArray
	// String
	// String
	// EndArray
	// EndObject
}
