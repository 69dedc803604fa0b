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

// options holds the configuration assembled from a New call's Option
// arguments.
//
type options struct {
	multipleValues bool
	useFloat       bool
	allowComments  bool
}

// Option configures a Parser at construction time.
//
type Option func(*options)

// WithMultipleValues allows a Parser to accept more than one top-level JSON
// value fed as a single concatenated stream (e.g. NDJSON-like framing),
// instead of raising a JSONError on trailing data after the first complete
// value.
//
func WithMultipleValues() Option {
	return func(o *options) { o.multipleValues = true }
}

// WithFloat selects float64 for non-integer numbers instead of the default
// arbitrary-precision Decimal. Integers are always reported as *big.Int
// regardless of this option.
//
func WithFloat() Option {
	return func(o *options) { o.useFloat = true }
}

// WithAllowComments is reserved: comment skipping is not implemented by
// this lexer. Passing it always causes New to return a *ConfigError; it
// exists so that callers porting configuration from a comment-tolerant
// JSON variant get an explicit, actionable error instead of silently
// parsing comments as syntax errors.
//
func WithAllowComments() Option {
	return func(o *options) { o.allowComments = true }
}
