/*
Package sanzang provides table-driven transformation of CJK text.

Description

Sanzang is a small, practical system for working with texts in the CJK
languages (Chinese, Japanese, Korean), especially texts of the Chinese
Buddhist canon. It does two things:

Reformatting ("reflow"): loosely line-wrapped source text, possibly
carrying CBETA-style margin annotations, is normalized into
one-clause-per-line form according to its punctuation, so that words and
terms are never broken apart between lines.

Table-based translation: an ordered table of term equivalents is applied
to a text, either as direct in-place substitution, or to produce an
aligned, line-numbered multi-column listing of the source text together
with a rough translation per target column.

Neither operation attempts natural-language tokenization or any Unicode
normalization; all matching is literal code-point comparison. The
transformations are sequential and deterministic, and rule order in a
translation table is significant: earlier rules claim their matches before
later rules get to see the text.

Typical Usage

Load a translation table and produce a translation listing:

  tab, err := sanzang.ReadTable(tableFile)
  if err != nil { ... }
  listing := sanzang.FormatListing(tab, text, 1)

For texts of arbitrary size, the buffered drivers in sub-package stream
read line by line and flush at safe boundaries, keeping memory bounded by
the batch size rather than by the input size.

Caveat

The reserved code-point Marker (U+E000, private use) is used internally to
claim text spans during translation. Input texts must not contain it;
behavior for texts that do is undefined.

MIT License

Copyright (c) 2014–21, the Sanzang Lib authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

Contents

The base package holds the pure transformations: the table loader, the
reflow formatter, string substitution, vocabulary filtering and the
translator. The buffered driver functions sit in sub-package stream. A thin
command-line wrapper lives under cmd/sanzang.
*/
package sanzang

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
