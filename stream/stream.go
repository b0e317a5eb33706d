/*
Package stream provides buffered drivers for the sanzang transformations.

The pure transformations of the base package operate on in-memory text
blocks. For inputs of arbitrary size the drivers in this package read line
by line, accumulate a batch of lines, and flush the batch through the
relevant transformation to an output writer. Memory stays bounded by the
batch size rather than by the input size; batch size is the only pacing
knob.

Typical Usage

  tab, err := sanzang.ReadTable(tableFile)
  if err != nil { ... }
  err = stream.Translate(tab, os.Stdout, os.Stdin)

The reflow driver takes special care when cutting its buffer: it only
splits at the most recent point where a clause ender is directly followed
by a non-ender, the single kind of position at which a cut cannot change
what the reflow rules would produce for the unbuffered text.

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
*/
package stream

import (
	"bufio"
	"io"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	sanzang "github.com/yaoguai/sanzang-lib"
	"github.com/yaoguai/sanzang-lib/internal/scratch"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Default batch sizes, in input lines, of the buffered drivers.
const (
	ReflowBatchSize     = 1000
	SubstituteBatchSize = 1000
	TranslateBatchSize  = 100
)

// eachLine calls f for every line of src, terminating line break included.
// The final line is passed to f even if it does not end in a line break.
func eachLine(src io.Reader, f func(line string) error) error {
	in := bufio.NewReader(src)
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			if ferr := f(line); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Reflow reformats CJK text from src to dst with the default batch size.
func Reflow(dst io.Writer, src io.Reader) error {
	return ReflowBatch(dst, src, ReflowBatchSize)
}

// ReflowBatch reformats CJK text from src to dst, accumulating batch input
// lines between flushes.
//
// A full buffer is scanned backward for the most recent position where an
// ender is immediately followed by a non-ender. That is the only kind of
// position at which the buffer may be cut without disturbing the adjacency
// the reflow rules depend on. The prefix up to the cut is reflowed and
// written; the remainder stays buffered. If no such position exists the
// buffer keeps growing. Whatever remains at end-of-input is reflowed and
// flushed.
func ReflowBatch(dst io.Writer, src io.Reader, batch int) error {
	buf := scratch.Borrow()
	defer scratch.Release(buf)
	lineNo := 0
	err := eachLine(src, func(line string) error {
		lineNo++
		buf.WriteString(line)
		if lineNo%batch != 0 {
			return nil
		}
		pending := []rune(buf.String())
		for i := len(pending) - 1; i > 0; i-- {
			if sanzang.IsEnder(pending[i-1]) && !sanzang.IsEnder(pending[i]) {
				T().Debugf("reflow driver: cutting buffer at rune %d of %d", i, len(pending))
				if _, werr := io.WriteString(dst, sanzang.Reflow(string(pending[:i]))); werr != nil {
					return werr
				}
				buf.Reset()
				buf.WriteString(string(pending[i:]))
				break
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if buf.Len() > 0 {
		_, err = io.WriteString(dst, sanzang.Reflow(buf.String()))
	}
	return err
}

// Substitute applies a two-column table to the text from src and writes the
// result to dst, using the default batch size.
func Substitute(tab *sanzang.Table, dst io.Writer, src io.Reader) error {
	return SubstituteBatch(tab, dst, src, SubstituteBatchSize)
}

// SubstituteBatch applies a two-column table to the text from src and writes
// the result to dst, accumulating batch input lines between flushes.
// Substitution carries no state across lines, so the buffer may be cut
// anywhere.
func SubstituteBatch(tab *sanzang.Table, dst io.Writer, src io.Reader, batch int) error {
	buf := scratch.Borrow()
	defer scratch.Release(buf)
	lineNo := 0
	err := eachLine(src, func(line string) error {
		lineNo++
		buf.WriteString(line)
		if lineNo%batch != 0 {
			return nil
		}
		if _, werr := io.WriteString(dst, sanzang.Substitute(tab, buf.String())); werr != nil {
			return werr
		}
		buf.Reset()
		return nil
	})
	if err != nil {
		return err
	}
	if buf.Len() > 0 {
		_, err = io.WriteString(dst, sanzang.Substitute(tab, buf.String()))
	}
	return err
}

// Translate produces a translation listing for the text from src on dst,
// using the default batch size.
func Translate(tab *sanzang.Table, dst io.Writer, src io.Reader) error {
	return TranslateBatch(tab, dst, src, TranslateBatchSize)
}

// TranslateBatch produces a translation listing for the text from src on
// dst, accumulating batch input lines between flushes. The line number of
// the first buffered line is tracked across flushes, so the final, possibly
// partial chunk is numbered exactly as an unbuffered run would number it.
func TranslateBatch(tab *sanzang.Table, dst io.Writer, src io.Reader, batch int) error {
	buf := scratch.Borrow()
	defer scratch.Release(buf)
	lineNo, start := 0, 1
	err := eachLine(src, func(line string) error {
		lineNo++
		buf.WriteString(line)
		if lineNo%batch != 0 {
			return nil
		}
		if _, werr := io.WriteString(dst, sanzang.FormatListing(tab, buf.String(), start)); werr != nil {
			return werr
		}
		buf.Reset()
		start = lineNo + 1
		return nil
	})
	if err != nil {
		return err
	}
	if buf.Len() > 0 {
		_, err = io.WriteString(dst, sanzang.FormatListing(tab, buf.String(), start))
	}
	return err
}
