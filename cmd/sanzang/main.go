// Command sanzang is a thin command-line wrapper around the sanzang library.
//
// Usage:
//
//	sanzang reflow [-batch n] [input]
//	sanzang subst -table file [-batch n] [input]
//	sanzang translate -table file [-batch n] [input]
//
// Each sub-command reads from the given input file, or from standard input
// when no file is named, and writes to standard output. Input is decoded as
// UTF-8; a leading byte order mark selects UTF-16 transparently.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	sanzang "github.com/yaoguai/sanzang-lib"
	"github.com/yaoguai/sanzang-lib/stream"
)

const usageBanner = `usage: sanzang <command> [options] [input]

commands:
  reflow      reformat CJK text into one clause per line
  subst       apply a two-column table as direct substitution
  translate   produce a numbered multi-column translation listing

options:
  -table file   translation table (subst, translate)
  -batch n      batch size in lines (0 selects the command's default)
  -v            verbose tracing
`

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageBanner)
		os.Exit(2)
	}
	command := os.Args[1]
	flags := flag.NewFlagSet(command, flag.ExitOnError)
	tablePath := flags.String("table", "", "translation table file")
	batch := flags.Int("batch", 0, "batch size in lines")
	verbose := flags.Bool("v", false, "verbose tracing")
	flags.Parse(os.Args[2:])
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}

	input, err := openInput(flags.Arg(0))
	if err != nil {
		fail(err)
	}

	switch command {
	case "reflow":
		err = stream.ReflowBatch(os.Stdout, input, batchOrDefault(*batch, stream.ReflowBatchSize))
	case "subst":
		var tab *sanzang.Table
		if tab, err = loadTable(*tablePath); err == nil {
			err = stream.SubstituteBatch(tab, os.Stdout, input, batchOrDefault(*batch, stream.SubstituteBatchSize))
		}
	case "translate":
		var tab *sanzang.Table
		if tab, err = loadTable(*tablePath); err == nil {
			err = stream.TranslateBatch(tab, os.Stdout, input, batchOrDefault(*batch, stream.TranslateBatchSize))
		}
	default:
		fmt.Fprint(os.Stderr, usageBanner)
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "sanzang: %v\n", err)
	os.Exit(1)
}

func batchOrDefault(batch, def int) int {
	if batch > 0 {
		return batch
	}
	return def
}

// decode wraps r so that UTF-8 input passes through unchanged and a byte
// order mark, if present, switches decoding to the encoding it announces.
func decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// openInput opens the named input file, or standard input for "" or "-".
func openInput(name string) (io.Reader, error) {
	if name == "" || name == "-" {
		return decode(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return decode(f), nil
}

func loadTable(path string) (*sanzang.Table, error) {
	if path == "" {
		return nil, fmt.Errorf("no translation table given (use -table)")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sanzang.ReadTable(decode(f))
}
