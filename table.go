package sanzang

import (
	"bufio"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Table is an ordered sequence of translation records. Every record holds a
// source term in column 0 and one target term per translation column. Row
// order is significant: it is the priority order in which rules are applied,
// not an arbitrary ordering.
//
// A Table is immutable once loaded; all transformations consume it read-only.
type Table struct {
	width   int
	records [][]string
}

// Width returns the number of columns per record. For a loaded table this is
// always at least 2.
func (tab *Table) Width() int {
	return tab.width
}

// Len returns the number of records in the table.
func (tab *Table) Len() int {
	return len(tab.records)
}

// Record returns the i'th record of the table. Callers must treat the
// returned slice as read-only.
func (tab *Table) Record(i int) []string {
	return tab.records[i]
}

// MalformedTableError reports a table line whose field count does not match
// the column count established by the first data-bearing line, or a table
// for which no valid column count could be established at all.
type MalformedTableError struct {
	Line string // offending line, surrounding whitespace trimmed
}

func (e MalformedTableError) Error() string {
	if e.Line == "" {
		return "table error: no translation records"
	}
	return "table error: " + e.Line
}

// ReadTable reads a translation table from r.
//
// The format is one record per line, fields separated by '|', surrounding
// whitespace trimmed per field. The first non-blank line establishes the
// column count for the whole table, which must be at least two. Blank lines
// are skipped. Loading is all-or-nothing: a single malformed record aborts
// the load with a MalformedTableError and no partial table is returned.
func ReadTable(r io.Reader) (*Table, error) {
	records := arraylist.New()
	width := -1
	input := bufio.NewScanner(r)
	for input.Scan() {
		line := input.Text()
		fields := strings.Split(line, "|")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		switch {
		case width != -1 && len(fields) == width:
			records.Add(fields)
		case width == -1 && len(fields) > 1:
			width = len(fields)
			records.Add(fields)
		case strings.TrimSpace(line) != "":
			T().Errorf("table record has %d field(s), want %d", len(fields), width)
			return nil, MalformedTableError{Line: strings.TrimSpace(line)}
		}
	}
	if err := input.Err(); err != nil {
		return nil, err
	}
	if width < 2 {
		return nil, MalformedTableError{}
	}
	tab := &Table{width: width, records: make([][]string, records.Size())}
	it := records.Iterator()
	for it.Next() {
		tab.records[it.Index()] = it.Value().([]string)
	}
	T().Infof("translation table loaded: %d records of %d columns", tab.Len(), tab.width)
	return tab, nil
}
