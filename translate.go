package sanzang

import (
	"fmt"
	"strings"
	"unicode"
)

// Marker is the reserved code-point used to claim text spans already
// consumed by an applied rule, so that shorter or later rules cannot
// re-match inside replaced text. U+E000 is the first code-point of the
// Unicode private use area and must not appear in legitimate input; texts
// containing it yield undefined results.
const Marker rune = ''

var marker = string(Marker)

// Vocabulary narrows a table down to the rules relevant for one text.
//
// A rule is relevant if its source term is a literal substring of the text.
// Relevance is checked against a working copy in table row order; all
// occurrences of a selected term are overwritten with Marker in the copy, so
// subsequent, possibly overlapping terms cannot re-match the same span. The
// first listed rule wins.
//
// The result is a sub-table of tab with the same column count and the same
// relative record order.
func Vocabulary(tab *Table, text string) *Table {
	sub := &Table{width: tab.width}
	for i := 0; i < tab.Len(); i++ {
		rec := tab.Record(i)
		if strings.Contains(text, rec[0]) {
			text = strings.ReplaceAll(text, rec[0], marker)
			sub.records = append(sub.records, rec)
		}
	}
	T().Debugf("vocabulary: %d of %d rules apply", sub.Len(), tab.Len())
	return sub
}

// Translate translates a text using a table and returns the raw column
// texts. The first element of the result is the source text (cleaned of any
// pre-existing Marker code-points), followed by one element per target
// column of the table.
//
// Per column, every relevant rule's source term is replaced by its target
// term bracketed in Markers. Afterwards a Marker directly before a line
// break is dropped, two adjacent Markers collapse into a single space, and
// every remaining Marker becomes a single space marking the boundary between
// translated and untranslated text.
func Translate(tab *Table, text string) []string {
	rules := Vocabulary(tab, text)
	text = strings.ReplaceAll(text, marker, "")
	columns := make([]string, 1, tab.Width())
	columns[0] = text
	for col := 1; col < tab.Width(); col++ {
		trans := text
		for i := 0; i < rules.Len(); i++ {
			rec := rules.Record(i)
			trans = strings.ReplaceAll(trans, rec[0], marker+rec[col]+marker)
		}
		trans = strings.ReplaceAll(trans, marker+"\n", "\n")
		trans = strings.ReplaceAll(trans, marker+marker, " ")
		trans = strings.ReplaceAll(trans, marker, " ")
		columns = append(columns, trans)
	}
	return columns
}

// FormatListing translates a text using a table and returns a formatted
// listing. The listing collates the source text and its translations,
// grouped by source line and by table column, one line per (source line,
// column) pair in the form
//
//	<line>.<column>|<text>
//
// with a blank line after each group. Column 1 is always the source text.
// Line numbers start at start and increment by one per source line, which
// lets a caller number buffered chunks consistently. Trailing whitespace of
// each column is stripped before splitting, so trailing blank lines do not
// generate listing entries.
func FormatListing(tab *Table, text string, start int) string {
	columns := Translate(tab, text)
	lines := make([][]string, len(columns))
	for i, col := range columns {
		lines[i] = strings.Split(strings.TrimRightFunc(col, unicode.IsSpace), "\n")
	}
	var listing strings.Builder
	for lineNo := range lines[0] {
		for col := 0; col < tab.Width(); col++ {
			var content string
			if lineNo < len(lines[col]) {
				content = lines[col][lineNo]
			}
			fmt.Fprintf(&listing, "%d.%d|%s\n", start+lineNo, col+1, content)
		}
		listing.WriteByte('\n')
	}
	return listing.String()
}
