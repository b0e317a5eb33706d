package sanzang

import "strings"

// Substitute makes one-to-one string substitutions using a two-column table.
//
// For each record, in table row order, every literal occurrence of the
// source term is replaced by the target term; the same is then done for the
// lowercase and the uppercase form of the pair. The working text mutates
// after each record, so later records see the effects of earlier ones. This
// makes rule order semantically significant: overlapping or nested terms
// produce different results depending on table order, and a later rule may
// match text introduced by an earlier replacement.
//
// Matching is literal substring comparison; there are no escape or regexp
// semantics.
func Substitute(tab *Table, text string) string {
	for i := 0; i < tab.Len(); i++ {
		rec := tab.Record(i)
		term, repl := rec[0], rec[1]
		text = strings.ReplaceAll(text, term, repl)
		text = strings.ReplaceAll(text, strings.ToLower(term), strings.ToLower(repl))
		text = strings.ReplaceAll(text, strings.ToUpper(term), strings.ToUpper(repl))
	}
	return text
}
