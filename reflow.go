package sanzang

import "strings"

// Clause enders and clause starters are the two punctuation classes driving
// the reflow rules.
const (
	enders   = "：，；。？！」』.;:?"
	starters = "「『　\t"
)

// IsEnder reports whether r signals the end of a clause or sentence: full
// stops, question and exclamation marks, and the CJK closing quote brackets.
func IsEnder(r rune) bool {
	return strings.ContainsRune(enders, r)
}

// IsStarter reports whether r signals the beginning of a new clause: the CJK
// opening quote brackets, the full-width space, and the tab.
func IsStarter(r rune) bool {
	return strings.ContainsRune(starters, r)
}

// Reflow reformats CJK text according to its punctuation.
//
// The text is reflowed so that words and terms are not broken apart between
// lines. Reflow first strips any leading margins as used by CBETA texts,
// marks short poetry lines so they stay visually separate, then collapses
// all line breaks and re-inserts them according to horizontal spacing and
// punctuation.
//
// The text should not include any incomplete CBETA margins, as only whole
// margins following the standard format can be reliably removed.
//
// Margin format: X01n0020_p0404a01(00)║
//
// Reflow is pure and total: it returns a result for any input string and
// never fails. Non-empty output always ends with exactly one line break.
func Reflow(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = poetrySpacing(stripMargin(line))
	}
	// Collapse all line breaks into one long logical line.
	runes := []rune(strings.Join(lines, ""))

	// The two break-insertion passes below must stay separate and run in
	// this order: breaks inserted by the first pass change adjacency for
	// the second.
	runes = breakAfterEnders(runes)
	runes = breakBeforeStarters(runes)
	if len(runes) > 0 && runes[len(runes)-1] != '\n' {
		runes = append(runes, '\n')
	}
	return string(runes)
}

// stripMargin removes a CBETA margin from the beginning of a line. A margin
// runs from a leading source marker ('T' for Taishō, 'X' for Xuzangjing) up
// through the '║' terminator. Truncated margins are left alone.
func stripMargin(line string) string {
	if !strings.HasPrefix(line, "T") && !strings.HasPrefix(line, "X") {
		return line
	}
	if i := strings.Index(line, "║"); i >= 0 {
		return line[i+len("║"):]
	}
	return line
}

// poetrySpacing separates poetry from prose. A line of at most 15 runes
// opening with a full-width space is a short poetic line; it gets a
// full-width space appended so the verse stays apart from the following
// text once line breaks are collapsed.
func poetrySpacing(line string) string {
	runes := []rune(line)
	if len(runes) < 2 || len(runes) > 16 || runes[0] != '　' {
		return line
	}
	return line + "　"
}

// breakAfterEnders inserts a line break between an ender and an immediately
// following non-ender. Pairs are matched left to right without overlap, with
// the semantics of a global two-character substitution.
func breakAfterEnders(runes []rune) []rune {
	out := make([]rune, 0, len(runes)+len(runes)/8)
	for i := 0; i < len(runes); i++ {
		out = append(out, runes[i])
		if i+1 < len(runes) && IsEnder(runes[i]) && !IsEnder(runes[i+1]) {
			out = append(out, '\n', runes[i+1])
			i++
		}
	}
	return out
}

// breakBeforeStarters inserts a line break between a plain character and an
// immediately following starter. Enders, starters and line breaks are exempt
// on the left side of the pair.
func breakBeforeStarters(runes []rune) []rune {
	out := make([]rune, 0, len(runes)+len(runes)/8)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		out = append(out, r)
		if i+1 < len(runes) && r != '\n' && !IsEnder(r) && !IsStarter(r) && IsStarter(runes[i+1]) {
			out = append(out, '\n', runes[i+1])
			i++
		}
	}
	return out
}
