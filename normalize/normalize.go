// Package normalize cleans raw corpus lines before they are labeled.
package normalize

import (
	"strings"
)

// Fixup is a literal substring replacement applied to lowercased text.
type Fixup struct {
	Pattern     string
	Replacement string
}

// Fixups corrects encoding artifacts found in the NCHLT corpora. Entries are
// applied in order and each replaces every occurrence of its pattern.
var Fixups = []Fixup{
	{Pattern: "ã…â¡", Replacement: "š"}, // mis-decoded š
	{Pattern: "ï¿½", Replacement: ""},   // mis-decoded U+FFFD
	{Pattern: "ª", Replacement: ""},
}

// stripped lists the ASCII punctuation (hyphen excluded) and digits that are
// replaced with a space.
const stripped = "!\"#$%&'()*+,./:;<=>?@[\\]^_`{|}~0123456789"

// Normalize lowercases text, blanks out ASCII punctuation other than '-' and
// ASCII digits, applies Fixups, then collapses whitespace runs to a single
// space and trims both ends.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = strings.Map(blank, text)

	for _, f := range Fixups {
		text = strings.ReplaceAll(text, f.Pattern, f.Replacement)
	}

	return strings.Join(strings.Fields(text), " ")
}

func blank(r rune) rune {
	if r < 0x80 && strings.ContainsRune(stripped, r) {
		return ' '
	}
	return r
}
