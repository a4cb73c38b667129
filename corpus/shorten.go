package corpus

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

// DefaultMinLength is the default test sentence length after shortening.
const DefaultMinLength = 15

// Shorten cuts each sentence at minLength characters, moving the cut forward
// to the next space or the end of the text. Sentences shorter than minLength
// are dropped. Order is preserved.
func Shorten(sentences []Sentence, minLength int) []Sentence {
	return lo.FilterMap(sentences, func(s Sentence, _ int) (Sentence, bool) {
		if utf8.RuneCountInString(s.Text) < minLength {
			return Sentence{}, false
		}
		return Sentence{Text: cutAtSpace(s.Text, minLength), Label: s.Label}, true
	})
}

func cutAtSpace(text string, from int) string {
	rs := []rune(text)
	end := max(from, 0)
	for end < len(rs) && rs[end] != ' ' {
		end++
	}
	return string(rs[:end])
}
