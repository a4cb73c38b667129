// Package corpus loads, shortens, writes and reads labeled NCHLT sentences.
package corpus

import (
	"errors"
	"slices"
)

// Language codes of the eleven NCHLT languages.
const (
	Afrikaans = "afr"
	English   = "eng"
	Ndebele   = "nbl"
	Sepedi    = "nso"
	Sesotho   = "sot"
	Swati     = "ssw"
	Setswana  = "tsn"
	Xitsonga  = "tso"
	Tshivenda = "ven"
	Xhosa     = "xho"
	Zulu      = "zul"
)

// Languages is the order in which per-language samples are concatenated.
// Training and testing windows are both built from it.
var Languages = []string{
	Afrikaans, English, Ndebele, Sepedi, Sesotho, Swati,
	Setswana, Xitsonga, Tshivenda, Xhosa, Zulu,
}

// LoadOrder is the order in which raw language files are read.
var LoadOrder = []string{
	Afrikaans, English, Ndebele, Xhosa, Zulu, Sepedi,
	Sesotho, Setswana, Swati, Tshivenda, Xitsonga,
}

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidEncoding indicates a strict load hit malformed UTF-8.
	ErrInvalidEncoding = errors.New("corpus: invalid utf-8 input")

	// ErrMalformedRecord indicates a written line has no tab separator.
	ErrMalformedRecord = errors.New("corpus: malformed record")
)

// Sentence is a cleaned line of text and its language label.
type Sentence struct {
	Text  string
	Label string
}

// IsLanguage reports whether code is one of the NCHLT language codes.
func IsLanguage(code string) bool {
	return slices.Contains(Languages, code)
}
