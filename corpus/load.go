package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jamesainslie/go-lidprep/normalize"
)

const (
	// DefaultMinExclusive is the default lower bound (exclusive) on kept
	// sentence length, in characters.
	DefaultMinExclusive = 200

	// DefaultMaxExclusive is the default upper bound (exclusive) on kept
	// sentence length, in characters.
	DefaultMaxExclusive = 300

	// metadataPrefix marks corpus metadata lines.
	metadataPrefix = "<fn"
)

// Loader reads a raw per-language corpus file into labeled sentences.
//
// Input is decoded as UTF-8 with a leading byte order mark removed. By
// default malformed byte sequences are replaced with U+FFFD; with Strict set
// they fail the load with ErrInvalidEncoding.
type Loader struct {
	MinExclusive int
	MaxExclusive int

	// ExtendFrom is the character position from which a kept sentence is
	// extended to the next space. Zero starts at the end of the sentence, so
	// the extension never cuts anything.
	ExtendFrom int

	Strict bool
	Logger *slog.Logger
}

// DefaultLoader returns a lenient Loader keeping sentences of 201 to 299
// characters.
func DefaultLoader() *Loader {
	return &Loader{
		MinExclusive: DefaultMinExclusive,
		MaxExclusive: DefaultMaxExclusive,
	}
}

// Load reads path with DefaultLoader and labels every kept sentence.
func Load(path, label string) ([]Sentence, error) {
	return DefaultLoader().Load(path, label)
}

// Load reads path line by line, skipping metadata lines, normalizing the rest
// and keeping those whose length lies strictly inside the loader's window.
func (l *Loader) Load(path, label string) ([]Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }() // read-only; close error carries nothing

	l.logger().Info("loading sentences", "path", path, "label", label)

	r := bufio.NewReader(transform.NewReader(f, l.decoder()))

	var sentences []Sentence
	lines := 0
	for {
		raw, err := r.ReadString('\n')
		for _, line := range splitLines(raw) {
			lines++
			if s, ok := l.accept(line, label); ok {
				sentences = append(sentences, s)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, encoding.ErrInvalidUTF8) {
				return nil, fmt.Errorf("%w: %s after %d lines", ErrInvalidEncoding, path, lines)
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	return sentences, nil
}

// accept normalizes one raw line and reports whether it lies inside the
// loader's window.
func (l *Loader) accept(line, label string) (Sentence, bool) {
	if strings.HasPrefix(line, metadataPrefix) {
		return Sentence{}, false
	}

	text := normalize.Normalize(strings.TrimSpace(line))
	n := utf8.RuneCountInString(text)
	if n <= l.MinExclusive || n >= l.MaxExclusive {
		return Sentence{}, false
	}
	return Sentence{Text: l.extend(text, n), Label: label}, true
}

// splitLines breaks a chunk ending in at most one '\n' into lines, treating
// "\r\n", "\n" and a lone '\r' as terminators. An empty chunk has no lines.
func splitLines(chunk string) []string {
	if chunk == "" {
		return nil
	}
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	return strings.Split(chunk, "\r")
}

// extend advances the cut point from ExtendFrom to the next space or the end
// of text. n is the character length of text.
func (l *Loader) extend(text string, n int) string {
	end := n
	if l.ExtendFrom > 0 && l.ExtendFrom < n {
		end = l.ExtendFrom
	}
	if end >= n {
		return text
	}

	rs := []rune(text)
	for end < len(rs) && rs[end] != ' ' {
		end++
	}
	return string(rs[:end])
}

func (l *Loader) decoder() transform.Transformer {
	if l.Strict {
		return transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
	}
	return unicode.UTF8BOM.NewDecoder()
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}
