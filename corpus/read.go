package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// scannerBufSize is the maximum record line length accepted by Read.
const scannerBufSize = 1 << 20

// Read parses records produced by Write. Each line is split at its last tab
// into text and label.
func Read(r io.Reader) ([]Sentence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), scannerBufSize)

	var sentences []Sentence
	line := 0
	for scanner.Scan() {
		line++
		text, label, ok := cutLast(scanner.Text(), "\t")
		if !ok {
			return nil, fmt.Errorf("%w: line %d has no tab", ErrMalformedRecord, line)
		}
		sentences = append(sentences, Sentence{Text: text, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	return sentences, nil
}

// ReadFile reads the records stored at path.
func ReadFile(path string) ([]Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer func() { _ = f.Close() }()

	sentences, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sentences, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
