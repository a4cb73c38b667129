package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Write emits one "text\tlabel\n" record per sentence.
func Write(w io.Writer, sentences []Sentence) error {
	bw := bufio.NewWriter(w)
	for _, s := range sentences {
		if _, err := bw.WriteString(s.Text); err != nil {
			return err
		}
		if err := bw.WriteByte('\t'); err != nil {
			return err
		}
		if _, err := bw.WriteString(s.Label); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save creates or truncates path and writes sentences to it. A nil logger
// uses slog.Default(). Output written before a failure is left in place.
func Save(path string, sentences []Sentence, logger *slog.Logger) (err error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	logger.Info("saving sentences", "path", path, "sentences", len(sentences))

	if err := Write(f, sentences); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
