package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jamesainslie/go-lidprep/corpus"
)

// writeFile ensures parent dirs and writes a file with given contents.
func writeFile(t *testing.T, p, s string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
}

// countLines counts trailing-\n separated lines in a byte slice.
func countLines(b []byte) int {
	return bytes.Count(b, []byte{'\n'})
}

// seedCorpora writes n eligible lines per language under dir.
func seedCorpora(t *testing.T, dir string, n int) {
	t.Helper()
	for _, code := range corpus.LoadOrder {
		var b strings.Builder
		b.WriteString("<fn>" + code + "</fn>\n")
		for i := 0; i < n; i++ {
			b.WriteString(strings.ToUpper(code) + " line " + strings.Repeat("z", i+1) + " ")
			b.WriteString(strings.Repeat("word ", 45))
			b.WriteString("2024.\n")
		}
		writeFile(t, filepath.Join(dir, code, "improved_"+code+".txt"), b.String())
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot(t *testing.T) {
	t.Run("Writes train and test files", func(t *testing.T) {
		dir := t.TempDir()
		seedCorpora(t, filepath.Join(dir, "data"), 5)
		trainOut := filepath.Join(dir, "train.txt")
		testOut := filepath.Join(dir, "test.txt")

		_, err := execute(t,
			"--data-dir", filepath.Join(dir, "data"),
			"--train-out", trainOut,
			"--test-out", testOut,
			"--training-samples", "3",
			"--testing-samples", "1",
			"--seed", "11",
		)
		if err != nil {
			t.Fatalf("execute: %v", err)
		}

		b, err := os.ReadFile(trainOut)
		if err != nil {
			t.Fatalf("read train: %v", err)
		}
		if countLines(b) != 3*11 {
			t.Fatalf("expected %d train lines, got %d", 3*11, countLines(b))
		}
		b, err = os.ReadFile(testOut)
		if err != nil {
			t.Fatalf("read test: %v", err)
		}
		if countLines(b) != 11 {
			t.Fatalf("expected 11 test lines, got %d", countLines(b))
		}
		for _, line := range strings.Split(strings.TrimSuffix(string(b), "\n"), "\n") {
			text, label, ok := strings.Cut(line, "\t")
			if !ok || !corpus.IsLanguage(label) {
				t.Fatalf("malformed record %q", line)
			}
			if !strings.HasPrefix(text, label+" line ") {
				t.Fatalf("record %q not cleaned or mislabeled", line)
			}
		}
	})

	t.Run("Shortened test set", func(t *testing.T) {
		dir := t.TempDir()
		seedCorpora(t, filepath.Join(dir, "data"), 3)
		testOut := filepath.Join(dir, "test.txt")

		_, err := execute(t,
			"--data-dir", filepath.Join(dir, "data"),
			"--train-out", filepath.Join(dir, "train.txt"),
			"--test-out", testOut,
			"--training-samples", "2",
			"--testing-samples", "1",
			"--shorten-test",
			"--min-length", "12",
		)
		if err != nil {
			t.Fatalf("execute: %v", err)
		}

		got, err := corpus.ReadFile(testOut)
		if err != nil {
			t.Fatalf("read test: %v", err)
		}
		if len(got) != 11 {
			t.Fatalf("expected 11 test sentences, got %d", len(got))
		}
		for _, s := range got {
			if len(s.Text) >= 60 {
				t.Errorf("sentence %q was not shortened", s.Text)
			}
		}
	})

	t.Run("Missing corpus fails", func(t *testing.T) {
		dir := t.TempDir()
		_, err := execute(t,
			"--data-dir", filepath.Join(dir, "absent"),
			"--train-out", filepath.Join(dir, "train.txt"),
			"--test-out", filepath.Join(dir, "test.txt"),
		)
		if err == nil {
			t.Fatal("expected error for missing corpora")
		}
		if _, statErr := os.Stat(filepath.Join(dir, "train.txt")); !os.IsNotExist(statErr) {
			t.Fatal("expected no train output when loading fails")
		}
	})

	t.Run("Rejects positional arguments", func(t *testing.T) {
		if _, err := execute(t, "unexpected"); err == nil {
			t.Fatal("expected error for positional argument")
		}
	})

	t.Run("Rejects bad log format", func(t *testing.T) {
		if _, err := execute(t, "--log-format", "xml"); err == nil {
			t.Fatal("expected error for invalid log format")
		}
	})
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nchlt_test.txt")
	writeFile(t, path, "sawubona\tzul\nmolo\txho\nngiyabonga\tzul\n")

	out, err := execute(t, "stats", path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	var got struct {
		Files []struct {
			Path      string         `json:"path"`
			Sentences float64        `json:"sentences"`
			Labels    map[string]int `json:"labels"`
		} `json:"files"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(got.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(got.Files))
	}
	if got.Files[0].Sentences != 3 || got.Files[0].Labels["zul"] != 2 || got.Files[0].Labels["xho"] != 1 {
		t.Errorf("unexpected summary: %+v", got.Files[0])
	}

	t.Run("Malformed file fails", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.txt")
		writeFile(t, bad, "no tab\n")
		if _, err := execute(t, "stats", bad); err == nil {
			t.Fatal("expected error for malformed file")
		}
	})
}
