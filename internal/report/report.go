// Package report summarizes labeled sentence files as protobuf JSON.
package report

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jamesainslie/go-lidprep/corpus"
)

// File holds sentence statistics for one labeled file.
type File struct {
	Path      string
	Sentences int
	Labels    map[string]int // sentences per label
	MinLength int            // shortest text in characters
	MaxLength int            // longest text in characters
}

// Summarize computes statistics for sentences read from path.
func Summarize(path string, sentences []corpus.Sentence) File {
	f := File{
		Path:      path,
		Sentences: len(sentences),
		Labels:    lo.CountValuesBy(sentences, func(s corpus.Sentence) string { return s.Label }),
	}
	if len(sentences) > 0 {
		lengths := lo.Map(sentences, func(s corpus.Sentence, _ int) int { return utf8.RuneCountInString(s.Text) })
		f.MinLength = slices.Min(lengths)
		f.MaxLength = slices.Max(lengths)
	}
	return f
}

// Struct converts files into a protobuf Struct with a "files" list.
func Struct(files []File) (*structpb.Struct, error) {
	list := make([]any, 0, len(files))
	for _, f := range files {
		labels := make(map[string]any, len(f.Labels))
		for label, n := range f.Labels {
			labels[label] = n
		}
		list = append(list, map[string]any{
			"path":       f.Path,
			"sentences":  f.Sentences,
			"labels":     labels,
			"min_length": f.MinLength,
			"max_length": f.MaxLength,
		})
	}

	s, err := structpb.NewStruct(map[string]any{"files": list})
	if err != nil {
		return nil, fmt.Errorf("build summary: %w", err)
	}
	return s, nil
}

// Marshal renders files as indented JSON.
func Marshal(files []File) ([]byte, error) {
	s, err := Struct(files)
	if err != nil {
		return nil, err
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	return b, nil
}
