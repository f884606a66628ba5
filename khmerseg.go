// Package khmerseg segments Khmer script text into words. It wires
// together normalization, a Viterbi dynamic-program segmentation
// engine backed by a baked dictionary, a fixed orthographic rule
// engine, and an unknown-run merger into a single public Segment call.
package khmerseg

import (
	"github.com/khmer-segmenter/khmerseg/internal/config"
	"github.com/khmer-segmenter/khmerseg/internal/dict"
	"github.com/khmer-segmenter/khmerseg/internal/normalize"
	"github.com/khmer-segmenter/khmerseg/internal/rules"
	"github.com/khmer-segmenter/khmerseg/internal/viterbi"
)

// DefaultSeparator is the zero-width space used to join segments when
// no separator is supplied, U+200B.
var DefaultSeparator = []byte{0xE2, 0x80, 0x8B}

// Config re-exports the pipeline's feature toggles.
type Config = config.Config

// DefaultConfig returns a Config with every stage enabled.
func DefaultConfig() Config { return config.Default() }

// Segmenter is an immutable value wrapping a loaded Dictionary and a
// Config. It carries no mutable state, so a single Segmenter is safe
// to call Segment on concurrently from any number of goroutines (spec
// §5 concurrency model).
type Segmenter struct {
	dict *dict.Dictionary
	cfg  Config
}

// New constructs a Segmenter over an already-loaded dictionary.
func New(d *dict.Dictionary, cfg Config) *Segmenter {
	return &Segmenter{dict: d, cfg: cfg}
}

// Open loads a baked dictionary blob from path and returns a Segmenter
// over it, using mmap where the platform supports it.
func Open(path string, cfg Config) (*Segmenter, error) {
	d, err := dict.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(d, cfg), nil
}

// Close releases the underlying dictionary's resources (the mmap
// region, on platforms that use one).
func (s *Segmenter) Close() error { return s.dict.Close() }

// Dictionary returns the segmenter's backing dictionary.
func (s *Segmenter) Dictionary() *dict.Dictionary { return s.dict }

// Segment splits text into words, joined by separator (DefaultSeparator
// if nil). On empty input it returns an empty slice.
func (s *Segmenter) Segment(text []byte, separator []byte) []byte {
	if len(text) == 0 {
		return nil
	}
	if separator == nil {
		separator = DefaultSeparator
	}

	normalized := text
	if s.cfg.EnableNormalization {
		normalized = normalize.Normalize(text)
	}

	segs := viterbi.Segment(normalized, s.dict, s.cfg)
	segs = rules.Apply(segs)
	if s.cfg.EnableUnknownMerging {
		segs = viterbi.MergeUnknown(segs, s.dict)
	}

	return join(segs, separator)
}

// Segments is like Segment but returns the individual word slices
// instead of a separator-joined string, for callers that want to
// avoid re-splitting the output.
func (s *Segmenter) Segments(text []byte) [][]byte {
	if len(text) == 0 {
		return nil
	}

	normalized := text
	if s.cfg.EnableNormalization {
		normalized = normalize.Normalize(text)
	}

	segs := viterbi.Segment(normalized, s.dict, s.cfg)
	segs = rules.Apply(segs)
	if s.cfg.EnableUnknownMerging {
		segs = viterbi.MergeUnknown(segs, s.dict)
	}
	return segs
}

func join(segs [][]byte, sep []byte) []byte {
	if len(segs) == 0 {
		return nil
	}
	size := 0
	for _, s := range segs {
		size += len(s)
	}
	size += len(sep) * (len(segs) - 1)

	out := make([]byte, 0, size)
	for i, s := range segs {
		if i > 0 {
			out = append(out, sep...)
		}
		out = append(out, s...)
	}
	return out
}
