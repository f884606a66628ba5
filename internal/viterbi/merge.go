package viterbi

import (
	"bytes"

	"github.com/khmer-segmenter/khmerseg/internal/charclass"
	"github.com/khmer-segmenter/khmerseg/internal/dict"
)

// MergeUnknown coalesces runs of segments unrecognized by the
// dictionary into a single segment, preserving order (spec §4.2
// "Unknown-merge post-pass").
func MergeUnknown(segments [][]byte, d *dict.Dictionary) [][]byte {
	out := make([][]byte, 0, len(segments))
	var buf []byte

	flush := func() {
		if buf != nil {
			out = append(out, buf)
			buf = nil
		}
	}

	for _, seg := range segments {
		if isKnownSegment(seg, d) {
			flush()
			out = append(out, seg)
		} else {
			buf = append(buf, seg...)
		}
	}
	flush()
	return out
}

// isKnownSegment implements the five-way classification of spec §4.2.
func isKnownSegment(seg []byte, d *dict.Dictionary) bool {
	if len(seg) == 0 {
		return false
	}
	r, n := charclass.DecodeRune(seg)

	if charclass.IsSeparator(r) && len(seg) <= 4 {
		return true
	}
	if charclass.IsDigit(r) {
		return true
	}
	if _, ok := d.Lookup(seg); ok {
		return true
	}
	if n == len(seg) && charclass.IsValidSingleWord(r) {
		return true
	}
	if len(seg) >= 2 && bytes.ContainsRune(seg, '.') {
		return true
	}
	return false
}
