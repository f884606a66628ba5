package rules

import (
	"bytes"
	"testing"
)

func enc(r rune) []byte {
	switch {
	case r <= 0x7F:
		return []byte{byte(r)}
	default:
		// All the runes this test needs (Khmer block) encode to 3 bytes.
		return []byte{
			byte(0xE0 | (r >> 12)),
			byte(0x80 | ((r >> 6) & 0x3F)),
			byte(0x80 | (r & 0x3F)),
		}
	}
}

func seg(rs ...rune) []byte {
	var out []byte
	for _, r := range rs {
		out = append(out, enc(r)...)
	}
	return out
}

func joinAll(segs [][]byte) []byte {
	var out []byte
	for _, s := range segs {
		out = append(out, s...)
	}
	return out
}

func TestKaDaSignPreserved(t *testing.T) {
	ka17cf := seg(0x1780, 0x17CF) // ក៏
	in := [][]byte{ka17cf}
	out := Apply(in)
	if len(out) != 1 || !bytes.Equal(out[0], ka17cf) {
		t.Errorf("ka+17CF should be preserved unchanged, got %v", out)
	}
}

func TestOrphanARightMerge(t *testing.T) {
	a := seg(0x17A2)
	next := seg(0x1780)
	out := Apply([][]byte{a, next})
	want := [][]byte{append(append([]byte{}, a...), next...)}
	if len(out) != 1 || !bytes.Equal(out[0], want[0]) {
		t.Errorf("orphan A should right-merge: got %v, want %v", out, want)
	}
}

func TestOrphanANotMergedBeforeSeparator(t *testing.T) {
	a := seg(0x17A2)
	sep := seg(0x17D4) // khan, a separator
	out := Apply([][]byte{a, sep})
	if len(out) != 2 {
		t.Errorf("orphan A before a separator should not merge, got %v", out)
	}
}

func TestConsonantSignSuffixLeftMerge(t *testing.T) {
	prev := seg(0x1781)
	suffix := seg(0x1782, 0x17CB) // consonant + Yuukaleapintu
	out := Apply([][]byte{prev, suffix})
	want := append(append([]byte{}, prev...), suffix...)
	if len(out) != 1 || !bytes.Equal(out[0], want) {
		t.Errorf("consonant+sign suffix should left-merge: got %v, want %v", out, want)
	}
}

func TestConsonantSamyokRightMerge(t *testing.T) {
	samyok := seg(0x1782, 0x17D0)
	next := seg(0x1780)
	out := Apply([][]byte{samyok, next})
	want := append(append([]byte{}, samyok...), next...)
	if len(out) != 1 || !bytes.Equal(out[0], want) {
		t.Errorf("consonant+samyok should right-merge: got %v, want %v", out, want)
	}
}

func TestInvalidSingleConsonantLeftMerge(t *testing.T) {
	prev := seg(0x1780)
	// 0x1783 (GA) is a single Khmer codepoint not in the valid-single-word set.
	invalid := seg(0x1783)
	out := Apply([][]byte{prev, invalid})
	want := append(append([]byte{}, prev...), invalid...)
	if len(out) != 1 || !bytes.Equal(out[0], want) {
		t.Errorf("invalid single consonant should left-merge: got %v, want %v", out, want)
	}
}

func TestInvalidSingleConsonantNotMergedAfterSeparator(t *testing.T) {
	sep := seg(0x17D4)
	invalid := seg(0x1783)
	out := Apply([][]byte{sep, invalid})
	if len(out) != 2 {
		t.Errorf("invalid single consonant after a separator should not merge, got %v", out)
	}
}

func TestApplyPreservesConcatenation(t *testing.T) {
	in := [][]byte{seg(0x17A2), seg(0x1780), seg(0x1783, 0x17CB)}
	concatBefore := joinAll(in)
	out := Apply(in)
	concatAfter := joinAll(out)
	if !bytes.Equal(concatBefore, concatAfter) {
		t.Errorf("Apply must preserve concatenation: before=%x after=%x", concatBefore, concatAfter)
	}
}
