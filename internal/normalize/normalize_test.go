package normalize

import (
	"bytes"
	"testing"
)

func encodeRunes(rs ...rune) []byte {
	var out []byte
	for _, r := range rs {
		out = appendRune(out, r)
	}
	return out
}

func TestIdempotent(t *testing.T) {
	inputs := [][]byte{
		encodeRunes(0x1780, 0x17B6, 0x17D2, 0x179A), // KA + AA + coeng-RO
		encodeRunes(0x1780, 0x17C9, 0x17B6),          // KA + register + AA, out of order
		[]byte("hello world"),
		encodeRunes(0x200B, 0x1780),
		{0xFF, 0xFE}, // malformed
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if !bytes.Equal(once, twice) {
			t.Errorf("Normalize not idempotent on %x: once=%x twice=%x", in, once, twice)
		}
	}
}

func TestDeletesZeroWidthSpace(t *testing.T) {
	in := encodeRunes(0x1780, 0x200B, 0x1781)
	out := Normalize(in)
	if bytes.Contains(out, encodeRunes(0x200B)) {
		t.Errorf("expected U+200B removed, got %x", out)
	}
}

func TestComposesVowelDigraphs(t *testing.T) {
	in := encodeRunes(0x17C1, 0x17B8)
	out := Normalize(in)
	want := encodeRunes(0x17BE)
	if !bytes.Equal(out, want) {
		t.Errorf("U+17C1+U+17B8 -> got %x, want %x", out, want)
	}

	in2 := encodeRunes(0x17C1, 0x17B6)
	out2 := Normalize(in2)
	want2 := encodeRunes(0x17C4)
	if !bytes.Equal(out2, want2) {
		t.Errorf("U+17C1+U+17B6 -> got %x, want %x", out2, want2)
	}
}

func TestClusterReorder(t *testing.T) {
	// BASE, DEP_VOWEL, REGISTER in visual order should canonicalize to
	// BASE, REGISTER, DEP_VOWEL (register priority 30 < dep-vowel 40).
	in := encodeRunes(0x1780, 0x17B6, 0x17C9)
	out := Normalize(in)
	want := encodeRunes(0x1780, 0x17C9, 0x17B6)
	if !bytes.Equal(out, want) {
		t.Errorf("cluster reorder = %x, want %x", out, want)
	}
}

func TestCoengRoSortsAfterPlainCoeng(t *testing.T) {
	// BASE + coeng-RO + coeng-X should reorder to coeng-X before coeng-RO
	// (priority 10 before 20).
	in := encodeRunes(0x1780, 0x17D2, 0x179A, 0x17D2, 0x178F)
	out := Normalize(in)
	want := encodeRunes(0x1780, 0x17D2, 0x178F, 0x17D2, 0x179A)
	if !bytes.Equal(out, want) {
		t.Errorf("coeng-Ro reorder = %x, want %x", out, want)
	}
}

func TestStrayCoengRetained(t *testing.T) {
	in := encodeRunes(0x1780, 0x17D2)
	out := Normalize(in)
	if !bytes.Equal(out, in) {
		t.Errorf("stray coeng should pass through unchanged: got %x, want %x", out, in)
	}
}

func TestMalformedBytesPassThrough(t *testing.T) {
	in := []byte{0xFF, 'a', 0xFE}
	out := Normalize(in)
	if !bytes.Equal(out, in) {
		t.Errorf("malformed bytes should copy through verbatim: got %x, want %x", out, in)
	}
}
