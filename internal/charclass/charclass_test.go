package charclass

import "testing"

func TestOf(t *testing.T) {
	cases := []struct {
		r    rune
		want Class
	}{
		{0x1780, Base},       // KA
		{0x17A2, Base},       // A
		{0x17A3, Base},       // independent vowel QA
		{0x17D2, Coeng},
		{0x17C9, Register},
		{0x17B6, DepVowel},
		{0x17C6, Sign},
		{0x17E0, KhmerDigit},
		{'5', ASCIIDigit},
		{0x17D4, Separator}, // khan
		{' ', Separator},
		{'A', Other},
	}
	for _, c := range cases {
		if got := Of(c.r); got != c.want {
			t.Errorf("Of(%U) = %s, want %s", c.r, got, c.want)
		}
	}
}

func TestIsDigit(t *testing.T) {
	for _, r := range []rune{'0', '9', 0x17E0, 0x17E9} {
		if !IsDigit(r) {
			t.Errorf("IsDigit(%U) = false, want true", r)
		}
	}
	if IsDigit('a') {
		t.Error("IsDigit('a') = true, want false")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range []rune{0x17D4, ' ', '.', ',', 0x20AC, 0x00A0} {
		if !IsSeparator(r) {
			t.Errorf("IsSeparator(%U) = false, want true", r)
		}
	}
	if IsSeparator(0x1780) {
		t.Error("IsSeparator(KA) = true, want false")
	}
}

func TestIsValidSingleWord(t *testing.T) {
	if !IsValidSingleWord(0x1780) { // KA
		t.Error("KA should be a valid single word")
	}
	if IsValidSingleWord(0x1783) { // GA, not in the teacher's list
		t.Error("GA should not be a valid single word")
	}
}

func TestIsBaseConsonantExcludesIndependentVowels(t *testing.T) {
	if !IsBaseConsonant(0x1780) { // KA
		t.Error("KA should be a base consonant")
	}
	if !IsBase(0x17A3) { // independent vowel QA
		t.Error("independent vowel QA should be BASE")
	}
	if IsBaseConsonant(0x17A3) {
		t.Error("independent vowel QA should not be a base consonant")
	}
}

func TestIsKhmerBlock(t *testing.T) {
	if !IsKhmerBlock(0x1780) || !IsKhmerBlock(0x17FF) {
		t.Error("expected main Khmer block to be recognized")
	}
	if IsKhmerBlock('A') {
		t.Error("ASCII should not be in the Khmer block")
	}
}

func TestDecodeRune(t *testing.T) {
	r, n := DecodeRune([]byte("ក"))
	if r != 0x1780 || n != 3 {
		t.Errorf("DecodeRune(KA) = (%U, %d), want (U+1780, 3)", r, n)
	}
	r, n = DecodeRune([]byte{0xFF})
	if r != 0 || n != 1 {
		t.Errorf("DecodeRune(malformed) = (%U, %d), want (0, 1)", r, n)
	}
	r, n = DecodeRune(nil)
	if n != 0 {
		t.Errorf("DecodeRune(empty) size = %d, want 0", n)
	}
	_ = r
}

func TestClusterLen(t *testing.T) {
	// KA + COENG + TA (subscript): one cluster.
	word := "ក្ត"
	if got := ClusterLen([]byte(word)); got != len(word) {
		t.Errorf("ClusterLen(KA+coeng+TA) = %d, want %d", got, len(word))
	}
	// A lone separator is a degenerate one-codepoint cluster.
	if got := ClusterLen([]byte(" ")); got != 1 {
		t.Errorf("ClusterLen(space) = %d, want 1", got)
	}
}
