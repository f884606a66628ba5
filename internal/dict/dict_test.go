package dict

import (
	"bytes"
	"strings"
	"testing"
)

func buildTestDict(t *testing.T) *Dictionary {
	t.Helper()
	entries := []Entry{
		{Word: []byte("ab"), Cost: 1.5},
		{Word: []byte("abc"), Cost: 2.0},
		{Word: []byte("xyz"), Cost: 3.25},
		{Word: []byte("z"), Cost: 0.5},
	}
	blob := Build(entries, 10.0, 20.0)
	d, err := Load(blob, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return d
}

func TestBuildLoadRoundTrip(t *testing.T) {
	d := buildTestDict(t)
	if d.NumEntries() != 4 {
		t.Errorf("NumEntries() = %d, want 4", d.NumEntries())
	}
	if d.DefaultCost != 10.0 || d.UnknownCost != 20.0 {
		t.Errorf("DefaultCost/UnknownCost = %v/%v, want 10/20", d.DefaultCost, d.UnknownCost)
	}
	if d.MaxWordLength != 3 {
		t.Errorf("MaxWordLength = %d, want 3", d.MaxWordLength)
	}
}

func TestLookup(t *testing.T) {
	d := buildTestDict(t)
	cases := []struct {
		word     string
		wantCost float32
		wantOK   bool
	}{
		{"ab", 1.5, true},
		{"abc", 2.0, true},
		{"xyz", 3.25, true},
		{"abx", 0, false},
		{"a", 0, false},
	}
	for _, c := range cases {
		cost, ok := d.Lookup([]byte(c.word))
		if ok != c.wantOK || (ok && cost != c.wantCost) {
			t.Errorf("Lookup(%q) = (%v, %v), want (%v, %v)", c.word, cost, ok, c.wantCost, c.wantOK)
		}
	}
}

func TestLookupHashMatchesLookup(t *testing.T) {
	d := buildTestDict(t)
	word := []byte("abc")

	ih := NewIncrementalHash()
	for _, b := range word {
		ih.Fold(b)
	}
	gotCost, gotOK := d.LookupHash(ih.Sum(), word)
	wantCost, wantOK := d.Lookup(word)
	if gotCost != wantCost || gotOK != wantOK {
		t.Errorf("LookupHash = (%v,%v), want (%v,%v)", gotCost, gotOK, wantCost, wantOK)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	entries := []Entry{
		{Word: []byte("zz"), Cost: 1},
		{Word: []byte("aa"), Cost: 2},
		{Word: []byte("mm"), Cost: 3},
	}
	b1 := Build(entries, 1, 2)
	// Reverse input order; sorting inside Build should make the blobs
	// byte-identical regardless of entry order.
	reversed := []Entry{entries[2], entries[1], entries[0]}
	b2 := Build(reversed, 1, 2)
	if !bytes.Equal(b1, b2) {
		t.Error("Build should be order-independent for byte-identical output")
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	blob := Build([]Entry{{Word: []byte("a"), Cost: 1}}, 1, 2)
	blob[0] = 'X'
	if _, err := Load(blob, nil); err == nil {
		t.Error("expected error for bad magic")
	}
}

func TestLoadRejectsShortBlob(t *testing.T) {
	if _, err := Load([]byte{1, 2, 3}, nil); err == nil {
		t.Error("expected error for short blob")
	}
}

func TestLoadRejectsNonPowerOfTwoTableSize(t *testing.T) {
	blob := Build([]Entry{{Word: []byte("a"), Cost: 1}}, 1, 2)
	// table_size lives at header offset 12, little-endian u32.
	blob[12], blob[13], blob[14], blob[15] = 3, 0, 0, 0
	if _, err := Load(blob, nil); err == nil {
		t.Error("expected error for non-power-of-two table_size")
	}
}

func TestExpandWordVariantsAddsTaDiSwap(t *testing.T) {
	coengTa := string(rune(0x17D2)) + string(rune(0x178F))
	coengDa := string(rune(0x17D2)) + string(rune(0x178D))
	word := []byte("x" + coengTa)
	variant := []byte("x" + coengDa)

	words := [][]byte{word}
	got := ExpandWordVariants(words)

	foundWord, foundVariant := false, false
	for _, w := range got {
		if bytes.Equal(w, word) {
			foundWord = true
		}
		if bytes.Equal(w, variant) {
			foundVariant = true
		}
	}
	if !foundWord || !foundVariant {
		t.Errorf("ExpandWordVariants(%q) = %q, want both %q and %q present", word, got, word, variant)
	}
	if len(got) != 2 {
		t.Errorf("ExpandWordVariants(%q) produced %d entries, want 2 (no duplicates)", word, len(got))
	}
}

func TestExpandWordVariantsDeduplicates(t *testing.T) {
	coengTa := string(rune(0x17D2)) + string(rune(0x178F))
	coengDa := string(rune(0x17D2)) + string(rune(0x178D))
	// The Da form is already present in the input list, so its
	// generated variant (the Ta form) must not be duplicated, and the
	// already-present Da form must not be duplicated either.
	words := [][]byte{[]byte("x" + coengTa), []byte("x" + coengDa)}
	got := ExpandWordVariants(words)
	if len(got) != 2 {
		t.Errorf("ExpandWordVariants(%q) = %q, want exactly 2 deduplicated entries", words, got)
	}
}

func TestAcceptWordFilters(t *testing.T) {
	ka := string(rune(0x1780))   // valid single word: kept
	ga := string(rune(0x1783))   // not a valid single word: dropped
	coengTa := string(rune(0x17D2)) + string(rune(0x178F)) // starts with coeng: dropped
	repeatMark := "bad" + string(rune(0x17F7)) + "word"    // contains U+17F7: dropped

	lines := []string{ka, ga, coengTa, "valid", repeatMark}
	words, err := ReadWordList(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		t.Fatalf("ReadWordList: %v", err)
	}
	got := make([]string, len(words))
	for i, w := range words {
		got[i] = string(w)
	}
	want := []string{ka, "valid"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}
