package dict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/khmer-segmenter/khmerseg/internal/charclass"
)

// minFreqFloor is the minimum effective count assigned to any word
// with an observed frequency, matching the teacher's dictionary.go.
const minFreqFloor = 5.0

// ReadWordList reads a plain UTF-8 word list, one word per line (spec
// §6 "Plain dictionary file khmer_dictionary_words.txt"): CR and LF
// are stripped, empty lines ignored, single-rune words whose
// codepoint is not a valid base character are filtered, words
// beginning with the 3-byte U+17D2 sequence are filtered, and words
// containing U+17F7 are filtered.
func ReadWordList(r io.Reader) ([][]byte, error) {
	var words [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r\n")
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !acceptWord(line) {
			continue
		}
		words = append(words, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func acceptWord(word []byte) bool {
	r, n := utf8.DecodeRune(word)
	if n == len(word) && !charclass.IsValidSingleWord(r) {
		return false
	}
	if bytes.HasPrefix(word, coengBytes) {
		return false
	}
	if bytes.ContainsRune(word, 0x17F7) {
		return false
	}
	return true
}

var (
	coengBytes = mustEncodeRune(0x17D2)
	coengTa    = append(mustEncodeRune(0x17D2), mustEncodeRune(0x178F)...)
	coengDa    = append(mustEncodeRune(0x17D2), mustEncodeRune(0x178D)...)
)

func mustEncodeRune(r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}

// RemoveCompoundOrWords drops compound entries built from the Khmer
// "OR" character (U+17AC) whose parts are themselves already present
// in the word set, and drops any entry containing the repetition mark
// U+17D7, including the standalone mark itself. A standalone OR
// character is kept. Ported
// from the teacher's loadDictionary post-processing pass; the plain
// word list filters of ReadWordList don't catch this because it
// requires seeing the whole word set at once.
func RemoveCompoundOrWords(words [][]byte) [][]byte {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[string(w)] = true
	}

	orRune := mustEncodeRune(0x17AC)
	repeatRune := mustEncodeRune(0x17D7)

	toRemove := make(map[string]bool)
	for _, wb := range words {
		w := string(wb)
		if bytes.ContainsRune(wb, 0x17AC) && utf8.RuneCountInString(w) > 1 {
			switch {
			case bytes.HasPrefix(wb, orRune):
				if set[w[len(orRune):]] {
					toRemove[w] = true
				}
			case bytes.HasSuffix(wb, orRune):
				if set[w[:len(w)-len(orRune)]] {
					toRemove[w] = true
				}
			default:
				parts := bytes.Split(wb, orRune)
				allValid := true
				for _, p := range parts {
					if len(p) > 0 && !set[string(p)] {
						allValid = false
						break
					}
				}
				if allValid {
					toRemove[w] = true
				}
			}
		}
		if bytes.Contains(wb, repeatRune) {
			toRemove[w] = true
		}
	}
	toRemove[string(repeatRune)] = true

	out := make([][]byte, 0, len(words))
	for _, w := range words {
		if !toRemove[string(w)] {
			out = append(out, w)
		}
	}
	return out
}

// ExpandWordVariants adds the Ta/Da and Ro-subscript variants of every
// word in words to the returned list, deduplicated. Ported from the
// teacher's addWordWithVariants, which calls generateVariants
// unconditionally for every word loaded from the plain list regardless
// of whether frequency data is present; this is the offline-build
// counterpart of enable_variant_generation (spec §6).
func ExpandWordVariants(words [][]byte) [][]byte {
	seen := make(map[string]bool, len(words))
	out := make([][]byte, 0, len(words))
	for _, w := range words {
		ws := string(w)
		if seen[ws] {
			continue
		}
		seen[ws] = true
		out = append(out, w)
	}
	for _, w := range words {
		for _, v := range GenerateVariants(w) {
			vs := string(v)
			if seen[vs] {
				continue
			}
			seen[vs] = true
			out = append(out, v)
		}
	}
	return out
}

// GenerateVariants emits the Ta<->Da coeng swap and Ro-subscript
// reordering variants of word, all at the same cost as the canonical
// form (spec §4.2 DESIGN NOTES "Variant generation",
// enable_variant_generation). Ported from the teacher's
// generateVariants/swapCoengRoOrder, broadened per the Open Question
// resolution in SPEC_FULL.md to the general Coeng+Ro-adjacent-to-any-
// Coeng+X case already present there, not just the 6-byte special case.
func GenerateVariants(word []byte) [][]byte {
	variants := make(map[string][]byte)

	if bytes.Contains(word, coengTa) {
		v := bytes.ReplaceAll(word, coengTa, coengDa)
		variants[string(v)] = v
	}
	if bytes.Contains(word, coengDa) {
		v := bytes.ReplaceAll(word, coengDa, coengTa)
		variants[string(v)] = v
	}

	base := map[string][]byte{string(word): word}
	for k, v := range variants {
		base[k] = v
	}
	for _, w := range base {
		if swapped := swapCoengRoOrder(w); !bytes.Equal(swapped, w) {
			variants[string(swapped)] = swapped
		}
	}

	out := make([][]byte, 0, len(variants))
	for _, v := range variants {
		out = append(out, v)
	}
	return out
}

// swapCoengRoOrder swaps a Coeng+Ro pair with an adjacent Coeng+X
// pair wherever the two appear next to each other, in either order.
func swapCoengRoOrder(word []byte) []byte {
	runes := []rune(string(word))
	n := len(runes)
	if n < 4 {
		return word
	}

	result := make([]rune, 0, n)
	i := 0
	changed := false

	for i < n {
		if i+3 < n &&
			runes[i] == 0x17D2 && runes[i+1] == 0x179A &&
			runes[i+2] == 0x17D2 && runes[i+3] != 0x179A {
			result = append(result, runes[i+2], runes[i+3], runes[i], runes[i+1])
			i += 4
			changed = true
			continue
		}
		if i+3 < n &&
			runes[i] == 0x17D2 && runes[i+1] != 0x179A &&
			runes[i+2] == 0x17D2 && runes[i+3] == 0x179A {
			result = append(result, runes[i+2], runes[i+3], runes[i], runes[i+1])
			i += 4
			changed = true
			continue
		}
		result = append(result, runes[i])
		i++
	}

	if !changed {
		return word
	}
	return []byte(string(result))
}

// FrequencyCosts computes per-word additive costs from raw counts the
// way the teacher's loadFrequencies does: counts are floored at
// minFreqFloor, normalized into probabilities, and costs are
// -log10(probability). defaultCost is set from the floor probability,
// unknownCost = defaultCost + 5.0. Variants of each counted word
// inherit that word's count if not already present.
func FrequencyCosts(counts map[string]float64) (costs map[string]float32, defaultCost, unknownCost float32) {
	effective := make(map[string]float32, len(counts))
	var total float32
	for word, count := range counts {
		eff := float32(math.Max(count, minFreqFloor))
		effective[word] = eff
		for _, v := range GenerateVariants([]byte(word)) {
			vs := string(v)
			if _, ok := effective[vs]; !ok {
				effective[vs] = eff
			}
		}
		total += eff
	}

	if total == 0 {
		return map[string]float32{}, 10.0, 20.0
	}

	minProb := minFreqFloor / total
	defaultCost = float32(-math.Log10(float64(minProb)))
	unknownCost = defaultCost + 5.0

	costs = make(map[string]float32, len(effective))
	for word, count := range effective {
		prob := count / total
		if prob > 0 {
			costs[word] = float32(-math.Log10(float64(prob)))
		}
	}
	return costs, defaultCost, unknownCost
}

// ReadFrequencyJSON reads a {word: count} JSON map, the runtime
// frequency format the teacher's CLI accepts as khmer_word_frequencies.json.
func ReadFrequencyJSON(r io.Reader) (map[string]float64, error) {
	var data map[string]float64
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("dict: decode frequency json: %w", err)
	}
	return data, nil
}

// legacyMagic is the header of the legacy binary frequency format of
// spec §6, kept for offline-tool backward compatibility; the runtime
// core never reads it directly.
const legacyMagic = "KLIB"

// LegacyEntry is one (word, cost) record of khmer_frequencies.bin.
type LegacyEntry struct {
	Word []byte
	Cost float32
}

// ReadLegacyFrequencies parses the legacy khmer_frequencies.bin
// format: header "KLIB", u32 version=1, f32 default_cost, f32
// unknown_cost, u32 entry_count, then per entry a u16 word length, the
// word bytes, and an f32 cost.
func ReadLegacyFrequencies(r io.Reader) (entries []LegacyEntry, defaultCost, unknownCost float32, err error) {
	var hdr [4]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, 0, err
	}
	if string(hdr[:]) != legacyMagic {
		return nil, 0, 0, fmt.Errorf("dict: bad legacy magic %q", hdr[:])
	}

	var u32buf [4]byte
	readU32 := func() (uint32, error) {
		if _, err := io.ReadFull(r, u32buf[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint32(u32buf[:]), nil
	}
	readF32 := func() (float32, error) {
		v, err := readU32()
		return float32FromBits(v), err
	}

	ver, err := readU32()
	if err != nil {
		return nil, 0, 0, err
	}
	if ver != 1 {
		return nil, 0, 0, fmt.Errorf("dict: unsupported legacy version %d", ver)
	}
	if defaultCost, err = readF32(); err != nil {
		return nil, 0, 0, err
	}
	if unknownCost, err = readF32(); err != nil {
		return nil, 0, 0, err
	}
	count, err := readU32()
	if err != nil {
		return nil, 0, 0, err
	}

	entries = make([]LegacyEntry, 0, count)
	var lenBuf [2]byte
	for i := uint32(0); i < count; i++ {
		if _, err = io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, 0, 0, err
		}
		wl := binary.LittleEndian.Uint16(lenBuf[:])
		word := make([]byte, wl)
		if _, err = io.ReadFull(r, word); err != nil {
			return nil, 0, 0, err
		}
		cost, err2 := readF32()
		if err2 != nil {
			return nil, 0, 0, err2
		}
		entries = append(entries, LegacyEntry{Word: word, Cost: cost})
	}
	return entries, defaultCost, unknownCost, nil
}
