// Package rules implements the fixed orthographic rule engine of spec
// §4.3: a small set of hardcoded, byte-exact merge/keep rules that run
// on the segment list produced by the Viterbi backtracker, encoding
// constraints the frequency model alone cannot enforce. No regular
// expressions; every pattern is matched by direct byte comparison,
// grounded in the teacher's ApplyHeuristics rune-suffix checks but
// widened to the full rule set.
package rules

import (
	"bytes"

	"github.com/khmer-segmenter/khmerseg/internal/charclass"
)

// Apply runs the five rules over segments in priority order at each
// index, via scan-with-index: a left-merge steps the index back by
// one so the next iteration re-evaluates the merged segment; a
// right-merge leaves the index unchanged for the same reason. The
// input slice is not mutated; Apply returns a new slice.
func Apply(segments [][]byte) [][]byte {
	segs := make([][]byte, len(segments))
	copy(segs, segments)

	i := 0
	for i < len(segs) {
		seg := segs[i]

		// 1. Preserve "ក៏" / "ដ៏": KA or DA + Ahsda sign U+17CF left
		// untouched.
		if isKaDaSign(seg) {
			i++
			continue
		}

		// 2. Left-attach orphan "អ" (U+17A2) into the next segment,
		// unless that segment begins with a SEPARATOR.
		if isOrphanA(seg) && i+1 < len(segs) && !startsWithSeparator(segs[i+1]) {
			segs[i+1] = concat(seg, segs[i+1])
			segs = append(segs[:i], segs[i+1:]...)
			continue
		}

		// 3. Left-attach base-consonant + sign suffix (Yuukaleapintu,
		// Robat, Kakabat, Ahsda) into the previous segment.
		if isConsonantSignSuffix(seg) && i > 0 {
			segs[i-1] = concat(segs[i-1], seg)
			segs = append(segs[:i], segs[i+1:]...)
			i--
			continue
		}

		// 4. Right-attach base-consonant + Samyok Sannya (U+17D0)
		// into the next segment.
		if isConsonantSamyok(seg) && i+1 < len(segs) {
			segs[i+1] = concat(seg, segs[i+1])
			segs = append(segs[:i], segs[i+1:]...)
			continue
		}

		// 5. Invalid single consonant cleanup: a lone Khmer codepoint
		// that is not a valid single word, a digit or a separator merges
		// left, unless the previous segment is a separator.
		if isInvalidSingleConsonant(seg) && i > 0 && !startsWithSeparator(segs[i-1]) {
			segs[i-1] = concat(segs[i-1], seg)
			segs = append(segs[:i], segs[i+1:]...)
			i--
			continue
		}

		i++
	}
	return segs
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func startsWithSeparator(seg []byte) bool {
	r, _ := charclass.DecodeRune(seg)
	return charclass.IsSeparator(r)
}

// isKaDaSign matches the 6-byte encoding of U+1780 (KA) or U+178A (DA)
// followed by U+17CF.
func isKaDaSign(seg []byte) bool {
	if len(seg) != 6 {
		return false
	}
	if seg[0] != 0xE1 || seg[1] != 0x9E {
		return false
	}
	if seg[2] != 0x80 && seg[2] != 0x8A {
		return false
	}
	return bytes.Equal(seg[3:6], []byte{0xE1, 0x9F, 0x8F})
}

// isOrphanA matches the 3-byte encoding of U+17A2.
func isOrphanA(seg []byte) bool {
	return bytes.Equal(seg, []byte{0xE1, 0x9E, 0xA2})
}

// isConsonantSignSuffix matches a base consonant (U+1780-U+17A2)
// followed by one of U+17CB, U+17CC, U+17CE, U+17CF.
func isConsonantSignSuffix(seg []byte) bool {
	if !isConsonantLeadByte(seg) {
		return false
	}
	switch seg[5] {
	case 0x8B, 0x8C, 0x8E, 0x8F:
		return true
	default:
		return false
	}
}

// isConsonantSamyok matches a base consonant followed by U+17D0.
func isConsonantSamyok(seg []byte) bool {
	return isConsonantLeadByte(seg) && seg[5] == 0x90
}

// isConsonantLeadByte checks the shared 5-byte prefix of rules 3 and
// 4: a 3-byte base consonant followed by the 2-byte lead-in of a
// 3-byte sign codepoint.
func isConsonantLeadByte(seg []byte) bool {
	if len(seg) != 6 {
		return false
	}
	if seg[0] != 0xE1 || seg[1] != 0x9E || seg[2] < 0x80 || seg[2] > 0xA2 {
		return false
	}
	return seg[3] == 0xE1 && seg[4] == 0x9F
}

func isInvalidSingleConsonant(seg []byte) bool {
	r, n := charclass.DecodeRune(seg)
	if n != len(seg) {
		return false
	}
	if !charclass.IsKhmerBlock(r) {
		return false
	}
	if charclass.IsValidSingleWord(r) || charclass.IsDigit(r) || charclass.IsSeparator(r) {
		return false
	}
	return true
}
