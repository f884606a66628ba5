package viterbi

import "github.com/khmer-segmenter/khmerseg/internal/charclass"

// numberLen returns the byte length of the maximal digit run starting
// at text[i], with interior single-character separators from {,, .,
// space} each of which must itself be followed by a digit (spec §4.2
// transition 2). It returns 0 if text[i] is not itself a digit — in
// particular when the caller reached here via the currency-symbol
// disjunct of the trigger condition, this is a deliberate no-op: the
// teacher's getNumberLength has this exact early return, which is why
// a leading currency symbol ends up costed as its own unknown-cluster
// segment rather than folded into the number group (see the worked
// $10,000.00 example in spec §8).
func numberLen(text []byte, i, n int) int {
	r, sz := charclass.DecodeRune(text[i:])
	if !charclass.IsDigit(r) {
		return 0
	}
	j := i + sz
	for j < n {
		r, sz2 := charclass.DecodeRune(text[j:])
		if charclass.IsDigit(r) {
			j += sz2
			continue
		}
		if r == ',' || r == '.' || r == ' ' {
			if j+sz2 < n {
				r2, sz3 := charclass.DecodeRune(text[j+sz2:])
				if charclass.IsDigit(r2) {
					j += sz2 + sz3
					continue
				}
			}
		}
		break
	}
	return j - i
}

// nextIsDigit reports whether the codepoint at text[i:] is a digit,
// used to test the currency-group disjunct of transition 2.
func nextIsDigit(text []byte, i, n int) bool {
	if i >= n {
		return false
	}
	r, _ := charclass.DecodeRune(text[i:])
	return charclass.IsDigit(r)
}

// isAcronymStart reports whether text[i:] begins a cluster
// immediately followed by ASCII '.', the trigger for transition 4.
func isAcronymStart(text []byte, i, n int) bool {
	if i+1 >= n {
		return false
	}
	cl := charclass.ClusterLen(text[i:])
	if cl == 0 {
		return false
	}
	dot := i + cl
	return dot < n && text[dot] == '.'
}

// acronymLen returns the byte length of the maximal run of
// (cluster + '.') repetitions starting at text[i] (spec §4.2
// transition 4).
func acronymLen(text []byte, i, n int) int {
	j := i
	for {
		cl := charclass.ClusterLen(text[j:])
		if cl == 0 {
			break
		}
		dot := j + cl
		if dot < n && text[dot] == '.' {
			j = dot + 1
			if j >= n {
				break
			}
			continue
		}
		break
	}
	return j - i
}
