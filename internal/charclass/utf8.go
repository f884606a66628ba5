package charclass

import "unicode/utf8"

// DecodeRune decodes the codepoint at the start of s. Malformed bytes
// decode to codepoint 0 and advance exactly one byte, keeping every
// caller live on arbitrary input (spec §3: "malformed bytes decode to
// codepoint 0 and advance one byte").
func DecodeRune(s []byte) (r rune, size int) {
	if len(s) == 0 {
		return 0, 0
	}
	r, size = utf8.DecodeRune(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, 1
	}
	return r, size
}

// ClusterLen returns the byte length of the Khmer cluster starting at
// s (s[0] must already be known to be a BASE codepoint by the caller,
// matching the teacher's getKhmerClusterLength contract). A cluster is
// the leading BASE codepoint followed by zero or more (COENG+BASE)
// pairs and zero or more REGISTER/DEP_VOWEL/SIGN codepoints, in any
// interleaving (data model §3).
func ClusterLen(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	r0, n0 := DecodeRune(s)
	if !IsBase(r0) {
		return n0
	}
	i := n0
	for i < len(s) {
		r, n := DecodeRune(s[i:])
		if n == 0 {
			break
		}
		if IsCoeng(r) {
			if i+n < len(s) {
				rb, nb := DecodeRune(s[i+n:])
				if IsBase(rb) {
					i += n + nb
					continue
				}
			}
			// Stray coeng not followed by a base: swallow it as part
			// of this degenerate cluster and stop.
			i += n
			break
		}
		if IsRegister(r) || IsDepVowel(r) || IsSign(r) {
			i += n
			continue
		}
		break
	}
	return i
}
