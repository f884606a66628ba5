// Package normalize implements the §4.1 Normalizer: canonical
// reordering of Khmer orthographic clusters plus a small linear
// pre-pass of composite-vowel fixes and zero-width-space removal.
package normalize

import (
	"sort"
	"unicode/utf8"

	"github.com/khmer-segmenter/khmerseg/internal/charclass"
)

// maxClusterParts bounds cluster size; implementations may choose any
// bound >= 32 parts and flush on overflow (spec §4.1).
const maxClusterParts = 32

// Normalize reduces visual-order input to canonical storage order so
// dictionary lookup can use plain byte equality. Idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(input []byte) []byte {
	return clusterPass(prePass(input))
}

// prePass deletes U+200B, and rewrites the two composite-vowel
// digraphs of spec §4.1 pass 1, copying everything else through
// verbatim (including malformed bytes, one byte at a time).
func prePass(input []byte) []byte {
	out := make([]byte, 0, len(input))
	i := 0
	for i < len(input) {
		r, n := charclass.DecodeRune(input[i:])
		if n == 0 {
			break
		}
		if r == 0x200B {
			i += n
			continue
		}
		if r == 0x17C1 {
			if r2, n2 := charclass.DecodeRune(input[i+n:]); n2 > 0 {
				switch r2 {
				case 0x17B8:
					out = appendRune(out, 0x17BE)
					i += n + n2
					continue
				case 0x17B6:
					out = appendRune(out, 0x17C4)
					i += n + n2
					continue
				}
			}
		}
		out = append(out, input[i:i+n]...)
		i += n
	}
	return out
}

func appendRune(dst []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}

// token is a decoded codepoint together with the byte span it came
// from in the pre-pass buffer.
type token struct {
	off, size int
	r         rune
}

func tokenize(s []byte) []token {
	toks := make([]token, 0, len(s))
	i := 0
	for i < len(s) {
		r, n := charclass.DecodeRune(s[i:])
		if n == 0 {
			break
		}
		toks = append(toks, token{off: i, size: n, r: r})
		i += n
	}
	return toks
}

type clusterPart struct {
	start, end int // byte span in s
	priority   int
}

// clusterPass groups codepoints into clusters and, within each
// cluster, stably sorts the parts after the leading BASE by the
// priority key of spec §4.1 (COENG+BASE=10, COENG+Ro=20,
// REGISTER=30, DEP_VOWEL=40, SIGN=50).
func clusterPass(s []byte) []byte {
	toks := tokenize(s)
	n := len(toks)
	out := make([]byte, 0, len(s))

	i := 0
	for i < n {
		t := toks[i]
		if !charclass.IsBase(t.r) {
			out = append(out, s[t.off:t.off+t.size]...)
			i++
			continue
		}

		parts := make([]clusterPart, 0, 8)
		j := i + 1
	clusterScan:
		for j < n && len(parts) < maxClusterParts {
			cur := toks[j]
			switch {
			case charclass.IsCoeng(cur.r):
				if j+1 < n && charclass.IsBase(toks[j+1].r) {
					base := toks[j+1]
					pr := 10
					if charclass.IsRo(base.r) {
						pr = 20
					}
					parts = append(parts, clusterPart{cur.off, base.off + base.size, pr})
					j += 2
					continue
				}
				// Stray coeng not followed by a base: retained as a
				// single priority-10 part, cluster ends here.
				parts = append(parts, clusterPart{cur.off, cur.off + cur.size, 10})
				j++
				break clusterScan
			case charclass.IsRegister(cur.r):
				parts = append(parts, clusterPart{cur.off, cur.off + cur.size, 30})
				j++
			case charclass.IsDepVowel(cur.r):
				parts = append(parts, clusterPart{cur.off, cur.off + cur.size, 40})
				j++
			case charclass.IsSign(cur.r):
				parts = append(parts, clusterPart{cur.off, cur.off + cur.size, 50})
				j++
			default:
				break clusterScan
			}
		}

		sort.SliceStable(parts, func(a, b int) bool {
			return parts[a].priority < parts[b].priority
		})

		out = append(out, s[t.off:t.off+t.size]...)
		for _, p := range parts {
			out = append(out, s[p.start:p.end]...)
		}
		i = j
	}
	return out
}
