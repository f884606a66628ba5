// Package viterbi implements the §4.2 Viterbi segmentation engine: a
// cost-minimizing dynamic program over byte positions with six kinds
// of transitions (repair, number, separator, acronym, dictionary,
// unknown cluster), its backtracker, and the unknown-merge post-pass.
package viterbi

import (
	"math"

	"github.com/khmer-segmenter/khmerseg/internal/arena"
	"github.com/khmer-segmenter/khmerseg/internal/charclass"
	"github.com/khmer-segmenter/khmerseg/internal/config"
	"github.com/khmer-segmenter/khmerseg/internal/dict"
)

var posInf = float32(math.Inf(1))

// Segment runs the forward pass and backtracker over text (assumed
// already normalized by the caller) and returns the minimum-cost
// segment list. Segments are slices of text — no copying. Pure and
// safe for concurrent invocation on the same *dict.Dictionary (spec
// §5).
func Segment(text []byte, d *dict.Dictionary, cfg config.Config) [][]byte {
	n := len(text)
	if n == 0 {
		return nil
	}

	var a arena.DP
	cost, prev := a.Alloc(n + 1)
	for i := range cost {
		cost[i] = posInf
		prev[i] = -1
	}
	cost[0] = 0

	forward(text, d, cfg, cost, prev)

	if cost[n] == posInf {
		// dp[n] unreachable: only possible under a pathological
		// configuration. Spec §4.2 Backtracking: fall back to the
		// normalized input as a single segment.
		return [][]byte{text}
	}
	return backtrack(text, prev)
}

func forward(text []byte, d *dict.Dictionary, cfg config.Config, cost []float32, prev []int32) {
	n := len(text)
	prevRune := rune(-1)

	for i := 0; i < n; {
		r, charLen := charclass.DecodeRune(text[i:])
		if charLen == 0 {
			break
		}

		if cost[i] == posInf {
			prevRune = r
			i += charLen
			continue
		}

		base := cost[i]
		relax := func(j int, c float32) {
			if j <= i || j > n {
				return
			}
			nc := base + c
			if nc < cost[j] {
				cost[j] = nc
				prev[j] = int32(i)
			}
		}

		// 1. Repair.
		if cfg.EnableRepairMode {
			orphanSubscript := prevRune == 0x17D2 && charclass.IsBaseConsonant(r)
			if orphanSubscript || charclass.IsDepVowel(r) {
				relax(i+charLen, d.UnknownCost+50)
				prevRune = r
				i += charLen
				continue
			}
		}

		// 2/3. Number/currency group vs. separator (mutually
		// exclusive, matching the teacher's if/else structure).
		isNumberStart := charclass.IsDigit(r) ||
			(charclass.IsCurrencySymbol(r) && nextIsDigit(text, i+charLen, n))
		if isNumberStart {
			if nl := numberLen(text, i, n); nl > 0 {
				relax(i+nl, 1.0)
			}
		} else if charclass.IsSeparator(r) {
			relax(i+charLen, 0.1)
		}

		// 4. Acronym.
		if cfg.EnableAcronymDetection && charclass.IsBase(r) && isAcronymStart(text, i, n) {
			relax(i+acronymLen(text, i, n), d.DefaultCost)
		}

		// 5. Dictionary.
		dictionaryTransitions(text, i, n, d, cfg, relax)

		// 6. Unknown cluster.
		cl := charclass.ClusterLen(text[i:])
		c := d.UnknownCost
		if cl == charLen && charclass.IsKhmerBlock(r) && !charclass.IsValidSingleWord(r) {
			c += 10.0
		}
		relax(i+cl, c)

		prevRune = r
		i += charLen
	}
}

// dictionaryTransitions folds an incremental DJB2 hash byte-by-byte
// over successive codepoints starting at i, probing the dictionary at
// every codepoint boundary up to (not exceeding) MaxWordLength bytes
// (spec §4.4 "Incremental lookup").
func dictionaryTransitions(text []byte, i, n int, d *dict.Dictionary, cfg config.Config, relax func(int, float32)) {
	maxLen := d.MaxWordLength
	if maxLen <= 0 {
		return
	}
	ih := dict.NewIncrementalHash()
	j := i
	for j < n {
		r, sz := charclass.DecodeRune(text[j:])
		if sz == 0 {
			break
		}
		if j+sz-i > maxLen {
			break
		}
		for k := 0; k < sz; k++ {
			ih.Fold(text[j+k])
		}
		j += sz
		if wcost, ok := d.LookupHash(ih.Sum(), text[i:j]); ok {
			c := wcost
			if !cfg.EnableFrequencyCosts {
				c = d.DefaultCost
			}
			relax(j, c)
		}
	}
}

// backtrack reconstructs the minimum-cost segment list from the dp
// predecessor chain, starting at n and reversing once at the end
// (spec §4.2 Backtracking).
func backtrack(text []byte, prev []int32) [][]byte {
	n := len(text)
	segs := make([][]byte, 0, n/3+1)
	curr := n
	for curr > 0 {
		p := int(prev[curr])
		if p < 0 {
			break
		}
		segs = append(segs, text[p:curr])
		curr = p
	}
	for l, r := 0, len(segs)-1; l < r; l, r = l+1, r-1 {
		segs[l], segs[r] = segs[r], segs[l]
	}
	return segs
}
