package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khmer-segmenter/khmerseg/internal/dict"
)

func newBuildDictCmd() *cobra.Command {
	var wordsPath, freqPath, outPath string
	var enableVariants bool

	cmd := &cobra.Command{
		Use:   "build-dict",
		Short: "Bake a plain word list (and optional frequency data) into a .kdict blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuildDict(wordsPath, freqPath, outPath, enableVariants)
		},
	}

	cmd.Flags().StringVar(&wordsPath, "words", "", "plain word list, one word per line (required)")
	cmd.Flags().StringVar(&freqPath, "freq", "", "frequency source: a {word:count} .json map or a legacy .bin frequency file")
	cmd.Flags().StringVar(&outPath, "out", "", "output .kdict path (required)")
	cmd.Flags().BoolVar(&enableVariants, "enable-variant-generation", true, "also emit Ta/Da and Ro-subscript positional variants of every word")
	cmd.MarkFlagRequired("words")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runBuildDict(wordsPath, freqPath, outPath string, enableVariants bool) error {
	wf, err := os.Open(wordsPath)
	if err != nil {
		return fmt.Errorf("khmerseg: open words: %w", err)
	}
	defer wf.Close()

	words, err := dict.ReadWordList(wf)
	if err != nil {
		return fmt.Errorf("khmerseg: read words: %w", err)
	}
	words = dict.RemoveCompoundOrWords(words)
	if enableVariants {
		words = dict.ExpandWordVariants(words)
	}

	var (
		entries                  []dict.Entry
		defaultCost, unknownCost float32
	)

	switch {
	case freqPath == "":
		defaultCost, unknownCost = 10.0, 20.0
		for _, w := range words {
			entries = append(entries, dict.Entry{Word: w, Cost: defaultCost})
		}

	case strings.HasSuffix(freqPath, ".bin"):
		ff, err := os.Open(freqPath)
		if err != nil {
			return fmt.Errorf("khmerseg: open freq: %w", err)
		}
		defer ff.Close()

		legacy, dc, uc, err := dict.ReadLegacyFrequencies(ff)
		if err != nil {
			return fmt.Errorf("khmerseg: read legacy frequencies: %w", err)
		}
		defaultCost, unknownCost = dc, uc

		seen := make(map[string]bool, len(legacy)+len(words))
		for _, e := range legacy {
			entries = append(entries, dict.Entry{Word: e.Word, Cost: e.Cost})
			seen[string(e.Word)] = true
		}
		for _, w := range words {
			if !seen[string(w)] {
				entries = append(entries, dict.Entry{Word: w, Cost: defaultCost})
				seen[string(w)] = true
			}
		}

	default:
		ff, err := os.Open(freqPath)
		if err != nil {
			return fmt.Errorf("khmerseg: open freq: %w", err)
		}
		defer ff.Close()

		counts, err := dict.ReadFrequencyJSON(ff)
		if err != nil {
			return fmt.Errorf("khmerseg: read frequency json: %w", err)
		}
		costs, dc, uc := dict.FrequencyCosts(counts)
		defaultCost, unknownCost = dc, uc

		seen := make(map[string]bool, len(costs)+len(words))
		for _, w := range words {
			c := defaultCost
			if cc, ok := costs[string(w)]; ok {
				c = cc
			}
			entries = append(entries, dict.Entry{Word: w, Cost: c})
			seen[string(w)] = true
		}
		for word, c := range costs {
			if !seen[word] {
				entries = append(entries, dict.Entry{Word: []byte(word), Cost: c})
				seen[word] = true
			}
		}
	}

	blob := dict.Build(entries, defaultCost, unknownCost)
	if err := os.WriteFile(outPath, blob, 0o644); err != nil {
		return fmt.Errorf("khmerseg: write %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s: %d entries, %d bytes\n", outPath, len(entries), len(blob))
	return nil
}
