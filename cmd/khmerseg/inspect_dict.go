package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khmer-segmenter/khmerseg/internal/dict"
)

func newInspectDictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect-dict [path]",
		Short: "Print a baked dictionary's header fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspectDict(args[0])
		},
	}
}

func runInspectDict(path string) error {
	d, err := dict.LoadFile(path)
	if err != nil {
		return fmt.Errorf("khmerseg: load %s: %w", path, err)
	}
	defer d.Close()

	fmt.Printf("entries:         %d\n", d.NumEntries())
	fmt.Printf("table_size:      %d\n", d.TableSize())
	fmt.Printf("default_cost:    %v\n", d.DefaultCost)
	fmt.Printf("unknown_cost:    %v\n", d.UnknownCost)
	fmt.Printf("max_word_length: %d\n", d.MaxWordLength)
	return nil
}
