package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/cobra"

	"github.com/khmer-segmenter/khmerseg"
)

func newSegmentCmd() *cobra.Command {
	var (
		dictPath  string
		inPath    string
		outPath   string
		threads   int
		separator string
	)

	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Segment each line of a text file into words",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSegment(dictPath, inPath, outPath, threads, separator)
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "path to a baked .kdict dictionary (required)")
	cmd.Flags().StringVar(&inPath, "input", "", "input text file, one sentence per line (default: stdin)")
	cmd.Flags().StringVar(&outPath, "output", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker goroutines (0 = runtime.NumCPU())")
	cmd.Flags().StringVar(&separator, "separator", "", "segment separator (default: U+200B)")
	cmd.MarkFlagRequired("dict")

	return cmd
}

// runSegment loads the dictionary once and shares a single Segmenter
// across a worker pool, since Segmenter carries no mutable state
// (spec §5) — unlike the teacher's per-goroutine KhmerSegmenter, which
// existed only because its reusable dp buffers weren't safe to share.
func runSegment(dictPath, inPath, outPath string, threads int, separator string) error {
	seg, err := khmerseg.Open(dictPath, khmerseg.DefaultConfig())
	if err != nil {
		return fmt.Errorf("khmerseg: load dictionary: %w", err)
	}
	defer seg.Close()

	var sep []byte
	if separator != "" {
		sep = []byte(separator)
	}

	in := os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("khmerseg: open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	const maxCapacity = 1024 * 1024
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("khmerseg: read input: %w", err)
	}

	numWorkers := threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	results := make([][]byte, len(lines))
	jobs := make(chan int, len(lines))
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = seg.Segment([]byte(lines[i]), sep)
			}
		}()
	}
	for i := range lines {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("khmerseg: create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, r := range results {
		w.Write(r)
		w.WriteByte('\n')
	}
	return nil
}
