package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "khmerseg",
		Short: "Segment Khmer script text into words",
	}

	root.AddCommand(newSegmentCmd())
	root.AddCommand(newBuildDictCmd())
	root.AddCommand(newInspectDictCmd())
	return root
}
