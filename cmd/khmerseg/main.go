// Command khmerseg is the CLI front end for the khmerseg library:
// segmenting text files, baking a dictionary blob from a word list
// and frequency source, and inspecting an existing blob's header.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
