// Command lidprep builds the NCHLT language identification train and test
// files. Run with no arguments it reads ../feersum-lid-shared-task/data and
// writes ../nchlt_train.txt and ../nchlt_test.txt.
package main

import (
	"fmt"
	"os"
)

// Set via -ldflags by the stave build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
