// Command parmst computes minimum spanning forests of weighted edge lists
// with a partition, local Kruskal and merge pipeline.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
